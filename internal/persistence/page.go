// Package persistence contains helpers shared by repository implementations.
package persistence

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"example.com/gymcheckin/internal/domain"
)

// ParsePage parses a 1-indexed page token. Empty tokens default to 1.
func ParsePage(token string) (int, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("invalid page %q", token)
	}
	if page < 1 {
		return 0, fmt.Errorf("page must be at least 1")
	}
	return page, nil
}

// NormalizePage clamps page to the first page.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// Offset returns the number of rows preceding page, saturating at
// math.MaxInt for pages too large to address.
func Offset(page int) int {
	skipped := NormalizePage(page) - 1
	if skipped > math.MaxInt/domain.PageSize {
		return math.MaxInt
	}
	return skipped * domain.PageSize
}

// Window returns the slice bounds of page within total items.
func Window(page, total int) (int, int) {
	start := Offset(page)
	if start >= total {
		return total, total
	}
	end := total
	if total-start > domain.PageSize {
		end = start + domain.PageSize
	}
	return start, end
}
