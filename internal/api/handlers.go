// Package api exposes HTTP handlers for the gym check-in service.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"example.com/gymcheckin/internal/auth"
	"example.com/gymcheckin/internal/domain"
	"example.com/gymcheckin/internal/persistence"
	"example.com/gymcheckin/internal/usecase"
)

// Handler coordinates HTTP requests with the use-cases.
type Handler struct {
	useCases usecase.UseCases
	logger   *slog.Logger
}

// NewHandler builds a Handler. A nil logger discards server-error logs.
func NewHandler(useCases usecase.UseCases, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{useCases: useCases, logger: logger}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("POST /gyms", auth.AdminOnly(http.HandlerFunc(h.createGym)))
	mux.HandleFunc("GET /gyms/search", h.searchGyms)
	mux.HandleFunc("GET /gyms/nearby", h.nearbyGyms)
	mux.HandleFunc("POST /gyms/{gymId}/check-ins", h.createCheckIn)
	mux.HandleFunc("GET /check-ins/history", h.checkInHistory)
	mux.HandleFunc("GET /check-ins/metrics", h.checkInMetrics)
	mux.HandleFunc("GET /healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) createGym(w http.ResponseWriter, r *http.Request) {
	var req CreateGymRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	out, err := h.useCases.CreateGym.Execute(r.Context(), usecase.CreateGymInput{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Phone:       req.Phone,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, GymResponse{Gym: toGymView(out.Gym)})
}

func (h *Handler) searchGyms(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireClaims(w, r); !ok {
		return
	}

	query := r.URL.Query()
	page, err := persistence.ParsePage(query.Get("page"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	out, err := h.useCases.SearchGyms.Execute(r.Context(), usecase.SearchGymsInput{
		Query: query.Get("q"),
		Page:  page,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, GymsResponse{Gyms: toGymViews(out.Gyms)})
}

func (h *Handler) nearbyGyms(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireClaims(w, r); !ok {
		return
	}

	coords, err := parseCoordinateQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	out, err := h.useCases.FetchNearbyGyms.Execute(r.Context(), usecase.FetchNearbyGymsInput{
		UserLatitude:  coords.Latitude,
		UserLongitude: coords.Longitude,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, GymsResponse{Gyms: toGymViews(out.Gyms)})
}

func (h *Handler) createCheckIn(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireClaims(w, r)
	if !ok {
		return
	}

	gymID := strings.TrimSpace(r.PathValue("gymId"))
	if gymID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing gym id")
		return
	}

	var req CreateCheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	out, err := h.useCases.CheckIn.Execute(r.Context(), usecase.CheckInInput{
		UserID:        claims.Subject,
		GymID:         gymID,
		UserLatitude:  *req.Latitude,
		UserLongitude: *req.Longitude,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, CheckInResponse{CheckIn: toCheckInView(out.CheckIn)})
}

func (h *Handler) checkInHistory(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireClaims(w, r)
	if !ok {
		return
	}

	page, err := persistence.ParsePage(r.URL.Query().Get("page"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	out, err := h.useCases.FetchUserCheckInHistory.Execute(r.Context(), usecase.FetchUserCheckInsHistoryInput{
		UserID: claims.Subject,
		Page:   page,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	items := make([]CheckInView, 0, len(out.CheckIns))
	for _, checkIn := range out.CheckIns {
		items = append(items, toCheckInView(checkIn))
	}
	writeJSON(w, http.StatusOK, CheckInsResponse{CheckIns: items, Page: page})
}

func (h *Handler) checkInMetrics(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireClaims(w, r)
	if !ok {
		return
	}

	out, err := h.useCases.GetUserMetrics.Execute(r.Context(), usecase.GetUserMetricsInput{UserID: claims.Subject})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MetricsResponse{CheckInsCount: out.CheckInsCount})
}

func requireClaims(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
	claims, ok := auth.FromContext(r.Context())
	if !ok || claims == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return nil, false
	}
	return claims, true
}

// writeDomainError maps use-case errors onto HTTP problem responses.
func (h *Handler) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		notFound    *domain.ResourceNotFoundError
		maxDistance *domain.MaxDistanceError
		maxCheckIns *domain.MaxNumberOfCheckInsError
	)
	switch {
	case errors.As(err, &notFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.As(err, &maxDistance):
		writeError(w, http.StatusBadRequest, "max_distance", err.Error())
	case errors.As(err, &maxCheckIns):
		writeError(w, http.StatusConflict, "max_check_ins", err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "server_error", "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
