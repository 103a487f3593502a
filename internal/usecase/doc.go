// Package usecase implements the gym check-in application operations on top
// of injected domain repositories.
package usecase
