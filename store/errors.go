package store

import "errors"

// Error Handling Guidelines:
// - Stores: wrap with fmt.Errorf("context: %w", err)
// - Handlers: use apperrors.* functions for HTTP-appropriate errors

// Predefined errors for the store layer.
var (
	// ErrUnavailable indicates the backend could not be reached. Admin
	// query paths degrade to empty results on this error instead of
	// failing the request.
	ErrUnavailable = errors.New("storage unavailable")
)
