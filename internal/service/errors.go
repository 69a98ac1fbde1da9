package service

import "errors"

// Service-level errors mapped to HTTP status codes by the handlers.
// Upstream generation failures never surface here; they degrade to the
// offline fallback inside ContentService.
var (
	ErrInvalidInput = errors.New("missing required fields")
	ErrConflict     = errors.New("user already exists")
	ErrUnauthorized = errors.New("invalid credentials")
	ErrNotFound     = errors.New("not found")
)
