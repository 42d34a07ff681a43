package domain

import "errors"

// Sentinel errors shared across services. Controllers map these onto the API
// error envelope, each with a fixed user-facing message.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)
