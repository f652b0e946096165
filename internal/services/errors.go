package services

import "github.com/pkg/errors"

// Sentinel errors mapped to HTTP statuses by the handlers.
var (
	ErrInvalidAction = errors.New("invalid swipe action")
	ErrInvalidStatus = errors.New("invalid match status")
	ErrInvalidScore  = errors.New("score must be between 1 and 5")
	ErrForbidden     = errors.New("caller does not own this resource")
)
