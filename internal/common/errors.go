package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// Post errors
	ErrPostNotFound = errors.New("post not found")

	// Message errors
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrMessageLocked     = errors.New("cannot message yet: interact 3 times first or upgrade to VIP")
	ErrSelfMessage       = errors.New("cannot message yourself")

	// Venue errors
	ErrVenueClosed = errors.New("club is closed")

	// Auth errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrContentRequired = errors.New("content required")
)

// HTTPStatus maps a business error to an HTTP status code
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidCredentials):
		return 401
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrVenueClosed), errors.Is(err, ErrMessageLocked):
		return 403
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrPostNotFound),
		errors.Is(err, ErrRecipientNotFound), errors.Is(err, ErrUserNotFound):
		return 404
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrContentRequired),
		errors.Is(err, ErrEmailTaken), errors.Is(err, ErrSelfMessage):
		return 400
	default:
		return 500
	}
}
