package domain

import "errors"

// Every layer surfaces one of these kinds; the API layer maps them to
// status codes. Raw store or crypto failures are never passed through.
var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateIdentity  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrResetTokenInvalid  = errors.New("password reset token is invalid or has expired")
	ErrEmailDelivery      = errors.New("email delivery failed")
)
