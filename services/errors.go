package services

import "errors"

// Error kinds controllers map onto HTTP statuses. Ownership misses
// surface as ErrNotFound on purpose: the response for "not yours" must be
// indistinguishable from "does not exist".
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrEmailTaken         = errors.New("email or username already registered")
	ErrResetTokenInvalid  = errors.New("invalid or expired reset token")
)
