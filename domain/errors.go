package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrUserInactive       = errors.New("account is deactivated")
)

// Token errors. All integrity failures (bad signature, expired, wrong
// algorithm, malformed) collapse into this single sentinel; callers are not
// told which sub-check failed.
var ErrTokenInvalid = errors.New("invalid token")

// Catalog errors
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrSKUAlreadyExists = errors.New("product with this SKU already exists")
)

// Authorization errors
var (
	ErrUnauthorized     = errors.New("unauthorized access")
	ErrInsufficientRole = errors.New("insufficient role permissions")
)
