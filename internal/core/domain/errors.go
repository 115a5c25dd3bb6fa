package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// Catalog errors
var (
	ErrLoanPackageNotFound = errors.New("loan package not found")
	ErrPackageLimitReached = errors.New("loan package limit reached")
	ErrConsultantNotFound  = errors.New("consultant not found")
	ErrAdminUserNotFound   = errors.New("admin user not found")
)

// Tracking errors
var (
	ErrSessionNotFound   = errors.New("tracking session not found")
	ErrNotEnoughPackages = errors.New("not enough loan packages for test data")
)
