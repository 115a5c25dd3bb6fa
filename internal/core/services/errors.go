package services

import "errors"

// Catalog errors
var (
	ErrLoanPackageNameRequired = errors.New("loan package name is required")
	ErrConsultantNameRequired  = errors.New("consultant name is required")
)

// Navbar errors
var (
	ErrUnknownNavbarTitle   = errors.New("unknown navbar title")
	ErrDuplicateNavbarTitle = errors.New("duplicate navbar title")
)

// Auth errors
var (
	ErrMissingCredentials   = errors.New("username and password are required")
	ErrMissingPasswordField = errors.New("all password fields are required")
	ErrPasswordMismatch     = errors.New("new password and confirmation do not match")
	ErrPasswordTooShort     = errors.New("new password must be at least 6 characters")
	ErrWrongCurrentPassword = errors.New("current password is incorrect")
)
