package service

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrWeakPassword           = errors.New("password must be at least 6 characters")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailNotVerified       = errors.New("email not verified")

	// ErrInvalidToken covers unknown, expired and already-consumed tokens.
	// Callers are deliberately unable to tell which, so responses never
	// confirm whether a token exists.
	ErrInvalidToken = errors.New("invalid or expired token")

	ErrMFARequired      = errors.New("mfa required")
	ErrInvalidMFACode   = errors.New("invalid mfa code")
	ErrMFANotConfigured = errors.New("mfa not configured")
	ErrUserNotFound     = errors.New("user not found")

	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")

	ErrInvalidDateRange = errors.New("start date must be before end date")
	ErrInvalidCapacity  = errors.New("available spots must be between 0 and max travelers")
	ErrInvalidTravelers = errors.New("number of travelers must be at least 1")
	ErrInvalidAmount    = errors.New("amount must not be negative")
	ErrTripFull         = errors.New("not enough spots available")
	ErrTripNotBookable  = errors.New("trip is not open for booking")
	ErrInvalidStatus    = errors.New("invalid status value")
	ErrInvalidCategory  = errors.New("invalid gallery category")
)
