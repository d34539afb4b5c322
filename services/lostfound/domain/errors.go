package domain

import "errors"

// Error taxonomy for the classifieds core. Handlers map these to HTTP
// statuses; the messages double as the wire error strings.
var (
	// OTP store
	ErrNoChallenge = errors.New("no otp requested for this phone")
	ErrOTPExpired  = errors.New("otp expired")
	ErrOTPMismatch = errors.New("invalid otp")

	// User directory
	ErrUserNotFound = errors.New("user not found")

	// Session authority. A blocked user and an unknown token are
	// deliberately indistinguishable to the caller.
	ErrUnauthenticated    = errors.New("unauthenticated or blocked")
	ErrInvalidCredentials = errors.New("invalid password")

	// Post catalog
	ErrInvalidPostType = errors.New(`type must be "lost" or "found"`)
	ErrTitleRequired   = errors.New("title is required")
)
