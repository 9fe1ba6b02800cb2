package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrServiceNotFound    = errors.New("service not found")
	ErrTeamMemberNotFound = errors.New("team member not found")
)

// Empty result sets are surfaced as errors, not empty lists. This mirrors
// the public contract of the list endpoints (404 when nothing exists).
var (
	ErrNoBookings    = errors.New("no bookings found for this user")
	ErrNoEvents      = errors.New("no events found")
	ErrNoServices    = errors.New("no services found")
	ErrNoTeamMembers = errors.New("no team members found")
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var (
	ErrValidation = errors.New("validation error")
)
