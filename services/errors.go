package services

import "errors"

// Errors shared across services and mapped to HTTP statuses in handlers.
var (
	ErrNotFound = errors.New("requested resource not found")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")

	ErrSportAlreadyRegistered = errors.New("sport already registered for this user")
	ErrInvalidEventDate       = errors.New("event date must be in YYYY-MM-DD format")
	ErrInvalidEventTime       = errors.New("event time must be in HH:MM format")

	ErrUserNotFound          = errors.New("user not found")
	ErrEventNotFound         = errors.New("event not found")
	ErrUserSportNotFound     = errors.New("sport registration not found")
	ErrParticipationNotFound = errors.New("participation not found")
)
