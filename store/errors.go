package store

import "github.com/ayoisaiah/forge/internal/apperr"

var (
	ErrForgeRunning = &apperr.Error{
		Message: "is forge already running? Only one instance can access the database at a time",
	}

	// ErrNoRows is returned when an update or delete targets a record that
	// does not exist. The whole mutation is rolled back.
	ErrNoRows = &apperr.Error{
		Message: "no session with id %d",
	}

	// ErrNoSerials is returned when no serial mapping has been saved yet.
	ErrNoSerials = &apperr.Error{
		Message: "serial number mapping not found",
	}

	ErrUnknownDriver = &apperr.Error{
		Message: "unknown store driver: %q (must be bolt or sqlite)",
	}
)
