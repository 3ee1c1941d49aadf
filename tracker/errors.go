package tracker

import (
	"errors"

	"github.com/ayoisaiah/forge/internal/apperr"
)

var (
	ErrAlreadyRunning = &apperr.Error{
		Message: "a session is already running since %s %s: stop it first",
	}

	ErrNotRunning = &apperr.Error{
		Message: "no session is currently running",
	}

	ErrNotFound = &apperr.Error{
		Message: "session with id %d not found",
	}

	ErrUnknownSerial = &apperr.Error{
		Message: "invalid serial number: %d. No matching session found",
	}

	ErrMappingMissing = &apperr.Error{
		Message: "serial number mapping not found: run 'forge list' to generate it",
	}

	ErrInvalidFormat = &apperr.Error{
		Message: "invalid time range: %q. Use 'HH:MM AM/PM - HH:MM AM/PM'",
	}

	ErrInvalidRange = &apperr.Error{
		Message: "invalid time range: %s",
	}

	ErrOverlap = &apperr.Error{
		Message: "session overlaps with an existing session on %s",
	}

	ErrPersistence = &apperr.Error{
		Message: "failed to save the session",
	}
)

// errStopBlocked explains how to get out of a stop that collides with a
// record added while the timer ran.
var errStopBlocked = errors.New(
	"the session is still running; edit or delete the later session with 'forge list' and 'forge edit' or 'forge delete', then stop again",
)
