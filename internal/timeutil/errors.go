package timeutil

import "github.com/ayoisaiah/forge/internal/apperr"

var (
	ErrInvalidDuration = &apperr.Error{
		Message: "invalid duration format: %q (use e.g. 2h30m, 45m, 90s)",
	}

	ErrInvalidDate = &apperr.Error{
		Message: "invalid date: %s (use YYYY-MM-DD)",
	}

	ErrInvalidClock = &apperr.Error{
		Message: "invalid time: %s (use HH:MM:SS with hours 00-23, minutes and seconds 00-59)",
	}

	ErrInvalidDateExpr = &apperr.Error{
		Message: "invalid %s format: %q (use YYYY-MM-DD, YYYY-MM, YYYY, or a relative date keyword)",
	}
)
