package stats

import "github.com/ayoisaiah/forge/internal/apperr"

var (
	ErrInvalidFilterFormat = &apperr.Error{
		Message: "invalid filter: %q (use <op>:<duration> where op is one of gt, lt, eq, gte, lte)",
	}

	ErrInvalidStatus = &apperr.Error{
		Message: "invalid status: %q (use passed or failed)",
	}

	ErrInvalidSortKey = &apperr.Error{
		Message: "invalid sort key: %q (use one of %s)",
	}

	ErrConflictingFilters = &apperr.Error{
		Message: "--month cannot be combined with --date, --since or --until",
	}

	ErrGranularity = &apperr.Error{
		Message: "%s expects a %s but got %q",
	}

	ErrGranularityMismatch = &apperr.Error{
		Message: "--since (%s) and --until (%s) must use the same format",
	}

	ErrSinceAfterUntil = &apperr.Error{
		Message: "--since (%s) cannot be after --until (%s)",
	}
)
