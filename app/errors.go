package app

import "github.com/ayoisaiah/forge/internal/apperr"

var (
	// ErrListRequired guards edit and delete so that serial numbers always
	// refer to the listing the user last saw.
	ErrListRequired = &apperr.Error{
		Message: "you must run the 'list' command before %s",
	}

	errInvalidSerial = &apperr.Error{
		Message: "invalid serial number: %q (must be a positive integer)",
	}

	errInvalidArgs = &apperr.Error{
		Message: "invalid arguments",
	}

	errUnexpectedArg = &apperr.Error{
		Message: "unexpected argument: %q",
	}

	errMissingArg = &apperr.Error{
		Message: "missing argument: %s",
	}

	errInvalidSortKey = &apperr.Error{
		Message: "invalid sort key: %q (use one of %s)",
	}

	errDeleteCancelled = &apperr.Error{
		Message: "delete cancelled",
	}
)
