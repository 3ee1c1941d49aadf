package config

import "github.com/ayoisaiah/forge/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidGoal = &apperr.Error{
		Message: "daily goal must be between %v and %v, got %q",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown store driver: %q (must be bolt or sqlite)",
	}

	errUnknownLogLevel = &apperr.Error{
		Message: "unknown log level: %q (must be debug, info, warn or error)",
	}

	errEmptyName = &apperr.Error{
		Message: "leaderboard name cannot be empty",
	}

	errInvalidCLIGoal = &apperr.Error{
		Message: "invalid --goal value",
	}
)
