package config

import "github.com/lumii-app/lumii/internal/apperr"

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

	errMissingUserID = &apperr.Error{
		Message: "user.id must not be empty",
	}

	errNegativeGoal = &apperr.Error{
		Message: "study goals must not be negative",
	}

	errInvalidTimezone = &apperr.Error{
		Message: "unknown timezone: %s",
	}
)
