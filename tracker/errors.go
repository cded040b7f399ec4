package tracker

import "github.com/lumii-app/lumii/internal/apperr"

var (
	// ErrInvalidRange reports a window whose start date falls after its
	// end date. Reaching the bucketer with such a window is a programming
	// error in the caller, not user input.
	ErrInvalidRange = &apperr.Error{
		Message: "invalid range: start date %s is after end date %s",
	}

	// ErrInvalidDuration rejects entries without a positive duration
	// before they reach the store.
	ErrInvalidDuration = &apperr.Error{
		Message: "session duration must be greater than zero minutes",
	}

	// ErrInvalidTechnique rejects unknown study techniques.
	ErrInvalidTechnique = &apperr.Error{
		Message: "unknown study technique: %s",
	}

	// ErrInvalidMonths rejects non-positive window sizes.
	ErrInvalidMonths = &apperr.Error{
		Message: "months must be greater than zero, got %d",
	}
)
