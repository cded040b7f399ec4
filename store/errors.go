package store

import "github.com/lumii-app/lumii/internal/apperr"

var (
	// ErrStoreUnavailable indicates that the datastore could not be
	// reached, locked, or queried in time.
	ErrStoreUnavailable = &apperr.Error{
		Message: "the session store is unavailable",
	}

	// ErrInvalidDuration rejects sessions whose duration is not a
	// positive number of minutes.
	ErrInvalidDuration = &apperr.Error{
		Message: "session duration must be greater than zero minutes",
	}

	errLumiiRunning = &apperr.Error{
		Message: "is Lumii already running? Only one instance can be active at a time",
	}
)
