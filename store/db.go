package store

import (
	"context"
	"time"

	"github.com/lumii-app/lumii/internal/models"
)

// DB is the database storage interface. It is the single path to
// persistence; no other package reaches storage directly.
type DB interface {
	// FetchSessions returns the user's sessions whose OccurredAt falls
	// within [start, end] inclusive, ordered by OccurredAt ascending. An
	// empty result is not an error.
	FetchSessions(
		ctx context.Context,
		userID string,
		start, end time.Time,
	) ([]*models.StudySession, error)
	// InsertSession durably persists a session, assigning an ID when the
	// record carries none, and returns the stored record.
	InsertSession(
		ctx context.Context,
		sess *models.StudySession,
	) (*models.StudySession, error)
	// SaveCertificate creates or overwrites a certificate record.
	SaveCertificate(cert *models.Certificate) error
	// ListCertificates returns all of the user's certificates.
	ListCertificates(userID string) ([]*models.Certificate, error)
	// Close ends the database connection
	Close() error
	// Open begins a database connection
	Open() error
}
