// Package store connects to the data store and manages study sessions and
// certificates
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/maruel/natural"
	bolt "go.etcd.io/bbolt"

	"github.com/lumii-app/lumii/internal/models"
	"github.com/lumii-app/lumii/internal/timeutil"
)

const (
	sessionsBucket     = "sessions"
	certificatesBucket = "certificates"
)

// keySep joins a session's timestamp and ID into a unique, time-ordered
// key. It sorts before every printable byte so the timestamp prefix keeps
// full control of the ordering.
const keySep = "\x00"

var pathToDB string

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

func sessionKey(sess *models.StudySession) []byte {
	key := timeutil.ToKey(sess.OccurredAt)
	key = append(key, keySep...)

	return append(key, sess.ID...)
}

func (c *Client) InsertSession(
	ctx context.Context,
	sess *models.StudySession,
) (*models.StudySession, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrStoreUnavailable.Wrap(err)
	}

	if sess.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	stored := *sess

	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}

	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	value, err := json.Marshal(&stored)
	if err != nil {
		return nil, err
	}

	err = c.Update(func(tx *bolt.Tx) error {
		b, err := tx.Bucket([]byte(sessionsBucket)).
			CreateBucketIfNotExists([]byte(stored.UserID))
		if err != nil {
			return err
		}

		return b.Put(sessionKey(&stored), value)
	})
	if err != nil {
		return nil, ErrStoreUnavailable.Wrap(err)
	}

	return &stored, nil
}

func (c *Client) FetchSessions(
	ctx context.Context,
	userID string,
	start, end time.Time,
) ([]*models.StudySession, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrStoreUnavailable.Wrap(err)
	}

	var raw [][]byte

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionsBucket)).Bucket([]byte(userID))
		if b == nil {
			return nil
		}

		cur := b.Cursor()
		min := timeutil.ToKey(start)
		// the separator suffix makes the bound inclusive of sessions
		// that occurred exactly at the end time
		max := append(timeutil.ToKey(end), 0xff)

		for k, v := cur.Seek(min); k != nil && bytes.Compare(k, max) <= 0; k, v = cur.Next() {
			raw = append(raw, v)
		}

		return nil
	})
	if err != nil {
		return nil, ErrStoreUnavailable.Wrap(err)
	}

	sessions := make([]*models.StudySession, 0, len(raw))

	for _, v := range raw {
		var sess models.StudySession

		err = json.Unmarshal(v, &sess)
		if err != nil {
			return nil, err
		}

		sessions = append(sessions, &sess)
	}

	return sessions, nil
}

func (c *Client) SaveCertificate(cert *models.Certificate) error {
	if cert.ID == "" {
		cert.ID = uuid.NewString()
	}

	if cert.CreatedAt.IsZero() {
		cert.CreatedAt = time.Now()
	}

	value, err := json.Marshal(cert)
	if err != nil {
		return err
	}

	err = c.Update(func(tx *bolt.Tx) error {
		b, err := tx.Bucket([]byte(certificatesBucket)).
			CreateBucketIfNotExists([]byte(cert.UserID))
		if err != nil {
			return err
		}

		return b.Put([]byte(cert.ID), value)
	})
	if err != nil {
		return ErrStoreUnavailable.Wrap(err)
	}

	return nil
}

func (c *Client) ListCertificates(
	userID string,
) ([]*models.Certificate, error) {
	var certs []*models.Certificate

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(certificatesBucket)).Bucket([]byte(userID))
		if b == nil {
			return nil
		}

		return b.ForEach(func(_, v []byte) error {
			var cert models.Certificate

			if err := json.Unmarshal(v, &cert); err != nil {
				return err
			}

			certs = append(certs, &cert)

			return nil
		})
	})
	if err != nil {
		return nil, ErrStoreUnavailable.Wrap(err)
	}

	sort.Slice(certs, func(i, j int) bool {
		return natural.Less(certs[i].Name, certs[j].Name)
	})

	return certs, nil
}

func (c *Client) Open() error {
	db, err := openDB(pathToDB)
	if err != nil {
		return err
	}

	*c = Client{
		db,
	}

	return nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrStoreUnavailable.Wrap(errLumiiRunning)
		}

		return nil, ErrStoreUnavailable.Wrap(err)
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	pathToDB = dbPath

	db, err := openDB(pathToDB)
	if err != nil {
		return nil, err
	}
	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(sessionsBucket))
		if err != nil {
			return err
		}

		_, err = tx.CreateBucketIfNotExists([]byte(certificatesBucket))
		return err
	})
	if err != nil {
		return nil, ErrStoreUnavailable.Wrap(err)
	}

	return &Client{
		db,
	}, nil
}
