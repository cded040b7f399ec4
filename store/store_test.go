package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/lumii-app/lumii/internal/models"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	client, err := NewClient(filepath.Join(t.TempDir(), "lumii.db"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}

func insertAt(
	t *testing.T,
	client *Client,
	userID string,
	occurredAt time.Time,
	minutes int,
) *models.StudySession {
	t.Helper()

	stored, err := client.InsertSession(context.Background(), &models.StudySession{
		UserID:          userID,
		OccurredAt:      occurredAt,
		DurationMinutes: minutes,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return stored
}

func TestInsertSession(t *testing.T) {
	client := newTestClient(t)

	occurredAt := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	stored := insertAt(t, client, "user-1", occurredAt, 45)

	if stored.ID == "" {
		t.Error("expected an ID to be assigned")
	}

	if stored.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	got, err := client.FetchSessions(
		context.Background(),
		"user-1",
		occurredAt.Add(-time.Minute),
		occurredAt.Add(time.Minute),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("expected 1 session, but got: %d", len(got))
	}

	if diff := cmp.Diff(stored, got[0]); diff != "" {
		t.Errorf("fetched session differs from stored (-want +got):\n%s", diff)
	}
}

func TestInsertSessionInvalidDuration(t *testing.T) {
	client := newTestClient(t)

	for _, minutes := range []int{0, -10} {
		_, err := client.InsertSession(context.Background(), &models.StudySession{
			UserID:          "user-1",
			OccurredAt:      time.Now(),
			DurationMinutes: minutes,
		})
		if !errors.Is(err, ErrInvalidDuration) {
			t.Errorf(
				"%d minutes: expected ErrInvalidDuration, but got: %v",
				minutes,
				err,
			)
		}
	}
}

func TestFetchSessionsRange(t *testing.T) {
	client := newTestClient(t)

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	// inserted out of order to exercise key ordering
	for _, day := range []int{5, 1, 3, 2, 4} {
		insertAt(t, client, "user-1", base.AddDate(0, 0, day), 30)
	}

	start := base.AddDate(0, 0, 2)
	end := base.AddDate(0, 0, 4)

	got, err := client.FetchSessions(context.Background(), "user-1", start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("expected 3 sessions in range, but got: %d", len(got))
	}

	// both bounds are inclusive
	if !got[0].OccurredAt.Equal(start) {
		t.Errorf("expected first session at %v, but got: %v", start, got[0].OccurredAt)
	}

	if !got[len(got)-1].OccurredAt.Equal(end) {
		t.Errorf(
			"expected last session at %v, but got: %v",
			end,
			got[len(got)-1].OccurredAt,
		)
	}

	for i := 1; i < len(got); i++ {
		if got[i].OccurredAt.Before(got[i-1].OccurredAt) {
			t.Errorf(
				"expected ascending order, but session %d precedes session %d",
				i,
				i-1,
			)
		}
	}
}

func TestFetchSessionsEmpty(t *testing.T) {
	client := newTestClient(t)

	got, err := client.FetchSessions(
		context.Background(),
		"nobody",
		time.Now().AddDate(0, -1, 0),
		time.Now(),
	)
	if err != nil {
		t.Fatalf("expected an empty result without error, but got: %v", err)
	}

	if len(got) != 0 {
		t.Errorf("expected no sessions, but got: %d", len(got))
	}
}

func TestFetchSessionsIsolatedPerUser(t *testing.T) {
	client := newTestClient(t)

	now := time.Now()

	insertAt(t, client, "user-1", now, 30)
	insertAt(t, client, "user-2", now, 60)

	got, err := client.FetchSessions(
		context.Background(),
		"user-1",
		now.Add(-time.Hour),
		now.Add(time.Hour),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 1 || got[0].DurationMinutes != 30 {
		t.Errorf("expected only user-1's session, but got: %+v", got)
	}
}

func TestFetchSessionsSameTimestamp(t *testing.T) {
	client := newTestClient(t)

	occurredAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	insertAt(t, client, "user-1", occurredAt, 20)
	insertAt(t, client, "user-1", occurredAt, 40)

	got, err := client.FetchSessions(
		context.Background(),
		"user-1",
		occurredAt,
		occurredAt,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Errorf(
			"expected both sessions at the same instant, but got: %d",
			len(got),
		)
	}
}

func TestCertificates(t *testing.T) {
	client := newTestClient(t)

	names := []string{"Cert 10", "Cert 2", "Cert 1"}

	for _, name := range names {
		err := client.SaveCertificate(&models.Certificate{
			UserID:      "user-1",
			Name:        name,
			TargetHours: 100,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	certs, err := client.ListCertificates("user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []string
	for _, cert := range certs {
		if cert.ID == "" {
			t.Errorf("expected %q to have an ID assigned", cert.Name)
		}

		got = append(got, cert.Name)
	}

	// natural sort keeps Cert 2 ahead of Cert 10
	want := []string{"Cert 1", "Cert 2", "Cert 10"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("certificate order differs (-want +got):\n%s", diff)
	}
}
