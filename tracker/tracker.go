package tracker

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/lumii-app/lumii/internal/models"
	"github.com/lumii-app/lumii/internal/timeutil"
	"github.com/lumii-app/lumii/store"
)

// State is the lifecycle state of the facade's cached view.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "uninitialized"
	}
}

// View is the aggregate returned to callers. Every call hands out a fresh
// value; views are never mutated once published.
type View struct {
	Buckets       []DayBucket              `json:"buckets"`
	TotalMinutes  int                      `json:"total_minutes"`
	CurrentStreak int                      `json:"current_streak"`
	LongestStreak int                      `json:"longest_streak"`
	Techniques    map[models.Technique]int `json:"techniques,omitempty"`
	Certificates  map[string]int           `json:"certificates,omitempty"`
}

// Today returns the bucket for the most recent day in the window.
func (v *View) Today() DayBucket {
	if len(v.Buckets) == 0 {
		return DayBucket{}
	}

	return v.Buckets[len(v.Buckets)-1]
}

func (v *View) clone() *View {
	c := *v
	c.Buckets = slices.Clone(v.Buckets)
	c.Techniques = maps.Clone(v.Techniques)
	c.Certificates = maps.Clone(v.Certificates)

	return &c
}

// Entry describes a study session to record. A zero OccurredAt means the
// session just finished.
type Entry struct {
	DurationMinutes int
	CertificateID   string
	Technique       models.Technique
	OccurredAt      time.Time
}

// Tracker orchestrates the store adapter, bucketer, aggregator, and streak
// calculator behind the query operations the UI layers call. It owns one
// cached view per (user, window) and guards it with a mutex; buckets are
// never mutated in place once a view has been handed out.
type Tracker struct {
	db  store.DB
	loc *time.Location
	now func() time.Time

	mu          sync.Mutex
	state       State
	view        *View
	cachedUser  string
	cachedStart timeutil.Date
	cachedEnd   timeutil.Date
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLocation sets the timezone used to derive calendar dates from
// session timestamps. Defaults to the system's local timezone.
func WithLocation(loc *time.Location) Option {
	return func(t *Tracker) {
		t.loc = loc
	}
}

// WithClock overrides the time source used to anchor "today".
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// New creates a tracker facade on top of the given store.
func New(db store.DB, opts ...Option) *Tracker {
	t := &Tracker{
		db:  db,
		loc: time.Local,
		now: time.Now,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// State reports the lifecycle state of the cached view.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state
}

// window computes the inclusive [today - months, today] date range.
func (t *Tracker) window(months int) (start, end timeutil.Date) {
	end = timeutil.DateOf(t.now().In(t.loc))
	start = end.AddMonths(-months)

	return start, end
}

// Get returns the tracker view for the last N months, serving the cached
// view when it covers the same user and window. When the store cannot be
// reached it still returns a zeroed view for the window alongside the
// error so callers can render "no activity yet" instead of failing.
func (t *Tracker) Get(
	ctx context.Context,
	userID string,
	months int,
) (*View, error) {
	if months <= 0 {
		return nil, ErrInvalidMonths.Fmt(months)
	}

	start, end := t.window(months)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StateReady && t.cachedUser == userID &&
		t.cachedStart == start && t.cachedEnd == end {
		return t.view.clone(), nil
	}

	return t.load(ctx, userID, start, end)
}

// Refresh forces a full recompute for the window, bypassing the cached
// view. It reconciles the facade after external changes, such as a session
// logged from another device.
func (t *Tracker) Refresh(
	ctx context.Context,
	userID string,
	months int,
) (*View, error) {
	if months <= 0 {
		return nil, ErrInvalidMonths.Fmt(months)
	}

	start, end := t.window(months)

	t.mu.Lock()
	defer t.mu.Unlock()

	return t.load(ctx, userID, start, end)
}

// Record validates and persists a new study session, then brings the
// cached view back in sync. The write must be confirmed by the store
// before any derived state changes; a failed insert leaves the cache
// untouched and surfaces a retryable error.
func (t *Tracker) Record(
	ctx context.Context,
	userID string,
	entry Entry,
) (string, error) {
	if entry.DurationMinutes <= 0 {
		return "", ErrInvalidDuration
	}

	if entry.Technique != "" && !entry.Technique.Valid() {
		return "", ErrInvalidTechnique.Fmt(entry.Technique)
	}

	occurredAt := entry.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = t.now()
	}

	sess := &models.StudySession{
		UserID:          userID,
		OccurredAt:      occurredAt,
		DurationMinutes: entry.DurationMinutes,
		CertificateID:   entry.CertificateID,
		Technique:       entry.Technique,
	}

	stored, err := t.db.InsertSession(ctx, sess)
	if err != nil {
		return "", err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.absorb(stored)

	return stored.ID, nil
}

// load recomputes the view for the window and caches it.
func (t *Tracker) load(
	ctx context.Context,
	userID string,
	start, end timeutil.Date,
) (*View, error) {
	t.state = StateLoading

	skeleton, err := Skeleton(start, end)
	if err != nil {
		t.state = StateError
		return nil, err
	}

	t.cachedUser = userID
	t.cachedStart = start
	t.cachedEnd = end

	sessions, err := t.db.FetchSessions(
		ctx,
		userID,
		start.Time(t.loc),
		timeutil.RoundToEnd(end.Time(t.loc)),
	)
	if err != nil {
		t.view = compose(skeleton, nil, t.loc)
		t.state = StateError

		return t.view.clone(), err
	}

	t.view = compose(skeleton, sessions, t.loc)
	t.state = StateReady

	return t.view.clone(), nil
}

// absorb applies a freshly stored session to the cached view. When the
// session belongs to another user or lands outside the cached window the
// cache is invalidated instead, so the next read recomputes it.
func (t *Tracker) absorb(sess *models.StudySession) {
	if t.state != StateReady || t.cachedUser != sess.UserID {
		t.invalidate()
		return
	}

	date := timeutil.DateOf(sess.OccurredAt.In(t.loc))
	if date.Before(t.cachedStart) || date.After(t.cachedEnd) {
		t.invalidate()
		return
	}

	next := t.view.clone()

	i := t.cachedStart.DaysUntil(date)
	applyDelta(&next.Buckets[i], sess.DurationMinutes, 1)
	next.Buckets[i].Intensity = IntensityOf(next.Buckets[i].TotalMinutes)

	next.TotalMinutes += sess.DurationMinutes
	next.CurrentStreak, next.LongestStreak = Streaks(next.Buckets)

	if sess.Technique != "" {
		if next.Techniques == nil {
			next.Techniques = make(map[models.Technique]int)
		}

		next.Techniques[sess.Technique] += sess.DurationMinutes
	}

	if sess.CertificateID != "" {
		if next.Certificates == nil {
			next.Certificates = make(map[string]int)
		}

		next.Certificates[sess.CertificateID] += sess.DurationMinutes
	}

	t.view = next
}

func (t *Tracker) invalidate() {
	t.view = nil
	t.cachedUser = ""
	t.state = StateUninitialized
}

// compose runs the full aggregation pipeline over a bucket skeleton.
func compose(
	skeleton []DayBucket,
	sessions []*models.StudySession,
	loc *time.Location,
) *View {
	buckets := Aggregate(skeleton, sessions, loc)

	view := &View{
		Buckets: buckets,
	}

	view.CurrentStreak, view.LongestStreak = Streaks(buckets)

	for i := range buckets {
		view.TotalMinutes += buckets[i].TotalMinutes
	}

	if len(buckets) == 0 {
		return view
	}

	start := buckets[0].Date
	end := buckets[len(buckets)-1].Date

	for _, sess := range sessions {
		date := timeutil.DateOf(sess.OccurredAt.In(loc))
		if date.Before(start) || date.After(end) {
			continue
		}

		if sess.Technique != "" {
			if view.Techniques == nil {
				view.Techniques = make(map[models.Technique]int)
			}

			view.Techniques[sess.Technique] += sess.DurationMinutes
		}

		if sess.CertificateID != "" {
			if view.Certificates == nil {
				view.Certificates = make(map[string]int)
			}

			view.Certificates[sess.CertificateID] += sess.DurationMinutes
		}
	}

	return view
}
