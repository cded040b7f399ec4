package stats

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/pterm/pterm"

	"github.com/lumii-app/lumii/internal/models"
	"github.com/lumii-app/lumii/store"
	"github.com/lumii-app/lumii/tracker"
)

const serverTimeout = 10 * time.Second

type errorHandler func(w http.ResponseWriter, r *http.Request) error

func (h errorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h(w, r)
	if err != nil {
		slog.Error("request failed", slog.Any("error", err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// trackerResponse wraps the view with the facade state so clients can tell
// a degraded zeroed view apart from real emptiness.
type trackerResponse struct {
	View  *tracker.View `json:"view"`
	State string        `json:"state"`
	Error string        `json:"error,omitempty"`
}

// Server exposes the tracker facade over a thin JSON endpoint.
type Server struct {
	Tracker       *tracker.Tracker
	User          *models.User
	DefaultMonths int
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(v)
}

func (s *Server) months(r *http.Request) int {
	raw := r.URL.Query().Get("months")
	if raw == "" {
		return s.DefaultMonths
	}

	months, err := strconv.Atoi(raw)
	if err != nil || months <= 0 {
		return s.DefaultMonths
	}

	return months
}

func (s *Server) userID(r *http.Request) string {
	if id := r.URL.Query().Get("user"); id != "" {
		return id
	}

	return s.User.ID
}

// getTracker serves the read path for heatmap rendering. Store failures
// degrade to the zeroed view with the error reported in the payload.
func (s *Server) getTracker(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	months := s.months(r)
	userID := s.userID(r)

	var (
		view *tracker.View
		err  error
	)

	if r.URL.Query().Has("refresh") {
		view, err = s.Tracker.Refresh(ctx, userID, months)
	} else {
		view, err = s.Tracker.Get(ctx, userID, months)
	}

	if err != nil {
		if !errors.Is(err, store.ErrStoreUnavailable) {
			return err
		}

		return writeJSON(w, http.StatusOK, trackerResponse{
			View:  view,
			State: s.Tracker.State().String(),
			Error: err.Error(),
		})
	}

	return writeJSON(w, http.StatusOK, trackerResponse{
		View:  view,
		State: s.Tracker.State().String(),
	})
}

type recordRequest struct {
	DurationMinutes int              `json:"duration_minutes"`
	CertificateID   string           `json:"certificate_id,omitempty"`
	Technique       models.Technique `json:"technique,omitempty"`
	OccurredAt      time.Time        `json:"occurred_at,omitempty"`
}

// recordSession serves the write path invoked when a study session ends.
// Validation failures are the caller's to fix; store failures are
// retryable and must never be reported as success.
func (s *Server) recordSession(w http.ResponseWriter, r *http.Request) error {
	var req recordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	id, err := s.Tracker.Record(r.Context(), s.userID(r), tracker.Entry{
		DurationMinutes: req.DurationMinutes,
		CertificateID:   req.CertificateID,
		Technique:       req.Technique,
		OccurredAt:      req.OccurredAt,
	})
	if err != nil {
		if errors.Is(err, store.ErrStoreUnavailable) {
			return writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"error": err.Error(),
			})
		}

		return writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}

	return writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// Run starts the statistics server and blocks until it stops.
func (s *Server) Run(port uint) error {
	mux := http.NewServeMux()

	mux.Handle("GET /api/tracker", errorHandler(s.getTracker))
	mux.Handle("POST /api/sessions", errorHandler(s.recordSession))

	pterm.Info.Printfln("starting server on port: %d", port)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: serverTimeout,
	}

	return srv.ListenAndServe()
}
