// Package timer operates the Lumii countdown timer and records the study
// session it measures
package timer

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"

	"github.com/lumii-app/lumii/internal/models"
	"github.com/lumii-app/lumii/internal/ui"
	"github.com/lumii-app/lumii/tracker"
)

// Opts configures one timed study session.
type Opts struct {
	UserID        string
	Duration      time.Duration
	Technique     models.Technique
	CertificateID string
	Notify        bool
	SessionCmd    string
}

// Timer counts down a study session and records it through the tracker
// facade once it ends.
type Timer struct {
	tracker *tracker.Tracker
	opts    Opts
}

// New creates a new timer.
func New(trk *tracker.Tracker, opts Opts) *Timer {
	return &Timer{
		tracker: trk,
		opts:    opts,
	}
}

// countdown prints the time remaining until the end of the session.
func (t *Timer) countdown(remaining time.Duration) {
	mins := int(remaining.Minutes())
	secs := int(remaining.Seconds()) % 60

	fmt.Fprintf(
		os.Stdout,
		"\r🕒%s:%s",
		pterm.Yellow(fmt.Sprintf("%02d", mins)),
		pterm.Yellow(fmt.Sprintf("%02d", secs)),
	)
}

// notify sends a desktop notification when the session completes.
func (t *Timer) notify() {
	if !t.opts.Notify {
		return
	}

	err := beeep.Notify(
		"Study session complete",
		fmt.Sprintf("You studied for %d minutes. Well done!",
			int(t.opts.Duration.Minutes())),
		"",
	)
	if err != nil {
		pterm.Error.Printfln("unable to display notification: %v", err)
	}
}

// runSessionCmd executes the user-configured command.
func (t *Timer) runSessionCmd() error {
	if t.opts.SessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(t.opts.SessionCmd)
	if err != nil {
		return fmt.Errorf("unable to parse session_cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	return cmd.Run()
}

// record persists the measured session. The tracker confirms the write
// before updating any derived state, so an error here means nothing was
// saved and the user should retry with the same duration.
func (t *Timer) record(
	ctx context.Context,
	start time.Time,
	minutes int,
) error {
	_, err := t.tracker.Record(ctx, t.opts.UserID, tracker.Entry{
		DurationMinutes: minutes,
		CertificateID:   t.opts.CertificateID,
		Technique:       t.opts.Technique,
		OccurredAt:      start,
	})
	if err != nil {
		return err
	}

	pterm.Success.Printfln("logged %d minutes of study time", minutes)

	return nil
}

// Run counts down the session and blocks until it completes or is
// interrupted. An interrupted session still records its elapsed whole
// minutes so no study time is lost.
func (t *Timer) Run(ctx context.Context) error {
	start := time.Now()
	end := start.Add(t.opts.Duration)

	label := ui.Green("[Study]")
	if t.opts.Technique != "" {
		label = ui.Green(fmt.Sprintf("[%s]", t.opts.Technique))
	}

	fmt.Fprintf(
		os.Stdout,
		"%s until %s\n",
		label,
		ui.Highlight(end.Format("03:04:05 PM")),
	)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	defer signal.Stop(interrupt)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	t.countdown(t.opts.Duration)

	for {
		select {
		case <-ticker.C:
			remaining := time.Until(end)

			if remaining <= 0 {
				fmt.Fprintf(os.Stdout, "\nSession completed!\n\n")

				err := t.record(ctx, start, int(t.opts.Duration.Minutes()))
				if err != nil {
					return err
				}

				t.notify()

				return t.runSessionCmd()
			}

			t.countdown(remaining)
		case <-interrupt:
			fmt.Fprintf(os.Stdout, "\n")

			minutes := int(time.Since(start).Minutes())
			if minutes < 1 {
				pterm.Info.Println("session under a minute, nothing to record")
				return nil
			}

			return t.record(ctx, start, minutes)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
