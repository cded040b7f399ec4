package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/markusmobius/go-dateparser"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/lumii-app/lumii/internal/config"
	"github.com/lumii-app/lumii/internal/log"
	"github.com/lumii-app/lumii/internal/models"
	"github.com/lumii-app/lumii/internal/ui"
	"github.com/lumii-app/lumii/stats"
	"github.com/lumii-app/lumii/store"
	"github.com/lumii-app/lumii/timer"
	"github.com/lumii-app/lumii/tracker"
)

const (
	envNoColor      = "NO_COLOR"
	envLumiiNoColor = "LUMII_NO_COLOR"
	envLumiiDebug   = "LUMII_DEBUG"
)

var (
	errDurationRequired = errors.New(
		"a session duration in minutes is required: use --duration",
	)

	errCertNameRequired = errors.New(
		"a certification name is required",
	)
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.New(config.WithViperConfig(config.ConfigFilePath()))
	if err != nil {
		return nil, err
	}

	slog.Debug(spew.Sdump(cfg))

	ui.DarkTheme = cfg.Tracker.DarkTheme

	return cfg, nil
}

// trackerHelper assembles the store client and tracker facade from the
// loaded configuration.
func trackerHelper(
	cfg *config.Config,
) (*tracker.Tracker, *store.Client, error) {
	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return nil, nil, err
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, err
	}

	trk := tracker.New(db, tracker.WithLocation(loc))

	return trk, db, nil
}

// certNames maps certificate IDs to display names for activity labels. A
// lookup failure only loses labels, never the dashboard.
func certNames(db store.DB, userID string) map[string]string {
	certs, err := db.ListCertificates(userID)
	if err != nil {
		slog.Warn("certificate lookup failed", slog.Any("error", err))
		return nil
	}

	names := make(map[string]string, len(certs))
	for _, cert := range certs {
		names[cert.ID] = cert.Name
	}

	return names
}

// dashboardAction renders the study-activity dashboard for the configured
// reporting window.
func dashboardAction(ctx *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	trk, db, err := trackerHelper(cfg)
	if err != nil {
		return err
	}

	defer db.Close()

	months := cfg.Tracker.DefaultMonths
	if ctx.Int("months") > 0 {
		months = ctx.Int("months")
	}

	userID := firstNonEmptyString(ctx.String("user"), cfg.User.ID)

	view, err := trk.Get(ctx.Context, userID, months)
	if err != nil {
		if !errors.Is(err, store.ErrStoreUnavailable) {
			return err
		}

		pterm.Warning.Println(
			"the session store is unreachable, showing an empty dashboard",
		)
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(view)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	report := &stats.Report{
		View:      view,
		User:      cfg.Profile(),
		CertNames: certNames(db, userID),
		Stdout:    config.Stdout,
	}

	return report.Show()
}

// logAction records a completed study session from the command line.
func logAction(ctx *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if ctx.Int("duration") == 0 {
		return errDurationRequired
	}

	trk, db, err := trackerHelper(cfg)
	if err != nil {
		return err
	}

	defer db.Close()

	entry := tracker.Entry{
		DurationMinutes: ctx.Int("duration"),
		CertificateID:   ctx.String("cert"),
		Technique:       models.Technique(ctx.String("technique")),
	}

	if raw := ctx.String("date"); raw != "" {
		parsed, err := dateparser.Parse(&dateparser.Configuration{
			CurrentTime: time.Now(),
		}, raw)
		if err != nil {
			return fmt.Errorf("unable to parse session date: %w", err)
		}

		entry.OccurredAt = parsed.Time
	}

	userID := firstNonEmptyString(ctx.String("user"), cfg.User.ID)

	id, err := trk.Record(ctx.Context, userID, entry)
	if err != nil {
		return err
	}

	pterm.Success.Printfln(
		"logged %d minutes of study time (%s)",
		entry.DurationMinutes,
		id,
	)

	return nil
}

// timerAction counts down a study session and records it on completion.
func timerAction(ctx *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	trk, db, err := trackerHelper(cfg)
	if err != nil {
		return err
	}

	defer db.Close()

	duration := ctx.Int("duration")
	if duration == 0 {
		duration = 25
	}

	t := timer.New(trk, timer.Opts{
		UserID:        firstNonEmptyString(ctx.String("user"), cfg.User.ID),
		Duration:      time.Duration(duration) * time.Minute,
		Technique:     models.Technique(ctx.String("technique")),
		CertificateID: ctx.String("cert"),
		Notify:        cfg.Tracker.Notify && !ctx.Bool("disable-notification"),
		SessionCmd: firstNonEmptyString(
			ctx.String("session-cmd"),
			cfg.Tracker.SessionCmd,
		),
	})

	return t.Run(ctx.Context)
}

// certAddAction registers a certification to study towards.
func certAddAction(ctx *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	name := strings.TrimSpace(strings.Join(ctx.Args().Slice(), " "))
	if name == "" {
		return errCertNameRequired
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	cert := &models.Certificate{
		UserID:      firstNonEmptyString(ctx.String("user"), cfg.User.ID),
		Name:        name,
		TargetHours: ctx.Int("target-hours"),
	}

	err = db.SaveCertificate(cert)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("added certification %q (%s)", cert.Name, cert.ID)

	return nil
}

// certListAction prints a table of the user's registered certifications.
func certListAction(ctx *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	userID := firstNonEmptyString(ctx.String("user"), cfg.User.ID)

	certs, err := db.ListCertificates(userID)
	if err != nil {
		return err
	}

	if len(certs) == 0 {
		pterm.Info.Println("No certifications registered yet")
		return nil
	}

	printCertsTable(config.Stdout, certs)

	return nil
}

// serveAction exposes the tracker facade over HTTP.
func serveAction(ctx *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	trk, db, err := trackerHelper(cfg)
	if err != nil {
		return err
	}

	defer db.Close()

	srv := &stats.Server{
		Tracker:       trk,
		User:          cfg.Profile(),
		DefaultMonths: cfg.Tracker.DefaultMonths,
	}

	return srv.Run(ctx.Uint("port"))
}

func beforeAction(ctx *cli.Context) error {
	config.InitializePaths()

	log.Init(config.LogFilePath(), os.Getenv(envLumiiDebug) != "")

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if LUMII_NO_COLOR is set
	if _, exists := os.LookupEnv(envLumiiNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting lumii")

	return nil
}
