// Package config is responsible for setting the program config from the
// config file and command-line arguments
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"

	"github.com/lumii-app/lumii/internal/models"
)

type (
	// Config holds all configuration settings
	Config struct {
		User    UserConfig
		Tracker TrackerConfig
		System  SystemConfig
	}

	// UserConfig identifies the local user and their study goals
	UserConfig struct {
		ID            string
		Name          string
		DailyGoalMins int
		WeeklyGoalMins int
	}

	// TrackerConfig holds tracker and session-logging settings
	TrackerConfig struct {
		Timezone       string
		DefaultMonths  int
		Notify         bool
		SessionCmd     string
		DarkTheme      bool
	}

	// SystemConfig holds system-related settings
	SystemConfig struct {
		ConfigPath string
		DBPath     string
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	configDir      = "lumii"
	configFileName = "config.yml"
	dbFileName     = "lumii.db"
	logFileName    = "lumii.log"
	dbFilePath     string
	configFilePath string
	logFilePath    string
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

func InitializePaths() {
	lumiiEnv := strings.TrimSpace(os.Getenv("LUMII_ENV"))
	if lumiiEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", lumiiEnv)
		dbFileName = fmt.Sprintf("lumii_%s.db", lumiiEnv)
		logFileName = fmt.Sprintf("lumii_%s.log", lumiiEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// New creates a new Config with default values and applies options
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// Validate checks the loaded settings for values that cannot work.
func (c *Config) Validate() error {
	if c.User.ID == "" {
		return errMissingUserID
	}

	if c.User.DailyGoalMins < 0 || c.User.WeeklyGoalMins < 0 {
		return errNegativeGoal
	}

	if _, err := c.Location(); err != nil {
		return errInvalidTimezone.Fmt(c.Tracker.Timezone).Wrap(err)
	}

	return nil
}

// Location resolves the configured timezone. An empty setting falls back to
// the system's local timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Tracker.Timezone == "" {
		return time.Local, nil
	}

	return time.LoadLocation(c.Tracker.Timezone)
}

// Profile assembles the user record presentation layers consume.
func (c *Config) Profile() *models.User {
	return &models.User{
		ID:   c.User.ID,
		Name: c.User.Name,
		StudyGoals: models.StudyGoals{
			DailyMinutes:  c.User.DailyGoalMins,
			WeeklyMinutes: c.User.WeeklyGoalMins,
		},
	}
}
