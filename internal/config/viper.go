package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyUserID         = "user.id"
	keyUserName       = "user.name"
	keyDailyGoalMins  = "goals.daily_mins"
	keyWeeklyGoalMins = "goals.weekly_mins"
	keyTimezone       = "settings.timezone"
	keyDefaultMonths  = "settings.default_months"
	keyNotify         = "settings.notify"
	keySessionCmd     = "settings.session_cmd"
	keyDarkTheme      = "display.dark_theme"
)

const (
	defaultUserID        = "local"
	defaultDailyGoalMins = 60
	defaultWeeklyGoal    = 300
	defaultMonths        = 6
)

// WithViperConfig returns an Option that loads configuration from Viper.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setViperDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

func setViperDefaults(v *viper.Viper) {
	v.SetDefault(keyUserID, defaultUserID)
	v.SetDefault(keyUserName, "")
	v.SetDefault(keyDailyGoalMins, defaultDailyGoalMins)
	v.SetDefault(keyWeeklyGoalMins, defaultWeeklyGoal)
	v.SetDefault(keyTimezone, "")
	v.SetDefault(keyDefaultMonths, defaultMonths)
	v.SetDefault(keyNotify, true)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyDarkTheme, true)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	c.User.ID = v.GetString(keyUserID)
	c.User.Name = v.GetString(keyUserName)
	c.User.DailyGoalMins = v.GetInt(keyDailyGoalMins)
	c.User.WeeklyGoalMins = v.GetInt(keyWeeklyGoalMins)

	c.Tracker.Timezone = v.GetString(keyTimezone)
	c.Tracker.DefaultMonths = v.GetInt(keyDefaultMonths)
	c.Tracker.Notify = v.GetBool(keyNotify)
	c.Tracker.SessionCmd = v.GetString(keySessionCmd)
	c.Tracker.DarkTheme = v.GetBool(keyDarkTheme)

	c.System.ConfigPath = configFilePath
	c.System.DBPath = dbFilePath

	return nil
}
