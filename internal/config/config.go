package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/username/jalali-timesheet/internal/calendar"
	"github.com/username/jalali-timesheet/pkg/timeutil"
)

// Config represents application configuration.
type Config struct {
	Report   ReportConfig   `mapstructure:"report"`
	Jitter   JitterConfig   `mapstructure:"jitter"`
	Holidays HolidaysConfig `mapstructure:"holidays"`
	Log      LogConfig      `mapstructure:"log"`
}

// ReportConfig holds the nominal shift and the hour caps.
type ReportConfig struct {
	Entry                 string   `mapstructure:"entry"`
	Exit                  string   `mapstructure:"exit"`
	StandardMinutes       int      `mapstructure:"standard_minutes"`
	OvertimeCapMinutes    int      `mapstructure:"overtime_cap_minutes"`
	VacationCreditMinutes int      `mapstructure:"vacation_credit_minutes"`
	WeekendDays           []string `mapstructure:"weekend_days"`
}

// JitterConfig bounds the random entry/exit offsets, in minutes.
type JitterConfig struct {
	MaxBeforeMinutes int `mapstructure:"max_before_minutes"`
	MaxAfterMinutes  int `mapstructure:"max_after_minutes"`
}

// HolidaysConfig selects the holiday data source.
type HolidaysConfig struct {
	Source   string `mapstructure:"source"` // "static", "file" or "http"
	File     string `mapstructure:"file"`
	APIURL   string `mapstructure:"api_url"`
	CacheTTL string `mapstructure:"cache_ttl"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file. A missing config file is fine: every
// setting has a default, so the tool is usable with flags alone.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.jalali-timesheet")
		v.AddConfigPath("/etc/jalali-timesheet")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || configPath != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("report.entry", "10:00")
	v.SetDefault("report.exit", "19:00")
	v.SetDefault("report.standard_minutes", 540)
	v.SetDefault("report.overtime_cap_minutes", 60)
	v.SetDefault("report.vacation_credit_minutes", 540)
	v.SetDefault("report.weekend_days", []string{"پنج‌شنبه", "جمعه"})
	v.SetDefault("jitter.max_before_minutes", 20)
	v.SetDefault("jitter.max_after_minutes", 25)
	v.SetDefault("holidays.source", "static")
	v.SetDefault("log.level", "info")
}

// Validate validates the configuration. Beyond range checks, it rejects any
// nominal shift that jitter could push across midnight, which keeps
// synthesized exit times strictly after entry times on the same day.
func (c *Config) Validate() error {
	entry, err := timeutil.ParseClock(c.Report.Entry)
	if err != nil {
		return fmt.Errorf("report.entry: %w", err)
	}
	exit, err := timeutil.ParseClock(c.Report.Exit)
	if err != nil {
		return fmt.Errorf("report.exit: %w", err)
	}

	if exit <= entry {
		return fmt.Errorf("report.exit %q must be later than report.entry %q", c.Report.Exit, c.Report.Entry)
	}
	if c.Report.StandardMinutes <= 0 {
		return fmt.Errorf("report.standard_minutes must be positive")
	}
	if c.Report.OvertimeCapMinutes < 0 {
		return fmt.Errorf("report.overtime_cap_minutes must not be negative")
	}
	if c.Report.VacationCreditMinutes < 0 {
		return fmt.Errorf("report.vacation_credit_minutes must not be negative")
	}

	if len(c.Report.WeekendDays) == 0 {
		return fmt.Errorf("report.weekend_days must name at least one day")
	}
	for _, name := range c.Report.WeekendDays {
		if !calendar.IsWeekdayName(name) {
			return fmt.Errorf("report.weekend_days: unknown weekday name %q", name)
		}
	}

	if c.Jitter.MaxBeforeMinutes < 0 || c.Jitter.MaxAfterMinutes < 0 {
		return fmt.Errorf("jitter bounds must not be negative")
	}
	if entry-c.Jitter.MaxBeforeMinutes < 0 {
		return fmt.Errorf("jitter.max_before_minutes %d would push entry %q before midnight",
			c.Jitter.MaxBeforeMinutes, c.Report.Entry)
	}
	if exit+c.Jitter.MaxAfterMinutes >= timeutil.MinutesPerDay {
		return fmt.Errorf("jitter.max_after_minutes %d would push exit %q past midnight",
			c.Jitter.MaxAfterMinutes, c.Report.Exit)
	}

	switch c.Holidays.Source {
	case "static":
	case "file":
		if c.Holidays.File == "" {
			return fmt.Errorf("holidays.file is required for file source")
		}
	case "http":
		if c.Holidays.APIURL == "" {
			return fmt.Errorf("holidays.api_url is required for http source")
		}
	default:
		return fmt.Errorf("holidays.source must be 'static', 'file' or 'http', got %q", c.Holidays.Source)
	}

	return nil
}

// EntryMinutes returns the nominal entry time in minutes since midnight.
// Call Validate first; on a validated config this cannot fail.
func (c *ReportConfig) EntryMinutes() (int, error) {
	return timeutil.ParseClock(c.Entry)
}

// ExitMinutes returns the nominal exit time in minutes since midnight.
func (c *ReportConfig) ExitMinutes() (int, error) {
	return timeutil.ParseClock(c.Exit)
}

// WeekendSet returns the configured weekend day names as a lookup set.
func (c *ReportConfig) WeekendSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.WeekendDays))
	for _, name := range c.WeekendDays {
		set[name] = struct{}{}
	}
	return set
}

// GetCacheTTL returns the holiday cache TTL duration.
func (c *HolidaysConfig) GetCacheTTL() time.Duration {
	if c.CacheTTL == "" {
		return 24 * time.Hour
	}
	duration, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 24 * time.Hour
	}
	return duration
}
