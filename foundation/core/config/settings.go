// File: settings.go
// Title: Typed Application Settings
// Description: Settings is the typed view over the timetext configuration
//              keys with defaults, validation and conversion into the timex
//              calendar and the logger options.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package config

import (
	"strings"
	"time"

	mdwerror "github.com/msto63/timetext/foundation/core/error"
	"github.com/msto63/timetext/foundation/core/log"
	"github.com/msto63/timetext/foundation/utils/timex"
)

// EnvPrefix is the prefix of every environment override, e.g. TIMETEXT_LOG_DIR.
const EnvPrefix = "timetext"

// Configuration keys
const (
	KeyTimeZone          = "time.zone"
	KeyTimePattern       = "time.pattern"
	KeyLogDir            = "log.dir"
	KeyLogLevel          = "log.level"
	KeyLogFormat         = "log.format"
	KeyLogBuffer         = "log.buffer"
	KeyViewerRefresh     = "viewer.refresh"
	KeyViewerMaxRecords  = "viewer.max_records"
	DefaultLogDir        = "log"
	DefaultLogBuffer     = 256
	DefaultViewerRefresh = 2 * time.Second
	DefaultMaxRecords    = 1000
)

// Settings holds the resolved configuration
type Settings struct {
	Time   TimeSettings
	Log    LogSettings
	Viewer ViewerSettings
}

// TimeSettings configures the calendar
type TimeSettings struct {
	Zone    string // IANA name, "Local" or "UTC"
	Pattern string // default pattern for FormatInstant
}

// LogSettings configures the structured and local loggers
type LogSettings struct {
	Dir    string
	Level  string
	Format string
	Buffer int
}

// ViewerSettings configures the log viewer
type ViewerSettings struct {
	Refresh    time.Duration
	MaxRecords int
}

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		Time: TimeSettings{
			Zone:    "Local",
			Pattern: timex.DefaultPattern,
		},
		Log: LogSettings{
			Dir:    DefaultLogDir,
			Level:  log.LevelInfo.String(),
			Format: log.FormatConsole.String(),
			Buffer: DefaultLogBuffer,
		},
		Viewer: ViewerSettings{
			Refresh:    DefaultViewerRefresh,
			MaxRecords: DefaultMaxRecords,
		},
	}
}

// SettingsRules describes the accepted values of every key
func SettingsRules() ValidationRules {
	return ValidationRules{
		KeyTimeZone:    {Type: "string"},
		KeyTimePattern: {Type: "string"},
		KeyLogDir:      {Type: "string"},
		KeyLogLevel: {
			Type:  "string",
			OneOf: []string{"trace", "debug", "info", "warn", "warning", "error", "fatal"},
		},
		KeyLogFormat: {
			Type:  "string",
			OneOf: []string{"json", "text", "console", "logfmt"},
		},
		KeyLogBuffer:        {Type: "int", Min: Bound(1), Max: Bound(1 << 16)},
		KeyViewerRefresh:    {Type: "duration"},
		KeyViewerMaxRecords: {Type: "int", Min: Bound(1)},
	}
}

// FromConfig resolves settings from c, falling back to DefaultSettings for
// keys that are absent.
func FromConfig(c *Config) Settings {
	d := DefaultSettings()
	return Settings{
		Time: TimeSettings{
			Zone:    c.GetString(KeyTimeZone, d.Time.Zone),
			Pattern: c.GetString(KeyTimePattern, d.Time.Pattern),
		},
		Log: LogSettings{
			Dir:    c.GetString(KeyLogDir, d.Log.Dir),
			Level:  strings.ToLower(c.GetString(KeyLogLevel, d.Log.Level)),
			Format: strings.ToLower(c.GetString(KeyLogFormat, d.Log.Format)),
			Buffer: c.GetInt(KeyLogBuffer, d.Log.Buffer),
		},
		Viewer: ViewerSettings{
			Refresh:    c.GetDuration(KeyViewerRefresh, d.Viewer.Refresh),
			MaxRecords: c.GetInt(KeyViewerMaxRecords, d.Viewer.MaxRecords),
		},
	}
}

// LoadSettings reads path, or discovers a config file when path is empty,
// validates it and resolves the settings. Environment overrides use
// EnvPrefix.
func LoadSettings(path string) (Settings, *Config, error) {
	var (
		c   *Config
		err error
	)
	if path == "" {
		c, err = Discover(DefaultDiscoveryOptions(EnvPrefix))
	} else {
		c, err = LoadWithOptions(path, LoadOptions{Format: FormatAuto, EnvPrefix: EnvPrefix})
	}
	if err != nil {
		return DefaultSettings(), nil, err
	}

	if err := c.Validate(SettingsRules()).Err(); err != nil {
		return DefaultSettings(), c, err
	}

	s := FromConfig(c)
	if err := s.Validate(); err != nil {
		return DefaultSettings(), c, err
	}
	return s, c, nil
}

// Validate checks the values that the rules cannot: the zone must load and
// the pattern must compile.
func (s Settings) Validate() error {
	if _, err := s.Location(); err != nil {
		return err
	}
	if _, err := timex.New().TryFormatInstant(0, s.Time.Pattern); err != nil {
		return mdwerror.Wrap(err, "invalid time.pattern").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Settings.Validate").
			WithDetail("pattern", s.Time.Pattern)
	}
	if _, err := log.ParseLevel(s.Log.Level); err != nil {
		return err
	}
	if _, err := log.ParseFormat(s.Log.Format); err != nil {
		return err
	}
	return nil
}

// Location loads the configured zone. An empty zone means Local.
func (s Settings) Location() (*time.Location, error) {
	switch s.Time.Zone {
	case "", "Local", "local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(s.Time.Zone)
	if err != nil {
		return nil, mdwerror.Wrap(err, "unknown time zone").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Settings.Location").
			WithDetail("zone", s.Time.Zone)
	}
	return loc, nil
}

// Calendar builds the calendar for the configured zone and pattern. An
// unknown zone falls back to Local.
func (s Settings) Calendar(opts ...timex.Option) *timex.Calendar {
	loc, err := s.Location()
	if err != nil {
		loc = time.Local
	}
	base := []timex.Option{timex.WithLocation(loc), timex.WithPattern(s.Time.Pattern)}
	return timex.New(append(base, opts...)...)
}

// LogLevel returns the parsed level, or the default for invalid input
func (s Settings) LogLevel() log.Level {
	level, err := log.ParseLevel(s.Log.Level)
	if err != nil {
		return log.DefaultLevel()
	}
	return level
}

// LogFormat returns the parsed format, or console for invalid input
func (s Settings) LogFormat() log.Format {
	format, err := log.ParseFormat(s.Log.Format)
	if err != nil {
		return log.FormatConsole
	}
	return format
}

// Map returns the settings as a nested map keyed like the config file.
// Durations are rendered as Go duration strings so the result can be
// written back as a config file.
func (s Settings) Map() map[string]interface{} {
	return map[string]interface{}{
		"time": map[string]interface{}{
			"zone":    s.Time.Zone,
			"pattern": s.Time.Pattern,
		},
		"log": map[string]interface{}{
			"dir":    s.Log.Dir,
			"level":  s.Log.Level,
			"format": s.Log.Format,
			"buffer": s.Log.Buffer,
		},
		"viewer": map[string]interface{}{
			"refresh":     s.Viewer.Refresh.String(),
			"max_records": s.Viewer.MaxRecords,
		},
	}
}
