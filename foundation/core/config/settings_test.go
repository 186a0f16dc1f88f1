// File: settings_test.go
// Title: Typed Settings Tests
// Description: Tests for defaults, overrides, validation and the calendar and
//              logger conversions of Settings.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/timetext/foundation/core/error"
	"github.com/msto63/timetext/foundation/core/log"
	"github.com/msto63/timetext/foundation/utils/timex"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.Time.Pattern != timex.DefaultPattern || s.Time.Zone != "Local" {
		t.Errorf("unexpected time defaults: %+v", s.Time)
	}
	if s.Log.Dir != DefaultLogDir || s.Log.Buffer != DefaultLogBuffer {
		t.Errorf("unexpected log defaults: %+v", s.Log)
	}
	if s.Viewer.Refresh != 2*time.Second || s.Viewer.MaxRecords != DefaultMaxRecords {
		t.Errorf("unexpected viewer defaults: %+v", s.Viewer)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
	if s.LogLevel() != log.LevelInfo || s.LogFormat() != log.FormatConsole {
		t.Errorf("LogLevel() = %v, LogFormat() = %v", s.LogLevel(), s.LogFormat())
	}
}

func TestLoadSettings(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "timetext.toml", `
[time]
zone = "UTC"
pattern = "yyyy-MM-dd"

[log]
dir = "/var/log/timetext"
level = "DEBUG"
format = "json"

[viewer]
refresh = "5s"
`)
	t.Setenv("TIMETEXT_VIEWER_MAX_RECORDS", "25")

	s, cfg, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if cfg.FilePath() != path {
		t.Errorf("FilePath() = %q", cfg.FilePath())
	}

	want := Settings{
		Time:   TimeSettings{Zone: "UTC", Pattern: "yyyy-MM-dd"},
		Log:    LogSettings{Dir: "/var/log/timetext", Level: "debug", Format: "json", Buffer: DefaultLogBuffer},
		Viewer: ViewerSettings{Refresh: 5 * time.Second, MaxRecords: 25},
	}
	if s != want {
		t.Errorf("LoadSettings() = %+v\nwant %+v", s, want)
	}

	cal := s.Calendar(timex.WithClock(timex.FixedClock(time.Date(2024, 3, 9, 23, 30, 0, 0, time.UTC))))
	if got := cal.FormatInstant(cal.Now(), ""); got != "2024-03-09" {
		t.Errorf("calendar default pattern output = %q", got)
	}
	if s.LogLevel() != log.LevelDebug || s.LogFormat() != log.FormatJSON {
		t.Errorf("LogLevel() = %v, LogFormat() = %v", s.LogLevel(), s.LogFormat())
	}
}

func TestLoadSettingsRefreshMillis(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     string
		want    time.Duration
	}{
		{"file integer", "[viewer]\nrefresh = 1500\n", "", 1500 * time.Millisecond},
		{"env integer", "", "750", 750 * time.Millisecond},
		{"env duration", "", "3s", 3 * time.Second},
		{"env over file", "[viewer]\nrefresh = 1500\n", "250", 250 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv("TIMETEXT_VIEWER_REFRESH", tt.env)
			}
			path := writeConfig(t, t.TempDir(), "timetext.toml", tt.content)
			s, _, err := LoadSettings(path)
			if err != nil {
				t.Fatalf("LoadSettings() error = %v", err)
			}
			if s.Viewer.Refresh != tt.want {
				t.Errorf("Viewer.Refresh = %v, want %v", s.Viewer.Refresh, tt.want)
			}
		})
	}

	t.Run("env garbage", func(t *testing.T) {
		t.Setenv("TIMETEXT_VIEWER_REFRESH", "often")
		path := writeConfig(t, t.TempDir(), "timetext.toml", "")
		if _, _, err := LoadSettings(path); !mdwerror.HasCode(err, mdwerror.CodeValidationFailed) {
			t.Errorf("error = %v, want code %v", err, mdwerror.CodeValidationFailed)
		}
	})
}

func TestLoadSettingsRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    mdwerror.Code
	}{
		{"unknown level", "[log]\nlevel = \"loud\"\n", mdwerror.CodeValidationFailed},
		{"zero buffer", "[log]\nbuffer = 0\n", mdwerror.CodeValidationFailed},
		{"bad refresh", "[viewer]\nrefresh = \"often\"\n", mdwerror.CodeValidationFailed},
		{"unknown zone", "[time]\nzone = \"Mars/Olympus\"\n", mdwerror.CodeInvalidConfig},
		{"bad pattern", "[time]\npattern = \"yyyy-qq\"\n", mdwerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), "timetext.toml", tt.content)
			s, _, err := LoadSettings(path)
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("error = %v, want code %v", err, tt.code)
			}
			if s != DefaultSettings() {
				t.Error("failed load should return the defaults")
			}
		})
	}
}

func TestSettingsCalendarFallback(t *testing.T) {
	s := DefaultSettings()
	s.Time.Zone = "Nowhere/Invalid"
	if _, err := s.Location(); err == nil {
		t.Error("Location() should fail for an unknown zone")
	}
	if s.Calendar().Location() != time.Local {
		t.Error("Calendar() should fall back to Local")
	}

	s.Log.Level = "nope"
	s.Log.Format = "xml"
	if s.LogLevel() != log.DefaultLevel() || s.LogFormat() != log.FormatConsole {
		t.Error("invalid level or format should fall back")
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, cfg, err := LoadSettings("/nonexistent/timetext.toml")
	if cfg != nil || !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("LoadSettings() = %v, %v", cfg, err)
	}
}

func TestSettingsMapRoundTrip(t *testing.T) {
	want := DefaultSettings()
	want.Time.Zone = "UTC"
	want.Log.Level = "debug"
	want.Viewer.Refresh = 1500 * time.Millisecond

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(want.Map()); err != nil {
		t.Fatalf("toml encode: %v", err)
	}
	c, err := LoadFromString(buf.String(), FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString(toml) error = %v", err)
	}
	if got := FromConfig(c); got != want {
		t.Errorf("toml round trip = %+v, want %+v", got, want)
	}

	out, err := yaml.Marshal(want.Map())
	if err != nil {
		t.Fatalf("yaml marshal: %v", err)
	}
	c, err = LoadFromString(string(out), FormatYAML)
	if err != nil {
		t.Fatalf("LoadFromString(yaml) error = %v", err)
	}
	if got := FromConfig(c); got != want {
		t.Errorf("yaml round trip = %+v, want %+v", got, want)
	}
}
