// ============================================================================
// timetext - Date/time text utilities
// ============================================================================
//
// Package:     cmd
// Description: Root command, global flags and shared command state
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/timetext/foundation/core/config"
	"github.com/msto63/timetext/foundation/core/log"
	"github.com/msto63/timetext/foundation/utils/timex"
)

// app carries the state shared by all commands of one invocation
type app struct {
	cfgFile string
	tzName  string
	logDir  string
	verbose bool

	clock     timex.Clock
	settings  config.Settings
	cfg       *config.Config
	cal       *timex.Calendar
	logger    *log.Logger
	sessionID string
}

// NewRootCmd builds the command tree on the system clock
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{clock: timex.SystemClock{}})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "timetext",
		Short: "timetext - Zeitangaben lesbar machen",
		Long: `timetext formatiert Zeitpunkte und Dauern, rechnet mit Kalendertagen
und schreibt einfache Logdateien in ein lokales Verzeichnis.

Zeitpunkte werden als Millisekunden seit 1970 angegeben, als Datum
(YYYY-MM-DD), als RFC 3339, im Format "09 Mar 2024 14:07:05:123"
oder als "now".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Config-Datei (default: ./timetext.toml oder Benutzerverzeichnis)")
	rootCmd.PersistentFlags().StringVar(&a.tzName, "tz", "", "Zeitzone, z.B. UTC oder Europe/Berlin")
	rootCmd.PersistentFlags().StringVar(&a.logDir, "log-dir", "", "Verzeichnis fuer Logdateien")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose Output")

	rootCmd.AddCommand(
		newReadableCmd(a),
		newRelativeCmd(a),
		newFormatCmd(a),
		newMidnightCmd(a),
		newRound5Cmd(a),
		newDayDiffCmd(a),
		newAddCmd(a),
		newDateCmd(a),
		newMonthCmd(a),
		newNowCmd(a),
		newLogCmd(a),
		newLogsCmd(a),
		newViewCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// setup loads the settings, applies flag overrides and builds the calendar
// and the structured logger.
func (a *app) setup(cmd *cobra.Command) error {
	settings, cfg, err := config.LoadSettings(a.cfgFile)
	if err != nil {
		return err
	}
	if a.tzName != "" {
		settings.Time.Zone = a.tzName
		if _, err := settings.Location(); err != nil {
			return err
		}
	}
	if a.logDir != "" {
		settings.Log.Dir = a.logDir
	}
	a.settings = settings
	a.cfg = cfg
	a.cal = settings.Calendar(timex.WithClock(a.clock))

	level := settings.LogLevel()
	if a.verbose {
		level = log.LevelDebug
	}
	a.sessionID = uuid.NewString()
	a.logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: settings.LogFormat(),
		Output: cmd.ErrOrStderr(),
		Name:   "timetext",
	}).WithSessionID(a.sessionID)

	a.logger.Debug("settings loaded", log.Fields{
		"command": cmd.Name(),
		"config":  cfg.FilePath(),
		"zone":    a.cal.Location().String(),
		"log_dir": settings.Log.Dir,
	})
	return nil
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
