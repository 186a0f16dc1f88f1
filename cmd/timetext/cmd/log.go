// ============================================================================
// timetext - Date/time text utilities
// ============================================================================
//
// Package:     cmd
// Description: Commands that append records to the local log directory
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/timetext/foundation/core/log"
)

func newLogCmd(a *app) *cobra.Command {
	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Eintraege in die lokalen Logdateien schreiben",
		Long: `Schreibt Eintraege in Monatsdateien im Logverzeichnis
(z.B. 2024-03-01.inf, 2024-03-01.err, 2024-03-01.deb). Jeder Eintrag
beginnt mit einer Zeile "09 Mar 2024 14:07:05:123 --->".`,
	}

	logCmd.AddCommand(
		newLogLevelCmd(a, "info", "Info-Eintrag schreiben", func(l *log.LocalLogger, msg string) { l.LogInfo(msg) }),
		newLogLevelCmd(a, "error", "Fehler-Eintrag mit Aufruferpraefix schreiben", func(l *log.LocalLogger, msg string) { l.LogError(msg) }),
		newLogLevelCmd(a, "debug", "Debug-Eintrag mit Aufruferpraefix schreiben", func(l *log.LocalLogger, msg string) { l.LogDebug(msg) }),
		newLogLevelCmd(a, "trace", "Stacktrace unveraendert in die Fehlerdatei schreiben", func(l *log.LocalLogger, msg string) { l.LogFullTrace(msg) }),
		newLogTestCmd(a),
		newLogUsageCmd(a),
	)
	return logCmd
}

func newLogLevelCmd(a *app, use, short string, write func(*log.LocalLogger, string)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <nachricht...>",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withLocalLogger(func(l *log.LocalLogger) {
				write(l, strings.Join(args, " "))
			})
		},
	}
}

func newLogTestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "test <name> <nachricht...>",
		Short: "Eintrag in <name>.test schreiben",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withLocalLogger(func(l *log.LocalLogger) {
				l.LogTest(args[0], strings.Join(args[1:], " "))
			})
		},
	}
}

func newLogUsageCmd(a *app) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "usage <start>",
		Short: "Nutzungsdauer seit <start> protokollieren",
		Long: `Schreibt die seit <start> vergangene Zeit als "app used: 01m:30s"
mit Trennlinie. Mit --name wird "<name> used: ..." ohne Trennlinie
geschrieben.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseInstant(a.cal, args[0])
			if err != nil {
				return err
			}
			return a.withLocalLogger(func(l *log.LocalLogger) {
				if name != "" {
					l.LogUsageOf(name, start)
					return
				}
				l.LogAppUsage(start)
			})
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "Name der Komponente")
	return cmd
}

// withLocalLogger opens the configured log directory, runs fn and waits
// until every record is on disk.
func (a *app) withLocalLogger(fn func(*log.LocalLogger)) error {
	local := log.NewLocalLogger(a.settings.Log.Dir,
		log.WithCalendar(a.cal),
		log.WithMirror(a.logger.WithField("component", "local")),
		log.WithBuffer(a.settings.Log.Buffer),
	)
	if err := local.DirErr(); err != nil {
		_ = local.Close()
		return err
	}
	fn(local)
	return local.Close()
}
