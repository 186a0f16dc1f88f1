// ============================================================================
// timetext - Date/time text utilities
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the log viewer TUI
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/timetext/foundation/core/log"
	"github.com/msto63/timetext/internal/tui/logviewer"
)

func newViewCmd(a *app) *cobra.Command {
	var (
		refresh    string
		maxRecords int
	)
	cmd := &cobra.Command{
		Use:     "view",
		Aliases: []string{"logviewer"},
		Short:   "Startet den Log Viewer",
		Long: `Startet den interaktiven Log Viewer fuer das Logverzeichnis.

  - Echtzeit-Aktualisierung der Eintraege
  - Filterung nach Art (1-4)
  - Pause/Resume-Funktion
  - Auto-Scroll zum neuesten Eintrag

Tastenkuerzel:
  1-4         Art togglen (1=INF, 2=ERR, 3=DEB, 4=TST)
  0           Alle Arten anzeigen
  p / Space   Pause/Resume
  r           Refresh
  a           Auto-Scroll togglen
  g / G       Zum Anfang / Ende springen
  PgUp/PgDn   Scrollen
  q / Ctrl+C  Beenden`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := logviewer.Config{
				Dir:        a.settings.Log.Dir,
				Refresh:    a.settings.Viewer.Refresh,
				MaxRecords: a.settings.Viewer.MaxRecords,
				Calendar:   a.cal,
			}
			if refresh != "" {
				ms, err := parseMillis(refresh)
				if err != nil {
					return err
				}
				cfg.Refresh = time.Duration(ms) * time.Millisecond
			}
			if maxRecords > 0 {
				cfg.MaxRecords = maxRecords
			}
			a.logger.Info("starting log viewer", log.Fields{"dir": cfg.Dir, "refresh": cfg.Refresh.String()})
			return logviewer.Run(cfg)
		},
	}
	cmd.Flags().StringVar(&refresh, "refresh", "", "Aktualisierungsintervall (z.B. 5s)")
	cmd.Flags().IntVar(&maxRecords, "max-records", 0, "Maximale Anzahl der angezeigten Eintraege")
	return cmd
}
