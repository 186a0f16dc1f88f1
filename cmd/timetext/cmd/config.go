// ============================================================================
// timetext - Date/time text utilities
// ============================================================================
//
// Package:     cmd
// Description: Inspect the effective configuration
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/timetext/foundation/core/config"
	"github.com/msto63/timetext/foundation/utils/filex"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Konfiguration anzeigen",
	}
	configCmd.AddCommand(newConfigShowCmd(a), newConfigPathCmd(a))
	return configCmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Wirksame Einstellungen ausgeben",
		Long: `Gibt die Einstellungen nach Config-Datei, Umgebungsvariablen
(TIMETEXT_LOG_DIR, ...) und Flags aus. Die TOML- und YAML-Ausgabe kann
direkt als Config-Datei verwendet werden.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutputFormat(format); err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), format, a.settings.Map())
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "toml", "Ausgabeformat: toml, yaml, json")
	return cmd
}

func newConfigPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Geladene Config-Datei und Suchpfade ausgeben",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if path := a.cfg.FilePath(); path != "" {
				fmt.Fprintln(out, path)
				return nil
			}
			fmt.Fprintln(out, "No config file loaded. Searched:")
			for _, candidate := range config.ListPossibleConfigFiles(config.DefaultDiscoveryOptions(config.EnvPrefix)) {
				marker := " "
				if filex.Exists(candidate) {
					marker = "*"
				}
				fmt.Fprintf(out, "  %s %s\n", marker, candidate)
			}
			return nil
		},
	}
}
