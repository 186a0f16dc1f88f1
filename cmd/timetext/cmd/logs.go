// ============================================================================
// timetext - Date/time text utilities
// ============================================================================
//
// Package:     cmd
// Description: Lists the files of the local log directory
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/msto63/timetext/foundation/core/log"
	"github.com/msto63/timetext/foundation/utils/filex"
	"github.com/msto63/timetext/foundation/utils/timex"
)

// logFile summarizes one file of the log directory
type logFile struct {
	Name     string `json:"name" yaml:"name" toml:"name"`
	Kind     string `json:"kind" yaml:"kind" toml:"kind"`
	Size     int64  `json:"size" yaml:"size" toml:"size"`
	Records  int    `json:"records" yaml:"records" toml:"records"`
	Modified string `json:"modified" yaml:"modified" toml:"modified"`

	modTime timex.Instant
}

func newLogsCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Dateien im Logverzeichnis auflisten",
		Long: `Listet die Logdateien mit Art, Groesse, Anzahl der Eintraege und
letzter Aenderung, neueste zuerst.

Beispiele:
  timetext logs
  timetext logs -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutputFormat(output, "table"); err != nil {
				return err
			}
			files, err := collectLogFiles(a.settings.Log.Dir, a.cal)
			if err != nil {
				return err
			}
			a.logger.Debug("log files listed", log.Fields{"dir": a.settings.Log.Dir, "count": len(files)})

			if output != "table" {
				return writeOutput(cmd.OutOrStdout(), output, map[string]interface{}{"files": files})
			}
			if len(files) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No log files found.")
				return nil
			}

			now := a.cal.Now()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tKIND\tSIZE\tRECORDS\tMODIFIED")
			for _, f := range files {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					f.Name,
					f.Kind,
					humanize.Bytes(uint64(f.Size)),
					humanize.Comma(int64(f.Records)),
					timex.RelativeTime(now, f.modTime),
				)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Ausgabeformat: table, json, yaml, toml")
	return cmd
}

// collectLogFiles returns no files, not an error, when dir does not exist
// yet: nothing has been logged.
func collectLogFiles(dir string, cal *timex.Calendar) ([]logFile, error) {
	if !filex.IsDir(dir) {
		return []logFile{}, nil
	}
	infos, err := filex.ListFiles(dir)
	if err != nil {
		return nil, err
	}
	filex.SortFiles(infos, filex.SortByModTime, filex.Descending)

	records, err := log.ReadRecords(dir, cal)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.File]++
	}

	files := make([]logFile, 0, len(infos))
	for _, info := range infos {
		kind, ok := log.KindFromExt(info.Ext)
		if !ok {
			continue
		}
		modTime := timex.FromTime(info.ModTime)
		files = append(files, logFile{
			Name:     info.Name,
			Kind:     kind.Tag(),
			Size:     info.Size,
			Records:  counts[info.Name],
			Modified: cal.ReadableEpoch(modTime),
			modTime:  modTime,
		})
	}
	return files, nil
}
