// ============================================================================
// timetext - Date/time text utilities
// ============================================================================
//
// Package:     cmd
// Description: Commands that turn durations and instants into text
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/timetext/foundation/core/log"
	"github.com/msto63/timetext/foundation/utils/timex"
)

func newReadableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "readable <dauer>",
		Short: "Dauer als \"1h:01m:01s\" ausgeben",
		Long: `Gibt eine Dauer in Millisekunden (oder als Go-Dauer wie "1h30m")
lesbar aus. Minuten und Sekunden sind zweistellig, Reste unter einer
Sekunde entfallen.

Beispiele:
  timetext readable 90000      # 01m:30s
  timetext readable 3661000    # 1h:01m:01s
  timetext readable 1h30m      # 1h:30m:00s`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := parseMillis(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), timex.ReadableDuration(ms))
			return nil
		},
	}
}

func newRelativeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "relative <zeitpunkt> [bezug]",
		Short: "Abstand zu einem Zeitpunkt als \"5 hours ago\" ausgeben",
		Long: `Beschreibt, wie weit ein Zeitpunkt vom Bezugszeitpunkt entfernt ist.
Ohne Bezug wird die aktuelle Zeit verwendet. Zeitpunkte vor dem Bezug
enden auf "ago", spaetere beginnen mit "after".`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := parseInstant(a.cal, args[0])
			if err != nil {
				return err
			}
			ref := a.cal.Now()
			if len(args) == 2 {
				if ref, err = parseInstant(a.cal, args[1]); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), timex.RelativeTime(ref, at))
			return nil
		},
	}
}

func newFormatCmd(a *app) *cobra.Command {
	var pattern string
	cmd := &cobra.Command{
		Use:   "format <zeitpunkt>",
		Short: "Zeitpunkt mit einem Datumsmuster formatieren",
		Long: `Formatiert einen Zeitpunkt in der eingestellten Zeitzone.

Musterbuchstaben: G y Y M L d D E u F w W a H k K h m s S z Z X.
Text in einfachen Anfuehrungszeichen wird uebernommen, '' ergibt ein
Anfuehrungszeichen. Ohne --pattern gilt time.pattern aus der Config.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := parseInstant(a.cal, args[0])
			if err != nil {
				return err
			}
			timer := a.logger.StartTimer("format").WithField("pattern", pattern)
			s, err := a.cal.TryFormatInstant(at, pattern)
			if err != nil {
				timer.StopWithError(err)
				return err
			}
			timer.Stop()
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Datumsmuster")
	return cmd
}

func newMonthCmd(a *app) *cobra.Command {
	var short, of bool
	cmd := &cobra.Command{
		Use:   "month <index|zeitpunkt>",
		Short: "Monatsname ausgeben",
		Long: `Gibt den Monatsnamen fuer einen Index von 0 (January) bis 11
(December) aus. Andere Zahlen ergeben January. Mit --of wird das
Argument als Zeitpunkt gelesen.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if of {
				at, err := parseInstant(a.cal, args[0])
				if err != nil {
					return err
				}
				name := a.cal.MonthNameOf(at)
				if short {
					name = a.cal.ShortMonthNameOf(at)
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
				return nil
			}

			index, err := strconv.Atoi(args[0])
			if err != nil {
				a.logger.Debug("month index is not a number", log.String("input", args[0]))
				index = -1
			}
			name := timex.MonthName(index)
			if short {
				name = timex.ShortMonthName(index)
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&short, "short", "s", false, "Kurzform (Jan, Feb, ...)")
	cmd.Flags().BoolVar(&of, "of", false, "Argument ist ein Zeitpunkt")
	return cmd
}
