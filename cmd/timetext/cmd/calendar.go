// ============================================================================
// timetext - Date/time text utilities
// ============================================================================
//
// Package:     cmd
// Description: Calendar arithmetic commands
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/timetext/foundation/core/error"
	"github.com/msto63/timetext/foundation/utils/timex"
)

func newNowCmd(a *app) *cobra.Command {
	var out instantOutput
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Aktuelle Zeit ausgeben",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return out.print(cmd, a.cal, a.cal.Now())
		},
	}
	out.register(cmd)
	return cmd
}

func newMidnightCmd(a *app) *cobra.Command {
	var out instantOutput
	cmd := &cobra.Command{
		Use:   "midnight [zeitpunkt]",
		Short: "Beginn des Tages eines Zeitpunkts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := instantArg(a, args)
			if err != nil {
				return err
			}
			return out.print(cmd, a.cal, a.cal.Midnight(at))
		},
	}
	out.register(cmd)
	return cmd
}

func newRound5Cmd(a *app) *cobra.Command {
	var out instantOutput
	cmd := &cobra.Command{
		Use:   "round5 [zeitpunkt]",
		Short: "Auf volle fuenf Minuten abrunden",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := instantArg(a, args)
			if err != nil {
				return err
			}
			return out.print(cmd, a.cal, a.cal.RoundDownTo5Minutes(at))
		},
	}
	out.register(cmd)
	return cmd
}

func newDayDiffCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "daydiff <a> <b>",
		Short: "Differenz der Tage im Jahr (a - b)",
		Long: `Zieht den Tag im Jahr von b vom Tag im Jahr von a ab. Die Jahre
werden dabei nicht beruecksichtigt: 01.01.2025 minus 31.12.2024 ergibt -365.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := parseInstant(a.cal, args[0])
			if err != nil {
				return err
			}
			second, err := parseInstant(a.cal, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.cal.DayDifference(first, second))
			return nil
		},
	}
}

func newAddCmd(a *app) *cobra.Command {
	var (
		out  instantOutput
		unit string
	)
	cmd := &cobra.Command{
		Use:   "add <zeitpunkt> <anzahl>",
		Short: "Vielfaches einer Zeiteinheit addieren",
		Long: `Addiert anzahl * Einheit auf einen Zeitpunkt. Einheiten: day, hour,
minute, second, millisecond. Negative Anzahlen ziehen ab.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := parseInstant(a.cal, args[0])
			if err != nil {
				return err
			}
			amount, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return mdwerror.Wrap(err, "amount must be an integer").
					WithCode(mdwerror.CodeInvalidInput).
					WithOperation("cmd.add")
			}
			u, ok := timex.ParseTimeUnit(unit)
			if !ok {
				return mdwerror.New(fmt.Sprintf("unknown time unit %q", unit)).
					WithCode(mdwerror.CodeInvalidInput).
					WithOperation("cmd.add")
			}
			return out.print(cmd, a.cal, a.cal.AddOffset(at, u, amount))
		},
	}
	out.register(cmd)
	cmd.Flags().StringVarP(&unit, "unit", "u", "day", "Zeiteinheit")
	return cmd
}

func newDateCmd(a *app) *cobra.Command {
	var (
		plus    int
		until   string
		instant bool
	)
	cmd := &cobra.Command{
		Use:   "date [YYYY-MM-DD]",
		Short: "Mit Kalenderdaten rechnen",
		Long: `Ohne Argument gilt das heutige Datum. --plus verschiebt um Tage,
--until gibt die Anzahl der Tage bis zu einem anderen Datum aus.

Beispiele:
  timetext date 2024-02-28 --plus 2       # 2024-03-01
  timetext date 2024-03-01 --until 2024-03-31
  timetext date --instant                 # heute 00:00 in Millisekunden`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var arg string
			if len(args) == 1 {
				arg = args[0]
			}
			d, err := parseDate(a.cal, arg)
			if err != nil {
				return err
			}

			if until != "" {
				other, err := parseDate(a.cal, until)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), d.DaysUntil(other))
				return nil
			}

			d = d.PlusDays(plus)
			if instant {
				fmt.Fprintln(cmd.OutOrStdout(), a.cal.DateInstant(d).Millis())
				return nil
			}
			weekday := a.cal.WeekDayOf(a.cal.DateInstant(d))
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", d, weekday)
			return nil
		},
	}
	cmd.Flags().IntVar(&plus, "plus", 0, "Tage addieren")
	cmd.Flags().StringVar(&until, "until", "", "Tage bis zu diesem Datum zaehlen")
	cmd.Flags().BoolVar(&instant, "instant", false, "Mitternacht des Datums in Millisekunden ausgeben")
	return cmd
}

func instantArg(a *app, args []string) (timex.Instant, error) {
	if len(args) == 0 {
		return a.cal.Now(), nil
	}
	return parseInstant(a.cal, args[0])
}
