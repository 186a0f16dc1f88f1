// ============================================================================
// timetext - Date/time text utilities
// ============================================================================
//
// Package:     cmd
// Description: Argument parsing and output helpers shared by the commands
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/timetext/foundation/core/error"
	"github.com/msto63/timetext/foundation/utils/timex"
)

// parseInstant accepts epoch milliseconds, "now", YYYY-MM-DD (midnight in the
// calendar zone), RFC 3339 or the readable epoch layout.
func parseInstant(cal *timex.Calendar, s string) (timex.Instant, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "now") {
		return cal.Now(), nil
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return timex.Instant(ms), nil
	}
	if d, err := timex.ParseSimpleDate(s); err == nil {
		return cal.DateInstant(d), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return timex.FromTime(t), nil
	}
	if i, err := cal.ParseReadableEpoch(s); err == nil {
		return i, nil
	}
	return 0, mdwerror.New(fmt.Sprintf("cannot parse instant %q", s)).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("cmd.parseInstant").
		WithDetail("input", s)
}

// parseMillis accepts plain milliseconds or a Go duration such as "1h30m".
func parseMillis(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ms, nil
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d.Milliseconds(), nil
	}
	return 0, mdwerror.New(fmt.Sprintf("cannot parse duration %q", s)).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("cmd.parseMillis").
		WithDetail("input", s)
}

func parseDate(cal *timex.Calendar, s string) (timex.SimpleDate, error) {
	if s == "" || strings.EqualFold(s, "today") {
		return cal.Today(), nil
	}
	return timex.ParseSimpleDate(s)
}

// instantOutput is the shared --readable/--pattern flag pair
type instantOutput struct {
	readable bool
	pattern  string
}

func (o *instantOutput) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&o.readable, "readable", "r", false, "Als \"dd MMM yyyy HH:mm:ss:SSS\" ausgeben")
	cmd.Flags().StringVarP(&o.pattern, "pattern", "p", "", "Mit diesem Muster formatieren")
}

// print writes the instant as milliseconds unless a readable form was asked
// for.
func (o *instantOutput) print(cmd *cobra.Command, cal *timex.Calendar, i timex.Instant) error {
	switch {
	case o.pattern != "":
		s, err := cal.TryFormatInstant(i, o.pattern)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
	case o.readable:
		fmt.Fprintln(cmd.OutOrStdout(), cal.ReadableEpoch(i))
	default:
		fmt.Fprintln(cmd.OutOrStdout(), i.Millis())
	}
	return nil
}
