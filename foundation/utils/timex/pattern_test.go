// File: pattern_test.go
// Title: Date Pattern Tests
// Description: Tests for pattern tokenization and field rendering.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package timex

import (
	"testing"
	"time"
)

func TestCompilePattern(t *testing.T) {
	tokens, err := compilePattern("dd 'of' MMM''yy")
	if err != nil {
		t.Fatalf("compilePattern() unexpected error: %v", err)
	}

	want := []patternToken{
		{letter: 'd', count: 2},
		{literal: " of "},
		{letter: 'M', count: 3},
		{literal: "'"},
		{letter: 'y', count: 2},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(tokens), len(want), tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d = %+v, want %+v", i, tokens[i], want[i])
		}
	}
}

func TestCompilePatternEmpty(t *testing.T) {
	tokens, err := compilePattern("")
	if err != nil || len(tokens) != 0 {
		t.Errorf("compilePattern(\"\") = %v, %v; want no tokens", tokens, err)
	}
}

func TestPad(t *testing.T) {
	testCases := []struct {
		n, width int
		want     string
	}{
		{7, 1, "7"},
		{7, 3, "007"},
		{123, 2, "123"},
		{-5, 3, "-005"},
		{0, 2, "00"},
	}
	for _, tc := range testCases {
		if got := pad(tc.n, tc.width); got != tc.want {
			t.Errorf("pad(%d, %d) = %q, want %q", tc.n, tc.width, got, tc.want)
		}
	}
}

func TestRenderFieldMidnightHours(t *testing.T) {
	midnight := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	testCases := []struct {
		letter byte
		want   string
	}{
		{'H', "0"},
		{'k', "24"},
		{'K', "0"},
		{'h', "12"},
		{'a', "AM"},
	}
	for _, tc := range testCases {
		if got := renderField(midnight, tc.letter, 1); got != tc.want {
			t.Errorf("renderField(%c) = %q, want %q", tc.letter, got, tc.want)
		}
	}
}
