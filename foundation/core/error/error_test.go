// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes and severities.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-19 v0.2.0: Adjusted to the reduced code set

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}
	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
	if len(err.StackTrace()) == 0 {
		t.Fatal("StackTrace() should not be empty")
	}
	if !strings.Contains(err.StackTrace()[0].Function, "TestNew") {
		t.Errorf("first frame = %s, want the caller of New", err.StackTrace()[0].Function)
	}
}

func TestNewf(t *testing.T) {
	err := Newf("illegal pattern character '%c'", 'Q')
	if err.Error() != "illegal pattern character 'Q'" {
		t.Errorf("Newf() = %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{name: "wrap nil error", err: nil, message: "context", wantNil: true},
		{name: "wrap standard error", err: errors.New("disk full"), message: "write failed", wantMsg: "write failed: disk full"},
		{name: "wrap structured error", err: New("bad pattern"), message: "format", wantMsg: "format: bad pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if !errors.Is(got, tt.err) {
				t.Error("wrapped error should match the cause with errors.Is")
			}
		})
	}
}

func TestWrapInheritsCodeAndDetails(t *testing.T) {
	inner := New("mkdir failed").WithCode(CodeIO).WithDetail("dir", "/tmp/log")
	outer := Wrap(inner, "local logger")

	if outer.Code() != CodeIO {
		t.Errorf("Code() = %v, want %v", outer.Code(), CodeIO)
	}
	if outer.Severity() != SeverityHigh {
		t.Errorf("Severity() = %v, want %v", outer.Severity(), SeverityHigh)
	}
	if outer.Details()["dir"] != "/tmp/log" {
		t.Errorf("Details() = %v, want dir detail", outer.Details())
	}
}

func TestWithCodeDerivesSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInvalidFormat, SeverityLow},
		{CodeValueOutOfRange, SeverityLow},
		{CodeIO, SeverityHigh},
		{CodeConfigError, SeverityHigh},
		{CodeEnvironmentError, SeverityCritical},
		{CodeInternal, SeverityMedium},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := New("x").WithCode(tt.code).Severity(); got != tt.want {
				t.Errorf("severity = %v, want %v", got, tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidFormat)
	if explicit.Severity() != SeverityCritical {
		t.Error("explicit severity must not be overridden by WithCode")
	}
}

func TestHasCodeThroughWrapping(t *testing.T) {
	base := New("bad").WithCode(CodeInvalidFormat)
	wrapped := fmt.Errorf("outer: %w", base)

	if !HasCode(wrapped, CodeInvalidFormat) {
		t.Error("HasCode() should see through fmt wrapping")
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() of a plain error should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() of a plain error should be SeverityMedium")
	}
}

func TestCodeCategory(t *testing.T) {
	tests := map[Code]string{
		CodeIO:            "filesystem",
		CodeConfigError:   "configuration",
		CodeInvalidFormat: "validation",
		CodeNotFound:      "generic",
		Code("SOMETHING"): "generic",
	}
	for code, want := range tests {
		if got := code.Category(); got != want {
			t.Errorf("%s.Category() = %q, want %q", code, got, want)
		}
	}
	if Code("SOMETHING").IsValid() {
		t.Error("unknown code should not be valid")
	}
	if !CodeIO.IsValid() {
		t.Error("CodeIO should be valid")
	}
}

func TestStringAndJSON(t *testing.T) {
	err := New("illegal pattern").
		WithCode(CodeInvalidFormat).
		WithOperation("timex.TryFormatInstant").
		WithDetail("pattern", "Q")

	s := err.String()
	for _, want := range []string{"Error: illegal pattern", "Code: INVALID_FORMAT", "Operation: timex.TryFormatInstant", "pattern=Q"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in %q", want, s)
		}
	}

	data, jsonErr := json.Marshal(err)
	if jsonErr != nil {
		t.Fatalf("MarshalJSON() error = %v", jsonErr)
	}
	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("invalid JSON: %v", jsonErr)
	}
	if decoded["code"] != "INVALID_FORMAT" || decoded["operation"] != "timex.TryFormatInstant" {
		t.Errorf("unexpected JSON: %s", data)
	}
}
