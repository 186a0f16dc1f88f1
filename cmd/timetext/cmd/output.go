// ============================================================================
// timetext - Date/time text utilities
// ============================================================================
//
// Package:     cmd
// Description: Structured output in json, yaml and toml
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/timetext/foundation/core/error"
)

// outputFormats lists the encodings writeOutput supports
var outputFormats = []string{"json", "yaml", "toml"}

// checkOutputFormat rejects formats writeOutput cannot produce. extra names
// formats the caller renders itself, e.g. "table".
func checkOutputFormat(format string, extra ...string) error {
	for _, f := range append(outputFormats, extra...) {
		if f == format {
			return nil
		}
	}
	return mdwerror.New(fmt.Sprintf("unknown output format %q", format)).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("cmd.checkOutputFormat").
		WithDetail("format", format)
}

// writeOutput encodes data in the requested format
func writeOutput(w io.Writer, format string, data interface{}) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	case "yaml":
		out, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case "toml":
		return toml.NewEncoder(w).Encode(data)
	default:
		return checkOutputFormat(format)
	}
}
