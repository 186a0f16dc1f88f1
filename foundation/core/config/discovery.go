// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Implements configuration file discovery across multiple paths
//              and formats.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-19 v0.2.0: User config directory in default paths; LoadFromEnv removed

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/timetext/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions searches the working directory, ./config and the
// user config directory for "<app>.toml", "<app>.yaml" or "<app>.yml". A
// missing file is not an error.
func DefaultDiscoveryOptions(app string) DiscoveryOptions {
	paths := []string{".", "./config"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, app))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{app, "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  app,
		Required:   false,
	}
}

func (o *DiscoveryOptions) applyDefaults() {
	if len(o.Paths) == 0 {
		o.Paths = []string{"."}
	}
	if len(o.Filenames) == 0 {
		o.Filenames = []string{"config"}
	}
	if len(o.Extensions) == 0 {
		o.Extensions = []string{".toml", ".yaml", ".yml"}
	}
}

// Discover loads the first configuration file found. Without a file it
// returns an empty configuration unless options.Required is set.
func Discover(options DiscoveryOptions) (*Config, error) {
	options.applyDefaults()

	configPath, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, mdwerror.Wrap(err, fmt.Sprintf("no configuration file found in paths: %s",
				strings.Join(ListPossibleConfigFiles(options), ", "))).
				WithOperation("config.Discover").
				WithDetail("searchPaths", ListPossibleConfigFiles(options))
		}
		return Empty(options.EnvPrefix), nil
	}

	config, err := LoadWithOptions(configPath, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", configPath)).
			WithOperation("config.Discover").
			WithDetail("configPath", configPath)
	}
	return config, nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	options.applyDefaults()
	for _, configPath := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}

	return "", mdwerror.New("configuration file not found").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	options.applyDefaults()
	var paths []string
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}
