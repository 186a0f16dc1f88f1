// ============================================================================
// timetext - Date/time text utilities
// ============================================================================
//
// Package:     logviewer
// Description: Message types for async operations in LogViewer
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package logviewer

import (
	"time"

	"github.com/msto63/timetext/foundation/core/log"
)

// Message types for tea.Cmd async operations

// recordsLoadedMsg is sent when the log directory has been read
type recordsLoadedMsg struct {
	records []log.Record
	total   int
	err     error
}

// tickMsg is used for periodic updates
type tickMsg time.Time

// refreshMsg signals a record refresh
type refreshMsg struct{}
