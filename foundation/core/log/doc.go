// Package log provides structured logging and the local file logger used by
// timetext.
//
// Package: log
// Title: Structured and Local File Logging
// Description: Two loggers live here. Logger writes structured entries in
//              JSON, text, console or logfmt format and integrates with the
//              error package. LocalLogger appends plain timestamped records to
//              monthly files in a log directory and can read them back.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Local file logger, record reader, session IDs, timex timestamps
//
// Structured logging:
//
//	logger := log.New().
//		WithLevel(log.LevelInfo).
//		WithFormat(log.FormatText).
//		WithName("timetext").
//		WithSessionID(id)
//
//	logger.Info("pattern rendered", log.Field("pattern", p))
//	logger.LogError(err) // level follows the error severity
//
//	timer := logger.StartTimer("read_records")
//	defer timer.Stop()
//
// Local files:
//
// A LocalLogger keeps one file per kind and month, named after the first day
// of the month: 2024-03-01.inf, 2024-03-01.err and 2024-03-01.deb. LogTest
// writes to "<name>.test". Every record is a header line followed by the
// message:
//
//	09 Mar 2024 14:07:05:123 --->
//	g18@main::run(42): could not open file
//
// Error and debug records carry the goroutine, package, function and line of
// the caller. Writes go through a single worker goroutine; Flush waits for it
// and Close drains it. ReadRecords parses a directory back into records
// sorted by time.
//
//	local := log.NewLocalLogger(dir, log.WithMirror(logger))
//	defer local.Close()
//	start := timex.Now()
//	local.LogInfo("session started")
//	local.LogAppUsage(start)
package log
