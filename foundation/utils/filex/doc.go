// Package filex provides the file helpers used by the local logger and the
// log viewer.
//
// Package: filex
// Title: File Utilities
// Description: Directory creation, append-only writes, line reading and
//              directory listings with errors carrying the IO_ERROR and
//              NOT_FOUND codes of core/error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with general file utilities
// - 2026-10-19 v0.2.0: Reduced to the log file helpers; structured errors
//
// Usage:
//
//	if err := filex.EnsureDir("/var/log/timetext"); err != nil {
//		return err
//	}
//	err := filex.AppendString(path, "line\n", filex.DefaultFilePerm)
//
//	files, err := filex.ListFiles(dir)
//	filex.SortFiles(files, filex.SortByModTime, filex.Descending)
package filex
