// Package logging provides the per-tool log handle used across the XNAT
// command-line tools.
//
// This package is built on Go's standard slog package. Each tool creates one
// Logger at startup, naming it after itself, and passes the handle to
// whatever needs it. There is deliberately no process-global registry: the
// invoking tool owns the handle and its lifecycle, which keeps sinks from
// silently accumulating when helpers are set up more than once.
//
// # Sinks
//
// A Logger writes to exactly one sink, chosen at construction:
//   - a log file (created or truncated) when the tool was given a log path
//   - stdout otherwise
//
// The minimum severity is Info, matching the interactive character of the
// tools; Debug output is available through NewWithWriter for tests and
// special cases.
//
// # Usage
//
//	logger, err := logging.New("Xnatdownload", logFile)
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("Export data from text file %s ...", path)
//	logger.Error(err, "failed to write report")
//
// Every entry carries the tool name as a structured attribute so interleaved
// logs from a processing pipeline can be attributed afterwards.
package logging
