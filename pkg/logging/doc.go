// Package logging provides structured logging utilities for the sshexp generator.
//
// # Overview
//
// This package wraps the standard library slog package with generator defaults:
// JSON records on stderr, module/version attributes on every record, and source
// location for debug logs. Stdout is never used; it carries generated manifests.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: scan and planning details with source location
//   - INFO: configuration sources and emitted actions
//   - WARN/WARNING: suspicious input that does not stop generation (default)
//   - ERROR: failures that terminate the run
//
// # Usage
//
//	logging.SetDefaultStructuredLoggerWithLevel("sshexp", version, "debug")
//	slog.Debug("binding parsed", "claim", claim, "mount", mount)
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is passed:
//
//	LOG_LEVEL=debug sshexp --genname
//
// If LOG_LEVEL is not set, defaults to WARN so that successful runs leave
// stderr empty.
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "WARN",
//	    "msg": "claim name is not a valid DNS-1123 subdomain",
//	    "module": "sshexp",
//	    "version": "v1.0.0",
//	    "claim": "My-Claim"
//	}
package logging
