package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrMissingInput is returned when a required input path is not set in
	// the configuration.
	ErrMissingInput = zerr.New("missing required input")

	// ErrOverlayUnreadable is returned when the configured overlay file
	// exists but cannot be read.
	ErrOverlayUnreadable = zerr.New("failed to read configuration overlay")

	// ErrFingerprintUnreadable is returned when the persisted fingerprint
	// file exists but cannot be read.
	ErrFingerprintUnreadable = zerr.New("failed to read persisted fingerprint")

	// ErrFingerprintWriteFailed is returned when the fingerprint file cannot
	// be written back.
	ErrFingerprintWriteFailed = zerr.New("failed to write fingerprint")

	// ErrCacheCreateFailed is returned when a cache tier directory cannot be
	// created.
	ErrCacheCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheCleanFailed is returned when a stale artifact cannot be
	// deleted during invalidation.
	ErrCacheCleanFailed = zerr.New("failed to clean cached artifact")

	// ErrToolFailed is returned when an external tool exits unsuccessfully.
	ErrToolFailed = zerr.New("external tool failed")

	// ErrToolNotConfigured is returned when a stage needs a tool whose
	// command template is not configured.
	ErrToolNotConfigured = zerr.New("tool command not configured")

	// ErrStageOutputMissing is returned when a tool reports success but its
	// declared output file does not exist.
	ErrStageOutputMissing = zerr.New("stage output missing after tool run")

	// ErrStageOutputEmpty is returned when a stage produced an empty output
	// file.
	ErrStageOutputEmpty = zerr.New("stage output is empty")

	// ErrArchiveOpenFailed is returned when an archive cannot be mounted.
	ErrArchiveOpenFailed = zerr.New("failed to open archive")

	// ErrArchiveFlushFailed is returned when a mutated archive cannot be
	// flushed back to disk.
	ErrArchiveFlushFailed = zerr.New("failed to flush archive")

	// ErrArchiveEntryMissing is returned when a required entry is absent
	// inside an archive.
	ErrArchiveEntryMissing = zerr.New("required archive entry missing")

	// ErrEntryRewriteFailed is returned when a class entry rewrite fails
	// during the parallel pass.
	ErrEntryRewriteFailed = zerr.New("entry rewrite failed")
)
