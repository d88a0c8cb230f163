package domain

import (
	"os"
	"path/filepath"
)

const (
	// AnvilDirName is the name of the project-scoped cache directory.
	AnvilDirName = ".anvil"

	// GlobalCacheDirName is the name of the machine-global cache directory
	// placed under the user cache dir.
	GlobalCacheDirName = "anvil"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "anvil.yaml"

	// FingerprintFileName is the name of the persisted overlay fingerprint.
	FingerprintFileName = "overlay.hash"

	// OverlayEntryName is the archive entry holding the built-in access
	// rules, and the conventional resource path of the project overlay.
	OverlayEntryName = "META-INF/accesstransformer.cfg"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultProjectCachePath returns the default root of the project cache tier.
func DefaultProjectCachePath() string {
	return AnvilDirName
}

// DefaultGlobalCachePath returns the default root of the global cache tier.
// It falls back to the project cache when the user cache dir is unknown.
func DefaultGlobalCachePath() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return DefaultProjectCachePath()
	}
	return filepath.Join(base, GlobalCacheDirName)
}
