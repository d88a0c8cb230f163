// Package domain contains the core types of the patched-jar pipeline.
package domain

// VersionID identifies one patched edition of the game. It is fixed for the
// whole lifetime of a pipeline run and keys every global-tier cache path.
type VersionID struct {
	// Game is the base game version, e.g. "1.16.5".
	Game string
	// PatchSet is the version of the binary patch set applied on top of the
	// merged jar, e.g. "36.1.0".
	PatchSet string
	// MixinCompat requests the alternate loading convention. It changes the
	// patch identifier and therefore the cache key, because the injected
	// service entries differ.
	MixinCompat bool
}

// PatchID returns the cache-key component derived from the patch set.
func (v VersionID) PatchID() string {
	id := "forge-" + v.PatchSet

	if v.MixinCompat {
		id += "-fabric-mixin"
	}

	return id
}

// String renders the full identifier, e.g. "1.16.5-forge-36.1.0".
func (v VersionID) String() string {
	return v.Game + "-" + v.PatchID()
}
