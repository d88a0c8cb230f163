package pipeline

import (
	"strings"

	"go.trai.ch/anvil/internal/adapters/zipfs"
)

// ConflictPolicy decides what happens when a source entry already exists in
// the target archive.
type ConflictPolicy int

const (
	// Replace always overwrites the target entry.
	Replace ConflictPolicy = iota
	// CopyMissing writes the entry only when the target does not already
	// have it. Used to backfill entries a patch tool did not emit.
	CopyMissing
)

// EntryFilter selects archive entries by name.
type EntryFilter func(name string) bool

// MergeOptions controls one merge pass.
type MergeOptions struct {
	// Filter keeps only matching entries. Nil keeps everything.
	Filter EntryFilter
	// Roots narrows the pass to subtrees of the source archive. Target
	// paths are relativized against the enumerated root. Empty means the
	// whole tree.
	Roots []string
	// Policy resolves conflicts with existing target entries.
	Policy ConflictPolicy
}

// MergeEntries overlays entries of the source archive onto the target
// archive. Both archives are released on every exit path. Entry copies are
// whole-value and idempotent; callers must not rely on any ordering between
// entries.
func MergeEntries(sourcePath, targetPath string, opts MergeOptions) (err error) {
	src, err := zipfs.Open(sourcePath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	dst, err := zipfs.Open(targetPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := dst.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	roots := opts.Roots
	if len(roots) == 0 {
		roots = []string{""}
	}

	for _, root := range roots {
		root = strings.Trim(root, "/")

		for _, name := range src.NamesUnder(root) {
			if opts.Filter != nil && !opts.Filter(name) {
				continue
			}

			target := name
			if root != "" {
				target = strings.TrimPrefix(name, root+"/")
			}

			if opts.Policy == CopyMissing && dst.Has(target) {
				continue
			}

			data, rerr := src.Read(name)
			if rerr != nil {
				return rerr
			}

			dst.Write(target, data)
		}
	}

	return nil
}

// IsClassEntry reports whether the entry holds compiled class bytes.
func IsClassEntry(name string) bool {
	return strings.HasSuffix(name, ".class")
}

// CopyAll overlays every entry of source onto target, replacing conflicts.
func CopyAll(source, target string) error {
	return MergeEntries(source, target, MergeOptions{Policy: Replace})
}

// CopyMissingClasses backfills class entries present in source but absent in
// target. Existing target entries keep their bytes.
func CopyMissingClasses(source, target string) error {
	return MergeEntries(source, target, MergeOptions{Filter: IsClassEntry, Policy: CopyMissing})
}

// CopyNonClassEntries overlays resource entries of source onto target,
// replacing conflicts.
func CopyNonClassEntries(source, target string) error {
	return MergeEntries(source, target, MergeOptions{
		Filter: func(name string) bool { return !IsClassEntry(name) },
		Policy: Replace,
	})
}
