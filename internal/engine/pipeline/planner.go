package pipeline

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/zerr"
)

// PlanArtifacts derives the deterministic location of every pipeline
// artifact from the cache roots and the version identifier.
//
// The first three stages write to the global tier; the access-transformed
// and final jars land in the project tier when the caller carries an overlay
// (useProjectCache), otherwise they share the global tier. The fingerprint
// file is always project-rooted.
//
// Directory creation is create-if-absent only, so concurrent callers sharing
// the global tier cannot clobber each other.
func PlanArtifacts(globalRoot, projectRoot string, id domain.VersionID, useProjectCache bool) (domain.ArtifactPlan, error) {
	patchRoot := globalRoot
	if useProjectCache {
		patchRoot = projectRoot
	}

	globalDir := filepath.Join(globalRoot, id.PatchID())
	projectDir := filepath.Join(patchRoot, id.PatchID())

	for _, dir := range []string{globalRoot, projectRoot, globalDir, projectDir} {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return domain.ArtifactPlan{}, zerr.With(errors.Join(domain.ErrCacheCreateFailed, err), "dir", dir)
		}
	}

	return domain.ArtifactPlan{
		Merged: domain.StageArtifact{
			Stage: domain.StageMerge,
			Path:  filepath.Join(globalRoot, id.Game+"-merged.jar"),
		},
		Remapped: domain.StageArtifact{
			Stage: domain.StageRemapIntermediate,
			Path:  filepath.Join(globalDir, "merged-intermediate.jar"),
		},
		Patched: domain.StageArtifact{
			Stage: domain.StageApplyPatches,
			Path:  filepath.Join(globalDir, "merged-intermediate-patched.jar"),
		},
		PatchedAt: domain.StageArtifact{
			Stage: domain.StageAccessTransform,
			Path:  filepath.Join(projectDir, "merged-patched-at.jar"),
		},
		Final: domain.StageArtifact{
			Stage: domain.StageRemapFinal,
			Path:  filepath.Join(projectDir, "merged-final.jar"),
		},
		FingerprintFile: filepath.Join(projectRoot, domain.FingerprintFileName),
	}, nil
}
