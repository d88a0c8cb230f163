package pipeline_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/engine/pipeline"
)

func upperClass(_ context.Context, _ string, data []byte) ([]byte, error) {
	return []byte(strings.ToUpper(string(data))), nil
}

func TestRewriteEntries_AppliesToMatchingEntries(t *testing.T) {
	dir := t.TempDir()
	path := makeArchive(t, dir, "a.jar", map[string]string{
		"a/A.class": "aaa",
		"b/B.class": "bbb",
		"notes.txt": "keep-me",
	})

	err := pipeline.RewriteEntries(context.Background(), path, pipeline.IsClassEntry, upperClass, 2)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"a/A.class": "AAA",
		"b/B.class": "BBB",
		"notes.txt": "keep-me",
	}, readArchive(t, path))
}

func TestRewriteEntries_DeterministicAcrossWorkerCounts(t *testing.T) {
	dir := t.TempDir()
	entries := map[string]string{}
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		entries["pkg/"+name+".class"] = name + "-body"
	}

	serial := makeArchive(t, dir, "serial.jar", entries)
	parallel := makeArchive(t, dir, "parallel.jar", entries)

	require.NoError(t, pipeline.RewriteEntries(context.Background(), serial, pipeline.IsClassEntry, upperClass, 1))
	require.NoError(t, pipeline.RewriteEntries(context.Background(), parallel, pipeline.IsClassEntry, upperClass, 8))

	d1, err := os.ReadFile(serial)
	require.NoError(t, err)
	d2, err := os.ReadFile(parallel)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
}

func TestRewriteEntries_IdentityLeavesArchiveUntouched(t *testing.T) {
	dir := t.TempDir()
	path := makeArchive(t, dir, "a.jar", map[string]string{"a/A.class": "same"})

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	identity := func(_ context.Context, _ string, data []byte) ([]byte, error) {
		return data, nil
	}
	require.NoError(t, pipeline.RewriteEntries(context.Background(), path, pipeline.IsClassEntry, identity, 4))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRewriteEntries_PropagatesUnitError(t *testing.T) {
	dir := t.TempDir()
	path := makeArchive(t, dir, "a.jar", map[string]string{
		"ok.class":  "fine",
		"bad.class": "broken",
	})

	failing := func(_ context.Context, name string, data []byte) ([]byte, error) {
		if name == "bad.class" {
			return nil, errors.New("malformed class")
		}
		return data, nil
	}

	err := pipeline.RewriteEntries(context.Background(), path, pipeline.IsClassEntry, failing, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrEntryRewriteFailed))
	assert.Contains(t, err.Error(), "entry rewrite failed")
}

func TestRewriteEntries_NilMatchRewritesEverything(t *testing.T) {
	dir := t.TempDir()
	path := makeArchive(t, dir, "a.jar", map[string]string{
		"a.class": "x",
		"b.txt":   "y",
	})

	require.NoError(t, pipeline.RewriteEntries(context.Background(), path, nil, upperClass, 0))

	assert.Equal(t, map[string]string{
		"a.class": "X",
		"b.txt":   "Y",
	}, readArchive(t, path))
}
