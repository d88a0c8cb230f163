package shell_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/anvil/internal/adapters/shell"
	"go.trai.ch/anvil/internal/core/domain"
)

type recordingLogger struct {
	mu    sync.Mutex
	infos []string
	errs  []error
}

func (l *recordingLogger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Warn(string) {}

func (l *recordingLogger) Error(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs = append(l.errs, err)
}

func TestToolchain_MergeRendersAndRuns(t *testing.T) {
	tmpDir := t.TempDir()
	output := filepath.Join(tmpDir, "merged.jar")

	tc := shell.NewFactory(&recordingLogger{}).Toolchain(domain.ToolsConfig{
		Merge: domain.ToolCommand{"/bin/sh", "-c", "printf merged > {output}"},
	})

	require.NoError(t, tc.Merge(context.Background(), "client.jar", "server.jar", output))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "merged", string(data))
}

func TestToolchain_UnconfiguredTool(t *testing.T) {
	tc := shell.NewFactory(&recordingLogger{}).Toolchain(domain.ToolsConfig{})

	err := tc.Merge(context.Background(), "c.jar", "s.jar", "out.jar")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrToolNotConfigured))
}

func TestToolchain_FailureCarriesExitCode(t *testing.T) {
	tc := shell.NewFactory(&recordingLogger{}).Toolchain(domain.ToolsConfig{
		Patch: domain.ToolCommand{"/bin/sh", "-c", "exit 3"},
	})

	err := tc.ApplyPatches(context.Background(), "base.jar", "patches.lzma", "out.jar")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrToolFailed))
}

func TestToolchain_NormalizeIsIdentityWhenUnconfigured(t *testing.T) {
	tc := shell.NewFactory(&recordingLogger{}).Toolchain(domain.ToolsConfig{})

	in := []byte{0xCA, 0xFE, 0xBA, 0xBE}
	out, err := tc.Normalize(context.Background(), "pkg/A.class", in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestToolchain_NormalizeFiltersStdinToStdout(t *testing.T) {
	tc := shell.NewFactory(&recordingLogger{}).Toolchain(domain.ToolsConfig{
		Normalize: domain.ToolCommand{"/usr/bin/tr", "a-z", "A-Z"},
	})

	out, err := tc.Normalize(context.Background(), "pkg/A.class", []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "HELLO", string(out))
}

func TestToolchain_ToolOutputGoesToLogger(t *testing.T) {
	log := &recordingLogger{}
	tc := shell.NewFactory(log).Toolchain(domain.ToolsConfig{
		Merge: domain.ToolCommand{"/bin/sh", "-c", "echo working"},
	})

	require.NoError(t, tc.Merge(context.Background(), "c", "s", "o"))
	assert.Contains(t, log.infos, "working")
}

func TestToolchain_RemapJoinsClasspath(t *testing.T) {
	tmpDir := t.TempDir()
	output := filepath.Join(tmpDir, "argv.txt")

	tc := shell.NewFactory(&recordingLogger{}).Toolchain(domain.ToolsConfig{
		Remap: domain.ToolCommand{"/bin/sh", "-c", "printf %s '{classpath}' > " + output},
	})

	err := tc.Remap(context.Background(), domain.RemapRequest{
		Input:     "in.jar",
		Output:    "out.jar",
		Mappings:  "joined.tsrg",
		From:      domain.NamespaceOfficial,
		To:        domain.NamespaceSRG,
		Classpath: []string{"a.jar", "b.jar"},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "a.jar"+string(os.PathListSeparator)+"b.jar", string(data))
}
