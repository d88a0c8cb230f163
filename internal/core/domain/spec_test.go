package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/anvil/internal/core/domain"
)

func TestToolCommand_Render(t *testing.T) {
	cmd := domain.ToolCommand{"merge-tool", "--client", "{client}", "--server", "{server}", "-o", "{output}"}

	got := cmd.Render(map[string]string{
		"client": "/tmp/client.jar",
		"server": "/tmp/server.jar",
		"output": "/tmp/merged.jar",
	})

	want := []string{"merge-tool", "--client", "/tmp/client.jar", "--server", "/tmp/server.jar", "-o", "/tmp/merged.jar"}
	assert.Equal(t, want, got)
}

func TestToolCommand_RenderKeepsUnknownTokens(t *testing.T) {
	cmd := domain.ToolCommand{"tool", "{input}", "{not-a-placeholder}"}

	got := cmd.Render(map[string]string{"input": "a.jar"})

	assert.Equal(t, []string{"tool", "a.jar", "{not-a-placeholder}"}, got)
}

func TestToolCommand_RenderDoesNotMutateTemplate(t *testing.T) {
	cmd := domain.ToolCommand{"tool", "{input}"}

	_ = cmd.Render(map[string]string{"input": "a.jar"})

	assert.Equal(t, "{input}", cmd[1])
}

func TestToolCommand_Configured(t *testing.T) {
	assert.False(t, domain.ToolCommand(nil).Configured())
	assert.False(t, domain.ToolCommand{}.Configured())
	assert.True(t, domain.ToolCommand{"tool"}.Configured())
}

func TestPipelineSpec_HasOverlay(t *testing.T) {
	assert.False(t, domain.PipelineSpec{}.HasOverlay())
	assert.True(t, domain.PipelineSpec{OverlayPath: "rules.cfg"}.HasOverlay())
}
