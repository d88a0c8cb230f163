//nolint:testpackage // Test needs access to unexported fields
package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/vito/progrock"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// MockTapeSource is a mock implementation of TapeSource.
type MockTapeSource struct{}

func (m *MockTapeSource) Read() (*progrock.StatusUpdate, error) {
	return nil, nil
}

func TestModel_Update_TapeUpdate_AddsRunningStage(t *testing.T) {
	m := NewModel(&MockTapeSource{})

	update := &progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{
			{Id: "1", Name: "merge client and server"},
		},
	}

	_, cmd := m.Update(MsgTapeUpdate{Update: update})

	assert.Len(t, m.stages, 1)
	assert.Equal(t, "1", m.stages[0].ID)
	assert.Equal(t, statusRunning, m.stages[0].Status)
	assert.NotNil(t, cmd)
}

func TestModel_Update_TapeUpdate_CompletesStage(t *testing.T) {
	m := NewModel(&MockTapeSource{})
	m.stages = []StageState{
		{ID: "1", Name: "apply patches", Status: statusRunning},
	}

	now := timestamppb.New(time.Now())
	update := &progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{
			{Id: "1", Name: "apply patches", Completed: now},
		},
	}

	m.Update(MsgTapeUpdate{Update: update})

	assert.Equal(t, statusCompleted, m.stages[0].Status)
}

func TestModel_Update_TapeUpdate_FailedStage(t *testing.T) {
	m := NewModel(&MockTapeSource{})

	now := timestamppb.New(time.Now())
	msg := "patch tool exited 1"
	update := &progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{
			{Id: "1", Name: "apply patches", Completed: now, Error: &msg},
		},
	}

	m.Update(MsgTapeUpdate{Update: update})

	assert.Equal(t, statusFailed, m.stages[0].Status)
}

func TestModel_Update_TapeUpdate_CachedStage(t *testing.T) {
	m := NewModel(&MockTapeSource{})

	now := timestamppb.New(time.Now())
	update := &progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{
			{Id: "1", Name: "merge client and server", Completed: now, Cached: true},
		},
	}

	m.Update(MsgTapeUpdate{Update: update})

	assert.Equal(t, statusCached, m.stages[0].Status)
}

func TestModel_Update_TapeEnded_Quits(t *testing.T) {
	m := NewModel(&MockTapeSource{})

	_, cmd := m.Update(MsgTapeEnded{})

	assert.NotNil(t, cmd)
}

func TestModel_Update_CtrlC_Quits(t *testing.T) {
	m := NewModel(&MockTapeSource{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.NotNil(t, cmd)
}

func TestModel_Update_WindowSize(t *testing.T) {
	m := NewModel(&MockTapeSource{})

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}
