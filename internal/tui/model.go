package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vito/progrock"
)

const (
	statusRunning   = "running"
	statusCompleted = "completed"
	statusFailed    = "failed"
	statusCached    = "cached"
)

// StageState represents the current state of one pipeline stage vertex.
type StageState struct {
	ID     string
	Name   string
	Status string // statusRunning, statusCompleted, statusFailed, statusCached
}

type styles struct {
	running   lipgloss.Style
	completed lipgloss.Style
	failed    lipgloss.Style
	cached    lipgloss.Style
}

// Model is the Bubble Tea model following the stage vertices of one run.
type Model struct {
	tape    TapeSource
	stages  []StageState
	width   int
	height  int
	spinner spinner.Model
	styles  styles
}

// NewModel creates a new TUI model with the given tape source.
func NewModel(tape TapeSource) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))

	return &Model{
		tape:    tape,
		spinner: s,
		styles: styles{
			running:   lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")),
			completed: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),  // Green
			failed:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")), // Red
			cached:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")), // Gray
		},
	}
}

// Init initializes the model and starts reading from the tape.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForTape(m.tape),
		m.spinner.Tick,
	)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)
	case MsgTapeUpdate:
		return m.handleTapeUpdate(msg)
	case MsgTapeEnded:
		return m, tea.Quit
	}
	return m, nil
}

// handleKeyMsg handles keyboard input messages.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	return m, nil
}

// handleWindowSizeMsg handles window resize messages.
func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	return m, nil
}

// handleSpinnerTick handles spinner animation tick messages.
func (m *Model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// handleTapeUpdate handles tape update messages.
func (m *Model) handleTapeUpdate(msg MsgTapeUpdate) (tea.Model, tea.Cmd) {
	for _, v := range msg.Update.GetVertexes() {
		m.updateOrAddStage(v)
	}
	return m, WaitForTape(m.tape)
}

// updateOrAddStage updates an existing stage or adds a new one.
func (m *Model) updateOrAddStage(v *progrock.Vertex) {
	for i, existing := range m.stages {
		if existing.ID == v.Id {
			m.stages[i].Status = stageStatus(v)
			return
		}
	}

	m.stages = append(m.stages, StageState{
		ID:     v.Id,
		Name:   v.Name,
		Status: stageStatus(v),
	})
}

func stageStatus(v *progrock.Vertex) string {
	switch {
	case v.Cached:
		return statusCached
	case v.Completed == nil:
		return statusRunning
	case v.Error != nil:
		return statusFailed
	default:
		return statusCompleted
	}
}

// View renders the current state of the model as a string.
func (m *Model) View() string {
	var s strings.Builder

	// Determine start index to handle overflow
	start := 0
	if len(m.stages) > m.height && m.height > 0 {
		start = len(m.stages) - m.height
	}

	for i := start; i < len(m.stages); i++ {
		st := m.stages[i]

		var icon string
		var style lipgloss.Style
		switch st.Status {
		case statusRunning:
			icon = m.spinner.View()
			style = m.styles.running
		case statusCompleted:
			icon = "✓"
			style = m.styles.completed
		case statusFailed:
			icon = "✗"
			style = m.styles.failed
		default:
			icon = "≡"
			style = m.styles.cached
		}

		line := fmt.Sprintf("%s %s\n", style.Render(icon), st.Name)
		s.WriteString(line)
	}

	return s.String()
}
