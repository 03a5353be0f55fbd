// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-08-31
// Last Modified: 2026-08-31

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Brand color
var (
	primaryColor = lipgloss.Color("#ff7300")
	subtleColor  = lipgloss.Color("#626262")
	successColor = lipgloss.Color("#04B575")
	errorColor   = lipgloss.Color("#FF0000")

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			MarginBottom(1)

	gateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	activeGateStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	passedGateStyle = lipgloss.NewStyle().
			Foreground(successColor)

	errorGateStyle = lipgloss.NewStyle().
			Foreground(errorColor)
)

// GateStatusMsg indicates a status update from a running gate.
type GateStatusMsg struct {
	Gate    string
	Status  string // "started", "success", "error", "skipped"
	Message string
}

// ResultMsg indicates the final result.
type ResultMsg struct {
	Success bool
	Output  string
}

// Model for the TUI.
type Model struct {
	spinner    spinner.Model
	gates      []string
	current    int
	status     map[string]string // gate -> status
	logs       []string
	quitting   bool
	err        error
	statusChan <-chan GateStatusMsg
}

// NewModel creates a new TUI model.
func NewModel(gates []string, statusChan <-chan GateStatusMsg) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(primaryColor)

	return Model{
		spinner:    s,
		gates:      gates,
		current:    0,
		status:     make(map[string]string),
		statusChan: statusChan,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.waitForActivity(),
	)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case GateStatusMsg:
		m.status[msg.Gate] = msg.Status
		if msg.Message != "" {
			m.logs = append(m.logs, fmt.Sprintf("[%s] %s: %s", time.Now().Format("15:04:05"), msg.Gate, msg.Message))
		}

		// Find current gate index
		for i, g := range m.gates {
			if g == msg.Gate {
				m.current = i
				break
			}
		}

		if msg.Status == "error" {
			m.err = fmt.Errorf("gate %s failed: %s", msg.Gate, msg.Message)
		}

		return m, m.waitForActivity()

	case ResultMsg:
		// Print the final output before quitting so the user can see the verdict
		if msg.Output != "" {
			fmt.Println("\n" + msg.Output)
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) waitForActivity() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg, ok := <-m.statusChan:
			if !ok {
				return ResultMsg{Success: true}
			}
			return msg
		case <-time.After(30 * time.Second):
			// Timeout waiting for gate activity
			return ResultMsg{
				Success: false,
				Output:  "timed out waiting for gate activity",
			}
		}
	}
}

// View renders the TUI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Change-Request Gate Check"))
	s.WriteString("\n\n")

	for i, gate := range m.gates {
		status := m.status[gate]
		var line string

		prefix := "  "
		style := gateStyle

		if i == m.current {
			prefix = m.spinner.View() + " "
			style = activeGateStyle
		}

		switch status {
		case "success":
			prefix = "✓ "
			style = passedGateStyle
		case "error":
			prefix = "✗ "
			style = errorGateStyle
		case "skipped":
			prefix = "○ "
			style = gateStyle.Faint(true)
		}

		line = fmt.Sprintf("%s%s\n", prefix, gate)
		s.WriteString(style.Render(line))
	}

	s.WriteString("\nLogs:\n")
	// Show last 5 logs
	start := 0
	if len(m.logs) > 5 {
		start = len(m.logs) - 5
	}
	for _, log := range m.logs[start:] {
		s.WriteString(lipgloss.NewStyle().Foreground(subtleColor).Render(log) + "\n")
	}

	if m.err != nil {
		s.WriteString("\n" + errorGateStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n")
	}

	s.WriteString(lipgloss.NewStyle().Foreground(subtleColor).Render("\nPress q to quit\n"))

	return s.String()
}
