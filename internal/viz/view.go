package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/kintraj/internal/trajectory"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// Model pages through the six kinematic quantities of a loaded trajectory.
type Model struct {
	tr       *trajectory.Trajectory
	name     string
	selected int
	width    int
	height   int
}

// NewModel builds the viewer for a loaded trajectory. name is shown in the
// header, usually the file name.
func NewModel(tr *trajectory.Trajectory, name string) Model {
	return Model{tr: tr, name: name, width: 70, height: 6}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	n := len(trajectory.Quantities())
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.selected = (m.selected + n - 1) % n
		case "right", "l", "tab":
			m.selected = (m.selected + 1) % n
		case "r":
			m.tr.Reset()
		}
	case tea.WindowSizeMsg:
		if msg.Width > 20 {
			m.width = msg.Width - 12
		}
	}
	return m, nil
}

func (m Model) View() string {
	q := trajectory.Quantities()[m.selected]

	status := "unset"
	switch {
	case m.tr.Has(q):
		status = "stored"
	case m.tr.DifferentiateOnDemand():
		status = "derived on read"
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.name)) + "\n")
	s.WriteString(labelStyle.Render("Samples") + valueStyle.Render(fmt.Sprintf("%d", m.tr.Len())) + "\n")
	s.WriteString(labelStyle.Render("Quantity") + valueStyle.Render(q.String()) + "\n")
	s.WriteString(labelStyle.Render("Status") + valueStyle.Render(status) + "\n")

	plot, err := PlotComponents(m.tr, q, m.width, m.height)
	if err != nil {
		s.WriteString("\n" + errorStyle.Render(err.Error()) + "\n")
	} else {
		s.WriteString(graphStyle.Render(plot))
	}

	s.WriteString(helpStyle.Render("←/→:Quantity R:Reset Q:Quit"))
	return s.String()
}
