package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/lattice"
	"github.com/wippyai/lattice/codec"
	"github.com/wippyai/lattice/osc"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	bounceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFB86C"))

	coordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#90EE90"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// maxTrace bounds how many recent steps the explorer displays.
const maxTrace = 12

type explorerState int

const (
	stateInput explorerState = iota
	stateShowWalk
)

type explorerModel struct {
	root    int
	input   textinput.Model
	state   explorerState
	coord   lattice.Coordinate
	trace   []codec.StepEvent
	bounces int
	verdict string
	failed  bool
}

func newExplorerModel(root int) *explorerModel {
	ti := textinput.New()
	ti.Placeholder = "bytes to drop into the lattice"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 48
	return &explorerModel{root: root, input: ti}
}

func (m *explorerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *explorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.state == stateShowWalk {
				m.state = stateInput
				m.input.Focus()
				return m, textinput.Blink
			}
			return m, tea.Quit

		case "q":
			if m.state == stateShowWalk {
				return m, tea.Quit
			}

		case "enter":
			if m.state == stateInput {
				m.runWalk([]byte(m.input.Value()))
				m.state = stateShowWalk
				m.input.Blur()
				return m, nil
			}
		}
	}

	if m.state == stateInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *explorerModel) runWalk(data []byte) {
	m.trace = m.trace[:0]
	m.bounces = 0

	enc := codec.NewEncoder(
		codec.WithRoot(m.root),
		codec.WithObserver(func(ev codec.StepEvent) {
			if ev.Bounced {
				m.bounces++
			}
			m.trace = append(m.trace, ev)
			if len(m.trace) > maxTrace {
				m.trace = m.trace[1:]
			}
		}),
	)

	coord, err := enc.Encode(data)
	if err != nil {
		m.failed = true
		m.verdict = err.Error()
		return
	}
	m.coord = coord

	recovered, err := codec.NewDecoder().Decode(coord)
	switch {
	case err != nil:
		m.failed = true
		m.verdict = err.Error()
	case string(recovered) == string(data):
		m.failed = false
		m.verdict = fmt.Sprintf("round trip exact (%d bytes)", len(recovered))
	default:
		// Decode proves uniqueness, so this would be a codec bug.
		m.failed = true
		m.verdict = "reconstruction differs from input"
	}
}

func (m *explorerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("lattice walk explorer"))
	fmt.Fprintf(&b, "  root %d\n\n", m.root)

	if m.state == stateInput {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter: walk · esc: quit"))
		return b.String()
	}

	for _, ev := range m.trace {
		line := fmt.Sprintf("step %3d  byte %3d  %5d → %5d", ev.Index+1, ev.Byte, ev.Before.Position, ev.After.Position)
		if ev.Bounced {
			b.WriteString(bounceStyle.Render(line + "  bounce"))
		} else {
			b.WriteString(stepStyle.Render(line))
		}
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "\n%s\n", coordStyle.Render(fmt.Sprintf(
		"start %d  end %d  prev %d  end_d %d  length %d  (bounces %d)",
		m.coord.StartMask, m.coord.EndMask, m.coord.PrevMask,
		m.coord.EndChoice, m.coord.LengthBytes, m.bounces)))

	if m.failed {
		b.WriteString(errStyle.Render(m.verdict))
	} else {
		b.WriteString(okStyle.Render(m.verdict))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("esc: new walk · q: quit"))
	return b.String()
}

func runInteractive(root int) error {
	if root < osc.Low || root > osc.High {
		return fmt.Errorf("root %d outside [%d, %d]", root, osc.Low, osc.High)
	}
	_, err := tea.NewProgram(newExplorerModel(root)).Run()
	return err
}
