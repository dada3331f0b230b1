package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/anybox"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	inlineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	heapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB86C"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			MarginRight(2)
)

type modelState int

const (
	stateSelectType modelState = iota
	stateInputValue
	stateShowLayout
)

type inspectModel struct {
	err      error
	input    textinput.Model
	status   string
	samples  []sample
	selected int
	state    modelState
	boxA     anybox.Box
	boxB     anybox.Box
}

func newInspectModel() *inspectModel {
	return &inspectModel{
		samples: samples,
		state:   stateSelectType,
	}
}

func runInteractive() error {
	p := tea.NewProgram(newInspectModel())
	_, err := p.Run()
	return err
}

func (m *inspectModel) Init() tea.Cmd {
	return nil
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputValue {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectType && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectType && m.selected < len(m.samples)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectType:
				m.prepareInput()
				m.state = stateInputValue

			case stateInputValue:
				s := m.samples[m.selected]
				if err := s.build(m.input.Value(), &m.boxA); err != nil {
					m.err = err
					return m, nil
				}
				m.err = nil
				m.status = "stored into A"
				m.state = stateShowLayout
			}

		case "esc":
			switch m.state {
			case stateInputValue:
				m.state = stateSelectType
				m.err = nil
			case stateShowLayout:
				m.state = stateSelectType
				m.status = ""
			}

		case "c":
			if m.state == stateShowLayout {
				m.boxB.CopyFrom(&m.boxA)
				m.status = "B.CopyFrom(A)"
			}

		case "m":
			if m.state == stateShowLayout {
				m.boxB.MoveFrom(&m.boxA)
				m.status = "B.MoveFrom(A), A now empty"
			}

		case "r":
			if m.state == stateShowLayout {
				m.boxA.Reset()
				m.status = "A.Reset()"
			}

		case "b":
			if m.state == stateShowLayout {
				m.boxB.Reset()
				m.status = "B.Reset()"
			}
		}
	}

	if m.state == stateInputValue {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *inspectModel) prepareInput() {
	ti := textinput.New()
	ti.Placeholder = m.samples[m.selected].hint
	ti.Prompt = m.samples[m.selected].name + ": "
	ti.Width = 48
	ti.Focus()
	m.input = ti
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("anybox inspector"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectType:
		b.WriteString("Select a type to box:\n\n")
		for i, s := range m.samples {
			line := fmt.Sprintf("%s  %s", nameStyle.Render(fmt.Sprintf("%-8s", s.name)), hintStyle.Render(s.hint))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + s.name))
				b.WriteString("  ")
				b.WriteString(hintStyle.Render(s.hint))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateInputValue:
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n\n")
		}
		b.WriteString(helpStyle.Render("enter store • esc back"))

	case stateShowLayout:
		paneA := paneStyle.Render(m.renderPane("A", anybox.Inspect(&m.boxA)))
		paneB := paneStyle.Render(m.renderPane("B", anybox.Inspect(&m.boxB)))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, paneA, paneB))
		b.WriteString("\n")
		if m.status != "" {
			b.WriteString(m.status)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("c copy A→B • m move A→B • r reset A • b reset B • esc back • q quit"))
	}

	return b.String()
}

func (m *inspectModel) renderPane(label string, v anybox.View) string {
	var b strings.Builder

	b.WriteString(nameStyle.Render("Box " + label))
	b.WriteString("\n")

	switch v.Mode {
	case anybox.ModeEmpty:
		b.WriteString(emptyStyle.Render("(empty)"))
		return b.String()
	case anybox.ModeInline:
		b.WriteString(inlineStyle.Render("inline"))
	case anybox.ModeHeap:
		b.WriteString(heapStyle.Render("heap"))
	}

	fmt.Fprintf(&b, "  %s\n", hintStyle.Render(v.TypeName))
	fmt.Fprintf(&b, "dispatcher 0x%x\n", v.Dispatcher)
	if v.Mode == anybox.ModeHeap {
		fmt.Fprintf(&b, "block      0x%x\n", v.Heap)
	}
	fmt.Fprintf(&b, "size/align %d/%d\n", v.Size, v.Align)
	for i := 0; i < len(v.Bytes); i += 8 {
		end := i + 8
		if end > len(v.Bytes) {
			end = len(v.Bytes)
		}
		fmt.Fprintf(&b, "%04x  % x\n", i, v.Bytes[i:end])
	}
	return b.String()
}
