package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pydex/pydex/pkg/readme"
)

// List styles
var (
	browserSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	browserNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	browserDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// previewLines is how many code lines the browser shows per example.
const previewLines = 8

// browserModel is the bubbletea model for interactive example browsing.
// Navigating moves through the ranked examples; enter selects one, whose
// code is printed once the program exits.
type browserModel struct {
	examples []readme.UsageExample
	cursor   int
	selected *readme.UsageExample
	height   int
	offset   int
}

func newBrowserModel(examples []readme.UsageExample) browserModel {
	return browserModel{
		examples: examples,
		height:   15,
	}
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.examples)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			e := m.examples[m.cursor]
			m.selected = &e
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m browserModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Usage Examples"))
	b.WriteString("\n")
	b.WriteString(browserDimStyle.Render("↑/↓ navigate  ⏎ print snippet  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.examples) {
		end = len(m.examples)
	}

	for i := m.offset; i < end; i++ {
		e := m.examples[i]

		cursor := "  "
		style := browserNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = browserSelectedStyle
		}

		line := fmt.Sprintf("%s%s %s", cursor, style.Render(e.Title),
			styleLanguage.Render("["+e.Language+"]"))
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.previewView())
	return b.String()
}

// previewView renders the first lines of the highlighted example's code.
func (m browserModel) previewView() string {
	if len(m.examples) == 0 {
		return browserDimStyle.Render("nothing to show")
	}

	e := m.examples[m.cursor]
	lines := strings.Split(e.Code, "\n")
	truncated := len(lines) > previewLines
	if truncated {
		lines = lines[:previewLines]
	}

	var b strings.Builder
	if e.Description != "" {
		b.WriteString(browserDimStyle.Render(e.Description))
		b.WriteString("\n")
	}
	for _, line := range lines {
		b.WriteString("  " + StyleValue.Render(line) + "\n")
	}
	if truncated {
		b.WriteString(browserDimStyle.Render("  …"))
		b.WriteString("\n")
	}
	return b.String()
}

// browseExamples runs the interactive browser and prints the selected
// snippet to stdout once the UI has closed.
func browseExamples(examples []readme.UsageExample) error {
	if len(examples) == 0 {
		printInfo("No usage examples found")
		return nil
	}

	final, err := tea.NewProgram(newBrowserModel(examples)).Run()
	if err != nil {
		return fmt.Errorf("example browser: %w", err)
	}

	if m, ok := final.(browserModel); ok && m.selected != nil {
		fmt.Println(m.selected.Code)
	}
	return nil
}
