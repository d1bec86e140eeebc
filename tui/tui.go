// Package tui provides a bubbletea-backed line source for the ask package.
//
// The plain terminal source reads whole lines from stdin; this one renders
// each prompt as an interactive text input with cursor support, which
// behaves better inside other bubbletea programs and over odd terminals.
// Wire it in with ask.SetDefault(tui.LineSource()) or pass it per call.
package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calvinmclean/survey/ask"
)

// ErrAborted is returned when the user cancels a prompt with Esc or Ctrl+C.
var ErrAborted = errors.New("prompt aborted")

var promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)

// LineSource returns an ask.LineSource that runs a one-shot text-input
// program per prompt. Enter submits the typed line; Esc and Ctrl+C abort,
// which the resolver reports as an input error.
func LineSource() ask.LineSource {
	return func(prompt string) (string, error) {
		final, err := tea.NewProgram(newModel(prompt)).Run()
		if err != nil {
			return "", err
		}

		m, ok := final.(*model)
		if !ok {
			return "", fmt.Errorf("unexpected final model %T", final)
		}
		if m.aborted {
			return "", ErrAborted
		}
		return m.input.Value(), nil
	}
}

// model is the bubbletea model for a single prompt.
type model struct {
	prompt  string
	input   textinput.Model
	done    bool
	aborted bool
}

func newModel(prompt string) *model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Focus()
	return &model{prompt: prompt, input: ti}
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	if m.done || m.aborted {
		// Leave the answered prompt on screen when the program exits.
		return fmt.Sprintf("%s%s\n", promptStyle.Render(m.prompt), m.input.Value())
	}
	return m.input.View()
}
