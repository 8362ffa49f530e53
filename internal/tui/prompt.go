// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const promptCharLimit = 512

// promptModel is a one-line Bubble Tea program. It quits on enter with the
// typed value, or on ctrl+c, esc and ctrl+d (on an empty line) with quit set.
type promptModel struct {
	label  string
	secret bool
	input  textinput.Model

	value string
	done  bool
	quit  bool
}

func newPromptModel(label string, secret bool) promptModel {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = promptCharLimit
	input.Focus()
	if secret {
		input.EchoMode = textinput.EchoNone
	}

	return promptModel{label: label, secret: secret, input: input}
}

// Init implements [tea.Model]. Starts the cursor blink.
func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model].
func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			m.value = m.input.Value()
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quit = true
			return m, tea.Quit
		case tea.KeyCtrlD:
			if m.input.Value() == "" {
				m.quit = true
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Once finished it leaves the answered prompt
// on screen, without the value for secrets.
func (m promptModel) View() string {
	if m.done || m.quit {
		if m.secret || m.quit {
			return m.label + "\n"
		}
		return m.label + m.value + "\n"
	}
	return promptStyle.Render(m.label) + m.input.View()
}
