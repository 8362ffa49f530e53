package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(t *testing.T, m tea.Model, text string) tea.Model {
	t.Helper()
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestPromptModel_Enter(t *testing.T) {
	var m tea.Model = newPromptModel("Enter your email: ", false)
	m = typeText(t, m, "reader@example.com")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	pm := m.(promptModel)
	assert.True(t, pm.done)
	assert.False(t, pm.quit)
	assert.Equal(t, "reader@example.com", pm.value)
	assert.Equal(t, "Enter your email: reader@example.com\n", pm.View())
}

func TestPromptModel_SecretNeverEchoed(t *testing.T) {
	var m tea.Model = newPromptModel("Enter your password: ", true)
	m = typeText(t, m, "hunter2")

	assert.NotContains(t, m.View(), "hunter2")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	pm := m.(promptModel)
	assert.Equal(t, "hunter2", pm.value)
	assert.Equal(t, "Enter your password: \n", pm.View())
}

func TestPromptModel_Quit(t *testing.T) {
	keys := []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc, tea.KeyCtrlD}

	for _, k := range keys {
		t.Run(tea.KeyMsg{Type: k}.String(), func(t *testing.T) {
			m, cmd := newPromptModel("> ", false).Update(tea.KeyMsg{Type: k})
			require.NotNil(t, cmd)
			assert.True(t, m.(promptModel).quit)
		})
	}
}

func TestPromptModel_CtrlDWithTextIsIgnored(t *testing.T) {
	var m tea.Model = newPromptModel("> ", false)
	m = typeText(t, m, "du")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.False(t, m.(promptModel).quit)
}
