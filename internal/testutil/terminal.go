// Package testutil holds test doubles shared by package tests.
package testutil

import (
	"context"
	"strings"
	"sync"

	"github.com/MKhiriev/go-book-fetcher/internal/tui"
)

// ScriptedTerminal is a [tui.Terminal] that answers prompts from a fixed
// script and records everything shown to the user. When the script runs out
// it behaves like end of input and returns [tui.ErrUserQuit].
type ScriptedTerminal struct {
	mu sync.Mutex

	answers []string

	prompts       []string
	secretPrompts []string
	output        []string
}

var _ tui.Terminal = (*ScriptedTerminal)(nil)

// NewScriptedTerminal returns a terminal that answers prompts in order.
func NewScriptedTerminal(answers ...string) *ScriptedTerminal {
	return &ScriptedTerminal{answers: answers}
}

func (s *ScriptedTerminal) ReadLine(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts = append(s.prompts, prompt)
	return s.next(ctx)
}

func (s *ScriptedTerminal) ReadSecret(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts = append(s.prompts, prompt)
	s.secretPrompts = append(s.secretPrompts, prompt)
	return s.next(ctx)
}

func (s *ScriptedTerminal) Print(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.output = append(s.output, text)
}

func (s *ScriptedTerminal) next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", tui.ErrUserQuit
	}
	if len(s.answers) == 0 {
		return "", tui.ErrUserQuit
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return strings.TrimSpace(answer), nil
}

// Prompts returns every prompt shown, in order.
func (s *ScriptedTerminal) Prompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.prompts...)
}

// SecretPrompts returns the prompts that were read without echo.
func (s *ScriptedTerminal) SecretPrompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.secretPrompts...)
}

// Output returns every printed line, in order.
func (s *ScriptedTerminal) Output() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.output...)
}

// OutputText returns the printed lines joined by newlines.
func (s *ScriptedTerminal) OutputText() string {
	return strings.Join(s.Output(), "\n")
}

// CountPrompt reports how many times prompt was shown.
func (s *ScriptedTerminal) CountPrompt(prompt string) int {
	n := 0
	for _, p := range s.Prompts() {
		if p == prompt {
			n++
		}
	}
	return n
}

// Remaining returns the number of unused answers.
func (s *ScriptedTerminal) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}
