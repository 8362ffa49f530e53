// Package tui owns the terminal: line and secret prompts driven by a small
// Bubble Tea program, and lipgloss rendering of result menus and history.
//
// Everything above this package talks to the terminal through [Terminal], so
// controllers and services can be driven by a scripted implementation in
// tests.
package tui

import "context"

// Terminal is the input provider and output sink of the interactive client.
type Terminal interface {
	// ReadLine shows prompt and returns the line typed by the user with
	// surrounding whitespace removed. Ctrl+C, Esc or end of input yield
	// [ErrUserQuit].
	ReadLine(ctx context.Context, prompt string) (string, error)

	// ReadSecret behaves like ReadLine but never echoes the typed value.
	ReadSecret(ctx context.Context, prompt string) (string, error)

	// Print writes text followed by a newline.
	Print(text string)
}
