package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

type terminal struct {
	in  io.Reader
	out io.Writer

	// lines is set when in is not a terminal; prompts then read plain lines.
	lines *bufio.Reader

	mu sync.Mutex
}

// NewTerminal returns a [Terminal] over in and out. When in is an interactive
// terminal every prompt runs as a small Bubble Tea program; otherwise input
// is consumed line by line, which keeps piped input working.
func NewTerminal(in io.Reader, out io.Writer) Terminal {
	t := &terminal{in: in, out: out}
	if !isTerminal(in) {
		t.lines = bufio.NewReader(in)
	}
	return t
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (t *terminal) ReadLine(ctx context.Context, prompt string) (string, error) {
	return t.read(ctx, prompt, false)
}

func (t *terminal) ReadSecret(ctx context.Context, prompt string) (string, error) {
	return t.read(ctx, prompt, true)
}

func (t *terminal) Print(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = fmt.Fprintln(t.out, text)
}

func (t *terminal) read(ctx context.Context, prompt string, secret bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUserQuit, err)
	}

	if t.lines != nil {
		return t.readPlainLine(ctx, prompt)
	}
	return t.runPrompt(ctx, prompt, secret)
}

func (t *terminal) runPrompt(ctx context.Context, prompt string, secret bool) (string, error) {
	program := tea.NewProgram(
		newPromptModel(prompt, secret),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
		tea.WithContext(ctx),
	)

	final, err := program.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", fmt.Errorf("%w: %w", ErrUserQuit, ctxErr)
	}
	if err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}

	model, ok := final.(promptModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if model.quit {
		return "", ErrUserQuit
	}

	return strings.TrimSpace(model.value), nil
}

type lineResult struct {
	line string
	err  error
}

func (t *terminal) readPlainLine(ctx context.Context, prompt string) (string, error) {
	t.mu.Lock()
	_, _ = fmt.Fprint(t.out, prompt)
	t.mu.Unlock()

	ch := make(chan lineResult, 1)
	go func() {
		line, err := t.lines.ReadString('\n')
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		t.Print("")
		return "", fmt.Errorf("%w: %w", ErrUserQuit, ctx.Err())
	case res := <-ch:
		if res.err != nil {
			if !errors.Is(res.err, io.EOF) {
				return "", fmt.Errorf("read input: %w", res.err)
			}
			if res.line == "" {
				t.Print("")
				return "", ErrUserQuit
			}
		}
		return strings.TrimSpace(res.line), nil
	}
}
