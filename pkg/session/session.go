// Package session runs the interactive filter prompt loop.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/seedsieve/seedsieve/pkg/filter"
	"github.com/seedsieve/seedsieve/pkg/query"
)

const (
	lengthPrompt    = "Length (N or N-M or -M or N-, blank for any) > "
	positionsPrompt = "Fixed positions (e.g., 1=a,3=e; blank for none) > "
	posPrompt       = "Word types (comma: noun, verb, adjective; blank for any) > "
	againPrompt     = "Filter again? [Y/n] > "
)

// Session is one interactive filtering session over a fixed word source.
type Session struct {
	words       []string
	engine      *filter.Engine
	historyFile string
	out         io.Writer
	errOut      io.Writer
}

// New creates a session. historyFile may be empty to disable prompt history.
func New(words []string, engine *filter.Engine, historyFile string, out, errOut io.Writer) *Session {
	return &Session{
		words:       words,
		engine:      engine,
		historyFile: historyFile,
		out:         out,
		errOut:      errOut,
	}
}

// Run loops: prompt for the three query fragments, filter, render, repeat.
// Query-syntax and capability errors are reported and the loop continues;
// Ctrl-C or EOF at any prompt ends the session.
func (s *Session) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          lengthPrompt,
		HistoryFile:     s.historyFile,
		InterruptPrompt: "^C",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize prompt: %w", err)
	}
	defer func() { _ = rl.Close() }()

	fmt.Fprintf(s.out, "Loaded %d BIP39 words.\n", len(s.words))

	for {
		lengthText, ok := s.prompt(rl, lengthPrompt)
		if !ok {
			return nil
		}
		positionsText, ok := s.prompt(rl, positionsPrompt)
		if !ok {
			return nil
		}
		posText, ok := s.prompt(rl, posPrompt)
		if !ok {
			return nil
		}

		q, err := query.Parse(lengthText, positionsText, posText)
		if err != nil {
			fmt.Fprintf(s.out, "Input error: %v\n", err)
			continue
		}

		hits, err := s.engine.Run(ctx, s.words, q)
		if err != nil {
			fmt.Fprintf(s.errOut, "Error: %v\n", err)
			continue
		}

		Render(s.out, hits)

		again, ok := s.prompt(rl, againPrompt)
		if !ok || strings.HasPrefix(strings.ToLower(again), "n") {
			return nil
		}
	}
}

// prompt reads one line; ok is false on interrupt or EOF.
func (s *Session) prompt(rl *readline.Instance, text string) (string, bool) {
	rl.SetPrompt(text)
	line, err := rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out)
		return "", false
	}
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(line), true
}

// Render writes the match count and the space-joined match list.
func Render(w io.Writer, hits []string) {
	fmt.Fprintf(w, "Matches: %d\n", len(hits))
	if len(hits) > 0 {
		fmt.Fprintln(w, strings.Join(hits, " "))
	}
}
