// Package filter applies a parsed query to a word sequence in a single
// order-preserving pass.
package filter

import (
	"context"
	"fmt"
	"strings"

	"github.com/seedsieve/seedsieve/pkg/lexicon"
	"github.com/seedsieve/seedsieve/pkg/query"
)

// Lexicon reports whether a word has at least one sense of the given
// category. *lexicon.DB satisfies this; tests supply fakes.
type Lexicon interface {
	HasSense(ctx context.Context, word string, cat query.Category) (bool, error)
}

// Engine filters word sequences against queries.
type Engine struct {
	lex Lexicon
}

// New creates an engine. lex may be nil when part-of-speech filtering is not
// available; a query that requests it then fails with ErrUnavailable.
func New(lex Lexicon) *Engine {
	return &Engine{lex: lex}
}

// Run returns the words matching q, normalized to lowercase, in input order.
// A failure during part-of-speech resolution aborts the whole pass: no
// partial match list is returned.
func (e *Engine) Run(ctx context.Context, words []string, q query.Query) ([]string, error) {
	if len(q.Categories) > 0 && e.lex == nil {
		return nil, fmt.Errorf("%w: no lexical database configured", lexicon.ErrUnavailable)
	}
	var out []string
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if !q.Length.Match(len(w)) {
			continue
		}
		if !q.Positions.Match(w) {
			continue
		}
		if len(q.Categories) > 0 {
			ok, err := e.hasAnySense(ctx, w, q.Categories)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		out = append(out, w)
	}
	return out, nil
}

// hasAnySense ORs the requested categories: one matching sense is enough.
func (e *Engine) hasAnySense(ctx context.Context, word string, cats []query.Category) (bool, error) {
	for _, c := range cats {
		ok, err := e.lex.HasSense(ctx, word, c)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
