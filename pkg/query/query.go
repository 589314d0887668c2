// Package query parses the three filter query fragments (length, fixed
// positions, part of speech) into typed constraints.
package query

import (
	"errors"
	"strings"
)

// ErrInvalid marks a query-syntax error. Callers distinguish it from
// runtime failures with errors.Is.
var ErrInvalid = errors.New("invalid query")

// Query is the conjunction of all three constraints. A zero-value axis means
// unconstrained on that axis.
type Query struct {
	Length     Length
	Positions  Positions
	Categories []Category
}

// Parse builds a Query from the three raw query fragments. The POS fragment
// is a comma-separated list; blank fragments leave that axis unconstrained.
func Parse(lengthText, positionsText, posText string) (Query, error) {
	length, err := ParseLength(lengthText)
	if err != nil {
		return Query{}, err
	}
	positions, err := ParsePositions(positionsText)
	if err != nil {
		return Query{}, err
	}
	var tokens []string
	for _, t := range strings.Split(posText, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tokens = append(tokens, t)
		}
	}
	cats, err := ParseCategories(tokens)
	if err != nil {
		return Query{}, err
	}
	return Query{Length: length, Positions: positions, Categories: cats}, nil
}
