package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	exactLengthRE = regexp.MustCompile(`^\d+$`)
	lengthRangeRE = regexp.MustCompile(`^(\d*)-(\d*)$`)
)

// Length constrains word length. Exact and the Min/Max pair are mutually
// exclusive: a parsed constraint populates one or the other, never both.
type Length struct {
	Exact *int
	Min   *int
	Max   *int
}

// ParseLength parses a length query.
//
// Supported:
//   - "5"   => exact 5
//   - "4-6" => min 4, max 6
//   - "-6"  => max 6
//   - "7-"  => min 7
//   - ""    => no constraint
func ParseLength(text string) (Length, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Length{}, nil
	}
	if exactLengthRE.MatchString(text) {
		n, err := strconv.Atoi(text)
		if err != nil {
			return Length{}, fmt.Errorf("%w: length %q out of range", ErrInvalid, text)
		}
		return Length{Exact: &n}, nil
	}
	m := lengthRangeRE.FindStringSubmatch(text)
	if m == nil {
		return Length{}, fmt.Errorf("%w: length must be N, N-M, -M, or N-", ErrInvalid)
	}
	var l Length
	if m[1] != "" {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return Length{}, fmt.Errorf("%w: length %q out of range", ErrInvalid, m[1])
		}
		l.Min = &n
	}
	if m[2] != "" {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return Length{}, fmt.Errorf("%w: length %q out of range", ErrInvalid, m[2])
		}
		l.Max = &n
	}
	if l.Min == nil && l.Max == nil {
		return Length{}, fmt.Errorf("%w: length range needs at least one bound", ErrInvalid)
	}
	return l, nil
}

// Match reports whether a word of n characters satisfies the constraint.
func (l Length) Match(n int) bool {
	if l.Exact != nil && n != *l.Exact {
		return false
	}
	if l.Min != nil && n < *l.Min {
		return false
	}
	if l.Max != nil && n > *l.Max {
		return false
	}
	return true
}
