package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var positionRE = regexp.MustCompile(`^(\d+)=([a-zA-Z])$`)

// Positions maps a 1-based character index to a required lowercase letter.
type Positions map[int]byte

// ParsePositions parses a fixed-position query like "1=a,3=e,5=o".
// Empty segments (trailing commas, doubled commas) are skipped. A duplicate
// index overwrites the earlier letter. Any malformed segment aborts the
// whole parse.
func ParsePositions(text string) (Positions, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Positions{}, nil
	}
	out := Positions{}
	for _, part := range strings.Split(text, ",") {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}
		m := positionRE.FindStringSubmatch(p)
		if m == nil {
			return nil, fmt.Errorf("%w: positions must look like 1=a,3=e (got %q)", ErrInvalid, p)
		}
		idx, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("%w: position index %q out of range", ErrInvalid, m[1])
		}
		out[idx] = strings.ToLower(m[2])[0]
	}
	return out, nil
}

// Match reports whether every fixed position falls inside the word and holds
// the required letter. Indices are 1-based; index 0 or an index past the end
// of the word never matches. The word must already be lowercased.
func (p Positions) Match(word string) bool {
	for idx, ch := range p {
		if idx <= 0 || idx > len(word) {
			return false
		}
		if word[idx-1] != ch {
			return false
		}
	}
	return true
}
