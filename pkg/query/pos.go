package query

import (
	"fmt"
	"strings"
)

// Category is a WordNet synset type tag.
type Category string

const (
	Noun               Category = "n"
	Verb               Category = "v"
	Adjective          Category = "a"
	AdjectiveSatellite Category = "s"
)

// ParseCategories normalizes free-text part-of-speech tokens into category
// tags. "adjective" (and its short forms) expands to both plain and
// satellite adjectives so that adjective-like senses filed under satellite
// synsets still match.
func ParseCategories(tokens []string) ([]Category, error) {
	seen := map[Category]bool{}
	var out []Category
	add := func(c Category) {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	for _, t := range tokens {
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "":
			continue
		case "noun", "n":
			add(Noun)
		case "verb", "v":
			add(Verb)
		case "adjective", "adj", "a":
			add(Adjective)
			add(AdjectiveSatellite)
		default:
			return nil, fmt.Errorf("%w: part of speech must be noun, verb, or adjective (got %q)", ErrInvalid, t)
		}
	}
	return out, nil
}
