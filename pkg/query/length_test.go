package query

import (
	"errors"
	"testing"
)

func intPtr(n int) *int { return &n }

func eqIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in   string
		want Length
	}{
		{"", Length{}},
		{"   ", Length{}},
		{"5", Length{Exact: intPtr(5)}},
		{" 5 ", Length{Exact: intPtr(5)}},
		{"4-6", Length{Min: intPtr(4), Max: intPtr(6)}},
		{"-6", Length{Max: intPtr(6)}},
		{"7-", Length{Min: intPtr(7)}},
	}
	for _, tt := range tests {
		got, err := ParseLength(tt.in)
		if err != nil {
			t.Errorf("ParseLength(%q) returned error: %v", tt.in, err)
			continue
		}
		if !eqIntPtr(got.Exact, tt.want.Exact) || !eqIntPtr(got.Min, tt.want.Min) || !eqIntPtr(got.Max, tt.want.Max) {
			t.Errorf("ParseLength(%q) = %+v; want %+v", tt.in, got, tt.want)
		}
		// Exact and the range pair must never both be populated.
		if got.Exact != nil && (got.Min != nil || got.Max != nil) {
			t.Errorf("ParseLength(%q) populated both exact and range: %+v", tt.in, got)
		}
	}
}

func TestParseLength_Invalid(t *testing.T) {
	for _, in := range []string{"-", "abc", "4-6-8", "x-6", "4-y", "4 - 6"} {
		_, err := ParseLength(in)
		if err == nil {
			t.Errorf("ParseLength(%q) expected error, got nil", in)
			continue
		}
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("ParseLength(%q) error %v is not ErrInvalid", in, err)
		}
	}
}

func TestLengthMatch(t *testing.T) {
	tests := []struct {
		name string
		l    Length
		n    int
		want bool
	}{
		{"unconstrained", Length{}, 3, true},
		{"exact hit", Length{Exact: intPtr(7)}, 7, true},
		{"exact miss", Length{Exact: intPtr(7)}, 6, false},
		{"range inside", Length{Min: intPtr(4), Max: intPtr(6)}, 5, true},
		{"range below", Length{Min: intPtr(4), Max: intPtr(6)}, 3, false},
		{"range above", Length{Min: intPtr(4), Max: intPtr(6)}, 7, false},
		{"min only", Length{Min: intPtr(7)}, 9, true},
		{"max only", Length{Max: intPtr(6)}, 6, true},
	}
	for _, tt := range tests {
		if got := tt.l.Match(tt.n); got != tt.want {
			t.Errorf("%s: Match(%d) = %v; want %v", tt.name, tt.n, got, tt.want)
		}
	}
}
