package lexicon

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/seedsieve/seedsieve/pkg/query"
)

// A fabricated slice of WordNet data files: license header lines start with
// two spaces, data lines carry ss_type and a hex word count.
const testDataNoun = `  1 This software and database is being provided to you, the LICENSEE.
  2 Lines like these form the license header and must be skipped.
00001740 03 n 01 entity 0 003 ~ 00001930 n 0000 ~ 00002137 n 0000 ~ 04431553 n 0000 | that which is perceived
00021007 03 n 02 object 0 physical_object 0 051 @ 00002684 n 0000 | a tangible and visible entity
`

const testDataVerb = `  1 license header
00001740 29 v 04 breathe 0 take_a_breath 0 respire 0 suspire 3 021 * 00005041 v 0000 | draw air
`

const testDataAdj = `  1 license header
00001740 00 a 01 able 0 005 = 05207437 n 0000 ^ 00002098 a 0000 | having the necessary means
00002098 00 s 02 unable 0 incapable(p) 0 002 & 00001740 a 0000 | lacking ability
`

func openTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := Open(":memory:", Options{Offline: true})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

func importAll(t *testing.T, d *DB) {
	t.Helper()
	ctx := context.Background()
	for _, data := range []string{testDataNoun, testDataVerb, testDataAdj} {
		if _, err := d.importDataFile(ctx, strings.NewReader(data)); err != nil {
			t.Fatalf("import: %v", err)
		}
	}
}

func TestImportDataFile(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	count, err := d.importDataFile(ctx, strings.NewReader(testDataNoun))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	// "entity" and "object"; "physical_object" is a collocation and skipped.
	if count != 2 {
		t.Errorf("expected 2 senses imported, got %d", count)
	}
}

func TestHasSense(t *testing.T) {
	d := openTestDB(t)
	importAll(t, d)

	tests := []struct {
		word string
		cat  query.Category
		want bool
	}{
		{"entity", query.Noun, true},
		{"entity", query.Verb, false},
		{"breathe", query.Verb, true},
		{"respire", query.Verb, true},
		{"able", query.Adjective, true},
		{"able", query.AdjectiveSatellite, false},
		// Satellite synsets keep their own tag; "incapable(p)" loses its marker.
		{"unable", query.AdjectiveSatellite, true},
		{"unable", query.Adjective, false},
		{"incapable", query.AdjectiveSatellite, true},
		{"missing", query.Noun, false},
	}
	ctx := context.Background()
	for _, tt := range tests {
		got, err := d.HasSense(ctx, tt.word, tt.cat)
		if err != nil {
			t.Errorf("HasSense(%q, %q) returned error: %v", tt.word, tt.cat, err)
			continue
		}
		if got != tt.want {
			t.Errorf("HasSense(%q, %q) = %v; want %v", tt.word, tt.cat, got, tt.want)
		}
	}
}

func TestEnsure_OfflineEmptyStore(t *testing.T) {
	d := openTestDB(t)
	err := d.Ensure(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestEnsure_OfflinePopulatedStore(t *testing.T) {
	d := openTestDB(t)
	importAll(t, d)
	if err := d.Ensure(context.Background()); err != nil {
		t.Fatalf("populated store should not need a fetch: %v", err)
	}
}

func TestNormalizeLemma(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"entity", "entity"},
		{"Entity", "entity"},
		{"alive(p)", "alive"},
		{"a_priori(ip)", ""},
		{"physical_object", ""},
		{"", ""},
		{"(p)", ""},
	}
	for _, tt := range tests {
		if got := normalizeLemma(tt.in); got != tt.out {
			t.Errorf("normalizeLemma(%q) = %q; want %q", tt.in, got, tt.out)
		}
	}
}
