package lexicon

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"
)

// importDataFile parses a WordNet data.* file and records one (word, pos)
// row per lemma. Data lines look like:
//
//	synset_offset lex_filenum ss_type w_cnt word lex_id [word lex_id...] ...
//
// where ss_type is one of n/v/a/s/r and w_cnt is a two-digit hex count.
// Lines of the license header start with two spaces and are skipped.
func (d *DB) importDataFile(ctx context.Context, r io.Reader) (int, error) {
	tx, err := d.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO senses (word, pos) VALUES (?, ?)`)
	if err != nil {
		tx.Rollback()
		return 0, err
	}
	defer stmt.Close()

	count := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "  ") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 5 {
			continue
		}
		ssType := fields[2]
		switch ssType {
		case "n", "v", "a", "s":
		default:
			continue
		}
		wordCount, err := strconv.ParseInt(fields[3], 16, 32)
		if err != nil {
			continue
		}
		// Lemmas alternate with lex_id fields.
		for i := 0; i < int(wordCount); i++ {
			fi := 4 + i*2
			if fi >= len(fields) {
				break
			}
			lemma := normalizeLemma(fields[fi])
			if lemma == "" {
				continue
			}
			if _, err := stmt.Exec(lemma, ssType); err != nil {
				tx.Rollback()
				return 0, err
			}
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		tx.Rollback()
		return 0, err
	}
	return count, tx.Commit()
}

// normalizeLemma lowercases a lemma and strips the adjective syntax marker
// (e.g. "alive(p)"). Collocations joined with underscores are skipped; the
// wordlist only ever holds single words.
func normalizeLemma(s string) string {
	if i := strings.IndexByte(s, '('); i >= 0 {
		s = s[:i]
	}
	s = strings.ToLower(s)
	if s == "" || strings.ContainsRune(s, '_') {
		return ""
	}
	return s
}
