// Package lexicon provides the lexical database capability: a SQLite-backed
// store of (word, part-of-speech) senses imported from the WordNet data
// files, fetched automatically when missing.
package lexicon

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/seedsieve/seedsieve/pkg/query"

	_ "github.com/mattn/go-sqlite3"
)

// ErrUnavailable marks a missing or unfetchable lexical database. Callers
// distinguish it from query-syntax errors with errors.Is.
var ErrUnavailable = errors.New("lexical database unavailable")

// DefaultURL is the Princeton WordNet 3.1 database tarball.
const DefaultURL = "https://wordnetcode.princeton.edu/wn3.1.dict.tar.gz"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS senses (
	word TEXT NOT NULL,
	pos TEXT NOT NULL,
	PRIMARY KEY (word, pos)
) WITHOUT ROWID;
`

// Options configures a sense store.
type Options struct {
	// URL overrides the WordNet download location (used by tests).
	URL string
	// Offline disables fetching. With an empty store, any lookup fails
	// with ErrUnavailable instead of touching the network.
	Offline bool
}

// DB is a sense store handle. Construct it once at startup and pass it by
// reference; Ensure performs at most one fetch per process.
type DB struct {
	conn    *sql.DB
	url     string
	offline bool
	ready   bool
	fetched bool
}

// Open opens (or creates) the sense store at path and runs the schema.
func Open(path string, opts Options) (*DB, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sense store: %w", err)
	}
	// Single-threaded tool; one connection also keeps :memory: stores
	// from splitting across the pool.
	conn.SetMaxOpenConns(1)
	if err := initSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("init sense store schema: %w", err)
	}
	url := opts.URL
	if url == "" {
		url = DefaultURL
	}
	return &DB{conn: conn, url: url, offline: opts.Offline}, nil
}

func initSchema(conn *sql.DB) error {
	for _, s := range strings.Split(schemaSQL, ";") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, err := conn.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying database handle.
func (d *DB) Close() error {
	return d.conn.Close()
}

// Ensure makes the store ready for lookups. An already-populated store is a
// no-op. An empty store triggers a single fetch-and-import followed by one
// re-check; exhaustion or offline mode yields ErrUnavailable.
func (d *DB) Ensure(ctx context.Context) error {
	if d.ready {
		return nil
	}
	n, err := d.senseCount(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		d.ready = true
		return nil
	}
	if d.offline {
		return fmt.Errorf("%w: sense store is empty and fetching is disabled", ErrUnavailable)
	}
	if d.fetched {
		return fmt.Errorf("%w: fetch already attempted this process", ErrUnavailable)
	}
	d.fetched = true
	if err := d.fetchAndImport(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	n, err = d.senseCount(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: downloaded data contained no senses", ErrUnavailable)
	}
	d.ready = true
	return nil
}

// HasSense reports whether at least one sense of the given category exists
// for the word. The word must already be lowercased.
func (d *DB) HasSense(ctx context.Context, word string, cat query.Category) (bool, error) {
	if err := d.Ensure(ctx); err != nil {
		return false, err
	}
	var exists int
	err := d.conn.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM senses WHERE word = ? AND pos = ?)`,
		word, string(cat)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("sense lookup for %q: %w", word, err)
	}
	return exists == 1, nil
}

func (d *DB) senseCount(ctx context.Context) (int, error) {
	var n int
	if err := d.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM senses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count senses: %w", err)
	}
	return n, nil
}
