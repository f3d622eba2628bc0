// Package store persists an anagram dictionary in SQLite so large word lists
// are indexed once and queried without reloading.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/puzzlekit/anagram"
)

// Index is a SQLite-backed anagram dictionary. Writers are serialized;
// reads go straight to the pool.
type Index struct {
	db  *sql.DB
	mu  sync.Mutex
	log logrus.FieldLogger
}

// Open opens (creating if needed) the index database at path.
func Open(ctx context.Context, path string, log logrus.FieldLogger) (*Index, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// One connection: SQLite has a single writer and ":memory:" databases
	// are per connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	ix := &Index{db: db, log: log.WithField("component", "store")}
	if err := ix.initSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	ix.log.WithField("path", path).Debug("anagram index opened")

	return ix, nil
}

func (ix *Index) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS words (
		word TEXT PRIMARY KEY,
		code TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_words_code ON words(code);
	`

	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := ix.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// Close releases the database.
func (ix *Index) Close() error {
	return ix.db.Close()
}

// Add stores a single word. Adding a word twice is a no-op.
func (ix *Index) Add(ctx context.Context, word string) error {
	word = anagram.Canonical(word)
	if word == "" {
		return nil
	}
	ix.mu.Lock()
	defer ix.mu.Unlock()

	_, err := ix.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO words (word, code) VALUES (?, ?)",
		word, anagram.LettersToPrimes(word).String())

	return err
}

// Import adds every word of a newline-delimited list in one transaction and
// returns how many were new.
func (ix *Index) Import(ctx context.Context, r io.Reader) (int, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	tx, err := ix.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, "INSERT OR IGNORE INTO words (word, code) VALUES (?, ?)")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	added := 0
	scanned, err := anagram.ScanWords(r, func(word string) error {
		word = anagram.Canonical(word)
		res, err := stmt.ExecContext(ctx, word, anagram.LettersToPrimes(word).String())
		if err != nil {
			return fmt.Errorf("insert %q: %w", word, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			added++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}

	ix.log.WithFields(logrus.Fields{"scanned": scanned, "added": added}).Info("word list imported")

	return added, nil
}

// Lookup returns the stored words sharing k's code, sorted.
// Returns anagram.ErrNotFound, annotated with the code, when there are none.
func (ix *Index) Lookup(ctx context.Context, k anagram.Key) ([]string, error) {
	code := k.Number().String()
	rows, err := ix.db.QueryContext(ctx, "SELECT word FROM words WHERE code = ? ORDER BY word", code)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w %s", anagram.ErrNotFound, code)
	}

	return words, nil
}

// Count returns the number of stored words.
func (ix *Index) Count(ctx context.Context) (int, error) {
	var n int
	err := ix.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM words").Scan(&n)
	return n, err
}
