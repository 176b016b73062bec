// Package postgres provides an optional PostgreSQL-backed prolog.ClauseStore,
// the durable keyed store spec.md §6 leaves as an implementation choice.
// It is grounded on the teacher's x/postgres extension module — same
// lib/pq-backed database/sql connection style — retargeted from hosting
// WASM-guest predicates to persisting clauses directly.
package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/nilgiri/prolog"
)

// Store is a prolog.ClauseStore backed by a "clauses" table:
//
//	CREATE TABLE clauses (
//	    id        BIGSERIAL PRIMARY KEY,
//	    module    TEXT NOT NULL,
//	    head_name TEXT NOT NULL,
//	    arity     INT NOT NULL,
//	    payload   JSONB NOT NULL,
//	    inserted  BIGSERIAL
//	);
//
// Clauses are read back in insertion order per head_name, matching
// MemStore's ordering contract.
type Store struct {
	db *sql.DB
}

// Open connects to a PostgreSQL database using connStr (a standard
// lib/pq connection string or URL) and returns a Store ready to use as a
// prolog.ClauseStore.
func Open(connStr string) (*Store, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}
	return &Store{db: db}, nil
}

// New wraps an already-open *sql.DB, e.g. one configured with a connection
// pool shared by other parts of an application.
func New(db *sql.DB) *Store { return &Store{db: db} }

// Close releases the underlying connection pool.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Store(module string, c prolog.Clause) error {
	payload, err := encodeClause(c)
	if err != nil {
		return fmt.Errorf("postgres: encode clause: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO clauses (module, head_name, arity, payload) VALUES ($1, $2, $3, $4)`,
		module, c.Head.Name, c.Head.Arity(), payload,
	)
	if err != nil {
		return fmt.Errorf("postgres: insert clause: %w", err)
	}
	return nil
}

func (s *Store) Lookup(name string) ([]prolog.Clause, error) {
	rows, err := s.db.Query(
		`SELECT payload FROM clauses WHERE head_name = $1 ORDER BY id ASC`, name,
	)
	if err != nil {
		return nil, fmt.Errorf("postgres: lookup %s: %w", name, err)
	}
	defer rows.Close()

	var out []prolog.Clause
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("postgres: scan clause: %w", err)
		}
		c, err := decodeClause(payload)
		if err != nil {
			return nil, fmt.Errorf("postgres: decode clause: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) ClearModule(module string) error {
	_, err := s.db.Exec(`DELETE FROM clauses WHERE module = $1`, module)
	if err != nil {
		return fmt.Errorf("postgres: clear module %s: %w", module, err)
	}
	return nil
}

func (s *Store) ClearAll() error {
	_, err := s.db.Exec(`DELETE FROM clauses`)
	if err != nil {
		return fmt.Errorf("postgres: clear all: %w", err)
	}
	return nil
}

// Commit is a no-op here: each Store call already runs in its own
// auto-committed statement. It exists to satisfy prolog.ClauseStore for
// callers that batch writes inside an explicit *sql.Tx of their own.
func (s *Store) Commit() error { return nil }
