package prolog

import "sync"

// ClauseStore is the persistent backing for a Database's clauses, grounded
// on the teacher's db.go storage abstraction and zamiaprolog/logicdb.py's
// LogicDB. Implementations need not be safe for concurrent use on their
// own; Database supplies the locking (see db.go).
type ClauseStore interface {
	// Store appends c to module's clause list for c.Head.Name, in
	// insertion order.
	Store(module string, c Clause) error
	// Lookup returns every clause stored under name, across all modules,
	// in insertion order.
	Lookup(name string) ([]Clause, error)
	// ClearModule removes every clause belonging to module.
	ClearModule(module string) error
	// ClearAll removes every clause in every module.
	ClearAll() error
	// Commit flushes any buffered writes to durable storage. MemStore and
	// x/postgres.Store write each clause immediately and treat this as a
	// no-op.
	Commit() error
}

type storedClause struct {
	module string
	clause Clause
}

// MemStore is an in-memory ClauseStore keeping clauses in insertion order
// per predicate name, the way zamiaprolog's LogicDB keeps its dict of
// lists. It is the default store behind Database.
type MemStore struct {
	mu      sync.Mutex
	clauses map[string][]storedClause
}

// NewMemStore returns an empty in-memory clause store.
func NewMemStore() *MemStore {
	return &MemStore{clauses: map[string][]storedClause{}}
}

func (s *MemStore) Store(module string, c Clause) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clauses[c.Head.Name] = append(s.clauses[c.Head.Name], storedClause{module: module, clause: c})
	return nil
}

func (s *MemStore) Lookup(name string) ([]Clause, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.clauses[name]
	out := make([]Clause, len(entries))
	for i, e := range entries {
		out[i] = e.clause
	}
	return out, nil
}

func (s *MemStore) ClearModule(module string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, entries := range s.clauses {
		kept := entries[:0:0]
		for _, e := range entries {
			if e.module != module {
				kept = append(kept, e)
			}
		}
		s.clauses[name] = kept
	}
	return nil
}

func (s *MemStore) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clauses = map[string][]storedClause{}
	return nil
}

func (s *MemStore) Commit() error { return nil }
