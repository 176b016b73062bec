package prolog

import "sync"

// Database wraps a ClauseStore with the reader/writer-lock discipline of
// the teacher's db.go/pool.go: many concurrent searches may read the
// clause base at once, but storing clauses, committing an overlay, or
// clearing modules takes the database exclusively. Per-search tentative state lives
// in an Overlay (overlay.go), not here.
type Database struct {
	mu    sync.RWMutex
	store ClauseStore
	docs  map[string]string
}

// NewDatabase wraps store in a Database. A nil store defaults to a fresh
// MemStore.
func NewDatabase(store ClauseStore) *Database {
	if store == nil {
		store = NewMemStore()
	}
	return &Database{store: store, docs: map[string]string{}}
}

// Store persists c under module directly, bypassing any overlay. Used for
// program loading, not for assertz issued mid-search (which stages into an
// Overlay instead).
func (d *Database) Store(module string, c Clause) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.store.Store(module, c)
}

// StoreDoc records human-readable documentation for a predicate indicator,
// mirroring zamiaprolog/logicdb.py's store_doc side table.
func (d *Database) StoreDoc(indicator, doc string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.docs[indicator] = doc
}

// Doc returns the documentation registered for indicator, if any.
func (d *Database) Doc(indicator string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	doc, ok := d.docs[indicator]
	return doc, ok
}

// Lookup returns the clauses stored under name, with overlay's staged
// assertions/retractions applied on top. overlay may be nil.
func (d *Database) Lookup(name string, overlay *Overlay) ([]Clause, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	base, err := d.store.Lookup(name)
	if err != nil {
		return nil, err
	}
	return overlay.Filter(name, base), nil
}

// StoreOverlay commits overlay's staged assertions to persistent storage
// under module. Staged retractions are never persisted — they are purely a
// per-search visibility filter (zamiaprolog/logicdb.py's store_overlayZ
// does the same: it writes only the asserted clauses).
func (d *Database) StoreOverlay(module string, overlay *Overlay) error {
	if overlay == nil {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, clauses := range overlay.assertz {
		for _, c := range clauses {
			if err := d.store.Store(module, c); err != nil {
				return err
			}
		}
	}
	return nil
}

// ClearModule removes every persisted clause belonging to module.
func (d *Database) ClearModule(module string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.store.ClearModule(module)
}

// ClearAll removes every persisted clause in every module, mirroring
// zamiaprolog/logicdb.py's clear_all_modules.
func (d *Database) ClearAll() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.store.ClearAll()
}

// Commit flushes the underlying store, used after a batch of Store calls
// against a database-backed ClauseStore (e.g. x/postgres.Store).
func (d *Database) Commit() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.store.Commit()
}

// ReadTx runs fn with a consistent read-only snapshot view of the
// database: concurrent writers are blocked out for fn's duration but fn
// itself must not mutate the database. Grounded on the teacher's
// pool.go ReadTx.
func (d *Database) ReadTx(fn func() error) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return fn()
}

// WriteTx runs fn with the database locked exclusively, grounded on the
// teacher's pool.go WriteTx. Use for bulk program loading or ClearAll/
// ClearModule sequences that must appear atomic to readers.
func (d *Database) WriteTx(fn func() error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return fn()
}
