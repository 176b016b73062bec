package prolog

import (
	"io"
	"os"
)

// Option configures a Runtime at construction time, mirroring the
// teacher's functional-options constructor shape (New(...Option)).
type Option func(*Runtime)

// WithStore overrides the Runtime's clause database, e.g. to plug in an
// x/postgres-backed ClauseStore instead of the default in-memory one.
func WithStore(store ClauseStore) Option {
	return func(rt *Runtime) { rt.db = NewDatabase(store) }
}

// WithDatabase shares an existing Database across multiple Runtimes, the
// way several independent queries can run against one persistent program.
func WithDatabase(db *Database) Option {
	return func(rt *Runtime) { rt.db = db }
}

// WithOutput sets the sink written to by write/1 and nl/0. The default is
// os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(rt *Runtime) { rt.output = w }
}

// WithTrace installs a Tracer that receives one event per CONSIDER/
// SUCCESS/FAIL transition during Search, grounded on runtime.py's
// self.trace flag and _trace/_trace_fn hooks.
func WithTrace(t Tracer) Option {
	return func(rt *Runtime) { rt.tracer = t }
}

// WithModule sets the module name new clauses are stored and cleared
// under. The default module is "user".
func WithModule(module string) Option {
	return func(rt *Runtime) { rt.module = module }
}

// New builds a Runtime with the minimal and supplemented built-in
// predicates/functions already registered, ready to have clauses loaded
// via Assertz or Database.Store and queried via Search/Query.
func New(opts ...Option) *Runtime {
	rt := &Runtime{
		db:       NewDatabase(nil),
		registry: newRegistry(),
		output:   os.Stdout,
		module:   "user",
	}
	for _, opt := range opts {
		opt(rt)
	}
	loadBuiltins(rt.registry)
	loadFunctions(rt.registry)
	return rt
}

// RegisterPredicate installs or overrides a built-in predicate on this
// runtime only (spec.md §5: registries are per-runtime, not global).
func (rt *Runtime) RegisterPredicate(name string, fn BuiltinPredicate) {
	rt.registry.Register(name, fn)
}

// RegisterFunction installs or overrides a built-in function on this
// runtime only.
func (rt *Runtime) RegisterFunction(name string, fn BuiltinFunction) {
	rt.registry.RegisterFunction(name, fn)
}

// Database returns the runtime's underlying clause database, for callers
// that need direct Store/ClearModule/WriteTx access (e.g. bulk program
// loading).
func (rt *Runtime) Database() *Database { return rt.db }

// Consult stores each clause directly in the runtime's database under its
// configured module, bypassing the overlay (used for initial program
// loading, not for assertz issued mid-search).
func (rt *Runtime) Consult(clauses ...Clause) error {
	for _, c := range clauses {
		if err := rt.db.Store(rt.module, c); err != nil {
			return err
		}
	}
	return nil
}
