package prolog

// BuiltinPredicate is a predicate implemented in Go rather than looked up
// in the clause database. It receives the goal frame currently being
// resolved and the runtime it is running under, and reports success or
// failure the same way unification would (spec.md §4.6). It may bind
// variables into g.Env and may call rt.fail to abort the search with an
// error.
type BuiltinPredicate func(g *Goal, rt *Runtime) bool

// BuiltinFunction is an arithmetic/string function usable inside an is/2
// expression or anywhere else a term is evaluated (spec.md §4.7). It
// returns the reduced term and whether reduction succeeded; a nil term
// with ok==true is never valid, matching Eval's contract.
type BuiltinFunction func(t Predicate, env Env, rt *Runtime) (Term, bool)

// registry holds one Runtime's built-in predicates and functions. Each
// Runtime owns its own registry (spec.md §5 "extension registries are
// per-runtime, not process-global") so that test runtimes can register
// conflicting or scratch built-ins without interfering with each other.
type registry struct {
	predicates map[string]BuiltinPredicate
	functions  map[string]BuiltinFunction
}

func newRegistry() *registry {
	return &registry{
		predicates: map[string]BuiltinPredicate{},
		functions:  map[string]BuiltinFunction{},
	}
}

// Register installs a built-in predicate under name, overwriting any
// previous registration.
func (r *registry) Register(name string, fn BuiltinPredicate) {
	r.predicates[name] = fn
}

// RegisterFunction installs a built-in function under name, overwriting
// any previous registration.
func (r *registry) RegisterFunction(name string, fn BuiltinFunction) {
	r.functions[name] = fn
}
