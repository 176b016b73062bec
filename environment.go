package prolog

import "golang.org/x/exp/maps"

// Env is a mapping from variable name to the term currently bound to it.
// Lookups do not chase transitively themselves; chasing happens in Eval,
// which is the only place that needs to distinguish "unbound" from "bound
// to another variable".
type Env map[string]Term

// NewEnv returns an empty environment.
func NewEnv() Env { return Env{} }

// Clone deep-copies this environment so that a failing branch leaves no
// trace in sibling branches (spec.md §3 "Environments"). Cloning is
// O(bindings): maps.Clone does a single-level copy, which is sufficient
// because Term values are themselves immutable once constructed (see
// DeepCopy in term.go) — nothing reachable from a cloned Env can be
// mutated in place by either copy.
func (e Env) Clone() Env {
	if e == nil {
		return Env{}
	}
	return Env(maps.Clone(map[string]Term(e)))
}

// Lookup returns the term directly bound to name, if any.
func (e Env) Lookup(name string) (Term, bool) {
	t, ok := e[name]
	return t, ok
}

// Bind records a binding in place. Callers that need backtracking safety
// must Clone before calling Bind.
func (e Env) Bind(name string, t Term) {
	e[name] = t
}

// Merge copies every binding of other into e, overwriting on conflict.
func (e Env) Merge(other Env) {
	maps.Copy(map[string]Term(e), map[string]Term(other))
}
