package prolog

// Answer is one solution environment returned by a Query, wrapping the raw
// Env with lookup helpers keyed by the query's variable names as they
// appear in the Env, mirroring the teacher's Answer type.
type Answer struct {
	Env Env
}

// Vars returns the set of variable names bound in this answer.
func (a Answer) Vars() []string {
	names := make([]string, 0, len(a.Env))
	for name := range a.Env {
		names = append(names, name)
	}
	return names
}

// Binding returns the term bound to name in this answer, if any.
func (a Answer) Binding(name string) (Term, bool) {
	return a.Env.Lookup(name)
}
