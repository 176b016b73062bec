package prolog

import (
	"fmt"
	"io"
)

// Tracer receives one line per resolution event (spec.md §5 "trace
// hooks"), grounded on runtime.py's self._trace/self._trace_fn. A nil
// Tracer disables tracing entirely.
type Tracer interface {
	Trace(event string, depth int, detail string)
}

// TracerFunc adapts a function to the Tracer interface.
type TracerFunc func(event string, depth int, detail string)

func (f TracerFunc) Trace(event string, depth int, detail string) { f(event, depth, detail) }

// Runtime is one resolution engine: a clause database, its built-in
// predicate/function registries, an output sink for write/nl, and an
// optional tracer. Every Search call runs against a fresh Overlay, so
// distinct Search calls (and distinct Runtimes) never see each other's
// tentative assertz/retractall state.
type Runtime struct {
	db       *Database
	registry *registry
	output   io.Writer
	tracer   Tracer
	module   string

	// overlay is the tentative clause layer for the Search currently in
	// flight. It is nil between searches.
	overlay *Overlay
	// err records the first error raised during the Search currently in
	// flight (spec.md §7: "errors abort the current search").
	err error
}

// fail records the first error seen during a search; later calls are
// no-ops so the earliest cause wins.
func (rt *Runtime) fail(err error) {
	if rt.err == nil {
		rt.err = err
	}
}

func (rt *Runtime) trace(event string, depth int, detail string) {
	if rt.tracer != nil {
		rt.tracer.Trace(event, depth, detail)
	}
}

// Assertz stages c into the current search's overlay. Outside of a Search
// (overlay == nil) it is stored directly, which is how initial program
// loading works.
func (rt *Runtime) Assertz(c Clause) error {
	if rt.overlay != nil {
		rt.overlay.Assertz(c)
		return nil
	}
	return rt.db.Store(rt.module, c)
}

// Retractall stages, in the current search's overlay, the hiding of every
// stored clause whose head matches pattern's head (see Overlay.Retractall).
// Outside of a Search it is an error:
// there is no persistent delete, only overlay-scoped hiding (DESIGN.md).
func (rt *Runtime) Retractall(pattern Clause) error {
	if rt.overlay == nil {
		return OverlayError{Message: "retractall used outside of a search"}
	}
	rt.overlay.Retractall(pattern)
	return nil
}

// Write writes to the runtime's output sink, used by the write/1 built-in.
func (rt *Runtime) Write(s string) {
	if rt.output != nil {
		fmt.Fprint(rt.output, s)
	}
}

// CommitOverlay persists the given overlay's staged assertions under the
// runtime's module. It is not called by Search, and Search does not expose
// its own overlay.
func (rt *Runtime) CommitOverlay(ov *Overlay) error {
	return rt.db.StoreOverlay(rt.module, ov)
}

// Search resolves query (with the given initial bindings) against the
// runtime's database, returning one Env per solution found, in the order
// they were discovered (spec.md §4.5). Any clauses asserted or retracted
// during the search are visible only to this search's own lookups, via a
// fresh Overlay that is discarded when Search returns; Search never
// persists them.
func (rt *Runtime) Search(query Clause, env Env) ([]Env, error) {
	rt.err = nil
	rt.overlay = NewOverlay()
	defer func() { rt.overlay = nil }()

	terms, err := normalizeBody(query.Body)
	if err != nil {
		return nil, err
	}

	var solutions []Env
	var queue worklist
	queue.pushFront(newGoal(query.Head, terms, env.Clone(), nil))

	for {
		g, ok := queue.pop()
		if !ok {
			break
		}

		if g.done() {
			if g.Parent == nil {
				solutions = append(solutions, g.Env.Clone())
				rt.trace("SUCCESS", g.depth(), g.Head.Indicator())
				continue
			}
			parent := g.Parent.clone()
			Unify(g.Head, g.Env, parent.current(), parent.Env, rt)
			if rt.err != nil {
				return nil, rt.err
			}
			parent.Inx++
			queue = append(queue, parent)
			continue
		}

		sub := g.current()
		pred, ok := sub.(Predicate)
		if !ok {
			rt.fail(TypeError{Want: "predicate", Got: sub, Context: "goal"})
			return nil, rt.err
		}

		switch pred.Name {
		case "cut":
			queue.clear()
			g.Inx++
			queue = append(queue, g)
			continue
		case "fail":
			continue
		case "is":
			if len(pred.Args) != 2 {
				rt.fail(TypeError{Want: "is/2", Got: pred, Context: "is"})
				return nil, rt.err
			}
			lhs, lhsBound := Eval(pred.Args[0], g.Env, rt)
			if rt.err != nil {
				return nil, rt.err
			}
			rhs, rhsBound := Eval(pred.Args[1], g.Env, rt)
			if rt.err != nil {
				return nil, rt.err
			}
			if !rhsBound {
				continue
			}
			if !lhsBound {
				v, isVar := pred.Args[0].(Variable)
				if !isVar {
					rt.fail(TypeError{Want: "variable", Got: pred.Args[0], Context: "is"})
					return nil, rt.err
				}
				g.Env.Bind(v.Name, rhs)
			} else if !Equal(lhs, rhs) {
				continue
			}
			g.Inx++
			queue = append(queue, g)
			continue
		}

		if bi, ok := rt.registry.predicates[pred.Name]; ok {
			rt.trace("CONSIDER", g.depth(), pred.Indicator())
			if bi(g, rt) {
				if rt.err != nil {
					return nil, rt.err
				}
				g.Inx++
				queue = append(queue, g)
			} else {
				rt.trace("FAIL", g.depth(), pred.Indicator())
			}
			continue
		}

		clauses, err := rt.db.Lookup(pred.Name, rt.overlay)
		if err != nil {
			rt.fail(err)
			return nil, rt.err
		}
		if len(clauses) == 0 {
			rt.fail(UndefinedPredicateError{Name: pred.Name, Arity: pred.Arity()})
			return nil, rt.err
		}

		var children []*Goal
		for _, clause := range clauses {
			if clause.Head.Arity() != pred.Arity() {
				continue
			}
			arms, err := expandClauseBody(clause.Body)
			if err != nil {
				rt.fail(err)
				return nil, rt.err
			}
			for _, arm := range arms {
				child := newGoal(clause.Head, arm, NewEnv(), g)
				rt.trace("CONSIDER", g.depth(), clause.Head.Indicator())
				if Unify(pred, g.Env, clause.Head, child.Env, rt) {
					children = append(children, child)
				} else {
					rt.trace("FAIL", g.depth(), clause.Head.Indicator())
				}
			}
		}
		// Push in reverse so the first candidate clause is popped first.
		for i := len(children) - 1; i >= 0; i-- {
			queue = append(queue, children[i])
		}
	}

	return solutions, nil
}
