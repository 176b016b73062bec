package prolog

import (
	"fmt"
	"time"
)

// loadBuiltins installs the minimal built-in predicate set of spec.md
// §4.6, plus the supplemented predicates from halprolog/runtime.py and
// zamiaprolog/logicdb.py that SPEC_FULL.md §5 carries forward (assertz,
// retract, sub_string, the date/time family). Grounded on the teacher's
// library.go registration table shape.
func loadBuiltins(r *registry) {
	r.Register("=", biUnify)
	r.Register("\\=", biNotUnify)
	r.Register("<", biCompare(func(a, b float64) bool { return a < b }))
	r.Register("=<", biCompare(func(a, b float64) bool { return a <= b }))
	r.Register(">", biCompare(func(a, b float64) bool { return a > b }))
	r.Register(">=", biCompare(func(a, b float64) bool { return a >= b }))
	r.Register("write", biWrite)
	r.Register("nl", biNl)
	r.Register("list_contains", biListContains)
	r.Register("assertz", biAssertz)
	r.Register("retract", biRetract)
	r.Register("sub_string", biSubString)
	r.Register("date_time_stamp", biDateTimeStamp)
	r.Register("stamp_date_time", biStampDateTime)
	r.Register("get_time", biGetTime)
}

func arg(g *Goal) Predicate { return g.current().(Predicate) }

func biUnify(g *Goal, rt *Runtime) bool {
	p := arg(g)
	if len(p.Args) != 2 {
		rt.fail(TypeError{Want: "=/2", Got: p, Context: "="})
		return false
	}
	return Unify(p.Args[0], g.Env, p.Args[1], g.Env, rt)
}

func biNotUnify(g *Goal, rt *Runtime) bool {
	p := arg(g)
	if len(p.Args) != 2 {
		rt.fail(TypeError{Want: "\\=/2", Got: p, Context: "\\="})
		return false
	}
	scratch := g.Env.Clone()
	return !Unify(p.Args[0], scratch, p.Args[1], scratch, rt)
}

func biCompare(cmp func(a, b float64) bool) BuiltinPredicate {
	return func(g *Goal, rt *Runtime) bool {
		p := arg(g)
		if len(p.Args) != 2 {
			rt.fail(TypeError{Want: "comparison/2", Got: p, Context: "comparison"})
			return false
		}
		a, aok := Eval(p.Args[0], g.Env, rt)
		if rt.err != nil {
			return false
		}
		b, bok := Eval(p.Args[1], g.Env, rt)
		if rt.err != nil {
			return false
		}
		if !aok || !bok {
			return false
		}
		an, ok1 := a.(NumberLiteral)
		bn, ok2 := b.(NumberLiteral)
		if !ok1 || !ok2 {
			rt.fail(TypeError{Want: "number", Got: p, Context: "comparison"})
			return false
		}
		return cmp(float64(an), float64(bn))
	}
}

func biWrite(g *Goal, rt *Runtime) bool {
	p := arg(g)
	for _, a := range p.Args {
		v, ok := Eval(a, g.Env, rt)
		if rt.err != nil {
			return false
		}
		if !ok {
			v = a
		}
		rt.Write(v.String())
	}
	return true
}

func biNl(_ *Goal, rt *Runtime) bool {
	rt.Write("\n")
	return true
}

func biListContains(g *Goal, rt *Runtime) bool {
	p := arg(g)
	if len(p.Args) != 2 {
		rt.fail(TypeError{Want: "list_contains/2", Got: p, Context: "list_contains"})
		return false
	}
	list, ok := Eval(p.Args[0], g.Env, rt)
	if rt.err != nil {
		return false
	}
	if !ok {
		return false
	}
	ll, ok := list.(ListLiteral)
	if !ok {
		rt.fail(TypeError{Want: "list", Got: list, Context: "list_contains"})
		return false
	}
	needle, ok := Eval(p.Args[1], g.Env, rt)
	if rt.err != nil {
		return false
	}
	if !ok {
		needle = p.Args[1]
	}
	for _, item := range ll {
		if Equal(item, needle) {
			return true
		}
	}
	return false
}

// biAssertz implements assertz(Clause), staging the new clause into the
// current search's overlay so the assertion is only visible to lookups
// made after it runs. The overlay is shared by every branch of the search,
// so backtracking past the assertz does not undo it; it is dropped when
// the search ends.
func biAssertz(g *Goal, rt *Runtime) bool {
	p := arg(g)
	if len(p.Args) != 1 {
		rt.fail(TypeError{Want: "assertz/1", Got: p, Context: "assertz"})
		return false
	}
	term, ok := Eval(p.Args[0], g.Env, rt)
	if rt.err != nil {
		return false
	}
	if !ok {
		rt.fail(TypeError{Want: "bound term", Got: p.Args[0], Context: "assertz"})
		return false
	}
	head, ok := term.(Predicate)
	if !ok {
		rt.fail(TypeError{Want: "predicate", Got: term, Context: "assertz"})
		return false
	}
	if err := rt.Assertz(Clause{Head: head}); err != nil {
		rt.fail(err)
		return false
	}
	return true
}

// biRetract implements retract(Clause) as a structural-match removal
// staged in the overlay (see DESIGN.md's Open Question decision).
func biRetract(g *Goal, rt *Runtime) bool {
	p := arg(g)
	if len(p.Args) != 1 {
		rt.fail(TypeError{Want: "retract/1", Got: p, Context: "retract"})
		return false
	}
	term, ok := Eval(p.Args[0], g.Env, rt)
	if rt.err != nil {
		return false
	}
	if !ok {
		rt.fail(TypeError{Want: "bound term", Got: p.Args[0], Context: "retract"})
		return false
	}
	head, ok := term.(Predicate)
	if !ok {
		rt.fail(TypeError{Want: "predicate", Got: term, Context: "retract"})
		return false
	}
	if err := rt.Retractall(Clause{Head: head}); err != nil {
		rt.fail(err)
		return false
	}
	return true
}

// biSubString implements sub_string(String, Before, Length, Sub),
// supplemented from halprolog's string-handling built-ins.
func biSubString(g *Goal, rt *Runtime) bool {
	p := arg(g)
	if len(p.Args) != 4 {
		rt.fail(TypeError{Want: "sub_string/4", Got: p, Context: "sub_string"})
		return false
	}
	s, ok := Eval(p.Args[0], g.Env, rt)
	if rt.err != nil {
		return false
	}
	str, ok2 := s.(StringLiteral)
	if !ok || !ok2 {
		rt.fail(TypeError{Want: "string", Got: p.Args[0], Context: "sub_string"})
		return false
	}
	before, ok := Eval(p.Args[1], g.Env, rt)
	if rt.err != nil {
		return false
	}
	length, ok2 := Eval(p.Args[2], g.Env, rt)
	if rt.err != nil {
		return false
	}
	if !ok || !ok2 {
		rt.fail(TypeError{Want: "number", Got: p, Context: "sub_string"})
		return false
	}
	b, ok1 := before.(NumberLiteral)
	l, ok2 := length.(NumberLiteral)
	if !ok1 || !ok2 {
		rt.fail(TypeError{Want: "number", Got: p, Context: "sub_string"})
		return false
	}
	runes := []rune(string(str))
	bi, li := int(b), int(l)
	if bi < 0 || li < 0 || bi+li > len(runes) {
		return false
	}
	sub := StringLiteral(runes[bi : bi+li])
	return Unify(sub, g.Env, p.Args[3], g.Env, rt)
}

const timeLayout = "2006-01-02T15:04:05"

// biDateTimeStamp implements date_time_stamp(DateTime, Stamp), converting
// an ISO-ish timestamp string into a Unix epoch number.
func biDateTimeStamp(g *Goal, rt *Runtime) bool {
	p := arg(g)
	if len(p.Args) != 2 {
		rt.fail(TypeError{Want: "date_time_stamp/2", Got: p, Context: "date_time_stamp"})
		return false
	}
	dt, ok := Eval(p.Args[0], g.Env, rt)
	if rt.err != nil {
		return false
	}
	s, ok2 := dt.(StringLiteral)
	if !ok || !ok2 {
		rt.fail(TypeError{Want: "string", Got: p.Args[0], Context: "date_time_stamp"})
		return false
	}
	t, err := time.Parse(timeLayout, string(s))
	if err != nil {
		rt.fail(fmt.Errorf("prolog: date_time_stamp: %w", err))
		return false
	}
	return Unify(NumberLiteral(t.Unix()), g.Env, p.Args[1], g.Env, rt)
}

// biStampDateTime implements stamp_date_time(Stamp, DateTime), the inverse
// of date_time_stamp/2.
func biStampDateTime(g *Goal, rt *Runtime) bool {
	p := arg(g)
	if len(p.Args) != 2 {
		rt.fail(TypeError{Want: "stamp_date_time/2", Got: p, Context: "stamp_date_time"})
		return false
	}
	stamp, ok := Eval(p.Args[0], g.Env, rt)
	if rt.err != nil {
		return false
	}
	n, ok2 := stamp.(NumberLiteral)
	if !ok || !ok2 {
		rt.fail(TypeError{Want: "number", Got: p.Args[0], Context: "stamp_date_time"})
		return false
	}
	t := time.Unix(int64(n), 0).UTC()
	return Unify(StringLiteral(t.Format(timeLayout)), g.Env, p.Args[1], g.Env, rt)
}

// biGetTime implements get_time(Stamp), binding the current Unix epoch.
func biGetTime(g *Goal, rt *Runtime) bool {
	p := arg(g)
	if len(p.Args) != 1 {
		rt.fail(TypeError{Want: "get_time/1", Got: p, Context: "get_time"})
		return false
	}
	return Unify(NumberLiteral(time.Now().Unix()), g.Env, p.Args[0], g.Env, rt)
}
