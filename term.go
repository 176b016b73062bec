package prolog

import (
	"fmt"
	"strconv"
	"strings"
)

// Term is a logic term: a Variable, a NumberLiteral, a StringLiteral, a
// ListLiteral, or a Predicate (which is an atom when it has no arguments).
//
// Unlike the teacher package's Term (a closed set of Go types accepted as
// `any`), this is a proper tagged interface: every concrete type below
// implements isTerm, so a non-Term value can never accidentally satisfy the
// contract.
type Term interface {
	isTerm()
	String() string
}

// Variable is a named logical variable. The engine only cares about the
// tag; the naming convention (leading uppercase or underscore) is a
// parser-level concern.
type Variable struct {
	Name string
}

func (Variable) isTerm()         {}
func (v Variable) String() string { return v.Name }

// NumberLiteral is a double-precision numeric literal.
type NumberLiteral float64

func (NumberLiteral) isTerm() {}
func (n NumberLiteral) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// StringLiteral is an immutable text literal.
type StringLiteral string

func (StringLiteral) isTerm()           {}
func (s StringLiteral) String() string { return string(s) }

// ListLiteral is an ordered sequence of terms. An empty ListLiteral is nil
// (the empty list).
type ListLiteral []Term

func (ListLiteral) isTerm() {}
func (l ListLiteral) String() string {
	parts := make([]string, len(l))
	for i, t := range l {
		parts[i] = t.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Predicate is a compound term, or an atom when Args is empty. Name is an
// interned symbol; arity (len(Args)) is part of its identity alongside Name.
type Predicate struct {
	Name string
	Args []Term
}

func (Predicate) isTerm() {}

func (p Predicate) String() string {
	if len(p.Args) == 0 {
		return p.Name
	}
	parts := make([]string, len(p.Args))
	for i, a := range p.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", p.Name, strings.Join(parts, ", "))
}

// Arity returns the number of arguments of this predicate.
func (p Predicate) Arity() int { return len(p.Args) }

// Indicator returns the "name/arity" procedure indicator of this predicate.
func (p Predicate) Indicator() string {
	return fmt.Sprintf("%s/%d", p.Name, len(p.Args))
}

// Atom builds a zero-arity Predicate, the logic-term equivalent of an atom.
func Atom(name string) Predicate { return Predicate{Name: name} }

// Of builds a compound term with this atom as the principal functor.
func (p Predicate) Of(args ...Term) Predicate {
	return Predicate{Name: p.Name, Args: args}
}

// True and False are the two reserved boolean atoms.
var (
	True  = Atom("true")
	False = Atom("false")
)

// Equal reports whether two terms are structurally identical: same variant,
// and all leaf contents match recursively. For Predicate, Name, arity, and
// pairwise Args must match.
func Equal(a, b Term) bool {
	switch x := a.(type) {
	case Variable:
		y, ok := b.(Variable)
		return ok && x.Name == y.Name
	case NumberLiteral:
		y, ok := b.(NumberLiteral)
		return ok && x == y
	case StringLiteral:
		y, ok := b.(StringLiteral)
		return ok && x == y
	case ListLiteral:
		y, ok := b.(ListLiteral)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case Predicate:
		y, ok := b.(Predicate)
		if !ok || x.Name != y.Name || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !Equal(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// DeepCopy produces a term tree sharing no mutable state with the original.
// NumberLiteral, StringLiteral, and Variable are Go value types already
// immutable under copy; ListLiteral and Predicate hold slices and are
// recursively copied.
func DeepCopy(t Term) Term {
	switch x := t.(type) {
	case ListLiteral:
		out := make(ListLiteral, len(x))
		for i, e := range x {
			out[i] = DeepCopy(e)
		}
		return out
	case Predicate:
		if len(x.Args) == 0 {
			return x
		}
		out := make([]Term, len(x.Args))
		for i, a := range x.Args {
			out[i] = DeepCopy(a)
		}
		return Predicate{Name: x.Name, Args: out}
	default:
		// Variable, NumberLiteral, StringLiteral: immutable value types.
		return t
	}
}

// VarGen generates fresh, collision-free variable names, for callers that
// need to rename a stored clause's variables apart (e.g. a module loader
// reusing the same clause template across independent invocations). The
// core resolution engine does not need this itself: every child goal gets
// its own fresh Env, so identically-named variables in independent frames
// never alias.
type VarGen struct {
	prefix string
	n      int
}

// NewVarGen returns a generator that produces names like "_G1", "_G2", ...
// prefixed with prefix (commonly a clause or module identifier).
func NewVarGen(prefix string) *VarGen {
	return &VarGen{prefix: prefix}
}

func (g *VarGen) next() string {
	g.n++
	return fmt.Sprintf("_%s%d", g.prefix, g.n)
}

// Rename returns a deep copy of t with every distinct Variable renamed to a
// fresh name from g, consistently (occurrences of the same source variable
// map to the same fresh variable).
func Rename(t Term, g *VarGen) Term {
	seen := make(map[string]string)
	var walk func(Term) Term
	walk = func(t Term) Term {
		switch x := t.(type) {
		case Variable:
			fresh, ok := seen[x.Name]
			if !ok {
				fresh = g.next()
				seen[x.Name] = fresh
			}
			return Variable{Name: fresh}
		case ListLiteral:
			out := make(ListLiteral, len(x))
			for i, e := range x {
				out[i] = walk(e)
			}
			return out
		case Predicate:
			if len(x.Args) == 0 {
				return x
			}
			out := make([]Term, len(x.Args))
			for i, a := range x.Args {
				out[i] = walk(a)
			}
			return Predicate{Name: x.Name, Args: out}
		default:
			return t
		}
	}
	return walk(t)
}
