// Package terms contains utilities for building and inspecting prolog.Term
// values outside the core engine, retargeted from the teacher's own terms
// package (which builds trealla.Term error balls for a WASM guest) onto
// this engine's own Term/error types.
package terms

import "github.com/nilgiri/prolog"

// TypeError returns a type_error(Want, Got) compound term, in the classic
// Prolog error-ball shape error(type_error(Want, Got), Ctx), suitable for
// a built-in predicate to assertz into a catcher's binding or log as a
// diagnostic alongside the Go-level prolog.TypeError.
func TypeError(want string, got prolog.Term, ctx prolog.Term) prolog.Predicate {
	return prolog.Atom("error").Of(prolog.Atom("type_error").Of(prolog.Atom(want), got), ctx)
}

// DomainError returns a domain_error(Domain, Got) error ball.
func DomainError(domain string, got prolog.Term, ctx prolog.Term) prolog.Predicate {
	return prolog.Atom("error").Of(prolog.Atom("domain_error").Of(prolog.Atom(domain), got), ctx)
}

// ExistenceError returns an existence_error(What, Got) error ball, the
// shape an UndefinedPredicateError can be rendered as for callers that
// want the Prolog-term form rather than the Go error.
func ExistenceError(what string, got prolog.Term, ctx prolog.Term) prolog.Predicate {
	return prolog.Atom("error").Of(prolog.Atom("existence_error").Of(prolog.Atom(what), got), ctx)
}

// ResolveOption searches an options list in the form [foo(V1), bar(V2), ...]
// for a compound whose functor is name, returning its sole argument, or
// fallback if absent.
func ResolveOption(opts prolog.ListLiteral, name string, fallback prolog.Term) prolog.Term {
	for _, o := range opts {
		p, ok := o.(prolog.Predicate)
		if !ok || p.Name != name || len(p.Args) != 1 {
			continue
		}
		return p.Args[0]
	}
	return fallback
}

// IsList reports whether t is a ListLiteral (including the empty list).
func IsList(t prolog.Term) bool {
	_, ok := t.(prolog.ListLiteral)
	return ok
}

// IsAtom reports whether t is a zero-arity Predicate.
func IsAtom(t prolog.Term) bool {
	p, ok := t.(prolog.Predicate)
	return ok && p.Arity() == 0
}
