package prolog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnifySymmetryInSuccess(t *testing.T) {
	rt := New()
	a := Atom("foo").Of(Variable{Name: "X"}, NumberLiteral(2))
	b := Atom("foo").Of(NumberLiteral(1), Variable{Name: "Y"})

	okAB := Unify(a, NewEnv(), b, NewEnv(), rt)
	okBA := Unify(b, NewEnv(), a, NewEnv(), rt)

	assert.True(t, okAB)
	assert.True(t, okBA)
}

func TestUnifyBindsFreeVariable(t *testing.T) {
	rt := New()
	destEnv := NewEnv()

	ok := Unify(NumberLiteral(5), NewEnv(), Variable{Name: "X"}, destEnv, rt)
	assert.True(t, ok)

	v, _ := destEnv.Lookup("X")
	assert.Equal(t, NumberLiteral(5), v)
}

func TestUnifyArityMismatchFails(t *testing.T) {
	rt := New()
	a := Atom("foo").Of(NumberLiteral(1))
	b := Atom("foo").Of(NumberLiteral(1), NumberLiteral(2))
	assert.False(t, Unify(a, NewEnv(), b, NewEnv(), rt))
}

func TestUnifyPartialFailureDoesNotPolluteDestEnv(t *testing.T) {
	rt := New()
	a := Atom("foo").Of(NumberLiteral(1), NumberLiteral(2))
	b := Atom("foo").Of(Variable{Name: "X"}, NumberLiteral(3))
	destEnv := NewEnv()

	ok := Unify(a, NewEnv(), b, destEnv, rt)
	assert.False(t, ok)
	_, bound := destEnv.Lookup("X")
	assert.False(t, bound, "a failed compound unification must not leak partial bindings")
}

func TestUnifyListLiterals(t *testing.T) {
	rt := New()
	a := ListLiteral{NumberLiteral(1), NumberLiteral(2)}
	b := ListLiteral{NumberLiteral(1), NumberLiteral(2)}
	assert.True(t, Unify(a, NewEnv(), b, NewEnv(), rt))

	c := ListLiteral{NumberLiteral(1), NumberLiteral(3)}
	assert.False(t, Unify(a, NewEnv(), c, NewEnv(), rt))
}
