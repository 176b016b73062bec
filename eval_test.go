package prolog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvalArithmetic(t *testing.T) {
	rt := New()
	env := NewEnv()

	v, ok := Eval(Atom("+").Of(NumberLiteral(1), NumberLiteral(2)), env, rt)
	assert.True(t, ok)
	assert.Equal(t, NumberLiteral(3), v)

	v, ok = Eval(Atom("mod").Of(NumberLiteral(10), NumberLiteral(3)), env, rt)
	assert.True(t, ok)
	assert.Equal(t, NumberLiteral(1), v)

	v, ok = Eval(Atom("-").Of(NumberLiteral(5)), env, rt)
	assert.True(t, ok)
	assert.Equal(t, NumberLiteral(-5), v)
}

func TestEvalDivisionByZeroIsAnError(t *testing.T) {
	rt := New()
	_, ok := Eval(Atom("/").Of(NumberLiteral(5), NumberLiteral(0)), NewEnv(), rt)
	assert.False(t, ok)
	assert.Error(t, rt.err)
	var arithErr ArithmeticError
	assert.ErrorAs(t, rt.err, &arithErr)
}

func TestEvalNonNumericOperandDoesNotReduce(t *testing.T) {
	rt := New()
	v, ok := Eval(Atom("+").Of(Atom("a"), NumberLiteral(1)), NewEnv(), rt)
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.NoError(t, rt.err, "an operand that cannot reduce is not itself an error")
}

func TestEvalIdempotentOnFullyBoundTerm(t *testing.T) {
	rt := New()
	env := NewEnv()
	env.Bind("X", NumberLiteral(4))
	term := Atom("*").Of(Variable{Name: "X"}, NumberLiteral(2))

	first, _ := Eval(term, env, rt)
	second, _ := Eval(term, env, rt)
	assert.Equal(t, first, second)
}

func TestEvalChasesVariableThroughEnv(t *testing.T) {
	rt := New()
	env := NewEnv()
	env.Bind("X", NumberLiteral(7))

	v, ok := Eval(Variable{Name: "X"}, env, rt)
	assert.True(t, ok)
	assert.Equal(t, NumberLiteral(7), v)

	_, ok = Eval(Variable{Name: "Unbound"}, env, rt)
	assert.False(t, ok)
}
