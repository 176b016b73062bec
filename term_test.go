package prolog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	a := Atom("foo").Of(NumberLiteral(1), StringLiteral("x"))
	b := Atom("foo").Of(NumberLiteral(1), StringLiteral("x"))
	c := Atom("foo").Of(NumberLiteral(2), StringLiteral("x"))

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
	assert.True(t, Equal(ListLiteral{NumberLiteral(1)}, ListLiteral{NumberLiteral(1)}))
	assert.False(t, Equal(Variable{Name: "X"}, Variable{Name: "Y"}))
}

func TestDeepCopyDoesNotAlias(t *testing.T) {
	orig := Atom("p").Of(ListLiteral{NumberLiteral(1), NumberLiteral(2)})
	dup := DeepCopy(orig).(Predicate)
	dup.Args[0].(ListLiteral)[0] = NumberLiteral(99)

	origList := orig.Args[0].(ListLiteral)
	assert.Equal(t, NumberLiteral(1), origList[0], "mutating the copy must not affect the original")
}

func TestRenameIsConsistentPerVariable(t *testing.T) {
	g := NewVarGen("t")
	term := Atom("p").Of(Variable{Name: "X"}, Variable{Name: "X"}, Variable{Name: "Y"})
	renamed := Rename(term, g).(Predicate)

	assert.Equal(t, renamed.Args[0], renamed.Args[1], "same source variable must map to the same fresh name")
	assert.NotEqual(t, renamed.Args[0], renamed.Args[2])
}

func TestIndicator(t *testing.T) {
	assert.Equal(t, "foo/2", Atom("foo").Of(NumberLiteral(1), NumberLiteral(2)).Indicator())
	assert.Equal(t, "bar/0", Atom("bar").Indicator())
}
