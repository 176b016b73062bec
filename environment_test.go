package prolog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvCloneIsolation(t *testing.T) {
	base := NewEnv()
	base.Bind("X", NumberLiteral(1))

	clone := base.Clone()
	clone.Bind("X", NumberLiteral(2))
	clone.Bind("Y", NumberLiteral(3))

	got, _ := base.Lookup("X")
	assert.Equal(t, NumberLiteral(1), got, "cloning must not alias the original map")
	_, ok := base.Lookup("Y")
	assert.False(t, ok)
}

func TestEnvMerge(t *testing.T) {
	a := NewEnv()
	a.Bind("X", NumberLiteral(1))
	b := NewEnv()
	b.Bind("Y", NumberLiteral(2))

	a.Merge(b)

	x, _ := a.Lookup("X")
	y, _ := a.Lookup("Y")
	assert.Equal(t, NumberLiteral(1), x)
	assert.Equal(t, NumberLiteral(2), y)
}
