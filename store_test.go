package prolog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemStoreInsertionOrder(t *testing.T) {
	s := NewMemStore()
	require := assert.New(t)
	require.NoError(s.Store("user", Clause{Head: Atom("p").Of(NumberLiteral(1))}))
	require.NoError(s.Store("user", Clause{Head: Atom("p").Of(NumberLiteral(2))}))
	require.NoError(s.Store("user", Clause{Head: Atom("p").Of(NumberLiteral(3))}))

	got, err := s.Lookup("p")
	require.NoError(err)
	require.Len(got, 3)
	require.Equal(NumberLiteral(1), got[0].Head.Args[0])
	require.Equal(NumberLiteral(2), got[1].Head.Args[0])
	require.Equal(NumberLiteral(3), got[2].Head.Args[0])
}

func TestMemStoreClearModule(t *testing.T) {
	s := NewMemStore()
	require := assert.New(t)
	require.NoError(s.Store("mod1", Clause{Head: Atom("p").Of(NumberLiteral(1))}))
	require.NoError(s.Store("mod2", Clause{Head: Atom("p").Of(NumberLiteral(2))}))

	require.NoError(s.ClearModule("mod1"))

	got, err := s.Lookup("p")
	require.NoError(err)
	require.Len(got, 1)
	require.Equal(NumberLiteral(2), got[0].Head.Args[0])
}

func TestMemStoreClearAll(t *testing.T) {
	s := NewMemStore()
	require := assert.New(t)
	require.NoError(s.Store("user", Clause{Head: Atom("p").Of(NumberLiteral(1))}))
	require.NoError(s.ClearAll())

	got, err := s.Lookup("p")
	require.NoError(err)
	require.Empty(got)
}
