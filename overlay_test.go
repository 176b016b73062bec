package prolog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlayIsolation(t *testing.T) {
	db := NewDatabase(nil)
	fact := Clause{Head: Atom("parent").Of(Atom("tom"), Atom("bob"))}
	require := assert.New(t)
	require.NoError(db.Store("user", fact))

	before, err := db.Lookup("parent", nil)
	require.NoError(err)
	require.Len(before, 1)

	ov := NewOverlay()
	ov.Assertz(Clause{Head: Atom("parent").Of(Atom("bob"), Atom("ann"))})

	withOverlay, err := db.Lookup("parent", ov)
	require.NoError(err)
	require.Len(withOverlay, 2, "overlay assertions must be visible through Lookup")

	// Dropping the overlay must restore the pre-overlay result; the store
	// itself must be untouched by a lookup against an overlay.
	after, err := db.Lookup("parent", nil)
	require.NoError(err)
	require.Equal(before, after)
}

func TestOverlayRetractallHidesMatchingHeads(t *testing.T) {
	db := NewDatabase(nil)
	require := assert.New(t)
	require.NoError(db.Store("user", Clause{Head: Atom("p").Of(NumberLiteral(1))}))
	require.NoError(db.Store("user", Clause{Head: Atom("p").Of(NumberLiteral(2))}))

	ov := NewOverlay()
	ov.Retractall(Clause{Head: Atom("p").Of(NumberLiteral(1))})

	filtered, err := db.Lookup("p", ov)
	require.NoError(err)
	require.Len(filtered, 1)
	require.Equal(NumberLiteral(2), filtered[0].Head.Args[0])

	// The persistent store keeps both clauses: retraction is overlay-only.
	raw, err := db.Lookup("p", nil)
	require.NoError(err)
	require.Len(raw, 2)
}

func TestOverlayCloneIsIndependent(t *testing.T) {
	ov := NewOverlay()
	ov.Assertz(Clause{Head: Atom("p").Of(NumberLiteral(1))})

	clone := ov.Clone()
	clone.Assertz(Clause{Head: Atom("p").Of(NumberLiteral(2))})

	assert.Len(t, ov.Filter("p", nil), 1)
	assert.Len(t, clone.Filter("p", nil), 2)
}

func TestCommitOverlayPersists(t *testing.T) {
	db := NewDatabase(nil)
	rt := New(WithDatabase(db))

	ov := NewOverlay()
	ov.Assertz(Clause{Head: Atom("p").Of(NumberLiteral(1))})

	require := assert.New(t)
	require.NoError(rt.CommitOverlay(ov))

	clauses, err := db.Lookup("p", nil)
	require.NoError(err)
	require.Len(clauses, 1)
}
