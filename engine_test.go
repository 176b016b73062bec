package prolog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// loadFamilyDatabase builds the parent/grandparent database from spec.md
// §8's worked scenarios.
func loadFamilyDatabase(t *testing.T) *Runtime {
	t.Helper()
	rt := New(WithOutput(nil))
	require.NoError(t, rt.Consult(
		Clause{Head: Atom("parent").Of(Atom("tom"), Atom("bob"))},
		Clause{Head: Atom("parent").Of(Atom("bob"), Atom("ann"))},
		Clause{Head: Atom("parent").Of(Atom("bob"), Atom("pat"))},
		Clause{
			Head: Atom("grandparent").Of(Variable{Name: "X"}, Variable{Name: "Z"}),
			Body: Atom(connAnd).Of(
				Atom("parent").Of(Variable{Name: "X"}, Variable{Name: "Y"}),
				Atom("parent").Of(Variable{Name: "Y"}, Variable{Name: "Z"}),
			),
		},
	))
	return rt
}

func TestScenario1_ParentOfTom(t *testing.T) {
	rt := loadFamilyDatabase(t)
	solutions, err := rt.Search(Clause{Head: Atom("q"), Body: Atom("parent").Of(Atom("tom"), Variable{Name: "X"})}, NewEnv())
	require.NoError(t, err)
	require.Len(t, solutions, 1)
	require.Equal(t, Atom("bob"), solutions[0]["X"])
}

func TestScenario2_AllParentPairsInOrder(t *testing.T) {
	rt := loadFamilyDatabase(t)
	solutions, err := rt.Search(Clause{Head: Atom("q"), Body: Atom("parent").Of(Variable{Name: "X"}, Variable{Name: "Y"})}, NewEnv())
	require.NoError(t, err)
	require.Len(t, solutions, 3)

	expected := []struct{ X, Y Predicate }{
		{Atom("tom"), Atom("bob")},
		{Atom("bob"), Atom("ann")},
		{Atom("bob"), Atom("pat")},
	}
	for i, want := range expected {
		require.Equal(t, want.X, solutions[i]["X"], "solution %d", i)
		require.Equal(t, want.Y, solutions[i]["Y"], "solution %d", i)
	}
}

func TestScenario3_GrandparentOfTomInOrder(t *testing.T) {
	rt := loadFamilyDatabase(t)
	solutions, err := rt.Search(Clause{Head: Atom("q"), Body: Atom("grandparent").Of(Atom("tom"), Variable{Name: "Z"})}, NewEnv())
	require.NoError(t, err)
	require.Len(t, solutions, 2)
	require.Equal(t, Atom("ann"), solutions[0]["Z"])
	require.Equal(t, Atom("pat"), solutions[1]["Z"])
}

func TestScenario4_ConjunctionWithArithmetic(t *testing.T) {
	rt := loadFamilyDatabase(t)
	body := Atom(connAnd).Of(
		Atom("parent").Of(Variable{Name: "X"}, Variable{Name: "Y"}),
		Atom("is").Of(Variable{Name: "N"}, Atom("+").Of(NumberLiteral(1), NumberLiteral(2))),
	)
	solutions, err := rt.Search(Clause{Head: Atom("q"), Body: body}, NewEnv())
	require.NoError(t, err)
	require.Len(t, solutions, 3)
	for i, sol := range solutions {
		require.Equal(t, NumberLiteral(3), sol["N"], "solution %d", i)
	}
}

func TestScenario5_CutCommitsToFirstBranch(t *testing.T) {
	rt := loadFamilyDatabase(t)
	body := Atom(connAnd).Of(
		Atom("parent").Of(Atom("tom"), Variable{Name: "X"}),
		Atom("cut"),
		Atom("parent").Of(Variable{Name: "X"}, Variable{Name: "Z"}),
	)
	solutions, err := rt.Search(Clause{Head: Atom("q"), Body: body}, NewEnv())
	require.NoError(t, err)
	require.Len(t, solutions, 2)
	require.Equal(t, Atom("bob"), solutions[0]["X"])
	require.Equal(t, Atom("ann"), solutions[0]["Z"])
	require.Equal(t, Atom("bob"), solutions[1]["X"])
	require.Equal(t, Atom("pat"), solutions[1]["Z"])
}

func TestScenario6_Comparison(t *testing.T) {
	rt := loadFamilyDatabase(t)

	solutions, err := rt.Search(Clause{Head: Atom("q"), Body: Atom(">").Of(NumberLiteral(5), NumberLiteral(3))}, NewEnv())
	require.NoError(t, err)
	require.Len(t, solutions, 1)
	require.Empty(t, solutions[0])

	solutions, err = rt.Search(Clause{Head: Atom("q"), Body: Atom(">").Of(NumberLiteral(3), NumberLiteral(5))}, NewEnv())
	require.NoError(t, err)
	require.Empty(t, solutions)
}

func TestArithmeticIsMod(t *testing.T) {
	rt := New()
	solutions, err := rt.Search(Clause{Head: Atom("q"), Body: Atom("is").Of(Variable{Name: "X"}, Atom("mod").Of(NumberLiteral(10), NumberLiteral(3)))}, NewEnv())
	require.NoError(t, err)
	require.Len(t, solutions, 1)
	require.Equal(t, NumberLiteral(1), solutions[0]["X"])
}

func TestArithmeticDivisionByZeroAbortsSearch(t *testing.T) {
	rt := New()
	_, err := rt.Search(Clause{Head: Atom("q"), Body: Atom("is").Of(Variable{Name: "X"}, Atom("/").Of(NumberLiteral(5), NumberLiteral(0)))}, NewEnv())
	require.Error(t, err)
	var arithErr ArithmeticError
	require.ErrorAs(t, err, &arithErr)
}

func TestArithmeticNonNumericOperandFailsSilently(t *testing.T) {
	rt := New()
	solutions, err := rt.Search(Clause{Head: Atom("q"), Body: Atom("is").Of(Variable{Name: "X"}, Atom("+").Of(Atom("a"), NumberLiteral(1)))}, NewEnv())
	require.NoError(t, err)
	require.Empty(t, solutions)
}

func TestUndefinedPredicateErrors(t *testing.T) {
	rt := New()
	_, err := rt.Search(Clause{Head: Atom("q"), Body: Atom("no_such_predicate").Of(Atom("x"))}, NewEnv())
	require.Error(t, err)
	var undef UndefinedPredicateError
	require.ErrorAs(t, err, &undef)
}

func TestAssertzIsVisibleOnlyWithinSearch(t *testing.T) {
	db := NewDatabase(nil)
	rt := New(WithDatabase(db))

	solutions, err := rt.Search(Clause{
		Head: Atom("q"),
		Body: Atom(connAnd).Of(
			Atom("assertz").Of(Atom("fact").Of(Atom("x"))),
			Atom("fact").Of(Variable{Name: "V"}),
		),
	}, NewEnv())
	require.NoError(t, err)
	require.Len(t, solutions, 1)
	require.Equal(t, Atom("x"), solutions[0]["V"])

	// Nothing was persisted: the search's overlay was discarded.
	persisted, err := db.Lookup("fact", nil)
	require.NoError(t, err)
	require.Empty(t, persisted)
}

func TestQueryIteratorOverParentOfTom(t *testing.T) {
	rt := loadFamilyDatabase(t)
	q := rt.Query(Atom("parent").Of(Atom("tom"), Variable{Name: "X"}))
	require.NoError(t, q.Err())
	require.True(t, q.Next())
	require.Equal(t, Atom("bob"), q.Current().Env["X"])
	require.False(t, q.Next())
}

func TestQueryOnceFailsWithSentinel(t *testing.T) {
	rt := loadFamilyDatabase(t)
	_, err := rt.QueryOnce(Atom("parent").Of(Atom("nobody"), Variable{Name: "X"}))
	require.ErrorIs(t, err, ErrQueryFailed)
}
