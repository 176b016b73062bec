package prolog

import "fmt"

// ErrQueryFailed is returned by QueryOnce when a query finds no solutions,
// mirroring the teacher's ErrFailure.
var ErrQueryFailed = fmt.Errorf("prolog: query failed")

// TypeError is raised when a built-in or arithmetic operation receives an
// argument of the wrong semantic kind (spec.md §7).
type TypeError struct {
	Want string
	Got  Term
	// Context names the operation that raised the error, e.g. "is".
	Context string
}

func (e TypeError) Error() string {
	return fmt.Sprintf("prolog: type error in %s: expected %s, got %s", e.Context, e.Want, e.Got)
}

// UndefinedPredicateError is raised when a subgoal references a predicate
// name absent from both the database and the built-in registry.
type UndefinedPredicateError struct {
	Name  string
	Arity int
}

func (e UndefinedPredicateError) Error() string {
	return fmt.Sprintf("prolog: undefined predicate %s/%d", e.Name, e.Arity)
}

// MalformedBodyError is raised when a clause body's top-level term is not a
// Predicate.
type MalformedBodyError struct {
	Body Term
}

func (e MalformedBodyError) Error() string {
	return fmt.Sprintf("prolog: malformed clause body: %v is not a predicate", e.Body)
}

// ArithmeticError is raised for divide-by-zero, modulus-by-zero, and other
// arithmetic failures that are not simply "cannot reduce" (which is not an
// error, see eval.go).
type ArithmeticError struct {
	Op      string
	Message string
}

func (e ArithmeticError) Error() string {
	return fmt.Sprintf("prolog: arithmetic error in %s: %s", e.Op, e.Message)
}

// OverlayError is raised by Runtime.Retractall when no search is in flight.
type OverlayError struct {
	Message string
}

func (e OverlayError) Error() string {
	return fmt.Sprintf("prolog: overlay error: %s", e.Message)
}
