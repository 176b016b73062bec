package prolog

// Clause is a fact (Body == nil) or a rule (Body is the goal to prove).
type Clause struct {
	Head Predicate
	Body Term // nil for a fact
}

// reserved connective names recognized only at the immediate top level of a
// clause body and inside an "or"'s arms (spec.md §3, §9).
const (
	connAnd = "and"
	connOr  = "or"
)

// normalizeBody turns a clause body into an ordered list of subgoals, per
// spec.md §4.5's initialization rule: if the top-level predicate is "and",
// its arguments become the goal list; otherwise the body is a single-element
// list. A nil body (a fact) normalizes to an empty list.
func normalizeBody(body Term) ([]Term, error) {
	if body == nil {
		return nil, nil
	}
	p, ok := body.(Predicate)
	if !ok {
		return nil, MalformedBodyError{Body: body}
	}
	if p.Name == connAnd {
		return p.Args, nil
	}
	return []Term{p}, nil
}

// expandClauseBody builds the child goal term-lists for one candidate
// clause, applying the one extra disjunction rule of spec.md §4.5 step 1:
// if the body's top predicate is "or", each arm becomes a separate
// term-list, itself normalized as either its "and" arguments or a
// single-element list. Deeper nesting is not recognized (spec.md §3, §9).
func expandClauseBody(body Term) ([][]Term, error) {
	if body == nil {
		return [][]Term{nil}, nil
	}
	p, ok := body.(Predicate)
	if !ok {
		return nil, MalformedBodyError{Body: body}
	}
	if p.Name != connOr {
		terms, err := normalizeBody(body)
		if err != nil {
			return nil, err
		}
		return [][]Term{terms}, nil
	}
	arms := make([][]Term, 0, len(p.Args))
	for _, arm := range p.Args {
		terms, err := normalizeBody(arm)
		if err != nil {
			return nil, err
		}
		arms = append(arms, terms)
	}
	return arms, nil
}
