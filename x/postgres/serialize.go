package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/nilgiri/prolog"
)

// wireTerm is the JSON wire format for a prolog.Term, tagged by kind so
// decode can reconstruct the exact concrete type it started as (spec.md §6
// invariant 6: a clause stored and re-read must compare equal to the
// original). Grounded on the teacher's interop.go marshaling of terms
// across the WASM boundary, adapted from the WASM JSON-RPC wire shape to a
// Postgres column payload.
type wireTerm struct {
	Kind string     `json:"kind"`
	Name string     `json:"name,omitempty"`
	Num  float64    `json:"num,omitempty"`
	Str  string     `json:"str,omitempty"`
	List []wireTerm `json:"list,omitempty"`
	Args []wireTerm `json:"args,omitempty"`
}

func encodeTerm(t prolog.Term) wireTerm {
	switch v := t.(type) {
	case prolog.Variable:
		return wireTerm{Kind: "var", Name: v.Name}
	case prolog.NumberLiteral:
		return wireTerm{Kind: "num", Num: float64(v)}
	case prolog.StringLiteral:
		return wireTerm{Kind: "str", Str: string(v)}
	case prolog.ListLiteral:
		items := make([]wireTerm, len(v))
		for i, e := range v {
			items[i] = encodeTerm(e)
		}
		return wireTerm{Kind: "list", List: items}
	case prolog.Predicate:
		args := make([]wireTerm, len(v.Args))
		for i, a := range v.Args {
			args[i] = encodeTerm(a)
		}
		return wireTerm{Kind: "pred", Name: v.Name, Args: args}
	default:
		panic(fmt.Sprintf("postgres: unknown term type %T", t))
	}
}

func decodeTerm(w wireTerm) (prolog.Term, error) {
	switch w.Kind {
	case "var":
		return prolog.Variable{Name: w.Name}, nil
	case "num":
		return prolog.NumberLiteral(w.Num), nil
	case "str":
		return prolog.StringLiteral(w.Str), nil
	case "list":
		items := make(prolog.ListLiteral, len(w.List))
		for i, e := range w.List {
			t, err := decodeTerm(e)
			if err != nil {
				return nil, err
			}
			items[i] = t
		}
		return items, nil
	case "pred":
		args := make([]prolog.Term, len(w.Args))
		for i, a := range w.Args {
			t, err := decodeTerm(a)
			if err != nil {
				return nil, err
			}
			args[i] = t
		}
		return prolog.Predicate{Name: w.Name, Args: args}, nil
	default:
		return nil, fmt.Errorf("postgres: unknown wire term kind %q", w.Kind)
	}
}

type wireClause struct {
	Head wireTerm  `json:"head"`
	Body *wireTerm `json:"body,omitempty"`
}

func encodeClause(c prolog.Clause) ([]byte, error) {
	w := wireClause{Head: encodeTerm(c.Head)}
	if c.Body != nil {
		body := encodeTerm(c.Body)
		w.Body = &body
	}
	return json.Marshal(w)
}

func decodeClause(payload []byte) (prolog.Clause, error) {
	var w wireClause
	if err := json.Unmarshal(payload, &w); err != nil {
		return prolog.Clause{}, err
	}
	head, err := decodeTerm(w.Head)
	if err != nil {
		return prolog.Clause{}, err
	}
	headPred, ok := head.(prolog.Predicate)
	if !ok {
		return prolog.Clause{}, fmt.Errorf("postgres: stored clause head is not a predicate")
	}
	c := prolog.Clause{Head: headPred}
	if w.Body != nil {
		body, err := decodeTerm(*w.Body)
		if err != nil {
			return prolog.Clause{}, err
		}
		c.Body = body
	}
	return c, nil
}
