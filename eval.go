package prolog

import "math"

// unaryOperators and binaryOperators are the registered arithmetic
// operators of spec.md §4.2 steps 1-2, grounded on runtime.py's
// unary_operators/binary_operators tables.
var unaryOperators = map[string]func(float64) float64{
	"+": func(a float64) float64 { return a },
	"-": func(a float64) float64 { return -a },
}

var binaryOperators = map[string]func(rt *Runtime, a, b float64) (float64, error){
	"+": func(_ *Runtime, a, b float64) (float64, error) { return a + b, nil },
	"-": func(_ *Runtime, a, b float64) (float64, error) { return a - b, nil },
	"*": func(_ *Runtime, a, b float64) (float64, error) { return a * b, nil },
	"/": func(_ *Runtime, a, b float64) (float64, error) {
		if b == 0 {
			return 0, ArithmeticError{Op: "/", Message: "division by zero"}
		}
		return a / b, nil
	},
	"mod": func(_ *Runtime, a, b float64) (float64, error) {
		if b == 0 {
			return 0, ArithmeticError{Op: "mod", Message: "modulus by zero"}
		}
		m := math.Mod(a, b)
		// mod follows the sign of the divisor (spec.md §4.2 step 2).
		if m != 0 && (m < 0) != (b < 0) {
			m += b
		}
		return m, nil
	},
}

// Eval reduces term to a value term per spec.md §4.2. The returned bool is
// false when the term cannot be reduced further (e.g. an unbound variable,
// or an unrecognized operator/function); that is not itself an error, it is
// up to the caller to decide whether the lack of reduction is acceptable.
//
// A reduction can also fail with an error (division by zero, modulus by
// zero) — that case returns (nil, false) and records the error on rt so the
// caller (typically the "is" built-in dispatch in engine.go) can surface it
// and abort the search, per spec.md §7's "errors abort the current search"
// policy.
func Eval(term Term, env Env, rt *Runtime) (Term, bool) {
	v, err := eval(term, env, rt)
	if err != nil {
		rt.fail(err)
		return nil, false
	}
	return v, v != nil
}

func eval(term Term, env Env, rt *Runtime) (Term, error) {
	switch t := term.(type) {
	case Predicate:
		if len(t.Args) == 1 {
			if op, ok := unaryOperators[t.Name]; ok {
				a, err := eval(t.Args[0], env, rt)
				if err != nil {
					return nil, err
				}
				an, ok := a.(NumberLiteral)
				if !ok {
					return nil, nil
				}
				return NumberLiteral(op(float64(an))), nil
			}
		}
		if len(t.Args) == 2 {
			if op, ok := binaryOperators[t.Name]; ok {
				a, err := eval(t.Args[0], env, rt)
				if err != nil {
					return nil, err
				}
				an, ok := a.(NumberLiteral)
				if !ok {
					return nil, nil
				}
				b, err := eval(t.Args[1], env, rt)
				if err != nil {
					return nil, err
				}
				bn, ok := b.(NumberLiteral)
				if !ok {
					return nil, nil
				}
				result, err := op(rt, float64(an), float64(bn))
				if err != nil {
					return nil, err
				}
				return NumberLiteral(result), nil
			}
		}
		if rt != nil && rt.registry != nil {
			if fn, ok := rt.registry.functions[t.Name]; ok {
				v, ok := fn(t, env, rt)
				if !ok {
					return nil, nil
				}
				return v, nil
			}
		}
		// Not a recognized operator or function: evaluate each argument.
		if len(t.Args) == 0 {
			return t, nil
		}
		args := make([]Term, len(t.Args))
		for i, a := range t.Args {
			v, err := eval(a, env, rt)
			if err != nil {
				return nil, err
			}
			if v == nil {
				return nil, nil
			}
			args[i] = v
		}
		return Predicate{Name: t.Name, Args: args}, nil
	case Variable:
		bound, ok := env.Lookup(t.Name)
		if !ok {
			return nil, nil
		}
		return eval(bound, env, rt)
	case NumberLiteral, StringLiteral, ListLiteral:
		return t, nil
	default:
		return t, nil
	}
}
