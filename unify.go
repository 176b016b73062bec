package prolog

// Unify attempts to make src (under srcEnv) and dest (under destEnv)
// structurally identical, per spec.md §4.3. On success destEnv is updated
// with any new bindings; srcEnv is never mutated. There is no occurs-check.
func Unify(src Term, srcEnv Env, dest Term, destEnv Env, rt *Runtime) bool {
	// Step 1: src is a Variable.
	if sv, ok := src.(Variable); ok {
		val, bound := Eval(sv, srcEnv, rt)
		if !bound {
			return true
		}
		return Unify(val, srcEnv, dest, destEnv, rt)
	}

	// Step 2: dest is a Variable.
	if dv, ok := dest.(Variable); ok {
		val, bound := Eval(dv, destEnv, rt)
		if bound {
			return Unify(src, srcEnv, val, destEnv, rt)
		}
		rhs, _ := Eval(src, srcEnv, rt)
		if rhs == nil {
			// RHS didn't reduce; store the unevaluated src so the binding
			// is still recorded (spec.md §4.3 step 2).
			rhs = src
		}
		destEnv.Bind(dv.Name, rhs)
		return true
	}

	// Step 3: either side is a Literal (number/string/list).
	if isLiteral(src) || isLiteral(dest) {
		sval, _ := Eval(src, srcEnv, rt)
		dval, _ := Eval(dest, destEnv, rt)
		if sval == nil || dval == nil {
			return false
		}
		return Equal(sval, dval)
	}

	sp, sok := src.(Predicate)
	dp, dok := dest.(Predicate)
	if !sok || !dok {
		return false
	}

	// Step 4: names/arities must match.
	if sp.Name != dp.Name || len(sp.Args) != len(dp.Args) {
		return false
	}

	// Step 5: unify argument-wise into a scratch clone of destEnv; merge
	// back only on full success, so a partially-successful unification
	// never pollutes destEnv.
	scratch := destEnv.Clone()
	for i := range sp.Args {
		if !Unify(sp.Args[i], srcEnv, dp.Args[i], scratch, rt) {
			return false
		}
	}
	destEnv.Merge(scratch)
	return true
}

func isLiteral(t Term) bool {
	switch t.(type) {
	case NumberLiteral, StringLiteral, ListLiteral:
		return true
	default:
		return false
	}
}
