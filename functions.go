package prolog

import (
	"strings"
	"time"
)

// loadFunctions installs the built-in function set of spec.md §4.7:
// format_str, isoformat, and the list_max/list_min/list_sum/list_avg
// aggregates.
func loadFunctions(r *registry) {
	r.RegisterFunction("format_str", fnFormatStr)
	r.RegisterFunction("isoformat", fnIsoformat)
	r.RegisterFunction("list_max", fnListAggregate(listMax))
	r.RegisterFunction("list_min", fnListAggregate(listMin))
	r.RegisterFunction("list_sum", fnListAggregate(listSum))
	r.RegisterFunction("list_avg", fnListAggregate(listAvg))
}

func evalArg(t Term, env Env, rt *Runtime) (Term, bool) {
	v, ok := Eval(t, env, rt)
	if rt.err != nil {
		return nil, false
	}
	return v, ok
}

// fnFormatStr implements format_str(Template, Arg1, ...), substituting
// "{}" occurrences left to right with the string form of each argument.
func fnFormatStr(t Predicate, env Env, rt *Runtime) (Term, bool) {
	if len(t.Args) == 0 {
		return nil, false
	}
	tmpl, ok := evalArg(t.Args[0], env, rt)
	if !ok {
		return nil, false
	}
	s, isStr := tmpl.(StringLiteral)
	if !isStr {
		return nil, false
	}
	var b strings.Builder
	rest := string(s)
	for _, a := range t.Args[1:] {
		v, ok := evalArg(a, env, rt)
		if !ok {
			return nil, false
		}
		idx := strings.Index(rest, "{}")
		if idx == -1 {
			b.WriteString(rest)
			rest = ""
			break
		}
		b.WriteString(rest[:idx])
		b.WriteString(v.String())
		rest = rest[idx+2:]
	}
	b.WriteString(rest)
	return StringLiteral(b.String()), true
}

// fnIsoformat implements isoformat(Stamp), rendering a Unix epoch number
// as an ISO-8601-ish string, the inverse partner to date_time_stamp/2.
func fnIsoformat(t Predicate, env Env, rt *Runtime) (Term, bool) {
	if len(t.Args) != 1 {
		return nil, false
	}
	v, ok := evalArg(t.Args[0], env, rt)
	if !ok {
		return nil, false
	}
	n, isNum := v.(NumberLiteral)
	if !isNum {
		return nil, false
	}
	return StringLiteral(time.Unix(int64(n), 0).UTC().Format(timeLayout)), true
}

func fnListAggregate(agg func([]float64) (float64, bool)) BuiltinFunction {
	return func(t Predicate, env Env, rt *Runtime) (Term, bool) {
		if len(t.Args) != 1 {
			return nil, false
		}
		v, ok := evalArg(t.Args[0], env, rt)
		if !ok {
			return nil, false
		}
		list, isList := v.(ListLiteral)
		if !isList {
			return nil, false
		}
		nums := make([]float64, 0, len(list))
		for _, item := range list {
			n, isNum := item.(NumberLiteral)
			if !isNum {
				rt.fail(TypeError{Want: "number", Got: item, Context: "list aggregate"})
				return nil, false
			}
			nums = append(nums, float64(n))
		}
		result, ok := agg(nums)
		if !ok {
			return nil, false
		}
		return NumberLiteral(result), true
	}
}

func listMax(nums []float64) (float64, bool) {
	if len(nums) == 0 {
		return 0, false
	}
	max := nums[0]
	for _, n := range nums[1:] {
		if n > max {
			max = n
		}
	}
	return max, true
}

func listMin(nums []float64) (float64, bool) {
	if len(nums) == 0 {
		return 0, false
	}
	min := nums[0]
	for _, n := range nums[1:] {
		if n < min {
			min = n
		}
	}
	return min, true
}

func listSum(nums []float64) (float64, bool) {
	sum := 0.0
	for _, n := range nums {
		sum += n
	}
	return sum, true
}

func listAvg(nums []float64) (float64, bool) {
	if len(nums) == 0 {
		return 0, false
	}
	sum, _ := listSum(nums)
	return sum / float64(len(nums)), true
}
