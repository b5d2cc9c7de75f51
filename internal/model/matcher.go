package model

import (
	"fmt"
	"regexp"
	"strconv"
)

// LhsExpr is the left-hand side of a template fact constraint: a projection
// of the candidate fact or a cross-reference into already-matched facts.
type LhsExpr interface {
	Eval(fact Fact, used []Fact) any
	String() string
}

// FactField projects a field of the candidate fact.
type FactField struct {
	Field string
}

func (e FactField) Eval(fact Fact, used []Fact) any {
	v, _ := fact.Field(e.Field)
	return v
}

func (e FactField) String() string { return "fact." + e.Field }

// ReferentialExpr projects a field of a fact matched by an earlier rule,
// identified by its index in the used-facts list.
type ReferentialExpr struct {
	Index int
	Field string
}

func (e ReferentialExpr) Eval(fact Fact, used []Fact) any {
	if e.Index < 0 || e.Index >= len(used) {
		return nil
	}
	v, _ := used[e.Index].Field(e.Field)
	return v
}

func (e ReferentialExpr) String() string {
	return fmt.Sprintf("all[%d].%s", e.Index, e.Field)
}

// Matcher tests a fact field against a value with one of the comparison
// operators. String comparisons with "=" and "!=" treat the right-hand side
// as a full-match regular expression.
type Matcher struct {
	LHS LhsExpr
	Op  string
	RHS any
}

// NewMatcher validates the operator and builds a matcher.
func NewMatcher(lhs LhsExpr, op string, rhs any) (Matcher, error) {
	switch op {
	case "=", "!=", ">", "<", ">=", "<=", "in":
		return Matcher{LHS: lhs, Op: op, RHS: rhs}, nil
	}
	return Matcher{}, fmt.Errorf("invalid matcher operator %q", op)
}

// MustMatcher is NewMatcher for statically-known operators; it panics on an
// invalid operator.
func MustMatcher(lhs LhsExpr, op string, rhs any) Matcher {
	m, err := NewMatcher(lhs, op, rhs)
	if err != nil {
		panic(err)
	}
	return m
}

// Matches evaluates the constraint against a fact, with used holding the
// facts matched by earlier rules for referential expressions.
func (m Matcher) Matches(fact Fact, used []Fact) bool {
	lhs := m.LHS.Eval(fact, used)
	rhs := m.RHS
	if expr, ok := rhs.(LhsExpr); ok {
		rhs = expr.Eval(fact, used)
	}

	switch m.Op {
	case "=":
		return equalOp(lhs, rhs)
	case "!=":
		return !equalOp(lhs, rhs)
	case ">":
		a, b, ok := bothFloats(lhs, rhs)
		return ok && a > b
	case "<":
		a, b, ok := bothFloats(lhs, rhs)
		return ok && a < b
	case ">=":
		a, b, ok := bothFloats(lhs, rhs)
		return ok && a >= b
	case "<=":
		a, b, ok := bothFloats(lhs, rhs)
		return ok && a <= b
	case "in":
		return containsOp(rhs, lhs)
	}
	return false
}

func (m Matcher) String() string {
	return fmt.Sprintf("%s %s %v", m.LHS, m.Op, m.RHS)
}

// equalOp compares with regex semantics when the right-hand side is a
// string pattern, numerically otherwise.
func equalOp(lhs, rhs any) bool {
	if pattern, ok := rhs.(string); ok {
		re, err := regexp.Compile("^(?:" + pattern + ")$")
		if err != nil {
			return FormatValue(lhs) == pattern
		}
		return re.MatchString(FormatValue(lhs))
	}
	if a, b, ok := bothFloats(lhs, rhs); ok {
		return a == b
	}
	return lhs == rhs
}

func containsOp(collection, item any) bool {
	switch coll := collection.(type) {
	case []string:
		needle := FormatValue(item)
		for _, s := range coll {
			if s == needle {
				return true
			}
		}
	case []float64:
		needle, ok := toFloat(item)
		if !ok {
			return false
		}
		for _, f := range coll {
			if f == needle {
				return true
			}
		}
	case []any:
		for _, v := range coll {
			if equalOp(item, v) {
				return true
			}
		}
	}
	return false
}

func bothFloats(a, b any) (float64, float64, bool) {
	af, ok := toFloat(a)
	if !ok {
		return 0, 0, false
	}
	bf, ok := toFloat(b)
	if !ok {
		return 0, 0, false
	}
	return af, bf, true
}

func toFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case string:
		f, err := strconv.ParseFloat(val, 64)
		return f, err == nil
	}
	return 0, false
}
