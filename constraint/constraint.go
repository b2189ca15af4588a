// Package constraint implements the constraint algebra and the
// identity-based constrain(x, c) narrowing operator: given a predicate
// built from comparisons against x (and possibly other operands), and
// given that the predicate is known (or assumed) to hold, constrain
// returns the tightest interval for x consistent with that assumption.
//
// Narrowing only ever applies to an operand that appears in the
// constraint BY IDENTITY — the same interval.Float value the constraint
// was built from, not an arithmetic derivative of it (e.g. constrain(x,
// x+1 >= 0) returns ErrConstraintNotConsidered, because the constraint was
// built from x+1, a different variable than x).
package constraint

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/rangeval/intervals/interval"
	"github.com/rangeval/intervals/logic"
	"github.com/rangeval/intervals/precond"
)

// ErrConstraintNotConsidered is returned by Constrain when the constraint
// tree never mentions the target interval by identity, so no narrowing
// could be performed.
var ErrConstraintNotConsidered = errors.New("constraint: target interval is not mentioned by identity in this constraint")

// operand is one side of a comparison: either a variable (an
// interval.Float the caller owns, carrying its stable identity) or a
// literal constant (id 0, never matched by identity).
type operand[T constraints.Float] struct {
	value interval.Float[T]
	id    uint64
}

func varOperand[T constraints.Float](x interval.Float[T]) operand[T] {
	return operand[T]{value: x, id: x.Identity()}
}
func constOperand[T constraints.Float](v T) operand[T] {
	return operand[T]{value: interval.Singleton(v)}
}

func (o operand[T]) matches(id uint64) bool {
	return o.id != 0 && o.id == id
}

// Term is a node in the constraint expression tree: a comparison, or a
// conjunction/disjunction of two terms. Every term caches the four-valued
// truth value it evaluates to at the point it was built.
type Term[T constraints.Float] interface {
	Value() logic.B
	fmt.Stringer

	constrain(x interval.Float[T], optional bool) (interval.Float[T], bool)
	negate() Term[T]
}

// LessEqual represents the constraint lhs <= rhs.
type LessEqual[T constraints.Float] struct {
	lhs, rhs operand[T]
	val      logic.B
}

// Less represents the constraint lhs < rhs.
type Less[T constraints.Float] struct {
	lhs, rhs operand[T]
	val      logic.B
}

// Equal represents the constraint lhs == rhs.
type Equal[T constraints.Float] struct {
	lhs, rhs operand[T]
	val      logic.B
}

// NotEqual represents the constraint lhs != rhs.
type NotEqual[T constraints.Float] struct {
	lhs, rhs operand[T]
	val      logic.B
}

// And represents the conjunction of two constraints.
type And[T constraints.Float] struct {
	left, right Term[T]
	val         logic.B
}

// Or represents the disjunction of two constraints.
type Or[T constraints.Float] struct {
	left, right Term[T]
	val         logic.B
}

func (c LessEqual[T]) Value() logic.B { return c.val }
func (c Less[T]) Value() logic.B      { return c.val }
func (c Equal[T]) Value() logic.B     { return c.val }
func (c NotEqual[T]) Value() logic.B  { return c.val }
func (c And[T]) Value() logic.B       { return c.val }
func (c Or[T]) Value() logic.B        { return c.val }

func (c LessEqual[T]) String() string { return fmt.Sprintf("(%v <= %v)", c.lhs.value, c.rhs.value) }
func (c Less[T]) String() string      { return fmt.Sprintf("(%v < %v)", c.lhs.value, c.rhs.value) }
func (c Equal[T]) String() string     { return fmt.Sprintf("(%v == %v)", c.lhs.value, c.rhs.value) }
func (c NotEqual[T]) String() string  { return fmt.Sprintf("(%v != %v)", c.lhs.value, c.rhs.value) }
func (c And[T]) String() string       { return fmt.Sprintf("(%v && %v)", c.left, c.right) }
func (c Or[T]) String() string        { return fmt.Sprintf("(%v || %v)", c.left, c.right) }

// LE builds the constraint x <= y between two variables.
func LE[T constraints.Float](x, y interval.Float[T]) LessEqual[T] {
	return LessEqual[T]{lhs: varOperand(x), rhs: varOperand(y), val: interval.Le(x, y)}
}

// LEValue builds the constraint x <= v against a literal bound.
func LEValue[T constraints.Float](x interval.Float[T], v T) LessEqual[T] {
	return LessEqual[T]{lhs: varOperand(x), rhs: constOperand(v), val: interval.LeValue(x, v)}
}

// ValueLE builds the constraint v <= x against a literal lower bound.
func ValueLE[T constraints.Float](v T, x interval.Float[T]) LessEqual[T] {
	return LessEqual[T]{lhs: constOperand(v), rhs: varOperand(x), val: interval.ValueLe(v, x)}
}

// LT builds the constraint x < y between two variables.
func LT[T constraints.Float](x, y interval.Float[T]) Less[T] {
	return Less[T]{lhs: varOperand(x), rhs: varOperand(y), val: interval.Lt(x, y)}
}

// LTValue builds the constraint x < v against a literal bound.
func LTValue[T constraints.Float](x interval.Float[T], v T) Less[T] {
	return Less[T]{lhs: varOperand(x), rhs: constOperand(v), val: interval.LtValue(x, v)}
}

// ValueLT builds the constraint v < x against a literal lower bound.
func ValueLT[T constraints.Float](v T, x interval.Float[T]) Less[T] {
	return Less[T]{lhs: constOperand(v), rhs: varOperand(x), val: interval.ValueLt(v, x)}
}

// EQ builds the constraint x == y between two variables.
func EQ[T constraints.Float](x, y interval.Float[T]) Equal[T] {
	return Equal[T]{lhs: varOperand(x), rhs: varOperand(y), val: interval.Eq(x, y)}
}

// EQValue builds the constraint x == v against a literal value.
func EQValue[T constraints.Float](x interval.Float[T], v T) Equal[T] {
	return Equal[T]{lhs: varOperand(x), rhs: constOperand(v), val: interval.EqValue(x, v)}
}

// NEQ builds the constraint x != y between two variables.
func NEQ[T constraints.Float](x, y interval.Float[T]) NotEqual[T] {
	return NotEqual[T]{lhs: varOperand(x), rhs: varOperand(y), val: interval.Neq(x, y)}
}

// NEQValue builds the constraint x != v against a literal value.
func NEQValue[T constraints.Float](x interval.Float[T], v T) NotEqual[T] {
	return NotEqual[T]{lhs: varOperand(x), rhs: constOperand(v), val: interval.NeqValue(x, v)}
}

// Conjunction combines two constraints with logical AND.
func Conjunction[T constraints.Float](lhs, rhs Term[T]) And[T] {
	return And[T]{left: lhs, right: rhs, val: logic.And(lhs.Value(), rhs.Value())}
}

// Disjunction combines two constraints with logical OR.
func Disjunction[T constraints.Float](lhs, rhs Term[T]) Or[T] {
	return Or[T]{left: lhs, right: rhs, val: logic.Or(lhs.Value(), rhs.Value())}
}

// Negate returns the logical negation of c, applying De Morgan's laws and
// flipping relational operators rather than wrapping in a generic "not".
func Negate[T constraints.Float](c Term[T]) Term[T] { return c.negate() }

func (c LessEqual[T]) negate() Term[T] { return Less[T]{lhs: c.rhs, rhs: c.lhs, val: logic.Not(c.val)} }
func (c Less[T]) negate() Term[T]      { return LessEqual[T]{lhs: c.rhs, rhs: c.lhs, val: logic.Not(c.val)} }
func (c Equal[T]) negate() Term[T]     { return NotEqual[T]{lhs: c.lhs, rhs: c.rhs, val: logic.Not(c.val)} }
func (c NotEqual[T]) negate() Term[T]  { return Equal[T]{lhs: c.lhs, rhs: c.rhs, val: logic.Not(c.val)} }
func (c And[T]) negate() Term[T] {
	return Or[T]{left: c.left.negate(), right: c.right.negate(), val: logic.Not(c.val)}
}
func (c Or[T]) negate() Term[T] {
	return And[T]{left: c.left.negate(), right: c.right.negate(), val: logic.Not(c.val)}
}

// Constrained is the result of narrowing an interval against a
// constraint: a bounded value that remembers the identity of the
// original interval it descends from.
type Constrained[T constraints.Float] struct {
	value  interval.Float[T]
	originID uint64
}

// Value returns the narrowed interval.
func (c Constrained[T]) Value() interval.Float[T] { return c.value }

// MatchesIdentity reports whether c narrows exactly the interval x (same
// identity).
func (c Constrained[T]) MatchesIdentity(x interval.Float[T]) bool {
	return c.originID != 0 && c.originID == x.Identity()
}

// Constrain narrows x against c, assuming c holds. It returns
// ErrConstraintNotConsidered if c never mentions x by identity.
func Constrain[T constraints.Float](x interval.Float[T], c Term[T]) (Constrained[T], error) {
	narrowed, considered := c.constrain(x, false)
	if !considered {
		return Constrained[T]{}, ErrConstraintNotConsidered
	}
	return Constrained[T]{value: narrowed, originID: x.Identity()}, nil
}

func minmax[T constraints.Float](a, b T, useMin bool) T {
	if useMin == (a < b) {
		return a
	}
	return b
}
func tmin[T constraints.Float](a, b T) T { return minmax(a, b, true) }
func tmax[T constraints.Float](a, b T) T { return minmax(a, b, false) }

func (c LessEqual[T]) constrain(x interval.Float[T], optional bool) (interval.Float[T], bool) {
	lower, upper := x.Lower(), x.Upper()
	considered := false
	if c.lhs.matches(x.Identity()) {
		considered = true
		if logic.Possibly(c.val) {
			upper = tmin(upper, c.rhs.value.Upper())
			precond.ExpectsDebug(lower <= upper, "constraint: less-equal narrowing on lhs produced an empty interval")
		} else {
			precond.Expects(optional, "constraint: <= cannot hold and constrain was not called as part of an optional disjunction")
		}
	}
	if c.rhs.matches(x.Identity()) {
		considered = true
		if logic.Possibly(c.val) {
			lower = tmax(lower, c.lhs.value.Lower())
			precond.ExpectsDebug(lower <= upper, "constraint: less-equal narrowing on rhs produced an empty interval")
		} else {
			precond.Expects(optional, "constraint: <= cannot hold and constrain was not called as part of an optional disjunction")
		}
	}
	if !considered {
		return x, false
	}
	return interval.NewFloat(lower, upper), true
}

func (c Less[T]) constrain(x interval.Float[T], optional bool) (interval.Float[T], bool) {
	// Pred/Succ adjustment for strict inequality is the identity for
	// floating kinds (there is no "next representable value" notion
	// this package imposes), so the narrowing is identical to <=.
	return LessEqual[T]{lhs: c.lhs, rhs: c.rhs, val: c.val}.constrain(x, optional)
}

func (c Equal[T]) constrain(x interval.Float[T], optional bool) (interval.Float[T], bool) {
	lower, upper := x.Lower(), x.Upper()
	matchesLhs := c.lhs.matches(x.Identity())
	matchesRhs := c.rhs.matches(x.Identity())
	if !matchesLhs && !matchesRhs {
		return x, false
	}
	if logic.Possibly(c.val) {
		other := c.rhs.value
		if matchesRhs {
			other = c.lhs.value
		}
		lower = tmax(lower, other.Lower())
		upper = tmin(upper, other.Upper())
		precond.ExpectsDebug(lower <= upper, "constraint: equality narrowing produced an empty interval")
	} else {
		precond.Expects(optional, "constraint: == cannot hold and constrain was not called as part of an optional disjunction")
	}
	return interval.NewFloat(lower, upper), true
}

// constrain for NotEqual never narrows a floating-point interval: shrinking
// by one unit is only meaningful for discrete kinds (see INotEqual below
// for that case), so this only reports whether x was mentioned.
func (c NotEqual[T]) constrain(x interval.Float[T], optional bool) (interval.Float[T], bool) {
	if c.lhs.matches(x.Identity()) || c.rhs.matches(x.Identity()) {
		return x, true
	}
	return x, false
}

func (c And[T]) constrain(x interval.Float[T], optional bool) (interval.Float[T], bool) {
	xl, consideredL := c.left.constrain(x, optional)
	xr, consideredR := c.right.constrain(x, optional)
	if !consideredL && !consideredR {
		return x, false
	}
	lower := tmax(xl.Lower(), xr.Lower())
	upper := tmin(xl.Upper(), xr.Upper())
	precond.ExpectsDebug(lower <= upper, "constraint: conjunction narrowing produced an empty interval")
	return interval.NewFloat(lower, upper), true
}

func (c Or[T]) constrain(x interval.Float[T], optional bool) (interval.Float[T], bool) {
	xl, consideredL := c.left.constrain(x, true)
	xr, consideredR := c.right.constrain(x, true)
	precond.Expects(logic.Possibly(c.val) || optional, "constraint: || cannot hold and constrain was not called as part of an optional disjunction")

	tookLeft := consideredL && logic.Possibly(c.left.Value())
	tookRight := consideredR && logic.Possibly(c.right.Value())
	considered := consideredL || consideredR
	if !considered {
		return x, false
	}
	switch {
	case tookLeft && tookRight:
		return interval.NewFloat(tmin(xl.Lower(), xr.Lower()), tmax(xl.Upper(), xr.Upper())), true
	case tookLeft:
		return xl, true
	case tookRight:
		return xr, true
	default:
		return x, true
	}
}

// --- Integer-kind constraint algebra ---
//
// Discrete kinds narrow two rules differently from floating kinds: strict
// inequality shrinks by one unit via Pred/Succ rather than coinciding with
// <=, and != narrows when the opposing operand is a singleton matching one
// of x's endpoints. Everything else (identity matching, conjunction,
// disjunction) carries over unchanged, so these types mirror the Float-kind
// ones above with the "I" prefix the interval package already uses for its
// Integer-kind operations (IEq, ILt, IAdd, ...).

// operandI is the integer-kind analogue of operand.
type operandI[T constraints.Integer] struct {
	value interval.Integer[T]
	id    uint64
}

func varOperandI[T constraints.Integer](x interval.Integer[T]) operandI[T] {
	return operandI[T]{value: x, id: x.Identity()}
}
func constOperandI[T constraints.Integer](v T) operandI[T] {
	return operandI[T]{value: interval.SingletonInteger(v)}
}

func (o operandI[T]) matches(id uint64) bool {
	return o.id != 0 && o.id == id
}

// ITerm is the integer-kind analogue of Term.
type ITerm[T constraints.Integer] interface {
	Value() logic.B
	fmt.Stringer

	constrain(x interval.Integer[T], optional bool) (interval.Integer[T], bool)
	negate() ITerm[T]
}

// ILessEqual represents the constraint lhs <= rhs over a discrete kind.
type ILessEqual[T constraints.Integer] struct {
	lhs, rhs operandI[T]
	val      logic.B
}

// ILess represents the constraint lhs < rhs over a discrete kind.
type ILess[T constraints.Integer] struct {
	lhs, rhs operandI[T]
	val      logic.B
}

// IEqual represents the constraint lhs == rhs over a discrete kind.
type IEqual[T constraints.Integer] struct {
	lhs, rhs operandI[T]
	val      logic.B
}

// INotEqual represents the constraint lhs != rhs over a discrete kind.
type INotEqual[T constraints.Integer] struct {
	lhs, rhs operandI[T]
	val      logic.B
}

// IAnd represents the conjunction of two integer-kind constraints.
type IAnd[T constraints.Integer] struct {
	left, right ITerm[T]
	val         logic.B
}

// IOr represents the disjunction of two integer-kind constraints.
type IOr[T constraints.Integer] struct {
	left, right ITerm[T]
	val         logic.B
}

func (c ILessEqual[T]) Value() logic.B { return c.val }
func (c ILess[T]) Value() logic.B      { return c.val }
func (c IEqual[T]) Value() logic.B     { return c.val }
func (c INotEqual[T]) Value() logic.B  { return c.val }
func (c IAnd[T]) Value() logic.B       { return c.val }
func (c IOr[T]) Value() logic.B        { return c.val }

func (c ILessEqual[T]) String() string { return fmt.Sprintf("(%v <= %v)", c.lhs.value, c.rhs.value) }
func (c ILess[T]) String() string      { return fmt.Sprintf("(%v < %v)", c.lhs.value, c.rhs.value) }
func (c IEqual[T]) String() string     { return fmt.Sprintf("(%v == %v)", c.lhs.value, c.rhs.value) }
func (c INotEqual[T]) String() string  { return fmt.Sprintf("(%v != %v)", c.lhs.value, c.rhs.value) }
func (c IAnd[T]) String() string       { return fmt.Sprintf("(%v && %v)", c.left, c.right) }
func (c IOr[T]) String() string        { return fmt.Sprintf("(%v || %v)", c.left, c.right) }

// ILE builds the constraint x <= y between two integer-kind variables.
func ILE[T constraints.Integer](x, y interval.Integer[T]) ILessEqual[T] {
	return ILessEqual[T]{lhs: varOperandI(x), rhs: varOperandI(y), val: interval.ILe(x, y)}
}

// ILEValue builds the constraint x <= v against a literal bound.
func ILEValue[T constraints.Integer](x interval.Integer[T], v T) ILessEqual[T] {
	return ILessEqual[T]{lhs: varOperandI(x), rhs: constOperandI(v), val: interval.ILe(x, interval.SingletonInteger(v))}
}

// IValueLE builds the constraint v <= x against a literal lower bound.
func IValueLE[T constraints.Integer](v T, x interval.Integer[T]) ILessEqual[T] {
	return ILessEqual[T]{lhs: constOperandI(v), rhs: varOperandI(x), val: interval.ILe(interval.SingletonInteger(v), x)}
}

// ILT builds the constraint x < y between two integer-kind variables.
func ILT[T constraints.Integer](x, y interval.Integer[T]) ILess[T] {
	return ILess[T]{lhs: varOperandI(x), rhs: varOperandI(y), val: interval.ILt(x, y)}
}

// ILTValue builds the constraint x < v against a literal bound.
func ILTValue[T constraints.Integer](x interval.Integer[T], v T) ILess[T] {
	return ILess[T]{lhs: varOperandI(x), rhs: constOperandI(v), val: interval.ILt(x, interval.SingletonInteger(v))}
}

// IValueLT builds the constraint v < x against a literal lower bound.
func IValueLT[T constraints.Integer](v T, x interval.Integer[T]) ILess[T] {
	return ILess[T]{lhs: constOperandI(v), rhs: varOperandI(x), val: interval.ILt(interval.SingletonInteger(v), x)}
}

// IEQ builds the constraint x == y between two integer-kind variables.
func IEQ[T constraints.Integer](x, y interval.Integer[T]) IEqual[T] {
	return IEqual[T]{lhs: varOperandI(x), rhs: varOperandI(y), val: interval.IEq(x, y)}
}

// IEQValue builds the constraint x == v against a literal value.
func IEQValue[T constraints.Integer](x interval.Integer[T], v T) IEqual[T] {
	return IEqual[T]{lhs: varOperandI(x), rhs: constOperandI(v), val: interval.IEq(x, interval.SingletonInteger(v))}
}

// INEQ builds the constraint x != y between two integer-kind variables.
func INEQ[T constraints.Integer](x, y interval.Integer[T]) INotEqual[T] {
	return INotEqual[T]{lhs: varOperandI(x), rhs: varOperandI(y), val: interval.INeq(x, y)}
}

// INEQValue builds the constraint x != v against a literal value.
func INEQValue[T constraints.Integer](x interval.Integer[T], v T) INotEqual[T] {
	return INotEqual[T]{lhs: varOperandI(x), rhs: constOperandI(v), val: interval.INeq(x, interval.SingletonInteger(v))}
}

// IConjunction combines two integer-kind constraints with logical AND.
func IConjunction[T constraints.Integer](lhs, rhs ITerm[T]) IAnd[T] {
	return IAnd[T]{left: lhs, right: rhs, val: logic.And(lhs.Value(), rhs.Value())}
}

// IDisjunction combines two integer-kind constraints with logical OR.
func IDisjunction[T constraints.Integer](lhs, rhs ITerm[T]) IOr[T] {
	return IOr[T]{left: lhs, right: rhs, val: logic.Or(lhs.Value(), rhs.Value())}
}

// INegate returns the logical negation of c.
func INegate[T constraints.Integer](c ITerm[T]) ITerm[T] { return c.negate() }

func (c ILessEqual[T]) negate() ITerm[T] {
	return ILess[T]{lhs: c.rhs, rhs: c.lhs, val: logic.Not(c.val)}
}
func (c ILess[T]) negate() ITerm[T] {
	return ILessEqual[T]{lhs: c.rhs, rhs: c.lhs, val: logic.Not(c.val)}
}
func (c IEqual[T]) negate() ITerm[T] {
	return INotEqual[T]{lhs: c.lhs, rhs: c.rhs, val: logic.Not(c.val)}
}
func (c INotEqual[T]) negate() ITerm[T] {
	return IEqual[T]{lhs: c.lhs, rhs: c.rhs, val: logic.Not(c.val)}
}
func (c IAnd[T]) negate() ITerm[T] {
	return IOr[T]{left: c.left.negate(), right: c.right.negate(), val: logic.Not(c.val)}
}
func (c IOr[T]) negate() ITerm[T] {
	return IAnd[T]{left: c.left.negate(), right: c.right.negate(), val: logic.Not(c.val)}
}

// IConstrained is the integer-kind analogue of Constrained.
type IConstrained[T constraints.Integer] struct {
	value    interval.Integer[T]
	originID uint64
}

// Value returns the narrowed interval.
func (c IConstrained[T]) Value() interval.Integer[T] { return c.value }

// MatchesIdentity reports whether c narrows exactly the interval x.
func (c IConstrained[T]) MatchesIdentity(x interval.Integer[T]) bool {
	return c.originID != 0 && c.originID == x.Identity()
}

// IConstrain is the integer-kind analogue of Constrain. It applies the
// discrete narrowing rules: lhs < rhs shrinks the matched endpoint by one
// unit via Pred/Succ rather than coinciding with <=, and lhs != rhs shrinks
// x by one unit whenever the opposing operand is a singleton matching one
// of x's endpoints.
func IConstrain[T constraints.Integer](x interval.Integer[T], c ITerm[T]) (IConstrained[T], error) {
	narrowed, considered := c.constrain(x, false)
	if !considered {
		return IConstrained[T]{}, ErrConstraintNotConsidered
	}
	return IConstrained[T]{value: narrowed, originID: x.Identity()}, nil
}

func iminT[T constraints.Integer](a, b T) T {
	if a < b {
		return a
	}
	return b
}
func imaxT[T constraints.Integer](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func (c ILessEqual[T]) constrain(x interval.Integer[T], optional bool) (interval.Integer[T], bool) {
	lower, upper := x.Lower(), x.Upper()
	considered := false
	if c.lhs.matches(x.Identity()) {
		considered = true
		if logic.Possibly(c.val) {
			upper = iminT(upper, c.rhs.value.Upper())
			precond.ExpectsDebug(lower <= upper, "constraint: less-equal narrowing on lhs produced an empty interval")
		} else {
			precond.Expects(optional, "constraint: <= cannot hold and constrain was not called as part of an optional disjunction")
		}
	}
	if c.rhs.matches(x.Identity()) {
		considered = true
		if logic.Possibly(c.val) {
			lower = imaxT(lower, c.lhs.value.Lower())
			precond.ExpectsDebug(lower <= upper, "constraint: less-equal narrowing on rhs produced an empty interval")
		} else {
			precond.Expects(optional, "constraint: <= cannot hold and constrain was not called as part of an optional disjunction")
		}
	}
	if !considered {
		return x, false
	}
	return interval.NewInteger(lower, upper), true
}

func (c ILess[T]) constrain(x interval.Integer[T], optional bool) (interval.Integer[T], bool) {
	lower, upper := x.Lower(), x.Upper()
	considered := false
	if c.lhs.matches(x.Identity()) {
		considered = true
		if logic.Possibly(c.val) {
			upper = iminT(upper, interval.Pred(c.rhs.value.Upper()))
			precond.ExpectsDebug(lower <= upper, "constraint: less narrowing on lhs produced an empty interval")
		} else {
			precond.Expects(optional, "constraint: < cannot hold and constrain was not called as part of an optional disjunction")
		}
	}
	if c.rhs.matches(x.Identity()) {
		considered = true
		if logic.Possibly(c.val) {
			lower = imaxT(lower, interval.Succ(c.lhs.value.Lower()))
			precond.ExpectsDebug(lower <= upper, "constraint: less narrowing on rhs produced an empty interval")
		} else {
			precond.Expects(optional, "constraint: < cannot hold and constrain was not called as part of an optional disjunction")
		}
	}
	if !considered {
		return x, false
	}
	return interval.NewInteger(lower, upper), true
}

func (c IEqual[T]) constrain(x interval.Integer[T], optional bool) (interval.Integer[T], bool) {
	lower, upper := x.Lower(), x.Upper()
	matchesLhs := c.lhs.matches(x.Identity())
	matchesRhs := c.rhs.matches(x.Identity())
	if !matchesLhs && !matchesRhs {
		return x, false
	}
	if logic.Possibly(c.val) {
		other := c.rhs.value
		if matchesRhs {
			other = c.lhs.value
		}
		lower = imaxT(lower, other.Lower())
		upper = iminT(upper, other.Upper())
		precond.ExpectsDebug(lower <= upper, "constraint: equality narrowing produced an empty interval")
	} else {
		precond.Expects(optional, "constraint: == cannot hold and constrain was not called as part of an optional disjunction")
	}
	return interval.NewInteger(lower, upper), true
}

// constrain for INotEqual shrinks x by one unit, from whichever endpoint the
// opposing singleton sits on, and is a no-op otherwise — the integer/
// iterator-kind rule that has no floating-point analogue.
func (c INotEqual[T]) constrain(x interval.Integer[T], optional bool) (interval.Integer[T], bool) {
	lower, upper := x.Lower(), x.Upper()
	matchesLhs := c.lhs.matches(x.Identity())
	matchesRhs := c.rhs.matches(x.Identity())
	if !matchesLhs && !matchesRhs {
		return x, false
	}
	if logic.Possibly(c.val) {
		other := c.rhs.value
		if matchesRhs {
			other = c.lhs.value
		}
		if other.Lower() == other.Upper() {
			v := other.Lower()
			switch {
			case v == lower && lower < upper:
				lower = interval.Succ(lower)
			case v == upper && lower < upper:
				upper = interval.Pred(upper)
			}
		}
		precond.ExpectsDebug(lower <= upper, "constraint: not-equal narrowing produced an empty interval")
	} else {
		precond.Expects(optional, "constraint: != cannot hold and constrain was not called as part of an optional disjunction")
	}
	return interval.NewInteger(lower, upper), true
}

func (c IAnd[T]) constrain(x interval.Integer[T], optional bool) (interval.Integer[T], bool) {
	xl, consideredL := c.left.constrain(x, optional)
	xr, consideredR := c.right.constrain(x, optional)
	if !consideredL && !consideredR {
		return x, false
	}
	lower := imaxT(xl.Lower(), xr.Lower())
	upper := iminT(xl.Upper(), xr.Upper())
	precond.ExpectsDebug(lower <= upper, "constraint: conjunction narrowing produced an empty interval")
	return interval.NewInteger(lower, upper), true
}

func (c IOr[T]) constrain(x interval.Integer[T], optional bool) (interval.Integer[T], bool) {
	xl, consideredL := c.left.constrain(x, true)
	xr, consideredR := c.right.constrain(x, true)
	precond.Expects(logic.Possibly(c.val) || optional, "constraint: || cannot hold and constrain was not called as part of an optional disjunction")

	tookLeft := consideredL && logic.Possibly(c.left.Value())
	tookRight := consideredR && logic.Possibly(c.right.Value())
	considered := consideredL || consideredR
	if !considered {
		return x, false
	}
	switch {
	case tookLeft && tookRight:
		return interval.NewInteger(iminT(xl.Lower(), xr.Lower()), imaxT(xl.Upper(), xr.Upper())), true
	case tookLeft:
		return xl, true
	case tookRight:
		return xr, true
	default:
		return x, true
	}
}
