// Package logic implements the four-valued logic used to evaluate
// predicates over sets and intervals: every Boolean expression over
// uncertain operands can be Bottom (uninitialized), False, True, or Both
// (contingent — either outcome is possible depending on the unresolved
// operand).
//
// The four states form a lattice: Bottom is infectious (every operator
// applied to a Bottom operand yields Bottom, mirroring how NaN poisons
// floating-point arithmetic), and Both represents genuine ambiguity that
// collapses to False or True only once the underlying operand is further
// narrowed.
package logic

import "fmt"

// State is one of the four truth values a B can hold.
type State uint8

const (
	// Bottom marks a value that was never assigned; combining it with
	// anything else yields Bottom.
	Bottom State = 0
	False  State = 1
	True   State = 2
	// Both means the value is known to range over both False and True.
	Both State = 3
)

func (s State) String() string {
	switch s {
	case Bottom:
		return "⊥"
	case False:
		return "F"
	case True:
		return "T"
	case Both:
		return "⊤"
	default:
		return "?"
	}
}

// B is a four-valued logical value.
type B struct {
	state State
}

// FromBool lifts a plain bool into B as a definite False/True.
func FromBool(v bool) B {
	if v {
		return B{True}
	}
	return B{False}
}

// FromState constructs a B directly from a State.
func FromState(s State) B { return B{s} }

// Zero is the uninitialized (Bottom) value, the zero value of B.
var Zero = B{Bottom}

// Contingent is the value representing "could be either".
var Contingent = B{Both}

// State reports the underlying four-valued state.
func (b B) State() State { return b.state }

func (b B) String() string { return b.state.String() }

// Assigned reports whether b carries any information at all, i.e. is not
// Bottom.
func (b B) Assigned() bool { return b.state != Bottom }

// assignTrueTable/assignFalseTable implement the set-union "assign a
// possible outcome" operation used to build up a B from a sequence of
// "this could happen" checks: Bottom moves to the definite outcome, a
// definite outcome moves to Both once the other outcome is also observed,
// and Both is a fixed point. This is the accumulation primitive
// Possibly/PossiblyNot-style predicate construction uses; it is NOT the
// same operation as Or (logical disjunction of two already-settled
// values).
var (
	assignTrueTable  = [4]State{True, Both, True, Both}
	assignFalseTable = [4]State{False, False, Both, Both}
)

// Assign unions the outcome v into b, in place.
func (b *B) Assign(v bool) {
	if v {
		b.state = assignTrueTable[b.state]
	} else {
		b.state = assignFalseTable[b.state]
	}
}

// Assigning returns a copy of b with v unioned in, for call sites that
// prefer an expression form over the in-place Assign.
func Assigning(b B, v bool) B {
	b.Assign(v)
	return b
}

// Truth tables transcribed verbatim from the reference truth tables
// (rows indexed by the left operand's state, columns by the right
// operand's state, in Bottom/False/True/Both order).
var (
	andTable = [4][4]State{
		{Bottom, Bottom, Bottom, Bottom},
		{Bottom, False, False, False},
		{Bottom, False, True, Both},
		{Bottom, False, Both, Both},
	}
	orTable = [4][4]State{
		{Bottom, Bottom, Bottom, Bottom},
		{Bottom, False, True, Both},
		{Bottom, True, True, True},
		{Bottom, Both, True, Both},
	}
	xorTable = [4][4]State{
		{Bottom, Bottom, Bottom, Bottom},
		{Bottom, False, True, Both},
		{Bottom, True, False, Both},
		{Bottom, Both, Both, Both},
	}
	eqTable = [4][4]State{
		{Bottom, Bottom, Bottom, Bottom},
		{Bottom, True, False, Both},
		{Bottom, False, True, Both},
		{Bottom, Both, Both, Both},
	}
	geqTable = [4][4]State{
		{Bottom, Bottom, Bottom, Bottom},
		{Bottom, True, False, Both},
		{Bottom, True, True, True},
		{Bottom, True, Both, Both},
	}
	gtTable = [4][4]State{
		{Bottom, Bottom, Bottom, Bottom},
		{Bottom, False, False, False},
		{Bottom, True, False, Both},
		{Bottom, Both, False, Both},
	}
	notTable = [4]State{Bottom, True, False, Both}
)

// And implements four-valued conjunction.
func And(a, b B) B { return B{andTable[a.state][b.state]} }

// Or implements four-valued disjunction.
func Or(a, b B) B { return B{orTable[a.state][b.state]} }

// Xor implements four-valued exclusive-or.
func Xor(a, b B) B { return B{xorTable[a.state][b.state]} }

// Eq reports four-valued equality between two B values.
func Eq(a, b B) B { return B{eqTable[a.state][b.state]} }

// Neq reports four-valued inequality; identical to Xor.
func Neq(a, b B) B { return B{xorTable[a.state][b.state]} }

// Geq implements four-valued "a >= b" over the False < True order.
func Geq(a, b B) B { return B{geqTable[a.state][b.state]} }

// Gt implements four-valued "a > b" over the False < True order.
func Gt(a, b B) B { return B{gtTable[a.state][b.state]} }

// Leq implements four-valued "a <= b", defined as Geq(b, a).
func Leq(a, b B) B { return Geq(b, a) }

// Lt implements four-valued "a < b", defined as Gt(b, a).
func Lt(a, b B) B { return Gt(b, a) }

// Not implements four-valued negation.
func Not(a B) B { return B{notTable[a.state]} }

// Possibly reports whether b could be true (state True or Both).
func Possibly(b B) bool { return b.state == True || b.state == Both }

// PossiblyNot reports whether b could be false (state False or Both).
func PossiblyNot(b B) bool { return b.state == False || b.state == Both }

// Always (a.k.a. Definitely) reports whether b is known to be true.
func Always(b B) bool { return b.state == True }

// Definitely is an alias for Always, matching the predicate family name
// used alongside DefinitelyNot.
func Definitely(b B) bool { return Always(b) }

// Never (a.k.a. DefinitelyNot) reports whether b is known to be false.
func Never(b B) bool { return b.state == False }

// DefinitelyNot is an alias for Never.
func DefinitelyNot(b B) bool { return Never(b) }

// IsContingent reports whether b genuinely ranges over both truth values.
func IsContingent(b B) bool { return b.state == Both }

// Vacuous reports whether b was never assigned.
func Vacuous(b B) bool { return b.state == Bottom }

// If evaluates a plain-bool condition, returning ifTrue or ifFalse.
// This is the plain-bool counterpart of the branch package's operators
// (branch.Float, branch.Set, ...), for conditions that are not B values.
func If[T any](cond bool, ifTrue, ifFalse T) T {
	if cond {
		return ifTrue
	}
	return ifFalse
}

// AssertState panics if b's state does not match want; used in tests and
// diagnostics that need to pin down an exact four-valued result.
func AssertState(b B, want State) {
	if b.state != want {
		panic(fmt.Sprintf("logic: expected state %s, got %s", want, b.state))
	}
}
