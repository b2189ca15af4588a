// Package sign implements the three-valued sign algebra (negative, zero,
// positive) used by interval.Float's Sgn and by sign-aware multiplication.
package sign

import "golang.org/x/exp/constraints"

// Sign is one of Negative, Zero or Positive.
type Sign int8

const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

// Values lists the fixed domain of Sign, in ascending order. It is the
// domain set.Register[Sign] is seeded with at package init.
func Values() []Sign { return []Sign{Negative, Zero, Positive} }

func (s Sign) String() string {
	switch s {
	case Negative:
		return "-"
	case Zero:
		return "0"
	case Positive:
		return "+"
	default:
		return "?"
	}
}

// Reflect returns the sign with its polarity reversed; Zero reflects to
// itself.
func (s Sign) Reflect() Sign {
	return -s
}

// Mul implements sign multiplication: Negative*Negative=Positive,
// anything*Zero=Zero, etc.
func Mul(a, b Sign) Sign {
	return a * b
}

// Of returns the sign of x: Negative if x < 0, Positive if x > 0, Zero
// otherwise (including x == 0 and, for floating kinds, x == -0).
func Of[T constraints.Integer | constraints.Float](x T) Sign {
	switch {
	case x < 0:
		return Negative
	case x > 0:
		return Positive
	default:
		return Zero
	}
}

// Apply scales x by sign s: Positive leaves x unchanged, Negative negates
// it, and Zero collapses x to the zero value of T.
func Apply[T constraints.Integer | constraints.Float](s Sign, x T) T {
	switch s {
	case Positive:
		return x
	case Negative:
		return -x
	default:
		return 0
	}
}
