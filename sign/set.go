package sign

import "github.com/rangeval/intervals/set"

// SetValue is a finite set of signs, used wherever a computation's sign is
// known only up to ambiguity (e.g. sgn of an interval straddling zero).
type SetValue = set.S[Sign]

func init() {
	set.Register(Values()...)
}
