// Package set implements S[T], a fixed-capacity set over an enumeration of
// T's values registered at run time via Register, backed by a bitset. S[T] behaves
// like a value type: copying an S[T] never aliases the copy's mutations
// back into the original, even though the underlying storage
// (github.com/bits-and-blooms/bitset) is itself reference-like.
package set

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/rangeval/intervals/logic"
)

// S is a set of values of type T, drawn from T's registered domain. The
// zero value is the empty, unassigned set.
type S[T comparable] struct {
	bits *bitset.BitSet // nil means empty/unassigned; never mutated in place once shared
}

// Of constructs a set containing exactly the given values.
func Of[T comparable](values ...T) S[T] {
	var s S[T]
	d := domainOf[T]()
	bs := bitset.New(uint(d.size()))
	for _, v := range values {
		i, ok := d.indexOf(v)
		if !ok {
			panic(fmt.Sprintf("set: value %v is not in the registered domain for %T", v, v))
		}
		bs.Set(uint(i))
	}
	s.bits = bs
	return s
}

// FromBits constructs a set directly from a bit mask over domain
// positions, least-significant bit first.
func FromBits[T comparable](mask uint64) S[T] {
	d := domainOf[T]()
	bs := bitset.New(uint(d.size()))
	for i := 0; i < d.size(); i++ {
		if mask&(1<<uint(i)) != 0 {
			bs.Set(uint(i))
		}
	}
	return S[T]{bits: bs}
}

func (s S[T]) clone() *bitset.BitSet {
	if s.bits == nil {
		return bitset.New(uint(domainOf[T]().size()))
	}
	return s.bits.Clone()
}

// Assigned reports whether the set contains at least one value.
func (s S[T]) Assigned() bool {
	return s.bits != nil && s.bits.Any()
}

// Reset clears the set back to empty.
func (s *S[T]) Reset() {
	s.bits = nil
}

// ResetTo clears the set and then assigns rhs into it (the free-function
// reset(lhs, rhs) pattern of the branch-merge algebra, as a method).
func (s *S[T]) ResetTo(rhs S[T]) {
	s.Reset()
	s.Assign(rhs)
}

// Assign unions rhs's members into s (set-union mutation), replacing s's
// backing storage rather than mutating any storage a prior copy of s might
// share.
func (s *S[T]) Assign(rhs S[T]) {
	if !rhs.Assigned() {
		return
	}
	next := s.clone()
	next.InPlaceUnion(rhs.clone())
	s.bits = next
}

// AssignValue unions a single value into s.
func (s *S[T]) AssignValue(v T) {
	d := domainOf[T]()
	i, ok := d.indexOf(v)
	if !ok {
		panic(fmt.Sprintf("set: value %v is not in the registered domain for %T", v, v))
	}
	next := s.clone()
	next.Set(uint(i))
	s.bits = next
}

// ToBits returns the set's contents as a bit mask over domain positions.
func (s S[T]) ToBits() uint64 {
	if s.bits == nil {
		return 0
	}
	var mask uint64
	for i, e := s.bits.NextSet(0); e; i, e = s.bits.NextSet(i + 1) {
		mask |= 1 << i
	}
	return mask
}

// ContainsIndex reports whether the domain position i is a member.
func (s S[T]) ContainsIndex(i int) bool {
	return s.bits != nil && s.bits.Test(uint(i))
}

// Contains reports whether v is definitely a member (plain bool, used when
// the caller already knows v is in the domain and wants a cheap check
// rather than a four-valued comparison).
func (s S[T]) Contains(v T) bool {
	d := domainOf[T]()
	i, ok := d.indexOf(v)
	if !ok {
		return false
	}
	return s.ContainsIndex(i)
}

// ContainsSet reports whether s is a superset of rhs.
func (s S[T]) ContainsSet(rhs S[T]) bool {
	if !rhs.Assigned() {
		return true
	}
	if s.bits == nil {
		return false
	}
	clone := rhs.bits.Clone()
	clone.InPlaceDifference(s.bits)
	return clone.None()
}

// Matches reports four-valued equality between s and a single value v: True
// if s is exactly {v}, False if s does not contain v at all, Both if s
// contains v along with other values, Bottom if s is unassigned.
func (s S[T]) Matches(v T) logic.B {
	if !s.Assigned() {
		return logic.Zero
	}
	if !s.Contains(v) {
		return logic.FromBool(false)
	}
	if s.bits.Count() == 1 {
		return logic.FromBool(true)
	}
	return logic.Contingent
}

// MatchesSet reports four-valued equality between two sets: True if they
// contain exactly the same values, False if they are disjoint, Both if
// they overlap partially, Bottom if either is unassigned.
func (s S[T]) MatchesSet(rhs S[T]) logic.B {
	if !s.Assigned() || !rhs.Assigned() {
		return logic.Zero
	}
	anyMatch := s.bits.IntersectionCardinality(rhs.bits) > 0
	anyMismatch := s.bits.Count() != rhs.bits.Count() || s.bits.IntersectionCardinality(rhs.bits) != s.bits.Count()
	switch {
	case anyMatch && !anyMismatch:
		return logic.FromBool(true)
	case !anyMatch:
		return logic.FromBool(false)
	default:
		return logic.Contingent
	}
}

// Value returns the unique value contained in s. It panics if s is not a
// singleton (per the spec's "rejects multi-valued or empty sets" rule).
func (s S[T]) Value() T {
	d := domainOf[T]()
	if s.bits == nil || s.bits.Count() != 1 {
		panic(fmt.Sprintf("set: Value() requires a singleton set, got %s", s.String()))
	}
	i, _ := s.bits.NextSet(0)
	return d.values[i]
}

// Values returns every value currently contained in s, in domain order.
func (s S[T]) Values() []T {
	if s.bits == nil {
		return nil
	}
	d := domainOf[T]()
	out := make([]T, 0, s.bits.Count())
	for i, e := s.bits.NextSet(0); e; i, e = s.bits.NextSet(i + 1) {
		out = append(out, d.values[i])
	}
	return out
}

// Not implements four-valued logical negation for S[bool].
func Not(s S[bool]) S[bool] {
	if !s.Assigned() {
		return s
	}
	var out S[bool]
	if s.Contains(false) {
		out.AssignValue(true)
	}
	if s.Contains(true) {
		out.AssignValue(false)
	}
	return out
}

func (s S[T]) String() string {
	values := s.Values()
	if values == nil {
		return "{}"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}
