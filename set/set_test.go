package set_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rangeval/intervals/logic"
	"github.com/rangeval/intervals/set"
)

func TestOfAndValue(t *testing.T) {
	s := set.Of(true)
	require.True(t, s.Assigned())
	require.Equal(t, true, s.Value())
}

func TestValuePanicsOnNonSingleton(t *testing.T) {
	s := set.Of(false, true)
	require.Panics(t, func() { s.Value() })
}

func TestAssignIsUnion(t *testing.T) {
	var s set.S[bool]
	s.AssignValue(false)
	require.Equal(t, []bool{false}, s.Values())
	s.Assign(set.Of(true))
	require.ElementsMatch(t, []bool{false, true}, s.Values())
}

func TestAssignDoesNotAliasPriorCopies(t *testing.T) {
	var s set.S[bool]
	s.AssignValue(false)
	copied := s
	s.AssignValue(true)
	require.Equal(t, []bool{false}, copied.Values())
	require.ElementsMatch(t, []bool{false, true}, s.Values())
}

func TestMatches(t *testing.T) {
	s := set.Of(true)
	require.Equal(t, logic.True, s.Matches(true).State())
	require.Equal(t, logic.False, s.Matches(false).State())

	both := set.Of(false, true)
	require.Equal(t, logic.Both, both.Matches(true).State())

	var empty set.S[bool]
	require.Equal(t, logic.Bottom, empty.Matches(true).State())
}

func TestNot(t *testing.T) {
	require.Equal(t, []bool{false}, set.Not(set.Of(true)).Values())
	require.ElementsMatch(t, []bool{false, true}, set.Not(set.Of(false, true)).Values())
}

func TestReset(t *testing.T) {
	s := set.Of(true)
	s.Reset()
	require.False(t, s.Assigned())
}

func TestString(t *testing.T) {
	require.Equal(t, "{}", set.S[bool]{}.String())
	require.Equal(t, "{ true }", set.Of(true).String())
}
