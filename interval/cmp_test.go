package interval_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rangeval/intervals/interval"
)

// TestSquareStructuralEquality exercises Float's Equal method through
// go-cmp, which dispatches to it automatically and so never looks at the
// unexported, always-unique id field.
func TestSquareStructuralEquality(t *testing.T) {
	got := interval.Square(interval.NewFloat(-1.0, 2.0))
	want := interval.NewFloat(0.0, 4.0)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Square(-1,2) mismatch (-want +got):\n%s", diff)
	}
}

func TestIAddStructuralEquality(t *testing.T) {
	got := interval.IAdd(interval.NewInteger(1, 2), interval.NewInteger(3, 4))
	want := interval.NewInteger(4, 6)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("IAdd mismatch (-want +got):\n%s", diff)
	}
}
