package env

import (
	"reflect"
	"testing"
)

func TestFromEnviron(t *testing.T) {
	s := FromEnviron([]string{"FOO=bar", "EMPTY=", "HAS=EQ=SIGN", "garbage", "=nokey"})

	if got := s["FOO"]; got != "bar" {
		t.Errorf("FOO = %q, want %q", got, "bar")
	}
	if got, ok := s.Lookup("EMPTY"); !ok || got != "" {
		t.Errorf("EMPTY = %q, %v, want empty string present", got, ok)
	}
	// Only the first '=' splits name from value.
	if got := s["HAS"]; got != "EQ=SIGN" {
		t.Errorf("HAS = %q, want %q", got, "EQ=SIGN")
	}
	if _, ok := s.Lookup("garbage"); ok {
		t.Error("entry without '=' should be skipped")
	}
	if len(s) != 3 {
		t.Errorf("len = %d, want 3", len(s))
	}
}

func TestFromEnviron_LaterDuplicateWins(t *testing.T) {
	s := FromEnviron([]string{"KEY=first", "KEY=second"})
	if got := s["KEY"]; got != "second" {
		t.Errorf("KEY = %q, want %q", got, "second")
	}
}

func TestMerge_RightBiased(t *testing.T) {
	base := Set{"A": "1", "B": "2"}
	base.Merge(Set{"B": "override", "C": "3"})

	want := Set{"A": "1", "B": "override", "C": "3"}
	if !reflect.DeepEqual(base, want) {
		t.Errorf("merged = %v, want %v", base, want)
	}
}

func TestClone_Independent(t *testing.T) {
	original := Set{"A": "1"}
	clone := original.Clone()
	clone["A"] = "changed"
	clone["B"] = "new"

	if original["A"] != "1" {
		t.Errorf("original mutated through clone: A = %q", original["A"])
	}
	if _, ok := original.Lookup("B"); ok {
		t.Error("original gained key added to clone")
	}
}

func TestEnviron_SortedRoundTrip(t *testing.T) {
	s := Set{"ZULU": "z", "ALPHA": "a", "MIKE": "m"}

	got := s.Environ()
	want := []string{"ALPHA=a", "MIKE=m", "ZULU=z"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Environ() = %v, want %v", got, want)
	}

	if !reflect.DeepEqual(FromEnviron(got), s) {
		t.Errorf("round trip lost entries: %v", FromEnviron(got))
	}
}
