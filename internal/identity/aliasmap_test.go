package identity

import (
	"reflect"
	"testing"
)

func TestCommonNamePrefersHighestCount(t *testing.T) {
	m := NewAliasMap()
	m.Increment("42", "X")
	m.Increment("42", "Y")
	m.Increment("42", "X")
	m.Increment("42", "X")

	if got := m.CommonName("42"); got != "X" {
		t.Errorf("CommonName = %q, want %q", got, "X")
	}
	if got := m.Names("42"); !reflect.DeepEqual(got, []string{"X", "Y"}) {
		t.Errorf("Names = %v, want [X Y]", got)
	}
}

func TestCommonNameTieBreaksOnFirstSeen(t *testing.T) {
	m := NewAliasMap()
	m.Increment("7", "older")
	m.Increment("7", "newer")

	if got := m.CommonName("7"); got != "older" {
		t.Errorf("CommonName = %q, want first-seen name on tie", got)
	}
}

func TestCommonNameUnknownForUnseenID(t *testing.T) {
	m := NewAliasMap()
	if got := m.CommonName("nobody"); got != UnknownName {
		t.Errorf("CommonName = %q, want %q", got, UnknownName)
	}
}

func TestIncrementIgnoresEmptyName(t *testing.T) {
	m := NewAliasMap()
	m.Increment("9", "")
	if names := m.Names("9"); len(names) != 0 {
		t.Errorf("expected no names after empty increment, got %v", names)
	}
}

func TestMatchesTransliterated(t *testing.T) {
	m := NewAliasMap()
	m.Increment("1", "Нова")      // reads as "Hoba"
	m.Increment("2", "Sandman")

	cases := []struct {
		id, query string
		want      bool
	}{
		{"1", "hoba", true},
		{"1", "HoBa", true},
		{"1", "нова", true},
		{"1", "xyz", false},
		{"2", "sand", true},
		{"2", "DMAN", true},
		{"2", "nova", false},
	}
	for _, tc := range cases {
		if got := m.Matches(tc.id, tc.query); got != tc.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", tc.id, tc.query, got, tc.want)
		}
	}
}

func TestMergeSumsCounts(t *testing.T) {
	a := NewAliasMap()
	a.Increment("5", "Alpha")

	b := NewAliasMap()
	b.Increment("5", "Beta")
	b.Increment("5", "Beta")

	a.Merge(b)

	if got := a.CommonName("5"); got != "Beta" {
		t.Errorf("CommonName after merge = %q, want Beta (count 2 beats 1)", got)
	}
	if got := a.Count("5", "Beta"); got != 2 {
		t.Errorf("Count(Beta) = %d, want 2", got)
	}
}

func TestMergeNames(t *testing.T) {
	m := NewAliasMap()
	m.MergeNames("8", []string{"one", "two", "one"})

	if got := m.CommonName("8"); got != "one" {
		t.Errorf("CommonName = %q, want one", got)
	}
}
