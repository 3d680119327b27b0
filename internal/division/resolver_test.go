package division

import (
	"errors"
	"testing"
)

// fakeDecode maps known codes to division ids without touching real deck
// payloads.
func fakeDecode(codes map[string]int) DecodeFunc {
	return func(code string) (int, error) {
		if id, ok := codes[code]; ok {
			return id, nil
		}
		return 0, errors.New("undecodable")
	}
}

func TestResolverName(t *testing.T) {
	r := NewResolver(Table, fakeDecode(map[string]int{"nato-deck": 7, "pact-deck": 102, "modded": 9999}))

	cases := []struct {
		code, want string
	}{
		{"nato-deck", "82nd Airborne"},
		{"pact-deck", "79-ya Gv. Tankovaya Diviziya"},
		{"", UnknownDivision},
		{"garbage", UnknownDivision},
		{"modded", UnknownDivision}, // decodes, but id not in the table
	}
	for _, tc := range cases {
		if got := r.Name(tc.code); got != tc.want {
			t.Errorf("Name(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestResolverAlliance(t *testing.T) {
	r := NewResolver(Table, fakeDecode(map[string]int{"nato-deck": 7, "pact-deck": 102}))

	if got := r.Alliance("nato-deck"); got != AllianceNATO {
		t.Errorf("Alliance(nato-deck) = %q", got)
	}
	if got := r.Alliance("pact-deck"); got != AlliancePACT {
		t.Errorf("Alliance(pact-deck) = %q", got)
	}
	if got := r.Alliance("bad"); got != UnknownAlliance {
		t.Errorf("Alliance(bad) = %q", got)
	}
}

func TestSameAlliance(t *testing.T) {
	if !SameAlliance(AllianceNATO, AllianceNATO) {
		t.Error("NATO should match NATO")
	}
	if SameAlliance(AllianceNATO, AlliancePACT) {
		t.Error("NATO should not match PACT")
	}
	if SameAlliance(UnknownAlliance, UnknownAlliance) {
		t.Error("Unknown must never match, even against itself")
	}
}
