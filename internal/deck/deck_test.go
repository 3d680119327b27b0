package deck

import (
	"encoding/base64"
	"testing"
)

// encode builds a deck code with the given version and division id plus a
// short dummy unit payload.
func encode(version, divisionID int) string {
	raw := []byte{
		byte(version),
		byte(divisionID >> 8), byte(divisionID),
		0xde, 0xad, 0xbe, 0xef,
	}
	return base64.StdEncoding.EncodeToString(raw)
}

func TestDecode(t *testing.T) {
	d, err := Decode(encode(2, 311))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if d.FormatVersion != 2 || d.DivisionID != 311 {
		t.Errorf("got %+v, want version 2 division 311", d)
	}
}

func TestDecodeUnpadded(t *testing.T) {
	code := encode(1, 17)
	code = trimPadding(code)
	d, err := Decode(code)
	if err != nil {
		t.Fatalf("Decode unpadded: %v", err)
	}
	if d.DivisionID != 17 {
		t.Errorf("division = %d, want 17", d.DivisionID)
	}
}

func trimPadding(s string) string {
	for len(s) > 0 && s[len(s)-1] == '=' {
		s = s[:len(s)-1]
	}
	return s
}

func TestDecodeRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"empty":        "",
		"not base64":   "!!!not-base64!!!",
		"too short":    base64.StdEncoding.EncodeToString([]byte{1, 0}),
		"bad version":  encode(9, 311),
		"zero version": encode(0, 311),
		"zero divid":   encode(1, 0),
	}
	for name, code := range cases {
		if _, err := Decode(code); err == nil {
			t.Errorf("%s: expected error for %q", name, code)
		}
	}
}

func TestDivisionID(t *testing.T) {
	id, err := DivisionID(encode(3, 42))
	if err != nil || id != 42 {
		t.Errorf("DivisionID = %d, %v; want 42, nil", id, err)
	}
}
