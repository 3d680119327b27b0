// Package deck decodes the compact deck-code strings the game client stores
// in replay headers. A code is a base64 payload whose leading bytes carry the
// format version and the division descriptor id; the remainder encodes the
// unit roster, which this tool never inspects.
package deck

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// maxFormatVersion is the newest header layout this decoder understands.
const maxFormatVersion = 3

// Deck holds the fields decoded from a deck code that this tool consumes.
type Deck struct {
	FormatVersion int
	DivisionID    int
}

// Decode parses a deck-code string. It fails on empty input, invalid base64,
// truncated payloads, and unrecognized format versions; callers are expected
// to degrade to an "Unknown" division rather than propagate the error.
func Decode(code string) (Deck, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Deck{}, fmt.Errorf("deck: empty code")
	}

	raw, err := base64.StdEncoding.DecodeString(code)
	if err != nil {
		// Some client versions emit unpadded codes.
		raw, err = base64.RawStdEncoding.DecodeString(code)
	}
	if err != nil {
		return Deck{}, fmt.Errorf("deck: invalid base64: %w", err)
	}
	if len(raw) < 3 {
		return Deck{}, fmt.Errorf("deck: payload too short (%d bytes)", len(raw))
	}

	version := int(raw[0])
	if version == 0 || version > maxFormatVersion {
		return Deck{}, fmt.Errorf("deck: unsupported format version %d", version)
	}

	divisionID := int(raw[1])<<8 | int(raw[2])
	if divisionID == 0 {
		return Deck{}, fmt.Errorf("deck: missing division id")
	}

	return Deck{FormatVersion: version, DivisionID: divisionID}, nil
}

// DivisionID is the decode contract the division resolver consumes.
func DivisionID(code string) (int, error) {
	d, err := Decode(code)
	if err != nil {
		return 0, err
	}
	return d.DivisionID, nil
}
