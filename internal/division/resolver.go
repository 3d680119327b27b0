package division

// DecodeFunc extracts the division descriptor id from a deck code. The actual
// bit format lives behind this boundary (see internal/deck); the resolver only
// needs the id.
type DecodeFunc func(code string) (int, error)

// Resolver maps deck codes to division names and alliances. Malformed input
// never fails: every error path degrades to the Unknown sentinels.
type Resolver struct {
	byID   map[int]Division
	decode DecodeFunc
}

// NewResolver builds a Resolver over the given table and decode function.
func NewResolver(table []Division, decode DecodeFunc) *Resolver {
	byID := make(map[int]Division, len(table))
	for _, d := range table {
		byID[d.ID] = d
	}
	return &Resolver{byID: byID, decode: decode}
}

// Name resolves a deck code to its division name, or UnknownDivision.
func (r *Resolver) Name(code string) string {
	if d, ok := r.resolve(code); ok {
		return d.Name
	}
	return UnknownDivision
}

// Alliance resolves a deck code to its alliance tag, or UnknownAlliance.
func (r *Resolver) Alliance(code string) string {
	if d, ok := r.resolve(code); ok {
		return d.Alliance
	}
	return UnknownAlliance
}

func (r *Resolver) resolve(code string) (Division, bool) {
	if code == "" {
		return Division{}, false
	}
	id, err := r.decode(code)
	if err != nil {
		return Division{}, false
	}
	d, ok := r.byID[id]
	return d, ok
}
