package cardinality

// Exact is the ground-truth baseline: it stores every distinct item and
// counts them precisely. Memory grows with the number of distinct items, so
// it is only practical as an oracle when evaluating the sketches against a
// known truth.
type Exact struct {
	items map[string]struct{}
}

// NewExact returns an empty exact counter.
func NewExact() *Exact {
	return &Exact{items: make(map[string]struct{})}
}

// Ingest records data as seen.
func (e *Exact) Ingest(data []byte) {
	e.items[string(data)] = struct{}{}
}

// IngestString records s as seen.
func (e *Exact) IngestString(s string) {
	e.items[s] = struct{}{}
}

// Estimate returns the exact number of distinct items ingested.
func (e *Exact) Estimate() uint64 {
	return uint64(len(e.items))
}
