package cardinality

// PCSA is the original Flajolet–Martin probabilistic counter: a single
// 32-bit bitmap where bit i is set once any ingested item has rank i. Ranks
// are geometrically distributed, so after n distinct items the index of the
// lowest unset bit is close to log2(Phi*n); inverting that and dividing by
// Phi estimates n.
//
// With one register the variance spans a few binary orders of magnitude.
// PCSA is the historical baseline that the bucketed estimators improve on.
type PCSA struct {
	sketch uint32
}

// NewPCSA returns an empty single-bitmap estimator.
func NewPCSA() *PCSA {
	return &PCSA{}
}

// Ingest folds data into the bitmap.
func (p *PCSA) Ingest(data []byte) {
	p.sketch |= LowestZeroBit(rankHash(data))
}

// IngestString folds s into the bitmap without allocating.
func (p *PCSA) IngestString(s string) {
	p.sketch |= LowestZeroBit(rankHashString(s))
}

// Estimate returns LowestZeroBit(sketch) / Phi, or 0 if nothing has been
// ingested.
func (p *PCSA) Estimate() uint64 {
	if p.sketch == 0 {
		return 0
	}
	return uint64(float64(LowestZeroBit(p.sketch)) / Phi)
}
