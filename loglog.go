package cardinality

import "math"

// LogLog keeps one max-rank register per bucket instead of a full bitmap:
// ingest stores only the largest rank seen in the bucket. That shrinks each
// register from 32 bits to a few (the max rank of n items is about
// log2(n), so the register value fits in O(log log n) bits) while retaining
// similar estimation power.
//
// The reduction maps each register through LowestZeroBit — the same
// primitive PCSA applies to its bitmap — before averaging, and corrects
// with 2^(mean+1) * Phi. This follows the original probabilistic-counting
// derivation rather than the Durand–Flajolet alpha constant.
//
// LogLog is not safe for concurrent use.
type LogLog struct {
	registers []uint32
}

// NewLogLog returns an estimator with m max-rank registers. Returns
// [ErrInvalidBuckets] when m <= 0.
func NewLogLog(m int) (*LogLog, error) {
	if m <= 0 {
		return nil, ErrInvalidBuckets
	}
	return &LogLog{registers: make([]uint32, m)}, nil
}

// Ingest raises data's bucket register to the item's rank if larger.
func (l *LogLog) Ingest(data []byte) {
	k := bucketHash(data) % uint32(len(l.registers))
	if r := Rank(rankHash(data)); r > l.registers[k] {
		l.registers[k] = r
	}
}

// IngestString is Ingest for strings without allocating.
func (l *LogLog) IngestString(s string) {
	k := bucketHashString(s) % uint32(len(l.registers))
	if r := Rank(rankHashString(s)); r > l.registers[k] {
		l.registers[k] = r
	}
}

// Estimate returns m * 2^(mean+1) * Phi where mean averages
// LowestZeroBit(register) across buckets. Returns 0 while every register is
// still zero.
func (l *LogLog) Estimate() uint64 {
	var sum uint32
	empty := true
	for _, reg := range l.registers {
		if reg != 0 {
			empty = false
		}
		sum += LowestZeroBit(reg)
	}
	if empty {
		return 0
	}
	m := float64(len(l.registers))
	mean := float64(sum) / m
	return uint64(m * math.Exp2(mean+1) * Phi)
}
