package cardinality

import (
	"math"
	"sync/atomic"
)

// HyperLogLog stores the same max-rank registers as [LogLog] but reduces
// them with a harmonic mean: sum 2^(-1-register) across buckets and invert.
// A single overshooting register barely moves a harmonic mean, whereas it
// drags an arithmetic mean up exponentially — this is HyperLogLog's
// accuracy advantage over plain LogLog at equal M.
//
// HyperLogLog is not safe for concurrent use; see [AtomicHyperLogLog].
type HyperLogLog struct {
	registers []uint32
}

// NewHyperLogLog returns an estimator with m max-rank registers. Returns
// [ErrInvalidBuckets] when m <= 0.
func NewHyperLogLog(m int) (*HyperLogLog, error) {
	if m <= 0 {
		return nil, ErrInvalidBuckets
	}
	return &HyperLogLog{registers: make([]uint32, m)}, nil
}

// Ingest raises data's bucket register to the item's rank if larger.
func (h *HyperLogLog) Ingest(data []byte) {
	k := bucketHash(data) % uint32(len(h.registers))
	if r := Rank(rankHash(data)); r > h.registers[k] {
		h.registers[k] = r
	}
}

// IngestString is Ingest for strings without allocating.
func (h *HyperLogLog) IngestString(s string) {
	k := bucketHashString(s) % uint32(len(h.registers))
	if r := Rank(rankHashString(s)); r > h.registers[k] {
		h.registers[k] = r
	}
}

// Estimate returns m^2 * Phi / sum(2^(-1-register)). Returns 0 while every
// register is still zero.
func (h *HyperLogLog) Estimate() uint64 {
	var sum float64
	empty := true
	for _, reg := range h.registers {
		if reg != 0 {
			empty = false
		}
		sum += math.Exp2(-1 - float64(reg))
	}
	if empty {
		return 0
	}
	m := float64(len(h.registers))
	return uint64(m * m * Phi / sum)
}

// AtomicHyperLogLog is a [HyperLogLog] that is safe for concurrent Ingest
// and Estimate calls. Raising a register to a new maximum uses a
// compare-and-swap loop per register; max is commutative and idempotent, so
// concurrent ingestion reaches the same register state as serial ingestion
// of the same items.
type AtomicHyperLogLog struct {
	registers []atomic.Uint32
}

// NewAtomicHyperLogLog returns a concurrency-safe estimator with m max-rank
// registers. Returns [ErrInvalidBuckets] when m <= 0.
func NewAtomicHyperLogLog(m int) (*AtomicHyperLogLog, error) {
	if m <= 0 {
		return nil, ErrInvalidBuckets
	}
	return &AtomicHyperLogLog{registers: make([]atomic.Uint32, m)}, nil
}

// Ingest atomically raises data's bucket register to the item's rank.
func (h *AtomicHyperLogLog) Ingest(data []byte) {
	k := bucketHash(data) % uint32(len(h.registers))
	h.raise(k, Rank(rankHash(data)))
}

// IngestString atomically raises s's bucket register to the item's rank.
func (h *AtomicHyperLogLog) IngestString(s string) {
	k := bucketHashString(s) % uint32(len(h.registers))
	h.raise(k, Rank(rankHashString(s)))
}

func (h *AtomicHyperLogLog) raise(k, r uint32) {
	reg := &h.registers[k]
	for {
		cur := reg.Load()
		if cur >= r {
			return
		}
		if reg.CompareAndSwap(cur, r) {
			return
		}
	}
}

// Estimate reduces a point-in-time snapshot of the registers. Safe to call
// concurrently with Ingest; each register is read with a single atomic
// load, so no torn reads occur.
func (h *AtomicHyperLogLog) Estimate() uint64 {
	var sum float64
	empty := true
	for i := range h.registers {
		reg := h.registers[i].Load()
		if reg != 0 {
			empty = false
		}
		sum += math.Exp2(-1 - float64(reg))
	}
	if empty {
		return 0
	}
	m := float64(len(h.registers))
	return uint64(m * m * Phi / sum)
}
