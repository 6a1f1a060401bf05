package cardinality

import (
	"math"
	"sync/atomic"
)

// StochasticAveraging splits the stream across m independent PCSA bitmaps,
// selecting a bucket per item with a secondary hash, and averages the
// per-bucket ranks in the final reduction. Averaging m independent
// estimates cuts the variance by roughly a factor of m relative to a single
// bitmap, at the cost of m registers.
//
// StochasticAveraging is not safe for concurrent use; see
// [AtomicStochasticAveraging].
type StochasticAveraging struct {
	registers []uint32
}

// NewStochasticAveraging returns an estimator with m bitmap registers.
// m does not need to be a power of two. Returns [ErrInvalidBuckets] when
// m <= 0.
func NewStochasticAveraging(m int) (*StochasticAveraging, error) {
	if m <= 0 {
		return nil, ErrInvalidBuckets
	}
	return &StochasticAveraging{registers: make([]uint32, m)}, nil
}

// Ingest folds data into its bucket's bitmap.
func (s *StochasticAveraging) Ingest(data []byte) {
	k := bucketHash(data) % uint32(len(s.registers))
	s.registers[k] |= LowestZeroBit(rankHash(data))
}

// IngestString folds str into its bucket's bitmap without allocating.
func (s *StochasticAveraging) IngestString(str string) {
	k := bucketHashString(str) % uint32(len(s.registers))
	s.registers[k] |= LowestZeroBit(rankHashString(str))
}

// Estimate reduces each bitmap back to a scalar rank (the index of its
// lowest unset bit), averages the ranks, and returns m * 2^mean / Phi.
// Returns 0 while every register is still empty.
func (s *StochasticAveraging) Estimate() uint64 {
	var sum uint32
	empty := true
	for _, reg := range s.registers {
		if reg != 0 {
			empty = false
		}
		sum += Rank(reg)
	}
	if empty {
		return 0
	}
	m := float64(len(s.registers))
	mean := float64(sum) / m
	return uint64(m * math.Exp2(mean) / Phi)
}

// AtomicStochasticAveraging is a [StochasticAveraging] estimator that is
// safe for concurrent Ingest and Estimate calls. Each bitmap register is
// updated with a lock-free atomic OR; different buckets never contend, and
// because OR is commutative and idempotent, concurrent ingestion reaches
// the same register state as serial ingestion of the same items.
type AtomicStochasticAveraging struct {
	registers []atomic.Uint32
}

// NewAtomicStochasticAveraging returns a concurrency-safe estimator with m
// bitmap registers. Returns [ErrInvalidBuckets] when m <= 0.
func NewAtomicStochasticAveraging(m int) (*AtomicStochasticAveraging, error) {
	if m <= 0 {
		return nil, ErrInvalidBuckets
	}
	return &AtomicStochasticAveraging{registers: make([]atomic.Uint32, m)}, nil
}

// Ingest atomically folds data into its bucket's bitmap.
func (s *AtomicStochasticAveraging) Ingest(data []byte) {
	k := bucketHash(data) % uint32(len(s.registers))
	s.registers[k].Or(LowestZeroBit(rankHash(data)))
}

// IngestString atomically folds str into its bucket's bitmap.
func (s *AtomicStochasticAveraging) IngestString(str string) {
	k := bucketHashString(str) % uint32(len(s.registers))
	s.registers[k].Or(LowestZeroBit(rankHashString(str)))
}

// Estimate reduces a point-in-time snapshot of the registers. Safe to call
// concurrently with Ingest; each register is read with a single atomic
// load, so no torn reads occur.
func (s *AtomicStochasticAveraging) Estimate() uint64 {
	var sum uint32
	empty := true
	for i := range s.registers {
		reg := s.registers[i].Load()
		if reg != 0 {
			empty = false
		}
		sum += Rank(reg)
	}
	if empty {
		return 0
	}
	m := float64(len(s.registers))
	mean := float64(sum) / m
	return uint64(m * math.Exp2(mean) / Phi)
}
