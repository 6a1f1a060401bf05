package cardinality

import "errors"

// Estimator is the common surface of every cardinality estimator in this
// package. A caller can drive any mix of estimators over the same stream
// and compare their answers.
type Estimator interface {
	// Ingest folds one item into the sketch. Ingesting an item that has
	// already been seen leaves the register state unchanged, and items may
	// arrive in any order: updates are idempotent and commutative.
	Ingest(data []byte)

	// IngestString is Ingest for string keys without allocating.
	IngestString(s string)

	// Estimate returns the approximate number of distinct items ingested so
	// far. It never mutates the sketch and may be called at any point in
	// the stream. A fresh estimator returns 0.
	Estimate() uint64
}

// ErrInvalidBuckets is returned when a bucketed estimator is constructed
// with a non-positive register count.
var ErrInvalidBuckets = errors.New("cardinality: bucket count must be positive")

var (
	_ Estimator = (*Exact)(nil)
	_ Estimator = (*PCSA)(nil)
	_ Estimator = (*StochasticAveraging)(nil)
	_ Estimator = (*AtomicStochasticAveraging)(nil)
	_ Estimator = (*LogLog)(nil)
	_ Estimator = (*HyperLogLog)(nil)
	_ Estimator = (*AtomicHyperLogLog)(nil)
)
