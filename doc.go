// Package cardinality provides streaming estimators for the number of
// distinct items in a stream, in fixed memory.
//
// An exact distinct count requires storing every item seen. The sketches in
// this package instead keep a small fixed number of registers and answer
// with an approximation, which is usually the right trade for unbounded
// streams: memory is bounded up front and each item is touched exactly once.
//
// # Algorithms
//
// Five estimators are provided, in roughly historical order:
//
// [Exact] stores every distinct item in a map. Memory grows without bound;
// it exists as the ground-truth oracle for comparing the sketches.
//
// [PCSA] is the original Flajolet–Martin probabilistic counter: a single
// 32-bit bitmap where bit i records that an item of rank i was observed.
// Cheapest possible sketch, but a single register means high variance.
//
// [StochasticAveraging] routes each item to one of M independent bitmaps
// via a secondary hash and averages the per-bucket ranks, cutting variance
// by roughly a factor of M.
//
// [LogLog] keeps only the maximum observed rank per bucket instead of a
// full bitmap, shrinking each register from 32 bits to a few.
//
// [HyperLogLog] uses the same registers as LogLog but reduces them with a
// harmonic mean, which is far less sensitive to outlier buckets and gives
// the best accuracy per register of the family.
//
// All five satisfy the [Estimator] interface, so a caller can drive an
// arbitrary mix of them over one stream and compare the results.
//
// # Rank convention
//
// Every sketch derives an item's rank from a 32-bit hash as the count of
// trailing one-bits (the position of the lowest cleared bit). This is the
// classical Flajolet–Martin convention; many HyperLogLog descriptions count
// leading zeros instead. The bias-correction formulas here are calibrated
// for the trailing-ones convention and are not interchangeable with the
// textbook ones.
//
// # Choosing M
//
// The bucketed estimators take the register count M at construction. More
// registers mean more memory and less variance; the standard error of the
// HyperLogLog family scales as roughly 1.05/sqrt(M). M does not need to be
// a power of two — routing is a plain modulo of an independent bucket hash.
// M is fixed for the life of the sketch.
//
// # Thread safety
//
// The plain estimators are NOT safe for concurrent use.
// [AtomicStochasticAveraging] and [AtomicHyperLogLog] accept concurrent
// Ingest calls using lock-free per-register atomics; Estimate during
// concurrent writes returns a point-in-time snapshot. Because register
// updates are commutative and idempotent, concurrent and serial ingestion
// of the same items converge to identical register state.
//
// # References
//
//   - Flajolet, Martin: "Probabilistic Counting Algorithms for Data Base
//     Applications" (1985)
//   - Durand, Flajolet: "Loglog Counting of Large Cardinalities" (2003)
//   - Flajolet, Fusy, Gandouet, Meunier: "HyperLogLog: the analysis of a
//     near-optimal cardinality estimation algorithm" (2007)
package cardinality
