package cardinality

import "math/bits"

// Phi is the Flajolet–Martin bias-correction constant. Every estimator's
// closed-form reduction uses it verbatim; it is a calibration constant, not
// a tunable.
const Phi = 0.77351

// LowestZeroBit returns 2^i where i is the index of the least-significant
// cleared bit of x. For x = 0b0111 the result is 0b1000. For
// x = 0xFFFFFFFF the addition wraps and the result is 0.
func LowestZeroBit(x uint32) uint32 {
	return ^x & (x + 1)
}

// Rank returns the number of trailing one-bits in x, i.e. the index of the
// least-significant cleared bit. Rank(0) == 0. Rank(0xFFFFFFFF) == 32: the
// subtraction wraps to all-ones, whose popcount is 32. Unsigned wraparound
// is defined in Go, so no special casing is needed.
func Rank(x uint32) uint32 {
	return uint32(bits.OnesCount32(LowestZeroBit(x) - 1))
}
