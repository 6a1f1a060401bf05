package benchmarks

import (
	"fmt"
	"sync/atomic"
	"testing"

	axiom "github.com/axiomhq/hyperloglog"
	"github.com/cespare/xxhash/v2"
	clark "github.com/clarkduvall/hyperloglog"
	"github.com/fmela/cardinality"
)

const benchItems = 1_000_000

// Pre-generate test data to avoid measuring string generation
var testKeys [][]byte
var testKeysStr []string

func init() {
	testKeys = make([][]byte, benchItems)
	testKeysStr = make([]string, benchItems)
	for i := range benchItems {
		s := fmt.Sprintf("key-%d", i)
		testKeys[i] = []byte(s)
		testKeysStr[i] = s
	}
}

// ============================================================================
// Ingest Benchmarks
// ============================================================================

func BenchmarkIngest_HyperLogLog(b *testing.B) {
	h, err := cardinality.NewHyperLogLog(1531)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := range b.N {
		h.Ingest(testKeys[i%benchItems])
	}
}

func BenchmarkIngest_HyperLogLogString(b *testing.B) {
	h, err := cardinality.NewHyperLogLog(1531)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := range b.N {
		h.IngestString(testKeysStr[i%benchItems])
	}
}

func BenchmarkIngest_AtomicHyperLogLog(b *testing.B) {
	h, err := cardinality.NewAtomicHyperLogLog(1531)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := range b.N {
		h.Ingest(testKeys[i%benchItems])
	}
}

func BenchmarkIngest_StochasticAveraging(b *testing.B) {
	s, err := cardinality.NewStochasticAveraging(1531)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := range b.N {
		s.Ingest(testKeys[i%benchItems])
	}
}

func BenchmarkIngest_LogLog(b *testing.B) {
	l, err := cardinality.NewLogLog(1531)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := range b.N {
		l.Ingest(testKeys[i%benchItems])
	}
}

func BenchmarkIngest_PCSA(b *testing.B) {
	p := cardinality.NewPCSA()
	b.ResetTimer()
	for i := range b.N {
		p.Ingest(testKeys[i%benchItems])
	}
}

// https://github.com/axiomhq/hyperloglog
func BenchmarkIngest_AxiomHQ(b *testing.B) {
	h := axiom.New14()
	b.ResetTimer()
	for i := range b.N {
		h.Insert(testKeys[i%benchItems])
	}
}

// https://github.com/clarkduvall/hyperloglog
func BenchmarkIngest_ClarkDuvall(b *testing.B) {
	h, err := clark.NewPlus(14)
	if err != nil {
		b.Fatal(err)
	}
	d := xxhash.New()
	b.ResetTimer()
	for i := range b.N {
		d.Reset()
		d.Write(testKeys[i%benchItems])
		h.Add(d)
	}
}

// ============================================================================
// Concurrent Ingest Benchmarks
// ============================================================================

func BenchmarkIngestParallel_AtomicHyperLogLog(b *testing.B) {
	h, err := cardinality.NewAtomicHyperLogLog(1531)
	if err != nil {
		b.Fatal(err)
	}
	var next atomic.Uint64
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			i := next.Add(1)
			h.IngestString(testKeysStr[i%benchItems])
		}
	})
}

func BenchmarkIngestParallel_AtomicStochasticAveraging(b *testing.B) {
	s, err := cardinality.NewAtomicStochasticAveraging(1531)
	if err != nil {
		b.Fatal(err)
	}
	var next atomic.Uint64
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			i := next.Add(1)
			s.IngestString(testKeysStr[i%benchItems])
		}
	})
}

// ============================================================================
// Estimate Benchmarks
// ============================================================================

func BenchmarkEstimate_HyperLogLog(b *testing.B) {
	h, err := cardinality.NewHyperLogLog(1531)
	if err != nil {
		b.Fatal(err)
	}
	for i := range benchItems {
		h.Ingest(testKeys[i])
	}
	b.ResetTimer()
	for range b.N {
		h.Estimate()
	}
}

func BenchmarkEstimate_StochasticAveraging(b *testing.B) {
	s, err := cardinality.NewStochasticAveraging(1531)
	if err != nil {
		b.Fatal(err)
	}
	for i := range benchItems {
		s.Ingest(testKeys[i])
	}
	b.ResetTimer()
	for range b.N {
		s.Estimate()
	}
}

func BenchmarkEstimate_AxiomHQ(b *testing.B) {
	h := axiom.New14()
	for i := range benchItems {
		h.Insert(testKeys[i])
	}
	b.ResetTimer()
	for range b.N {
		h.Estimate()
	}
}
