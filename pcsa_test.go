package cardinality

import (
	"fmt"
	"testing"
)

// Bitmap bits only ever turn on.
func TestPCSASketchMonotone(t *testing.T) {
	p := NewPCSA()
	var prev uint32
	for i := range 10000 {
		p.IngestString(fmt.Sprintf("item-%d", i))
		if p.sketch&prev != prev {
			t.Fatalf("sketch lost bits after item %d: %#x -> %#x", i, prev, p.sketch)
		}
		prev = p.sketch
	}
}

func TestPCSAEstimateAfterOneItem(t *testing.T) {
	p := NewPCSA()
	p.IngestString("only")
	if p.Estimate() == 0 {
		t.Error("estimate is 0 after ingesting an item")
	}
}

// A single bitmap estimates within a few binary orders of magnitude; the
// assertion band is deliberately wide.
func TestPCSAOrderOfMagnitude(t *testing.T) {
	const n = 100000
	p := NewPCSA()
	for i := range n {
		p.IngestString(fmt.Sprintf("item-%d", i))
	}
	got := p.Estimate()
	if got < n/32 || got > n*32 {
		t.Errorf("estimate %d not within a factor of 32 of %d", got, n)
	}
	t.Logf("pcsa: %d items -> estimate %d", n, got)
}
