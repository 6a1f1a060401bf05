// Command compare feeds one stream of random strings to every estimator
// variant and prints each estimate next to the exact distinct count.
//
// Usage:
//
//	compare [-n items] [-len stringLength] [-seed seed]
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"

	"github.com/fmela/cardinality"
)

// bucketCounts are the register counts each bucketed variant is run with.
var bucketCounts = []int{5, 29, 73, 257, 1531}

type entry struct {
	label     string
	estimator cardinality.Estimator
}

func must[T any](v T, err error) T {
	if err != nil {
		fmt.Fprintln(os.Stderr, "compare:", err)
		os.Exit(1)
	}
	return v
}

func main() {
	var (
		n      = flag.Int("n", 5_000_000, "number of items to ingest")
		length = flag.Int("len", 6, "length of each random string")
		seed   = flag.Int64("seed", 0xdeadbeef, "PRNG seed for the item stream")
	)
	flag.Parse()

	exact := cardinality.NewExact()
	entries := []entry{
		{"exact", exact},
		{"pcsa", cardinality.NewPCSA()},
	}
	for _, m := range bucketCounts {
		entries = append(entries, entry{
			fmt.Sprintf("sa_%d", m),
			must(cardinality.NewStochasticAveraging(m)),
		})
	}
	for _, m := range bucketCounts {
		entries = append(entries, entry{
			fmt.Sprintf("ll_%d", m),
			must(cardinality.NewLogLog(m)),
		})
	}
	for _, m := range bucketCounts {
		entries = append(entries, entry{
			fmt.Sprintf("hll_%d", m),
			must(cardinality.NewHyperLogLog(m)),
		})
	}

	rng := rand.New(rand.NewSource(*seed))
	item := make([]byte, *length)
	for range *n {
		for j := range item {
			item[j] = byte('A' + rng.Intn('z'-'A'+1))
		}
		for _, e := range entries {
			e.estimator.Ingest(item)
		}
	}

	truth := exact.Estimate()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "estimator\tcount\terror\t")
	for _, e := range entries {
		est := e.estimator.Estimate()
		fmt.Fprintf(w, "%s\t%d\t%+.2f%%\t\n", e.label, est, relativeError(est, truth))
	}
	w.Flush()
}

// relativeError returns the signed error of est against truth, in percent.
func relativeError(est, truth uint64) float64 {
	if truth == 0 {
		return 0
	}
	return 100 * (float64(est) - float64(truth)) / float64(truth)
}
