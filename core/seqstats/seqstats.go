// core/seqstats/seqstats.go
package seqstats

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"genomesim-core/transition"
)

// Summary describes the composition of a reference sequence.
type Summary struct {
	Length  int
	Counts  [4]int // A, C, G, T in transition.Alphabet order
	GC      float64
	MeanRun float64 // mean homopolymer run length
	Entropy float64 // base-composition Shannon entropy, nats
}

// BaseCounts tallies A/C/G/T occurrences; non-ACGT bytes are ignored.
func BaseCounts(seq string) [4]int {
	var c [4]int
	for i := 0; i < len(seq); i++ {
		if k := transition.Index(seq[i]); k >= 0 {
			c[k]++
		}
	}
	return c
}

// GCFraction is the fraction of G+C among counted bases.
func GCFraction(seq string) float64 {
	c := BaseCounts(seq)
	total := c[0] + c[1] + c[2] + c[3]
	if total == 0 {
		return 0
	}
	return float64(c[1]+c[2]) / float64(total)
}

// Runs returns the homopolymer run lengths of seq, in order.
func Runs(seq string) []float64 {
	if len(seq) == 0 {
		return nil
	}
	var runs []float64
	n := 1.0
	for i := 1; i < len(seq); i++ {
		if seq[i] == seq[i-1] {
			n++
			continue
		}
		runs = append(runs, n)
		n = 1
	}
	return append(runs, n)
}

// MeanRun is the mean homopolymer run length, 0 for an empty sequence.
func MeanRun(seq string) float64 {
	runs := Runs(seq)
	if len(runs) == 0 {
		return 0
	}
	m, err := stats.Mean(runs)
	if err != nil {
		return 0
	}
	return m
}

// Entropy is the Shannon entropy (nats) of the base composition.
func Entropy(seq string) float64 {
	c := BaseCounts(seq)
	total := c[0] + c[1] + c[2] + c[3]
	if total == 0 {
		return 0
	}
	p := make([]float64, len(c))
	for i, n := range c {
		p[i] = float64(n) / float64(total)
	}
	return stat.Entropy(p)
}

// Summarize computes the full composition summary for seq.
func Summarize(seq string) Summary {
	return Summary{
		Length:  len(seq),
		Counts:  BaseCounts(seq),
		GC:      GCFraction(seq),
		MeanRun: MeanRun(seq),
		Entropy: Entropy(seq),
	}
}
