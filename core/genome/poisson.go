// core/genome/poisson.go
package genome

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"genomesim-core/transition"
)

// PoissonSimulator emits homopolymer runs instead of single bases: after a
// base is chosen, the run is extended by a Poisson-distributed number of
// extra copies, then the next base identity is drawn from the model with
// the current base excluded. The Poisson rate for base b is p/(1-p) where
// p is the model's self-transition probability for b, which reproduces the
// mean run length the equivalent Markov chain yields. Run boundaries use
// single-base contexts, so higher-order models need a fallback.
type PoissonSimulator struct {
	src rand.Source
}

// NewPoisson returns a Poisson run-length simulator with its own random
// stream.
func NewPoisson(seed uint64) *PoissonSimulator {
	return &PoissonSimulator{src: rand.NewSource(seed)}
}

// BuildReference emits run-groups until int(length) bases exist; the final
// run is truncated so the total is exact.
func (s *PoissonSimulator) BuildReference(length float64, model *transition.Model) (string, error) {
	n, err := coerceLength(length)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}

	samp := newSampler(model, s.src)
	cur, err := samp.next(transition.Start)
	if err != nil {
		return "", err
	}

	buf := make([]byte, 0, n)
	for {
		d, err := model.Lookup(string(cur))
		if err != nil {
			return "", err
		}
		self := d[transition.Index(cur)]

		run := 1
		switch {
		case self >= 1:
			// Degenerate self-loop: the base repeats forever.
			run = n - len(buf)
		case self > 0:
			pois := distuv.Poisson{Lambda: self / (1 - self), Src: s.src}
			run += int(pois.Rand())
		}
		for i := 0; i < run && len(buf) < n; i++ {
			buf = append(buf, cur)
		}
		if len(buf) >= n {
			return string(buf), nil
		}
		cur = sampleExcluding(d, cur, s.src)
	}
}

// sampleExcluding draws a base from d with skip's mass zeroed. Callers
// guarantee the remaining mass is positive.
func sampleExcluding(d transition.Dist, skip byte, src rand.Source) byte {
	w := make([]float64, len(d))
	copy(w, d[:])
	w[transition.Index(skip)] = 0
	cat := distuv.NewCategorical(w, src)
	return transition.Base(int(cat.Rand()))
}
