// core/genome/markov.go
package genome

import (
	"strings"

	"golang.org/x/exp/rand"

	"genomesim-core/transition"
)

// MarkovSimulator emits one base per step of a Markov chain over the
// model's contexts.
type MarkovSimulator struct {
	src rand.Source
}

// NewMarkov returns a Markov-chain simulator with its own random stream.
// The same seed and arguments reproduce the same reference.
func NewMarkov(seed uint64) *MarkovSimulator {
	return &MarkovSimulator{src: rand.NewSource(seed)}
}

// BuildReference samples int(length) bases: the first from the Start
// context, each following one from the distribution of the trailing
// context, which advances to include the base just emitted.
func (s *MarkovSimulator) BuildReference(length float64, model *transition.Model) (string, error) {
	n, err := coerceLength(length)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}

	samp := newSampler(model, s.src)
	var sb strings.Builder
	sb.Grow(n)
	ctx := transition.Start
	for i := 0; i < n; i++ {
		b, err := samp.next(ctx)
		if err != nil {
			return "", err
		}
		sb.WriteByte(b)
		ctx = advance(ctx, b, model.Order())
	}
	return sb.String(), nil
}
