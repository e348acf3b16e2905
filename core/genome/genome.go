// core/genome/genome.go
package genome

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"genomesim-core/transition"
)

var ErrInvalidLength = errors.New("invalid reference length")

// Simulator produces a synthetic reference of exactly int(length) bases
// sampled under a transition model. Implementations own an instance-local
// random stream: distinct instances are independent and safe to use from
// different goroutines, a single instance is not.
type Simulator interface {
	BuildReference(length float64, model *transition.Model) (string, error)
}

// coerceLength truncates length toward zero. Negative or non-finite
// lengths are rejected; fractional lengths (e.g. 1e4 stored as float) are
// a defined conversion, not an error.
func coerceLength(length float64) (int, error) {
	if math.IsNaN(length) || math.IsInf(length, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidLength, length)
	}
	if length < 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidLength, length)
	}
	return int(length), nil
}

// sampler draws bases from a model's per-context categorical
// distributions, caching one distuv.Categorical per context seen.
type sampler struct {
	model *transition.Model
	src   rand.Source
	cats  map[string]distuv.Categorical
}

func newSampler(model *transition.Model, src rand.Source) *sampler {
	return &sampler{model: model, src: src, cats: make(map[string]distuv.Categorical, 8)}
}

func (s *sampler) next(ctx string) (byte, error) {
	cat, ok := s.cats[ctx]
	if !ok {
		d, err := s.model.Lookup(ctx)
		if err != nil {
			return 0, err
		}
		cat = distuv.NewCategorical(d[:], s.src)
		s.cats[ctx] = cat
	}
	return transition.Base(int(cat.Rand())), nil
}

// advance appends b to ctx and keeps the trailing order bases. The Start
// sentinel is dropped once the first base exists.
func advance(ctx string, b byte, order int) string {
	if ctx == transition.Start {
		ctx = ""
	}
	ctx += string(b)
	if len(ctx) > order {
		ctx = ctx[len(ctx)-order:]
	}
	return ctx
}
