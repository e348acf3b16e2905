package genome

import (
	"errors"
	"math"
	"strings"
	"testing"

	"genomesim-core/transition"
)

func nan() float64 { return math.NaN() }
func inf() float64 { return math.Inf(1) }

func simulators(seed uint64) map[string]Simulator {
	return map[string]Simulator{
		"markov":  NewMarkov(seed),
		"poisson": NewPoisson(seed),
	}
}

// Generated references must have exactly int(length) bases, including for
// fractional inputs such as 1e4 passed through float arithmetic.
func TestBuildReferenceLength(t *testing.T) {
	lengths := []struct {
		in   float64
		want int
	}{
		{100, 100},
		{2000, 2000},
		{1e4, 10000},
		{99.9, 99}, // truncation, not rounding
	}
	for name, sim := range simulators(1) {
		for _, l := range lengths {
			ref, err := sim.BuildReference(l.in, transition.HighGCHomopolymeric)
			if err != nil {
				t.Fatalf("%s(%v): %v", name, l.in, err)
			}
			if len(ref) != l.want {
				t.Errorf("%s(%v): len = %d, want %d", name, l.in, len(ref), l.want)
			}
		}
	}
}

func TestBuildReferenceZeroLength(t *testing.T) {
	for name, sim := range simulators(1) {
		ref, err := sim.BuildReference(0, transition.HighGCHomopolymeric)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if ref != "" {
			t.Errorf("%s: got %q, want empty", name, ref)
		}
	}
}

func TestBuildReferenceInvalidLength(t *testing.T) {
	bad := []float64{-5, -0.1, nan(), inf()}
	for name, sim := range simulators(1) {
		for _, l := range bad {
			if _, err := sim.BuildReference(l, transition.HighGCHomopolymeric); !errors.Is(err, ErrInvalidLength) {
				t.Errorf("%s(%v): got %v, want ErrInvalidLength", name, l, err)
			}
		}
	}
}

func TestBuildReferenceAlphabet(t *testing.T) {
	for name, sim := range simulators(7) {
		ref, err := sim.BuildReference(5000, transition.HighGCHomopolymeric)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < len(ref); i++ {
			if transition.Index(ref[i]) < 0 {
				t.Fatalf("%s: non-ACGT byte %q at %d", name, ref[i], i)
			}
		}
	}
}

// Identical seed and arguments must reproduce the sequence exactly;
// different seeds should not.
func TestBuildReferenceDeterminism(t *testing.T) {
	build := func(sim Simulator) string {
		ref, err := sim.BuildReference(4000, transition.HighGCHomopolymeric)
		if err != nil {
			t.Fatal(err)
		}
		return ref
	}
	if a, b := build(NewMarkov(42)), build(NewMarkov(42)); a != b {
		t.Error("markov: same seed produced different references")
	}
	if a, b := build(NewMarkov(42)), build(NewMarkov(43)); a == b {
		t.Error("markov: different seeds produced identical references")
	}
	if a, b := build(NewPoisson(42)), build(NewPoisson(42)); a != b {
		t.Error("poisson: same seed produced different references")
	}
	if a, b := build(NewPoisson(42)), build(NewPoisson(43)); a == b {
		t.Error("poisson: different seeds produced identical references")
	}
}

// A model that can reach a context it does not define fails the whole
// call; no partial reference is returned.
func TestBuildReferenceUnknownContext(t *testing.T) {
	m, err := transition.New(map[string]transition.Dist{
		transition.Start: {1, 0, 0, 0}, // always A first
		"A":              {0, 1, 0, 0}, // then C, whose context is undefined
	})
	if err != nil {
		t.Fatal(err)
	}
	for name, sim := range simulators(1) {
		ref, err := sim.BuildReference(50, m)
		if !errors.Is(err, transition.ErrUnknownContext) {
			t.Errorf("%s: got %v, want ErrUnknownContext", name, err)
		}
		if ref != "" {
			t.Errorf("%s: partial reference %q returned with error", name, ref)
		}
	}
}

// Order-2 model: contexts advance through trailing 2-mers.
func TestMarkovHigherOrder(t *testing.T) {
	uniform := transition.Dist{0.25, 0.25, 0.25, 0.25}
	m, err := transition.New(
		map[string]transition.Dist{transition.Start: uniform, "GC": {0, 0, 1, 0}},
		transition.WithFallback(uniform),
	)
	if err != nil {
		t.Fatal(err)
	}
	ref, err := NewMarkov(3).BuildReference(3000, m)
	if err != nil {
		t.Fatal(err)
	}
	if len(ref) != 3000 {
		t.Fatalf("len = %d", len(ref))
	}
	// Every GC must be followed by G under the forced transition.
	for i := 0; i+2 < len(ref); i++ {
		if ref[i] == 'G' && ref[i+1] == 'C' && ref[i+2] != 'G' {
			t.Fatalf("position %d: GC followed by %c, want G", i, ref[i+2])
		}
	}
	if !strings.Contains(ref, "GC") {
		t.Skip("no GC dinucleotide sampled; seed choice degenerate")
	}
}
