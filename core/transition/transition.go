// core/transition/transition.go
package transition

import (
	"errors"
	"fmt"
	"math"
)

// Alphabet is the fixed nucleotide alphabet, in distribution order.
const Alphabet = "ACGT"

// Start is the start-of-sequence context: the distribution looked up for
// position zero, before any base has been emitted.
const Start = "^"

// sumTol is the tolerance for the per-context sum-to-1 check.
const sumTol = 1e-6

var (
	ErrInvalidModel   = errors.New("invalid transition model")
	ErrUnknownContext = errors.New("unknown context")
)

// Dist is a probability distribution over the next base, indexed in
// Alphabet order (A, C, G, T).
type Dist [4]float64

// Index returns the Alphabet position of base b, or -1 for anything else.
func Index(b byte) int {
	switch b {
	case 'A':
		return 0
	case 'C':
		return 1
	case 'G':
		return 2
	case 'T':
		return 3
	}
	return -1
}

// Base returns the base at Alphabet position i.
func Base(i int) byte { return Alphabet[i] }

// Validate checks non-negativity and that the probabilities sum to 1
// within tolerance.
func (d Dist) Validate() error {
	sum := 0.0
	for i, p := range d {
		if math.IsNaN(p) || p < 0 {
			return fmt.Errorf("%w: probability %v for base %c", ErrInvalidModel, p, Alphabet[i])
		}
		sum += p
	}
	if math.Abs(sum-1) > sumTol {
		return fmt.Errorf("%w: probabilities sum to %v, want 1", ErrInvalidModel, sum)
	}
	return nil
}

// Model maps a context (the trailing k emitted bases, or Start) to the
// distribution of the next base. Immutable after New; safe to share
// read-only across any number of generation calls.
type Model struct {
	order    int
	table    map[string]Dist
	fallback *Dist
}

// Option configures a Model at construction time.
type Option func(*Model)

// WithFallback installs d as the distribution returned for contexts absent
// from the table. Without it, Lookup of an absent context fails.
func WithFallback(d Dist) Option {
	return func(m *Model) {
		cp := d
		m.fallback = &cp
	}
}

// New builds a validated Model from table. Every context's distribution
// (and the fallback, if any) must pass Dist.Validate.
func New(table map[string]Dist, opts ...Option) (*Model, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrInvalidModel)
	}
	m := &Model{order: 1, table: make(map[string]Dist, len(table))}
	for ctx, d := range table {
		if ctx == "" {
			return nil, fmt.Errorf("%w: empty context", ErrInvalidModel)
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("context %q: %w", ctx, err)
		}
		if ctx != Start {
			for i := 0; i < len(ctx); i++ {
				if Index(ctx[i]) < 0 {
					return nil, fmt.Errorf("%w: context %q contains non-ACGT base", ErrInvalidModel, ctx)
				}
			}
			if len(ctx) > m.order {
				m.order = len(ctx)
			}
		}
		m.table[ctx] = d
	}
	for _, o := range opts {
		o(m)
	}
	if m.fallback != nil {
		if err := m.fallback.Validate(); err != nil {
			return nil, fmt.Errorf("fallback: %w", err)
		}
	}
	return m, nil
}

// MustNew is New for package-level presets; it panics on invalid tables.
func MustNew(table map[string]Dist, opts ...Option) *Model {
	m, err := New(table, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Order is the model order: the longest non-sentinel context length.
func (m *Model) Order() int { return m.order }

// Lookup returns the next-base distribution for ctx, or the fallback when
// one is configured and ctx is absent.
func (m *Model) Lookup(ctx string) (Dist, error) {
	if d, ok := m.table[ctx]; ok {
		return d, nil
	}
	if m.fallback != nil {
		return *m.fallback, nil
	}
	return Dist{}, fmt.Errorf("%w: %q", ErrUnknownContext, ctx)
}
