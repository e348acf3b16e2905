// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"genomesim-core/genome"
	"genomesim-core/seqstats"
	"genomesim-core/transition"
)

// Config controls the generation pipeline.
type Config struct {
	Simulator string    // cli.SimMarkov or cli.SimPoisson
	Lengths   []float64 // requested lengths, one record each
	Count     int       // replicates per length (>=1)
	Seed      uint64    // base seed; record i uses Seed+uint64(i)
	Name      string    // record ID prefix
	Threads   int       // worker goroutines (>=1)
}

// Reference is one generated record plus its composition summary.
type Reference struct {
	Index     int
	ID        string
	Simulator string
	Seed      uint64
	Requested float64
	Seq       string
	Sum       seqstats.Summary
}

func newSimulator(variant string, seed uint64) genome.Simulator {
	if variant == "poisson" {
		return genome.NewPoisson(seed)
	}
	return genome.NewMarkov(seed)
}

// Generate builds Count records per requested length under model, in
// deterministic index order. The first error cancels outstanding work and
// is returned; no partial result set accompanies it.
func Generate(ctx context.Context, cfg Config, model *transition.Model) ([]Reference, error) {
	if cfg.Count < 1 {
		cfg.Count = 1
	}
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	total := len(cfg.Lengths) * cfg.Count
	if total == 0 {
		return nil, nil
	}

	refs := make([]Reference, total)
	jobs := make(chan int, cfg.Threads*2)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}
				length := cfg.Lengths[idx/cfg.Count]
				seed := cfg.Seed + uint64(idx)
				sim := newSimulator(cfg.Simulator, seed)
				seq, err := sim.BuildReference(length, model)
				if err != nil {
					fail(fmt.Errorf("record %d: %w", idx+1, err))
					return
				}
				refs[idx] = Reference{
					Index:     idx,
					ID:        fmt.Sprintf("%s_%d", cfg.Name, idx+1),
					Simulator: cfg.Simulator,
					Seed:      seed,
					Requested: length,
					Seq:       seq,
					Sum:       seqstats.Summarize(seq),
				}
			}
		}()
	}

feed:
	for i := 0; i < total; i++ {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return refs, nil
}
