package cryptor

import (
	"errors"
	"runtime"

	"github.com/sourcegraph/conc/pool"
)

// ParallelConfig controls how work-stealing parallelism is applied
// across the package: ChaCha20/XChaCha20 keystream generation chunks
// independent 64-byte blocks, and the prime range sieve (PrimeRange)
// tests independent candidates. Below MinItemsForParallel, work runs
// sequentially on the calling goroutine — pool setup overhead isn't
// worth it for a handful of items.
type ParallelConfig struct {
	Enabled             bool
	MaxWorkers          int
	MinItemsForParallel int
}

// Validate checks that the configuration's numeric fields are sane.
func (p *ParallelConfig) Validate() error {
	if !p.Enabled {
		return nil
	}
	if p.MaxWorkers < 0 {
		return errors.New("parallel max workers cannot be negative")
	}
	if p.MaxWorkers > 1024 {
		return errors.New("parallel max workers must not exceed 1024")
	}
	if p.MinItemsForParallel < 1 {
		return errors.New("parallel min items threshold must be at least 1")
	}
	return nil
}

// DefaultParallelConfig returns the package's default parallelism
// policy: one worker per CPU, parallelizing once there are at least 4
// independent items of work.
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		Enabled:             true,
		MaxWorkers:          runtime.NumCPU(),
		MinItemsForParallel: 4,
	}
}

var globalParallelConfig = DefaultParallelConfig()

// SetParallelConfig replaces the package-wide parallelism policy used
// by ChaCha20/XChaCha20 keystream generation and the prime range
// sieve. Callers that need per-call control should prefer running
// those operations with a small input and looping themselves.
func SetParallelConfig(cfg ParallelConfig) {
	globalParallelConfig = cfg
}

// parallelRange calls fn(i) for every i in [0, n), fanning work out
// across a bounded worker pool once n reaches the configured
// threshold, and running sequentially otherwise. A panic inside fn
// propagates out of Wait() rather than crashing the process silently,
// which is the whole reason this sits on top of conc's pool instead of
// raw goroutines.
func parallelRange(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	cfg := globalParallelConfig
	if !cfg.Enabled || n < cfg.MinItemsForParallel {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	workers := cfg.MaxWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	p := pool.New().WithMaxGoroutines(workers)
	for i := 0; i < n; i++ {
		i := i
		p.Go(func() {
			fn(i)
		})
	}
	p.Wait()
}
