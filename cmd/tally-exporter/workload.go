package main

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/tally"
)

// workload draws random values and feeds them into the counters. The core
// types are single-writer with no locks, so the workload owns a mutex to
// serialize its writer goroutine against scrape-time reads.
type workload struct {
	mu      sync.Mutex
	rng     *rand.Rand
	even    tally.ExactRatio
	prime   tally.ExactRatio
	counter *tally.InstrumentedCounter[string, int]
}

func newWorkload(seed int64, logger *zap.Logger) *workload {
	return &workload{
		rng: rand.New(rand.NewSource(seed)),
		counter: tally.NewInstrumentedCounter(
			"magnitude", tally.NewBayesianCounter[string, int](), logger,
		),
	}
}

// run ticks until ctx is cancelled.
func (w *workload) run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			w.step()
		}
	}
}

// step records one random value across all counters.
func (w *workload) step() {
	w.mu.Lock()
	defer w.mu.Unlock()

	n := w.rng.Intn(100)
	w.even.Observe(n%2 == 0)
	// Prior: only single-digit values enter the prime ratio at all.
	w.prime.ObserveWithPrior(n < 10, n == 2 || n == 3 || n == 5 || n == 7)

	label := "low"
	if n >= 50 {
		label = "high"
	}
	w.counter.Observe(n%10, label)
}

func (w *workload) evenRatio() tally.ExactRatio {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.even
}

func (w *workload) primeRatio() tally.ExactRatio {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.prime
}
