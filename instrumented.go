package tally

import (
	"cmp"

	"go.uber.org/zap"
)

// InstrumentedCounter decorates a BayesianCounter with structured logging.
// The wrapped counter stays pure; this layer exists for callers that want
// observation traffic and ranking activity visible in logs. It adds no
// synchronization: the single-writer contract of the inner counter carries
// over unchanged.
type InstrumentedCounter[L cmp.Ordered, E cmp.Ordered] struct {
	inner  *BayesianCounter[L, E]
	name   string
	logger *zap.Logger
}

// NewInstrumentedCounter wraps counter under the given name. A nil logger
// falls back to zap.NewNop.
func NewInstrumentedCounter[L cmp.Ordered, E cmp.Ordered](
	name string, counter *BayesianCounter[L, E], logger *zap.Logger,
) *InstrumentedCounter[L, E] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InstrumentedCounter[L, E]{inner: counter, name: name, logger: logger}
}

// Counter returns the wrapped counter for direct queries.
func (ic *InstrumentedCounter[L, E]) Counter() *BayesianCounter[L, E] {
	return ic.inner
}

// Observe records the observation on the inner counter and logs it.
func (ic *InstrumentedCounter[L, E]) Observe(example E, label L) {
	ic.inner.Observe(example, label)
	ic.logger.Debug("Observation recorded",
		zap.String("counter", ic.name),
		zap.Any("label", label),
		zap.Any("example", example),
		zap.Uint64("total", ic.inner.Total()),
	)
}

// LabelRanking delegates to the inner counter and logs the computed
// ranking size.
func (ic *InstrumentedCounter[L, E]) LabelRanking(example E) []L {
	ranking := ic.inner.LabelRanking(example)
	ic.logger.Debug("Label ranking computed",
		zap.String("counter", ic.name),
		zap.Any("example", example),
		zap.Int("labels", len(ranking)),
	)
	return ranking
}
