package tally

import (
	"cmp"
	"slices"
)

// BayesianCounter is a two-level frequency table, label → example → count,
// plus a running total of every observation. Probabilities are derived on
// demand from the current counts as ExactRatio values, with no caching, so
// repeated queries always reflect the latest state.
//
// Keys are stored by value and must be ordered (cmp.Ordered); they render
// with %v in diagnostics. The counter holds its maps exclusively and does
// no internal locking: it assumes a single writer, and sharing it across
// goroutines requires external synchronization.
type BayesianCounter[L cmp.Ordered, E cmp.Ordered] struct {
	counts map[L]map[E]uint64
	total  uint64
}

// NewBayesianCounter returns an empty counter.
func NewBayesianCounter[L cmp.Ordered, E cmp.Ordered]() *BayesianCounter[L, E] {
	return &BayesianCounter[L, E]{counts: make(map[L]map[E]uint64)}
}

// Observe records one (example, label) co-occurrence: exactly one joint
// cell and the running total are incremented by one.
func (c *BayesianCounter[L, E]) Observe(example E, label L) {
	cell := c.counts[label]
	if cell == nil {
		cell = make(map[E]uint64)
		c.counts[label] = cell
	}
	cell[example]++
	c.total++
}

// Count returns the raw joint count for (example, label), 0 if absent.
func (c *BayesianCounter[L, E]) Count(example E, label L) uint64 {
	return c.counts[label][example]
}

// LabelCount returns the number of observations recorded for label across
// all examples, 0 if the label was never observed.
func (c *BayesianCounter[L, E]) LabelCount(label L) uint64 {
	var sum uint64
	for _, n := range c.counts[label] {
		sum += n
	}
	return sum
}

// ExampleCount returns the number of observations of example across all
// known labels. Cost is linear in the number of distinct labels.
func (c *BayesianCounter[L, E]) ExampleCount(example E) uint64 {
	var sum uint64
	for _, cell := range c.counts {
		sum += cell[example]
	}
	return sum
}

// Total returns the number of observations ever recorded. It always equals
// the sum of every joint cell.
func (c *BayesianCounter[L, E]) Total() uint64 {
	return c.total
}

// Labels returns every label ever observed, in ascending order.
func (c *BayesianCounter[L, E]) Labels() []L {
	labels := make([]L, 0, len(c.counts))
	for l := range c.counts {
		labels = append(labels, l)
	}
	slices.Sort(labels)
	return labels
}

// PLabel returns the marginal probability of label: label_count/total.
func (c *BayesianCounter[L, E]) PLabel(label L) ExactRatio {
	return Ratio(c.LabelCount(label), c.total)
}

// PExample returns the marginal probability of example: example_count/total.
func (c *BayesianCounter[L, E]) PExample(example E) ExactRatio {
	return Ratio(c.ExampleCount(example), c.total)
}

// PExampleGivenLabel returns the conditional probability of example within
// the observations for label: joint_count/label_count. A never-observed
// label yields a zero-denominator ratio (NaN on Float64), not an error.
func (c *BayesianCounter[L, E]) PExampleGivenLabel(example E, label L) ExactRatio {
	return Ratio(c.Count(example, label), c.LabelCount(label))
}

// PLabelGivenExample applies Bayes' rule using the ExactRatio operators
// verbatim: P(example|label) · P(label) / P(example). The result's raw
// numerator and denominator carry the full unsimplified product of the
// three underlying ratios; that is intentional, the counts remain auditable.
func (c *BayesianCounter[L, E]) PLabelGivenExample(label L, example E) ExactRatio {
	return c.PExampleGivenLabel(example, label).Mul(c.PLabel(label)).Div(c.PExample(example))
}

// LabelRanking returns every known label ordered by unnormalized evidence
// for example, least likely first. The score for a label is
// P(example|label) with its numerator scaled by the label's total count
// (ScaleMatches), and scores compare under the ExactRatio order, including
// its equal-observations quirk. Tied labels keep their ascending key order,
// so the result is deterministic and stable across repeated calls while no
// Observe intervenes.
func (c *BayesianCounter[L, E]) LabelRanking(example E) []L {
	labels := c.Labels()
	scores := make([]ExactRatio, len(labels))
	for i, l := range labels {
		scores[i] = c.PExampleGivenLabel(example, l).ScaleMatches(c.LabelCount(l))
	}

	order := make([]int, len(labels))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return scores[a].Cmp(scores[b])
	})

	ranked := make([]L, len(labels))
	for i, j := range order {
		ranked[i] = labels[j]
	}
	return ranked
}
