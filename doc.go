// Package tally provides exact-arithmetic observation counting and a small
// Bayesian bookkeeping layer on top of it.
//
// An ExactRatio represents a set of counted observations: how many trials
// were recorded and how many of them satisfied a condition. If we pull 20
// marbles from a jar and 12 of them are red, Ratio(12, 20) is that evidence.
// Unlike a rational-number type, an ExactRatio never reduces to lowest
// terms: the raw counts are the point, so 12/20 stays 12/20. Ratios can be
// merged, compared and rendered without ever collapsing the pair into a
// lossy floating-point value.
//
// A BayesianCounter accumulates joint (example, label) counts and derives
// marginal and conditional probabilities from them as ExactRatio values,
// including a label ranking for a given example. All derivation happens at
// query time with integer arithmetic only.
//
// Neither type performs I/O, locking or allocation beyond its maps; both
// assume a single writer. See examples/ for runnable walkthroughs and
// pkg/promexport for the Prometheus bridge.
package tally
