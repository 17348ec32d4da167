package tally

import (
	"cmp"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// ExactRatio is a pair of raw observation counters: how many trials were
// recorded, and how many of them matched the measured condition.
//
// It is never reduced to lowest terms. Ratio(1, 2) and Ratio(2, 4) convert
// and order equal but stay observably distinct in their raw counts, because
// the counts themselves are the evidence. The zero value is an empty
// observation set, ready to use.
//
// ExactRatio is a small value type; copies never alias. Counter overflow is
// not guarded: arithmetic on counts near the uint64 limit wraps.
type ExactRatio struct {
	matches      uint64
	observations uint64
}

// Ratio constructs an ExactRatio directly from raw counts. No validation is
// performed: matches > observations is representable and preserved as-is.
func Ratio(matches, observations uint64) ExactRatio {
	return ExactRatio{matches: matches, observations: observations}
}

// Observe records one trial. conditionMet marks it as a match.
func (r *ExactRatio) Observe(conditionMet bool) {
	r.observations++
	if conditionMet {
		r.matches++
	}
}

// ObserveWithPrior records one trial gated by a prior condition. A trial
// that fails the prior is excluded entirely: it reaches neither the
// numerator nor the denominator. A trial that passes the prior behaves
// like Observe(posteriorMet).
func (r *ExactRatio) ObserveWithPrior(priorMet, posteriorMet bool) {
	if priorMet {
		r.Observe(posteriorMet)
	}
}

// Matches returns the raw match count.
func (r ExactRatio) Matches() uint64 { return r.matches }

// Observations returns the raw observation count.
func (r ExactRatio) Observations() uint64 { return r.observations }

// Defined reports whether at least one observation has been recorded.
// Callers that cannot tolerate NaN must check this before Float64.
func (r ExactRatio) Defined() bool {
	return r.observations > 0
}

// Float64 returns matches/observations as IEEE-754 division. With zero
// observations the result is NaN; that is the contract, not an error, and
// it propagates through downstream arithmetic instead of failing.
func (r ExactRatio) Float64() float64 {
	return float64(r.matches) / float64(r.observations)
}

// Decimal returns the ratio as an exact decimal quotient (rounded to
// decimal.DivisionPrecision digits) for callers that must stay out of
// binary floats. ok is false when the ratio is undefined: decimals have no
// NaN to propagate.
func (r ExactRatio) Decimal() (d decimal.Decimal, ok bool) {
	if !r.Defined() {
		return decimal.Decimal{}, false
	}
	num := decimal.NewFromBigInt(new(big.Int).SetUint64(r.matches), 0)
	den := decimal.NewFromBigInt(new(big.Int).SetUint64(r.observations), 0)
	return num.Div(den), true
}

// String renders the raw counts together with a two-digit percentage:
// "15/100 (15.00%)". An undefined ratio renders the NaN percentage
// verbatim, e.g. "0/0 (NaN%)".
func (r ExactRatio) String() string {
	return fmt.Sprintf("%d/%d (%.2f%%)", r.matches, r.observations, 100*r.Float64())
}

// Add merges two independently counted observation sets componentwise:
// 20/100 + 4/20 = 24/120. This is evidence merging, not fraction addition.
func (r ExactRatio) Add(other ExactRatio) ExactRatio {
	return ExactRatio{
		matches:      r.matches + other.matches,
		observations: r.observations + other.observations,
	}
}

// Mul multiplies componentwise: matches with matches, observations with
// observations. Used to chain independent probabilities; it is not a real
// multiplication of the two fractions unless the caller accounts for the
// denominators.
func (r ExactRatio) Mul(other ExactRatio) ExactRatio {
	return ExactRatio{
		matches:      r.matches * other.matches,
		observations: r.observations * other.observations,
	}
}

// Div divides by cross multiplication: (a/b) / (c/d) = (a·d)/(b·c),
// keeping everything in integer arithmetic.
func (r ExactRatio) Div(other ExactRatio) ExactRatio {
	return ExactRatio{
		matches:      r.matches * other.observations,
		observations: r.observations * other.matches,
	}
}

// ScaleMatches multiplies the match count only, leaving the denominator
// untouched. It weights a conditional probability by a raw count for
// ranking comparisons (see BayesianCounter.LabelRanking) and is not a
// general-purpose scalar multiply.
func (r ExactRatio) ScaleMatches(n uint64) ExactRatio {
	return ExactRatio{matches: r.matches * n, observations: r.observations}
}

// Cmp orders two ratios using integer arithmetic only, returning -1, 0 or
// +1. The order is total but deliberately not the real-valued ratio order:
//
//   - both sides with zero matches are order-equal;
//   - a side with zero matches sorts strictly below a side with matches;
//   - sides with equal observations are order-equal regardless of their
//     match counts — a known quirk, kept because downstream rankings
//     depend on it;
//   - otherwise cross multiplication decides:
//     r.matches·other.observations vs other.matches·r.observations.
//
// Order-equality is weaker than ==. Ratio(1, 2) and Ratio(2, 4) are
// order-equal but not equal; equality stays an exact field-by-field
// comparison via the == operator.
func (r ExactRatio) Cmp(other ExactRatio) int {
	switch {
	case r.matches == 0 && other.matches == 0:
		return 0
	case r.matches == 0:
		return -1
	case other.matches == 0:
		return 1
	case r.observations == other.observations:
		return 0
	default:
		return cmp.Compare(r.matches*other.observations, other.matches*r.observations)
	}
}

// Less reports whether r sorts strictly before other under Cmp.
func (r ExactRatio) Less(other ExactRatio) bool {
	return r.Cmp(other) < 0
}
