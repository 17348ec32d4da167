package tally

import (
	"math"
	"testing"
)

func TestExactRatio_ZeroValue(t *testing.T) {
	var r ExactRatio
	if r.Defined() {
		t.Error("zero ratio reports Defined() = true, want false")
	}
	if r.Matches() != 0 || r.Observations() != 0 {
		t.Errorf("zero ratio = %d/%d, want 0/0", r.Matches(), r.Observations())
	}

	r.Observe(false)
	if !r.Defined() {
		t.Error("Defined() = false after one observation, want true")
	}
}

func TestExactRatio_Observe(t *testing.T) {
	var r ExactRatio
	for i := 0; i < 100; i++ {
		r.Observe(i%7 == 0)
	}
	if r.Matches() != 15 {
		t.Errorf("matches = %d, want 15", r.Matches())
	}
	if r.Observations() != 100 {
		t.Errorf("observations = %d, want 100", r.Observations())
	}
	if r.Float64() != 0.15 {
		t.Errorf("Float64() = %v, want 0.15", r.Float64())
	}
}

func TestExactRatio_ObserveWithPrior(t *testing.T) {
	var r ExactRatio
	words := []string{"bear", "zoo", "spin", "", "tribe", "", "grip", "lion", "", "cobra", "ape"}
	for _, w := range words {
		hasA := false
		for _, c := range w {
			if c == 'a' {
				hasA = true
			}
		}
		r.ObserveWithPrior(len(w) > 0, hasA)
	}
	if got := r.String(); got != "3/8 (37.50%)" {
		t.Errorf("String() = %q, want %q", got, "3/8 (37.50%)")
	}
}

func TestExactRatio_ObserveWithPrior_FailedPriorIsNoop(t *testing.T) {
	r := Ratio(3, 8)
	r.ObserveWithPrior(false, true)
	r.ObserveWithPrior(false, false)
	if r != Ratio(3, 8) {
		t.Errorf("ratio = %v after failed priors, want 3/8 unchanged", r)
	}
}

func TestExactRatio_Float64_Undefined(t *testing.T) {
	var r ExactRatio
	if !math.IsNaN(r.Float64()) {
		t.Errorf("Float64() of undefined ratio = %v, want NaN", r.Float64())
	}
}

func TestExactRatio_Float64_ExactDivision(t *testing.T) {
	tests := []struct {
		matches, observations uint64
	}{
		{3, 8},
		{1, 3},
		{20, 120},
		{7, 7},
	}
	for _, tt := range tests {
		got := Ratio(tt.matches, tt.observations).Float64()
		want := float64(tt.matches) / float64(tt.observations)
		if got != want {
			t.Errorf("Ratio(%d, %d).Float64() = %v, want %v", tt.matches, tt.observations, got, want)
		}
	}
}

func TestExactRatio_String(t *testing.T) {
	tests := []struct {
		matches, observations uint64
		want                  string
	}{
		{15, 100, "15/100 (15.00%)"},
		{3, 8, "3/8 (37.50%)"},
		{20, 120, "20/120 (16.67%)"},
		{12, 20, "12/20 (60.00%)"},
		{0, 5, "0/5 (0.00%)"},
		{0, 0, "0/0 (NaN%)"},
		{3, 0, "3/0 (+Inf%)"},
	}
	for _, tt := range tests {
		if got := Ratio(tt.matches, tt.observations).String(); got != tt.want {
			t.Errorf("Ratio(%d, %d).String() = %q, want %q", tt.matches, tt.observations, got, tt.want)
		}
	}
}

func TestExactRatio_Add(t *testing.T) {
	got := Ratio(20, 100).Add(Ratio(4, 20))
	if got != Ratio(24, 120) {
		t.Errorf("20/100 + 4/20 = %v, want 24/120", got)
	}

	// Componentwise, never reduced.
	got = Ratio(1, 2).Add(Ratio(1, 2))
	if got != Ratio(2, 4) {
		t.Errorf("1/2 + 1/2 = %v, want 2/4 (no reduction)", got)
	}
}

func TestExactRatio_Mul(t *testing.T) {
	got := Ratio(2, 10).Mul(Ratio(10, 16))
	if got != Ratio(20, 160) {
		t.Errorf("2/10 * 10/16 = %v, want 20/160", got)
	}
}

func TestExactRatio_Div(t *testing.T) {
	got := Ratio(20, 160).Div(Ratio(3, 16))
	if got != Ratio(320, 480) {
		t.Errorf("(20/160) / (3/16) = %v, want 320/480", got)
	}
}

func TestExactRatio_ScaleMatches(t *testing.T) {
	got := Ratio(2, 10).ScaleMatches(10)
	if got != Ratio(20, 10) {
		t.Errorf("ScaleMatches(10) = %v, want 20/10 (denominator untouched)", got)
	}
}

func TestExactRatio_Cmp(t *testing.T) {
	tests := []struct {
		name string
		a, b ExactRatio
		want int
	}{
		{"both zero matches", Ratio(0, 5), Ratio(0, 0), 0},
		{"zero matches sorts first", Ratio(0, 100), Ratio(1, 1000), -1},
		{"nonzero beats zero", Ratio(1, 1000), Ratio(0, 100), 1},
		{"equal observations quirk", Ratio(1, 10), Ratio(9, 10), 0},
		{"cross multiply less", Ratio(3, 10), Ratio(3, 7), -1},
		{"cross multiply greater", Ratio(3, 7), Ratio(3, 10), 1},
		{"order equal, not field equal", Ratio(1, 2), Ratio(2, 4), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cmp(tt.b); got != tt.want {
				t.Errorf("%v.Cmp(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestExactRatio_CrossMultiplicationProperty(t *testing.T) {
	pairs := []struct{ a, b ExactRatio }{
		{Ratio(3, 10), Ratio(3, 7)},
		{Ratio(15, 100), Ratio(5, 20)},
		{Ratio(2, 3), Ratio(7, 11)},
	}
	for _, p := range pairs {
		wantLess := p.a.Matches()*p.b.Observations() < p.b.Matches()*p.a.Observations()
		if got := p.a.Less(p.b); got != wantLess {
			t.Errorf("%v.Less(%v) = %v, want %v", p.a, p.b, got, wantLess)
		}
	}
}

func TestExactRatio_EqualityIsFieldwise(t *testing.T) {
	if Ratio(1, 2) == Ratio(2, 4) {
		t.Error("1/2 == 2/4, want distinct raw counts to compare unequal")
	}
	if Ratio(1, 2).Cmp(Ratio(2, 4)) != 0 {
		t.Error("1/2 and 2/4 are not order-equal, want Cmp = 0")
	}
}

func TestExactRatio_Decimal(t *testing.T) {
	d, ok := Ratio(3, 8).Decimal()
	if !ok {
		t.Fatal("Decimal() not ok for defined ratio")
	}
	if d.String() != "0.375" {
		t.Errorf("Decimal() = %s, want 0.375", d.String())
	}

	if _, ok := Ratio(0, 0).Decimal(); ok {
		t.Error("Decimal() ok for undefined ratio, want false")
	}
}
