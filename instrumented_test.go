package tally

import (
	"slices"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInstrumentedCounter_Observe(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ic := NewInstrumentedCounter("fruit", NewBayesianCounter[string, string](), zap.New(core))

	ic.Observe("round", "apple")
	ic.Observe("round", "orange")

	if got := ic.Counter().Total(); got != 2 {
		t.Errorf("Total() = %d, want 2", got)
	}
	entries := logs.FilterMessage("Observation recorded").All()
	if len(entries) != 2 {
		t.Fatalf("logged %d observation entries, want 2", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["counter"] != "fruit" {
		t.Errorf("counter field = %v, want fruit", fields["counter"])
	}
	if fields["label"] != "apple" {
		t.Errorf("label field = %v, want apple", fields["label"])
	}
}

func TestInstrumentedCounter_LabelRanking(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	inner := NewBayesianCounter[string, int]()
	inner.Observe(1, "a")
	inner.Observe(1, "b")
	inner.Observe(2, "b")

	ic := NewInstrumentedCounter("nums", inner, zap.New(core))
	got := ic.LabelRanking(1)
	want := inner.LabelRanking(1)
	if !slices.Equal(got, want) {
		t.Errorf("LabelRanking(1) = %v, want %v", got, want)
	}
	if logs.FilterMessage("Label ranking computed").Len() != 1 {
		t.Error("ranking was not logged")
	}
}

func TestInstrumentedCounter_NilLogger(t *testing.T) {
	ic := NewInstrumentedCounter[string, int]("quiet", NewBayesianCounter[string, int](), nil)
	ic.Observe(1, "a") // must not panic
	if got := ic.Counter().Total(); got != 1 {
		t.Errorf("Total() = %d, want 1", got)
	}
}
