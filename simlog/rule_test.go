package simlog

import (
	"math"
	"testing"
)

func TestRule_Apply_LastOccurrenceWins(t *testing.T) {
	// GIVEN a log with a periodic snapshot followed by the final summary
	text := "CPU 0 cumulative IPC: 1.250 instructions: 1000\n" +
		"heartbeat\n" +
		"CPU 0 cumulative IPC: 1.500 instructions: 2000\n"

	// WHEN the IPC rule runs
	var got float64
	for _, r := range DefaultRules {
		if r.Metric == MetricIPC {
			got = r.Apply(text)
		}
	}

	// THEN the final cumulative value is extracted
	if got != 1.500 {
		t.Fatalf("expected 1.500, got %v", got)
	}
}

func TestRule_Apply_FirstPatternPreferred(t *testing.T) {
	// GIVEN a log with both a qualified and an unqualified IPC record
	text := "cumulative IPC: 0.900\nCPU 0 cumulative IPC: 1.100\n"

	// WHEN the IPC rule runs
	var got float64
	for _, r := range DefaultRules {
		if r.Metric == MetricIPC {
			got = r.Apply(text)
		}
	}

	// THEN the CPU 0 qualified record wins over the bare form
	if got != 1.100 {
		t.Fatalf("expected 1.100, got %v", got)
	}
}

func TestRule_Apply_NoMatchIsNaN(t *testing.T) {
	// GIVEN text without any recognizable record
	text := "nothing of interest here"

	// WHEN every default rule runs
	for _, r := range DefaultRules {
		got := r.Apply(text)

		// THEN the result is NaN, never zero
		if !math.IsNaN(got) {
			t.Errorf("rule %s: expected NaN, got %v", r.Metric, got)
		}
	}
}
