package runner

import (
	"testing"

	"github.com/ARomppainen/wunderpahkina-vol9/internal/lineca"
)

// Results must line up with input lines no matter how the pool
// schedules the tasks.
func TestRunPreservesOrder(t *testing.T) {
	base := []struct {
		line string
		want lineca.Pattern
	}{
		{"##.######", lineca.Gliding},
		{"#######", lineca.Blinking},
		{"########", lineca.Vanishing},
		{"###.#....#.###", lineca.Other},
		{"", lineca.Vanishing},
	}

	// Repeat the fixtures so the pool is saturated and completion
	// order diverges from submission order.
	var lines []string
	var want []lineca.Pattern
	for i := 0; i < 40; i++ {
		entry := base[i%len(base)]
		lines = append(lines, entry.line)
		want = append(want, entry.want)
	}

	for _, workers := range []int{1, 3, 16} {
		got, err := Run(lines, lineca.DefaultMaxDepth, workers)
		if err != nil {
			t.Fatalf("Run with %d workers: %v", workers, err)
		}
		if len(got) != len(want) {
			t.Fatalf("Run with %d workers returned %d results, want %d", workers, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("workers=%d line %d (%q): got %v, want %v", workers, i, lines[i], got[i], want[i])
			}
		}
	}
}

func TestRunNoLines(t *testing.T) {
	got, err := Run(nil, lineca.DefaultMaxDepth, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d results for empty input", len(got))
	}
}

func TestRunClampsWorkers(t *testing.T) {
	got, err := Run([]string{"#######"}, lineca.DefaultMaxDepth, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != lineca.Blinking {
		t.Fatalf("got %v, want [blinking]", got)
	}
}
