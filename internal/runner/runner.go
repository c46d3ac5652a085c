// Package runner fans independent per-line classifications out over a
// bounded worker pool and hands the results back in input order.
package runner

import (
	"github.com/juju/utils/v3/parallel"

	"github.com/ARomppainen/wunderpahkina-vol9/internal/lineca"
)

// Run classifies every line with at most workers concurrent tasks.
// Each task owns its own simulation history and writes into its own
// slot of the result slice, so the returned patterns line up with the
// input lines regardless of completion order.
func Run(lines []string, maxDepth, workers int) ([]lineca.Pattern, error) {
	if workers < 1 {
		workers = 1
	}
	patterns := make([]lineca.Pattern, len(lines))

	run := parallel.NewRun(workers)
	for i, line := range lines {
		i, line := i, line
		run.Do(func() error {
			patterns[i] = lineca.Classify(line, maxDepth)
			return nil
		})
	}
	if err := run.Wait(); err != nil {
		return nil, err
	}
	return patterns, nil
}
