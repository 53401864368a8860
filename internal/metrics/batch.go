// internal/metrics/batch.go
package metrics

import (
	"sync"
	"time"

	"github.com/tracelens/tracelens/internal/logging"
	"github.com/tracelens/tracelens/internal/trace"
)

// Run loads every trace file, analyzes them in parallel and assembles the
// batch result. Loading stays sequential so the first malformed file
// aborts the run before any output exists; analysis fans out with one
// goroutine per trace writing its own slot of the results slice.
func Run(files []string, opts Options) (Batch, error) {
	traces := make([]trace.File, 0, len(files))
	for _, path := range files {
		tf, err := trace.LoadFile(path)
		if err != nil {
			return Batch{}, err
		}
		logging.LogStage("load", tf.Name, map[string]any{"events": len(tf.Events)})
		traces = append(traces, tf)
	}

	results := make([]TraceAnalysis, len(traces))
	var wg sync.WaitGroup
	for i := range traces {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Analyze(traces[i], opts)
		}(i)
	}
	wg.Wait()

	groups := GroupByVariant(results, opts.Rules())
	comparison, err := Compare(groups)
	if err != nil {
		return Batch{}, err
	}
	logging.LogEvent("[ANALYZE] analyzed %d traces across %d variants", len(results), len(groups))

	return Batch{
		GeneratedAt: time.Now(),
		Results:     results,
		Comparison:  comparison,
	}, nil
}
