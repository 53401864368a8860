// internal/metrics/performance.go
package metrics

import (
	"sort"

	"github.com/tracelens/tracelens/internal/trace"
)

// Sentinel keys for events that omit a category or phase.
const (
	uncategorizedKey = "uncategorized"
	unknownPhaseKey  = "unknown"
)

// AnalyzePerformance counts events, tallies category and phase
// frequencies and collects the tasks that ran strictly longer than the
// threshold, longest first.
func AnalyzePerformance(events []trace.Event, thresholdMS float64) PerformanceMetrics {
	perf := PerformanceMetrics{
		TotalEvents:  len(events),
		LongTasks:    []LongTask{},
		Categories:   map[string]int{},
		Phases:       map[string]int{},
		CriticalPath: []string{},
	}
	for _, e := range events {
		cat := e.Cat
		if cat == "" {
			cat = uncategorizedKey
		}
		perf.Categories[cat]++

		ph := e.Ph
		if ph == "" {
			ph = unknownPhaseKey
		}
		perf.Phases[ph]++

		ms, ok := e.DurMS()
		if !ok || ms <= thresholdMS {
			continue
		}
		task := LongTask{
			Name:      e.Name,
			Duration:  ms,
			Category:  cat,
			StartTime: e.TsMS(),
		}
		if url, ok := trace.StringField(e.Data(), "url"); ok {
			task.URL = url
		}
		perf.LongTasks = append(perf.LongTasks, task)
	}
	sort.Slice(perf.LongTasks, func(i, j int) bool {
		return perf.LongTasks[i].Duration > perf.LongTasks[j].Duration
	})
	return perf
}
