// internal/metrics/aggregate.go
package metrics

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// metricPath pairs a comparison path with its resolver. A nil resolution
// drops the trace from that path's sample.
type metricPath struct {
	path    string
	resolve func(TraceAnalysis) *float64
}

// comparisonPaths is the fixed, ordered set of metrics compared across
// variants.
var comparisonPaths = []metricPath{
	{"metadata.duration", func(a TraceAnalysis) *float64 {
		return a.Metadata.Duration
	}},
	{"performance.longTasks.length", func(a TraceAnalysis) *float64 {
		v := float64(len(a.Performance.LongTasks))
		return &v
	}},
	{"javascript.totalExecutionTime", func(a TraceAnalysis) *float64 {
		v := a.JavaScript.TotalExecutionTime
		return &v
	}},
	{"rendering.layoutTime", func(a TraceAnalysis) *float64 {
		v := a.Rendering.LayoutTime
		return &v
	}},
	{"rendering.paintTime", func(a TraceAnalysis) *float64 {
		v := a.Rendering.PaintTime
		return &v
	}},
}

// ComparisonPaths lists the compared metric paths in render order.
func ComparisonPaths() []string {
	paths := make([]string, 0, len(comparisonPaths))
	for _, mp := range comparisonPaths {
		paths = append(paths, mp.path)
	}
	return paths
}

// Summarize computes the distribution summary of one sample. The standard
// deviation is the population form.
func Summarize(values []float64) (StatSummary, error) {
	data := stats.Float64Data(values)

	mean, err := stats.Mean(data)
	if err != nil {
		return StatSummary{}, fmt.Errorf("failed to calculate mean: %w", err)
	}
	median, err := stats.Median(data)
	if err != nil {
		return StatSummary{}, fmt.Errorf("failed to calculate median: %w", err)
	}
	stdDev, err := stats.StandardDeviationPopulation(data)
	if err != nil {
		return StatSummary{}, fmt.Errorf("failed to calculate standard deviation: %w", err)
	}
	min, err := stats.Min(data)
	if err != nil {
		return StatSummary{}, fmt.Errorf("failed to calculate min: %w", err)
	}
	max, err := stats.Max(data)
	if err != nil {
		return StatSummary{}, fmt.Errorf("failed to calculate max: %w", err)
	}

	return StatSummary{
		Mean:   mean,
		Median: median,
		StdDev: stdDev,
		Min:    min,
		Max:    max,
		Count:  len(values),
	}, nil
}

// Compare builds the cross-variant comparison, or nil when fewer than two
// variants are present. A metric path with no resolved values for a
// variant is simply absent from that variant's summaries.
func Compare(groups map[string][]TraceAnalysis) (Comparison, error) {
	if len(groups) < 2 {
		return nil, nil
	}
	comparison := Comparison{}
	for variant, results := range groups {
		summaries := map[string]StatSummary{}
		for _, mp := range comparisonPaths {
			var values []float64
			for _, r := range results {
				if v := mp.resolve(r); v != nil {
					values = append(values, *v)
				}
			}
			if len(values) == 0 {
				continue
			}
			summary, err := Summarize(values)
			if err != nil {
				return nil, fmt.Errorf("failed to summarize %s for variant %s: %w", mp.path, variant, err)
			}
			summaries[mp.path] = summary
		}
		comparison[variant] = summaries
	}
	return comparison, nil
}
