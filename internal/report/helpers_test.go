// internal/report/helpers_test.go
package report

import (
	"time"

	"github.com/tracelens/tracelens/internal/metrics"
)

// sampleBatch builds a two-trace batch with one fully populated result,
// one sparse result, and a cross-variant comparison.
func sampleBatch() metrics.Batch {
	fcp := 800.0
	lcp := 1200.0
	fid := 30.0
	duration := 2500.0

	return metrics.Batch{
		GeneratedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Results: []metrics.TraceAnalysis{
			{
				File:     "trace-original-1.json",
				Variant:  "original",
				Metadata: metrics.MetadataSummary{Source: "DevTools", Duration: &duration},
				CoreWebVitals: metrics.WebVitals{
					FCP: &fcp,
					LCP: &lcp,
					CLS: 0.05,
					FID: &fid,
					TBT: 70,
				},
				Performance: metrics.PerformanceMetrics{
					TotalEvents: 42,
					LongTasks: []metrics.LongTask{
						{Name: "RunTask", Duration: 120, Category: "devtools.timeline", StartTime: 5, URL: "https://example.com/app.js"},
						{Name: "EvaluateScript", Duration: 80, Category: "devtools.timeline", StartTime: 20},
					},
					Categories:   map[string]int{"devtools.timeline": 40, "uncategorized": 2},
					Phases:       map[string]int{"X": 42},
					CriticalPath: []string{},
				},
				JavaScript: metrics.JavaScriptMetrics{
					TotalExecutionTime: 10.3,
					CompilationTime:    3,
					GCTime:             6,
					Executions: []metrics.ScriptExecution{
						{Name: "processData", Duration: 8.5, URL: "https://example.com/app.js", ScriptID: "42"},
					},
				},
				Rendering: metrics.RenderingMetrics{
					LayoutTime:    5,
					LayoutCount:   2,
					PaintTime:     1.5,
					PaintCount:    2,
					CompositeTime: 2,
					ForcedReflows: 1,
				},
				Memory: metrics.MemoryMetrics{
					MaxHeapSize:     5000000,
					GCPauses:        []float64{8, 2},
					HeapAllocations: []float64{},
					MemoryLeaks:     []string{},
				},
				Network: metrics.NetworkMetrics{
					Requests: []metrics.NetworkRequest{
						{URL: "https://example.com/data.json", Duration: 25, TransferSize: 2048},
						{URL: "https://example.com/cached.css", Duration: 15, TransferSize: 512, FromCache: true},
					},
					TotalTransferSize: 2560,
					CacheHitRate:      50,
				},
				Recommendations: []metrics.Recommendation{
					{
						Priority:       "high",
						Category:       "core-web-vitals",
						Issue:          "Slow Largest Contentful Paint",
						Recommendation: "Optimize the largest element above the fold",
						Impact:         "Faster perceived load",
					},
				},
			},
			{
				File:    "trace-indexeddb-1.json",
				Variant: "indexeddb",
				Performance: metrics.PerformanceMetrics{
					LongTasks:    []metrics.LongTask{},
					Categories:   map[string]int{},
					Phases:       map[string]int{},
					CriticalPath: []string{},
				},
				JavaScript: metrics.JavaScriptMetrics{Executions: []metrics.ScriptExecution{}},
				Memory: metrics.MemoryMetrics{
					GCPauses:        []float64{},
					HeapAllocations: []float64{},
					MemoryLeaks:     []string{},
				},
				Network:         metrics.NetworkMetrics{Requests: []metrics.NetworkRequest{}},
				Recommendations: []metrics.Recommendation{},
			},
		},
		Comparison: metrics.Comparison{
			"original": {
				"metadata.duration": {Mean: 110, Median: 110, StdDev: 8.16, Min: 100, Max: 120, Count: 3},
			},
			"indexeddb": {
				"metadata.duration": {Mean: 85, Median: 85, StdDev: 4.08, Min: 80, Max: 90, Count: 3},
			},
		},
	}
}
