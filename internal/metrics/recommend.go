// internal/metrics/recommend.go
package metrics

import "fmt"

// Rule thresholds for the recommendation pass.
const (
	longTaskCountLimit   = 10
	executionTimeLimitMS = 2000.0
	lcpLimitMS           = 2500.0
)

// BuildRecommendations derives actionable findings from a completed
// analysis. Every rule runs, in order, and the input is never modified;
// the LCP rule only fires when an LCP value exists.
func BuildRecommendations(a TraceAnalysis) []Recommendation {
	recs := []Recommendation{}

	if len(a.Performance.LongTasks) > longTaskCountLimit {
		recs = append(recs, Recommendation{
			Priority:       "high",
			Category:       "performance",
			Issue:          fmt.Sprintf("%d long tasks block the main thread", len(a.Performance.LongTasks)),
			Recommendation: "Split long-running work into smaller chunks or move it to a web worker",
			Impact:         "Reduces main-thread blocking and improves input responsiveness",
		})
	}
	if a.JavaScript.TotalExecutionTime > executionTimeLimitMS {
		recs = append(recs, Recommendation{
			Priority:       "medium",
			Category:       "javascript",
			Issue:          fmt.Sprintf("JavaScript execution took %.0fms in total", a.JavaScript.TotalExecutionTime),
			Recommendation: "Defer non-critical scripts and reduce bundle size through code splitting",
			Impact:         "Lowers CPU time spent on script execution during load",
		})
	}
	if a.CoreWebVitals.LCP != nil && *a.CoreWebVitals.LCP > lcpLimitMS {
		recs = append(recs, Recommendation{
			Priority:       "high",
			Category:       "core-web-vitals",
			Issue:          fmt.Sprintf("Largest Contentful Paint at %.0fms exceeds the 2.5s target", *a.CoreWebVitals.LCP),
			Recommendation: "Preload the LCP resource and trim render-blocking requests",
			Impact:         "Faster perceived load for the main page content",
		})
	}
	return recs
}
