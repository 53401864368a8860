// internal/metrics/analyze.go
package metrics

import "github.com/tracelens/tracelens/internal/trace"

// Analyze runs every extractor over one parsed trace and assembles the
// complete per-trace analysis. Extractors are independent passes over the
// shared event slice; none of them modifies an event.
func Analyze(tf trace.File, opts Options) TraceAnalysis {
	analysis := TraceAnalysis{
		File:          tf.Name,
		Variant:       VariantFor(tf.Name, opts.Rules()),
		Metadata:      summarizeMetadata(tf),
		CoreWebVitals: ExtractWebVitals(tf.Events),
		Performance:   AnalyzePerformance(tf.Events, opts.Threshold()),
		JavaScript:    AnalyzeJavaScript(tf.Events),
		Rendering:     AnalyzeRendering(tf.Events),
		Memory:        AnalyzeMemory(tf.Events),
		Network:       AnalyzeNetwork(tf.Events),
	}
	analysis.Recommendations = BuildRecommendations(analysis)
	return analysis
}

// summarizeMetadata lifts the consumed metadata keys out of the raw map.
func summarizeMetadata(tf trace.File) MetadataSummary {
	summary := MetadataSummary{Duration: tf.DurationMS()}
	if v, ok := trace.StringField(tf.Metadata, "source"); ok {
		summary.Source = v
	}
	if v, ok := trace.StringField(tf.Metadata, "startTime"); ok {
		summary.StartTime = v
	}
	if v, ok := trace.FloatField(tf.Metadata, "cpuThrottling"); ok {
		summary.CPUThrottling = v
	}
	if v, ok := trace.StringField(tf.Metadata, "userAgent"); ok {
		summary.UserAgent = v
	}
	return summary
}
