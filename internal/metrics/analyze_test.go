// internal/metrics/analyze_test.go
package metrics

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/tracelens/tracelens/internal/trace"
)

// TestAnalyzeZeroEventTrace pins down the documented defaults: a valid
// trace with no events must analyze cleanly, with null vitals, zero
// totals, empty collections and no recommendations.
func TestAnalyzeZeroEventTrace(t *testing.T) {
	file, err := trace.Parse([]byte(`{"traceEvents": [], "metadata": {}}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	file.Name = "empty-run.json"

	a := Analyze(file, Options{})
	if a.File != "empty-run.json" || a.Variant != UnknownVariant {
		t.Fatalf("unexpected identity fields: %+v", a)
	}
	if a.Metadata.Duration != nil {
		t.Fatalf("expected nil duration, got %v", a.Metadata.Duration)
	}
	if a.CoreWebVitals.FCP != nil || a.CoreWebVitals.LCP != nil || a.CoreWebVitals.FID != nil {
		t.Fatalf("expected null vitals, got %+v", a.CoreWebVitals)
	}
	if a.CoreWebVitals.CLS != 0 || a.CoreWebVitals.TBT != 0 {
		t.Fatalf("expected zero CLS and TBT, got %+v", a.CoreWebVitals)
	}
	if a.Performance.TotalEvents != 0 || len(a.Performance.LongTasks) != 0 {
		t.Fatalf("expected empty performance metrics, got %+v", a.Performance)
	}
	if len(a.Recommendations) != 0 {
		t.Fatalf("expected no recommendations, got %+v", a.Recommendations)
	}
}

func TestAnalyzeAssignsVariant(t *testing.T) {
	file, err := trace.Parse([]byte(`{"traceEvents": [], "metadata": {}}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	file.Name = "run-indexeddb-4.json"
	if a := Analyze(file, Options{}); a.Variant != "indexeddb" {
		t.Fatalf("expected indexeddb variant, got %q", a.Variant)
	}
}

func TestAnalyzeMetadataSummary(t *testing.T) {
	file, err := trace.Parse([]byte(`{
		"traceEvents": [],
		"metadata": {
			"source": "DevTools",
			"startTime": "2024-03-01T10:00:00.000Z",
			"cpuThrottling": 4,
			"userAgent": "Mozilla/5.0",
			"modifications": {"initialBreadcrumb": {"window": {"range": 2500000}}}
		}
	}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	a := Analyze(file, Options{})
	meta := a.Metadata
	if meta.Source != "DevTools" || meta.UserAgent != "Mozilla/5.0" {
		t.Fatalf("unexpected metadata strings: %+v", meta)
	}
	if meta.CPUThrottling != 4 || meta.StartTime != "2024-03-01T10:00:00.000Z" {
		t.Fatalf("unexpected metadata values: %+v", meta)
	}
	if meta.Duration == nil || *meta.Duration != 2500 {
		t.Fatalf("expected derived duration 2500, got %v", meta.Duration)
	}
}

// TestAnalyzeJSONRoundTrip serializes a full analysis and decodes it
// back; every field must survive unchanged.
func TestAnalyzeJSONRoundTrip(t *testing.T) {
	file, err := trace.Parse([]byte(`{
		"traceEvents": [
			{"name": "firstContentfulPaint", "ts": 800000},
			{"name": "largestContentfulPaint::Candidate", "ts": 2900000},
			{"name": "LayoutShift", "ts": 1, "args": {"data": {"score": 0.25, "had_recent_input": false}}},
			{"name": "EventTiming", "ts": 2, "args": {"data": {"processingStart": 130, "timeStamp": 100}}},
			{"name": "FunctionCall", "ts": 3, "dur": 90000, "cat": "devtools.timeline", "ph": "X", "args": {"data": {"functionName": "boot", "url": "https://app.example/app.js", "scriptId": "7"}}},
			{"name": "CompileScript", "ts": 4, "dur": 3000},
			{"name": "Layout", "ts": 5, "dur": 4000, "args": {"beginData": {"stackTrace": [{"functionName": "measure"}]}}},
			{"name": "Paint", "ts": 6, "dur": 2000},
			{"name": "CompositeLayers", "ts": 7, "dur": 1000},
			{"name": "UpdateCounters", "ts": 8, "args": {"data": {"jsHeapSizeUsed": 3145728}}},
			{"name": "MajorGC", "ts": 9, "dur": 6000},
			{"name": "ResourceFinish", "ts": 10, "args": {"data": {"url": "https://app.example/a.js", "startTime": 10, "finishTime": 30, "encodedDataLength": 1024, "fromCache": true}}}
		],
		"metadata": {"modifications": {"initialBreadcrumb": {"window": {"range": 3000000}}}}
	}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	file.Name = "roundtrip-original.json"
	a := Analyze(file, Options{})

	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var decoded TraceAnalysis
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if !reflect.DeepEqual(a, decoded) {
		t.Fatalf("round trip changed the analysis:\nbefore: %+v\nafter:  %+v", a, decoded)
	}
}
