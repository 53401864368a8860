// internal/metrics/javascript_test.go
package metrics

import (
	"math"
	"testing"
)

func TestAnalyzeJavaScriptClassification(t *testing.T) {
	events := eventsFromJSON(t, `[
		{"name": "FunctionCall", "ts": 0, "dur": 5000, "args": {"data": {"functionName": "render", "url": "https://app.example/app.js", "scriptId": 42}}},
		{"name": "EvaluateScript", "ts": 1, "dur": 800},
		{"name": "v8.run", "ts": 2, "dur": 3000},
		{"name": "V8.Execute", "ts": 3, "dur": 1500},
		{"name": "CompileScript", "ts": 4, "dur": 2000},
		{"name": "ParseHTML", "ts": 5, "dur": 1000},
		{"name": "MinorGC", "ts": 6, "dur": 4000},
		{"name": "custom", "ts": 7, "dur": 2000, "cat": "devtools.gc"}
	]`)
	js := AnalyzeJavaScript(events)
	if math.Abs(js.TotalExecutionTime-10.3) > 1e-9 {
		t.Fatalf("expected execution time 10.3, got %v", js.TotalExecutionTime)
	}
	if js.CompilationTime != 3 {
		t.Fatalf("expected compilation time 3, got %v", js.CompilationTime)
	}
	if js.GCTime != 6 {
		t.Fatalf("expected gc time 6, got %v", js.GCTime)
	}

	if len(js.Executions) != 3 {
		t.Fatalf("expected 3 recorded executions, got %d: %+v", len(js.Executions), js.Executions)
	}
	if js.Executions[0].Name != "render" || js.Executions[0].Duration != 5 {
		t.Fatalf("expected functionName to win, got %+v", js.Executions[0])
	}
	if js.Executions[0].URL != "https://app.example/app.js" || js.Executions[0].ScriptID != "42" {
		t.Fatalf("expected url and numeric scriptId, got %+v", js.Executions[0])
	}
	if js.Executions[1].Name != "v8.run" {
		t.Fatalf("expected event-name fallback, got %+v", js.Executions[1])
	}
	if js.Executions[2].Duration != 1.5 {
		t.Fatalf("expected shortest recorded execution last, got %+v", js.Executions[2])
	}
}

func TestAnalyzeJavaScriptFirstMatchWins(t *testing.T) {
	events := eventsFromJSON(t, `[
		{"name": "EvaluateScript", "ts": 0, "dur": 2000, "cat": "gc"},
		{"name": "ParseAndGC", "ts": 1, "dur": 1000}
	]`)
	js := AnalyzeJavaScript(events)
	if js.TotalExecutionTime != 2 {
		t.Fatalf("expected execution time 2, got %v", js.TotalExecutionTime)
	}
	if js.CompilationTime != 1 {
		t.Fatalf("expected compilation time 1, got %v", js.CompilationTime)
	}
	if js.GCTime != 0 {
		t.Fatalf("expected no double-counted gc time, got %v", js.GCTime)
	}
}

func TestAnalyzeJavaScriptMatchesAreCaseSensitive(t *testing.T) {
	events := eventsFromJSON(t, `[
		{"name": "parseblock", "ts": 0, "dur": 1000},
		{"name": "functioncall", "ts": 1, "dur": 1000}
	]`)
	js := AnalyzeJavaScript(events)
	if js.TotalExecutionTime != 0 || js.CompilationTime != 0 || js.GCTime != 0 {
		t.Fatalf("expected lowercased names to match nothing, got %+v", js)
	}
}

func TestAnalyzeJavaScriptRecordsOnlyOverOneMS(t *testing.T) {
	events := eventsFromJSON(t, `[
		{"name": "FunctionCall", "ts": 0, "dur": 1000},
		{"name": "FunctionCall", "ts": 1, "dur": 1500}
	]`)
	js := AnalyzeJavaScript(events)
	if js.TotalExecutionTime != 2.5 {
		t.Fatalf("expected both events in the total, got %v", js.TotalExecutionTime)
	}
	if len(js.Executions) != 1 || js.Executions[0].Duration != 1.5 {
		t.Fatalf("expected only the 1.5ms event recorded, got %+v", js.Executions)
	}
}
