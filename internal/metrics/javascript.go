// internal/metrics/javascript.go
package metrics

import (
	"sort"
	"strconv"
	"strings"

	"github.com/tracelens/tracelens/internal/trace"
)

// executionNames are the exact event names that count as script
// execution.
var executionNames = map[string]bool{
	"FunctionCall":   true,
	"EvaluateScript": true,
	"v8.run":         true,
	"V8.Execute":     true,
}

// scriptRecordCutoffMS is the minimum duration for an execution event to
// be recorded individually.
const scriptRecordCutoffMS = 1.0

// AnalyzeJavaScript accumulates execution, compilation and GC time.
// Classification is first match wins, in that order, so an event never
// counts twice.
func AnalyzeJavaScript(events []trace.Event) JavaScriptMetrics {
	js := JavaScriptMetrics{Executions: []ScriptExecution{}}
	for _, e := range events {
		ms, _ := e.DurMS()
		switch {
		case executionNames[e.Name]:
			js.TotalExecutionTime += ms
			if ms > scriptRecordCutoffMS {
				js.Executions = append(js.Executions, scriptExecution(e, ms))
			}
		case strings.Contains(e.Name, "Compile") || strings.Contains(e.Name, "Parse"):
			js.CompilationTime += ms
		case strings.Contains(e.Cat, "gc") || strings.Contains(e.Name, "GC"):
			js.GCTime += ms
		}
	}
	sort.Slice(js.Executions, func(i, j int) bool {
		return js.Executions[i].Duration > js.Executions[j].Duration
	})
	return js
}

func scriptExecution(e trace.Event, ms float64) ScriptExecution {
	data := e.Data()
	record := ScriptExecution{Name: e.Name, Duration: ms}
	if name, ok := trace.StringField(data, "functionName"); ok && name != "" {
		record.Name = name
	}
	if url, ok := trace.StringField(data, "url"); ok {
		record.URL = url
	}
	record.ScriptID = scriptID(data)
	return record
}

// scriptID tolerates both string and numeric script ids.
func scriptID(data map[string]any) string {
	switch v := data["scriptId"].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}
