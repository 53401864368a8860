// internal/metrics/helpers_test.go
package metrics

import (
	"testing"

	"github.com/tracelens/tracelens/internal/trace"
)

// eventsFromJSON decodes a traceEvents array literal through the real
// parser so fixtures stay in the wire shape.
func eventsFromJSON(t *testing.T, raw string) []trace.Event {
	t.Helper()
	file, err := trace.Parse([]byte(`{"traceEvents": ` + raw + `, "metadata": {}}`))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return file.Events
}
