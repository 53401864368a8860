// internal/metrics/memory.go
package metrics

import (
	"strings"

	"github.com/tracelens/tracelens/internal/trace"
)

// AnalyzeMemory tracks the peak JS heap across UpdateCounters events and
// the duration of every GC pause.
func AnalyzeMemory(events []trace.Event) MemoryMetrics {
	mem := MemoryMetrics{
		GCPauses:        []float64{},
		HeapAllocations: []float64{},
		MemoryLeaks:     []string{},
	}
	for _, e := range events {
		if e.Name == "UpdateCounters" {
			if used, ok := trace.FloatField(e.Data(), "jsHeapSizeUsed"); ok && used > mem.MaxHeapSize {
				mem.MaxHeapSize = used
			}
		}
		if strings.Contains(e.Name, "GC") {
			if ms, ok := e.DurMS(); ok {
				mem.GCPauses = append(mem.GCPauses, ms)
			}
		}
	}
	return mem
}
