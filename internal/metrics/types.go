// internal/metrics/types.go

// Package metrics turns parsed trace files into per-trace analyses and
// cross-variant statistics.
package metrics

import "time"

const (
	// DefaultLongTaskThreshold is the long-task cutoff in milliseconds
	// applied when no threshold is configured.
	DefaultLongTaskThreshold = 50.0

	// UnknownVariant labels traces whose file name matches no variant rule.
	UnknownVariant = "unknown"
)

// VariantRule maps a file-name marker to the variant it identifies.
type VariantRule struct {
	Marker string `json:"marker"`
	Name   string `json:"name"`
}

// Options carries the tunable inputs of an analysis run.
type Options struct {
	// LongTaskThreshold is the long-task cutoff in milliseconds. It never
	// feeds the total-blocking-time budget, which stays fixed at 50ms.
	LongTaskThreshold float64
	Variants          []VariantRule
}

// Threshold returns the configured long-task cutoff or the default.
func (o Options) Threshold() float64 {
	if o.LongTaskThreshold <= 0 {
		return DefaultLongTaskThreshold
	}
	return o.LongTaskThreshold
}

// Rules returns the configured variant rules or the default ordered set.
func (o Options) Rules() []VariantRule {
	if len(o.Variants) == 0 {
		return DefaultVariantRules()
	}
	return o.Variants
}

// MetadataSummary mirrors the trace metadata consumed by reports.
// Duration is derived from the recording breadcrumb window in
// milliseconds and stays nil when the trace carries no breadcrumb.
type MetadataSummary struct {
	Source        string   `json:"source,omitempty"`
	StartTime     string   `json:"startTime,omitempty"`
	CPUThrottling float64  `json:"cpuThrottling,omitempty"`
	UserAgent     string   `json:"userAgent,omitempty"`
	Duration      *float64 `json:"duration"`
}

// WebVitals captures the Core Web Vitals derived from one trace. FCP, LCP
// and FID stay nil when their source events are absent.
type WebVitals struct {
	FCP *float64 `json:"fcp"`
	LCP *float64 `json:"lcp"`
	CLS float64  `json:"cls"`
	FID *float64 `json:"fid"`
	TBT float64  `json:"tbt"`
}

// LongTask records one task that ran past the configured threshold.
type LongTask struct {
	Name      string  `json:"name"`
	Duration  float64 `json:"duration"`
	Category  string  `json:"category"`
	StartTime float64 `json:"startTime"`
	URL       string  `json:"url,omitempty"`
}

// PerformanceMetrics captures event-level totals for one trace.
// CriticalPath is reserved; no analysis populates it yet.
type PerformanceMetrics struct {
	TotalEvents  int            `json:"totalEvents"`
	LongTasks    []LongTask     `json:"longTasks"`
	Categories   map[string]int `json:"categories"`
	Phases       map[string]int `json:"phases"`
	CriticalPath []string       `json:"criticalPath"`
}

// ScriptExecution records one execution event that ran longer than a
// millisecond.
type ScriptExecution struct {
	Name     string  `json:"name"`
	Duration float64 `json:"duration"`
	URL      string  `json:"url,omitempty"`
	ScriptID string  `json:"scriptId,omitempty"`
}

// JavaScriptMetrics captures script activity for one trace.
type JavaScriptMetrics struct {
	TotalExecutionTime float64           `json:"totalExecutionTime"`
	CompilationTime    float64           `json:"compilationTime"`
	GCTime             float64           `json:"gcTime"`
	Executions         []ScriptExecution `json:"executions"`
}

// RenderingMetrics captures layout and paint activity for one trace.
type RenderingMetrics struct {
	LayoutTime    float64 `json:"layoutTime"`
	LayoutCount   int     `json:"layoutCount"`
	PaintTime     float64 `json:"paintTime"`
	PaintCount    int     `json:"paintCount"`
	CompositeTime float64 `json:"compositeTime"`
	ForcedReflows int     `json:"forcedReflows"`
}

// MemoryMetrics captures heap counters and GC pauses for one trace.
// HeapAllocations and MemoryLeaks are reserved; no analysis populates
// them yet.
type MemoryMetrics struct {
	MaxHeapSize     float64   `json:"maxHeapSize"`
	GCPauses        []float64 `json:"gcPauses"`
	HeapAllocations []float64 `json:"heapAllocations"`
	MemoryLeaks     []string  `json:"memoryLeaks"`
}

// NetworkRequest records one finished resource load.
type NetworkRequest struct {
	URL          string  `json:"url,omitempty"`
	Duration     float64 `json:"duration"`
	TransferSize float64 `json:"transferSize"`
	FromCache    bool    `json:"fromCache"`
}

// NetworkMetrics captures resource-loading activity for one trace.
type NetworkMetrics struct {
	Requests          []NetworkRequest `json:"requests"`
	TotalTransferSize float64          `json:"totalTransferSize"`
	CacheHitRate      float64          `json:"cacheHitRate"`
}

// Recommendation is one actionable finding derived from a completed
// analysis.
type Recommendation struct {
	Priority       string `json:"priority"`
	Category       string `json:"category"`
	Issue          string `json:"issue"`
	Recommendation string `json:"recommendation"`
	Impact         string `json:"impact"`
}

// TraceAnalysis is the complete analysis of one trace file. It is
// immutable once produced and round-trips through JSON without loss.
type TraceAnalysis struct {
	File            string             `json:"file"`
	Variant         string             `json:"variant"`
	Metadata        MetadataSummary    `json:"metadata"`
	CoreWebVitals   WebVitals          `json:"coreWebVitals"`
	Performance     PerformanceMetrics `json:"performance"`
	JavaScript      JavaScriptMetrics  `json:"javascript"`
	Rendering       RenderingMetrics   `json:"rendering"`
	Memory          MemoryMetrics      `json:"memory"`
	Network         NetworkMetrics     `json:"network"`
	Recommendations []Recommendation   `json:"recommendations"`
}

// StatSummary describes the distribution of one metric across the traces
// of a variant.
type StatSummary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stdDev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Count  int     `json:"count"`
}

// Comparison maps variant name to metric path to distribution summary.
type Comparison map[string]map[string]StatSummary

// Batch is the result of one analysis run across a set of trace files.
// Comparison stays nil when fewer than two variants are present.
type Batch struct {
	GeneratedAt time.Time       `json:"generatedAt"`
	Results     []TraceAnalysis `json:"results"`
	Comparison  Comparison      `json:"comparison,omitempty"`
}
