// internal/metrics/rendering.go
package metrics

import "github.com/tracelens/tracelens/internal/trace"

// AnalyzeRendering accumulates layout, paint and composite activity. A
// layout event carrying a non-empty args.beginData.stackTrace counts as a
// forced reflow.
func AnalyzeRendering(events []trace.Event) RenderingMetrics {
	var r RenderingMetrics
	for _, e := range events {
		ms, _ := e.DurMS()
		switch e.Name {
		case "Layout", "UpdateLayoutTree":
			r.LayoutTime += ms
			r.LayoutCount++
			if stack, ok := e.BeginData()["stackTrace"].([]any); ok && len(stack) > 0 {
				r.ForcedReflows++
			}
		case "Paint", "PaintLayer":
			r.PaintTime += ms
			r.PaintCount++
		case "CompositeLayers", "Composite":
			r.CompositeTime += ms
		}
	}
	return r
}
