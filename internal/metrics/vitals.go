// internal/metrics/vitals.go
package metrics

import "github.com/tracelens/tracelens/internal/trace"

// Event names that anchor each vital.
const (
	fcpEventName         = "firstContentfulPaint"
	lcpEventName         = "largestContentfulPaint::Candidate"
	layoutShiftEventName = "LayoutShift"
	eventTimingName      = "EventTiming"
)

// tbtBudgetMS is the fixed main-thread budget for total blocking time.
// It is intentionally independent of the configurable long-task
// threshold.
const tbtBudgetMS = 50.0

// ExtractWebVitals derives the Core Web Vitals from the event stream.
// FCP and LCP take the first matching event in emission order; keeping
// the first LCP candidate rather than the last is a known
// simplification.
func ExtractWebVitals(events []trace.Event) WebVitals {
	var vitals WebVitals
	for _, e := range events {
		switch e.Name {
		case fcpEventName:
			if vitals.FCP == nil {
				ts := e.TsMS()
				vitals.FCP = &ts
			}
		case lcpEventName:
			if vitals.LCP == nil {
				ts := e.TsMS()
				vitals.LCP = &ts
			}
		case layoutShiftEventName:
			data := e.Data()
			if recent, ok := trace.BoolField(data, "had_recent_input"); ok && !recent {
				if score, ok := trace.FloatField(data, "score"); ok {
					vitals.CLS += score
				}
			}
		case eventTimingName:
			if vitals.FID == nil {
				data := e.Data()
				start, okStart := trace.FloatField(data, "processingStart")
				stamp, okStamp := trace.FloatField(data, "timeStamp")
				if okStart && okStamp {
					delay := start - stamp
					vitals.FID = &delay
				}
			}
		}
		if ms, ok := e.DurMS(); ok && ms > tbtBudgetMS {
			vitals.TBT += ms - tbtBudgetMS
		}
	}
	return vitals
}
