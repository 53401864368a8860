// internal/report/csv.go
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/tracelens/tracelens/internal/metrics"
)

var csvHeader = []string{"file", "duration", "longTaskCount", "jsExecutionTime", "layoutTime", "paintTime"}

// CSV writes one row per analyzed trace. Traces without a recorded
// duration get an empty duration cell rather than a zero, so spreadsheet
// aggregations stay honest. Comparison data is not flattened into rows.
func CSV(w io.Writer, batch metrics.Batch) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("unable to write CSV header: %w", err)
	}

	for _, result := range batch.Results {
		duration := ""
		if result.Metadata.Duration != nil {
			duration = formatStat(*result.Metadata.Duration)
		}
		record := []string{
			result.File,
			duration,
			strconv.Itoa(len(result.Performance.LongTasks)),
			formatStat(result.JavaScript.TotalExecutionTime),
			formatStat(result.Rendering.LayoutTime),
			formatStat(result.Rendering.PaintTime),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("unable to write CSV row for %s: %w", result.File, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("unable to flush CSV report: %w", err)
	}
	return nil
}
