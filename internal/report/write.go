// internal/report/write.go
package report

import (
	"fmt"
	"io"

	"github.com/tracelens/tracelens/internal/metrics"
)

// Write renders batch in the named format. Formats are validated at
// configuration load time; an unknown value here is an error rather than
// a silent fallback.
func Write(w io.Writer, format string, batch metrics.Batch, includeDetails bool) error {
	switch format {
	case "console":
		Console(w, batch, includeDetails)
		return nil
	case "json":
		return JSON(w, batch)
	case "csv":
		return CSV(w, batch)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
