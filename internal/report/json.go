// internal/report/json.go
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tracelens/tracelens/internal/metrics"
)

// JSON writes the batch as an indented JSON document with a trailing
// newline. The document round-trips losslessly back into a Batch.
func JSON(w io.Writer, batch metrics.Batch) error {
	data, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to encode report as JSON: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("unable to write JSON report: %w", err)
	}
	return nil
}
