package appconfig

import (
	"fmt"
	"io"
	"strings"
)

// ShowConfig prints the current configuration summary. When no snapshot
// exists yet the fallback values are shown instead.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	effective := fallback
	if cfg != nil {
		effective = *cfg
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Output Format:       %s\n", effective.Format())
	fmt.Fprintf(out, "  Long Task Threshold: %gms\n", effective.Threshold())
	fmt.Fprintf(out, "  Include Details:     %v\n", effective.IncludeDetails)
	fmt.Fprintf(out, "  Confidence Level:    %g\n", effective.Confidence())
	fmt.Fprintf(out, "  Variants:            %s\n", variantSummary(effective.Variants))
	fmt.Fprintf(out, "  Log File:            %s\n", effective.LogFilePath())
	fmt.Fprintf(out, "  Output Path:         %s\n", outputSummary(effective.Output))
	fmt.Fprintf(out, "  Debug:               %v\n", effective.Debug)
}

func variantSummary(rules []VariantRule) string {
	if len(rules) == 0 {
		return "(defaults)"
	}
	parts := make([]string, 0, len(rules))
	for _, r := range rules {
		parts = append(parts, fmt.Sprintf("%s=%s", r.Marker, r.Name))
	}
	return strings.Join(parts, ", ")
}

func outputSummary(path string) string {
	if path == "" {
		return "(stdout)"
	}
	return path
}
