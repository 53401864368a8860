// internal/cli/analyze.go
package tracelens

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tracelens/tracelens/internal/appconfig"
	"github.com/tracelens/tracelens/internal/logging"
	"github.com/tracelens/tracelens/internal/metrics"
	"github.com/tracelens/tracelens/internal/report"
	"github.com/tracelens/tracelens/internal/trace"
	"github.com/tracelens/tracelens/internal/util"
)

// analyzeCmd runs the full pipeline: discover trace files, analyze each
// one, compare variants, and render the report.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <path>...",
	Short: "Analyze Chrome DevTools trace exports",
	Long: `Read one or more performance trace JSON files (or directories of them),
extract Core Web Vitals and runtime metrics from each, and compare the
results across named variants. A single malformed trace aborts the whole
run so partial numbers never end up in a report.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		files, err := trace.Discover(args)
		if err != nil {
			return err
		}
		logging.LogEvent("[DISCOVER] found %d trace file(s)", len(files))

		batch, err := metrics.Run(files, analysisOptions(cfg))
		if err != nil {
			return err
		}

		return renderBatch(cmd, cfg, batch)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

// analysisOptions maps the merged configuration onto analyzer options.
func analysisOptions(cfg *appconfig.Config) metrics.Options {
	var opts metrics.Options
	if cfg == nil {
		return opts
	}
	opts.LongTaskThreshold = cfg.Threshold()
	for _, rule := range cfg.Variants {
		opts.Variants = append(opts.Variants, metrics.VariantRule{Marker: rule.Marker, Name: rule.Name})
	}
	return opts
}

func renderBatch(cmd *cobra.Command, cfg *appconfig.Config, batch metrics.Batch) error {
	format := "console"
	includeDetails := false
	outputPath := ""
	if cfg != nil {
		format = cfg.Format()
		includeDetails = cfg.IncludeDetails
		outputPath = cfg.Output
	}

	if outputPath == "" {
		return report.Write(cmd.OutOrStdout(), format, batch, includeDetails)
	}
	if format == "console" {
		return fmt.Errorf("console reports cannot be written to a file, pass --format json or --format csv with --output")
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, format, batch, includeDetails); err != nil {
		return err
	}
	if dir := filepath.Dir(outputPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("unable to create directory for %s: %w", outputPath, err)
		}
	}
	if err := util.WriteFile(outputPath, buf.Bytes()); err != nil {
		return fmt.Errorf("unable to write report %s: %w", outputPath, err)
	}

	cmd.Printf("Report written to %s\n", outputPath)
	return nil
}
