// internal/report/console.go

// Package report renders batch analysis results for people and for
// machines. The console renderer writes styled, sectioned text; the JSON
// and CSV renderers emit machine-readable documents suitable for piping
// into other tooling.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/kataras/tablewriter"

	"github.com/tracelens/tracelens/internal/metrics"
	"github.com/tracelens/tracelens/internal/util"
)

const (
	detailLineWidth     = 100
	recommendationWidth = 72
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	fileStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	detailStyle  = lipgloss.NewStyle().Faint(true)
)

var (
	highPriority   = color.New(color.FgRed, color.Bold).SprintFunc()
	mediumPriority = color.New(color.FgYellow).SprintFunc()
	lowPriority    = color.New(color.FgGreen).SprintFunc()
)

// Console writes a human-readable report for every analyzed trace,
// followed by the cross-variant comparison table when one is available.
func Console(w io.Writer, batch metrics.Batch, includeDetails bool) {
	fmt.Fprintln(w, titleStyle.Render("Trace Analysis Report"))
	fmt.Fprintf(w, "Analyzed %d trace(s)\n\n", len(batch.Results))

	for _, result := range batch.Results {
		consoleResult(w, result, includeDetails)
	}

	if batch.Comparison != nil {
		consoleComparison(w, batch.Comparison)
	}
}

func consoleResult(w io.Writer, result metrics.TraceAnalysis, includeDetails bool) {
	fmt.Fprintln(w, fileStyle.Render(result.File))
	fmt.Fprintf(w, "  Variant: %s\n", result.Variant)
	if result.Metadata.Duration != nil {
		fmt.Fprintf(w, "  Duration: %.2fms\n", *result.Metadata.Duration)
	}

	fmt.Fprintln(w, sectionStyle.Render("  Core Web Vitals"))
	fmt.Fprintf(w, "    FCP: %s\n", formatOptionalMS(result.CoreWebVitals.FCP))
	fmt.Fprintf(w, "    LCP: %s\n", formatOptionalMS(result.CoreWebVitals.LCP))
	fmt.Fprintf(w, "    CLS: %.4f\n", result.CoreWebVitals.CLS)
	fmt.Fprintf(w, "    FID: %s\n", formatOptionalMS(result.CoreWebVitals.FID))
	fmt.Fprintf(w, "    TBT: %.2fms\n", result.CoreWebVitals.TBT)

	fmt.Fprintln(w, sectionStyle.Render("  Performance"))
	fmt.Fprintf(w, "    Total Events: %d\n", result.Performance.TotalEvents)
	fmt.Fprintf(w, "    Long Tasks: %d\n", len(result.Performance.LongTasks))

	fmt.Fprintln(w, sectionStyle.Render("  JavaScript"))
	fmt.Fprintf(w, "    Execution Time: %.2fms\n", result.JavaScript.TotalExecutionTime)
	fmt.Fprintf(w, "    Compilation Time: %.2fms\n", result.JavaScript.CompilationTime)
	fmt.Fprintf(w, "    GC Time: %.2fms\n", result.JavaScript.GCTime)

	fmt.Fprintln(w, sectionStyle.Render("  Rendering"))
	fmt.Fprintf(w, "    Layout: %.2fms (%d events)\n", result.Rendering.LayoutTime, result.Rendering.LayoutCount)
	fmt.Fprintf(w, "    Paint: %.2fms (%d events)\n", result.Rendering.PaintTime, result.Rendering.PaintCount)
	fmt.Fprintf(w, "    Composite: %.2fms\n", result.Rendering.CompositeTime)
	fmt.Fprintf(w, "    Forced Reflows: %d\n", result.Rendering.ForcedReflows)

	fmt.Fprintln(w, sectionStyle.Render("  Memory"))
	fmt.Fprintf(w, "    Peak JS Heap: %.0f bytes\n", result.Memory.MaxHeapSize)
	fmt.Fprintf(w, "    GC Pauses: %d (%.2fms total)\n", len(result.Memory.GCPauses), sum(result.Memory.GCPauses))

	fmt.Fprintln(w, sectionStyle.Render("  Network"))
	fmt.Fprintf(w, "    Requests: %d\n", len(result.Network.Requests))
	fmt.Fprintf(w, "    Transfer Size: %.0f bytes\n", result.Network.TotalTransferSize)
	fmt.Fprintf(w, "    Cache Hit Rate: %.1f%%\n", result.Network.CacheHitRate)

	if len(result.Recommendations) > 0 {
		fmt.Fprintln(w, sectionStyle.Render("  Recommendations"))
		for _, rec := range result.Recommendations {
			fmt.Fprintf(w, "    %s %s: %s\n", priorityTag(rec.Priority), rec.Category, rec.Issue)
			for _, line := range strings.Split(util.WrapToWidth(rec.Recommendation, recommendationWidth), "\n") {
				fmt.Fprintf(w, "      %s\n", line)
			}
			fmt.Fprintf(w, "      Impact: %s\n", rec.Impact)
		}
	}

	if includeDetails {
		consoleDetails(w, result)
	}

	fmt.Fprintln(w)
}

func consoleDetails(w io.Writer, result metrics.TraceAnalysis) {
	if len(result.Performance.LongTasks) > 0 {
		fmt.Fprintln(w, sectionStyle.Render("  Long Task Details"))
		for _, task := range result.Performance.LongTasks {
			line := fmt.Sprintf(">>> %s %.2fms at %.2fms (%s)", task.Name, task.Duration, task.StartTime, task.Category)
			if task.URL != "" {
				line += " " + task.URL
			}
			detailLine(w, line)
		}
	}

	if len(result.JavaScript.Executions) > 0 {
		fmt.Fprintln(w, sectionStyle.Render("  Script Execution Details"))
		for _, exec := range result.JavaScript.Executions {
			line := fmt.Sprintf(">>> %s %.2fms", exec.Name, exec.Duration)
			if exec.URL != "" {
				line += " " + exec.URL
			}
			detailLine(w, line)
		}
	}

	if len(result.Network.Requests) > 0 {
		fmt.Fprintln(w, sectionStyle.Render("  Network Request Details"))
		for _, req := range result.Network.Requests {
			line := fmt.Sprintf(">>> %s %.2fms %.0f bytes", req.URL, req.Duration, req.TransferSize)
			if req.FromCache {
				line += " (cached)"
			}
			detailLine(w, line)
		}
	}
}

// detailLine truncates trace URLs that would otherwise flood the terminal,
// data: URLs in real exports run to thousands of characters.
func detailLine(w io.Writer, line string) {
	fmt.Fprintln(w, "    "+detailStyle.Render(util.TruncateRunes(line, detailLineWidth)))
}

func consoleComparison(w io.Writer, comparison metrics.Comparison) {
	fmt.Fprintln(w, titleStyle.Render("Variant Comparison"))

	var variants []string
	for variant := range comparison {
		variants = append(variants, variant)
	}
	sort.Strings(variants)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"variant", "metric", "mean", "median", "stddev", "min", "max", "samples"})
	for _, variant := range variants {
		for _, path := range metrics.ComparisonPaths() {
			summary, ok := comparison[variant][path]
			if !ok {
				continue
			}
			table.Append([]string{
				variant,
				path,
				formatStat(summary.Mean),
				formatStat(summary.Median),
				formatStat(summary.StdDev),
				formatStat(summary.Min),
				formatStat(summary.Max),
				strconv.Itoa(summary.Count),
			})
		}
	}
	table.Render()
}

func priorityTag(priority string) string {
	switch priority {
	case "high":
		return highPriority("[HIGH]")
	case "medium":
		return mediumPriority("[MEDIUM]")
	case "low":
		return lowPriority("[LOW]")
	default:
		return "[" + priority + "]"
	}
}

func formatOptionalMS(value *float64) string {
	if value == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2fms", *value)
}

func formatStat(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
