// internal/metrics/aggregate_test.go
package metrics

import "testing"

func TestSummarizePopulationStats(t *testing.T) {
	summary, err := Summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if err != nil {
		t.Fatalf("Summarize error: %v", err)
	}
	if summary.Mean != 5.0 {
		t.Fatalf("expected mean 5.0, got %v", summary.Mean)
	}
	if summary.StdDev != 2.0 {
		t.Fatalf("expected population stddev 2.0, got %v", summary.StdDev)
	}
	if summary.Median != 4.5 {
		t.Fatalf("expected median 4.5, got %v", summary.Median)
	}
	if summary.Min != 2 || summary.Max != 9 || summary.Count != 8 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestSummarizeOddMedian(t *testing.T) {
	summary, err := Summarize([]float64{1, 3, 5})
	if err != nil {
		t.Fatalf("Summarize error: %v", err)
	}
	if summary.Median != 3 {
		t.Fatalf("expected median 3, got %v", summary.Median)
	}
}

func TestSummarizeEmptyInput(t *testing.T) {
	if _, err := Summarize(nil); err == nil {
		t.Fatal("expected error for an empty sample")
	}
}

func TestCompareTwoVariants(t *testing.T) {
	mk := func(file string, duration float64) TraceAnalysis {
		d := duration
		return TraceAnalysis{File: file, Metadata: MetadataSummary{Duration: &d}}
	}
	results := []TraceAnalysis{
		mk("run-original-1.json", 100),
		mk("run-original-2.json", 110),
		mk("run-original-3.json", 120),
		mk("run-indexeddb-1.json", 80),
		mk("run-indexeddb-2.json", 85),
		mk("run-indexeddb-3.json", 90),
	}
	comparison, err := Compare(GroupByVariant(results, DefaultVariantRules()))
	if err != nil {
		t.Fatalf("Compare error: %v", err)
	}
	if len(comparison) != 2 {
		t.Fatalf("expected exactly 2 variants, got %d: %v", len(comparison), comparison)
	}
	original := comparison["original"]["metadata.duration"]
	if original.Mean != 110 || original.Count != 3 {
		t.Fatalf("unexpected original summary: %+v", original)
	}
	indexed := comparison["indexeddb"]["metadata.duration"]
	if indexed.Mean != 85 || indexed.Count != 3 {
		t.Fatalf("unexpected indexeddb summary: %+v", indexed)
	}
}

func TestCompareSingleVariantIsNil(t *testing.T) {
	groups := GroupByVariant([]TraceAnalysis{{File: "only-original.json"}}, DefaultVariantRules())
	comparison, err := Compare(groups)
	if err != nil {
		t.Fatalf("Compare error: %v", err)
	}
	if comparison != nil {
		t.Fatalf("expected nil comparison, got %v", comparison)
	}
}

func TestCompareSkipsNilResolutions(t *testing.T) {
	results := []TraceAnalysis{
		{File: "a-original.json"},
		{File: "b-indexeddb.json"},
	}
	comparison, err := Compare(GroupByVariant(results, DefaultVariantRules()))
	if err != nil {
		t.Fatalf("Compare error: %v", err)
	}
	if _, ok := comparison["original"]["metadata.duration"]; ok {
		t.Fatal("expected metadata.duration to be absent without breadcrumbs")
	}
	if _, ok := comparison["original"]["javascript.totalExecutionTime"]; !ok {
		t.Fatal("expected a totalExecutionTime summary")
	}
}

func TestComparisonPathsOrder(t *testing.T) {
	want := []string{
		"metadata.duration",
		"performance.longTasks.length",
		"javascript.totalExecutionTime",
		"rendering.layoutTime",
		"rendering.paintTime",
	}
	got := ComparisonPaths()
	if len(got) != len(want) {
		t.Fatalf("expected %d paths, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("path %d = %q, want %q", i, got[i], want[i])
		}
	}
}
