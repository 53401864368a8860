// internal/metrics/variants.go
package metrics

import "strings"

// DefaultVariantRules returns the marker rules applied when none are
// configured: indexeddb first, then original.
func DefaultVariantRules() []VariantRule {
	return []VariantRule{
		{Marker: "indexeddb", Name: "indexeddb"},
		{Marker: "original", Name: "original"},
	}
}

// VariantFor resolves the variant a file belongs to. Rules are tested in
// order against the file name; the first marker found wins, and a file
// matching no rule lands in UnknownVariant.
func VariantFor(fileName string, rules []VariantRule) string {
	for _, rule := range rules {
		if strings.Contains(fileName, rule.Marker) {
			return rule.Name
		}
	}
	return UnknownVariant
}

// GroupByVariant buckets analyses by the variant their file name resolves
// to.
func GroupByVariant(results []TraceAnalysis, rules []VariantRule) map[string][]TraceAnalysis {
	groups := map[string][]TraceAnalysis{}
	for _, r := range results {
		name := VariantFor(r.File, rules)
		groups[name] = append(groups[name], r)
	}
	return groups
}
