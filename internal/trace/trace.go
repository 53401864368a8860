// internal/trace/trace.go

// Package trace loads Chrome DevTools performance trace exports and gives
// the analysis layers defensive access to their loosely typed fields.
package trace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Event mirrors one entry of a trace's traceEvents array. Timestamps and
// durations are microseconds as recorded by the browser; dur is absent on
// instant events, so it stays a pointer.
type Event struct {
	Name string         `json:"name"`
	Cat  string         `json:"cat,omitempty"`
	Ph   string         `json:"ph,omitempty"`
	Ts   float64        `json:"ts"`
	Dur  *float64       `json:"dur,omitempty"`
	Args map[string]any `json:"args,omitempty"`
}

// DurMS reports the event duration in milliseconds and whether the event
// carries a duration at all.
func (e Event) DurMS() (float64, bool) {
	if e.Dur == nil {
		return 0, false
	}
	return *e.Dur / 1000, true
}

// TsMS reports the event timestamp in milliseconds.
func (e Event) TsMS() float64 {
	return e.Ts / 1000
}

// Data returns args.data when it is an object, nil otherwise.
func (e Event) Data() map[string]any {
	return childObject(e.Args, "data")
}

// BeginData returns args.beginData when it is an object, nil otherwise.
func (e Event) BeginData() map[string]any {
	return childObject(e.Args, "beginData")
}

// File is one parsed trace: the event stream plus the export metadata.
// Metadata stays a generic map because DevTools exports vary between
// versions; callers read it through the field helpers.
type File struct {
	Name     string         `json:"-"`
	Events   []Event        `json:"traceEvents"`
	Metadata map[string]any `json:"metadata"`
}

// DurationMS derives the recording duration in milliseconds from
// metadata.modifications.initialBreadcrumb.window.range. Nil when the
// breadcrumb chain is absent.
func (f File) DurationMS() *float64 {
	mods := childObject(f.Metadata, "modifications")
	crumb := childObject(mods, "initialBreadcrumb")
	window := childObject(crumb, "window")
	r, ok := FloatField(window, "range")
	if !ok {
		return nil
	}
	ms := r / 1000
	return &ms
}

// traceSchema pins down the only shape requirements a trace document must
// meet: a traceEvents array of objects and a metadata object. Everything
// below that is optional and read defensively.
var traceSchema = map[string]any{
	"type":     "object",
	"required": []any{"traceEvents", "metadata"},
	"properties": map[string]any{
		"traceEvents": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "object"},
		},
		"metadata": map[string]any{"type": "object"},
	},
}

// Parse validates and decodes one trace document.
func Parse(data []byte) (File, error) {
	schemaLoader := gojsonschema.NewGoLoader(traceSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return File{}, fmt.Errorf("unable to parse trace document: %w", err)
	}
	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			issues = append(issues, desc.String())
		}
		return File{}, fmt.Errorf("trace document failed validation: %s", strings.Join(issues, "; "))
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return File{}, fmt.Errorf("unable to decode trace document: %w", err)
	}
	return file, nil
}

// LoadFile reads and parses a trace file from disk. The file's base name
// is recorded on the result for variant matching and reporting.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("unable to read trace file %s: %w", path, err)
	}
	file, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("trace file %s: %w", path, err)
	}
	file.Name = filepath.Base(path)
	return file, nil
}

// FloatField reads a numeric field from a decoded JSON object.
func FloatField(m map[string]any, key string) (float64, bool) {
	v, ok := m[key].(float64)
	return v, ok
}

// StringField reads a string field from a decoded JSON object.
func StringField(m map[string]any, key string) (string, bool) {
	v, ok := m[key].(string)
	return v, ok
}

// BoolField reads a boolean field from a decoded JSON object.
func BoolField(m map[string]any, key string) (bool, bool) {
	v, ok := m[key].(bool)
	return v, ok
}

func childObject(m map[string]any, key string) map[string]any {
	child, _ := m[key].(map[string]any)
	return child
}
