// baseline/types.go
package baseline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Sample is one recorded value of a named numeric field. Present is
// false when the producer left the field out or recorded an explicit
// null; the two spellings are equivalent on the wire.
type Sample struct {
	Value   float64 `json:"value"`
	Present bool    `json:"present"`
}

// ModeKind classifies how a scenario was executed.
type ModeKind int

const (
	// Steady is a steady-state solve, recorded as a bare tag string.
	Steady ModeKind = iota
	// Transient is a time-stepping solve, recorded as an object that
	// carries the integration window.
	Transient
)

// TransientParams is the integration window a transient scenario ran
// with. The values are producer metadata and pass through untouched.
type TransientParams struct {
	DtS   float64 `json:"dt_s"`    // step size, seconds
	TEndS float64 `json:"t_end_s"` // end time, seconds
}

// Mode is a scenario's execution mode. The zero value is steady.
type Mode struct {
	Kind   ModeKind
	Params TransientParams // meaningful only when Kind is Transient
}

// UnmarshalJSON classifies the mode structurally: a JSON object is
// transient, anything else (tag string, null, absent) is steady. The
// integration window inside the object is informational, so a
// malformed one does not reject the snapshot.
func (m *Mode) UnmarshalJSON(data []byte) error {
	m.Kind = Steady
	m.Params = TransientParams{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}
	m.Kind = Transient
	var payload struct {
		Transient TransientParams `json:"Transient"`
	}
	if err := json.Unmarshal(trimmed, &payload); err == nil {
		m.Params = payload.Transient
	}
	return nil
}

// String returns the label reports display for the mode.
func (m Mode) String() string {
	if m.Kind == Transient {
		return "Transient"
	}
	return "Steady"
}

// Scenario identifies one benchmark case. Everything beyond ID, Name,
// and Mode is producer metadata carried through for display.
type Scenario struct {
	ID          string `json:"id"`   // unique within a snapshot
	Name        string `json:"name"` // human-readable label
	Mode        Mode   `json:"mode"`
	ProjectPath string `json:"project_path"`
	SystemID    string `json:"system_id"`
	Supported   bool   `json:"supported"`
	Notes       string `json:"notes"`
}

// rawFields is a lazily decoded JSON object. Values stay raw until a
// caller asks for one by name, so a wrong-typed recording only fails
// the analysis that actually touches it.
type rawFields map[string]json.RawMessage

func (f rawFields) sample(name string) (Sample, error) {
	raw, ok := f[name]
	if !ok {
		return Sample{}, nil
	}
	trimmed := bytes.TrimSpace(raw)
	if string(trimmed) == "null" {
		return Sample{}, nil
	}
	var v float64
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return Sample{}, &LoadError{Err: fmt.Errorf("field %q holds %s, expected a number", name, trimmed)}
	}
	return Sample{Value: v, Present: true}, nil
}

func (f rawFields) has(name string) bool {
	raw, ok := f[name]
	return ok && string(bytes.TrimSpace(raw)) != "null"
}

func (f rawFields) names() []string {
	out := make([]string, 0, len(f))
	for name := range f {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Run is one timed execution of a scenario.
type Run struct {
	fields rawFields
}

// UnmarshalJSON keeps every field raw for on-demand decoding.
func (r *Run) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.fields)
}

// Field returns the named numeric field. Absent and null recordings
// yield an absent Sample; a non-numeric value is a load error.
func (r Run) Field(name string) (Sample, error) {
	return r.fields.sample(name)
}

// Has reports whether the run recorded the named field. A null
// recording counts as absent.
func (r Run) Has(name string) bool {
	return r.fields.has(name)
}

// Fields lists the run's recorded field names in sorted order.
func (r Run) Fields() []string {
	return r.fields.names()
}

// Aggregate holds the producer's precomputed per-scenario medians.
// Like Run it decodes lazily, one field at a time.
type Aggregate struct {
	fields rawFields
}

// UnmarshalJSON keeps every field raw for on-demand decoding.
func (a *Aggregate) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &a.fields)
}

// Field returns the named aggregate value, absent when the producer
// did not record that key.
func (a Aggregate) Field(name string) (Sample, error) {
	return a.fields.sample(name)
}

// Has reports whether the aggregate carries the named key.
func (a Aggregate) Has(name string) bool {
	return a.fields.has(name)
}

// AggregateKey maps a run field name to the producer's precomputed
// median key for it: timing fields insert "median" before the unit
// suffix, counters append it. For example "solve_time_s" becomes
// "solve_time_median_s" and "rhs_calls" becomes "rhs_calls_median".
func AggregateKey(field string) string {
	if strings.HasSuffix(field, "_s") {
		return strings.TrimSuffix(field, "_s") + "_median_s"
	}
	return field + "_median"
}

// ScenarioResult groups a scenario with its recorded runs and, when
// the producer wrote one, its precomputed aggregate.
type ScenarioResult struct {
	Scenario  Scenario   `json:"scenario"`
	Runs      []Run      `json:"runs"`
	Aggregate *Aggregate `json:"aggregate"` // nil when absent or null
}

// Snapshot is one recorded benchmark baseline, scenarios in the order
// the producer wrote them.
type Snapshot struct {
	Timestamp string           `json:"timestamp"`
	Results   []ScenarioResult `json:"results"`

	// Path is where the snapshot was loaded from, kept for messages.
	Path string `json:"-"`
}

// FieldCount says how many of a scenario's runs recorded a field.
type FieldCount struct {
	Field string `json:"field"`
	Runs  int    `json:"runs"`
}

// Inventory tallies which fields a scenario's runs actually recorded,
// sorted by field name. Snapshots written before an instrumentation
// pass simply lack that pass's fields, and this makes the gap visible.
func Inventory(sr ScenarioResult) []FieldCount {
	counts := make(map[string]int)
	for _, run := range sr.Runs {
		for _, name := range run.Fields() {
			if run.Has(name) {
				counts[name]++
			}
		}
	}
	out := make([]FieldCount, 0, len(counts))
	for field, n := range counts {
		out = append(out, FieldCount{Field: field, Runs: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}
