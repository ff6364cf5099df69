// baseline/loader.go
package baseline

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON string

// snapshotSchema checks structural shape only: the results sequence,
// scenario id and name strings, runs arrays. Numeric fields are left
// unconstrained on purpose; a wrong-typed number surfaces when an
// analysis uses it, not at load.
var snapshotSchema = jsonschema.MustCompileString("snapshot.schema.json", schemaJSON)

// LoadError reports a snapshot that could not be read or understood.
// Analyses that needed the snapshot abort; there is no partial report.
type LoadError struct {
	Path string // source file, when known
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("could not load %s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads and parses the snapshot at path. Scenario and run order
// are preserved exactly as stored.
func Load(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, &LoadError{Path: path, Err: err}
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Snapshot{}, &LoadError{Path: path, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := snapshotSchema.Validate(doc); err != nil {
		return Snapshot{}, &LoadError{Path: path, Err: fmt.Errorf("unexpected snapshot shape: %w", err)}
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, &LoadError{Path: path, Err: err}
	}
	snap.Path = path
	return snap, nil
}
