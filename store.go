package ruuid

import (
	"encoding/json"
	"os"
)

// State is the durable slice of a generator: enough to keep the V1 values
// of a new process run distinct from those of an earlier run on the same
// node, as RFC 4122 §4.2.1 recommends. Without it, two runs inside the
// same clock tick could reuse a clock sequence.
type State struct {
	NodeID        [6]byte `json:"node_id"`
	ClockSequence uint16  `json:"clock_sequence"`
	LastTicks     uint64  `json:"last_ticks"`
}

// StateStore loads and saves generator state across process restarts.
// Implementations must be safe for use from a single generator; they are
// only called at construction and from explicit SaveState checkpoints.
type StateStore interface {
	// Load returns the stored state, and false when none has been saved
	// yet.
	Load() (State, bool, error)
	Save(State) error
}

// FileStore persists generator state as a JSON file, the simplest stable
// storage RFC 4122 asks for. See others/mysqlstate and others/zkstate for
// stores backed by shared infrastructure.
type FileStore struct {
	Path string
}

// Load implements StateStore. A missing file is not an error; it reports
// that no state has been saved yet.
func (s *FileStore) Load() (State, bool, error) {
	var st State
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return st, false, nil
	}
	if err != nil {
		return st, false, err
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return st, false, err
	}
	return st, true, nil
}

// Save implements StateStore.
func (s *FileStore) Save(st State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0600)
}
