package task

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/natefinch/atomic"
)

const filePerms = 0o600

// Store persists a State document to a single JSON file. Every mutation
// rewrites the whole file, so on disk the state is always consistent with
// exactly the last completed operation.
type Store struct {
	path string
}

// NewStore returns a store backed by the file at path. The file is not
// touched until Load or Save is called.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the state from disk. A missing or empty file establishes the
// empty default. Unparseable content, or content missing the "tasks" or
// "count" field, is discarded the same way: the default state is written
// back and returned instead of failing the process.
func (s *Store) Load() (State, error) {
	data, err := os.ReadFile(s.path)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return s.reset()
	case err != nil:
		return State{}, fmt.Errorf("read tasks file: %w", err)
	case len(data) == 0:
		return s.reset()
	}

	st, ok := decodeState(data)
	if !ok {
		return s.reset()
	}

	return st, nil
}

// Save writes the full state to disk, pretty-printed, via an atomic
// temp-file-then-rename so a crash never leaves a half-written document.
func (s *Store) Save(st State) error {
	data, err := json.MarshalIndent(st, "", "    ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	data = append(data, '\n')

	writeErr := atomic.WriteFile(s.path, bytes.NewReader(data))
	if writeErr != nil {
		return fmt.Errorf("write tasks file: %w", writeErr)
	}

	// Set file permissions (atomic.WriteFile doesn't set them for new files)
	chmodErr := os.Chmod(s.path, filePerms)
	if chmodErr != nil {
		return fmt.Errorf("set tasks file permissions: %w", chmodErr)
	}

	return nil
}

// reset is the corrupt-file recovery policy: drop whatever was on disk and
// persist the empty default immediately, so that the file exists and is
// well-formed after every Load.
func (s *Store) reset() (State, error) {
	st := NewState()

	err := s.Save(st)
	if err != nil {
		return State{}, err
	}

	return st, nil
}

// decodeState parses data as a state document. The document must be a JSON
// object carrying both a "tasks" and a "count" field; anything else is
// treated as corrupt.
func decodeState(data []byte) (State, bool) {
	var raw map[string]json.RawMessage

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return State{}, false
	}

	if _, ok := raw["tasks"]; !ok {
		return State{}, false
	}

	if _, ok := raw["count"]; !ok {
		return State{}, false
	}

	var st State

	unmarshalErr := json.Unmarshal(data, &st)
	if unmarshalErr != nil {
		return State{}, false
	}

	if st.Tasks == nil {
		st.Tasks = []Task{}
	}

	return st, true
}
