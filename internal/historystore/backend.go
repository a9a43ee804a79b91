package historystore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileBackend persists the log as one JSON document at a fixed path, the
// single keyed slot of the device-local history.
type FileBackend struct {
	path string
}

func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (b *FileBackend) Load() ([]Entry, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return nil, err
	}
	var rows []Entry
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (b *FileBackend) Save(entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(b.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(b.path, data, 0o644)
}

// MemoryBackend is an in-memory fake for tests. It round-trips through JSON
// so entries exercise the same serialization as the file backend.
type MemoryBackend struct {
	mu      sync.Mutex
	data    []byte
	LoadErr error
	SaveErr error
	Saves   int
}

func (b *MemoryBackend) Load() ([]Entry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.LoadErr != nil {
		return nil, b.LoadErr
	}
	if b.data == nil {
		return nil, nil
	}
	var rows []Entry
	if err := json.Unmarshal(b.data, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (b *MemoryBackend) Save(entries []Entry) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Saves++
	if b.SaveErr != nil {
		return b.SaveErr
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	b.data = data
	return nil
}
