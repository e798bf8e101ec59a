package state

import (
	"encoding/json"
	"errors"
	"os"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// DefaultFile is the state file written to the project root.
const DefaultFile = ".ngscaffold.json"

// RecordStore abstracts state persistence for testability.
type RecordStore interface {
	Load() ([]Record, error)
	Save([]Record) error
}

// FileRecordStore implements RecordStore using a JSON file on fs.
type FileRecordStore struct {
	FS   billy.Filesystem
	File string
}

func NewFileRecordStore(fs billy.Filesystem, file string) *FileRecordStore {
	if file == "" {
		file = DefaultFile
	}
	return &FileRecordStore{FS: fs, File: file}
}

func (s *FileRecordStore) Load() ([]Record, error) {
	data, err := util.ReadFile(s.FS, s.File)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *FileRecordStore) Save(records []Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return util.WriteFile(s.FS, s.File, append(data, '\n'), 0644)
}

// InMemoryRecordStore implements RecordStore for testing (no disk I/O).
type InMemoryRecordStore struct {
	mu      sync.Mutex
	records []Record
}

func NewInMemoryRecordStore() *InMemoryRecordStore {
	return &InMemoryRecordStore{}
}

func (s *InMemoryRecordStore) Load() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneRecords(s.records), nil
}

func (s *InMemoryRecordStore) Save(records []Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = cloneRecords(records)
	return nil
}

func cloneRecords(records []Record) []Record {
	if records == nil {
		return nil
	}
	cpy := make([]Record, len(records))
	for i, r := range records {
		r.Files = append([]string(nil), r.Files...)
		r.Choices.Modules = append([]string(nil), r.Choices.Modules...)
		cpy[i] = r
	}
	return cpy
}

// Find returns the record for appName, or nil.
func Find(records []Record, appName string) *Record {
	for i := range records {
		if records[i].AppName == appName {
			return &records[i]
		}
	}
	return nil
}

// Upsert replaces the record with rec's ID or appends rec.
func Upsert(records []Record, rec Record) []Record {
	for i := range records {
		if records[i].ID == rec.ID {
			records[i] = rec
			return records
		}
	}
	return append(records, rec)
}

// Remove drops the record with the given ID.
func Remove(records []Record, id string) []Record {
	var out []Record
	for _, r := range records {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}
