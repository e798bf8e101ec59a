package state

import (
	"reflect"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	"ngscaffold/pkg/choices"
)

func sampleRecords() []Record {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)
	return []Record{
		{
			ID:        "0190f1e2-0000-7000-8000-000000000001",
			AppName:   "demo",
			Choices:   choices.Choices{Bootstrap: true, Modules: []string{"route"}},
			Files:     []string{"app/index.html", "bower.json"},
			CreatedAt: created,
			UpdatedAt: updated,
		},
		{
			ID:        "0190f1e2-0000-7000-8000-000000000002",
			AppName:   "other",
			Choices:   choices.Choices{TypeScript: true, Modules: []string{"resource"}},
			Files:     []string{"app/scripts/app.ts"},
			CreatedAt: created,
			UpdatedAt: created,
		},
	}
}

func TestInMemoryRecordStore_Basic(t *testing.T) {
	store := NewInMemoryRecordStore()
	records := sampleRecords()

	if err := store.Save(records); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(records, loaded) {
		t.Errorf("Loaded records do not match saved records.\nGot:  %+v\nWant: %+v", loaded, records)
	}

	// Mutating the loaded copy must not leak into the store.
	loaded[0].Files[0] = "changed"
	again, _ := store.Load()
	if again[0].Files[0] != "app/index.html" {
		t.Errorf("store shares backing arrays with callers")
	}
}

func TestFileRecordStore_Basic(t *testing.T) {
	fs := memfs.New()
	store := NewFileRecordStore(fs, "")
	if store.File != DefaultFile {
		t.Errorf("File = %q, want %q", store.File, DefaultFile)
	}

	// Missing file loads as empty.
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load on missing file failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected no records, got %+v", loaded)
	}

	records := sampleRecords()
	if err := store.Save(records); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err = store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(records, loaded) {
		t.Errorf("Loaded records do not match saved records.\nGot:  %+v\nWant: %+v", loaded, records)
	}
}

func TestFileRecordStore_EmptyAndCorrupt(t *testing.T) {
	fs := memfs.New()
	store := NewFileRecordStore(fs, "state.json")

	if err := util.WriteFile(fs, "state.json", nil, 0644); err != nil {
		t.Fatal(err)
	}
	if loaded, err := store.Load(); err != nil || len(loaded) != 0 {
		t.Errorf("empty file: got %+v, %v", loaded, err)
	}

	if err := util.WriteFile(fs, "state.json", []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Load(); err == nil {
		t.Error("expected error for corrupt state file")
	}
}

func TestFindUpsertRemove(t *testing.T) {
	records := sampleRecords()

	if r := Find(records, "other"); r == nil || r.ID != records[1].ID {
		t.Errorf("Find(other) = %+v", r)
	}
	if r := Find(records, "missing"); r != nil {
		t.Errorf("Find(missing) = %+v, want nil", r)
	}

	updated := records[0]
	updated.Files = []string{"app/index.html"}
	records = Upsert(records, updated)
	if len(records) != 2 || len(records[0].Files) != 1 {
		t.Errorf("Upsert did not replace existing record: %+v", records)
	}

	records = Upsert(records, Record{ID: "new", AppName: "third"})
	if len(records) != 3 || records[2].AppName != "third" {
		t.Errorf("Upsert did not append new record: %+v", records)
	}

	records = Remove(records, records[0].ID)
	if len(records) != 2 || records[0].AppName != "other" {
		t.Errorf("Remove did not remove the correct record: %+v", records)
	}
}
