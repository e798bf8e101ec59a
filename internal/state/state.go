package state

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"ngscaffold/internal/clock"
	"ngscaffold/pkg/choices"
)

// Record describes one scaffolded app: the answers it was generated with and
// every file the generators have written for it since.
// It is serialized into the project's state file between runs.
type Record struct {
	ID        string          `json:"id"`         // uuid v7, sortable by creation
	AppName   string          `json:"app_name"`   // camelized app name
	Choices   choices.Choices `json:"choices"`    // normalized answers
	Files     []string        `json:"files"`      // slash separated, project relative
	CreatedAt time.Time       `json:"created_at"` // first generation
	UpdatedAt time.Time       `json:"updated_at"` // last generator run
}

// NewRecord creates a record for appName stamped with clk's time.
func NewRecord(appName string, c choices.Choices, clk clock.Clock) *Record {
	now := clk.Now()
	return &Record{
		ID:        uuid.Must(uuid.NewV7()).String(),
		AppName:   appName,
		Choices:   c,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddFiles merges files into the record, keeping the list sorted and unique,
// and bumps UpdatedAt.
func (r *Record) AddFiles(clk clock.Clock, files ...string) {
	for _, f := range files {
		if i, found := slices.BinarySearch(r.Files, f); !found {
			r.Files = slices.Insert(r.Files, i, f)
		}
	}
	r.UpdatedAt = clk.Now()
}

// HasFile reports whether f was generated for this app.
func (r *Record) HasFile(f string) bool {
	_, found := slices.BinarySearch(r.Files, f)
	return found
}
