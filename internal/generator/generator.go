// Package generator writes new angular apps and their scripts into a project
// filesystem and wires generated scripts into index.html.
package generator

import (
	"bytes"
	"errors"
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"ngscaffold/internal/clock"
	"ngscaffold/internal/config"
	scerrors "ngscaffold/internal/errors"
	"ngscaffold/internal/state"
	"ngscaffold/internal/ui"
	"ngscaffold/pkg/choices"
)

// Generator writes files below the root of FS.
type Generator struct {
	fs     billy.Filesystem
	cfg    *config.Config
	log    *ui.Logger
	clock  clock.Clock
	store  state.RecordStore
	force  bool
	dryRun bool

	written []string
}

// Option configures a Generator.
type Option func(*Generator)

// WithForce overwrites existing files that differ from the generated ones.
func WithForce(force bool) Option {
	return func(g *Generator) { g.force = force }
}

// WithDryRun logs what would be written without touching the filesystem.
func WithDryRun(dryRun bool) Option {
	return func(g *Generator) { g.dryRun = dryRun }
}

// WithClock sets the clock used for state timestamps.
func WithClock(clk clock.Clock) Option {
	return func(g *Generator) { g.clock = clk }
}

// WithStore sets where generation records are kept.
func WithStore(store state.RecordStore) Option {
	return func(g *Generator) { g.store = store }
}

// New returns a generator for the project rooted at fs.
func New(fs billy.Filesystem, cfg *config.Config, log *ui.Logger, opts ...Option) *Generator {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = ui.Discard()
	}
	g := &Generator{
		fs:    fs,
		cfg:   cfg,
		log:   log,
		clock: clock.RealClock{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.store == nil {
		g.store = state.NewFileRecordStore(fs, state.DefaultFile)
	}
	return g
}

// Written returns the files written or found identical so far.
func (g *Generator) Written() []string {
	return append([]string(nil), g.written...)
}

// write creates name with data. An existing file with the same content is
// left alone; one with different content is only replaced when forced.
func (g *Generator) write(name string, data []byte) error {
	existing, err := util.ReadFile(g.fs, name)
	switch {
	case err == nil && bytes.Equal(existing, data):
		g.log.Info("identical %s", name)
		g.written = append(g.written, name)
		return nil
	case err == nil && !g.force:
		g.log.Warn("skip %s (exists, use --force to overwrite)", name)
		return nil
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return scerrors.WrapPath(scerrors.EFileUnreadable, "cannot read existing file", name, err)
	}

	verb := "create"
	if err == nil {
		verb = "force"
	}

	if !g.dryRun {
		if dir := path.Dir(name); dir != "." {
			if err := g.fs.MkdirAll(dir, 0755); err != nil {
				return scerrors.WrapPath(scerrors.EWriteFailure, "cannot create directory", dir, err)
			}
		}
		if err := util.WriteFile(g.fs, name, data, 0644); err != nil {
			return scerrors.WrapPath(scerrors.EWriteFailure, "cannot write file", name, err)
		}
	}

	g.log.Success("%s %s", verb, name)
	g.written = append(g.written, name)
	return nil
}

// record merges the files written so far into the state record of appName.
// An app run also replaces the recorded answers.
func (g *Generator) record(appName string, c choices.Choices, app bool) (*state.Record, error) {
	records, err := g.store.Load()
	if err != nil {
		return nil, scerrors.WrapPath(scerrors.EFileUnreadable, "loading state", state.DefaultFile, err)
	}

	rec := state.Find(records, appName)
	if rec == nil {
		rec = state.NewRecord(appName, c, g.clock)
	} else {
		cp := *rec
		rec = &cp
		if app && rec.Choices.Fingerprint() != c.Fingerprint() {
			g.log.Warn("answers for %s differ from the last run (%s)", appName, rec.Choices.String())
			rec.Choices = c
		}
	}
	rec.AddFiles(g.clock, g.written...)

	if g.dryRun {
		return rec, nil
	}
	if err := g.store.Save(state.Upsert(records, *rec)); err != nil {
		return nil, scerrors.WrapPath(scerrors.EWriteFailure, "saving state", state.DefaultFile, err)
	}
	return rec, nil
}
