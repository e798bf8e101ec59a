// Package splice inserts lines into a text file immediately before a marker
// line. Repeated calls with the same lines converge: lines already present in
// the block above the marker are not inserted again.
package splice

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	scerrors "ngscaffold/internal/errors"
)

// Options tunes where and how lines are inserted.
type Options struct {
	// Within, when set, restricts the anchor search to lines at or after the
	// first line containing Within. Used to pick one of several identical
	// markers, e.g. the <!-- endbuild --> closing a particular build block.
	Within string

	// Indent gives inserted lines the anchor line's leading whitespace.
	Indent bool
}

// Result describes what a splice did.
type Result struct {
	Anchor   int      // 0-based index of the anchor line in the original document
	Inserted []string // lines written, in order, before any indentation
	Skipped  []string // lines already present above the anchor (or blank)
}

// Changed reports whether any line was inserted.
func (r Result) Changed() bool {
	return len(r.Inserted) > 0
}

// InsertBefore inserts lines before the first line of content containing
// marker and returns the new content. When every line is already present the
// original content is returned unchanged.
//
// Presence is decided on whitespace-trimmed text: "  x" is skipped when the
// block of non-blank lines directly above the anchor already holds "x", and
// repeated entries in lines are inserted once. Blank entries are never
// inserted.
func InsertBefore(content []byte, marker string, lines []string, opts Options) ([]byte, Result, error) {
	if err := validate(marker, lines); err != nil {
		return nil, Result{}, err
	}

	doc := Parse(content)

	from := 0
	if opts.Within != "" {
		from = doc.Index(opts.Within, 0)
		if from < 0 {
			return nil, Result{}, scerrors.New(scerrors.EMarkerNotFound,
				fmt.Sprintf("section %q not found", opts.Within))
		}
	}

	anchor := doc.Index(marker, from)
	if anchor < 0 {
		return nil, Result{}, scerrors.New(scerrors.EMarkerNotFound,
			fmt.Sprintf("marker %q not found", marker))
	}

	res := Result{Anchor: anchor}
	res.Inserted, res.Skipped = partition(doc.PrecedingBlock(anchor), lines)
	if !res.Changed() {
		return content, res, nil
	}

	texts := res.Inserted
	if opts.Indent {
		indent := leadingWhitespace(doc.Lines[anchor].Text)
		texts = make([]string, len(res.Inserted))
		for i, l := range res.Inserted {
			texts[i] = indent + strings.TrimLeft(l, " \t")
		}
	}

	rw := newDocumentRewriter(doc)
	rw.CopyLinesUntil(anchor)
	rw.InsertLines(texts)
	rw.CopyRemainingLines()
	return rw.Bytes(), res, nil
}

// File splices lines into path on fsys and replaces the file atomically.
// Nothing is written when no line needs inserting.
func File(fsys billy.Filesystem, path, marker string, lines []string, opts Options) (Result, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{}, scerrors.WrapPath(scerrors.EFileNotFound, "file not found", path, err)
		}
		return Result{}, scerrors.WrapPath(scerrors.EFileUnreadable, "cannot stat file", path, err)
	}
	if info.IsDir() {
		return Result{}, scerrors.NewPath(scerrors.EFileUnreadable, "is a directory", path)
	}

	content, err := util.ReadFile(fsys, path)
	if err != nil {
		return Result{}, scerrors.WrapPath(scerrors.EFileUnreadable, "cannot read file", path, err)
	}

	out, res, err := InsertBefore(content, marker, lines, opts)
	if err != nil {
		return Result{}, withPath(err, path)
	}
	if !res.Changed() {
		return res, nil
	}

	if err := writeFileAtomic(fsys, path, out, info.Mode().Perm()); err != nil {
		return Result{}, scerrors.WrapPath(scerrors.EWriteFailure, "cannot replace file", path, err)
	}
	return res, nil
}

// Path splices lines into the file at path on the OS filesystem.
func Path(path, marker string, lines []string) (Result, error) {
	fsys := osfs.New(filepath.Dir(path))
	return File(fsys, filepath.Base(path), marker, lines, Options{})
}

func validate(marker string, lines []string) error {
	if marker == "" {
		return scerrors.New(scerrors.EInvalidInput, "marker must not be empty")
	}
	if strings.ContainsAny(marker, "\r\n") {
		return scerrors.New(scerrors.EInvalidInput, "marker must be a single line")
	}
	for i, l := range lines {
		if strings.ContainsAny(l, "\r\n") {
			return scerrors.New(scerrors.EInvalidInput,
				fmt.Sprintf("line %d contains a line terminator", i))
		}
	}
	return nil
}

// partition splits lines into those to insert and those to skip. A line is
// skipped when its trimmed text already appears in block or earlier in lines.
// Blank lines are always skipped: they would end the block and stop later
// runs from recognizing what was inserted.
func partition(block, lines []string) (insert, skip []string) {
	seen := make(map[string]struct{}, len(block)+len(lines))
	for _, b := range block {
		seen[strings.TrimSpace(b)] = struct{}{}
	}
	for _, l := range lines {
		key := strings.TrimSpace(l)
		if key == "" {
			skip = append(skip, l)
			continue
		}
		if _, ok := seen[key]; ok {
			skip = append(skip, l)
			continue
		}
		seen[key] = struct{}{}
		insert = append(insert, l)
	}
	return insert, skip
}

// withPath attaches path to a path-less error from InsertBefore.
func withPath(err error, path string) error {
	var e *scerrors.Error
	if errors.As(err, &e) && e.Path == "" {
		cp := *e
		cp.Path = path
		return &cp
	}
	return err
}
