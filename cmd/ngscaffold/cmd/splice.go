package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/spf13/cobra"

	scerrors "ngscaffold/internal/errors"
	"ngscaffold/internal/splice"
)

type spliceOptions struct {
	marker string
	lines  []string
	within string
	indent bool
	dryRun bool
}

func newSpliceCmd(e *env) *cobra.Command {
	o := &spliceOptions{}
	cmd := &cobra.Command{
		Use:   "splice <file>",
		Short: "Insert lines above the first line containing a marker",
		Long: `splice inserts each --line above the first line of <file> containing
--marker. Lines already present in the block of non-blank lines directly above
the marker are skipped, so running the same splice twice changes nothing.
The file is replaced atomically.`,
		Example: `  ngscaffold splice app/index.html --marker '<!-- endbuild -->' \
    --within 'scripts/scripts.js -->' --indent \
    --line '<script src="scripts/controllers/about.js"></script>'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return coded(runSplice(cmd, e, o, args[0]))
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.marker, "marker", "", "literal text identifying the anchor line")
	f.StringArrayVar(&o.lines, "line", nil, "line to insert (repeatable)")
	f.StringVar(&o.within, "within", "", "only look for the marker at or after the first line containing this text")
	f.BoolVar(&o.indent, "indent", false, "indent inserted lines like the anchor line")
	f.BoolVar(&o.dryRun, "dry-run", false, "print the lines that would be inserted without writing")
	_ = cmd.MarkFlagRequired("marker")
	return cmd
}

func runSplice(cmd *cobra.Command, e *env, o *spliceOptions, file string) error {
	path := file
	if !filepath.IsAbs(path) {
		root, err := e.root()
		if err != nil {
			return err
		}
		path = filepath.Join(root, path)
	}
	fsys := osfs.New(filepath.Dir(path))
	name := filepath.Base(path)
	opts := splice.Options{Within: o.within, Indent: o.indent}

	var res splice.Result
	if o.dryRun {
		content, err := util.ReadFile(fsys, name)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return scerrors.WrapPath(scerrors.EFileNotFound, "file not found", file, err)
			}
			return scerrors.WrapPath(scerrors.EFileUnreadable, "cannot read file", file, err)
		}
		if _, res, err = splice.InsertBefore(content, o.marker, o.lines, opts); err != nil {
			return err
		}
	} else {
		var err error
		if res, err = splice.File(fsys, name, o.marker, o.lines, opts); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	for _, l := range res.Inserted {
		fmt.Fprintf(out, "+ %s\n", l)
	}

	log := e.logger()
	for _, l := range res.Skipped {
		log.Debug("skip %q", l)
	}
	switch {
	case !res.Changed():
		log.Info("identical %s", file)
	case o.dryRun:
		log.Info("would update %s above line %d", file, res.Anchor+1)
	default:
		log.Success("update %s (%d inserted, %d skipped)", file, len(res.Inserted), len(res.Skipped))
	}
	return nil
}
