// Package cmd holds the ngscaffold command line.
package cmd

import (
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"ngscaffold/internal/config"
	scerrors "ngscaffold/internal/errors"
	"ngscaffold/internal/generator"
	"ngscaffold/internal/ui"
)

// Version is set at build time.
var Version = "dev"

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	configPath string
	cwd        string
	verbose    bool
	noColor    bool
}

// env carries the streams and global flags into the subcommands.
type env struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	opts   rootOptions
}

// Run builds the command tree and executes it with args. Errors come back
// coded; anything cobra rejects before a command runs is E_USAGE.
func Run(args []string, in io.Reader, out, errOut io.Writer) error {
	root := newRootCmd(&env{in: in, out: out, errOut: errOut})
	root.SetArgs(args)

	err := root.Execute()
	if err != nil && scerrors.GetCode(err) == "" {
		return scerrors.Wrap(scerrors.EUsage, err.Error(), nil)
	}
	return err
}

func newRootCmd(e *env) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ngscaffold",
		Short: "Scaffold angular apps and wire their scripts into index.html",
		Long: `ngscaffold generates an angular app skeleton and its controllers, services,
directives and filters, referencing each new script from the build blocks
of index.html. The splice command exposes the marker based line insertion
it uses for any file.`,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ui.SetNoColor(e.opts.noColor)
		},
	}
	rootCmd.SetIn(e.in)
	rootCmd.SetOut(e.out)
	rootCmd.SetErr(e.errOut)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return scerrors.Wrap(scerrors.EUsage, err.Error(), nil)
	})

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&e.opts.configPath, "config", config.DefaultFile, "config file, relative to the project root")
	flags.StringVar(&e.opts.cwd, "cwd", "", "project root (default: current directory)")
	flags.BoolVarP(&e.opts.verbose, "verbose", "v", false, "show debug output")
	flags.BoolVar(&e.opts.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		newAppCmd(e),
		newSpliceCmd(e),
		newBlocksCmd(e),
		newInitCmd(e),
		newHistoryCmd(e),
		newTemplatesCmd(e),
	)
	for _, kind := range generator.ScriptKinds {
		rootCmd.AddCommand(newScriptCmd(e, kind))
	}
	return rootCmd
}

func (e *env) logger() *ui.Logger {
	return ui.NewLogger(e.errOut, e.opts.verbose)
}

// root returns the absolute project root.
func (e *env) root() (string, error) {
	dir := e.opts.cwd
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", scerrors.Wrap(scerrors.EInternal, "cannot determine working directory", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", scerrors.WrapPath(scerrors.EInvalidInput, "invalid project root", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", scerrors.NewPath(scerrors.EInvalidInput, "project root is not a directory", abs)
	}
	return abs, nil
}

func (e *env) configFile(root string) string {
	if filepath.IsAbs(e.opts.configPath) {
		return e.opts.configPath
	}
	return filepath.Join(root, e.opts.configPath)
}

// project resolves the root, its filesystem and its config.
func (e *env) project() (string, billy.Filesystem, *config.Config, error) {
	root, err := e.root()
	if err != nil {
		return "", nil, nil, err
	}
	cfg, err := config.Load(e.configFile(root))
	if err != nil {
		return "", nil, nil, err
	}
	return root, osfs.New(root), cfg, nil
}

// coded gives err a code if it has none, so Run does not mistake it for a
// usage error.
func coded(err error) error {
	if err == nil || scerrors.GetCode(err) != "" {
		return err
	}
	return scerrors.Wrap(scerrors.EInternal, err.Error(), err)
}
