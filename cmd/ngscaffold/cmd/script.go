package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	scerrors "ngscaffold/internal/errors"
	"ngscaffold/internal/generator"
	"ngscaffold/internal/project"
	"ngscaffold/pkg/choices"
)

type scriptOptions struct {
	skipAdd    bool
	coffee     bool
	typeScript bool
	minSafe    bool
	force      bool
	dryRun     bool
}

func newScriptCmd(e *env, kind generator.ScriptKind) *cobra.Command {
	o := &scriptOptions{}
	cmd := &cobra.Command{
		Use:   kind.Name + " <name>",
		Short: fmt.Sprintf("Generate an angular %s and its spec", kind.Name),
		Long: fmt.Sprintf(`%s writes scripts/%s/<name> below the app path and its spec below the
test path, then references the script from the scripts block of index.html.
The language follows package.json or existing .coffee sources unless a
language flag is given.`, kind.Name, kind.Dir),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return coded(runScript(cmd, e, kind, o, args[0]))
		},
	}

	f := cmd.Flags()
	f.BoolVar(&o.skipAdd, "skip-add", false, "do not reference the script from index.html")
	f.BoolVar(&o.coffee, "coffee", false, "generate CoffeeScript")
	f.BoolVar(&o.typeScript, "typescript", false, "generate TypeScript")
	f.BoolVar(&o.minSafe, "minsafe", false, "generate minification safe angular code")
	f.BoolVar(&o.force, "force", false, "overwrite files that differ from the generated ones")
	f.BoolVar(&o.dryRun, "dry-run", false, "log what would be written without writing")
	return cmd
}

func runScript(cmd *cobra.Command, e *env, kind generator.ScriptKind, o *scriptOptions, name string) error {
	if strings.TrimSpace(name) == "" {
		return scerrors.New(scerrors.EUsage, kind.Name+" name must not be empty")
	}

	root, fs, cfg, err := e.project()
	if err != nil {
		return err
	}

	meta, err := project.Load(fs, project.Metadata{
		Name:     filepath.Base(root),
		AppPath:  cfg.AppPath,
		TestPath: cfg.TestPath,
	})
	if err != nil {
		return err
	}

	c := choices.Choices{Coffee: o.coffee, TypeScript: o.typeScript, MinSafe: o.minSafe}
	flags := cmd.Flags()
	if err := meta.Resolve(fs, &c, flags.Changed("coffee"), flags.Changed("typescript")); err != nil {
		return err
	}

	log := e.logger()
	log.Debug("project %s: app %s, test %s, language %s", meta.Name, meta.AppPath, meta.TestPath, c.Language())

	g := generator.New(fs, cfg, log,
		generator.WithForce(o.force),
		generator.WithDryRun(o.dryRun),
	)
	_, err = g.Script(kind, generator.ScriptOptions{
		Name:    name,
		Meta:    meta,
		Choices: c,
		SkipAdd: o.skipAdd,
	})
	return err
}
