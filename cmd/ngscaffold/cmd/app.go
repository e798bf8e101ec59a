package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"ngscaffold/internal/generator"
	"ngscaffold/internal/gitutil"
	"ngscaffold/internal/prompt"
	"ngscaffold/pkg/choices"
)

type appOptions struct {
	coffee     bool
	typeScript bool
	minSafe    bool
	appSuffix  string
	defaults   bool
	git        bool
	force      bool
	dryRun     bool
}

func newAppCmd(e *env) *cobra.Command {
	o := &appOptions{}
	cmd := &cobra.Command{
		Use:   "app [name]",
		Short: "Generate a new angular app",
		Long: `app asks which features the app should have and writes index.html, the
bower, npm and grunt files, the main view, the app script and the main
controller. The name defaults to the project directory name.

Answers come from the terminal, from the answers block of ngscaffold.yaml,
or from the prompt defaults with --defaults.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return coded(runApp(cmd, e, o, args))
		},
	}

	f := cmd.Flags()
	f.BoolVar(&o.coffee, "coffee", false, "generate CoffeeScript")
	f.BoolVar(&o.typeScript, "typescript", false, "generate TypeScript")
	f.BoolVar(&o.minSafe, "minsafe", false, "generate minification safe angular code")
	f.StringVar(&o.appSuffix, "app-suffix", "", `suffix of the angular module name (default "App")`)
	f.BoolVar(&o.defaults, "defaults", false, "accept every prompt default without asking")
	f.BoolVar(&o.git, "git", false, "initialize a git repository if there is none")
	f.BoolVar(&o.force, "force", false, "overwrite files that differ from the generated ones")
	f.BoolVar(&o.dryRun, "dry-run", false, "log what would be written without writing")
	return cmd
}

func runApp(cmd *cobra.Command, e *env, o *appOptions, args []string) error {
	root, fs, cfg, err := e.project()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("app-suffix") {
		suffix := o.appSuffix
		cfg.AppSuffix = &suffix
	}

	name := filepath.Base(root)
	if len(args) == 1 {
		name = args[0]
	}

	flags := cmd.Flags()
	settled := map[string]bool{}
	if flags.Changed("coffee") {
		settled[prompt.NameCoffee] = o.coffee
	}
	if flags.Changed("typescript") {
		settled[prompt.NameTypeScript] = o.typeScript
	}

	var p prompt.Prompter
	switch {
	case cfg.Answers != nil:
		p = prompt.FromChoices(*cfg.Answers)
	case o.defaults:
		p = prompt.FromChoices(choices.Defaults())
	default:
		p = prompt.NewTUI(e.in, e.errOut)
	}
	if len(settled) > 0 {
		p = &prompt.Preset{Prompter: p, Bools: settled}
	}

	log := e.logger()
	g := generator.New(fs, cfg, log,
		generator.WithForce(o.force),
		generator.WithDryRun(o.dryRun),
	)
	rec, err := g.App(generator.AppOptions{
		Name:     name,
		Choices:  choices.Choices{MinSafe: o.minSafe},
		Prompter: p,
	})
	if err != nil {
		return err
	}

	if o.git && !o.dryRun {
		created, err := gitutil.Init(cmd.Context(), root)
		if err != nil {
			log.Warn("git init failed: %v", err)
		} else if created {
			log.Success("initialized git repository in %s", root)
		}
	}

	log.Success("app %s ready (%d files)", rec.AppName, len(g.Written()))
	if !o.dryRun {
		log.Info("Run 'bower install && npm install' to install the dependencies.")
	}
	return nil
}
