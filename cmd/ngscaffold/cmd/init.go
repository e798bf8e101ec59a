package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"ngscaffold/internal/config"
	scerrors "ngscaffold/internal/errors"
	"ngscaffold/pkg/choices"
)

func newInitCmd(e *env) *cobra.Command {
	var force, answers bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an ngscaffold.yaml with the default settings",
		Long: `init writes the config file named by --config into the project root.
With --answers it includes the default prompt answers, which makes app run
without asking.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := e.root()
			if err != nil {
				return err
			}
			path := e.configFile(root)
			if _, err := os.Stat(path); err == nil && !force {
				return scerrors.NewPath(scerrors.EInvalidInput, "config already exists, use --force to overwrite", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return scerrors.WrapPath(scerrors.EFileUnreadable, "cannot stat config", path, err)
			}

			cfg := config.Default()
			suffix := cfg.Suffix()
			cfg.AppSuffix = &suffix
			if answers {
				c := choices.Defaults()
				cfg.Answers = &c
			}
			if err := config.Save(path, cfg); err != nil {
				return coded(err)
			}
			e.logger().Success("create %s", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config")
	cmd.Flags().BoolVar(&answers, "answers", false, "include the default prompt answers")
	return cmd
}
