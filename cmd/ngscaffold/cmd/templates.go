package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ngscaffold/internal/templates"
)

func newTemplatesCmd(e *env) *cobra.Command {
	var show string
	cmd := &cobra.Command{
		Use:   "templates [dir]",
		Short: "List the embedded templates",
		Long: `templates lists the templates compiled into ngscaffold, optionally only
those below dir (e.g. "coffeescript-min"). --show prints one template
unrendered.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if show != "" {
				raw, err := templates.Read(show)
				if err != nil {
					return err
				}
				_, err = out.Write(raw)
				return coded(err)
			}

			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			names, err := templates.List(dir)
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(out, n)
			}
			e.logger().Debug("%d templates below %s", len(names), dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&show, "show", "", "print the named template")
	return cmd
}
