package cmd

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5/util"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	scerrors "ngscaffold/internal/errors"
	"ngscaffold/internal/htmlwire"
)

func newBlocksCmd(e *env) *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "blocks [file]",
		Short: "List the build blocks of an html file",
		Long: `blocks prints the usemin build blocks of <file> with the sources each
references. The file defaults to index.html below the app path.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return coded(runBlocks(cmd, e, args, asYAML))
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the blocks as YAML")
	return cmd
}

func runBlocks(cmd *cobra.Command, e *env, args []string, asYAML bool) error {
	_, fs, cfg, err := e.project()
	if err != nil {
		return err
	}

	file := path.Join(cfg.AppPath, "index.html")
	if len(args) == 1 {
		file = args[0]
	}

	content, err := util.ReadFile(fs, file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return scerrors.WrapPath(scerrors.EFileNotFound, "file not found", file, err)
		}
		return scerrors.WrapPath(scerrors.EFileUnreadable, "cannot read file", file, err)
	}
	blocks, err := htmlwire.ParseBlocks(content)
	if err != nil {
		return scerrors.WrapPath(scerrors.EInvalidInput, "cannot parse build blocks", file, err)
	}

	out := cmd.OutOrStdout()
	if asYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(blocks); err != nil {
			return fmt.Errorf("encoding blocks: %w", err)
		}
		return enc.Close()
	}

	for _, b := range blocks {
		search := ""
		if len(b.SearchPath) > 0 {
			search = " (" + strings.Join(b.SearchPath, ",") + ")"
		}
		fmt.Fprintf(out, "%s %s%s lines %d-%d\n", b.Type, b.Path, search, b.StartLine, b.EndLine)
		for _, src := range b.Sources {
			fmt.Fprintf(out, "  %s\n", src)
		}
	}
	return nil
}
