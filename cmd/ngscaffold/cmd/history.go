package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	scerrors "ngscaffold/internal/errors"
	"ngscaffold/internal/state"
)

type historyOptions struct {
	files  bool
	file   string
	forget string
}

func newHistoryCmd(e *env) *cobra.Command {
	o := &historyOptions{}
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the apps generated in this project",
		Long: `history lists the generation records kept in .ngscaffold.json: one per
app with its answers and every file written for it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return coded(runHistory(cmd, e, o))
		},
	}
	f := cmd.Flags()
	f.BoolVar(&o.files, "files", false, "list the generated files of each app")
	f.StringVar(&o.file, "file", "", "only show apps that generated this file")
	f.StringVar(&o.forget, "forget", "", "drop the record of the named app")
	return cmd
}

func runHistory(cmd *cobra.Command, e *env, o *historyOptions) error {
	_, fs, _, err := e.project()
	if err != nil {
		return err
	}
	store := state.NewFileRecordStore(fs, state.DefaultFile)
	records, err := store.Load()
	if err != nil {
		return scerrors.WrapPath(scerrors.EFileUnreadable, "loading state", state.DefaultFile, err)
	}

	if o.forget != "" {
		rec := state.Find(records, o.forget)
		if rec == nil {
			return scerrors.New(scerrors.EInvalidInput, "no record for app "+o.forget)
		}
		id := rec.ID
		if err := store.Save(state.Remove(records, id)); err != nil {
			return scerrors.WrapPath(scerrors.EWriteFailure, "saving state", state.DefaultFile, err)
		}
		e.logger().Success("forgot %s (%s)", o.forget, id)
		return nil
	}

	out := cmd.OutOrStdout()
	for _, r := range records {
		if o.file != "" && !r.HasFile(o.file) {
			continue
		}
		fmt.Fprintf(out, "%s %s %s, %d files, updated %s\n",
			r.AppName, r.ID, r.Choices.String(), len(r.Files), r.UpdatedAt.Format(time.RFC3339))
		if o.files {
			for _, f := range r.Files {
				fmt.Fprintf(out, "  %s\n", f)
			}
		}
	}
	return nil
}
