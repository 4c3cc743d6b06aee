package main

import (
	"github.com/spf13/cobra"

	"github.com/jwulff/sdpview/internal/db"
	"github.com/jwulff/sdpview/internal/format"
)

func listCmd(o *options) *cobra.Command {
	var (
		out   outputFlags
		limit int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List captured descriptions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := db.Open(o.cfg.DB.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			captures, err := store.List(limit)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fm, opts, err := out.resolve(o, w, 0)
			if err != nil {
				return err
			}
			return format.WriteCaptures(w, captures, fm, opts)
		},
	}
	out.register(cmd)
	cmd.Flags().IntVarP(&limit, "limit", "n", db.DefaultListLimit, "maximum captures to list")
	return cmd
}
