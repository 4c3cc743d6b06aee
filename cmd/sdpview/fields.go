package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jwulff/sdpview/internal/explain"
	"github.com/jwulff/sdpview/internal/format"
)

func fieldsCmd(o *options) *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   "fields [attribute...]",
		Short: "List the attributes sdpview can explain",
		Long: "With no arguments, lists every attribute that has an explanation.\n" +
			"With arguments, checks each name (with or without the a= prefix) and\n" +
			"fails naming the ones that have none.",
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := explain.Fields()
			if len(args) > 0 {
				fields = fields[:0]
				var missing []string
				for _, a := range args {
					name := strings.TrimPrefix(strings.TrimSpace(a), "a=")
					if explain.Explained(name) {
						fields = append(fields, name)
					} else {
						missing = append(missing, name)
					}
				}
				if len(missing) > 0 {
					return fmt.Errorf("no explanation for %s", strings.Join(missing, ", "))
				}
			}

			w := cmd.OutOrStdout()
			fm, opts, err := out.resolve(o, w, 0)
			if err != nil {
				return err
			}
			return format.WriteFields(w, fields, fm, opts)
		},
	}
	out.register(cmd)
	return cmd
}
