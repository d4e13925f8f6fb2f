package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReindexCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Scan the sources directory and rebuild the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(ctx.configValue(), true)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			sources, err := a.catalog.Reindex(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Indexed %d sources\n", len(sources))
			if len(sources) > 0 {
				fmt.Fprintln(out, renderSources(out, sources))
			}
			return nil
		},
	}
}
