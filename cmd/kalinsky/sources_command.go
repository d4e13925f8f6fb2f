package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSourcesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List the indexed sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(ctx.configValue(), false)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			sources, err := a.catalog.Sources(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderSources(out, sources))
			return nil
		},
	}
}
