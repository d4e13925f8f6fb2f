package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAssembliesCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assemblies",
		Aliases: []string{"asm"},
		Short:   "Inspect assemblies",
	}

	cmd.AddCommand(newAssembliesListCommand(ctx))
	cmd.AddCommand(newAssembliesShowCommand(ctx))
	return cmd
}

func newAssembliesListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List assemblies, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(ctx.configValue(), false)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			list, err := a.assemblies.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, "No assemblies")
				return nil
			}
			fmt.Fprintln(out, renderAssemblies(out, list))
			return nil
		},
	}
}

func newAssembliesShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one assembly with its clips",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(ctx.configValue(), false)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			asm, err := a.assemblies.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("assembly %s: %w", args[0], err)
			}
			writeAssemblyDetail(cmd.OutOrStdout(), asm)
			return nil
		},
	}
}
