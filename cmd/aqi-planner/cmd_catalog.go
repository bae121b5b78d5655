package main

import (
	"github.com/spf13/cobra"

	"github.com/iwvelando/aqi-planner/pkg/output"
)

func newCatalogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the intervention catalog used by the optimizer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return output.Write(cmd.OutOrStdout(), a.planner.Catalog(), a.outputFormat, a.indent())
		},
	}
}
