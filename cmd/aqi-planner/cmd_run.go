package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iwvelando/aqi-planner/internal/request"
	"github.com/iwvelando/aqi-planner/pkg/output"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run [JSON]",
		Short: "Execute the action named in the input document",
		Long: "Reads a JSON document from the argument or stdin. The \"action\" field selects\n" +
			"full_analysis (default), intervention_effectiveness or optimize.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.execute(cmd, args, "")
		},
	}
}

func newActionCmd(a *app, use, short, action string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [JSON]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.execute(cmd, args, action)
		},
	}
}

func (a *app) execute(cmd *cobra.Command, args []string, action string) error {
	data, err := request.Read(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	req, err := request.Parse(data, action)
	if err != nil {
		a.logger.Error("rejected input document",
			zap.String("op", "main.execute"),
			zap.Error(err),
		)
		return err
	}

	result, err := a.planner.Execute(req)
	if err != nil {
		return err
	}

	a.logger.Info("request completed",
		zap.String("op", "main.execute"),
		zap.String("action", req.Action),
	)
	return output.Write(cmd.OutOrStdout(), result, a.outputFormat, a.indent())
}
