package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iwvelando/aqi-planner/internal/catalog"
	"github.com/iwvelando/aqi-planner/internal/config"
	"github.com/iwvelando/aqi-planner/internal/planner"
	"github.com/iwvelando/aqi-planner/internal/request"
	"github.com/iwvelando/aqi-planner/pkg/constants"
	"github.com/iwvelando/aqi-planner/pkg/validation"
)

// version is set at build time via -ldflags.
var version = "dev"

// app carries the state shared by every subcommand of one invocation.
type app struct {
	configPath   string
	outputFormat string
	logLevel     string

	conf    *config.Configuration
	logger  *zap.Logger
	planner *planner.Planner
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "aqi-planner",
		Short: "Air-quality analysis and intervention portfolio planning",
		Long: "aqi-planner estimates pollutant concentrations, dispersion and source attribution\n" +
			"for an AQI reading and selects a budget-constrained portfolio of interventions.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.Version = version

	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	f.StringVar(&a.outputFormat, "output-format", "", "output format override: json, yaml")
	f.StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(newRunCmd(a))
	root.AddCommand(newActionCmd(a, "analyze", "Full environmental analysis of a reading", request.ActionFullAnalysis))
	root.AddCommand(newActionCmd(a, "effectiveness", "Weather-adjusted estimate for one intervention type", request.ActionInterventionEffectiveness))
	root.AddCommand(newActionCmd(a, "optimize", "Select an intervention portfolio within a budget", request.ActionOptimize))
	root.AddCommand(newCatalogCmd(a))
	return root
}

func (a *app) setup() error {
	conf, err := config.LoadConfiguration(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", a.configPath, err)
	}

	if a.outputFormat == "" {
		a.outputFormat = conf.Output.Format
	}
	if a.outputFormat == "" {
		a.outputFormat = constants.OutputFormatJSON
	}
	if err := validation.ValidateOutputFormat(a.outputFormat); err != nil {
		return err
	}

	logger, err := initializeLogger(conf.Logging, a.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = logger.With(zap.String("runID", uuid.NewString()))

	p, err := planner.New(logger, *conf, catalog.Default())
	if err != nil {
		return err
	}

	a.conf = conf
	a.logger = logger
	a.planner = p
	return nil
}

func (a *app) indent() int {
	if a.conf == nil {
		return constants.DefaultIndent
	}
	return a.conf.Output.Indent
}
