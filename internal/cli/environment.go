package cli

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/IhorStoiko/Projekt/internal/config"
	"github.com/IhorStoiko/Projekt/internal/errors"
	"github.com/IhorStoiko/Projekt/internal/infrastructure"
	"github.com/IhorStoiko/Projekt/internal/operations"
)

// environment is the configuration and telemetry a command runs with
type environment struct {
	cfg       *config.Config
	paths     *config.Paths
	logger    *slog.Logger
	providers *infrastructure.OTelProviders
}

// apply overlays the flags the user actually set onto cfg
func (o *rootOptions) apply(flags *pflag.FlagSet, cfg *config.Config) error {
	if flags.Changed("base-dir") {
		cfg.Paths.BaseDir = o.baseDir
	}
	if flags.Changed("input") {
		input, err := filepath.Abs(o.input)
		if err != nil {
			return errors.NewConfigError("invalid input path", err).WithContext("input", o.input)
		}
		cfg.Paths.RawData = input
	}
	if flags.Changed("top") {
		cfg.Analysis.TopN = o.topN
	}
	if flags.Changed("runs") {
		cfg.Benchmark.SearchRuns = o.runs
	}
	return nil
}

// newEnvironment loads the configuration and starts logging and telemetry
func newEnvironment(cmd *cobra.Command, opts *rootOptions) (*environment, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, errors.NewConfigError("failed to load configuration", err)
	}
	if err := opts.apply(cmd.Flags(), cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.NewConfigError("invalid command line options", err)
	}

	cfg.Logging.FilePath = cfg.LogFilePath()
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, errors.NewConfigError("failed to initialize logger", err)
	}
	if logger == nil {
		logger = infrastructure.GetLogger()
	}
	logger = infrastructure.WithComponent(logger, "cli").With(slog.String("command", cmd.Name()))

	paths := cfg.ResolvedPaths()
	paths.LogPathResolution(logger)

	providers, err := infrastructure.InitializeOTel(infrastructure.OTelConfigFrom(cfg.Telemetry, paths.TraceFile), logger)
	if err != nil {
		return nil, errors.NewConfigError("failed to initialize telemetry", err)
	}

	return &environment{
		cfg:       cfg,
		paths:     paths,
		logger:    logger,
		providers: providers,
	}, nil
}

// execute runs the given pipeline steps; no ids runs every step
func (e *environment) execute(ctx context.Context, steps ...string) (*operations.OperationResponse, error) {
	manager, err := operations.NewSalesManager(e.cfg, e.paths, e.logger, e.providers)
	if err != nil {
		return nil, err
	}
	ctx = infrastructure.EnsureTraceID(ctx)
	return manager.Execute(ctx, operations.OperationRequest{Steps: steps})
}

// close flushes telemetry and the log file. Problems are logged, not returned.
func (e *environment) close(ctx context.Context) {
	if err := e.providers.Shutdown(context.WithoutCancel(ctx)); err != nil {
		e.logger.WarnContext(ctx, "telemetry shutdown failed", slog.String("error", err.Error()))
	}
	if err := infrastructure.CloseLogFile(); err != nil {
		e.logger.WarnContext(ctx, "log file close failed", slog.String("error", err.Error()))
	}
}
