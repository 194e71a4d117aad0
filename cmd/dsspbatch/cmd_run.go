package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/structbio/dsspbatch/internal/config"
	"github.com/structbio/dsspbatch/internal/dssp"
	"github.com/structbio/dsspbatch/internal/logging"
	"github.com/structbio/dsspbatch/internal/pipeline"
	"github.com/structbio/dsspbatch/internal/version"
)

var runFlags struct {
	configPath string
	inputDir   string
	outputDir  string
	workers    int
	batchSize  int
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Convert all pending PDB files to DSSP annotations",
	RunE:  runRun,
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runFlags.configPath, "config", "", "Path to config file (default: ./config.yaml)")
	f.StringVar(&runFlags.inputDir, "input", "", "Input directory with .pdb files (overrides config)")
	f.StringVar(&runFlags.outputDir, "output", "", "Output directory for .dssp files (overrides config)")
	f.IntVar(&runFlags.workers, "workers", 0, "Maximum concurrent tool invocations (overrides config)")
	f.IntVar(&runFlags.batchSize, "batch-size", 0, "Items per batch (overrides config)")
}

func runRun(cmd *cobra.Command, _ []string) error {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.Setup(cfg.General.LogLevel, cfg.General.LogFormat)
	info := version.Get()
	logger.Info("starting dsspbatch",
		"version", info.Version,
		"commit", info.Commit,
		"input_dir", cfg.Run.InputDir,
		"output_dir", cfg.Run.OutputDir,
		"workers", cfg.Run.Workers,
		"batch_size", cfg.Run.BatchSize,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := dssp.NewRunner(cfg, logger)
	orch := pipeline.New(cfg, runner, logger)

	// Per-item failures are reported in the summary, not escalated: the
	// process exits non-zero only for configuration or directory errors.
	_, err = orch.Run(ctx)
	return err
}

// loadRunConfig loads configuration and applies any explicit flag overrides
func loadRunConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(runFlags.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Run.InputDir = runFlags.inputDir
	}
	if flags.Changed("output") {
		cfg.Run.OutputDir = runFlags.outputDir
	}
	if flags.Changed("workers") {
		cfg.Run.Workers = runFlags.workers
	}
	if flags.Changed("batch-size") {
		cfg.Run.BatchSize = runFlags.batchSize
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
