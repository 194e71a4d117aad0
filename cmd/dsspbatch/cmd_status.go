package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/structbio/dsspbatch/internal/config"
	"github.com/structbio/dsspbatch/internal/pipeline"
)

var statusFlags struct {
	configPath string
	inputDir   string
	outputDir  string
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show conversion progress for the configured directories",
	RunE:  runStatus,
}

func init() {
	f := statusCmd.Flags()
	f.StringVar(&statusFlags.configPath, "config", "", "Path to config file (default: ./config.yaml)")
	f.StringVar(&statusFlags.inputDir, "input", "", "Input directory with .pdb files (overrides config)")
	f.StringVar(&statusFlags.outputDir, "output", "", "Output directory for .dssp files (overrides config)")
}

func runStatus(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(statusFlags.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Run.InputDir = statusFlags.inputDir
	}
	if flags.Changed("output") {
		cfg.Run.OutputDir = statusFlags.outputDir
	}

	report, err := pipeline.Status(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Input files  : %d\n", report.Inputs)
	fmt.Fprintf(out, "Artifacts    : %d\n", report.Artifacts)
	fmt.Fprintf(out, "Remaining    : %d\n", report.Remaining)
	fmt.Fprintf(out, "Progress     : %.2f%%\n", report.Percent)
	return nil
}
