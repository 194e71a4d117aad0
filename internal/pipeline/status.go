package pipeline

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/structbio/dsspbatch/internal/config"
	"github.com/structbio/dsspbatch/internal/discovery"
	"github.com/structbio/dsspbatch/internal/dssp"
)

// StatusReport summarizes conversion progress without running anything.
type StatusReport struct {
	Inputs    int
	Artifacts int
	Remaining int
	Percent   float64
}

// Status counts inputs against existing artifacts. Artifacts are counted
// independently of inputs so stale outputs (whose input was removed) still
// show up in the artifact total, matching what is actually on disk.
func Status(cfg *config.Config) (StatusReport, error) {
	items, err := discovery.List(cfg.Run.InputDir)
	if err != nil {
		return StatusReport{}, err
	}

	artifacts, err := countArtifacts(cfg.Run.OutputDir)
	if err != nil {
		return StatusReport{}, err
	}

	pending, _ := discovery.Partition(items, cfg.Run.OutputDir, dssp.OutputExt)

	report := StatusReport{
		Inputs:    len(items),
		Artifacts: artifacts,
		Remaining: len(pending),
	}
	if report.Inputs > 0 {
		report.Percent = float64(report.Inputs-report.Remaining) / float64(report.Inputs) * 100
	}
	return report, nil
}

// countArtifacts counts output files in outputDir. A missing output
// directory means no run has happened yet, not an error.
func countArtifacts(outputDir string) (int, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), dssp.OutputExt) {
			count++
		}
	}
	return count, nil
}
