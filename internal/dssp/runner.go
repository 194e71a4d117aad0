// Package dssp wraps single invocations of the external secondary-structure
// assignment tool. A Runner owns the lifecycle of exactly one subprocess per
// item and guarantees that no partial artifact survives a failed conversion.
package dssp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/structbio/dsspbatch/internal/config"
	"github.com/structbio/dsspbatch/internal/discovery"
)

// OutputExt is the extension of artifacts produced by the tool.
const OutputExt = ".dssp"

// Runner executes the external tool for one item at a time. A single Runner
// is shared between workers; it holds no per-item state.
type Runner struct {
	toolPath  string
	quietFlag string
	outputDir string
	timeout   time.Duration
	logger    *slog.Logger
}

// NewRunner creates a runner from the run configuration
func NewRunner(cfg *config.Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}

	return &Runner{
		toolPath:  cfg.Tool.Path,
		quietFlag: cfg.Tool.QuietFlag,
		outputDir: cfg.Run.OutputDir,
		timeout:   cfg.Run.JobTimeout,
		logger:    logger.With("component", "runner"),
	}
}

// ArtifactPath returns the deterministic output path for an item ID.
func (r *Runner) ArtifactPath(id string) string {
	return filepath.Join(r.outputDir, id+OutputExt)
}

// CheckTool resolves the tool on PATH. A failure here is advisory: the run
// proceeds and each item fails individually when launched.
func (r *Runner) CheckTool() (string, error) {
	return exec.LookPath(r.toolPath)
}

// Process converts one item. It skips items whose artifact already exists,
// rejects empty input files without launching the tool, and otherwise runs
// the tool bounded by the configured timeout. On any failure the partial
// artifact, if one was written, is removed before returning.
func (r *Runner) Process(ctx context.Context, item discovery.Item) Result {
	outputPath := r.ArtifactPath(item.ID)

	// Presence of the artifact is the sole completion marker
	if _, err := os.Stat(outputPath); err == nil {
		return Result{Item: item, Outcome: OutcomeSkipped}
	}

	info, err := os.Stat(item.Path)
	if err != nil {
		return Result{Item: item, Outcome: OutcomeFailed, Err: fmt.Errorf("input unreadable: %w", err)}
	}
	if info.Size() == 0 {
		return Result{Item: item, Outcome: OutcomeFailed, Err: errors.New("input file is empty")}
	}

	runCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	args := []string{item.Path, outputPath}
	if r.quietFlag != "" {
		args = append(args, r.quietFlag)
	}

	cmd := exec.CommandContext(runCtx, r.toolPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		r.removeArtifact(outputPath)

		switch {
		case errors.Is(runCtx.Err(), context.DeadlineExceeded):
			err = fmt.Errorf("tool timed out after %s", r.timeout)
		default:
			if msg := lastStderrLine(stderr.String()); msg != "" {
				err = fmt.Errorf("%w: %s", err, msg)
			}
		}
		return Result{Item: item, Outcome: OutcomeFailed, Err: err}
	}

	return Result{Item: item, Outcome: OutcomeSucceeded}
}

// removeArtifact deletes a partial output file after a failed conversion.
// Leaving one behind would make a later skip check trust a bad artifact.
func (r *Runner) removeArtifact(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		r.logger.Warn("failed to remove partial artifact", "path", path, "error", err)
	}
}

// lastStderrLine returns the final non-empty stderr line, which for the
// assignment tool carries the actual diagnostic.
func lastStderrLine(stderr string) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
