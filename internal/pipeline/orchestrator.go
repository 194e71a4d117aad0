// Package pipeline drives a batch conversion run: discovery, batching, a
// bounded worker pool per batch, and the final summary.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/structbio/dsspbatch/internal/batch"
	"github.com/structbio/dsspbatch/internal/config"
	"github.com/structbio/dsspbatch/internal/discovery"
	"github.com/structbio/dsspbatch/internal/dssp"
)

// Processor converts a single item. Satisfied by *dssp.Runner; tests inject
// fakes to exercise the pool without a real subprocess.
type Processor interface {
	Process(ctx context.Context, item discovery.Item) dssp.Result
}

// ToolChecker is implemented by processors that can probe for the external
// tool up front.
type ToolChecker interface {
	CheckTool() (string, error)
}

// Orchestrator coordinates one conversion run over the configured
// directories. Per-item failures never abort the run; only directory-level
// failures do.
type Orchestrator struct {
	cfg       *config.Config
	processor Processor
	logger    *slog.Logger
}

// New creates an orchestrator with the given configuration and processor
func New(cfg *config.Config, processor Processor, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}

	return &Orchestrator{
		cfg:       cfg,
		processor: processor,
		logger:    logger.With("component", "pipeline"),
	}
}

// Run executes the full sequence: ensure the output directory, discover
// work, split into batches, process each batch with at most Workers
// concurrent tool invocations, and log a summary. Batches run strictly
// sequentially; concurrency exists only within a batch. The returned error
// is non-nil only for directory-level failures.
func (o *Orchestrator) Run(ctx context.Context) (RunStats, error) {
	stats := RunStats{StartTime: time.Now()}

	if err := os.MkdirAll(o.cfg.Run.OutputDir, 0o755); err != nil {
		return stats, fmt.Errorf("failed to create output directory: %w", err)
	}

	items, err := discovery.List(o.cfg.Run.InputDir)
	if err != nil {
		return stats, err
	}
	stats.Found = len(items)

	pending, done := discovery.Partition(items, o.cfg.Run.OutputDir, dssp.OutputExt)
	stats.Pending = len(pending)

	o.logger.Info("discovered inputs",
		"input_dir", o.cfg.Run.InputDir,
		"found", stats.Found,
		"pending", stats.Pending,
	)

	if tc, ok := o.processor.(ToolChecker); ok {
		if _, err := tc.CheckTool(); err != nil {
			o.logger.Warn("external tool not found on PATH, items will fail individually",
				"tool", o.cfg.Tool.Path, "error", err)
		}
	}

	// Items filtered out by discovery are the resumed ones; they get the
	// same per-item skip line the runner would have produced.
	for _, item := range done {
		stats.Skipped++
		o.logger.Info("item skipped", "item", item.ID, "outcome", dssp.OutcomeSkipped.String())
	}

	batches := batch.Split(pending, o.cfg.Run.BatchSize)
	for i, b := range batches {
		if ctx.Err() != nil {
			o.logger.Warn("run interrupted", "batches_remaining", len(batches)-i)
			break
		}

		o.logger.Info("starting batch", "batch", i+1, "batches", len(batches), "items", len(b))
		stats.Batches++

		for _, res := range o.runBatch(ctx, b) {
			o.recordResult(&stats, res)
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	o.logRunSummary(&stats)

	return stats, nil
}

// runBatch fans the batch out over a worker pool capped at the configured
// worker count. Every item is processed exactly once and every result is
// collected before the batch is considered complete.
func (o *Orchestrator) runBatch(ctx context.Context, items []discovery.Item) []dssp.Result {
	results := make([]dssp.Result, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.cfg.Run.Workers)
	for i, item := range items {
		g.Go(func() error {
			results[i] = o.processor.Process(gctx, item)
			return nil
		})
	}
	_ = g.Wait() // failures are captured per item in results

	return results
}

// recordResult tallies one outcome and emits its per-item log line.
func (o *Orchestrator) recordResult(stats *RunStats, res dssp.Result) {
	switch res.Outcome {
	case dssp.OutcomeSkipped:
		stats.Skipped++
		o.logger.Info("item skipped", "item", res.Item.ID, "outcome", res.Outcome.String())
	case dssp.OutcomeSucceeded:
		stats.Succeeded++
		o.logger.Info("item converted", "item", res.Item.ID, "outcome", res.Outcome.String())
	case dssp.OutcomeFailed:
		stats.Failed++
		o.logger.Error("item failed", "item", res.Item.ID, "outcome", res.Outcome.String(), "error", res.Err)
	}
}

// logRunSummary outputs a summary of the run as a single structured entry
func (o *Orchestrator) logRunSummary(stats *RunStats) {
	o.logger.Info("run complete",
		slog.Group("run",
			slog.Duration("duration", stats.Duration.Round(time.Millisecond)),
			slog.Int("found", stats.Found),
			slog.Int("pending", stats.Pending),
			slog.Int("batches", stats.Batches),
		),
		slog.Group("outcomes",
			slog.Int("succeeded", stats.Succeeded),
			slog.Int("skipped", stats.Skipped),
			slog.Int("failed", stats.Failed),
		),
	)
}
