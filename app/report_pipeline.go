package app

import (
	"context"
	"time"

	"gradereport/domain/core"
	"gradereport/domain/grades"
	"gradereport/internal"
	"gradereport/internal/analysis"
	"gradereport/internal/errors"
	"gradereport/ports"
)

// ReportPipeline runs Loader -> Aggregator -> Reporter for one input file
type ReportPipeline struct {
	loader    ports.GradeLoader
	publisher ports.ReportPublisher
	logger    *internal.Logger
}

// PipelineResult carries what one run produced
type PipelineResult struct {
	RunID    core.RunID
	Table    *grades.Table
	Averages *grades.AverageMap
	Highest  *grades.HighestMap
}

// NewReportPipeline creates a new pipeline. A nil logger falls back to the default one.
func NewReportPipeline(loader ports.GradeLoader, publisher ports.ReportPublisher, logger *internal.Logger) *ReportPipeline {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &ReportPipeline{
		loader:    loader,
		publisher: publisher,
		logger:    logger,
	}
}

// Run processes inputPath. On error nothing has been written.
func (p *ReportPipeline) Run(ctx context.Context, inputPath string) (*PipelineResult, error) {
	runID := core.NewRunID()
	logger := p.logger.With("run=" + runID.String())
	start := time.Now()

	logger.Info("Processing grades from %s", inputPath)

	table, err := p.loader.Load(ctx, inputPath)
	if err != nil {
		logger.Error("Failed to load %s: %v", inputPath, err)
		return nil, errors.Wrap(err, "failed to load grades")
	}

	averages := analysis.ComputeAverages(table)
	highest := analysis.ComputeHighest(table)
	logger.Debug("Computed %d averages and %d subject maxima", averages.Len(), highest.Len())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := p.publisher.Publish(averages, highest); err != nil {
		logger.Error("Failed to write reports: %v", err)
		return nil, errors.Wrap(err, "failed to write reports")
	}

	logger.Info("Report pipeline finished in %s", time.Since(start).Round(time.Millisecond))

	return &PipelineResult{
		RunID:    runID,
		Table:    table,
		Averages: averages,
		Highest:  highest,
	}, nil
}
