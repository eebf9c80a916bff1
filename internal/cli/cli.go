package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"gradereport/adapters/excel"
	"gradereport/adapters/report"
	"gradereport/app"
	"gradereport/domain/core"
	"gradereport/internal"
	"gradereport/internal/config"
	apperrors "gradereport/internal/errors"
	"gradereport/internal/profiling"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Run executes the command line and returns the process exit status
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCmd builds the gradereport command
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var showProfile bool

	cmd := &cobra.Command{
		Use:   "gradereport <input-csv-path>",
		Short: "Compute student averages and subject maxima from a grade sheet",
		Long: `Reads a grade sheet (CSV, or .xlsx) whose header is Student,<Subject1>,<Subject2>,...
and writes output/report.txt and output/summary.csv. The output directory must exist.

Example: gradereport data/grades.csv`,
		Args:          exactlyOneInput,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// arguments are valid from here on; only runtime failures remain
			cmd.SilenceUsage = true
			return runReport(cmd.Context(), args[0], showProfile, stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return core.NewUsageError(err.Error())
	})
	cmd.Flags().BoolVar(&showProfile, "profile", false, "Also print per-subject grade statistics")

	return cmd
}

func exactlyOneInput(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return core.NewUsageError(err.Error())
	}
	return nil
}

func runReport(ctx context.Context, inputPath string, showProfile bool, stdout, stderr io.Writer) error {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := internal.NewLoggerTo(stderr, cfg.LogLevel())
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		logger.Warn("Ignoring unreadable .env file: %v", envErr)
	}

	reader := excel.NewDataReader(excel.DefaultReaderConfig(), logger)
	publisher := report.NewPublisher(logger,
		report.Artifact{Path: cfg.Paths.ReportPath, Renderer: report.TextRenderer{}},
		report.Artifact{Path: cfg.Paths.SummaryPath, Renderer: report.CSVRenderer{}},
	)

	result, err := app.NewReportPipeline(reader, publisher, logger).Run(ctx, inputPath)
	if err != nil {
		logger.Debug("Run failed with code %s", apperrors.Classify(err))
		return err
	}

	fmt.Fprintf(stdout, "Report generated:\nTXT: %s\nCSV: %s\n", cfg.Paths.ReportPath, cfg.Paths.SummaryPath)

	if showProfile {
		profiles, err := profiling.NewDistributionAnalyzer().ProfileTable(result.Table)
		if err != nil {
			return apperrors.Wrap(err, "failed to profile subjects")
		}
		fmt.Fprintln(stdout)
		if err := profiling.WriteProfiles(stdout, profiles); err != nil {
			return core.NewIOError("write", "stdout", err)
		}
	}

	return nil
}
