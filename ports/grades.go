package ports

import (
	"context"
	"io"

	"gradereport/domain/grades"
)

// GradeLoader reads a grade sheet into memory. Implementations return no
// partial table on failure.
type GradeLoader interface {
	Load(ctx context.Context, path string) (*grades.Table, error)
}

// ReportRenderer renders the derived views into one output artifact
type ReportRenderer interface {
	// Name identifies the artifact in logs, e.g. "txt" or "csv"
	Name() string
	Render(w io.Writer, averages *grades.AverageMap, highest *grades.HighestMap) error
}

// ReportPublisher persists the derived views. Either every output is
// written or none is.
type ReportPublisher interface {
	Publish(averages *grades.AverageMap, highest *grades.HighestMap) error
}
