package profiling

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"gradereport/domain/grades"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// SubjectProfile summarises the grade distribution of one subject
type SubjectProfile struct {
	Subject string
	Count   int
	Mean    float64
	Median  float64
	StdDev  float64 // sample standard deviation, 0 below two grades
	Min     float64
	Max     float64
	Q1      float64
	Q3      float64
}

// DistributionAnalyzer computes per-subject summary statistics
type DistributionAnalyzer struct{}

// NewDistributionAnalyzer creates a new distribution analyzer
func NewDistributionAnalyzer() *DistributionAnalyzer {
	return &DistributionAnalyzer{}
}

// ProfileTable profiles every subject of the table in subject order
func (da *DistributionAnalyzer) ProfileTable(table *grades.Table) ([]SubjectProfile, error) {
	profiles := make([]SubjectProfile, 0, len(table.Subjects))
	for i, subject := range table.Subjects {
		profile, err := da.ProfileSubject(subject, table.Column(i))
		if err != nil {
			return nil, fmt.Errorf("profiling %s: %w", subject, err)
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

// ProfileSubject computes the summary of a single column. An empty column
// yields a zero profile with Count 0.
func (da *DistributionAnalyzer) ProfileSubject(subject string, column []int) (SubjectProfile, error) {
	profile := SubjectProfile{Subject: subject, Count: len(column)}
	if len(column) == 0 {
		return profile, nil
	}

	data := stats.LoadRawData(column)

	var err error
	if profile.Mean, err = stats.Mean(data); err != nil {
		return profile, err
	}
	if profile.Median, err = stats.Median(data); err != nil {
		return profile, err
	}
	if profile.Min, err = stats.Min(data); err != nil {
		return profile, err
	}
	if profile.Max, err = stats.Max(data); err != nil {
		return profile, err
	}

	// gonum quantiles need sorted input
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	profile.Q1 = stat.Quantile(0.25, stat.Empirical, sorted, nil)
	profile.Q3 = stat.Quantile(0.75, stat.Empirical, sorted, nil)
	if len(sorted) > 1 {
		profile.StdDev = stat.StdDev(sorted, nil)
	}

	return profile, nil
}

// WriteProfiles renders profiles as an aligned text table
func WriteProfiles(w io.Writer, profiles []SubjectProfile) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Subject\tN\tMean\tMedian\tStdDev\tMin\tQ1\tQ3\tMax")
	for _, p := range profiles {
		if p.Count == 0 {
			fmt.Fprintf(tw, "%s\t0\t-\t-\t-\t-\t-\t-\t-\n", p.Subject)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f\t%.2f\t%.0f\t%.2f\t%.2f\t%.0f\n",
			p.Subject, p.Count, p.Mean, p.Median, p.StdDev, p.Min, p.Q1, p.Q3, p.Max)
	}
	return tw.Flush()
}
