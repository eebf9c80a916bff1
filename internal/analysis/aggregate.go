package analysis

import (
	"math"

	"gradereport/domain/grades"

	"github.com/montanaflynn/stats"
)

// ComputeAverages returns each student's mean grade in row order. A student
// without any grade gets NaN, the result of dividing zero by zero.
func ComputeAverages(table *grades.Table) *grades.AverageMap {
	averages := grades.NewAverageMap()
	for _, row := range table.Rows {
		averages.Set(row.Student, mean(row.Grades))
	}
	return averages
}

// ComputeHighest returns the best grade per subject in subject order. The
// running maximum starts at 0, so a subject nobody sat reports 0.
func ComputeHighest(table *grades.Table) *grades.HighestMap {
	best := make([]int, len(table.Subjects))
	for _, row := range table.Rows {
		for i, grade := range row.Grades {
			if i < len(best) && grade > best[i] {
				best[i] = grade
			}
		}
	}

	highest := grades.NewHighestMap()
	for i, subject := range table.Subjects {
		highest.Set(subject, best[i])
	}
	return highest
}

func mean(values []int) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	m, err := stats.Mean(stats.LoadRawData(values))
	if err != nil {
		return math.NaN()
	}
	return m
}
