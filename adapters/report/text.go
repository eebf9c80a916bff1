package report

import (
	"bufio"
	"io"

	"gradereport/domain/grades"
)

// TextRenderer writes the human readable report
type TextRenderer struct{}

func (TextRenderer) Name() string { return "txt" }

// Render writes the "Student Averages" section, a blank line, then the
// "Highest Scores per Subject" section
func (TextRenderer) Render(w io.Writer, averages *grades.AverageMap, highest *grades.HighestMap) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("Student Averages:\n")
	for _, e := range averages.Entries() {
		bw.WriteString(e.Key + ": " + FormatAverage(e.Value) + "\n")
	}

	bw.WriteString("\nHighest Scores per Subject:\n")
	for _, e := range highest.Entries() {
		bw.WriteString(e.Key + ": " + FormatScore(e.Value) + "\n")
	}

	return bw.Flush()
}
