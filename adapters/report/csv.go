package report

import (
	"encoding/csv"
	"io"

	"gradereport/domain/grades"
)

var (
	studentHeader = []string{"Student", "Average"}
	subjectHeader = []string{"Subject", "Highest Score"}
)

// CSVRenderer writes the machine readable summary
type CSVRenderer struct{}

func (CSVRenderer) Name() string { return "csv" }

// Render writes the student rows and the subject rows as two blocks
// separated by an empty record. Records end in CRLF.
func (CSVRenderer) Render(w io.Writer, averages *grades.AverageMap, highest *grades.HighestMap) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	records := make([][]string, 0, averages.Len()+highest.Len()+3)
	records = append(records, studentHeader)
	for _, e := range averages.Entries() {
		records = append(records, []string{e.Key, FormatAverage(e.Value)})
	}
	records = append(records, []string{})
	records = append(records, subjectHeader)
	for _, e := range highest.Entries() {
		records = append(records, []string{e.Key, FormatScore(e.Value)})
	}

	return cw.WriteAll(records)
}
