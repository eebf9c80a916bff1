package testkit

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math/rand"
	"strconv"

	"gradereport/domain/grades"
)

// GradeGeneratorConfig configures the synthetic grade sheet generator
type GradeGeneratorConfig struct {
	StudentCount int   `json:"student_count"`
	SubjectCount int   `json:"subject_count"`
	MinGrade     int   `json:"min_grade"`
	MaxGrade     int   `json:"max_grade"`
	Seed         int64 `json:"seed"`
}

// DefaultGradeConfig returns sensible defaults for grade sheet generation
func DefaultGradeConfig() GradeGeneratorConfig {
	return GradeGeneratorConfig{
		StudentCount: 30,
		SubjectCount: 5,
		MinGrade:     0,
		MaxGrade:     100,
		Seed:         42,
	}
}

var subjectNames = []string{"Math", "Science", "History", "English", "Art", "Music", "Physics", "Chemistry"}

// GradeSheetGenerator produces deterministic grade tables for tests
type GradeSheetGenerator struct {
	config GradeGeneratorConfig
	rng    *rand.Rand
}

// NewGradeSheetGenerator creates a new generator
func NewGradeSheetGenerator(config GradeGeneratorConfig) *GradeSheetGenerator {
	return &GradeSheetGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// GenerateTable builds a random table with unique student names
func (g *GradeSheetGenerator) GenerateTable() *grades.Table {
	subjects := make([]string, g.config.SubjectCount)
	for i := range subjects {
		if i < len(subjectNames) {
			subjects[i] = subjectNames[i]
		} else {
			subjects[i] = fmt.Sprintf("Subject%d", i+1)
		}
	}

	table := grades.NewTable(subjects)
	span := g.config.MaxGrade - g.config.MinGrade + 1
	for s := 0; s < g.config.StudentCount; s++ {
		row := make([]int, len(subjects))
		for i := range row {
			row[i] = g.config.MinGrade + g.rng.Intn(span)
		}
		table.AddRow(fmt.Sprintf("student_%03d", s+1), row)
	}
	return table
}

// EncodeCSV renders a table in the input sheet format
func EncodeCSV(table *grades.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := append([]string{"Student"}, table.Subjects...)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range table.Rows {
		record := make([]string, 0, len(row.Grades)+1)
		record = append(record, row.Student)
		for _, grade := range row.Grades {
			record = append(record, strconv.Itoa(grade))
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
