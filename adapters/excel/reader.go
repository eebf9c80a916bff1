package excel

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gradereport/adapters/datareadiness/coercer"
	"gradereport/domain/core"
	"gradereport/domain/grades"
	"gradereport/internal"

	"github.com/xuri/excelize/v2"
)

const (
	fileTypeCSV  = "csv"
	fileTypeXLSX = "xlsx"
)

// DataReader loads grade sheets from CSV or Excel files
type DataReader struct {
	config  ReaderConfig
	coercer *coercer.GradeCoercer
	logger  *internal.Logger
}

// NewDataReader creates a reader. A nil logger falls back to the default one.
func NewDataReader(config ReaderConfig, logger *internal.Logger) *DataReader {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &DataReader{
		config:  config,
		coercer: coercer.NewGradeCoercer(config.CoercionConfig),
		logger:  logger,
	}
}

// fileTypeOf picks the parser from the extension; anything that is not
// .xlsx is treated as delimited text
func fileTypeOf(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return fileTypeXLSX
	}
	return fileTypeCSV
}

// Load reads the sheet at path into a grade table
func (r *DataReader) Load(ctx context.Context, path string) (*grades.Table, error) {
	fileType := fileTypeOf(path)
	r.logger.Debug("[DataReader] Starting to read %s file: %s", fileType, path)

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, core.NewFileNotFoundError(path)
		}
		return nil, core.NewIOError("stat", path, err)
	}
	if info.IsDir() {
		return nil, core.NewIOError("read", path, errors.New("is a directory"))
	}

	readStart := time.Now()
	var sheet *rawSheet
	switch fileType {
	case fileTypeXLSX:
		sheet, err = r.readExcelSheet(ctx, path)
	default:
		sheet, err = r.readCSVSheet(ctx, path)
	}
	if err != nil {
		return nil, err
	}
	r.logger.Debug("[DataReader] %s file read in %.2fms (%d rows)",
		strings.ToUpper(fileType), float64(time.Since(readStart).Nanoseconds())/1e6, len(sheet.Rows))

	table, err := r.buildTable(ctx, sheet)
	if err != nil {
		return nil, err
	}

	r.logger.Info("[DataReader] Loaded %s (%d subjects, %d students)", path, len(table.Subjects), table.StudentCount())
	return table, nil
}

// readCSVSheet reads delimited text. Blank lines are skipped by the csv
// reader; column counts are checked later against the header.
func (r *DataReader) readCSVSheet(ctx context.Context, path string) (*rawSheet, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, core.NewFileNotFoundError(path)
		}
		return nil, core.NewIOError("open", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows []rawRow
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, core.NewMalformedError(parseErr.StartLine, parseErr.Err.Error())
			}
			return nil, core.NewIOError("read", path, err)
		}
		line, _ := reader.FieldPos(0)
		rows = append(rows, rawRow{Line: line, Cells: record})
	}

	return splitHeader(rows)
}

// readExcelSheet reads the configured (or first) worksheet of a workbook
func (r *DataReader) readExcelSheet(ctx context.Context, path string) (*rawSheet, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, core.NewMalformedError(0, fmt.Sprintf("cannot open workbook %s: %v", path, err))
	}
	defer f.Close()
	r.logger.Trace("[DataReader] Excel file opened in %.2fms", float64(time.Since(startTime).Nanoseconds())/1e6)

	sheetName := r.config.SheetName
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, core.NewMalformedError(0, "workbook has no sheets")
		}
		sheetName = sheets[0]
	}

	cells, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, core.NewMalformedError(0, fmt.Sprintf("failed to read sheet %q: %v", sheetName, err))
	}

	var rows []rawRow
	for i, row := range cells {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(row) == 0 {
			continue
		}
		rows = append(rows, rawRow{Line: i + 1, Cells: row})
	}

	return splitHeader(rows)
}

func splitHeader(rows []rawRow) (*rawSheet, error) {
	if len(rows) == 0 {
		return nil, core.NewMalformedError(0, "missing header row")
	}
	return &rawSheet{Header: rows[0], Rows: rows[1:]}, nil
}

// buildTable coerces raw rows into a grade table. The first header column
// names the student field, the rest are subject labels.
func (r *DataReader) buildTable(ctx context.Context, sheet *rawSheet) (*grades.Table, error) {
	width := len(sheet.Header.Cells)
	subjects := make([]string, width-1)
	copy(subjects, sheet.Header.Cells[1:])

	table := grades.NewTable(subjects)
	for _, row := range sheet.Rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(row.Cells) != width {
			return nil, core.NewMalformedError(row.Line, fmt.Sprintf("expected %d fields, got %d", width, len(row.Cells)))
		}

		student := row.Cells[0]
		values, idx, err := r.coercer.CoerceRow(row.Cells[1:])
		if err != nil {
			r.logger.Debug("[DataReader] Rejecting line %d: %v", row.Line, err)
			return nil, core.NewGradeParseError(row.Line, student, subjects[idx], row.Cells[idx+1])
		}
		table.AddRow(student, values)
	}

	return table, nil
}
