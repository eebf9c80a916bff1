package excel

// rawRow is one non-blank line of a sheet before coercion
type rawRow struct {
	Line  int // 1-based physical line (csv) or row number (xlsx)
	Cells []string
}

// rawSheet is a sheet as read from disk: header first, then data rows
type rawSheet struct {
	Header rawRow
	Rows   []rawRow
}
