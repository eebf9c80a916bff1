package excel

import (
	"gradereport/adapters/datareadiness/coercer"
)

// ReaderConfig holds configuration for grade sheet sources
type ReaderConfig struct {
	CoercionConfig coercer.CoercionConfig `json:"coercion_config"`
	// SheetName selects the worksheet of an .xlsx file; empty means the first sheet
	SheetName string `json:"sheet_name"`
}

// DefaultReaderConfig returns sensible defaults for grade sheet processing
func DefaultReaderConfig() ReaderConfig {
	return ReaderConfig{
		CoercionConfig: coercer.DefaultCoercionConfig(),
	}
}
