package coercer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotInteger is returned for a cell that does not hold a whole number
var ErrNotInteger = errors.New("not an integer")

// GradeCoercer turns raw grade cells into integers with deterministic rules
type GradeCoercer struct {
	config CoercionConfig
}

// CoercionConfig defines the accepted spellings of an integer grade
type CoercionConfig struct {
	TrimSpace        bool `json:"trim_space"`        // strip surrounding whitespace
	AllowUnderscores bool `json:"allow_underscores"` // accept digit group separators like 1_000
}

// DefaultCoercionConfig mirrors how the grade sheets have always been read:
// " 90 ", "+90" and "1_000" are integers, "90.5" and "" are not
func DefaultCoercionConfig() CoercionConfig {
	return CoercionConfig{
		TrimSpace:        true,
		AllowUnderscores: true,
	}
}

// NewGradeCoercer creates a coercer with the given config
func NewGradeCoercer(config CoercionConfig) *GradeCoercer {
	return &GradeCoercer{config: config}
}

// CoerceGrade parses a single cell
func (c *GradeCoercer) CoerceGrade(raw string) (int, error) {
	value := raw
	if c.config.TrimSpace {
		value = strings.TrimSpace(value)
	}
	if value == "" {
		return 0, fmt.Errorf("%w: empty value", ErrNotInteger)
	}

	if c.config.AllowUnderscores && strings.Contains(value, "_") {
		cleaned, ok := stripDigitSeparators(value)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrNotInteger, raw)
		}
		value = cleaned
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q is out of range", ErrNotInteger, raw)
		}
		return 0, fmt.Errorf("%w: %q", ErrNotInteger, raw)
	}
	return n, nil
}

// CoerceRow parses every cell of a row. On failure it reports the index of
// the offending cell.
func (c *GradeCoercer) CoerceRow(cells []string) ([]int, int, error) {
	grades := make([]int, len(cells))
	for i, cell := range cells {
		grade, err := c.CoerceGrade(cell)
		if err != nil {
			return nil, i, err
		}
		grades[i] = grade
	}
	return grades, -1, nil
}

// stripDigitSeparators removes underscores that sit between two digits.
// Any other underscore makes the value invalid.
func stripDigitSeparators(s string) (string, bool) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			b.WriteByte(s[i])
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}
	return b.String(), true
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
