package repositories

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrNotNumeric = errors.New("cell value is not numeric")

// CellName joins a column name and a 1-based row into an axis such as "AB23".
func CellName(column string, row int) (string, error) {
	return excelize.JoinCellName(strings.ToUpper(column), row)
}

// ParseCellInt converts a raw cell value into an integer, truncating decimals
// the way the template's number cells are stored ("2", "2.0", "12").
func ParseCellInt(raw string) (int, error) {
	v := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(v); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, raw)
	}
	return int(f), nil
}

// IsTextCell reports whether a cell of type t holds a string: shared, inline
// or the cached result of a string formula.
func IsTextCell(t excelize.CellType) bool {
	switch t {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return true
	default:
		return false
	}
}
