package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	ErrWorkbookOpen  = errors.New("failed to open workbook")
	ErrSheetNotFound = errors.New("sheet not found in workbook")
)

// CellReader gives read access to raw cell values of one workbook.
type CellReader interface {
	// CellValue returns the raw (unformatted) value of the cell at axis, or ""
	// when the cell is empty.
	CellValue(sheet, axis string) (string, error)
	// CellType returns the stored type of the cell; empty cells and plain
	// numbers report excelize.CellTypeUnset.
	CellType(sheet, axis string) (excelize.CellType, error)
	HasSheet(sheet string) bool
	Close() error
}

type excelWorkbook struct {
	file *excelize.File
	path string
}

// OpenWorkbook opens an .xlsx/.xlsm file for reading. Formula cells yield
// their cached values.
func OpenWorkbook(path string) (CellReader, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrWorkbookOpen, path, err)
	}
	return &excelWorkbook{file: f, path: path}, nil
}

func (w *excelWorkbook) CellValue(sheet, axis string) (string, error) {
	value, err := w.file.GetCellValue(sheet, axis, excelize.Options{RawCellValue: true})
	if err != nil {
		var sheetErr excelize.ErrSheetNotExist
		if errors.As(err, &sheetErr) {
			return "", fmt.Errorf("%w: %q in %s", ErrSheetNotFound, sheet, w.path)
		}
		return "", fmt.Errorf("failed to read %s!%s: %w", sheet, axis, err)
	}
	return value, nil
}

func (w *excelWorkbook) CellType(sheet, axis string) (excelize.CellType, error) {
	cellType, err := w.file.GetCellType(sheet, axis)
	if err != nil {
		var sheetErr excelize.ErrSheetNotExist
		if errors.As(err, &sheetErr) {
			return excelize.CellTypeUnset, fmt.Errorf("%w: %q in %s", ErrSheetNotFound, sheet, w.path)
		}
		return excelize.CellTypeUnset, fmt.Errorf("failed to read type of %s!%s: %w", sheet, axis, err)
	}
	return cellType, nil
}

func (w *excelWorkbook) HasSheet(sheet string) bool {
	idx, err := w.file.GetSheetIndex(sheet)
	return err == nil && idx >= 0
}

func (w *excelWorkbook) Close() error {
	return w.file.Close()
}

// MemoryWorkbook is a CellReader backed by a map, keyed "Sheet!A1".
// Useful for callers that already hold the values.
type MemoryWorkbook struct {
	Cells  map[string]string
	Types  map[string]excelize.CellType
	Sheets []string
}

func NewMemoryWorkbook(sheets ...string) *MemoryWorkbook {
	return &MemoryWorkbook{
		Cells:  make(map[string]string),
		Types:  make(map[string]excelize.CellType),
		Sheets: sheets,
	}
}

// Set stores a text cell; an empty value clears the cell.
func (m *MemoryWorkbook) Set(sheet, axis, value string) {
	key := memoryKey(sheet, axis)
	m.Cells[key] = value
	if value == "" {
		delete(m.Types, key)
		return
	}
	m.Types[key] = excelize.CellTypeSharedString
}

// SetNumber stores a numeric cell the way excelize reports it: untyped.
func (m *MemoryWorkbook) SetNumber(sheet, axis, value string) {
	key := memoryKey(sheet, axis)
	m.Cells[key] = value
	m.Types[key] = excelize.CellTypeUnset
}

func memoryKey(sheet, axis string) string {
	return sheet + "!" + strings.ToUpper(axis)
}

func (m *MemoryWorkbook) CellValue(sheet, axis string) (string, error) {
	if !m.HasSheet(sheet) {
		return "", fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}
	return m.Cells[memoryKey(sheet, axis)], nil
}

func (m *MemoryWorkbook) CellType(sheet, axis string) (excelize.CellType, error) {
	if !m.HasSheet(sheet) {
		return excelize.CellTypeUnset, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}
	return m.Types[memoryKey(sheet, axis)], nil
}

func (m *MemoryWorkbook) HasSheet(sheet string) bool {
	for _, s := range m.Sheets {
		if s == sheet {
			return true
		}
	}
	return false
}

func (m *MemoryWorkbook) Close() error { return nil }
