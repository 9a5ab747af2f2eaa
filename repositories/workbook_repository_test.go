package repositories

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const testSheet = "Liguilla Navidad 2025"

func createTestWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet(testSheet)
	require.NoError(t, err, "Should create sheet")

	values := map[string]interface{}{
		"E9":   "Los Rápidos",
		"X23":  "Los Rápidos",
		"Y23":  "Pádel <Pro>",
		"Z23":  2,
		"AA23": 1,
		"AB23": 12.0,
		"AC23": 10,
	}
	for axis, v := range values {
		require.NoError(t, f.SetCellValue(testSheet, axis, v), "Should set %s", axis)
	}

	path := filepath.Join(t.TempDir(), "torneo.xlsx")
	require.NoError(t, f.SaveAs(path), "Should save workbook")
	return path
}

func TestOpenWorkbook_ReadsCells(t *testing.T) {
	wb, err := OpenWorkbook(createTestWorkbook(t))
	require.NoError(t, err)
	defer wb.Close()

	assert.True(t, wb.HasSheet(testSheet))
	assert.False(t, wb.HasSheet("Hoja2"))

	name, err := wb.CellValue(testSheet, "E9")
	require.NoError(t, err)
	assert.Equal(t, "Los Rápidos", name)

	games, err := wb.CellValue(testSheet, "AB23")
	require.NoError(t, err)
	n, err := ParseCellInt(games)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	empty, err := wb.CellValue(testSheet, "E10")
	require.NoError(t, err)
	assert.Equal(t, "", empty, "Empty cells read as empty strings")
}

func TestOpenWorkbook_MissingSheet(t *testing.T) {
	wb, err := OpenWorkbook(createTestWorkbook(t))
	require.NoError(t, err)
	defer wb.Close()

	_, err = wb.CellValue("Hoja2", "A1")
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestOpenWorkbook_MissingFile(t *testing.T) {
	_, err := OpenWorkbook(filepath.Join(t.TempDir(), "missing.xlsm"))
	assert.ErrorIs(t, err, ErrWorkbookOpen)
	assert.ErrorIs(t, err, fs.ErrNotExist, "The cause stays in the error chain")
}

func TestOpenWorkbook_CellType(t *testing.T) {
	wb, err := OpenWorkbook(createTestWorkbook(t))
	require.NoError(t, err)
	defer wb.Close()

	name, err := wb.CellType(testSheet, "X23")
	require.NoError(t, err)
	assert.True(t, IsTextCell(name), "String cells hold team names")

	sets, err := wb.CellType(testSheet, "Z23")
	require.NoError(t, err)
	assert.False(t, IsTextCell(sets), "Number cells are not text")

	empty, err := wb.CellType(testSheet, "E10")
	require.NoError(t, err)
	assert.Equal(t, excelize.CellTypeUnset, empty)

	_, err = wb.CellType("Hoja2", "A1")
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestMemoryWorkbook(t *testing.T) {
	wb := NewMemoryWorkbook(testSheet)
	wb.Set(testSheet, "ab23", "12")

	v, err := wb.CellValue(testSheet, "AB23")
	require.NoError(t, err)
	assert.Equal(t, "12", v, "Axis lookup is case-insensitive")

	v, err = wb.CellValue(testSheet, "AC23")
	require.NoError(t, err)
	assert.Empty(t, v)

	_, err = wb.CellValue("Hoja2", "A1")
	assert.ErrorIs(t, err, ErrSheetNotFound)
	assert.NoError(t, wb.Close())
}

func TestMemoryWorkbook_CellType(t *testing.T) {
	wb := NewMemoryWorkbook(testSheet)
	wb.Set(testSheet, "X23", "Los Rápidos")
	wb.SetNumber(testSheet, "Y23", "0")
	wb.Set(testSheet, "Z23", "")

	cases := map[string]bool{"X23": true, "Y23": false, "Z23": false, "AA23": false}
	for axis, text := range cases {
		cellType, err := wb.CellType(testSheet, axis)
		require.NoError(t, err, axis)
		assert.Equal(t, text, IsTextCell(cellType), axis)
	}

	v, err := wb.CellValue(testSheet, "Y23")
	require.NoError(t, err)
	assert.Equal(t, "0", v)
}
