package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseCellInt(t *testing.T) {
	valid := map[string]int{
		"2":    2,
		" 12 ": 12,
		"2.0":  2,
		"6.9":  6,
		"-3":   -3,
		"1e1":  10,
		"0":    0,
	}
	for raw, want := range valid {
		got, err := ParseCellInt(raw)
		require.NoError(t, err, "raw %q", raw)
		assert.Equal(t, want, got, "raw %q", raw)
	}

	for _, raw := range []string{"", "dos", "2-1", "NaN", "Inf"} {
		_, err := ParseCellInt(raw)
		assert.ErrorIs(t, err, ErrNotNumeric, "raw %q", raw)
	}
}

func TestCellName(t *testing.T) {
	axis, err := CellName("ab", 23)
	require.NoError(t, err)
	assert.Equal(t, "AB23", axis)

	_, err = CellName("AB", 0)
	assert.Error(t, err, "Row numbers start at 1")
}

func TestIsTextCell(t *testing.T) {
	assert.True(t, IsTextCell(excelize.CellTypeSharedString))
	assert.True(t, IsTextCell(excelize.CellTypeInlineString))
	assert.True(t, IsTextCell(excelize.CellTypeFormula), "String formula results count as text")
	assert.False(t, IsTextCell(excelize.CellTypeUnset))
	assert.False(t, IsTextCell(excelize.CellTypeNumber))
	assert.False(t, IsTextCell(excelize.CellTypeBool))
	assert.False(t, IsTextCell(excelize.CellTypeError))
}
