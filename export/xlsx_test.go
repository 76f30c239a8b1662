package export

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/RyanBlaney/sonido-spa/spectrum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWorkbookSheets(t *testing.T) {
	set, axis := twoSpectra(t)
	path := filepath.Join(t.TempDir(), WorkbookName(spectrum.Full()))

	wb := NewWorkbook(6)
	require.NoError(t, wb.AddSheet(PrefixRaw, set, axis, spectrum.Full()))
	require.NoError(t, wb.AddSheet(PrefixCorrected, set, axis, spectrum.UpperOnly(2000)))
	assert.Equal(t, []string{PrefixRaw, PrefixCorrected}, wb.Sheets())
	require.NoError(t, wb.SaveAs(path))
	require.NoError(t, wb.Close())

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{PrefixRaw, PrefixCorrected}, f.GetSheetList())

	rows, err := f.GetRows(PrefixRaw)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Wavenumber", "a", "b"}, rows[0])

	for i, row := range rows[1:] {
		require.Len(t, row, 3)
		wavenumber, err := strconv.ParseFloat(row[0], 64)
		require.NoError(t, err)
		assert.InDelta(t, axis.At(i), wavenumber, 1e-6)

		b, err := strconv.ParseFloat(row[2], 64)
		require.NoError(t, err)
		assert.InDelta(t, set.At(1, i), b, 1e-6)
	}

	rows, err = f.GetRows(PrefixCorrected)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestWorkbookRound(t *testing.T) {
	assert.Equal(t, 3999.99, NewWorkbook(6).round(3999.9907))
	assert.Equal(t, 3999.9907, NewWorkbook(-1).round(3999.9907))
}

func TestWorkbookErrors(t *testing.T) {
	set, _ := twoSpectra(t)
	wrongAxis, err := spectrum.NewAxis(10, 0, 5)
	require.NoError(t, err)

	wb := NewWorkbook(6)
	defer wb.Close()

	assert.Error(t, wb.AddSheet(PrefixRaw, set, wrongAxis, spectrum.Full()))
	assert.Error(t, wb.SaveAs(filepath.Join(t.TempDir(), "empty.xlsx")))
}
