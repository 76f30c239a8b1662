package export

import (
	"fmt"
	"strconv"

	"github.com/RyanBlaney/sonido-spa/logging"
	"github.com/RyanBlaney/sonido-spa/spectrum"
	"github.com/xuri/excelize/v2"
)

// defaultSheet is the sheet excelize creates with every new file
const defaultSheet = "Sheet1"

// Workbook collects datasets as sheets of one .xlsx file. Each sheet has the
// same layout as the CSV output: a header row, then one row per sample.
type Workbook struct {
	file      *excelize.File
	precision int
	sheets    []string
	logger    logging.Logger
}

// NewWorkbook creates an empty workbook. Cell values are rounded to
// precision significant digits so sheets match the CSV text; -1 keeps full precision.
func NewWorkbook(precision int) *Workbook {
	return &Workbook{
		file:      excelize.NewFile(),
		precision: precision,
		logger: logging.WithFields(logging.Fields{
			"component": "xlsx_writer",
		}),
	}
}

// Sheets returns the sheet names added so far, in order
func (wb *Workbook) Sheets() []string {
	return append([]string(nil), wb.sheets...)
}

// AddSheet writes the selected region of set into a new sheet called name
func (wb *Workbook) AddSheet(name string, set *spectrum.Set, axis *spectrum.Axis, sel spectrum.Selector) error {
	first, last, err := checkTable(set, axis, sel)
	if err != nil {
		return err
	}

	if len(wb.sheets) == 0 {
		if err := wb.file.SetSheetName(defaultSheet, name); err != nil {
			return fmt.Errorf("failed to name sheet %q: %w", name, err)
		}
	} else if _, err := wb.file.NewSheet(name); err != nil {
		return fmt.Errorf("failed to add sheet %q: %w", name, err)
	}

	sw, err := wb.file.NewStreamWriter(name)
	if err != nil {
		return fmt.Errorf("failed to open sheet %q: %w", name, err)
	}

	header := make([]interface{}, 0, set.Len()+1)
	header = append(header, HeaderWavenumber)
	for _, label := range set.Labels() {
		header = append(header, label)
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("failed to write header of sheet %q: %w", name, err)
	}

	row := make([]interface{}, set.Len()+1)
	for i := first; i <= last; i++ {
		row[0] = wb.round(axis.At(i))
		for j := 0; j < set.Len(); j++ {
			row[j+1] = wb.round(set.At(j, i))
		}

		cell, err := excelize.CoordinatesToCellName(1, i-first+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("failed to write row %d of sheet %q: %w", i, name, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet %q: %w", name, err)
	}

	wb.sheets = append(wb.sheets, name)
	wb.logger.Debug("Added workbook sheet", logging.Fields{
		"sheet": name,
		"rows":  last - first + 1,
	})
	return nil
}

func (wb *Workbook) round(v float64) float64 {
	if wb.precision < 0 {
		return v
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', wb.precision, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}

// SaveAs writes the workbook to path, creating or truncating it
func (wb *Workbook) SaveAs(path string) error {
	if len(wb.sheets) == 0 {
		return fmt.Errorf("workbook has no sheets")
	}
	wb.file.SetActiveSheet(0)
	if err := wb.file.SaveAs(path); err != nil {
		return &spectrum.FileOpenError{Op: "create", Path: path, Err: err}
	}

	wb.logger.Info("Wrote workbook", logging.Fields{
		"path":   path,
		"sheets": len(wb.sheets),
	})
	return nil
}

// Close releases the workbook's temporary resources
func (wb *Workbook) Close() error {
	return wb.file.Close()
}
