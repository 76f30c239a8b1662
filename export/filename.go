package export

import (
	"fmt"

	"github.com/RyanBlaney/sonido-spa/spectrum"
)

// Output dataset prefixes
const (
	PrefixRaw               = "combinedRawData"
	PrefixAveraged          = "averagedData"
	PrefixCorrected         = "constCorrData"
	PrefixAveragedCorrected = "averagedCorrData"
)

// Suffix describes the selected region the way output names spell it:
// "fullSpectrum", "upperBound.N", "lowerBound.N" or "U-L".
func Suffix(sel spectrum.Selector) string {
	switch sel.Kind() {
	case spectrum.SelectUpperOnly:
		return fmt.Sprintf("upperBound.%d", sel.Upper())
	case spectrum.SelectLowerOnly:
		return fmt.Sprintf("lowerBound.%d", sel.Lower())
	case spectrum.SelectClosed:
		return fmt.Sprintf("%d-%d", sel.Upper(), sel.Lower())
	default:
		return "fullSpectrum"
	}
}

// FileName returns the CSV file name for one dataset, e.g.
// "averagedData.1800-1200.CSV"
func FileName(prefix string, sel spectrum.Selector) string {
	return prefix + "." + Suffix(sel) + ".CSV"
}

// WorkbookName returns the workbook file name for a run, e.g.
// "spectra.fullSpectrum.xlsx"
func WorkbookName(sel spectrum.Selector) string {
	return "spectra." + Suffix(sel) + ".xlsx"
}
