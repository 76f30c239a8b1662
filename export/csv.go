// Package export writes spectrum sets as comma-space separated text and as
// spreadsheet workbooks, and builds the output file names.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/RyanBlaney/sonido-spa/logging"
	"github.com/RyanBlaney/sonido-spa/spectrum"
)

// Separator between CSV fields
const Separator = ", "

// HeaderWavenumber is the title of the first CSV column
const HeaderWavenumber = "Wavenumber"

// CSVWriter serializes spectrum sets next to their shared wavenumber column
type CSVWriter struct {
	precision int
	logger    logging.Logger
}

// NewCSVWriter creates a writer printing numbers with precision significant
// digits ('g' format). A precision of -1 prints the shortest text that
// parses back to the same float64.
func NewCSVWriter(precision int) *CSVWriter {
	return &CSVWriter{
		precision: precision,
		logger: logging.WithFields(logging.Fields{
			"component": "csv_writer",
		}),
	}
}

// WriteFile creates (or truncates) path and writes the selected region of set to it
func (w *CSVWriter) WriteFile(path string, set *spectrum.Set, axis *spectrum.Axis, sel spectrum.Selector) error {
	f, err := os.Create(path)
	if err != nil {
		return &spectrum.FileOpenError{Op: "create", Path: path, Err: err}
	}

	rows, werr := w.write(f, set, axis, sel)
	if cerr := f.Close(); werr == nil && cerr != nil {
		werr = fmt.Errorf("failed to close %s: %w", path, cerr)
	}
	if werr != nil {
		return werr
	}

	w.logger.Info("Wrote CSV", logging.Fields{
		"path":    path,
		"columns": set.Len() + 1,
		"rows":    rows,
		"region":  sel.String(),
	})
	return nil
}

// Write writes the header and the selected rows of set to out
func (w *CSVWriter) Write(out io.Writer, set *spectrum.Set, axis *spectrum.Axis, sel spectrum.Selector) error {
	_, err := w.write(out, set, axis, sel)
	return err
}

func (w *CSVWriter) write(out io.Writer, set *spectrum.Set, axis *spectrum.Axis, sel spectrum.Selector) (int, error) {
	first, last, err := checkTable(set, axis, sel)
	if err != nil {
		return 0, err
	}

	bw := bufio.NewWriter(out)
	bw.WriteString(HeaderWavenumber + Separator + strings.Join(set.Labels(), Separator) + "\n")

	var line []byte
	for i := first; i <= last; i++ {
		line = line[:0]
		line = w.appendFloat(line, axis.At(i))
		for j := 0; j < set.Len(); j++ {
			line = append(line, Separator...)
			line = w.appendFloat(line, set.At(j, i))
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return 0, fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return last - first + 1, nil
}

func (w *CSVWriter) appendFloat(dst []byte, v float64) []byte {
	return strconv.AppendFloat(dst, v, 'g', w.precision, 64)
}

// checkTable verifies set and axis line up and resolves sel to an index range
func checkTable(set *spectrum.Set, axis *spectrum.Axis, sel spectrum.Selector) (first, last int, err error) {
	if set == nil {
		return 0, 0, fmt.Errorf("spectrum set cannot be nil")
	}
	if axis == nil {
		return 0, 0, fmt.Errorf("wavenumber axis cannot be nil")
	}
	if axis.Len() != set.Samples() {
		return 0, 0, fmt.Errorf("axis has %d samples, spectra have %d", axis.Len(), set.Samples())
	}

	first, last = sel.Resolve(axis)
	if first > last {
		return 0, 0, fmt.Errorf("region %s selects no samples", sel)
	}
	return first, last, nil
}
