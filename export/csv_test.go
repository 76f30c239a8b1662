package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/RyanBlaney/sonido-spa/spectrum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoSpectra(t *testing.T) (*spectrum.Set, *spectrum.Axis) {
	t.Helper()
	set, err := spectrum.NewSet(
		[]string{"a", "b"},
		[]spectrum.Spectrum{{1.5, 2.25, 3.125}, {4, 5, 6}},
	)
	require.NoError(t, err)
	axis, err := spectrum.NewAxis(3000, 1000, 3)
	require.NoError(t, err)
	return set, axis
}

func TestWriteFullSpectrum(t *testing.T) {
	set, axis := twoSpectra(t)

	var buf bytes.Buffer
	require.NoError(t, NewCSVWriter(6).Write(&buf, set, axis, spectrum.Full()))

	want := "Wavenumber, a, b\n" +
		"3000, 1.5, 4\n" +
		"2000, 2.25, 5\n" +
		"1000, 3.125, 6\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteRoundTrip(t *testing.T) {
	set, err := spectrum.NewSet(
		[]string{"first.SPA", "second.SPA"},
		[]spectrum.Spectrum{{97.123456789, 96.5, 0.000012345}, {-1.25, 88.8, 1234567.5}},
	)
	require.NoError(t, err)
	axis, err := spectrum.NewAxis(3999.9907, 649.9812, 3)
	require.NoError(t, err)

	for _, precision := range []int{6, -1} {
		var buf bytes.Buffer
		require.NoError(t, NewCSVWriter(precision).Write(&buf, set, axis, spectrum.Full()))

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, "Wavenumber, first.SPA, second.SPA", lines[0])

		for i, line := range lines[1:] {
			fields := strings.Split(line, Separator)
			require.Len(t, fields, 3)

			wavenumber, err := strconv.ParseFloat(fields[0], 64)
			require.NoError(t, err)
			assert.InEpsilon(t, axis.At(i), wavenumber, 1e-5)

			for j := 0; j < 2; j++ {
				v, err := strconv.ParseFloat(fields[j+1], 64)
				require.NoError(t, err)
				if precision < 0 {
					assert.Equal(t, set.At(j, i), v)
				} else {
					assert.InEpsilon(t, set.At(j, i), v, 1e-5)
				}
			}
		}
	}
}

func TestWriteDefaultPrecisionMatchesStreamFormatting(t *testing.T) {
	set, err := spectrum.NewSet([]string{"x"}, []spectrum.Spectrum{{95.3721, 1e-05}})
	require.NoError(t, err)
	axis, err := spectrum.NewAxis(3999.9907, 649.9812, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewCSVWriter(6).Write(&buf, set, axis, spectrum.Full()))
	assert.Equal(t, "Wavenumber, x\n3999.99, 95.3721\n649.981, 1e-05\n", buf.String())
}

func TestWriteSelectedRegions(t *testing.T) {
	// axis 10, 9, ..., 0 and samples equal to their index
	axis, err := spectrum.NewAxis(10, 0, 11)
	require.NoError(t, err)
	s := make(spectrum.Spectrum, 11)
	for i := range s {
		s[i] = float64(i)
	}
	set, err := spectrum.NewSet([]string{"s"}, []spectrum.Spectrum{s})
	require.NoError(t, err)

	tests := []struct {
		name  string
		sel   spectrum.Selector
		first string
		last  string
		rows  int
	}{
		{"closed", spectrum.Closed(spectrum.BoundPair{Upper: 7, Lower: 3}), "7, 3", "3, 7", 5},
		{"upper only", spectrum.UpperOnly(2), "2, 8", "0, 10", 3},
		{"lower only", spectrum.LowerOnly(9), "10, 0", "9, 1", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewCSVWriter(6).Write(&buf, set, axis, tt.sel))

			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			require.Len(t, lines, tt.rows+1)
			assert.Equal(t, tt.first, lines[1])
			assert.Equal(t, tt.last, lines[len(lines)-1])
		})
	}
}

func TestWriteRejectsMismatchedAxis(t *testing.T) {
	set, _ := twoSpectra(t)
	axis, err := spectrum.NewAxis(10, 0, 4)
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.Error(t, NewCSVWriter(6).Write(&buf, set, axis, spectrum.Full()))
	assert.Error(t, NewCSVWriter(6).Write(&buf, nil, axis, spectrum.Full()))
	assert.Error(t, NewCSVWriter(6).Write(&buf, set, nil, spectrum.Full()))
}

func TestWriteFileTruncates(t *testing.T) {
	set, axis := twoSpectra(t)
	path := filepath.Join(t.TempDir(), FileName(PrefixRaw, spectrum.Full()))
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("stale\n"), 100), 0o644))

	require.NoError(t, NewCSVWriter(6).WriteFile(path, set, axis, spectrum.Full()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Wavenumber, a, b\n"))
	assert.NotContains(t, string(data), "stale")
}

func TestWriteFileCreateError(t *testing.T) {
	set, axis := twoSpectra(t)
	path := filepath.Join(t.TempDir(), "missing-dir", "out.CSV")

	err := NewCSVWriter(6).WriteFile(path, set, axis, spectrum.Full())
	var openErr *spectrum.FileOpenError
	require.ErrorAs(t, err, &openErr)
	assert.Equal(t, "create", openErr.Op)
	assert.Equal(t, path, openErr.Path)
}
