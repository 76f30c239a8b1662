package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.InDelta(t, 2.5, Mean([]float64{1, 2, 3, 4}), 1e-12)
}

func TestMeanRange(t *testing.T) {
	data := []float64{10, 1, 2, 3, 10}

	got, err := MeanRange(data, 1, 3)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-12)

	got, err = MeanRange(data, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got)

	for _, r := range [][2]int{{-1, 2}, {0, 5}, {3, 2}} {
		_, err := MeanRange(data, r[0], r[1])
		assert.Error(t, err, "range %v", r)
	}
}

func TestMeanRows(t *testing.T) {
	got, err := MeanRows(nil, []float64{2, 2, 2}, []float64{4, 6, 8})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, 5}, got)

	dst := []float64{9, 9}
	got, err = MeanRows(dst, []float64{1, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, dst)
	assert.Equal(t, dst, got)
}

func TestMeanRowsErrors(t *testing.T) {
	_, err := MeanRows(nil)
	assert.Error(t, err)

	_, err = MeanRows(make([]float64, 3), []float64{1, 2})
	assert.Error(t, err)

	_, err = MeanRows(nil, []float64{1, 2}, []float64{1})
	assert.Error(t, err)
}
