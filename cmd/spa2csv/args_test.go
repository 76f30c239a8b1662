package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWavenumber(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"1000", 1000, false},
		{"1800.9", 1800, false},
		{"5.", 5, false},
		{"-5", -5, false},
		{"-5.7", -5, false},
		{"", 0, true},
		{".5", 0, true},
		{"12a", 0, true},
		{"1.2.3", 0, true},
		{"1e3", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseWavenumber(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegionUnmarshalText(t *testing.T) {
	var r Region
	require.NoError(t, r.UnmarshalText([]byte("2700-2500")))
	assert.Equal(t, Region{Upper: 2700, Lower: 2500}, r)

	require.NoError(t, r.UnmarshalText([]byte("1000.5-1200")))
	assert.Equal(t, Region{Upper: 1000, Lower: 1200}, r)

	for _, bad := range []string{"2700", "2700-", "-2500", "a-b", "1-2-3"} {
		assert.Error(t, new(Region).UnmarshalText([]byte(bad)), bad)
	}
}

func TestCheckArgOrder(t *testing.T) {
	tests := []struct {
		name    string
		argv    []string
		wantErr string
	}{
		{"options then files", []string{"-u=1800", "-l", "1200", "a.SPA", "b.SPA"}, ""},
		{"separate value is not a file", []string{"--group-files", "2", "--xlsx", "a.SPA", "b.SPA"}, ""},
		{"files only", []string{"a.SPA"}, ""},
		{"option after file", []string{"a.SPA", "-u=1800"}, "options must be given before"},
		{"switch after file", []string{"-u=1800", "a.SPA", "--xlsx"}, "options must be given before"},
		{"repeated option", []string{"-u=1800", "-u=1700", "a.SPA"}, "given more than once"},
		{"repeated under both spellings", []string{"-l=900", "--lower-bound", "800", "a.SPA"}, "given more than once"},
		{"everything after -- is a file", []string{"-u=1800", "--", "-odd-name.SPA"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkArgOrder(tt.argv)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var argErr *ArgumentError
			require.ErrorAs(t, err, &argErr)
			assert.Contains(t, argErr.Error(), tt.wantErr)
		})
	}
}

func TestParseArgs(t *testing.T) {
	args, _, err := parseArgs([]string{
		"-u", "1800.7", "--lower-bound=1200",
		"--calculate-const-corr=2700-2500", "--group-files", "2",
		"--output-dir=out", "--xlsx", "-v",
		"a.SPA", "b.SPA",
	})
	require.NoError(t, err)

	require.NotNil(t, args.UpperBound)
	require.NotNil(t, args.LowerBound)
	require.NotNil(t, args.ConstCorr)
	require.NotNil(t, args.GroupFiles)
	assert.Equal(t, Wavenumber(1800), *args.UpperBound)
	assert.Equal(t, Wavenumber(1200), *args.LowerBound)
	assert.Equal(t, Region{Upper: 2700, Lower: 2500}, *args.ConstCorr)
	assert.Equal(t, 2, *args.GroupFiles)
	assert.Equal(t, "out", args.OutputDir)
	assert.True(t, args.XLSX)
	assert.True(t, args.Verbose)
	assert.False(t, args.Quiet)
	assert.Equal(t, []string{"a.SPA", "b.SPA"}, args.Files)
}

func TestParseArgsOmittedOptions(t *testing.T) {
	args, _, err := parseArgs([]string{"a.SPA"})
	require.NoError(t, err)
	assert.Nil(t, args.UpperBound)
	assert.Nil(t, args.LowerBound)
	assert.Nil(t, args.ConstCorr)
	assert.Nil(t, args.GroupFiles)
	assert.Equal(t, []string{"a.SPA"}, args.Files)
}

func TestParseArgsHelp(t *testing.T) {
	for _, argv := range [][]string{nil, {"-h"}, {"-?"}, {"--help"}, {"-u=1000", "--help"}} {
		_, parser, err := parseArgs(argv)
		assert.ErrorIs(t, err, errHelp, "%v", argv)
		assert.NotNil(t, parser)
	}
}

func TestParseArgsMalformed(t *testing.T) {
	for _, argv := range [][]string{
		{"-u=abc", "a.SPA"},
		{"--calculate-const-corr=2700", "a.SPA"},
		{"--group-files=two", "a.SPA"},
		{"--no-such-flag", "a.SPA"},
	} {
		_, _, err := parseArgs(argv)
		var argErr *ArgumentError
		assert.ErrorAs(t, err, &argErr, "%v", argv)
	}
}
