package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexflint/go-arg"
)

// ArgumentError reports a malformed invocation: a bad value, a repeated
// option or an option placed after the file names.
type ArgumentError struct {
	Arg    string
	Reason string
}

func (e *ArgumentError) Error() string {
	if e.Arg == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Arg, e.Reason)
}

var errHelp = errors.New("help requested")

// Wavenumber is an integer wavenumber given on the command line. A
// fractional part is accepted and truncated toward zero.
type Wavenumber int

func (w *Wavenumber) UnmarshalText(b []byte) error {
	v, err := parseWavenumber(string(b))
	if err != nil {
		return err
	}
	*w = Wavenumber(v)
	return nil
}

// Region is the "N-M" value of --calculate-const-corr
type Region struct {
	Upper int
	Lower int
}

func (r *Region) UnmarshalText(b []byte) error {
	upper, lower, ok := strings.Cut(string(b), "-")
	if !ok {
		return fmt.Errorf("expected N-M, got %q", string(b))
	}

	u, err := parseWavenumber(upper)
	if err != nil {
		return err
	}
	l, err := parseWavenumber(lower)
	if err != nil {
		return err
	}

	r.Upper, r.Lower = u, l
	return nil
}

func parseWavenumber(s string) (int, error) {
	digits := s
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}
	if whole, frac, ok := strings.Cut(digits, "."); ok {
		if !allDigits(frac) {
			return 0, fmt.Errorf("%q is not a decimal number", s)
		}
		digits = whole
	}
	if digits == "" || !allDigits(digits) {
		return 0, fmt.Errorf("%q is not a decimal number", s)
	}

	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%q is out of range", s)
	}
	if negative {
		v = -v
	}
	return v, nil
}

func allDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Args is the spa2csv command line
type Args struct {
	UpperBound *Wavenumber `arg:"-u,--upper-bound" placeholder:"N1" help:"upper bound N1 of the wavenumber region to save"`
	LowerBound *Wavenumber `arg:"-l,--lower-bound" placeholder:"N2" help:"lower bound N2 of the wavenumber region to save"`
	ConstCorr  *Region     `arg:"--calculate-const-corr" placeholder:"N3-N4" help:"wavenumber region between N3 and N4 used to calculate a constant correction; each spectrum is moved up or down to minimize its distance to the others in this region"`
	GroupFiles *int        `arg:"--group-files" placeholder:"N5" help:"number of consecutive files N5 grouped and averaged; the file count must be a multiple of N5"`
	Profile    string      `arg:"--profile" placeholder:"FILE" help:"JSON instrument and output profile"`
	OutputDir  string      `arg:"--output-dir" placeholder:"DIR" help:"directory for output files [default from profile: .]"`
	XLSX       bool        `arg:"--xlsx" help:"also write every dataset into one .xlsx workbook"`
	Verbose    bool        `arg:"-v,--verbose" help:"log debug details"`
	Quiet      bool        `arg:"-q,--quiet" help:"log warnings and errors only"`
	Files      []string    `arg:"positional" placeholder:"FILE" help:"SPA files, after all options"`
}

func (Args) Description() string {
	return "Reads % transmission or % absorption values from SPA files created by Thermo\n" +
		"Scientific OMNIC software and writes them to a CSV file. Options allow the user to\n" +
		"save only a specified region of each spectrum, calculate and apply a constant\n" +
		"correction to each spectrum (saved in a separate file), and take the average of\n" +
		"multiple spectra by grouping files (saved in a separate file).\n"
}

func (Args) Epilogue() string {
	return "Examples:\n" +
		"  spa2csv sample1.SPA sample2.SPA\n" +
		"  spa2csv -u=1800 -l=1200 a.SPA b.SPA\n" +
		"  spa2csv --calculate-const-corr=2700-2500 --group-files=3 r1.SPA r2.SPA r3.SPA s1.SPA s2.SPA s3.SPA\n"
}

// options that take a value, keyed by every spelling, valued by canonical name
var valueOptions = map[string]string{
	"-u":                     "--upper-bound",
	"--upper-bound":          "--upper-bound",
	"-l":                     "--lower-bound",
	"--lower-bound":          "--lower-bound",
	"--calculate-const-corr": "--calculate-const-corr",
	"--group-files":          "--group-files",
	"--profile":              "--profile",
	"--output-dir":           "--output-dir",
}

var switchOptions = map[string]string{
	"--xlsx":    "--xlsx",
	"-v":        "--verbose",
	"--verbose": "--verbose",
	"-q":        "--quiet",
	"--quiet":   "--quiet",
}

func isHelp(a string) bool {
	return a == "-h" || a == "-?" || a == "--help"
}

// checkArgOrder enforces that every option precedes the first file name and
// that no option is given twice. Unknown options are left for the parser.
func checkArgOrder(argv []string) error {
	seen := make(map[string]bool)
	filesStarted := false

	for i := 0; i < len(argv); i++ {
		a := argv[i]
		if a == "--" {
			return nil
		}
		if !strings.HasPrefix(a, "-") || a == "-" {
			filesStarted = true
			continue
		}

		name, _, hasValue := strings.Cut(a, "=")
		canonical, takesValue := valueOptions[name]
		if !takesValue {
			canonical = switchOptions[name]
		}
		if canonical == "" {
			canonical = name
		}

		if filesStarted {
			return &ArgumentError{Arg: name, Reason: "options must be given before the SPA file names"}
		}
		if seen[canonical] {
			return &ArgumentError{Arg: canonical, Reason: "given more than once"}
		}
		seen[canonical] = true

		if takesValue && !hasValue {
			i++
		}
	}
	return nil
}

func newParser(args *Args) (*arg.Parser, error) {
	return arg.NewParser(arg.Config{Program: "spa2csv", IgnoreEnv: true}, args)
}

// parseArgs parses argv (without the program name). It returns errHelp when
// usage was requested, including an empty argv.
func parseArgs(argv []string) (*Args, *arg.Parser, error) {
	args := &Args{}
	parser, err := newParser(args)
	if err != nil {
		return nil, nil, err
	}

	if len(argv) == 0 {
		return nil, parser, errHelp
	}
	for _, a := range argv {
		if a == "--" {
			break
		}
		if isHelp(a) {
			return nil, parser, errHelp
		}
	}

	if err := checkArgOrder(argv); err != nil {
		return nil, parser, err
	}

	if err := parser.Parse(argv); err != nil {
		if errors.Is(err, arg.ErrHelp) {
			return nil, parser, errHelp
		}
		return nil, parser, &ArgumentError{Reason: err.Error()}
	}
	return args, parser, nil
}
