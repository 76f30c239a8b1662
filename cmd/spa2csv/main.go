// spa2csv extracts spectra from Thermo OMNIC SPA files into CSV files,
// optionally restricted to a wavenumber region, baseline corrected and
// averaged in groups.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/RyanBlaney/sonido-spa/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	args, parser, err := parseArgs(argv)
	if errors.Is(err, errHelp) {
		parser.WriteHelp(stderr)
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if parser != nil {
			parser.WriteUsage(stderr)
		}
		return 1
	}

	useColors := stdout == io.Writer(os.Stdout) && logging.IsTerminal()
	logger := logging.NewLogger(stdout, stderr, useColors)
	switch {
	case args.Verbose:
		logger.SetLevel(logging.DebugLevel)
	case args.Quiet:
		logger.SetLevel(logging.WarnLevel)
	}
	logging.SetGlobalLogger(logger)
	defer logging.SetGlobalLogger(nil)

	job, err := newJob(args)
	if err != nil {
		logger.Error(err, "invalid arguments")
		var argErr *ArgumentError
		if errors.As(err, &argErr) {
			parser.WriteUsage(stderr)
		}
		return 1
	}

	if err := job.run(logger); err != nil {
		logger.Error(err, "conversion failed")
		return 1
	}
	return 0
}
