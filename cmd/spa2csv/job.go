package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/RyanBlaney/sonido-spa/algorithms/baseline"
	"github.com/RyanBlaney/sonido-spa/algorithms/grouping"
	"github.com/RyanBlaney/sonido-spa/config"
	"github.com/RyanBlaney/sonido-spa/export"
	"github.com/RyanBlaney/sonido-spa/logging"
	"github.com/RyanBlaney/sonido-spa/spa"
	"github.com/RyanBlaney/sonido-spa/spectrum"
)

// job is a validated invocation. Everything that can be rejected without
// reading a file has been checked by the time one exists.
type job struct {
	cfg       *config.Config
	files     []string
	selector  spectrum.Selector
	reference *spectrum.BoundPair
	groupSize int // 0 disables averaging
}

func newJob(args *Args) (*job, error) {
	if len(args.Files) == 0 {
		return nil, &ArgumentError{Reason: "no SPA files given"}
	}

	cfg := config.DefaultConfig()
	if args.Profile != "" {
		var err error
		if cfg, err = config.LoadFile(args.Profile); err != nil {
			return nil, err
		}
	}
	if args.OutputDir != "" {
		cfg.Output.Directory = args.OutputDir
	}
	if args.XLSX {
		cfg.Output.Workbook = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	j := &job{cfg: cfg, files: args.Files}
	maxWn, minWn := cfg.Instrument.MaxWavenumber, cfg.Instrument.MinWavenumber

	switch {
	case args.UpperBound != nil && args.LowerBound != nil:
		pair, err := spectrum.ValidatePair(int(*args.UpperBound), int(*args.LowerBound), maxWn, minWn)
		if err != nil {
			return nil, err
		}
		j.selector = spectrum.Closed(pair)
	case args.UpperBound != nil:
		upper, err := spectrum.ValidateSingle(int(*args.UpperBound), maxWn, minWn)
		if err != nil {
			return nil, err
		}
		j.selector = spectrum.UpperOnly(upper)
	case args.LowerBound != nil:
		lower, err := spectrum.ValidateSingle(int(*args.LowerBound), maxWn, minWn)
		if err != nil {
			return nil, err
		}
		j.selector = spectrum.LowerOnly(lower)
	default:
		j.selector = spectrum.Full()
	}

	if args.ConstCorr != nil {
		pair, err := spectrum.ValidatePair(args.ConstCorr.Upper, args.ConstCorr.Lower, maxWn, minWn)
		if err != nil {
			return nil, fmt.Errorf("correction region: %w", err)
		}
		j.reference = &pair
	}

	if args.GroupFiles != nil {
		g := *args.GroupFiles
		if g < 1 || len(args.Files)%g != 0 {
			return nil, &spectrum.GroupSizeError{Count: len(args.Files), GroupSize: g}
		}
		j.groupSize = g
	}

	return j, nil
}

func (j *job) run(logger logging.Logger) error {
	logger = logger.WithFields(logging.Fields{
		"component":  "spa2csv",
		"instrument": j.cfg.Instrument.Name,
		"region":     j.selector.String(),
	})

	reader, err := spa.NewReader(j.cfg.Instrument)
	if err != nil {
		return err
	}
	axis, err := spectrum.NewAxis(j.cfg.Instrument.MaxWavenumber, j.cfg.Instrument.MinWavenumber, reader.SampleCount())
	if err != nil {
		return err
	}

	logger.Info("Reading SPA files", logging.Fields{"files": len(j.files), "samples": reader.SampleCount()})
	raw, err := reader.ReadSet(j.files)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(j.cfg.Output.Directory, 0o755); err != nil {
		return &spectrum.FileOpenError{Op: "create", Path: j.cfg.Output.Directory, Err: err}
	}

	out := newOutputs(j.cfg.Output, axis, j.selector, logger)
	defer out.close()

	if err := out.emit(export.PrefixRaw, raw); err != nil {
		return err
	}
	if j.groupSize > 0 {
		averaged, err := grouping.Average(raw, j.groupSize)
		if err != nil {
			return err
		}
		if err := out.emit(export.PrefixAveraged, averaged); err != nil {
			return err
		}
	}

	if j.reference != nil {
		corrected, profile, err := baseline.Correct(raw, *j.reference, axis)
		if err != nil {
			return err
		}
		logger.Debug("Computed constant correction", logging.Fields{
			"reference":   j.reference.String(),
			"corrections": []float64(profile),
		})
		if err := out.emit(export.PrefixCorrected, corrected); err != nil {
			return err
		}

		if j.groupSize > 0 {
			averaged, err := grouping.Average(corrected, j.groupSize)
			if err != nil {
				return err
			}
			if err := out.emit(export.PrefixAveragedCorrected, averaged); err != nil {
				return err
			}
		}
	}

	return out.save()
}

// outputs fans each dataset out to its CSV file and, when enabled, a sheet
// of the shared workbook.
type outputs struct {
	dir      string
	axis     *spectrum.Axis
	selector spectrum.Selector
	csv      *export.CSVWriter
	workbook *export.Workbook
	logger   logging.Logger
}

func newOutputs(cfg config.OutputConfig, axis *spectrum.Axis, sel spectrum.Selector, logger logging.Logger) *outputs {
	o := &outputs{
		dir:      cfg.Directory,
		axis:     axis,
		selector: sel,
		csv:      export.NewCSVWriter(cfg.Precision),
		logger:   logger,
	}
	if cfg.Workbook {
		o.workbook = export.NewWorkbook(cfg.Precision)
	}
	return o
}

func (o *outputs) emit(prefix string, set *spectrum.Set) error {
	path := filepath.Join(o.dir, export.FileName(prefix, o.selector))
	if err := o.csv.WriteFile(path, set, o.axis, o.selector); err != nil {
		return err
	}
	if o.workbook != nil {
		if err := o.workbook.AddSheet(prefix, set, o.axis, o.selector); err != nil {
			return fmt.Errorf("failed to add %s sheet: %w", prefix, err)
		}
	}
	return nil
}

func (o *outputs) save() error {
	if o.workbook == nil {
		return nil
	}
	path := filepath.Join(o.dir, export.WorkbookName(o.selector))
	if err := o.workbook.SaveAs(path); err != nil {
		return err
	}
	o.logger.Info("Wrote workbook", logging.Fields{"path": path, "sheets": len(o.workbook.Sheets())})
	return nil
}

func (o *outputs) close() {
	if o.workbook == nil {
		return
	}
	if err := o.workbook.Close(); err != nil {
		o.logger.Warn(fmt.Sprintf("failed to close workbook: %v", err))
	}
}
