// Package videooverlay is the public entry point for overlaying two
// static logos onto every frame of a background video.
package videooverlay

import (
	"github.com/zkverse/logo-overlay/internal/batch"
	"github.com/zkverse/logo-overlay/internal/config"
	"github.com/zkverse/logo-overlay/internal/errs"
	"github.com/zkverse/logo-overlay/internal/logging"
	"github.com/zkverse/logo-overlay/internal/overlay"
)

// Error kinds returned by Overlay and Batch, matchable with errors.Is.
var (
	ErrSourceNotFound = errs.ErrSourceNotFound
	ErrDecodeFailed   = errs.ErrDecodeFailed
	ErrOpenFailed     = errs.ErrOpenFailed
)

// Logger is the reporting interface accepted by the pipeline. It is
// satisfied by *logrus.Logger among others; leave it nil to disable
// reporting.
type Logger = logging.Logger

// OverlayOptions defines options for a single overlay run
type OverlayOptions struct {
	Background   string // Background video path
	LeftLogo     string // Left logo image path
	RightLogo    string // Right logo image path
	OutputPath   string // Defaults to "output.mp4"
	OutputFormat string // "mp4" (default) or "webm"
	ScaleFactor  int    // Defaults to 4
	Logger       Logger
}

// BatchOptions defines options for running one overlay per file in a
// partners directory
type BatchOptions struct {
	Background   string
	LeftLogo     string
	PartnersDir  string
	OutputDir    string // Defaults to "output"
	OutputFormat string
	ScaleFactor  int
	Logger       Logger
}

// BatchSummary reports the outcome of a batch run.
type BatchSummary struct {
	Completed int
	Failed    int
	Outputs   []string
}

// Overlay composites the two logos onto every frame of the background
// video and writes the result to the output path.
func Overlay(opts *OverlayOptions) error {
	cfg := &config.OverlayOptions{
		Background:   opts.Background,
		LeftLogo:     opts.LeftLogo,
		RightLogo:    opts.RightLogo,
		OutputPath:   opts.OutputPath,
		OutputFormat: opts.OutputFormat,
		ScaleFactor:  opts.ScaleFactor,
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = config.DefaultOutputPath
	}
	if cfg.ScaleFactor == 0 {
		cfg.ScaleFactor = config.DefaultScaleFactor
	}
	return overlay.New(cfg, opts.Logger).Process()
}

// Batch runs one overlay per regular file in the partners directory. A
// failed job does not abort the remaining jobs; failures are counted in
// the summary.
func Batch(opts *BatchOptions) (*BatchSummary, error) {
	cfg := &config.BatchOptions{
		Background:   opts.Background,
		LeftLogo:     opts.LeftLogo,
		PartnersDir:  opts.PartnersDir,
		OutputDir:    opts.OutputDir,
		OutputFormat: opts.OutputFormat,
		ScaleFactor:  opts.ScaleFactor,
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = config.DefaultOutputDir
	}
	if cfg.ScaleFactor == 0 {
		cfg.ScaleFactor = config.DefaultScaleFactor
	}

	summary, err := batch.New(cfg, opts.Logger).Process()
	if err != nil {
		return nil, err
	}
	return &BatchSummary{
		Completed: summary.Completed,
		Failed:    summary.Failed,
		Outputs:   summary.Outputs,
	}, nil
}
