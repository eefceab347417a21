package batch

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/zkverse/logo-overlay/internal/config"
	"github.com/zkverse/logo-overlay/internal/errs"
	"github.com/zkverse/logo-overlay/internal/logging"
	"github.com/zkverse/logo-overlay/internal/overlay"
	"golang.org/x/exp/slices"
)

// Runner executes one overlay job. Swappable for tests.
type Runner func(opts *config.OverlayOptions, log logging.Logger) error

// Summary reports the outcome of a batch run.
type Summary struct {
	Completed int
	Failed    int
	Outputs   []string
}

// Driver runs one overlay job per regular file in a partners directory,
// each against the same background and left logo.
type Driver struct {
	opts *config.BatchOptions
	log  logging.Logger
	run  Runner
}

// New creates a batch driver. A nil logger disables reporting.
func New(opts *config.BatchOptions, log logging.Logger) *Driver {
	if log == nil {
		log = logging.Nop{}
	}
	return &Driver{
		opts: opts,
		log:  log,
		run: func(opts *config.OverlayOptions, log logging.Logger) error {
			return overlay.New(opts, log).Process()
		},
	}
}

// Process enumerates the partners directory and runs the jobs in name
// order. A failed job is logged and the batch continues; only a failure
// to enumerate the directory aborts the whole run.
func (d *Driver) Process() (*Summary, error) {
	entries, err := os.ReadDir(d.opts.PartnersDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errs.ErrSourceNotFound, "partners directory %q", d.opts.PartnersDir)
		}
		return nil, errors.Wrapf(err, "failed to read partners directory %q", d.opts.PartnersDir)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	slices.Sort(names)

	summary := &Summary{}
	for _, name := range names {
		jobOpts := d.jobOptions(name)
		d.log.Infof("processing partner logo %q -> %q", name, jobOpts.OutputPath)

		if err := d.run(jobOpts, d.log); err != nil {
			d.log.Errorf("job for %q failed: %v", name, err)
			summary.Failed++
			continue
		}
		summary.Completed++
		summary.Outputs = append(summary.Outputs, jobOpts.OutputPath)
	}

	d.log.Infof("batch complete: %d succeeded, %d failed", summary.Completed, summary.Failed)
	return summary, nil
}

// jobOptions derives per-job overlay options from a partner file name.
// The output name is the partner's base name with its extension
// stripped; the overlayer appends the container extension.
func (d *Driver) jobOptions(name string) *config.OverlayOptions {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return &config.OverlayOptions{
		Background:   d.opts.Background,
		LeftLogo:     d.opts.LeftLogo,
		RightLogo:    filepath.Join(d.opts.PartnersDir, name),
		OutputPath:   filepath.Join(d.opts.OutputDir, base),
		OutputFormat: d.opts.OutputFormat,
		ScaleFactor:  d.opts.ScaleFactor,
	}
}
