package overlay

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/zkverse/logo-overlay/internal/config"
	ffmpegWrap "github.com/zkverse/logo-overlay/internal/ffmpeg"
	"github.com/zkverse/logo-overlay/internal/format"
	"github.com/zkverse/logo-overlay/internal/imaging"
	"github.com/zkverse/logo-overlay/internal/logging"
)

// Overlayer runs one overlay job: two logos composited onto every frame
// of a background video.
type Overlayer struct {
	opts  *config.OverlayOptions
	log   logging.Logger
	probe func(string) (*ffmpegWrap.VideoMetadata, error)
}

// New creates an overlayer. A nil logger disables reporting.
func New(opts *config.OverlayOptions, log logging.Logger) *Overlayer {
	if log == nil {
		log = logging.Nop{}
	}
	return &Overlayer{
		opts:  opts,
		log:   log,
		probe: ffmpegWrap.Probe,
	}
}

// Process probes the background, loads both logos, and streams the
// video through the compositor into the encoder. Fails fast on the
// first error; end of stream is a normal completion.
func (o *Overlayer) Process() error {
	meta, err := o.probe(o.opts.Background)
	if err != nil {
		return err
	}

	o.log.Debugf("background %s: %dx%d @ %s (%.2f fps)",
		o.opts.Background, meta.Width, meta.Height, meta.FrameRate, meta.FPS)

	left, err := imaging.Load(o.opts.LeftLogo, meta.Width, meta.Height, o.opts.ScaleFactor)
	if err != nil {
		return err
	}
	right, err := imaging.Load(o.opts.RightLogo, meta.Width, meta.Height, o.opts.ScaleFactor)
	if err != nil {
		return err
	}

	o.log.Debugf("logos resized to %dx%d and %dx%d (scale factor %d)",
		left.Width, left.Height, right.Width, right.Height, o.opts.ScaleFactor)

	outputFormat := o.opts.OutputFormat
	if outputFormat == "" {
		outputFormat = config.DefaultOutputFormat
	}
	f, err := format.Get(outputFormat)
	if err != nil {
		return err
	}

	outputPath := ensureExtension(o.opts.OutputPath, f.GetExtension())
	if err := prepareOutput(outputPath); err != nil {
		return err
	}

	reader := ffmpegWrap.NewFrameReader(o.opts.Background, meta.Width, meta.Height)
	defer reader.Close()

	writer := ffmpegWrap.NewFrameWriter(outputPath, meta.Width, meta.Height, meta.FrameRate, f)
	if err := writer.Open(); err != nil {
		return err
	}

	lx, ly := Anchor(meta.Width, meta.Height, left.Width, left.Height, LeftHalf)
	rx, ry := Anchor(meta.Width, meta.Height, right.Width, right.Height, RightHalf)

	frames := 0
	for {
		ok, err := reader.Read()
		if err != nil {
			writer.Close()
			return err
		}
		if !ok {
			break
		}

		frame := reader.Buffer()
		Paste(frame, meta.Width, left.Pixels(), left.Width, left.Height, lx, ly)
		Paste(frame, meta.Width, right.Pixels(), right.Width, right.Height, rx, ry)
		BGRToRGB(frame)

		if err := writer.Write(frame); err != nil {
			writer.Close()
			return err
		}
		frames++
	}

	if err := writer.Close(); err != nil {
		return err
	}

	o.log.Infof("video processing complete, output saved as %q (%d frames)", outputPath, frames)
	return nil
}

// prepareOutput creates the output directory if missing and removes any
// stale file at the output path so the run never appends to old
// content. Both steps are no-ops when already satisfied.
func prepareOutput(outputPath string) error {
	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "failed to create output directory %q", dir)
		}
	}
	if _, err := os.Stat(outputPath); err == nil {
		if err := os.Remove(outputPath); err != nil {
			return errors.Wrapf(err, "failed to remove stale output %q", outputPath)
		}
	}
	return nil
}

// ensureExtension replaces any video extension on path with ext,
// matching extensions case-insensitively.
func ensureExtension(path, ext string) string {
	if strings.EqualFold(filepath.Ext(path), ext) {
		return path
	}
	extensions := []string{".mp4", ".webm", ".mkv", ".avi", ".mov"}
	lower := strings.ToLower(path)
	for _, e := range extensions {
		if strings.HasSuffix(lower, e) {
			path = path[:len(path)-len(e)]
			break
		}
	}
	return path + ext
}
