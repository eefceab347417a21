package ffmpeg

import (
	"io"
	"os/exec"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
	"github.com/zkverse/logo-overlay/internal/imaging"
)

type readerState int

const (
	readerInit readerState = iota
	readerStreaming
	readerDone
)

// FrameReader decodes a video into raw BGR frames, one at a time. A
// single reusable buffer holds the current frame; callers must consume
// it before the next Read.
type FrameReader struct {
	inputPath string
	width     int
	height    int
	buf       []byte
	pipe      io.ReadCloser
	cmd       *exec.Cmd
	state     readerState
}

// NewFrameReader creates a reader for the video at inputPath with the
// probed geometry. The decoder process starts on the first Read.
func NewFrameReader(inputPath string, width, height int) *FrameReader {
	return &FrameReader{
		inputPath: inputPath,
		width:     width,
		height:    height,
	}
}

func (r *FrameReader) start() error {
	cmd := ffmpeg.Input(r.inputPath).
		Output("pipe:", ffmpeg.KwArgs{
			"format":  "rawvideo",
			"vcodec":  "rawvideo",
			"pix_fmt": "bgr24",
		}).
		GlobalArgs("-loglevel", "error").
		Compile()

	pipe, err := cmd.StdoutPipe()
	if err != nil {
		return errors.Wrap(err, "failed to open decoder pipe")
	}
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "failed to start decoder for %q", r.inputPath)
	}

	r.cmd = cmd
	r.pipe = pipe
	r.buf = make([]byte, r.width*r.height*imaging.Depth)
	r.state = readerStreaming
	return nil
}

// Read fills the frame buffer with the next frame. Returns false once
// the source is exhausted; end of stream is not an error.
func (r *FrameReader) Read() (bool, error) {
	switch r.state {
	case readerInit:
		if err := r.start(); err != nil {
			r.state = readerDone
			return false, err
		}
	case readerDone:
		return false, nil
	}

	total := 0
	for total < len(r.buf) {
		n, err := r.pipe.Read(r.buf[total:])
		total += n
		if total == len(r.buf) {
			break
		}
		if err == io.EOF {
			// A trailing partial frame is discarded with the stream.
			r.Close()
			return false, nil
		}
		if err != nil {
			r.Close()
			return false, errors.Wrapf(err, "failed to read frame from %q", r.inputPath)
		}
	}
	return true, nil
}

// Buffer returns the current frame's pixel buffer. Valid only after a
// successful Read and until the next one.
func (r *FrameReader) Buffer() []byte {
	return r.buf
}

// Close stops the decoder process. Safe to call more than once.
func (r *FrameReader) Close() {
	if r.state == readerDone {
		return
	}
	r.state = readerDone
	if r.pipe != nil {
		r.pipe.Close()
	}
	if r.cmd != nil {
		r.cmd.Wait()
	}
}
