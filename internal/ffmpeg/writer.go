package ffmpeg

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
	"github.com/zkverse/logo-overlay/internal/format"
)

// FrameWriter encodes raw RGB frames into a video file at a fixed frame
// rate. Frames are appended strictly in the order written.
type FrameWriter struct {
	outputPath string
	width      int
	height     int
	frameRate  string
	format     format.Format
	pipe       io.WriteCloser
	cmd        *exec.Cmd
}

// NewFrameWriter creates a writer for outputPath. frameRate is the
// rational rate from the probed source, e.g. "30000/1001".
func NewFrameWriter(outputPath string, width, height int, frameRate string, f format.Format) *FrameWriter {
	return &FrameWriter{
		outputPath: outputPath,
		width:      width,
		height:     height,
		frameRate:  frameRate,
		format:     f,
	}
}

// Open starts the encoder process. It is called before the first frame
// so a zero-frame source still produces a finalized output file.
func (w *FrameWriter) Open() error {
	cmd := ffmpeg.Input("pipe:", ffmpeg.KwArgs{
		"format":    "rawvideo",
		"pix_fmt":   "rgb24",
		"s":         fmt.Sprintf("%dx%d", w.width, w.height),
		"framerate": w.frameRate,
	}).
		Output(w.outputPath, w.format.GetEncoderArgs(w.frameRate)).
		OverWriteOutput().
		GlobalArgs("-loglevel", "error").
		Compile()

	pipe, err := cmd.StdinPipe()
	if err != nil {
		return errors.Wrap(err, "failed to open encoder pipe")
	}
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "failed to start encoder for %q", w.outputPath)
	}

	w.cmd = cmd
	w.pipe = pipe
	return nil
}

// Write appends one raw RGB frame to the output stream.
func (w *FrameWriter) Write(frame []byte) error {
	if w.pipe == nil {
		return errors.New("writer is not open")
	}
	total := 0
	for total < len(frame) {
		n, err := w.pipe.Write(frame[total:])
		if err != nil {
			return errors.Wrapf(err, "failed to write frame to %q", w.outputPath)
		}
		total += n
	}
	return nil
}

// Close flushes pending frames and finalizes the output file.
func (w *FrameWriter) Close() error {
	if w.pipe != nil {
		w.pipe.Close()
		w.pipe = nil
	}
	if w.cmd != nil {
		if err := w.cmd.Wait(); err != nil {
			return errors.Wrapf(err, "encoder failed for %q", w.outputPath)
		}
		w.cmd = nil
	}
	return nil
}
