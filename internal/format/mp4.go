package format

import (
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

type MP4 struct{}

func init() {
	Register(&MP4{})
}

func (f *MP4) GetName() string {
	return "mp4"
}

func (f *MP4) GetExtension() string {
	return ".mp4"
}

func (f *MP4) GetVideoCodec() string {
	return "libx264"
}

func (f *MP4) GetEncoderArgs(frameRate string) ffmpeg.KwArgs {
	return ffmpeg.KwArgs{
		"c:v":      f.GetVideoCodec(),
		"pix_fmt":  "yuv420p",
		"preset":   "medium",
		"movflags": "+faststart",
		"r":        frameRate,
	}
}
