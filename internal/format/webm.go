package format

import (
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

type WebM struct{}

func init() {
	Register(&WebM{})
}

func (f *WebM) GetName() string {
	return "webm"
}

func (f *WebM) GetExtension() string {
	return ".webm"
}

func (f *WebM) GetVideoCodec() string {
	return "libvpx-vp9"
}

func (f *WebM) GetEncoderArgs(frameRate string) ffmpeg.KwArgs {
	return ffmpeg.KwArgs{
		"c:v":      f.GetVideoCodec(),
		"pix_fmt":  "yuv420p",
		"deadline": "good",
		"cpu-used": 2,
		"row-mt":   1,
		"r":        frameRate,
	}
}
