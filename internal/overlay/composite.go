package overlay

import (
	"github.com/zkverse/logo-overlay/internal/imaging"
)

// Half selects which half of the frame a logo is centered in.
type Half int

const (
	LeftHalf Half = iota
	RightHalf
)

// Anchor computes the top-left corner that centers a logo in the given
// half of the frame, floor division matching the source pixel grid. The
// result is clamped into the frame so the paste never leaves the
// canvas, which matters only at scale factor 1.
func Anchor(frameWidth, frameHeight, logoWidth, logoHeight int, half Half) (int, int) {
	var x int
	switch half {
	case LeftHalf:
		x = frameWidth/4 - logoWidth/2
	case RightHalf:
		x = frameWidth*3/4 - logoWidth/2
	}
	y := frameHeight/2 - logoHeight/2

	x = clamp(x, 0, frameWidth-logoWidth)
	y = clamp(y, 0, frameHeight-logoHeight)
	return x, y
}

// Paste overwrites the srcWidth x srcHeight rectangle at (x, y) in the
// frame with src pixels. Hard overwrite: a transparency channel in the
// source logo is not blended. The frame keeps its dimensions; only
// interior pixels change. A rectangle that would leave the canvas is
// clipped to the intersection, so the copy can never index past the
// frame buffer.
func Paste(frame []byte, frameWidth int, src []byte, srcWidth, srcHeight, x, y int) {
	if x < 0 || y < 0 {
		return
	}
	frameHeight := len(frame) / (frameWidth * imaging.Depth)
	width, height := srcWidth, srcHeight
	if x+width > frameWidth {
		width = frameWidth - x
	}
	if y+height > frameHeight {
		height = frameHeight - y
	}
	if width <= 0 || height <= 0 {
		return
	}
	srcRowBytes := srcWidth * imaging.Depth
	rowBytes := width * imaging.Depth
	for row := 0; row < height; row++ {
		dst := ((y+row)*frameWidth + x) * imaging.Depth
		copy(frame[dst:dst+rowBytes], src[row*srcRowBytes:row*srcRowBytes+rowBytes])
	}
}

// BGRToRGB converts a packed BGR buffer to RGB in place, the channel
// order the encoder consumes.
func BGRToRGB(buf []byte) {
	for i := 0; i+2 < len(buf); i += imaging.Depth {
		buf[i], buf[i+2] = buf[i+2], buf[i]
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
