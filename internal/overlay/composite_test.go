package overlay

import (
	"bytes"
	"testing"

	"github.com/zkverse/logo-overlay/internal/imaging"
)

func TestAnchorCentersLogosAtFrameQuarters(t *testing.T) {
	// 1920x1080 frame, 480x270 logo: quarters at x=480 and x=1440.
	x, y := Anchor(1920, 1080, 480, 270, LeftHalf)
	if x != 240 || y != 405 {
		t.Errorf("left anchor = (%d, %d), want (240, 405)", x, y)
	}

	x, y = Anchor(1920, 1080, 480, 270, RightHalf)
	if x != 1200 || y != 405 {
		t.Errorf("right anchor = (%d, %d), want (1200, 405)", x, y)
	}
}

func TestAnchorUsesFloorDivision(t *testing.T) {
	// Odd dimensions exercise the integer division on every term.
	x, y := Anchor(1921, 1081, 479, 269, LeftHalf)
	if x != 1921/4-479/2 || y != 1081/2-269/2 {
		t.Errorf("anchor = (%d, %d), want (%d, %d)", x, y, 1921/4-479/2, 1081/2-269/2)
	}
}

func TestAnchorClampsToFrame(t *testing.T) {
	// A logo as large as the frame would otherwise anchor at x < 0.
	x, y := Anchor(100, 100, 100, 100, LeftHalf)
	if x != 0 || y != 0 {
		t.Errorf("anchor = (%d, %d), want (0, 0)", x, y)
	}

	x, _ = Anchor(100, 100, 100, 100, RightHalf)
	if x != 0 {
		t.Errorf("right anchor x = %d, want 0", x)
	}
}

func TestPasteOverwritesRectangle(t *testing.T) {
	const frameW, frameH = 8, 8
	frame := make([]byte, frameW*frameH*imaging.Depth)

	const logoW, logoH = 2, 2
	logo := bytes.Repeat([]byte{1, 2, 3}, logoW*logoH)

	Paste(frame, frameW, logo, logoW, logoH, 3, 4)

	for row := 0; row < logoH; row++ {
		for col := 0; col < logoW; col++ {
			off := ((4+row)*frameW + 3 + col) * imaging.Depth
			if frame[off] != 1 || frame[off+1] != 2 || frame[off+2] != 3 {
				t.Fatalf("pixel (%d, %d) = [%d %d %d], want [1 2 3]",
					3+col, 4+row, frame[off], frame[off+1], frame[off+2])
			}
		}
	}
}

func TestPastePreservesCanvas(t *testing.T) {
	const frameW, frameH = 6, 6
	frame := make([]byte, frameW*frameH*imaging.Depth)
	for i := range frame {
		frame[i] = 9
	}

	logo := bytes.Repeat([]byte{1, 1, 1}, 4)
	Paste(frame, frameW, logo, 2, 2, 1, 1)

	if len(frame) != frameW*frameH*imaging.Depth {
		t.Fatalf("frame length changed to %d", len(frame))
	}
	// Pixels outside the 2x2 rectangle at (1, 1) stay untouched.
	for y := 0; y < frameH; y++ {
		for x := 0; x < frameW; x++ {
			inside := x >= 1 && x < 3 && y >= 1 && y < 3
			off := (y*frameW + x) * imaging.Depth
			if !inside && frame[off] != 9 {
				t.Fatalf("pixel (%d, %d) outside paste rectangle was modified", x, y)
			}
		}
	}
}

func TestPasteClipsRectangleToCanvas(t *testing.T) {
	const frameW, frameH = 4, 4
	frame := make([]byte, frameW*frameH*imaging.Depth)

	// A 3x3 rectangle at (2, 2) leaves the 4x4 canvas on both axes;
	// only the 2x2 intersection may be painted.
	const logoW, logoH = 3, 3
	logo := bytes.Repeat([]byte{7, 7, 7}, logoW*logoH)
	Paste(frame, frameW, logo, logoW, logoH, 2, 2)

	for y := 0; y < frameH; y++ {
		for x := 0; x < frameW; x++ {
			inside := x >= 2 && y >= 2
			off := (y*frameW + x) * imaging.Depth
			if inside && frame[off] != 7 {
				t.Errorf("pixel (%d, %d) inside intersection not painted", x, y)
			}
			if !inside && frame[off] != 0 {
				t.Errorf("pixel (%d, %d) outside intersection was painted", x, y)
			}
		}
	}

	// Fully outside, and negative origins: both are no-ops.
	before := append([]byte(nil), frame...)
	Paste(frame, frameW, logo, logoW, logoH, 4, 4)
	Paste(frame, frameW, logo, logoW, logoH, -1, 0)
	if !bytes.Equal(frame, before) {
		t.Error("out-of-canvas paste modified the frame")
	}
}

func TestBGRToRGB(t *testing.T) {
	buf := []byte{10, 20, 30, 40, 50, 60}
	BGRToRGB(buf)
	want := []byte{30, 20, 10, 60, 50, 40}
	if !bytes.Equal(buf, want) {
		t.Errorf("got %v, want %v", buf, want)
	}
}
