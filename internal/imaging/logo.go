package imaging

import (
	"image"
	"math"
	"os"

	// Raster formats accepted for logo files.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"github.com/zkverse/logo-overlay/internal/errs"
)

// Depth is the number of bytes per pixel in packed frame and logo
// buffers (BGR, 8 bits per channel).
const Depth = 3

// Logo is a decoded and resized logo image, immutable after load. The
// pixel buffer is packed BGR matching the decoded frame layout; an
// alpha channel present in the source file is decoded but carried no
// further (overlays are hard overwrites, not blends).
type Logo struct {
	Path   string
	Width  int
	Height int
	pixels []byte // Width*Height*Depth, BGR row-major
}

// Pixels returns the packed BGR buffer backing the logo.
func (l *Logo) Pixels() []byte {
	return l.pixels
}

// Load decodes the image at path and resizes it to fit within a
// (frameWidth/scaleFactor) x (frameHeight/scaleFactor) bounding box,
// preserving aspect ratio. The resize always saturates one axis of the
// box exactly.
func Load(path string, frameWidth, frameHeight, scaleFactor int) (*Logo, error) {
	if scaleFactor <= 0 {
		return nil, errors.Errorf("scale factor must be positive, got %d", scaleFactor)
	}

	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(errs.ErrSourceNotFound, "logo image %q", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open logo image %q", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(errs.ErrDecodeFailed, "logo image %q: %v", path, err)
	}

	bounds := img.Bounds()
	width, height := FitBox(bounds.Dx(), bounds.Dy(), frameWidth/scaleFactor, frameHeight/scaleFactor)

	resized := resize.Resize(uint(width), uint(height), img, resize.Bilinear)

	return &Logo{
		Path:   path,
		Width:  width,
		Height: height,
		pixels: packBGR(resized),
	}, nil
}

// FitBox computes the largest dimensions with the source aspect ratio
// that fit inside boxWidth x boxHeight. Sources with a wider aspect
// than the box are width-bound, all others height-bound; the bound axis
// saturates and the derived axis never exceeds the box.
func FitBox(srcWidth, srcHeight, boxWidth, boxHeight int) (int, int) {
	ratio := float64(srcWidth) / float64(srcHeight)
	if ratio > float64(boxWidth)/float64(boxHeight) {
		return boxWidth, int(math.Round(float64(boxWidth) / ratio))
	}
	return int(math.Round(float64(boxHeight) * ratio)), boxHeight
}

// packBGR flattens an image into a BGR byte buffer, row-major.
func packBGR(img image.Image) []byte {
	bounds := img.Bounds()
	buf := make([]byte, bounds.Dx()*bounds.Dy()*Depth)
	off := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			buf[off+0] = byte(b >> 8)
			buf[off+1] = byte(g >> 8)
			buf[off+2] = byte(r >> 8)
			off += Depth
		}
	}
	return buf
}
