package overlay

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/zkverse/logo-overlay/internal/config"
	"github.com/zkverse/logo-overlay/internal/errs"
	ffmpegWrap "github.com/zkverse/logo-overlay/internal/ffmpeg"
)

func writeTestPNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestPrepareOutputCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.mp4")
	if err := prepareOutput(path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("parent directory was not created: %v", err)
	}
}

func TestPrepareOutputRemovesStaleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.mp4")
	if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := prepareOutput(path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("stale output file still present")
	}

	// Nothing to remove on a second call; still not an error.
	if err := prepareOutput(path); err != nil {
		t.Fatal(err)
	}
}

func TestEnsureExtension(t *testing.T) {
	tests := []struct {
		path, ext, want string
	}{
		{"out", ".mp4", "out.mp4"},
		{"out.mp4", ".mp4", "out.mp4"},
		{"out.webm", ".mp4", "out.mp4"},
		{"out.mp4", ".webm", "out.webm"},
		{"dir/out.mov", ".mp4", "dir/out.mp4"},
		{"out.MOV", ".mp4", "out.mp4"},
		{"out.MP4", ".mp4", "out.MP4"},
		{"out.WEBM", ".webm", "out.WEBM"},
	}
	for _, tt := range tests {
		if got := ensureExtension(tt.path, tt.ext); got != tt.want {
			t.Errorf("ensureExtension(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
		}
	}
}

func TestProcessMissingBackground(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "out.mp4")

	o := New(&config.OverlayOptions{
		Background:  filepath.Join(dir, "missing.mp4"),
		LeftLogo:    filepath.Join(dir, "left.png"),
		RightLogo:   filepath.Join(dir, "right.png"),
		OutputPath:  outputPath,
		ScaleFactor: 4,
	}, nil)

	err := o.Process()
	if !errors.Is(err, errs.ErrSourceNotFound) {
		t.Fatalf("got %v, want ErrSourceNotFound", err)
	}
	if _, err := os.Stat(outputPath); !os.IsNotExist(err) {
		t.Errorf("output file was created despite missing background")
	}
}

func TestProcessMissingLogo(t *testing.T) {
	dir := t.TempDir()
	leftLogo := filepath.Join(dir, "left.png")
	writeTestPNG(t, leftLogo)
	outputPath := filepath.Join(dir, "out.mp4")

	o := New(&config.OverlayOptions{
		Background:  filepath.Join(dir, "background.mp4"),
		LeftLogo:    leftLogo,
		RightLogo:   filepath.Join(dir, "missing.png"),
		OutputPath:  outputPath,
		ScaleFactor: 4,
	}, nil)
	o.probe = func(string) (*ffmpegWrap.VideoMetadata, error) {
		return &ffmpegWrap.VideoMetadata{Width: 640, Height: 480, FPS: 25, FrameRate: "25/1"}, nil
	}

	err := o.Process()
	if !errors.Is(err, errs.ErrSourceNotFound) {
		t.Fatalf("got %v, want ErrSourceNotFound", err)
	}
	if _, err := os.Stat(outputPath); !os.IsNotExist(err) {
		t.Errorf("output file was created despite missing right logo")
	}
}
