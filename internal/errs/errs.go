package errs

import "github.com/pkg/errors"

// Error kinds shared by the probing, logo loading, and encoding stages.
// Callers match them with errors.Is; the wrapped message carries the
// offending path.
var (
	// ErrSourceNotFound indicates a background video or logo path that
	// does not exist on disk.
	ErrSourceNotFound = errors.New("source not found")

	// ErrDecodeFailed indicates a file that exists but cannot be decoded
	// as an image.
	ErrDecodeFailed = errors.New("decode failed")

	// ErrOpenFailed indicates a video file that exists but whose stream
	// cannot be initialized.
	ErrOpenFailed = errors.New("cannot open")
)
