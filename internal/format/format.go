package format

import (
	"fmt"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Format defines the interface for container-specific encoder settings
type Format interface {
	// GetName returns the format name used on the command line
	GetName() string

	// GetExtension returns the output file extension including the dot
	GetExtension() string

	// GetVideoCodec returns the encoder codec
	GetVideoCodec() string

	// GetEncoderArgs returns the full ffmpeg output arguments for the
	// given frame rate
	GetEncoderArgs(frameRate string) ffmpeg.KwArgs
}

var formats = make(map[string]Format)

// Register adds a format to the registry
func Register(f Format) {
	formats[f.GetName()] = f
}

// Get returns a format by name
func Get(name string) (Format, error) {
	f, ok := formats[name]
	if !ok {
		return nil, fmt.Errorf("unsupported output format: %s (supported: %v)", name, GetSupportedFormats())
	}
	return f, nil
}

// GetSupportedFormats returns a list of supported format names
func GetSupportedFormats() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	return names
}
