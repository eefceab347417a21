package ffmpeg

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
	"github.com/zkverse/logo-overlay/internal/errs"
)

// VideoMetadata contains metadata about a video file
type VideoMetadata struct {
	Width     int
	Height    int
	FPS       float64
	FrameRate string // rational frame rate as reported by ffprobe, e.g. "30000/1001"
	Duration  float64
	Frames    int // 0 when the container does not report a frame count
	Codec     string
}

// Probe reads geometry and frame rate from a video file. The probe is a
// one-shot subprocess; no handle stays open after it returns.
func Probe(inputPath string) (*VideoMetadata, error) {
	if _, err := os.Stat(inputPath); err != nil {
		return nil, errors.Wrapf(errs.ErrSourceNotFound, "video file %q", inputPath)
	}

	probe, err := ffmpeg.Probe(inputPath)
	if err != nil {
		return nil, errors.Wrapf(errs.ErrOpenFailed, "video file %q: %v", inputPath, err)
	}

	meta, err := parseProbe(probe)
	if err != nil {
		return nil, errors.Wrapf(errs.ErrOpenFailed, "video file %q: %v", inputPath, err)
	}
	return meta, nil
}

// parseProbe extracts video stream metadata from ffprobe JSON output.
func parseProbe(probe string) (*VideoMetadata, error) {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(probe), &data); err != nil {
		return nil, errors.WithStack(err)
	}

	streams, ok := data["streams"].([]interface{})
	if !ok || len(streams) == 0 {
		return nil, errors.New("no streams found in video")
	}

	var videoStream map[string]interface{}
	for _, stream := range streams {
		s := stream.(map[string]interface{})
		if s["codec_type"].(string) == "video" {
			videoStream = s
			break
		}
	}

	if videoStream == nil {
		return nil, errors.New("no video stream found")
	}

	meta := &VideoMetadata{}

	width, ok := videoStream["width"].(float64)
	if !ok {
		return nil, errors.New("video stream has no width")
	}
	height, ok := videoStream["height"].(float64)
	if !ok {
		return nil, errors.New("video stream has no height")
	}
	meta.Width = int(width)
	meta.Height = int(height)

	if codec, ok := videoStream["codec_name"].(string); ok {
		meta.Codec = codec
	}

	if rate, ok := videoStream["r_frame_rate"].(string); ok {
		if fps, valid := parseFrameRate(rate); valid {
			meta.FrameRate = rate
			meta.FPS = fps
		}
	}
	if meta.FPS == 0 {
		if rate, ok := videoStream["avg_frame_rate"].(string); ok {
			if fps, valid := parseFrameRate(rate); valid {
				meta.FrameRate = rate
				meta.FPS = fps
			}
		}
	}
	if meta.FPS == 0 {
		return nil, errors.New("could not determine video frame rate")
	}

	// Stream duration first, then container duration
	if durationStr, ok := videoStream["duration"].(string); ok {
		if d, err := strconv.ParseFloat(strings.TrimSpace(durationStr), 64); err == nil {
			meta.Duration = d
		}
	}
	if meta.Duration == 0 {
		if format, ok := data["format"].(map[string]interface{}); ok {
			if durationStr, ok := format["duration"].(string); ok {
				if d, err := strconv.ParseFloat(strings.TrimSpace(durationStr), 64); err == nil {
					meta.Duration = d
				}
			}
		}
	}

	if nbFrames, ok := videoStream["nb_frames"].(string); ok {
		if frames, err := strconv.Atoi(nbFrames); err == nil {
			meta.Frames = frames
		}
	}

	return meta, nil
}

// parseFrameRate converts an ffprobe rational like "30000/1001" to a
// float. Returns false for malformed or zero rates ("0/0" is how
// ffprobe reports streams with no rate).
func parseFrameRate(rate string) (float64, bool) {
	parts := strings.Split(rate, "/")
	if len(parts) != 2 {
		return 0, false
	}
	num, err1 := strconv.ParseFloat(parts[0], 64)
	den, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil || den == 0 || num == 0 {
		return 0, false
	}
	return num / den, true
}
