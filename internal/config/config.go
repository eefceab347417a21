package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// OverlayOptions defines options for a single logo overlay run
type OverlayOptions struct {
	Background   string // Background video path
	LeftLogo     string // Left logo image path
	RightLogo    string // Right logo image path
	OutputPath   string
	OutputFormat string // "mp4" or "webm"
	ScaleFactor  int    // Divisor for the logo bounding box
}

// BatchOptions defines options for running one overlay per partner logo
type BatchOptions struct {
	Background   string
	LeftLogo     string
	PartnersDir  string // Directory of candidate right-logo files
	OutputDir    string
	OutputFormat string
	ScaleFactor  int
}

const (
	// Defaults for the configuration surface
	DefaultOutputPath   = "output.mp4"
	DefaultOutputDir    = "output"
	DefaultOutputFormat = "mp4"
	DefaultScaleFactor  = 4

	// Environment variable names honored by the batch workflow
	EnvBackground  = "LOGO_OVERLAY_BACKGROUND"
	EnvLeftLogo    = "LOGO_OVERLAY_LEFT_LOGO"
	EnvPartnersDir = "LOGO_OVERLAY_PARTNERS_DIR"
	EnvOutputDir   = "LOGO_OVERLAY_OUTPUT_DIR"
	EnvScaleFactor = "LOGO_OVERLAY_SCALE_FACTOR"
)

// LoadEnv loads an optional .env file into the process environment. A
// missing file is not an error; explicit flags always win over the
// environment.
func LoadEnv() {
	_ = godotenv.Load()
}

// ApplyEnvDefaults fills unset batch options from the environment.
func (o *BatchOptions) ApplyEnvDefaults() {
	if o.Background == "" {
		o.Background = os.Getenv(EnvBackground)
	}
	if o.LeftLogo == "" {
		o.LeftLogo = os.Getenv(EnvLeftLogo)
	}
	if o.PartnersDir == "" {
		o.PartnersDir = os.Getenv(EnvPartnersDir)
	}
	if o.OutputDir == "" {
		o.OutputDir = envOr(EnvOutputDir, DefaultOutputDir)
	}
	if o.ScaleFactor == 0 {
		if n, err := strconv.Atoi(os.Getenv(EnvScaleFactor)); err == nil && n > 0 {
			o.ScaleFactor = n
		} else {
			o.ScaleFactor = DefaultScaleFactor
		}
	}
	if o.OutputFormat == "" {
		o.OutputFormat = DefaultOutputFormat
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
