package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zkverse/logo-overlay/internal/config"
	"github.com/zkverse/logo-overlay/internal/format"
	"github.com/zkverse/logo-overlay/pkg/videooverlay"
)

var (
	rootCmd = &cobra.Command{
		Use:   "logo-overlay",
		Short: "Overlay partner logos onto a background video",
		Long: `logo-overlay composites two static logo images onto every frame of a
background video and writes the result to a new video file.

Examples:
  # Overlay two logos onto a background video
  logo-overlay overlay -b background.mp4 -l zkverse.png -r partner.png -o out.mp4

  # Run one overlay per logo in a partners directory
  logo-overlay batch -b background.mp4 -l zkverse.png -p ./partners -o ./output`,
	}

	overlayCmd = &cobra.Command{
		Use:   "overlay",
		Short: "Overlay two logos onto a background video",
		Long: fmt.Sprintf(`Composite a left and a right logo onto every frame of a background video.
Each logo is resized to fit within a (width/scale-factor) x (height/scale-factor)
box and centered in its half of the frame.

Supported output formats: %s

Example:
  logo-overlay overlay -b background.mp4 -l zkverse.png -r partner.png -s 4`,
			strings.Join(format.GetSupportedFormats(), ", ")),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &videooverlay.OverlayOptions{}

			opts.Background, _ = cmd.Flags().GetString("background")
			opts.LeftLogo, _ = cmd.Flags().GetString("left-logo")
			opts.RightLogo, _ = cmd.Flags().GetString("right-logo")
			opts.OutputPath, _ = cmd.Flags().GetString("output")
			opts.OutputFormat, _ = cmd.Flags().GetString("format")
			opts.ScaleFactor, _ = cmd.Flags().GetInt("scale-factor")
			verbose, _ := cmd.Flags().GetBool("verbose")

			if opts.Background == "" || opts.LeftLogo == "" || opts.RightLogo == "" {
				return fmt.Errorf("background, left logo, and right logo are required")
			}
			if opts.ScaleFactor <= 0 {
				return fmt.Errorf("scale factor must be a positive integer")
			}

			opts.Logger = newLogger(verbose)
			return videooverlay.Overlay(opts)
		},
	}

	batchCmd = &cobra.Command{
		Use:   "batch",
		Short: "Run one overlay per logo in a partners directory",
		Long: `Enumerate a directory of partner logos and run one overlay per regular
file, all against the same background video and left logo. Output names
are derived from the partner file names. A failed job is logged and the
batch continues.

Unset flags fall back to LOGO_OVERLAY_* environment variables, loaded
from an optional .env file.

Example:
  logo-overlay batch -b background.mp4 -l zkverse.png -p ./partners -o ./output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &videooverlay.BatchOptions{}

			opts.Background, _ = cmd.Flags().GetString("background")
			opts.LeftLogo, _ = cmd.Flags().GetString("left-logo")
			opts.PartnersDir, _ = cmd.Flags().GetString("partners-dir")
			opts.OutputDir, _ = cmd.Flags().GetString("output-dir")
			opts.OutputFormat, _ = cmd.Flags().GetString("format")
			opts.ScaleFactor, _ = cmd.Flags().GetInt("scale-factor")
			verbose, _ := cmd.Flags().GetBool("verbose")

			config.LoadEnv()
			cfg := config.BatchOptions{
				Background:  opts.Background,
				LeftLogo:    opts.LeftLogo,
				PartnersDir: opts.PartnersDir,
				OutputDir:   opts.OutputDir,
				ScaleFactor: opts.ScaleFactor,
			}
			cfg.ApplyEnvDefaults()
			opts.Background = cfg.Background
			opts.LeftLogo = cfg.LeftLogo
			opts.PartnersDir = cfg.PartnersDir
			opts.OutputDir = cfg.OutputDir
			opts.ScaleFactor = cfg.ScaleFactor

			if opts.Background == "" || opts.LeftLogo == "" || opts.PartnersDir == "" {
				return fmt.Errorf("background, left logo, and partners directory are required")
			}

			opts.Logger = newLogger(verbose)
			summary, err := videooverlay.Batch(opts)
			if err != nil {
				return err
			}
			if summary.Failed > 0 {
				return fmt.Errorf("%d of %d jobs failed", summary.Failed, summary.Completed+summary.Failed)
			}
			return nil
		},
	}
)

func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func init() {
	// Overlay command flags
	overlayCmd.Flags().StringP("background", "b", "", "Background video file")
	overlayCmd.Flags().StringP("left-logo", "l", "", "Left logo image file")
	overlayCmd.Flags().StringP("right-logo", "r", "", "Right logo image file")
	overlayCmd.Flags().StringP("output", "o", config.DefaultOutputPath, "Output video path")
	overlayCmd.Flags().StringP("format", "f", config.DefaultOutputFormat,
		fmt.Sprintf("Output format (%s)", strings.Join(format.GetSupportedFormats(), ", ")))
	overlayCmd.Flags().IntP("scale-factor", "s", config.DefaultScaleFactor,
		"Divisor for the logo bounding box (logo fits within width/N x height/N)")
	overlayCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")

	overlayCmd.MarkFlagRequired("background")
	overlayCmd.MarkFlagRequired("left-logo")
	overlayCmd.MarkFlagRequired("right-logo")

	// Batch command flags
	batchCmd.Flags().StringP("background", "b", "", "Background video file")
	batchCmd.Flags().StringP("left-logo", "l", "", "Left logo image file")
	batchCmd.Flags().StringP("partners-dir", "p", "", "Directory of partner logo files")
	batchCmd.Flags().StringP("output-dir", "o", "", "Output directory")
	batchCmd.Flags().StringP("format", "f", config.DefaultOutputFormat,
		fmt.Sprintf("Output format (%s)", strings.Join(format.GetSupportedFormats(), ", ")))
	batchCmd.Flags().IntP("scale-factor", "s", 0, "Divisor for the logo bounding box")
	batchCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(overlayCmd)
	rootCmd.AddCommand(batchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
