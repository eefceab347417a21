package config

import "testing"

func TestApplyEnvDefaultsFillsUnsetFields(t *testing.T) {
	t.Setenv(EnvBackground, "bg.mp4")
	t.Setenv(EnvLeftLogo, "left.png")
	t.Setenv(EnvPartnersDir, "partners")
	t.Setenv(EnvOutputDir, "renders")
	t.Setenv(EnvScaleFactor, "8")

	opts := &BatchOptions{}
	opts.ApplyEnvDefaults()

	if opts.Background != "bg.mp4" || opts.LeftLogo != "left.png" || opts.PartnersDir != "partners" {
		t.Errorf("env inputs not applied: %+v", opts)
	}
	if opts.OutputDir != "renders" {
		t.Errorf("output dir = %q, want renders", opts.OutputDir)
	}
	if opts.ScaleFactor != 8 {
		t.Errorf("scale factor = %d, want 8", opts.ScaleFactor)
	}
}

func TestApplyEnvDefaultsKeepsExplicitValues(t *testing.T) {
	t.Setenv(EnvBackground, "env.mp4")
	t.Setenv(EnvScaleFactor, "8")

	opts := &BatchOptions{
		Background:  "flag.mp4",
		ScaleFactor: 2,
	}
	opts.ApplyEnvDefaults()

	if opts.Background != "flag.mp4" {
		t.Errorf("background = %q, explicit value must win", opts.Background)
	}
	if opts.ScaleFactor != 2 {
		t.Errorf("scale factor = %d, explicit value must win", opts.ScaleFactor)
	}
}

func TestApplyEnvDefaultsFallsBackToBuiltins(t *testing.T) {
	t.Setenv(EnvScaleFactor, "not a number")
	t.Setenv(EnvOutputDir, "")

	opts := &BatchOptions{}
	opts.ApplyEnvDefaults()

	if opts.OutputDir != DefaultOutputDir {
		t.Errorf("output dir = %q, want %q", opts.OutputDir, DefaultOutputDir)
	}
	if opts.ScaleFactor != DefaultScaleFactor {
		t.Errorf("scale factor = %d, want %d", opts.ScaleFactor, DefaultScaleFactor)
	}
	if opts.OutputFormat != DefaultOutputFormat {
		t.Errorf("output format = %q, want %q", opts.OutputFormat, DefaultOutputFormat)
	}
}
