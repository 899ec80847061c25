package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config should validate, got: %v", err)
	}
}

func TestValidateRejectsMismatchedLengths(t *testing.T) {
	cfg := Default()
	cfg.Amplitudes = cfg.Amplitudes[:len(cfg.Amplitudes)-1]
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for mismatched periods/amplitudes lengths")
	}
}

func TestValidateRejectsEmptyPeriods(t *testing.T) {
	cfg := Default()
	cfg.Periods = nil
	cfg.Amplitudes = nil
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty periods")
	}
}

func TestValidateRejectsNonPositiveDimensions(t *testing.T) {
	cfg := Default()
	cfg.PixelWidth = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero pixel width")
	}
}

func TestWriteThenLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.toml")

	want := Default()
	want.Seed = 99
	if err := Write(path, want); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Seed != want.Seed {
		t.Errorf("Seed = %d, want %d", got.Seed, want.Seed)
	}
	if len(got.Periods) != len(want.Periods) {
		t.Errorf("Periods length = %d, want %d", len(got.Periods), len(want.Periods))
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist.toml")
	_, err := Load(missing)
	if err == nil {
		t.Fatal("expected error loading a missing config file")
	}
	if _, statErr := os.Stat(missing); statErr == nil {
		t.Fatal("Load must not create a file as a side effect")
	}
}
