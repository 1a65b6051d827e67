package config

import (
	"os"
	"path/filepath"
	"testing"

	"shipwaste/core/types"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Estimation.MarkupFactor != 0.78 {
		t.Errorf("markup factor default: got %v", cfg.Estimation.MarkupFactor)
	}
	if cfg.Estimation.PackagingFraction != 0.20 {
		t.Errorf("packaging fraction default: got %v", cfg.Estimation.PackagingFraction)
	}
	if len(cfg.Estimation.CategoryFractions) != len(types.Categories) {
		t.Errorf("expected a fraction for every category")
	}
	if len(cfg.Geo.ZoneBoundaries) != 7 {
		t.Errorf("expected 7 zone boundaries, got %d", len(cfg.Geo.ZoneBoundaries))
	}
}

func TestValidateRejectsBrokenValues(t *testing.T) {
	cfg := Default()
	cfg.Estimation.MarkupFactor = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero markup factor")
	}

	cfg = Default()
	cfg.Estimation.PackagingFraction = 1.5
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for fraction above 1")
	}

	cfg = Default()
	cfg.Estimation.CategoryFractions[types.Category("gadgets")] = 0.1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown category")
	}

	cfg = Default()
	cfg.Geo.ZoneBoundaries[2].UpperMiles = 10 // not increasing
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for non-increasing boundaries")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Estimation.MarkupFactor != 0.78 {
		t.Errorf("expected defaults, got markup %v", cfg.Estimation.MarkupFactor)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shipwaste.yaml")
	data := "estimation:\n  markup_factor: 0.9\nserver:\n  addr: \":9999\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Estimation.MarkupFactor != 0.9 {
		t.Errorf("markup factor: got %v, want 0.9", cfg.Estimation.MarkupFactor)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("server addr: got %s", cfg.Server.Addr)
	}
	// untouched values keep their defaults
	if cfg.Estimation.PackagingFraction != 0.20 {
		t.Errorf("packaging fraction should keep its default, got %v", cfg.Estimation.PackagingFraction)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shipwaste.yaml")
	if err := os.WriteFile(path, []byte("estimation:\n  markup_factor: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected validation error")
	}
}

func TestBoundariesConversion(t *testing.T) {
	cfg := Default()
	bs := cfg.Geo.Boundaries()
	if len(bs) != 7 {
		t.Fatalf("got %d boundaries", len(bs))
	}
	if bs[0].UpperMiles != 50 || bs[0].Zone != 1 {
		t.Errorf("first boundary: %+v", bs[0])
	}
}
