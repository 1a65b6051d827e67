// Package config provides configuration management.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"shipwaste/core/geo"
	"shipwaste/core/types"
	errs "shipwaste/internal/errors"
	"shipwaste/internal/logging"
)

func errInvalid(msg string) error {
	return errs.Config(msg)
}

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `yaml:"version"`

	// Estimation contains the estimation model constants
	Estimation EstimationConfig `yaml:"estimation"`

	// Geo contains geocoding configuration
	Geo GeoConfig `yaml:"geo"`

	// Server contains HTTP server configuration
	Server ServerConfig `yaml:"server"`

	// Logging contains logging configuration
	Logging logging.Config `yaml:"logging"`
}

// EstimationConfig contains the model constants of the waste estimator.
type EstimationConfig struct {
	// MarkupFactor is the fraction of carrier cost passed through as the
	// customer-visible shipping charge. Charged price is divided by it to
	// recover the carrier cost basis.
	MarkupFactor float64 `yaml:"markup_factor"`

	// PackagingFraction is the flat share of shipped weight attributed to
	// packaging material, used when no business category is selected
	PackagingFraction float64 `yaml:"packaging_fraction"`

	// CategoryFractions overrides PackagingFraction per business category
	CategoryFractions map[types.Category]float64 `yaml:"category_fractions"`
}

// GeoConfig contains geocoding configuration
type GeoConfig struct {
	// GazetteerPath is the path to the GeoNames-format postal code dataset
	GazetteerPath string `yaml:"gazetteer_path"`

	// ZoneBoundaries is the ordered distance->zone boundary table. Each
	// entry is the inclusive upper bound in miles for its zone; anything
	// beyond the last bound falls into the catch-all zone 8.
	ZoneBoundaries []ZoneBoundary `yaml:"zone_boundaries"`
}

// ZoneBoundary is one row of the distance->zone mapping.
type ZoneBoundary struct {
	// UpperMiles is the inclusive upper bound of the bracket
	UpperMiles float64 `yaml:"upper_miles"`

	// Zone is the carrier zone assigned to the bracket
	Zone int `yaml:"zone"`
}

// Boundaries converts the configured boundary table into the classifier's
// form. An empty table selects the classifier defaults.
func (g GeoConfig) Boundaries() []geo.Boundary {
	out := make([]geo.Boundary, 0, len(g.ZoneBoundaries))
	for _, b := range g.ZoneBoundaries {
		out = append(out, geo.Boundary{UpperMiles: b.UpperMiles, Zone: b.Zone})
	}
	return out
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `yaml:"addr"`

	// MaxBatchSize caps the number of orders accepted per request
	MaxBatchSize int `yaml:"max_batch_size"`
}

// DefaultCategoryFractions are the packaging weight fraction defaults by
// business category (fraction of shipped weight).
func DefaultCategoryFractions() map[types.Category]float64 {
	return map[types.Category]float64{
		types.CategoryJewelry:    0.20, // small item + protective mailer/paper
		types.CategoryClothing:   0.08, // poly/paper mailer + minimal inner wrap
		types.CategoryHomeLiving: 0.05, // larger items; packaging is a smaller share
		types.CategoryArtPrints:  0.15, // rigid mailers/tubes + flat protection
		types.CategoryBags:       0.10,
		types.CategoryBathBeauty: 0.12, // jars/tins/inner wraps can add weight
		types.CategoryToys:       0.09,
		types.CategoryBooksMedia: 0.07, // rigid mailer/box, modest padding
		types.CategoryFood:       0.12, // food-safe inner + cushioning
		types.CategoryStationery: 0.19,
	}
}

// DefaultZoneBoundaries returns the USPS distance bracket table.
func DefaultZoneBoundaries() []ZoneBoundary {
	return []ZoneBoundary{
		{UpperMiles: 50, Zone: 1},
		{UpperMiles: 150, Zone: 2},
		{UpperMiles: 300, Zone: 3},
		{UpperMiles: 600, Zone: 4},
		{UpperMiles: 1000, Zone: 5},
		{UpperMiles: 1400, Zone: 6},
		{UpperMiles: 1800, Zone: 7},
	}
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Estimation: EstimationConfig{
			MarkupFactor:      0.78,
			PackagingFraction: 0.20,
			CategoryFractions: DefaultCategoryFractions(),
		},
		Geo: GeoConfig{
			GazetteerPath:  "data/US.txt",
			ZoneBoundaries: DefaultZoneBoundaries(),
		},
		Server: ServerConfig{
			Addr:         ":8080",
			MaxBatchSize: 50000,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Validate checks the configuration for structurally broken values.
func (c *Config) Validate() error {
	if c.Estimation.MarkupFactor <= 0 {
		return errInvalid("estimation.markup_factor must be positive")
	}
	if c.Estimation.PackagingFraction <= 0 || c.Estimation.PackagingFraction > 1 {
		return errInvalid("estimation.packaging_fraction must be in (0, 1]")
	}
	for cat, frac := range c.Estimation.CategoryFractions {
		if !cat.Valid() {
			return errInvalid("unknown category: " + cat.String())
		}
		if frac <= 0 || frac > 1 {
			return errInvalid("category fraction out of range for " + cat.String())
		}
	}
	last := 0.0
	for _, b := range c.Geo.ZoneBoundaries {
		if b.UpperMiles <= last {
			return errInvalid("geo.zone_boundaries must be strictly increasing")
		}
		if b.Zone < types.MinZone || b.Zone > types.MaxZone {
			return errInvalid("geo.zone_boundaries zone out of range")
		}
		last = b.UpperMiles
	}
	return nil
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
