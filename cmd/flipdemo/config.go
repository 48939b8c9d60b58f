package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bistellar/builder"
)

// Fixture names accepted by --fixture.
const (
	fixtureCanonical = "canonical"
	fixtureAxial     = "axial"
)

// demoConfig is the full set of driver settings. Values come from the
// defaults, then the YAML file named by --config, then explicit flags.
type demoConfig struct {
	// Fixture selects the starting triangulation: "canonical" or "axial".
	Fixture string `yaml:"fixture"`

	// Sides is the ring size of the axial bipyramid. Only 4 yields a pivot edge.
	Sides int `yaml:"sides"`

	// Scale multiplies every fixture coordinate.
	Scale float64 `yaml:"scale"`

	// RoundTrip flips the new edge back and compares the result.
	RoundTrip bool `yaml:"roundtrip"`

	// GlobalCheck runs the whole-triangulation self-check after each flip.
	GlobalCheck bool `yaml:"global_check"`
}

func defaultConfig() demoConfig {
	return demoConfig{
		Fixture: fixtureCanonical,
		Sides:   builder.PivotDegree,
		Scale:   builder.DefaultScale,
	}
}

// loadConfig reads path into cfg. Keys absent from the file keep the values
// cfg already holds.
func loadConfig(path string, cfg *demoConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config")
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}

	return nil
}

func (c demoConfig) validate() error {
	switch c.Fixture {
	case fixtureCanonical, fixtureAxial:
	default:
		return errors.Wrapf(errBadConfig, "unknown fixture %q", c.Fixture)
	}
	if c.Fixture == fixtureAxial && c.Sides < builder.MinBipyramidSides {
		return errors.Wrapf(errBadConfig, "sides must be at least %d, got %d", builder.MinBipyramidSides, c.Sides)
	}
	if !(c.Scale > 0) {
		return errors.Wrapf(errBadConfig, "scale must be positive, got %v", c.Scale)
	}

	return nil
}
