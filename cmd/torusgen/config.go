package main

import (
	"fmt"
	"math"
	"os"

	"github.com/quadric/torus"
	"gopkg.in/yaml.v3"
)

// Radii interpretation modes.
const (
	ModeMajorMinor = "major_minor"
	ModeExtInt     = "ext_int"
)

// Config is the full torusgen configuration. Values load with priority
// defaults < YAML file < flags.
type Config struct {
	// Mode selects which radii pair drives generation: major_minor uses
	// MajorRadius/MinorRadius directly, ext_int derives them from
	// ExteriorRadius/InteriorRadius.
	Mode string `yaml:"mode"`

	MajorRadius    float64 `yaml:"major_radius"`
	MinorRadius    float64 `yaml:"minor_radius"`
	ExteriorRadius float64 `yaml:"exterior_radius"`
	InteriorRadius float64 `yaml:"interior_radius"`

	MajorSegments   int     `yaml:"major_segments"`
	MinorSegments   int     `yaml:"minor_segments"`
	SectionAngleDeg float64 `yaml:"section_angle_deg"`
	SectionTwist    int     `yaml:"section_twist"`

	Output   OutputConfig `yaml:"output"`
	LogLevel string       `yaml:"log_level"`
}

// OutputConfig names the files to write. Empty entries are skipped.
type OutputConfig struct {
	STL string `yaml:"stl"`
	OBJ string `yaml:"obj"`
	PNG string `yaml:"png"`
}

// Default returns the classic torus primitive defaults.
func Default() *Config {
	return &Config{
		Mode:          ModeMajorMinor,
		MajorRadius:   1.0,
		MinorRadius:   0.25,
		MajorSegments: 48,
		MinorSegments: 12,
		Output:        OutputConfig{STL: "torus.stl"},
		LogLevel:      "info",
	}
}

func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// Params resolves the radii mode and converts the configuration to
// generation parameters, rejecting values Generate must never see.
func (c *Config) Params() (torus.Params, error) {
	p := torus.Params{
		MajorRadius:   c.MajorRadius,
		MinorRadius:   c.MinorRadius,
		MajorSegments: c.MajorSegments,
		MinorSegments: c.MinorSegments,
		SectionAngle:  c.SectionAngleDeg * math.Pi / 180,
		SectionTwist:  c.SectionTwist,
	}
	switch c.Mode {
	case ModeMajorMinor, "":
	case ModeExtInt:
		p.MajorRadius, p.MinorRadius = torus.FromExteriorInterior(c.ExteriorRadius, c.InteriorRadius)
	default:
		return torus.Params{}, fmt.Errorf("unknown mode %q", c.Mode)
	}
	if err := p.Validate(); err != nil {
		return torus.Params{}, err
	}
	return p, nil
}
