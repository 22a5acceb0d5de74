// Package config provides unified configuration loading for molverify.
// It layers, in order: built-in engine defaults, an optional YAML file,
// and environment variable overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mauro3422/molverify/internal/chem"
	"github.com/mauro3422/molverify/internal/physics"
)

// Config contains all molverify configuration settings.
type Config struct {
	// Physics holds the external engine's published bond constants.
	Physics PhysicsConfig `json:"physics" yaml:"physics"`

	// Render holds the engine's render geometry settings.
	Render RenderConfig `json:"render" yaml:"render"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// PhysicsConfig mirrors the engine's bond physics build configuration.
type PhysicsConfig struct {
	// SpringStiffness is the Hookean spring constant of a bond.
	SpringStiffness float64 `json:"spring_stiffness" yaml:"spring_stiffness"`

	// Damping scales relative velocity along the bond axis.
	Damping float64 `json:"damping" yaml:"damping"`

	// BreakStress is the engine's bond-break threshold. Unused by the
	// force model but part of the published contract.
	BreakStress float64 `json:"break_stress" yaml:"break_stress"`

	// IdealLength is the spring rest length in pixels.
	IdealLength float64 `json:"ideal_length" yaml:"ideal_length"`

	// Timestep is the fixed integration timestep in seconds.
	Timestep float64 `json:"timestep" yaml:"timestep"`

	// Mass is the per-particle mass.
	Mass float64 `json:"mass" yaml:"mass"`

	// VelocityDecay is the ambient drag factor applied every step.
	VelocityDecay float64 `json:"velocity_decay" yaml:"velocity_decay"`
}

// RenderConfig mirrors the engine's render geometry at the creation plane.
type RenderConfig struct {
	// Element is the atomic number of the simulated element; its van der
	// Waals radius drives rendered size.
	Element int `json:"element" yaml:"element"`

	// BaseAtomRadius is the renderer's base atom radius in pixels.
	BaseAtomRadius float64 `json:"base_atom_radius" yaml:"base_atom_radius"`

	// Scale is the renderer's depth scale at the creation plane.
	Scale float64 `json:"scale" yaml:"scale"`
}

// LoggingConfig configures molverify's operational logging.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	Level string `json:"level" yaml:"level"`
}

// Default returns the engine's current build configuration: a carbon atom
// at the creation plane under the published bond constants.
func Default() *Config {
	return &Config{
		Physics: PhysicsConfig{
			SpringStiffness: 8.0,
			Damping:         0.92,
			BreakStress:     180.0,
			IdealLength:     42.0,
			Timestep:        1.0 / 60.0,
			Mass:            12.0,
			VelocityDecay:   0.95,
		},
		Render: RenderConfig{
			Element:        6,
			BaseAtomRadius: 7.0,
			Scale:          1.0,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load returns configuration from path layered over defaults, with
// environment overrides applied last. An empty path loads defaults only.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file, layered over
// defaults so partial files are fine.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is physically meaningful.
func (c *Config) Validate(table chem.Table) error {
	if c.Physics.SpringStiffness <= 0 {
		return fmt.Errorf("spring_stiffness must be positive, got %g", c.Physics.SpringStiffness)
	}
	if c.Physics.Mass <= 0 {
		return fmt.Errorf("mass must be positive, got %g", c.Physics.Mass)
	}
	if c.Physics.Timestep <= 0 {
		return fmt.Errorf("timestep must be positive, got %g", c.Physics.Timestep)
	}
	if c.Physics.IdealLength <= 0 {
		return fmt.Errorf("ideal_length must be positive, got %g", c.Physics.IdealLength)
	}
	if c.Physics.VelocityDecay <= 0 || c.Physics.VelocityDecay > 1 {
		return fmt.Errorf("velocity_decay must be in (0, 1], got %g", c.Physics.VelocityDecay)
	}
	if c.Physics.Damping < 0 {
		return fmt.Errorf("damping must be non-negative, got %g", c.Physics.Damping)
	}
	if c.Render.BaseAtomRadius <= 0 {
		return fmt.Errorf("base_atom_radius must be positive, got %g", c.Render.BaseAtomRadius)
	}
	if c.Render.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %g", c.Render.Scale)
	}
	if _, err := table.Lookup(c.Render.Element); err != nil {
		return fmt.Errorf("render element: %w", err)
	}

	validLevels := map[string]bool{"": true, "info": true, "debug": true, "trace": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	return nil
}

// Constants resolves the configured element against the table and returns
// the flat constant set the physics components consume.
func (c *Config) Constants(table chem.Table) (physics.Constants, error) {
	elem, err := table.Lookup(c.Render.Element)
	if err != nil {
		return physics.Constants{}, err
	}
	return physics.Constants{
		SpringStiffness:  c.Physics.SpringStiffness,
		Damping:          c.Physics.Damping,
		BreakStress:      c.Physics.BreakStress,
		IdealLength:      c.Physics.IdealLength,
		Dt:               c.Physics.Timestep,
		Mass:             c.Physics.Mass,
		VelocityDecay:    c.Physics.VelocityDecay,
		VdWRadius:        elem.VdWRadius,
		BaseRenderRadius: c.Render.BaseAtomRadius,
		RenderScale:      c.Render.Scale,
	}, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MOLVERIFY_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
