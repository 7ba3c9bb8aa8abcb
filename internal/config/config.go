// Package config loads the run configuration of the particlelife command.
//
// The config file is written in TOML. Every key is optional; missing keys
// keep their default value. Example:
//
//	[window]
//	width = 1280
//	height = 720
//
//	[simulation]
//	groups = 5
//	layout = "perlin"
package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/olivierh59500/particlelife"
)

// ErrInvalid is returned for values that cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Config holds every parameter of a run.
type Config struct {
	Window     Window     `toml:"window"`
	Simulation Simulation `toml:"simulation"`
	Render     Render     `toml:"render"`
}

// Window holds the window parameters. The domain has the window size.
type Window struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Fullscreen bool   `toml:"fullscreen"`
	TPS        int    `toml:"tps"` // ticks per second
}

// Simulation holds the engine parameters.
type Simulation struct {
	Groups          int     `toml:"groups"`
	MinGroupSize    int     `toml:"min_group_size"`
	MaxGroupSize    int     `toml:"max_group_size"`
	DistanceMin     float64 `toml:"distance_min"`
	MaxRepulsion    float64 `toml:"max_repulsion"`
	SlipperinessMin float64 `toml:"slipperiness_min"`
	SlipperinessMax float64 `toml:"slipperiness_max"`
	CutoffFloor     float64 `toml:"cutoff_floor"`
	InitialSpeed    float64 `toml:"initial_speed"`
	Layout          string  `toml:"layout"`    // uniform or perlin
	TimeStep        float64 `toml:"time_step"` // dt passed to each step
}

// Render holds the drawing parameters.
type Render struct {
	PointSize   float64 `toml:"point_size"`
	Alpha       uint8   `toml:"alpha"`
	TrailLength int     `toml:"trail_length"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Window: Window{
			Title:  "Particle Life",
			Width:  1024,
			Height: 768,
			TPS:    60,
		},
		Simulation: Simulation{
			Groups:          particlelife.DefaultGroups,
			MinGroupSize:    particlelife.DefaultMinGroupSize,
			MaxGroupSize:    particlelife.DefaultMaxGroupSize,
			DistanceMin:     particlelife.DefaultDistanceMin,
			MaxRepulsion:    particlelife.DefaultMaxRepulsion,
			SlipperinessMin: particlelife.DefaultSlipperinessMin,
			SlipperinessMax: particlelife.DefaultSlipperinessMax,
			CutoffFloor:     particlelife.DefaultCutoffFloor,
			Layout:          string(particlelife.LayoutUniform),
			TimeStep:        1,
		},
		Render: Render{
			PointSize:   2.5,
			Alpha:       128,
			TrailLength: 10,
		},
	}
}

// Load decodes the TOML file at path over the defaults.
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	conf := Default()
	md, err := toml.DecodeFile(path, conf)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config %s: %w: unknown keys %s", path, ErrInvalid, strings.Join(keys, ", "))
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return conf, nil
}

// Validate checks the values a user can get wrong.
func (c *Config) Validate() error {
	w, s := c.Window, c.Simulation
	for _, f := range []struct {
		key string
		v   float64
	}{
		{"distance_min", s.DistanceMin},
		{"max_repulsion", s.MaxRepulsion},
		{"slipperiness_min", s.SlipperinessMin},
		{"slipperiness_max", s.SlipperinessMax},
		{"cutoff_floor", s.CutoffFloor},
		{"initial_speed", s.InitialSpeed},
		{"time_step", s.TimeStep},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s %v is not finite", ErrInvalid, f.key, f.v)
		}
	}
	switch {
	case w.Width <= 0 || w.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, w.Width, w.Height)
	case w.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, w.TPS)
	case s.Groups < 1 || s.Groups > particlelife.MaxGroups:
		return fmt.Errorf("%w: groups %d, want 1 to %d", ErrInvalid, s.Groups, particlelife.MaxGroups)
	case s.MinGroupSize < 0 || s.MaxGroupSize < s.MinGroupSize:
		return fmt.Errorf("%w: group size range [%d, %d]", ErrInvalid, s.MinGroupSize, s.MaxGroupSize)
	case s.DistanceMin <= 0:
		return fmt.Errorf("%w: distance_min %v", ErrInvalid, s.DistanceMin)
	case s.SlipperinessMin < 0 || s.SlipperinessMax > 1 || s.SlipperinessMax < s.SlipperinessMin:
		return fmt.Errorf("%w: slipperiness range [%v, %v]", ErrInvalid, s.SlipperinessMin, s.SlipperinessMax)
	case s.TimeStep <= 0:
		return fmt.Errorf("%w: time_step %v", ErrInvalid, s.TimeStep)
	}
	switch particlelife.Layout(s.Layout) {
	case particlelife.LayoutUniform, particlelife.LayoutPerlin:
	default:
		return fmt.Errorf("%w: layout %q", ErrInvalid, s.Layout)
	}
	return nil
}

// Settings converts the configuration for a domain of the given size.
func (c *Config) Settings(width, height int) particlelife.Settings {
	s := c.Simulation
	return particlelife.Settings{
		Width:           width,
		Height:          height,
		Groups:          s.Groups,
		MinGroupSize:    s.MinGroupSize,
		MaxGroupSize:    s.MaxGroupSize,
		DistanceMin:     s.DistanceMin,
		MaxRepulsion:    s.MaxRepulsion,
		SlipperinessMin: s.SlipperinessMin,
		SlipperinessMax: s.SlipperinessMax,
		CutoffFloor:     s.CutoffFloor,
		InitialSpeed:    s.InitialSpeed,
		Layout:          particlelife.Layout(s.Layout),
	}
}

// ParseSize parses a WIDTHxHEIGHT string.
func ParseSize(s string) (width, height int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: size %q, want WIDTHxHEIGHT", ErrInvalid, s)
	}
	if width, err = strconv.Atoi(ws); err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("%w: width %q", ErrInvalid, ws)
	}
	if height, err = strconv.Atoi(hs); err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("%w: height %q", ErrInvalid, hs)
	}
	return width, height, nil
}

// ParseSeed parses an optional seed. The empty string means no seed.
func ParseSeed(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	seed, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: seed %q: %w", ErrInvalid, s, err)
	}
	return &seed, nil
}
