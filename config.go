package gaze

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultBasePath is the asset prefix used when a descriptor names none.
const DefaultBasePath = "/faces/"

// Dataset attribute keys read by DescriptorFromDataset.
const (
	DatasetBasePath = "base-path"
	DatasetDebug    = "debug"
	DatasetName     = "name"
)

// Descriptor configures one tracker.
type Descriptor struct {
	Name     string
	BasePath string // defaults to DefaultBasePath
	Debug    bool
}

// ResolvedBasePath returns BasePath, or DefaultBasePath when it is empty.
func (d Descriptor) ResolvedBasePath() string {
	if d.BasePath == "" {
		return DefaultBasePath
	}
	return d.BasePath
}

// DescriptorFromDataset builds a Descriptor from markup-style data attributes.
// A missing or empty base path falls back to DefaultBasePath; debug is on only
// for the exact value "true".
func DescriptorFromDataset(data map[string]string) Descriptor {
	return Descriptor{
		Name:     data[DatasetName],
		BasePath: data[DatasetBasePath],
		Debug:    data[DatasetDebug] == "true",
	}
}

// --- YAML configuration ---

// Config is the file form of a registry and its trackers.
type Config struct {
	Grid     GridConfig      `yaml:"grid"`
	Gate     string          `yaml:"gate"`
	Debug    bool            `yaml:"debug"`
	Trackers []TrackerConfig `yaml:"trackers"`
}

// GridConfig overrides DefaultGrid field by field. Zero fields keep the default.
type GridConfig struct {
	Min  *int `yaml:"min"`
	Max  *int `yaml:"max"`
	Step int  `yaml:"step"`
	Size int  `yaml:"size"`
}

// TrackerConfig describes one tracker and its fixed container rectangle.
type TrackerConfig struct {
	Name     string  `yaml:"name"`
	BasePath string  `yaml:"basePath"`
	Debug    bool    `yaml:"debug"`
	Left     float64 `yaml:"left"`
	Top      float64 `yaml:"top"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
}

// Descriptor returns the tracker's Descriptor.
func (tc TrackerConfig) Descriptor() Descriptor {
	return Descriptor{Name: tc.Name, BasePath: tc.BasePath, Debug: tc.Debug}
}

// Rect returns the tracker's container rectangle.
func (tc TrackerConfig) Rect() Rect {
	return Rect{Left: tc.Left, Top: tc.Top, Width: tc.Width, Height: tc.Height}
}

// LoadConfig parses a YAML configuration. Unknown keys are rejected and an
// empty document yields the defaults.
func LoadConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if _, err := cfg.GridValue(); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if _, err := ParseGatePolicy(cfg.Gate); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	for i, tc := range cfg.Trackers {
		if tc.Width < 0 || tc.Height < 0 {
			return nil, fmt.Errorf("parse config: tracker %d (%q): negative size %vx%v", i, tc.Name, tc.Width, tc.Height)
		}
	}
	return &cfg, nil
}

// GridValue returns DefaultGrid with the configured overrides applied.
func (c *Config) GridValue() (Grid, error) {
	g := DefaultGrid
	if c.Grid.Min != nil {
		g.Min = *c.Grid.Min
	}
	if c.Grid.Max != nil {
		g.Max = *c.Grid.Max
	}
	if c.Grid.Step != 0 {
		g.Step = c.Grid.Step
	}
	if c.Grid.Size != 0 {
		g.Size = c.Grid.Size
	}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// RegistryConfig converts the file form into a RegistryConfig.
func (c *Config) RegistryConfig() (RegistryConfig, error) {
	g, err := c.GridValue()
	if err != nil {
		return RegistryConfig{}, err
	}
	p, err := ParseGatePolicy(c.Gate)
	if err != nil {
		return RegistryConfig{}, err
	}
	return RegistryConfig{Grid: g, Policy: p, Debug: c.Debug}, nil
}

// ParseGatePolicy parses "strict" or "trust". The empty string means strict.
func ParseGatePolicy(s string) (GatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return GateStrict, nil
	case "trust":
		return GateTrust, nil
	default:
		return GateStrict, fmt.Errorf("unknown gate policy %q", s)
	}
}
