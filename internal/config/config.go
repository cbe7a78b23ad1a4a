package config

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/kintraj/internal/trajectory"
)

// Config drives the kintraj CLI: where to read and write trajectory files
// and which operations to apply. CLI flags override config values.
type Config struct {
	Input         string          `yaml:"input"`
	Output        string          `yaml:"output"`
	Format        string          `yaml:"format"`
	Differentiate bool            `yaml:"differentiate"`
	Slice         SliceConfig     `yaml:"slice"`
	Transform     TransformConfig `yaml:"transform"`
}

// SliceConfig selects a half-open sample range [start, end).
type SliceConfig struct {
	Enabled bool `yaml:"enabled"`
	Start   int  `yaml:"start"`
	End     int  `yaml:"end"`
}

// TransformConfig holds a rigid transform as 16 row-major values plus the
// composition side. An empty matrix means identity.
type TransformConfig struct {
	Matrix []float64 `yaml:"matrix"`
	Side   string    `yaml:"side"`
}

func DefaultConfig() *Config {
	return &Config{
		Format:        "csv",
		Differentiate: true,
		Transform:     TransformConfig{Side: "right"},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Matrix4 builds the configured transform. Nil means identity.
func (c *TransformConfig) Matrix4() (*mat.Dense, error) {
	if len(c.Matrix) == 0 {
		return nil, nil
	}
	if len(c.Matrix) != 16 {
		return nil, fmt.Errorf("config: transform matrix needs 16 values, got %d", len(c.Matrix))
	}
	return mat.NewDense(4, 4, c.Matrix), nil
}

// ParsedSide resolves the configured side name.
func (c *TransformConfig) ParsedSide() (trajectory.Side, error) {
	return trajectory.ParseSide(c.Side)
}
