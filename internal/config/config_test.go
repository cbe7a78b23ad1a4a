package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/kintraj/internal/trajectory"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Format != "csv" {
		t.Errorf("expected format csv, got %s", cfg.Format)
	}
	if !cfg.Differentiate {
		t.Error("differentiate should default to true")
	}
	if side, err := cfg.Transform.ParsedSide(); err != nil || side != trajectory.Right {
		t.Errorf("expected default side right, got %v (%v)", side, err)
	}
	if m, err := cfg.Transform.Matrix4(); err != nil || m != nil {
		t.Errorf("expected nil matrix by default, got %v (%v)", m, err)
	}
}

func TestLoad(t *testing.T) {
	content := `input: traj.csv
output: out.json
differentiate: false
slice:
  enabled: true
  start: 2
  end: 10
transform:
  side: left
  matrix: [1, 0, 0, 5, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1]
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Input != "traj.csv" {
		t.Errorf("expected input traj.csv, got %s", cfg.Input)
	}
	if cfg.Differentiate {
		t.Error("differentiate should be overridden to false")
	}
	if !cfg.Slice.Enabled || cfg.Slice.Start != 2 || cfg.Slice.End != 10 {
		t.Errorf("unexpected slice config: %+v", cfg.Slice)
	}

	side, err := cfg.Transform.ParsedSide()
	if err != nil {
		t.Fatalf("side failed: %v", err)
	}
	if side != trajectory.Left {
		t.Errorf("expected side left, got %s", side)
	}

	m, err := cfg.Transform.Matrix4()
	if err != nil {
		t.Fatalf("matrix failed: %v", err)
	}
	if got := m.At(0, 3); got != 5 {
		t.Errorf("expected translation 5, got %v", got)
	}
}

func TestMatrix4WrongLength(t *testing.T) {
	c := TransformConfig{Matrix: []float64{1, 2, 3}}
	if _, err := c.Matrix4(); err == nil {
		t.Error("expected error for wrong matrix length")
	}
}

func TestParsedSideUnknown(t *testing.T) {
	c := TransformConfig{Side: "diagonal"}
	if _, err := c.ParsedSide(); err == nil {
		t.Error("expected error for unknown side")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := DefaultConfig()
	cfg.Input = "in.json"
	cfg.Slice = SliceConfig{Enabled: true, Start: 1, End: 4}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Input != "in.json" || got.Slice.End != 4 {
		t.Errorf("round trip mismatch: %+v", got)
	}
}
