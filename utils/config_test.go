package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-gol/rules"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"variant": "highlife", "frame_rate": 250000000, "pattern": "Glider", "max_generations": 40}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if config.FrameRate != 250*time.Millisecond {
		t.Errorf("FrameRate = %v, want 250ms", config.FrameRate)
	}
	if config.Pattern != "Glider" || config.MaxGenerations != 40 {
		t.Errorf("Pattern/MaxGenerations = %q/%d", config.Pattern, config.MaxGenerations)
	}
	if config.Dimension != 32 {
		t.Errorf("Dimension = %d, want default 32", config.Dimension)
	}

	v, err := config.Validate()
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if v != rules.HighLife {
		t.Errorf("Validate() variant = %v, want highlife", v)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadConfig(missing) error = %v, want os.ErrNotExist", err)
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig(bad json) should fail")
	}
}

func TestValidate(t *testing.T) {
	c := DefaultConfig()
	c.Dimension = -3
	c.FrameRate = 0
	c.StagnationThreshold = -1
	if _, err := c.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if c.Dimension != 32 || c.FrameRate <= 0 || c.StagnationThreshold != 0 {
		t.Errorf("Validate() did not normalize: %+v", c)
	}

	c = DefaultConfig()
	c.Variant = "seeds"
	if _, err := c.Validate(); !errors.Is(err, rules.ErrUnknownVariant) {
		t.Errorf("Validate() error = %v, want ErrUnknownVariant", err)
	}

	c = DefaultConfig()
	c.Pattern = "Glider"
	c.LoadPath = "saved.lif"
	if _, err := c.Validate(); err == nil {
		t.Error("Validate() should reject pattern together with load_path")
	}

	c = DefaultConfig()
	c.LogLevel = "loud"
	if _, err := c.Validate(); err == nil {
		t.Error("Validate() should reject an unknown log level")
	}
}
