package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Buffer.InitialAddCapacity != 4096 {
		t.Errorf("InitialAddCapacity = %d, want 4096", cfg.Buffer.InitialAddCapacity)
	}
	if cfg.Search.MaxPatternLen != 255 {
		t.Errorf("MaxPatternLen = %d, want 255", cfg.Search.MaxPatternLen)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "editor.toml")
	content := "[buffer]\ninitial_piece_capacity = 128\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Buffer.InitialPieceCapacity != 128 {
		t.Errorf("InitialPieceCapacity = %d, want 128", cfg.Buffer.InitialPieceCapacity)
	}
	if cfg.Buffer.InitialAddCapacity != 4096 {
		t.Errorf("InitialAddCapacity = %d, want default 4096", cfg.Buffer.InitialAddCapacity)
	}
	if cfg.Search.MaxPatternLen != 255 {
		t.Errorf("MaxPatternLen = %d, want default 255", cfg.Search.MaxPatternLen)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}
