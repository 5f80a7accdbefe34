// Package config loads runtime tuning for the buffer's growth policy and the
// editor's search register. It is unrelated to document persistence, which
// the core never performs: nothing under this package touches a document's
// bytes, only the sizes the core allocates around them.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the tunables a host may override at startup.
type Config struct {
	Buffer BufferConfig `toml:"buffer"`
	Search SearchConfig `toml:"search"`
}

// BufferConfig controls the piece table's growth policy. Zero values are
// replaced by the package defaults in Default().
type BufferConfig struct {
	InitialAddCapacity   int `toml:"initial_add_capacity"`
	InitialPieceCapacity int `toml:"initial_piece_capacity"`
	InitialLineCapacity  int `toml:"initial_line_capacity"`
}

// SearchConfig controls the editor's search register.
type SearchConfig struct {
	MaxPatternLen int `toml:"max_pattern_len"`
}

// Default returns the built-in defaults, matching the suggested capacities
// in the buffer's growth-policy design: 4 KiB of add storage, 64 pieces,
// 1024 line offsets, and a 255-byte search pattern cap.
func Default() Config {
	return Config{
		Buffer: BufferConfig{
			InitialAddCapacity:   4096,
			InitialPieceCapacity: 64,
			InitialLineCapacity:  1024,
		},
		Search: SearchConfig{
			MaxPatternLen: 255,
		},
	}
}

// Load reads a TOML configuration file and overlays it on top of Default().
// Any field left unset (zero) in the file keeps the default value.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var loaded Config
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if loaded.Buffer.InitialAddCapacity > 0 {
		cfg.Buffer.InitialAddCapacity = loaded.Buffer.InitialAddCapacity
	}
	if loaded.Buffer.InitialPieceCapacity > 0 {
		cfg.Buffer.InitialPieceCapacity = loaded.Buffer.InitialPieceCapacity
	}
	if loaded.Buffer.InitialLineCapacity > 0 {
		cfg.Buffer.InitialLineCapacity = loaded.Buffer.InitialLineCapacity
	}
	if loaded.Search.MaxPatternLen > 0 {
		cfg.Search.MaxPatternLen = loaded.Search.MaxPatternLen
	}

	return cfg, nil
}
