package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	cfg, err := parseBomber(defaultBomberYAML)
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	want := DefaultBomberConfig()
	if cfg != want {
		t.Errorf("embedded default = %+v\nexpected %+v", cfg, want)
	}
}

func TestLoadBomberCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bomber.yaml")
	data := []byte("player:\n  health: 42\nbombs:\n  fuse: 3s\npolicy:\n  health: clamp\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadBomberFrom(path)
	if err != nil {
		t.Fatalf("LoadBomberFrom failed: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %s, expected custom", src)
	}
	if cfg.Player.Health != 42 {
		t.Errorf("Player.Health = %d, expected 42", cfg.Player.Health)
	}
	if cfg.Bombs.Fuse != 3*time.Second {
		t.Errorf("Bombs.Fuse = %v, expected 3s", cfg.Bombs.Fuse)
	}
	if cfg.Policy.Health != "clamp" {
		t.Errorf("Policy.Health = %q, expected clamp", cfg.Policy.Health)
	}
	// Untouched keys keep their defaults
	if cfg.Player.Bombs != 5 || cfg.Explosion.Frames != 16 {
		t.Errorf("partial config lost defaults: %+v", cfg)
	}
}

func TestLoadBomberCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBomber(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("policy:\n  health: immortal\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBomber(bad); err == nil {
		t.Error("expected validation error for unknown health policy")
	}
}

func TestLoadBomberFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, src, err := LoadBomberFrom("")
	if err != nil {
		t.Fatalf("LoadBomberFrom failed: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %s, expected embedded", src)
	}
	if cfg.World.TileSize != 64 {
		t.Errorf("TileSize = %v, expected 64", cfg.World.TileSize)
	}
}

func TestLoadBomberLocalDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("enemies:\n  speed: 1.5\n")
	if err := os.WriteFile(filepath.Join(dir, "configs", "bomber.yaml"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadBomberFrom("")
	if err != nil {
		t.Fatalf("LoadBomberFrom failed: %v", err)
	}
	if src != SourceLocal {
		t.Errorf("source = %s, expected local", src)
	}
	if cfg.Enemies.Speed != 1.5 {
		t.Errorf("Enemies.Speed = %v, expected 1.5", cfg.Enemies.Speed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BomberConfig)
	}{
		{"tile size", func(c *BomberConfig) { c.World.TileSize = 0 }},
		{"negative speed", func(c *BomberConfig) { c.Enemies.Speed = -1 }},
		{"fuse", func(c *BomberConfig) { c.Bombs.Fuse = 0 }},
		{"frames", func(c *BomberConfig) { c.Explosion.Frames = 0 }},
		{"frame interval", func(c *BomberConfig) { c.Explosion.FrameInterval = 0 }},
		{"pickup chance", func(c *BomberConfig) { c.Pickups.OneIn = -1 }},
		{"health policy", func(c *BomberConfig) { c.Policy.Health = "respawn" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBomberConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	cfg := DefaultBomberConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestApplyBomberPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantHealth  int
		wantBombs   int
		wantSpawn   time.Duration
		wantEnabled bool
	}{
		{DifficultyEasy, 150, 8, 12 * time.Second, true},
		{DifficultyNormal, 100, 5, 8 * time.Second, true},
		{DifficultyHard, 60, 3, 4800 * time.Millisecond, true},
		{DifficultyFixed, 100, 5, 8 * time.Second, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultBomberConfig()
			ApplyBomberPreset(&cfg, tt.preset)

			if cfg.Player.Health != tt.wantHealth {
				t.Errorf("Health = %d, expected %d", cfg.Player.Health, tt.wantHealth)
			}
			if cfg.Player.Bombs != tt.wantBombs {
				t.Errorf("Bombs = %d, expected %d", cfg.Player.Bombs, tt.wantBombs)
			}
			if cfg.Enemies.SpawnInterval != tt.wantSpawn {
				t.Errorf("SpawnInterval = %v, expected %v", cfg.Enemies.SpawnInterval, tt.wantSpawn)
			}
			if cfg.Difficulty.Enabled != tt.wantEnabled {
				t.Errorf("Difficulty.Enabled = %v, expected %v", cfg.Difficulty.Enabled, tt.wantEnabled)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %v, %v", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %v, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
