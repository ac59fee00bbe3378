package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a configuration was read from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadBomber loads bomber configuration.
// Search order: customPath -> ~/.bomber/configs/bomber.yaml -> ./configs/bomber.yaml -> embedded default
func LoadBomber(customPath string) (BomberConfig, error) {
	cfg, _, err := LoadBomberFrom(customPath)
	return cfg, err
}

// LoadBomberFrom is LoadBomber that also reports which source won.
// Files in the user and local directories that fail to parse or validate
// are skipped. A custom path that fails is an error.
func LoadBomberFrom(customPath string) (BomberConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readBomber(customPath)
		if err != nil {
			return BomberConfig{}, SourceCustom, err
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("bomber.yaml"); userCfgPath != "" {
		if cfg, err := readBomber(userCfgPath); err == nil {
			return cfg, SourceUser, nil
		}
	}

	// Try local configs directory
	if cfg, err := readBomber(filepath.Join("configs", "bomber.yaml")); err == nil {
		return cfg, SourceLocal, nil
	}

	// Use embedded default YAML
	cfg, err := parseBomber(defaultBomberYAML)
	if err != nil {
		return DefaultBomberConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

func readBomber(path string) (BomberConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BomberConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := parseBomber(data)
	if err != nil {
		return BomberConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// parseBomber decodes YAML over the built-in defaults so partial files only
// override the keys they set.
func parseBomber(data []byte) (BomberConfig, error) {
	cfg := DefaultBomberConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BomberConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return BomberConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bomber", "configs", filename)
}

// ApplyBomberPreset modifies the config based on a difficulty preset.
func ApplyBomberPreset(cfg *BomberConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Health = 150
		cfg.Player.Bombs = 8
		cfg.Enemies.SpawnInterval = cfg.Enemies.SpawnInterval * 3 / 2
	case DifficultyHard:
		cfg.Player.Health = 60
		cfg.Player.Bombs = 3
		cfg.Enemies.SpawnInterval = cfg.Enemies.SpawnInterval * 3 / 5
	}
}
