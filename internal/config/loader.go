package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a loaded configuration came from.
type Source string

const (
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// Load loads the flappy configuration and validates it.
// Search order: customPath -> ~/.flappy/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
// A custom path that cannot be read or parsed is an error; the other locations are
// skipped when missing or unparseable.
func Load(customPath string) (FlappyConfig, Source, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, "", err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, "", fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, Source(customPath), nil
	}

	candidates := []string{userConfigPath("flappy.yaml"), filepath.Join("configs", "flappy.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		cfg, err := loadFile(path)
		if err != nil {
			continue
		}
		if err := cfg.Validate(); err != nil {
			return cfg, "", fmt.Errorf("config %s: %w", path, err)
		}
		return cfg, Source(path), nil
	}

	cfg, err := Parse(DefaultYAML())
	if err != nil {
		return DefaultFlappyConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes a YAML document over the defaults and validates the result.
func Parse(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func (c FlappyConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

func loadFile(path string) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", filename)
}

// ParsePreset converts a CLI value into a Preset. Empty means no preset.
func ParsePreset(name string) (Preset, error) {
	switch Preset(name) {
	case "":
		return "", nil
	case PresetEasy, PresetNormal, PresetHard:
		return Preset(name), nil
	default:
		return "", fmt.Errorf("config: unknown preset %q (want one of %s)", name, PresetNames())
	}
}

// ApplyPreset modifies the config for a preset. The values stay constant for
// the whole run. Normal keeps the loaded values.
func ApplyPreset(cfg *FlappyConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Obstacles.Gap += 30
		cfg.Timing.SpawnPeriod += cfg.Timing.SpawnPeriod / 5
	case PresetHard:
		cfg.Obstacles.Gap -= 20
		cfg.Timing.SpawnPeriod -= cfg.Timing.SpawnPeriod * 2 / 15
	}
}
