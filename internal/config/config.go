// Package config loads the tool configuration from TOML files.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "xspf"

// Config holds the tool configuration.
type Config struct {
	// OutputDir is the default destination for copy/convert when no
	// directory is given on the command line. Empty means cwd.
	OutputDir string `koanf:"output_dir"`

	// Color controls styled terminal output: "auto", "always" or
	// "never". Default "auto" styles only when stdout is a terminal.
	Color string `koanf:"color"`

	Convert ConvertConfig `koanf:"convert"`
}

// ConvertConfig holds ffmpeg conversion settings.
type ConvertConfig struct {
	// Bitrate is the ffmpeg -b:a value, e.g. "320k".
	Bitrate string `koanf:"bitrate"`
}

// Load reads the configuration, trying each config file in order with
// later files overriding earlier ones. Missing files are fine; the
// zero configuration is fully usable.
func Load() (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		Color: "auto",
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.OutputDir != "" {
		cfg.OutputDir = expandPath(cfg.OutputDir)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// ~/.config/xspf/config.toml (or XDG override)
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
