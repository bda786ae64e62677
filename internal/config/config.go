package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	// API settings for the video sharing backend
	API APIConfig `koanf:"api"`

	// Local mpv engine settings
	Mpv MpvConfig `koanf:"mpv"`

	// Playback behavior
	Playback PlaybackConfig `koanf:"playback"`
}

// APIConfig holds the backend connection settings.
type APIConfig struct {
	BaseURL        string `koanf:"base_url" validate:"omitempty,url"` // e.g., "http://localhost:8000"
	Token          string `koanf:"token"`                             // bearer token for authenticated endpoints
	TimeoutSeconds int    `koanf:"timeout_seconds" validate:"gte=0,lte=300"`
}

// MpvConfig holds settings for the spawned mpv process.
type MpvConfig struct {
	Binary    string   `koanf:"binary"`     // mpv executable (default: "mpv" from PATH)
	SocketDir string   `koanf:"socket_dir"` // IPC socket directory (default: os.TempDir())
	ExtraArgs []string `koanf:"extra_args"` // appended to the mpv command line
}

// PlaybackConfig holds playback behavior settings.
type PlaybackConfig struct {
	Resume *bool `koanf:"resume"` // resume partially watched videos (default: true)
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Normalize API URL (remove trailing slash)
	cfg.API.BaseURL = strings.TrimSuffix(cfg.API.BaseURL, "/")

	// Expand ~ in socket_dir
	if cfg.Mpv.SocketDir != "" {
		cfg.Mpv.SocketDir = expandPath(cfg.Mpv.SocketDir)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/reel/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "reel", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// BaseURL returns the configured API base URL with a default applied.
func (c *Config) BaseURL() string {
	if c.API.BaseURL == "" {
		return "http://localhost:8000"
	}
	return c.API.BaseURL
}

// MpvBinary returns the configured mpv binary with a default applied.
func (c *Config) MpvBinary() string {
	if c.Mpv.Binary == "" {
		return "mpv"
	}
	return c.Mpv.Binary
}

// SocketDir returns the IPC socket directory with a default applied.
func (c *Config) SocketDir() string {
	if c.Mpv.SocketDir == "" {
		return os.TempDir()
	}
	return c.Mpv.SocketDir
}

// ResumeEnabled reports whether partially watched videos resume from
// their saved position. Defaults to true when unset.
func (c *Config) ResumeEnabled() bool {
	if c.Playback.Resume == nil {
		return true
	}
	return *c.Playback.Resume
}
