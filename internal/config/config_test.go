package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/sockets",
			expected: filepath.Join(home, "sockets"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/run/user/1000",
			expected: "/run/user/1000",
		},
		{
			name:     "relative path unchanged",
			input:    "run/sockets",
			expected: "run/sockets",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Error("getConfigPaths() returned empty slice")
	}

	// Last path should be local config.toml (highest priority)
	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		expectedFirst := filepath.Join(home, ".config", "reel", "config.toml")
		if paths[0] != expectedFirst {
			t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
		}
	}
}

func TestDefaults(t *testing.T) {
	cfg := Config{}

	if got := cfg.BaseURL(); got != "http://localhost:8000" {
		t.Errorf("BaseURL() = %q, want default", got)
	}
	if got := cfg.MpvBinary(); got != "mpv" {
		t.Errorf("MpvBinary() = %q, want %q", got, "mpv")
	}
	if got := cfg.SocketDir(); got != os.TempDir() {
		t.Errorf("SocketDir() = %q, want temp dir", got)
	}
	if !cfg.ResumeEnabled() {
		t.Error("ResumeEnabled() = false by default, want true")
	}
}

func TestResumeEnabled_Explicit(t *testing.T) {
	off := false
	cfg := Config{Playback: PlaybackConfig{Resume: &off}}
	if cfg.ResumeEnabled() {
		t.Error("ResumeEnabled() = true with resume = false")
	}

	on := true
	cfg = Config{Playback: PlaybackConfig{Resume: &on}}
	if !cfg.ResumeEnabled() {
		t.Error("ResumeEnabled() = false with resume = true")
	}
}

func TestLoad_EmptyConfig(t *testing.T) {
	tmpDir := t.TempDir()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("could not change to temp directory: %v", err)
	}
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	if err := os.WriteFile("config.toml", []byte(""), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}
}

func TestLoad_BasicConfig(t *testing.T) {
	tmpDir := t.TempDir()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("could not change to temp directory: %v", err)
	}
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	configContent := `
[api]
base_url = "https://tube.example.com/"
token = "test-token"
timeout_seconds = 30

[mpv]
binary = "/usr/local/bin/mpv"
socket_dir = "~/sockets"
`
	if err := os.WriteFile("config.toml", []byte(configContent), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Trailing slash is removed
	if cfg.API.BaseURL != "https://tube.example.com" {
		t.Errorf("API.BaseURL = %q, want %q", cfg.API.BaseURL, "https://tube.example.com")
	}
	if cfg.API.Token != "test-token" {
		t.Errorf("API.Token = %q, want %q", cfg.API.Token, "test-token")
	}
	if cfg.API.TimeoutSeconds != 30 {
		t.Errorf("API.TimeoutSeconds = %d, want 30", cfg.API.TimeoutSeconds)
	}
	if cfg.Mpv.Binary != "/usr/local/bin/mpv" {
		t.Errorf("Mpv.Binary = %q, want configured binary", cfg.Mpv.Binary)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, "sockets")
	if cfg.Mpv.SocketDir != expected {
		t.Errorf("Mpv.SocketDir = %q, want %q", cfg.Mpv.SocketDir, expected)
	}
}

func TestLoad_InvalidToml(t *testing.T) {
	tmpDir := t.TempDir()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("could not change to temp directory: %v", err)
	}
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	if err := os.WriteFile("config.toml", []byte("invalid = [[["), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	_, err = Load()
	if err == nil {
		t.Error("Load() expected error for invalid TOML, got nil")
	}
}

func TestLoad_InvalidURL(t *testing.T) {
	tmpDir := t.TempDir()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("could not change to temp directory: %v", err)
	}
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	configContent := `
[api]
base_url = "not a url"
`
	if err := os.WriteFile("config.toml", []byte(configContent), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	_, err = Load()
	if err == nil {
		t.Error("Load() expected validation error for invalid URL, got nil")
	}
}
