package config

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Win32 hotkey modifier bits, kept verbatim so the config file can be
// fed straight into RegisterHotKey by a platform shell.
const (
	ModAlt     = 0x0001
	ModControl = 0x0002
	ModShift   = 0x0004
)

// Config is the agent's on-disk configuration.
type Config struct {
	Listen  string        `json:"listen"`
	Log     LogConfig     `json:"log"`
	Capture CaptureConfig `json:"capture"`
	Hotkey  HotkeyConfig  `json:"hotkey"`
	SaveDir string        `json:"save_dir,omitempty"`
}

// LogConfig selects the log level and an optional log file.
type LogConfig struct {
	Level string `json:"level"`
	Path  string `json:"path,omitempty"`
}

// CaptureConfig selects the default output format.
type CaptureConfig struct {
	Format      string `json:"format"`
	JPEGQuality int    `json:"jpeg_quality"`
}

// HotkeyConfig mirrors the RegisterHotKey parameters. The agent does
// not claim the shortcut itself; a desktop shell reads these.
type HotkeyConfig struct {
	Modifiers uint32 `json:"modifiers"`
	KeyCode   uint32 `json:"key_code"`
}

// Default returns the configuration the agent ships with:
// Ctrl+Shift+S, PNG output, no log file.
func Default() *Config {
	return &Config{
		Listen: ":9000",
		Log:    LogConfig{Level: "info"},
		Capture: CaptureConfig{
			Format:      "png",
			JPEGQuality: 80,
		},
		Hotkey: HotkeyConfig{
			Modifiers: ModControl | ModShift,
			KeyCode:   0x53, // 'S'
		},
	}
}

// Load reads the configuration at path. A missing file is not an
// error: the defaults are returned. Keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to path as indented JSON.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
