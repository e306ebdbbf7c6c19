package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"wardrobe/internal/errors"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// CategoryDef names a clothing category and the directory its images live in.
type CategoryDef struct {
	Name string `yaml:"name"` // Label shown in the UI
	Dir  string `yaml:"dir"`  // Directory, relative to Library.Root unless absolute
}

// Config represents the application configuration structure.
type Config struct {
	Window struct {
		Title      string  `yaml:"title"`      // Window title
		Width      float32 `yaml:"width"`      // Window width in pixels
		Height     float32 `yaml:"height"`     // Window height in pixels
		Background string  `yaml:"background"` // Background colour as #rrggbb
	} `yaml:"window"`
	Image struct {
		Width  int `yaml:"width"`  // Displayed image width
		Height int `yaml:"height"` // Displayed image height
	} `yaml:"image"`
	Library struct {
		Root   string   `yaml:"root"`   // Directory holding the category directories
		Ignore []string `yaml:"ignore"` // Extra glob patterns to skip
	} `yaml:"library"`
	Categories []CategoryDef `yaml:"categories"`
}

// DefaultPath returns ~/.config/wardrobe/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wardrobe", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.NewFileError("error reading config file", path, errors.FileAccessDenied, err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	if tempCfg.Window.Title != "" {
		cfg.Window.Title = tempCfg.Window.Title
	}
	if tempCfg.Window.Width != 0 {
		cfg.Window.Width = tempCfg.Window.Width
	}
	if tempCfg.Window.Height != 0 {
		cfg.Window.Height = tempCfg.Window.Height
	}
	if tempCfg.Window.Background != "" {
		cfg.Window.Background = tempCfg.Window.Background
	}
	if tempCfg.Image.Width != 0 {
		cfg.Image.Width = tempCfg.Image.Width
	}
	if tempCfg.Image.Height != 0 {
		cfg.Image.Height = tempCfg.Image.Height
	}
	if tempCfg.Library.Root != "" {
		cfg.Library.Root = tempCfg.Library.Root
	}
	if len(tempCfg.Library.Ignore) > 0 {
		cfg.Library.Ignore = tempCfg.Library.Ignore
	}
	if len(tempCfg.Categories) > 0 {
		cfg.Categories = tempCfg.Categories
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Window.Title = "Giddy Clothing Services"
	cfg.Window.Width = 220
	cfg.Window.Height = 700
	cfg.Window.Background = "#f2f2f2"

	cfg.Image.Width = 200
	cfg.Image.Height = 200

	cfg.Library.Root = "."
	cfg.Library.Ignore = []string{}

	cfg.Categories = []CategoryDef{
		{Name: "tops", Dir: "tops"},
		{Name: "bottoms", Dir: "bottoms"},
		{Name: "shoes", Dir: "shoes"},
	}

	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.NewConfigError("window size must be positive", "window", errors.InvalidConfig, nil)
	}
	if c.Image.Width <= 0 || c.Image.Height <= 0 {
		return errors.NewConfigError("image size must be positive", "image", errors.InvalidConfig, nil)
	}
	if _, err := ParseHexColor(c.Window.Background); err != nil {
		return errors.NewConfigError("invalid background colour", "window.background", errors.InvalidConfig, err)
	}

	for i, pattern := range c.Library.Ignore {
		if _, err := glob.Compile(pattern); err != nil {
			return errors.NewConfigError("invalid ignore pattern", fmt.Sprintf("library.ignore[%d]", i), errors.InvalidConfig, err)
		}
	}

	if len(c.Categories) == 0 {
		return errors.NewConfigError("at least one category is required", "categories", errors.InvalidConfig, nil)
	}
	seen := make(map[string]bool, len(c.Categories))
	for i, cat := range c.Categories {
		param := fmt.Sprintf("categories[%d]", i)
		if cat.Name == "" {
			return errors.NewConfigError("category name is required", param, errors.InvalidConfig, nil)
		}
		if cat.Dir == "" {
			return errors.NewConfigError("category dir is required", param, errors.InvalidConfig, nil)
		}
		if seen[cat.Name] {
			return errors.NewConfigError("duplicate category name", param, errors.InvalidConfig, nil)
		}
		seen[cat.Name] = true
	}

	return nil
}

// BackgroundColor returns the parsed window background.
func (c *Config) BackgroundColor() color.NRGBA {
	col, err := ParseHexColor(c.Window.Background)
	if err != nil {
		return color.NRGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff}
	}
	return col
}

// ParseHexColor parses "#rrggbb" (the leading # is optional).
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("expected 6 hex digits, got %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
