package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-staticify/internal/fileutil"
	"github.com/alnah/go-staticify/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigInvalid   = errors.New("invalid config")
)

// Renderer names.
const (
	RendererPandoc   = "pandoc"
	RendererGoldmark = "goldmark"
)

// Log levels accepted in log.level.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// AppDirName is the directory under the user config dir searched for named configs.
const AppDirName = "staticify"

// Config holds all configuration for page rendering.
type Config struct {
	Templates TemplatesConfig `yaml:"templates"`
	Renderer  RendererConfig  `yaml:"renderer"`
	Output    OutputConfig    `yaml:"output"`
	Log       LogConfig       `yaml:"log"`
}

// TemplatesConfig defines where layout templates are found.
type TemplatesConfig struct {
	Dir             string `yaml:"dir"`             // default: "assets"
	Extension       string `yaml:"extension"`       // without the dot, default: "tmpltl"
	BuiltinFallback bool   `yaml:"builtinFallback"` // use the embedded template for missing layouts
}

// RendererConfig selects and configures the body renderer.
type RendererConfig struct {
	Name    string       `yaml:"name"`    // "pandoc" or "goldmark"
	Timeout string       `yaml:"timeout"` // Go duration, empty or "0" = none
	Pandoc  PandocConfig `yaml:"pandoc"`
}

// PandocConfig defines how pandoc is invoked.
type PandocConfig struct {
	Binary string   `yaml:"binary"` // default: "pandoc" on PATH
	Args   []string `yaml:"args"`   // appended after "<doc> --to html"
}

// OutputConfig defines the page destination.
type OutputConfig struct {
	Path string `yaml:"path"` // empty = stdout
}

// LogConfig defines diagnostic output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Validate checks every section. Called automatically by LoadConfig, but
// available for callers that build a Config by hand.
func (c *Config) Validate() error {
	if err := c.Templates.Validate(); err != nil {
		return fmt.Errorf("%w: templates: %w", ErrConfigInvalid, err)
	}
	if err := c.Renderer.Validate(); err != nil {
		return fmt.Errorf("%w: renderer: %w", ErrConfigInvalid, err)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("%w: log: %w", ErrConfigInvalid, err)
	}
	return nil
}

// Validate validates the template settings.
func (c *TemplatesConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Dir, validation.Required),
		validation.Field(&c.Extension, validation.Required, validation.By(extensionRule)),
	)
}

// Validate validates the renderer settings.
func (c *RendererConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required, validation.In(RendererPandoc, RendererGoldmark)),
		validation.Field(&c.Timeout, validation.By(durationRule)),
	)
}

// TimeoutDuration returns the parsed renderer timeout, zero when unset.
// Call after Validate; an unparsable value yields zero.
func (c *RendererConfig) TimeoutDuration() time.Duration {
	if c.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Validate validates the log settings.
func (c *LogConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Level, validation.Required, validation.In(LevelDebug, LevelInfo, LevelWarn, LevelError)),
	)
}

func extensionRule(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	return fileutil.ValidateExtension(s)
}

func durationRule(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return errors.New("must be a duration such as 30s or 2m")
	}
	if d < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Templates: TemplatesConfig{Dir: "assets", Extension: "tmpltl"},
		Renderer: RendererConfig{
			Name:   RendererPandoc,
			Pandoc: PandocConfig{Binary: "pandoc"},
		},
		Log: LogConfig{Level: LevelWarn},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup order:
// the current directory first, then the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
