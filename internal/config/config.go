package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rshade/ecodash/internal/footprint"
	"github.com/rshade/ecodash/internal/logging"
	"github.com/rshade/ecodash/internal/query"
)

// Output formats accepted by output.default_format and --output.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
)

const (
	configFileName  = "config.yaml"
	defaultPageSize = 20
	outputTypeFile  = logging.OutputFile
)

// Config is the ecodash configuration file.
type Config struct {
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
	Footprint   FootprintConfig   `yaml:"footprint"`
	Marketplace MarketplaceConfig `yaml:"marketplace"`

	configPath string
}

// OutputConfig controls command output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	PageSize      int    `yaml:"page_size"`
}

// LoggingConfig controls log level, format and destination.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`

	MaxSizeMB  int `yaml:"max_size_mb,omitempty"`
	MaxBackups int `yaml:"max_backups,omitempty"`
}

// FootprintConfig seeds the carbon calculator.
type FootprintConfig struct {
	Defaults footprint.LifestyleInputs `yaml:"defaults"`
}

// MarketplaceConfig sets the initial product list controls.
type MarketplaceConfig struct {
	DefaultSort     string `yaml:"default_sort"`
	DefaultCategory string `yaml:"default_category"`
}

// Params returns the list controls described by the section.
func (m MarketplaceConfig) Params() query.Params {
	p := query.DefaultParams()
	if m.DefaultCategory != "" {
		p.Category = m.DefaultCategory
	}
	p.Sort = query.ParseSortMode(m.DefaultSort)
	return p
}

// Defaults returns a Config with built-in values only.
func Defaults() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat: FormatTable,
			PageSize:      defaultPageSize,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatConsole,
		},
		Footprint: FootprintConfig{
			Defaults: footprint.DefaultInputs(),
		},
		Marketplace: MarketplaceConfig{
			DefaultSort:     string(query.SortPopular),
			DefaultCategory: query.CategoryAll,
		},
	}
}

// New loads the global config file over the defaults. A missing or
// unreadable file yields the defaults.
func New() *Config {
	cfg := Defaults()

	dir, err := GetConfigDir()
	if err != nil {
		return cfg
	}
	cfg.configPath = filepath.Join(dir, configFileName)

	if loadErr := cfg.Load(); loadErr != nil && !errors.Is(loadErr, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: ignoring config file %s: %v\n", cfg.configPath, loadErr)
		path := cfg.configPath
		cfg = Defaults()
		cfg.configPath = path
	}
	return cfg
}

// Load reads the config file into c. Keys absent from the file keep their
// current values.
func (c *Config) Load() error {
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return err
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return c.Validate()
}

// Save writes c to its config file, creating the directory if needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	return os.WriteFile(c.configPath, data, 0o600)
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string { return c.configPath }

// Validate checks the config for values the CLI cannot use.
func (c *Config) Validate() error {
	switch c.Output.DefaultFormat {
	case FormatTable, FormatJSON, FormatNDJSON:
	default:
		return fmt.Errorf("invalid output.default_format %q (must be table, json or ndjson)", c.Output.DefaultFormat)
	}
	if c.Output.PageSize < 0 {
		return fmt.Errorf("invalid output.page_size %d (must be >= 0)", c.Output.PageSize)
	}
	for _, f := range footprint.Fields() {
		if c.Footprint.Defaults.Get(f) < 0 {
			return fmt.Errorf("footprint.defaults.%s: %w", f, footprint.ErrNegativeValue)
		}
	}
	return nil
}
