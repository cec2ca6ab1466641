package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/NightKikko/datasearcher/internal/models"
	"github.com/NightKikko/datasearcher/internal/report"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by the format setting
const (
	FormatText     = report.FormatText
	FormatJSON     = report.FormatJSON
	FormatYAML     = report.FormatYAML
	FormatMarkdown = report.FormatMarkdown
	FormatHTML     = report.FormatHTML
)

// DefaultMaxWorkers is the worker pool ceiling used when none is configured
const DefaultMaxWorkers = 1000

// Config represents datasearcher configuration options
type Config struct {
	// Exclude lists regular expressions matched anywhere in a file path
	Exclude []string `yaml:"exclude"`

	// Extensions lists accepted file extensions (".txt" or "txt")
	Extensions []string `yaml:"extensions"`

	// AllFiles disables the extension filter entirely
	AllFiles bool `yaml:"all_files"`

	// MaxWorkers is the maximum number of files processed concurrently
	MaxWorkers int `yaml:"max_workers"`

	// CaseSensitive disables case folding of the search term
	CaseSensitive bool `yaml:"case_sensitive"`

	// Timeout bounds the whole run (0 = no limit)
	Timeout time.Duration `yaml:"timeout"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir is the directory where run logs will be written
	LogDir string `yaml:"log_dir"`

	// NoLogFile disables the per-run log file
	NoLogFile bool `yaml:"no_log_file"`

	// Format selects the report rendering (text, json, yaml, markdown, html)
	Format string `yaml:"format"`
}

// DefaultExclude returns the exclusion patterns used when none are configured.
func DefaultExclude() []string {
	return []string{"node_modules", ".git", "venv"}
}

// DefaultExtensions returns the common text extensions searched by default.
func DefaultExtensions() []string {
	return []string{".txt", ".json", ".sql", ".py", ".md", ".csv", ".log", ".xml", ".html", ".js", ".css"}
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Exclude:       DefaultExclude(),
		Extensions:    DefaultExtensions(),
		AllFiles:      false,
		MaxWorkers:    DefaultMaxWorkers,
		CaseSensitive: false,
		Timeout:       0, // No limit
		LogLevel:      "info",
		LogDir:        ".datasearcher/logs",
		NoLogFile:     false,
		Format:        FormatText,
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Timeout is parsed by hand so "30s" style values are accepted
	type yamlConfig struct {
		Exclude       []string `yaml:"exclude"`
		Extensions    []string `yaml:"extensions"`
		AllFiles      bool     `yaml:"all_files"`
		MaxWorkers    int      `yaml:"max_workers"`
		CaseSensitive bool     `yaml:"case_sensitive"`
		Timeout       string   `yaml:"timeout"`
		LogLevel      string   `yaml:"log_level"`
		LogDir        string   `yaml:"log_dir"`
		NoLogFile     bool     `yaml:"no_log_file"`
		Format        string   `yaml:"format"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Lists replace the defaults whenever the key is present, so an
	// explicit empty list clears them
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err == nil {
		if _, exists := rawMap["exclude"]; exists {
			cfg.Exclude = yamlCfg.Exclude
		}
		if _, exists := rawMap["extensions"]; exists {
			cfg.Extensions = yamlCfg.Extensions
		}
	}

	if yamlCfg.AllFiles {
		cfg.AllFiles = true
	}
	if yamlCfg.MaxWorkers != 0 {
		cfg.MaxWorkers = yamlCfg.MaxWorkers
	}
	if yamlCfg.CaseSensitive {
		cfg.CaseSensitive = true
	}
	if yamlCfg.Timeout != "" {
		timeout, err := time.ParseDuration(yamlCfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout format %q: %w", yamlCfg.Timeout, err)
		}
		cfg.Timeout = timeout
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.LogDir != "" {
		cfg.LogDir = yamlCfg.LogDir
	}
	if yamlCfg.NoLogFile {
		cfg.NoLogFile = true
	}
	if yamlCfg.Format != "" {
		cfg.Format = yamlCfg.Format
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .datasearcher/config.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, ".datasearcher", "config.yaml"))
}

// Flags carries CLI overrides. Nil fields were not set on the command line.
type Flags struct {
	Exclude       *[]string
	Extensions    *[]string
	AllFiles      *bool
	MaxWorkers    *int
	CaseSensitive *bool
	Timeout       *time.Duration
	LogLevel      *string
	LogDir        *string
	NoLogFile     *bool
	Format        *string
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(f Flags) {
	if f.Exclude != nil {
		c.Exclude = *f.Exclude
	}
	if f.Extensions != nil {
		c.Extensions = *f.Extensions
	}
	if f.AllFiles != nil {
		c.AllFiles = *f.AllFiles
	}
	if f.MaxWorkers != nil {
		c.MaxWorkers = *f.MaxWorkers
	}
	if f.CaseSensitive != nil {
		c.CaseSensitive = *f.CaseSensitive
	}
	if f.Timeout != nil {
		c.Timeout = *f.Timeout
	}
	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}
	if f.LogDir != nil {
		c.LogDir = *f.LogDir
	}
	if f.NoLogFile != nil {
		c.NoLogFile = *f.NoLogFile
	}
	if f.Format != nil {
		c.Format = *f.Format
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if !report.IsFormat(c.Format) {
		return fmt.Errorf("invalid format %q, must be one of: %s", c.Format, strings.Join(report.Formats, ", "))
	}

	// Timeout can be 0 (no timeout) or positive, negative is invalid
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0, got %v", c.Timeout)
	}

	for _, pattern := range c.Exclude {
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
	}

	return nil
}

// BuildSearchConfig produces the immutable search configuration for term and root.
// Extensions are normalized to a leading dot and lower case, and the worker
// ceiling is clamped to at least 1.
func (c *Config) BuildSearchConfig(term, root string) models.SearchConfig {
	if strings.TrimSpace(root) == "" {
		root = "."
	}

	var extensions []string
	if !c.AllFiles {
		seen := make(map[string]bool)
		for _, ext := range c.Extensions {
			normalized := NormalizeExtension(ext)
			if normalized == "" || seen[normalized] {
				continue
			}
			seen[normalized] = true
			extensions = append(extensions, normalized)
		}
	}

	workers := c.MaxWorkers
	if workers < 1 {
		workers = 1
	}

	return models.SearchConfig{
		Term:          term,
		Root:          root,
		Exclude:       append([]string(nil), c.Exclude...),
		Extensions:    extensions,
		CaseSensitive: c.CaseSensitive,
		MaxWorkers:    workers,
	}
}

// NormalizeExtension returns ext lower-cased with exactly one leading dot.
// Blank input yields "".
func NormalizeExtension(ext string) string {
	trimmed := strings.TrimLeft(strings.TrimSpace(ext), ".")
	if trimmed == "" {
		return ""
	}
	return "." + strings.ToLower(trimmed)
}

// SplitList splits comma separated input into trimmed, non-empty items.
func SplitList(input string) []string {
	var items []string
	for _, part := range strings.Split(input, ",") {
		if p := strings.TrimSpace(part); p != "" {
			items = append(items, p)
		}
	}
	return items
}
