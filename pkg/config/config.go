package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultQuality is the composite "best available" selector handed to the
// extraction engine when the user asks for "best": merged best video and
// audio in mp4 containers, falling back to best combined, then to anything.
const DefaultQuality = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"

// Config holds all configuration options for xvidzip
type Config struct {
	// Download settings (limit, quality, authentication)
	Download DownloadConfig `yaml:"download" json:"download"`

	// Output archive settings
	Output OutputConfig `yaml:"output" json:"output"`

	// Extraction engine settings
	Extractor ExtractorConfig `yaml:"extractor" json:"extractor"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// DownloadConfig holds retrieval-specific configuration
type DownloadConfig struct {
	// Limit caps the number of items retrieved; 0 means unbounded
	Limit      int    `yaml:"limit" json:"limit"`
	Quality    string `yaml:"quality" json:"quality"`
	CookieFile string `yaml:"cookie_file" json:"cookie_file"`
}

// OutputConfig holds output archive configuration
type OutputConfig struct {
	// ArchivePath is the destination ZIP; empty means <username>_videos.zip
	ArchivePath string `yaml:"archive_path" json:"archive_path"`
}

// ExtractorConfig holds extraction engine boundary configuration
type ExtractorConfig struct {
	MaxRetries     int    `yaml:"max_retries" json:"max_retries"`
	MergeFormat    string `yaml:"merge_format" json:"merge_format"`
	OutputTemplate string `yaml:"output_template" json:"output_template"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// DefaultConfig returns a Config instance with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Download: DownloadConfig{
			Limit:      0,
			Quality:    "best",
			CookieFile: "",
		},
		Output: OutputConfig{
			ArchivePath: "",
		},
		Extractor: ExtractorConfig{
			MaxRetries:     3,
			MergeFormat:    "mp4",
			OutputTemplate: "%(id)s.%(ext)s",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// LoadFromEnv loads configuration from environment variables. A .env file
// in the working directory is honored when present.
func (c *Config) LoadFromEnv() error {
	_ = godotenv.Load()

	if limit := os.Getenv("XVIDZIP_LIMIT"); limit != "" {
		var val int
		fmt.Sscanf(limit, "%d", &val)
		if val > 0 {
			c.Download.Limit = val
		}
	}
	if quality := os.Getenv("XVIDZIP_QUALITY"); quality != "" {
		c.Download.Quality = quality
	}
	if cookies := os.Getenv("XVIDZIP_COOKIE_FILE"); cookies != "" {
		c.Download.CookieFile = cookies
	}
	if output := os.Getenv("XVIDZIP_OUTPUT"); output != "" {
		c.Output.ArchivePath = output
	}
	if retries := os.Getenv("XVIDZIP_MAX_RETRIES"); retries != "" {
		var val int
		fmt.Sscanf(retries, "%d", &val)
		if val > 0 {
			c.Extractor.MaxRetries = val
		}
	}
	if logLevel := os.Getenv("XVIDZIP_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	return nil
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	// If path is empty, try default locations
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// findConfigFile searches for config file in standard locations
func (c *Config) findConfigFile() string {
	locations := []string{
		".xvidzip.yaml",
		".xvidzip.yml",
		filepath.Join(os.Getenv("HOME"), ".config", "xvidzip", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".xvidzip.yaml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// MergeCommandLineFlags merges command line flags into the configuration
func (c *Config) MergeCommandLineFlags(flags map[string]interface{}) {
	if output, ok := flags["output"].(string); ok && output != "" {
		c.Output.ArchivePath = output
	}
	if limit, ok := flags["limit"].(int); ok && limit > 0 {
		c.Download.Limit = limit
	}
	if cookies, ok := flags["cookies"].(string); ok && cookies != "" {
		c.Download.CookieFile = cookies
	}
	if quality, ok := flags["quality"].(string); ok && quality != "" {
		c.Download.Quality = quality
	}
	if maxRetries, ok := flags["max-retries"].(int); ok && maxRetries > 0 {
		c.Extractor.MaxRetries = maxRetries
	}
	if logLevel, ok := flags["log-level"].(string); ok && logLevel != "" {
		c.Logging.Level = logLevel
	}
}

// Load creates a configuration by layering defaults, config file,
// environment variables, and command line flags, in that order.
func Load(configFile string, flags map[string]interface{}) (*Config, error) {
	cfg := DefaultConfig()

	if err := cfg.LoadFromFile(configFile); err != nil {
		return nil, err
	}
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	cfg.MergeCommandLineFlags(flags)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.Download.Limit < 0 {
		errs = append(errs, errors.New("limit cannot be negative"))
	}
	if c.Download.Quality == "" {
		errs = append(errs, errors.New("quality selector is required"))
	}

	if c.Extractor.MaxRetries < 1 {
		errs = append(errs, errors.New("max retries must be at least 1"))
	}
	if c.Extractor.MergeFormat == "" {
		errs = append(errs, errors.New("merge format is required"))
	}
	if c.Extractor.OutputTemplate == "" {
		errs = append(errs, errors.New("output template is required"))
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, errors.New("invalid log level"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// QualitySelector resolves the configured quality into the selector
// expression handed to the extraction engine. The "best" shorthand maps
// to the composite default policy; anything else passes through verbatim.
func (c *Config) QualitySelector() string {
	if c.Download.Quality == "" || c.Download.Quality == "best" {
		return DefaultQuality
	}
	return c.Download.Quality
}

// ResolveArchivePath returns the destination archive path for a username,
// defaulting to <username>_videos.zip and normalizing the .zip suffix.
func (c *Config) ResolveArchivePath(username string) string {
	path := c.Output.ArchivePath
	if path == "" {
		path = username + "_videos.zip"
	}
	if !strings.HasSuffix(path, ".zip") {
		path += ".zip"
	}
	return path
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
