package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fwojciec/sheetscrape"
	"github.com/fwojciec/sheetscrape/goquery"
	sshttp "github.com/fwojciec/sheetscrape/http"
	"github.com/fwojciec/sheetscrape/scrape"
	"github.com/fwojciec/sheetscrape/xlsx"
	yaml "gopkg.in/yaml.v3"
)

// Config holds the resolved settings for one invocation.
type Config struct {
	URL           string
	Selector      string
	Output        string
	WorksheetName string
	MinDataLength int
	Timeout       time.Duration
	UserAgent     string
	MaxRetries    int
	RetryDelay    time.Duration
	RequestDelay  time.Duration
	LogFile       string
	LogLevel      string
}

// DefaultConfig returns the settings used when neither flags nor a config
// file provide a value.
func DefaultConfig() Config {
	return Config{
		Selector:      sheetscrape.DefaultSelector,
		Output:        sheetscrape.DefaultOutputPath,
		WorksheetName: xlsx.SheetName,
		MinDataLength: goquery.DefaultMinLength,
		Timeout:       sshttp.DefaultFetchTimeout,
		UserAgent:     sshttp.DefaultUserAgent,
		RetryDelay:    scrape.DefaultRetryDelay,
		LogFile:       "scraper.log",
		LogLevel:      "info",
	}
}

// FileConfig is the YAML configuration file schema.
// Durations are strings such as "10s" or "1m".
type FileConfig struct {
	URL           string         `yaml:"url"`
	Selector      string         `yaml:"selector"`
	Output        string         `yaml:"output"`
	WorksheetName string         `yaml:"worksheetName"`
	MinDataLength *int           `yaml:"minDataLength"`
	Timeout       *time.Duration `yaml:"timeout"`
	UserAgent     string         `yaml:"userAgent"`
	MaxRetries    *int           `yaml:"maxRetries"`
	RetryDelay    *time.Duration `yaml:"retryDelay"`
	RequestDelay  *time.Duration `yaml:"requestDelay"`
	LogFile       *string        `yaml:"logFile"`
	LogLevel      string         `yaml:"logLevel"`
}

// LoadConfigFile reads and decodes a YAML configuration file.
// Unknown keys are rejected; an empty file sets nothing.
func LoadConfigFile(path string) (*FileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	var fc FileConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &fc, nil
}

// Apply overlays the values set in fc onto c.
func (fc *FileConfig) Apply(c *Config) {
	if fc.URL != "" {
		c.URL = fc.URL
	}
	if fc.Selector != "" {
		c.Selector = fc.Selector
	}
	if fc.Output != "" {
		c.Output = fc.Output
	}
	if fc.WorksheetName != "" {
		c.WorksheetName = fc.WorksheetName
	}
	if fc.MinDataLength != nil {
		c.MinDataLength = *fc.MinDataLength
	}
	if fc.Timeout != nil {
		c.Timeout = *fc.Timeout
	}
	if fc.UserAgent != "" {
		c.UserAgent = fc.UserAgent
	}
	if fc.MaxRetries != nil {
		c.MaxRetries = *fc.MaxRetries
	}
	if fc.RetryDelay != nil {
		c.RetryDelay = *fc.RetryDelay
	}
	if fc.RequestDelay != nil {
		c.RequestDelay = *fc.RequestDelay
	}
	if fc.LogFile != nil {
		c.LogFile = *fc.LogFile
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
}

// Validate returns an error if the settings cannot drive a run.
func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("url is required (argument or config file)")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("retries must not be negative, got %d", c.MaxRetries)
	}
	if c.MinDataLength < 0 {
		return fmt.Errorf("minimum data length must not be negative, got %d", c.MinDataLength)
	}
	if c.RetryDelay < 0 || c.RequestDelay < 0 {
		return fmt.Errorf("delays must not be negative")
	}
	return nil
}
