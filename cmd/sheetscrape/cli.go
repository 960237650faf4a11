package main

import "time"

// CLI defines the command-line interface structure for Kong.
// Zero values and nil pointers mean "not set" so config file values can
// show through.
type CLI struct {
	Config       string        `short:"c" type:"existingfile" help:"YAML configuration file"`
	Output       string        `short:"o" help:"Output XLSX file (default: scraped_data.xlsx)"`
	Worksheet    string        `help:"Worksheet name (default: Scraped Data)"`
	MinLength    *int          `help:"Minimum characters for an extracted item (default: 1)"`
	Timeout      time.Duration `short:"t" help:"HTTP request timeout (default: 10s)"`
	UserAgent    string        `help:"User-Agent header sent with the request"`
	Retries      *int          `help:"Retries after a failed fetch (default: 0)"`
	RetryDelay   time.Duration `help:"Pause between retries (default: 2s)"`
	RequestDelay time.Duration `help:"Minimum interval between requests (default: none)"`
	LogFile      string        `help:"Log file, appended to (default: scraper.log)"`
	NoLogFile    bool          `help:"Log to the console only"`
	LogLevel     string        `help:"Log level: debug, info, warn, error (default: info)"`
	URL          string        `arg:"" optional:"" help:"Page URL to scrape"`
	Selector     string        `arg:"" optional:"" help:"CSS selector for target elements (default: .data-item)"`
}

// Apply overlays the values set on the command line onto c.
func (cli *CLI) Apply(c *Config) {
	if cli.URL != "" {
		c.URL = cli.URL
	}
	if cli.Selector != "" {
		c.Selector = cli.Selector
	}
	if cli.Output != "" {
		c.Output = cli.Output
	}
	if cli.Worksheet != "" {
		c.WorksheetName = cli.Worksheet
	}
	if cli.MinLength != nil {
		c.MinDataLength = *cli.MinLength
	}
	if cli.Timeout != 0 {
		c.Timeout = cli.Timeout
	}
	if cli.UserAgent != "" {
		c.UserAgent = cli.UserAgent
	}
	if cli.Retries != nil {
		c.MaxRetries = *cli.Retries
	}
	if cli.RetryDelay != 0 {
		c.RetryDelay = cli.RetryDelay
	}
	if cli.RequestDelay != 0 {
		c.RequestDelay = cli.RequestDelay
	}
	if cli.LogFile != "" {
		c.LogFile = cli.LogFile
	}
	if cli.NoLogFile {
		c.LogFile = ""
	}
	if cli.LogLevel != "" {
		c.LogLevel = cli.LogLevel
	}
}
