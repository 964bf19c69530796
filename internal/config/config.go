package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Academics struct {
		// Term is the current semester label (e.g. "Fall 2026"). Every
		// date-dependent rule in the engine uses this injected value instead
		// of the wall clock, so behavior stays deterministic.
		Term            string `yaml:"term" env:"ACADEMICS_TERM"`
		CourseCapacity  int    `yaml:"course_capacity" env:"ACADEMICS_COURSE_CAPACITY"`
		SecureEnrollCap int    `yaml:"secure_enroll_cap" env:"ACADEMICS_SECURE_ENROLL_CAP"`
	} `yaml:"academics"`

	Scraper struct {
		BaseURL      string `yaml:"base_url" env:"SCRAPER_BASE_URL"`
		MaxPages     int    `yaml:"max_pages" env:"SCRAPER_MAX_PAGES"`
		Timeout      string `yaml:"timeout" env:"SCRAPER_TIMEOUT"`
		MaxRetries   int    `yaml:"max_retries" env:"SCRAPER_MAX_RETRIES"`
		MinDelayMs   int    `yaml:"min_delay_ms" env:"SCRAPER_MIN_DELAY_MS"`
		MaxDelayMs   int    `yaml:"max_delay_ms" env:"SCRAPER_MAX_DELAY_MS"`
		OutputPath   string `yaml:"output_path" env:"SCRAPER_OUTPUT_PATH"`
		OutputFormat string `yaml:"output_format" env:"SCRAPER_OUTPUT_FORMAT"`
	} `yaml:"scraper"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Parse YAML into Config structure
		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	err := loadFromEnv(config)
	if err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Academics defaults
	config.Academics.Term = "Fall 2026"
	config.Academics.CourseCapacity = 30
	config.Academics.SecureEnrollCap = 20

	// Scraper defaults
	config.Scraper.BaseURL = "http://books.toscrape.com/catalogue/page-%d.html"
	config.Scraper.MaxPages = 5
	config.Scraper.Timeout = "10s"
	config.Scraper.MaxRetries = 3
	config.Scraper.MinDelayMs = 1000
	config.Scraper.MaxDelayMs = 3000
	config.Scraper.OutputPath = "books.csv"
	config.Scraper.OutputFormat = "csv"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "console"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	// Recursively process the config structure and look for env tags
	err := processStructFields(config)
	if err != nil {
		return err
	}

	return nil
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Academics.Term) == "" {
		return fmt.Errorf("academics.term cannot be empty")
	}

	if config.Academics.CourseCapacity <= 0 {
		return fmt.Errorf("academics.course_capacity must be positive")
	}

	if config.Academics.SecureEnrollCap <= 0 {
		return fmt.Errorf("academics.secure_enroll_cap must be positive")
	}

	if config.Scraper.MaxPages <= 0 {
		return fmt.Errorf("scraper.max_pages must be positive")
	}

	if config.Scraper.MinDelayMs < 0 || config.Scraper.MaxDelayMs < config.Scraper.MinDelayMs {
		return fmt.Errorf("scraper delay bounds are inconsistent")
	}

	switch config.Scraper.OutputFormat {
	case "csv", "json":
	default:
		return fmt.Errorf("scraper.output_format must be csv or json")
	}

	return nil
}
