package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	appName        = "patentscraper"
	configFileName = "config.yaml"
	configPathEnv  = "PATENT_SCRAPER_CONFIG"
	originEnv      = "PATENT_SCRAPER_ORIGIN"
	outputDirEnv   = "PATENT_SCRAPER_OUTPUT_DIR"
	logLevelEnv    = "PATENT_SCRAPER_LOG_LEVEL"
	timeoutEnv     = "PATENT_SCRAPER_TIMEOUT"

	// DefaultOrigin is the legacy PatFT full-text search host.
	DefaultOrigin = "http://patft.uspto.gov"
	// DefaultSource names the scanner strategy used when none is configured.
	DefaultSource = "patft"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	HTTP     HTTPConfig     `yaml:"http"`
	Scan     ScanConfig     `yaml:"scan"`
	Output   OutputConfig   `yaml:"output"`
	Progress ProgressConfig `yaml:"progress"`
	Rules    RulesConfig    `yaml:"rules"`
}

// LoggingConfig selects the log level and an optional rotating log file.
type LoggingConfig struct {
	Level      string `yaml:"level" validate:"oneof=debug info warn warning error"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMb" validate:"gte=0"`
	MaxBackups int    `yaml:"maxBackups" validate:"gte=0"`
}

// HTTPConfig describes how patent pages are fetched.
type HTTPConfig struct {
	Origin    string        `yaml:"origin" validate:"required,url"`
	Timeout   time.Duration `yaml:"timeout" validate:"gt=0"`
	UserAgent string        `yaml:"userAgent"`
}

// ScanConfig controls the scanner strategy and the reference walk.
type ScanConfig struct {
	Source            string `yaml:"source" validate:"required"`
	MaxReferencePages int    `yaml:"maxReferencePages" validate:"gte=1"`
	FollowReferences  bool   `yaml:"followReferences"`
}

// OutputConfig says where reports go and whether one failure aborts the run.
type OutputConfig struct {
	Dir    string `yaml:"dir" validate:"required"`
	Strict bool   `yaml:"strict"`
}

// ProgressConfig toggles the reference progress bar.
type ProgressConfig struct {
	Enabled bool `yaml:"enabled"`
}

// RulesConfig holds the literal page markers used to locate fields.
type RulesConfig struct {
	AssigneeLabel   string `yaml:"assigneeLabel" validate:"required"`
	ReferencesLabel string `yaml:"referencesLabel" validate:"required"`
	NextPageAlt     string `yaml:"nextPageAlt" validate:"required"`
}

// Load reads YAML configuration (if present), applies environment overrides and validates.
// path wins over PATENT_SCRAPER_CONFIG, which wins over patentscraper/config.yaml in the XDG config dirs.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path == "" {
		path = discover()
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		// fields absent from the file keep their defaults
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks struct constraints.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: validation failed: %w", err)
	}
	return nil
}

func discover() string {
	found, err := xdg.SearchConfigFile(filepath.Join(appName, configFileName))
	if err != nil {
		return ""
	}
	return found
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(originEnv); v != "" {
		c.HTTP.Origin = v
	}

	if v := os.Getenv(outputDirEnv); v != "" {
		c.Output.Dir = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(timeoutEnv); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("config: invalid %s=%q: %v (keeping %s)", timeoutEnv, v, err, c.HTTP.Timeout)
		} else {
			c.HTTP.Timeout = d
		}
	}
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", MaxSizeMB: 10, MaxBackups: 3},
		HTTP:    HTTPConfig{Origin: DefaultOrigin, Timeout: 30 * time.Second},
		Scan: ScanConfig{
			Source:            DefaultSource,
			MaxReferencePages: 200,
			FollowReferences:  true,
		},
		Output:   OutputConfig{Dir: "."},
		Progress: ProgressConfig{Enabled: true},
		Rules: RulesConfig{
			AssigneeLabel:   "Assignee",
			ReferencesLabel: "References Cited",
			NextPageAlt:     "[NEXT_LIST]",
		},
	}
}
