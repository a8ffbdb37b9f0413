package config

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"

	"moodify/parser"
)

const (
	ConfigFileName = "config.toml"
	configDirPath  = "~/.config/moodify"

	DefaultAPIURL         = "https://api.mistral.ai/v1/chat/completions"
	DefaultModel          = "mistral-large-2407"
	DefaultTemperature    = 0.7
	DefaultTimeoutSeconds = 60
	DefaultCopyFeedbackMS = 1000
	DefaultLogLevel       = "info"
)

// ErrMissingAPIKey is returned by Validate when no API key was configured
var ErrMissingAPIKey = errors.New("missing API key: set api_key in " + ConfigFileName + " or MOODIFY_API_KEY")

// Config holds every user-tunable setting of the application.
// Values come from config.toml first and are then overridden by the environment.
type Config struct {
	APIKey         string  `toml:"api_key"`
	APIURL         string  `toml:"api_url"`
	Model          string  `toml:"model"`
	Temperature    float64 `toml:"temperature"`
	TimeoutSeconds int     `toml:"timeout_seconds"`
	CopyFeedbackMS int     `toml:"copy_feedback_ms"`
	LogLevel       string  `toml:"log_level"`

	// Path is the file the configuration was loaded from
	Path string `toml:"-"`
}

// Default returns a configuration populated with the built-in defaults
func Default() *Config {
	return &Config{
		APIURL:         DefaultAPIURL,
		Model:          DefaultModel,
		Temperature:    DefaultTemperature,
		TimeoutSeconds: DefaultTimeoutSeconds,
		CopyFeedbackMS: DefaultCopyFeedbackMS,
		LogLevel:       DefaultLogLevel,
	}
}

// Dir returns the configuration directory, creating it if needed
func Dir() (string, error) {
	configDirectory, err := parser.ExpandPath(configDirPath)
	if err != nil {
		return "", fmt.Errorf("cannot verify local configuration directory: %w", err)
	}

	_, err = os.Stat(configDirectory)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(configDirectory, 0755); err != nil {
			return "", fmt.Errorf("error creating directory %s: %w", configDirectory, err)
		}
	} else if err != nil {
		return "", fmt.Errorf("error checking directory %s: %w", configDirectory, err)
	}

	return configDirectory, nil
}

// Load reads the configuration from path. An empty path means
// ~/.config/moodify/config.toml, which is created from a template on first run.
// Environment variables are applied on top of the file values.
func Load(path string) (*Config, error) {
	if path == "" {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, ConfigFileName)

		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := writeTemplate(path); err != nil {
				return nil, fmt.Errorf("error creating config file: %w", err)
			}
			log.Info().Str("component", "config").Str("path", path).Msg("created config template")
		}
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

// LoadFrom decodes a TOML file without looking at the environment.
// Keys missing from the file keep their default values.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("error reading config %s: %w", path, err)
	}
	cfg.Path = path
	cfg.normalize()
	return cfg, nil
}

func writeTemplate(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := file.WriteString("# Moodify configuration. The API key may also be set with MOODIFY_API_KEY.\n"); err != nil {
		return err
	}
	return toml.NewEncoder(file).Encode(Default())
}

// applyEnv overrides file values with environment variables (including those from .env)
func (c *Config) applyEnv() {
	if key := firstEnv("MOODIFY_API_KEY", "MISTRAL_API_KEY"); key != "" {
		c.APIKey = key
	}
	if v := os.Getenv("MOODIFY_API_URL"); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv("MOODIFY_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("MOODIFY_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	c.normalize()
}

func (c *Config) normalize() {
	c.APIKey = strings.TrimSpace(c.APIKey)
	c.APIURL = strings.TrimSpace(c.APIURL)
	c.Model = strings.TrimSpace(c.Model)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))

	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if c.CopyFeedbackMS <= 0 {
		c.CopyFeedbackMS = DefaultCopyFeedbackMS
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate checks the settings needed to reach the model API.
// A missing key is reported as ErrMissingAPIKey so callers can match it with errors.Is.
func (c *Config) Validate() error {
	var errs []error

	if c.APIKey == "" {
		errs = append(errs, ErrMissingAPIKey)
	}

	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("api_url must be an absolute http(s) URL, got %q", c.APIURL))
	}

	if c.Temperature < 0 || c.Temperature > 2 {
		errs = append(errs, fmt.Errorf("temperature must be between 0 and 2, got %v", c.Temperature))
	}

	return errors.Join(errs...)
}

// Timeout is the upper bound for one palette request
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CopyFeedback is how long a "Copied!" confirmation stays visible
func (c *Config) CopyFeedback() time.Duration {
	return time.Duration(c.CopyFeedbackMS) * time.Millisecond
}

// MaskedAPIKey hides all but the last four characters of the key
func (c *Config) MaskedAPIKey() string {
	if c.APIKey == "" {
		return "(not set)"
	}
	if len(c.APIKey) <= 4 {
		return strings.Repeat("*", len(c.APIKey))
	}
	return strings.Repeat("*", len(c.APIKey)-4) + c.APIKey[len(c.APIKey)-4:]
}

// Describe renders the effective configuration as TOML with the key masked
func (c *Config) Describe() (string, error) {
	masked := *c
	masked.APIKey = c.MaskedAPIKey()

	var buf bytes.Buffer
	if c.Path != "" {
		fmt.Fprintf(&buf, "# loaded from %s\n", c.Path)
	}
	if err := toml.NewEncoder(&buf).Encode(masked); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return ""
}
