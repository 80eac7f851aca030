package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration. Values are resolved in order:
// defaults, the YAML file, then FOLIO_* environment variables (a .env file
// in the working directory is loaded first and never overrides the real
// environment).
type Config struct {
	DB struct {
		Path string `yaml:"path"`
	} `yaml:"db"`

	Log struct {
		Level    string `yaml:"level"`
		UseCases bool   `yaml:"use_cases"`
	} `yaml:"log"`

	Auth struct {
		AdminUsername string        `yaml:"admin_username"`
		AdminPassword string        `yaml:"admin_password"`
		Delay         time.Duration `yaml:"delay"`
	} `yaml:"auth"`

	Profile Profile `yaml:"profile"`
}

// Profile is the static portfolio shown by the profile command and view.
type Profile struct {
	Name     string   `yaml:"name"`
	Subtitle string   `yaml:"subtitle"`
	About    string   `yaml:"about"`
	Details  []Detail `yaml:"details"`
	Links    []Link   `yaml:"links"`
}

// Detail is one labelled profile fact.
type Detail struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Link is one labelled profile URL.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	cfg := &Config{}
	cfg.Log.Level = "info"
	cfg.Auth.AdminUsername = "admin"
	cfg.Auth.AdminPassword = "password123"
	cfg.Profile = Profile{
		Name:     "Wangolo Bachawa",
		Subtitle: "Computer Science Student | Cybersecurity Enthusiast",
		About: "Computer Science student at Uganda Christian University working in Python, " +
			"JavaScript and React, focused on networking, cybersecurity, digital forensics " +
			"and web development.",
		Details: []Detail{
			{Label: "Course", Value: "Bachelor of Science in Computer Science"},
			{Label: "Year", Value: "Year 2:2"},
			{Label: "Interests", Value: "Python, JavaScript & React, Networking & Cybersecurity, Digital Forensics, Web Development, Computer Vision"},
		},
		Links: []Link{
			{Label: "Google Scholar", URL: "https://scholar.google.com/"},
			{Label: "Uganda Christian University", URL: "https://en.wikipedia.org/wiki/Uganda_Christian_University"},
			{Label: "GitHub", URL: "https://github.com/wangolo"},
		},
	}
	return cfg
}

// DefaultPath returns $FOLIO_CONFIG or ~/.folio/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv("FOLIO_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".folio", "config.yaml"), nil
}

// Load builds the configuration. A missing file at path is not an error.
// An empty DB path resolves to ~/.folio/folio.db.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.DB.Path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DB.Path = filepath.Join(home, ".folio", "folio.db")
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("FOLIO_DB"); v != "" {
		cfg.DB.Path = v
	}
	if v := os.Getenv("FOLIO_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("FOLIO_LOG_USE_CASES"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("FOLIO_LOG_USE_CASES: %w", err)
		}
		cfg.Log.UseCases = b
	}
	if v := os.Getenv("FOLIO_ADMIN_USERNAME"); v != "" {
		cfg.Auth.AdminUsername = v
	}
	if v, ok := os.LookupEnv("FOLIO_ADMIN_PASSWORD"); ok {
		cfg.Auth.AdminPassword = v
	}
	if v := os.Getenv("FOLIO_AUTH_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("FOLIO_AUTH_DELAY: %w", err)
		}
		cfg.Auth.Delay = d
	}
	return nil
}

func (c *Config) validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.Auth.Delay < 0 {
		return fmt.Errorf("auth.delay must not be negative, got %s", c.Auth.Delay)
	}
	if strings.TrimSpace(c.Profile.Name) == "" {
		return errors.New("profile.name is required")
	}
	return nil
}

// SlogLevel parses Log.Level ("debug", "info", "warn", "error").
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}
