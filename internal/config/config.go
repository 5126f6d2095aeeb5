// Package config loads barkeep's optional YAML config file and the
// BARKEEP_* environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration parses YAML scalars like "30s" or "2m".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// Config carries everything the providers need to find their sources.
type Config struct {
	Mail struct {
		Root  string `yaml:"root"`
		Field int    `yaml:"field"`
	} `yaml:"mail"`
	Calendar struct {
		Registry string `yaml:"registry"`
	} `yaml:"calendar"`
	Dashboard struct {
		Refresh Duration `yaml:"refresh"`
	} `yaml:"dashboard"`
}

// Default returns the built-in configuration for the given home directory.
func Default(home string) Config {
	var c Config
	c.Mail.Root = filepath.Join(home, ".thunderbird")
	c.Mail.Field = 2
	c.Calendar.Registry = filepath.Join(home, ".thunderbird", "profiles.ini")
	c.Dashboard.Refresh = Duration(30 * time.Second)
	return c
}

// RefreshInterval returns the dashboard ticker period, with a sane floor.
func (c Config) RefreshInterval() time.Duration {
	if c.Dashboard.Refresh < Duration(time.Second) {
		return 30 * time.Second
	}
	return time.Duration(c.Dashboard.Refresh)
}

// Load reads ~/.config/barkeep/config.yaml if present, applies environment
// overrides on top, and expands leading "~" in paths. A missing file is
// normal; a malformed one is an error.
func Load(home string) (Config, error) {
	cfg := Default(home)

	path := filepath.Join(home, ".config", "barkeep", "config.yaml")
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return cfg, err
	}

	cfg.applyEnv()
	cfg.Mail.Root = expandHome(cfg.Mail.Root, home)
	cfg.Calendar.Registry = expandHome(cfg.Calendar.Registry, home)

	if cfg.Mail.Field != 1 && cfg.Mail.Field != 2 {
		return cfg, fmt.Errorf("mail.field must be 1 or 2, got %d", cfg.Mail.Field)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("BARKEEP_MAIL_ROOT"); v != "" {
		c.Mail.Root = v
	}
	if v := os.Getenv("BARKEEP_UNREAD_FIELD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Mail.Field = n
		}
	}
	if v := os.Getenv("BARKEEP_PROFILES_INI"); v != "" {
		c.Calendar.Registry = v
	}
}

func expandHome(p, home string) string {
	if p == "~" {
		return home
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(home, p[2:])
	}
	return p
}
