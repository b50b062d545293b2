package core

import (
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	ConfigFile = "showcase.config.yml"

	envPrefix = "SHOWCASE_"
)

type FrameworkConfig struct {
	Name    string `yaml:"name" env:"NAME"`
	Version string `yaml:"version" env:"VERSION"`
}

type Config struct {
	OutputDir    string          `yaml:"outputDir" env:"OUTPUT_DIR"`
	CacheEnabled bool            `yaml:"cache" env:"CACHE"`
	DebugHeaders bool            `yaml:"debugHeaders" env:"DEBUG_HEADERS"`
	DebugLogs    bool            `yaml:"debugLogs" env:"DEBUG_LOGS"`
	TemplatesDir string          `yaml:"templatesDir" env:"TEMPLATES_DIR"`
	PublicDir    string          `yaml:"publicDir" env:"PUBLIC_DIR"`
	Framework    FrameworkConfig `yaml:"framework" envPrefix:"FRAMEWORK_"`
}

var environ = os.Environ

// LoadConfig reads the YAML file at path, applies SHOWCASE_* environment
// overrides and fills defaults. A missing or unreadable file is not an error.
var LoadConfig = func(path string) *Config {
	cfg := &Config{}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			slog.Warn("ignoring malformed config file", "path", path, "err", err)
			cfg = &Config{}
		}
	}

	err := env.ParseWithOptions(cfg, env.Options{
		Prefix:      envPrefix,
		Environment: env.ToMap(environ()),
	})
	if err != nil {
		slog.Warn("ignoring invalid environment overrides", "err", err)
	}

	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.OutputDir == "" {
		c.OutputDir = "./cache"
	}
	if c.TemplatesDir == "" {
		c.TemplatesDir = "templates"
	}
	if c.PublicDir == "" {
		c.PublicDir = "public"
	}
}
