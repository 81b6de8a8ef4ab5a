// Package config loads run settings from a YAML job file and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/ukaji3/xlsubst-go/pkg/xlsubst"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the job file looked up when no path is given.
const DefaultFileName = ".xlsubst.yaml"

// Environment variables overriding the job file.
const (
	EnvOriginalSheet = "XLSUBST_ORIGINAL_SHEET"
	EnvSourceColumn  = "XLSUBST_SOURCE_COLUMN"
	EnvTargetColumn  = "XLSUBST_TARGET_COLUMN"
	EnvTargetSheet   = "XLSUBST_TARGET_SHEET"
	EnvIgnore        = "XLSUBST_IGNORE"
	EnvOutputDir     = "XLSUBST_OUTPUT_DIR"
	EnvAllowEmpty    = "XLSUBST_ALLOW_EMPTY"
	EnvWorkers       = "XLSUBST_WORKERS"
)

// Config mirrors the job file. Zero values mean "not set".
type Config struct {
	OriginalSheet          string   `yaml:"original_sheet,omitempty"`
	SourceColumn           string   `yaml:"source_column,omitempty"`
	TargetColumn           string   `yaml:"target_column,omitempty"`
	TargetSheet            string   `yaml:"target_sheet,omitempty"`
	Ignore                 []string `yaml:"ignore,omitempty"`
	OutputDir              string   `yaml:"output_dir,omitempty"`
	AllowEmptyTranslations *bool    `yaml:"allow_empty_translations,omitempty"`
	Workers                int      `yaml:"workers,omitempty"`
}

// Load reads the job file at path, then applies environment overrides.
// A .env file in the working directory is loaded into the environment
// first when present. A missing job file is only an error when path was
// given explicitly.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	cfg, err := LoadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			cfg = &Config{}
		} else {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile parses a YAML job file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("%s: workers must not be negative", path)
	}
	return &cfg, nil
}

// Apply copies every setting present in c onto opts.
func (c *Config) Apply(opts *xlsubst.Options) {
	if c.OriginalSheet != "" {
		opts.OriginalSheet = c.OriginalSheet
	}
	if c.SourceColumn != "" {
		opts.SourceColumn = c.SourceColumn
	}
	if c.TargetColumn != "" {
		opts.TargetColumn = c.TargetColumn
	}
	if c.TargetSheet != "" {
		opts.TargetSheet = c.TargetSheet
	}
	if len(c.Ignore) > 0 {
		opts.Ignore = append([]string(nil), c.Ignore...)
	}
	if c.OutputDir != "" {
		opts.OutputDir = c.OutputDir
	}
	if c.AllowEmptyTranslations != nil {
		opts.AllowEmptyTranslations = *c.AllowEmptyTranslations
	}
	if c.Workers > 0 {
		opts.Workers = c.Workers
	}
}

func (c *Config) applyEnv() error {
	setString(&c.OriginalSheet, EnvOriginalSheet)
	setString(&c.SourceColumn, EnvSourceColumn)
	setString(&c.TargetColumn, EnvTargetColumn)
	setString(&c.TargetSheet, EnvTargetSheet)
	setString(&c.OutputDir, EnvOutputDir)

	if v := os.Getenv(EnvIgnore); v != "" {
		c.Ignore = splitList(v)
	}
	if v := os.Getenv(EnvAllowEmpty); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAllowEmpty, err)
		}
		c.AllowEmptyTranslations = &b
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("%s: invalid worker count %q", EnvWorkers, v)
		}
		c.Workers = n
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// splitList splits a "|"-separated list. Commas are not used as the
// separator because translations routinely contain them.
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, "|") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
