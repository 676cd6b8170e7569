// Package config loads the graphlab configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dd0wney/cluso-graphlab/pkg/logging"
	"github.com/dd0wney/cluso-graphlab/pkg/storage"
	"github.com/dd0wney/cluso-graphlab/pkg/validation"
	"gopkg.in/yaml.v3"
)

// Default configuration values
const (
	DefaultTargetError = 2
	DefaultLogLevel    = "info"
)

// Environment variables read by ApplyEnv.
const (
	EnvLogLevel    = "GRAPHLAB_LOG_LEVEL"
	EnvTargetError = "GRAPHLAB_TARGET_ERR"
	EnvMetrics     = "GRAPHLAB_METRICS"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Config is the whole configuration file.
type Config struct {
	Limits      storage.Limits    `yaml:"limits"`
	Communities CommunitiesConfig `yaml:"communities"`
	Index       IndexConfig       `yaml:"index"`
	Log         LogConfig         `yaml:"log"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

// CommunitiesConfig configures community detection.
type CommunitiesConfig struct {
	// Thresholds apply when the input carries no threshold line.
	Thresholds *validation.ThresholdsRequest `yaml:"thresholds"`
}

// IndexConfig configures the learned index.
type IndexConfig struct {
	TargetError int `yaml:"target_err"`

	// DatasetSize is how many leading integers of the input form the
	// dataset; the rest are queries. Unset means limits.max_keys.
	DatasetSize int `yaml:"dataset_size"`

	// Queries are looked up in addition to those read from input.
	Queries []int64 `yaml:"queries"`
}

// LogConfig configures the JSON logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// MetricsConfig controls the metrics dump at the end of a run.
type MetricsConfig struct {
	Dump bool `yaml:"dump"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	limits := storage.DefaultLimits()
	return &Config{
		Limits: limits,
		Index: IndexConfig{
			TargetError: DefaultTargetError,
			DatasetSize: limits.MaxKeys,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// Load reads the file at path over the defaults. An empty path yields the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	cfg.Index.DatasetSize = 0
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.Index.DatasetSize = validation.DefaultOr(cfg.Index.DatasetSize, cfg.Limits.MaxKeys)
	return cfg, nil
}

// ApplyEnv overrides values from the environment through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvLogLevel); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := getenv(EnvTargetError); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvTargetError, v, err)
		}
		c.Index.TargetError = n
	}
	if v := getenv(EnvMetrics); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvMetrics, v, err)
		}
		c.Metrics.Dump = b
	}
	return nil
}

// LogLevel returns the configured level.
func (c *Config) LogLevel() logging.Level {
	return logging.ParseLevel(c.Log.Level)
}

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	cv := validation.NewConfigValidator("config")
	cv.Positive("limits.max_users", c.Limits.MaxUsers).
		NonNegative("limits.max_hashtags", c.Limits.MaxHashtags).
		Positive("limits.max_hashtag_len", c.Limits.MaxHashtagLen).
		Positive("limits.max_keys", c.Limits.MaxKeys).
		OneOf("log.level", c.Log.Level, logLevels)

	cv.Custom("index", func() error {
		return validation.ValidateIndexRequest(&validation.IndexRequest{
			TargetError: c.Index.TargetError,
			DatasetSize: c.Index.DatasetSize,
			MaxKeys:     c.Limits.MaxKeys,
		})
	})

	// SOC lies in [0, 1]; a negative ths would count the zero diagonal.
	cv.When(c.Communities.Thresholds != nil, func(cv *validation.ConfigValidator) {
		cv.RangeFloat("communities.thresholds.ths", c.Communities.Thresholds.Friendship, 0, 1)
	})

	return cv.Validate()
}
