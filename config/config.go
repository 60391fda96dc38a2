// Package config provides configuration management for the digest CLI.
// It supports loading configuration from YAML files and environment
// variables, with documented defaults for every knob. Invalid values fail
// fast with a validation error; nothing is silently clamped.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	dgerrors "github.com/convoscribe/digest-cli/pkg/errors"
)

// OutputFormat defines the supported output formats for CLI results.
type OutputFormat string

const (
	// OutputFormatText is human-readable plain text output.
	OutputFormatText OutputFormat = "text"
	// OutputFormatJSON is JSON-formatted output for machine processing.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatYAML is YAML-formatted output for machine processing.
	OutputFormatYAML OutputFormat = "yaml"
)

// Default configuration values.
const (
	// DefaultMaxGapSeconds is the silence gap beyond which consecutive
	// segments of the same speaker start a new turn. The right threshold is
	// a policy choice; 2 seconds matches typical conversational pacing.
	DefaultMaxGapSeconds = 2.0

	// DefaultDamping is the probability mass retained for following graph
	// edges versus restarting at a random node.
	DefaultDamping = 0.85

	// DefaultMaxIterations caps the ranking fixed-point iteration.
	DefaultMaxIterations = 100

	// DefaultConvergenceEpsilon stops iteration once the largest score
	// change falls below it.
	DefaultConvergenceEpsilon = 1e-6

	// DefaultSummarySentences is the number of key sentences to keep.
	DefaultSummarySentences = 4

	// DefaultSummaryKeywords is the number of keywords to surface.
	DefaultSummaryKeywords = 6

	// DefaultKeywordWindow is the co-occurrence sliding window in tokens.
	DefaultKeywordWindow = 5
)

// Config holds the digest pipeline configuration.
type Config struct {
	// MaxGapSeconds is the maximum silence between consecutive segments of
	// one speaker before a new turn starts.
	MaxGapSeconds float64 `yaml:"max_gap_seconds"`

	// Damping is the ranking damping factor, in (0, 1).
	Damping float64 `yaml:"damping"`

	// MaxIterations caps the ranking iteration count.
	MaxIterations int `yaml:"max_iterations"`

	// ConvergenceEpsilon is the ranking convergence threshold.
	ConvergenceEpsilon float64 `yaml:"convergence_epsilon"`

	// SummarySentences is the requested number of key-point sentences.
	SummarySentences int `yaml:"summary_sentences"`

	// SummaryKeywords is the requested number of keywords.
	SummaryKeywords int `yaml:"summary_keywords"`

	// KeywordWindow is the co-occurrence window size in tokens.
	KeywordWindow int `yaml:"keyword_window"`

	// ExtraStopwords extends the built-in stop-word tables.
	ExtraStopwords []string `yaml:"extra_stopwords,omitempty"`

	// LogLevel sets logging verbosity (debug, info, warn, error).
	LogLevel string `yaml:"log_level,omitempty"`

	// LogJSON switches logs to JSON output.
	LogJSON bool `yaml:"log_json,omitempty"`

	// OutputFormat specifies the default output format for commands.
	OutputFormat OutputFormat `yaml:"output_format,omitempty"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		MaxGapSeconds:      DefaultMaxGapSeconds,
		Damping:            DefaultDamping,
		MaxIterations:      DefaultMaxIterations,
		ConvergenceEpsilon: DefaultConvergenceEpsilon,
		SummarySentences:   DefaultSummarySentences,
		SummaryKeywords:    DefaultSummaryKeywords,
		KeywordWindow:      DefaultKeywordWindow,
		LogLevel:           "info",
		OutputFormat:       OutputFormatText,
	}
}

// LoadConfig loads configuration in this order (later sources override
// earlier): defaults, then the YAML file at path (skipped when path is empty
// or the file does not exist), then DIGEST_* environment variables. The
// merged result is validated before it is returned.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := loadFromFile(cfg, path); err != nil {
				return nil, fmt.Errorf("loading config file: %w", err)
			}
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// loadFromEnv overlays DIGEST_* environment variables.
func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("DIGEST_MAX_GAP_SECONDS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parsing DIGEST_MAX_GAP_SECONDS: %w", dgerrors.ErrValidation)
		}
		cfg.MaxGapSeconds = f
	}
	if v := os.Getenv("DIGEST_DAMPING"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parsing DIGEST_DAMPING: %w", dgerrors.ErrValidation)
		}
		cfg.Damping = f
	}
	if v := os.Getenv("DIGEST_MAX_ITERATIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing DIGEST_MAX_ITERATIONS: %w", dgerrors.ErrValidation)
		}
		cfg.MaxIterations = n
	}
	if v := os.Getenv("DIGEST_CONVERGENCE_EPSILON"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parsing DIGEST_CONVERGENCE_EPSILON: %w", dgerrors.ErrValidation)
		}
		cfg.ConvergenceEpsilon = f
	}
	if v := os.Getenv("DIGEST_SUMMARY_SENTENCES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing DIGEST_SUMMARY_SENTENCES: %w", dgerrors.ErrValidation)
		}
		cfg.SummarySentences = n
	}
	if v := os.Getenv("DIGEST_SUMMARY_KEYWORDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing DIGEST_SUMMARY_KEYWORDS: %w", dgerrors.ErrValidation)
		}
		cfg.SummaryKeywords = n
	}
	if v := os.Getenv("DIGEST_KEYWORD_WINDOW"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing DIGEST_KEYWORD_WINDOW: %w", dgerrors.ErrValidation)
		}
		cfg.KeywordWindow = n
	}
	if v := os.Getenv("DIGEST_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("DIGEST_OUTPUT_FORMAT"); v != "" {
		cfg.OutputFormat = OutputFormat(v)
	}
	return nil
}

// Validate checks configuration values. All numeric knobs must be positive;
// the damping factor must lie strictly between 0 and 1.
func (c *Config) Validate() error {
	if c.MaxGapSeconds <= 0 {
		return fmt.Errorf("max_gap_seconds must be positive, got %g: %w", c.MaxGapSeconds, dgerrors.ErrValidation)
	}
	if c.Damping <= 0 || c.Damping >= 1 {
		return fmt.Errorf("damping must be in (0, 1), got %g: %w", c.Damping, dgerrors.ErrValidation)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("max_iterations must be positive, got %d: %w", c.MaxIterations, dgerrors.ErrValidation)
	}
	if c.ConvergenceEpsilon <= 0 {
		return fmt.Errorf("convergence_epsilon must be positive, got %g: %w", c.ConvergenceEpsilon, dgerrors.ErrValidation)
	}
	if c.SummarySentences <= 0 {
		return fmt.Errorf("summary_sentences must be positive, got %d: %w", c.SummarySentences, dgerrors.ErrValidation)
	}
	if c.SummaryKeywords <= 0 {
		return fmt.Errorf("summary_keywords must be positive, got %d: %w", c.SummaryKeywords, dgerrors.ErrValidation)
	}
	if c.KeywordWindow <= 1 {
		return fmt.Errorf("keyword_window must be at least 2, got %d: %w", c.KeywordWindow, dgerrors.ErrValidation)
	}
	switch c.OutputFormat {
	case "", OutputFormatText, OutputFormatJSON, OutputFormatYAML:
	default:
		return fmt.Errorf("unknown output format %q: %w", c.OutputFormat, dgerrors.ErrValidation)
	}
	return nil
}
