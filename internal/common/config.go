// Package common provides shared utilities for Finsight
package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Finsight
type Config struct {
	Environment string          `toml:"environment" validate:"omitempty,oneof=development production prod"`
	Storage     StorageConfig   `toml:"storage"`
	Screener    ScreenerConfig  `toml:"screener"`
	Reports     ReportsConfig   `toml:"reports"`
	Scheduler   SchedulerConfig `toml:"scheduler"`
	Logging     LoggingConfig   `toml:"logging"`
}

// StorageConfig holds the three-tier document tree paths.
type StorageConfig struct {
	Input      string `toml:"input" validate:"required"`
	Processing string `toml:"processing" validate:"required"`
	Output     string `toml:"output" validate:"required"`
}

// ScreenerConfig holds default stock screening thresholds. Workflows pass
// these into each screening call; nothing mutates them between runs.
type ScreenerConfig struct {
	MinMentionCount    int      `toml:"min_mention_count" validate:"min=0"`
	SentimentThreshold float64  `toml:"sentiment_threshold" validate:"min=0,max=1"`
	FocusIndustries    []string `toml:"focus_industries"`
}

// ReportsConfig holds the three report templates and export toggles.
// Templates use {name} placeholders substituted at render time.
type ReportsConfig struct {
	DailyTemplate     string `toml:"daily_template"`
	WeeklyTemplate    string `toml:"weekly_template"`
	ScreeningTemplate string `toml:"screening_template"`
	ExportHTML        bool   `toml:"export_html"`
	ExportChart       bool   `toml:"export_chart"`
}

// SchedulerConfig controls the optional cron-driven daily analysis.
type SchedulerConfig struct {
	Enabled  bool   `toml:"enabled"`
	Schedule string `toml:"schedule"` // cron format, e.g. "0 18 * * 1-5"
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level    string   `toml:"level" validate:"oneof=debug info warn error"`
	Output   []string `toml:"output"` // "console", "file"
	FilePath string   `toml:"file_path"`
}

// NewDefaultConfig returns a Config with the original system defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Storage: StorageConfig{
			Input:      "data/input",
			Processing: "data/processing",
			Output:     "data/output",
		},
		Screener: ScreenerConfig{
			MinMentionCount:    2,
			SentimentThreshold: 0.6,
			FocusIndustries: []string{
				"新能源", "半导体", "人工智能", "医疗健康", "消费", "金融",
			},
		},
		Reports: ReportsConfig{
			DailyTemplate:     DefaultDailyTemplate,
			WeeklyTemplate:    DefaultWeeklyTemplate,
			ScreeningTemplate: DefaultScreeningTemplate,
			ExportHTML:        false,
			ExportChart:       false,
		},
		Scheduler: SchedulerConfig{
			Enabled:  false,
			Schedule: "0 18 * * 1-5",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Output:   []string{"console"},
			FilePath: "./logs/finsight.log",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Later files override earlier ones; missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("FINSIGHT_ENV"); env != "" {
		config.Environment = env
	}

	if level := os.Getenv("FINSIGHT_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if path := os.Getenv("FINSIGHT_DATA_PATH"); path != "" {
		config.Storage.Input = filepath.Join(path, "input")
		config.Storage.Processing = filepath.Join(path, "processing")
		config.Storage.Output = filepath.Join(path, "output")
	}

	if v := os.Getenv("FINSIGHT_MIN_MENTIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Screener.MinMentionCount = n
		}
	}

	if v := os.Getenv("FINSIGHT_SENTIMENT_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.Screener.SentimentThreshold = f
		}
	}

	if v := os.Getenv("FINSIGHT_FOCUS_INDUSTRIES"); v != "" {
		parts := strings.Split(v, ",")
		industries := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				industries = append(industries, p)
			}
		}
		config.Screener.FocusIndustries = industries
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
