// Package app wires configuration, storage, and services into the
// analysis workflows shared by the CLI and the scheduler.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/bobmcallan/finsight/internal/common"
	"github.com/bobmcallan/finsight/internal/interfaces"
	"github.com/bobmcallan/finsight/internal/services/analyzer"
	"github.com/bobmcallan/finsight/internal/services/parser"
	"github.com/bobmcallan/finsight/internal/services/report"
	"github.com/bobmcallan/finsight/internal/services/screener"
	"github.com/bobmcallan/finsight/internal/storage/docstore"
)

// App holds all initialized services and the document store. It is the
// shared core used by the CLI commands and the scheduler.
type App struct {
	Config      *common.Config
	Logger      arbor.ILogger
	Store       interfaces.DocumentStore
	Parser      interfaces.ParserService
	Analyzer    interfaces.AnalyzerService
	Screener    interfaces.ScreenerService
	Reports     interfaces.ReportService
	StartupTime time.Time

	cron cronRunner
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp loads configuration and initializes storage and services.
// configPath may be empty, in which case FINSIGHT_CONFIG and the binary
// directory are checked before falling back to config/finsight.toml.
func NewApp(configPath string) (*App, error) {
	startupTime := time.Now()

	if configPath == "" {
		configPath = os.Getenv("FINSIGHT_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(getBinaryDir(), "finsight.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/finsight.toml"
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.InitLogger(config)

	store, err := docstore.NewStore(config.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize document store: %w", err)
	}

	a := &App{
		Config:      config,
		Logger:      logger,
		Store:       store,
		Parser:      parser.NewService(logger),
		Analyzer:    analyzer.NewService(nil, logger),
		Screener:    screener.NewService(logger),
		Reports:     report.NewService(config.Reports, logger),
		StartupTime: startupTime,
	}

	logger.Info().
		Str("environment", config.Environment).
		Str("config", configPath).
		Msg("Finsight initialized")

	return a, nil
}

// ScreenConfig returns the configured screening thresholds as a per-call
// config for the screener.
func (a *App) ScreenConfig() interfaces.ScreenConfig {
	return interfaces.ScreenConfig{
		MinMentionCount:    a.Config.Screener.MinMentionCount,
		SentimentThreshold: a.Config.Screener.SentimentThreshold,
		FocusIndustries:    a.Config.Screener.FocusIndustries,
	}
}

// Close stops background work.
func (a *App) Close() {
	a.StopScheduler()
}
