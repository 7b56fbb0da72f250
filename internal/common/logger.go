package common

import (
	"os"
	"path/filepath"

	"github.com/ternarybob/arbor"
	arbormodels "github.com/ternarybob/arbor/models"
)

// InitLogger builds the application logger from configuration.
func InitLogger(config *Config) arbor.ILogger {
	logger := arbor.NewLogger()

	hasFileOutput := false
	hasConsoleOutput := false
	for _, output := range config.Logging.Output {
		if output == "file" {
			hasFileOutput = true
		}
		if output == "stdout" || output == "console" {
			hasConsoleOutput = true
		}
	}

	if hasFileOutput && config.Logging.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(config.Logging.FilePath), 0755); err == nil {
			logger = logger.WithFileWriter(arbormodels.WriterConfiguration{
				Type:       arbormodels.LogWriterTypeFile,
				FileName:   config.Logging.FilePath,
				TimeFormat: "15:04:05",
				MaxSize:    100 * 1024 * 1024,
				MaxBackups: 3,
				TextOutput: true,
			})
		}
	}

	if hasConsoleOutput || !hasFileOutput {
		logger = logger.WithConsoleWriter(arbormodels.WriterConfiguration{
			Type:       arbormodels.LogWriterTypeConsole,
			TimeFormat: "15:04:05",
			TextOutput: true,
		})
	}

	return logger.WithLevelFromString(config.Logging.Level)
}

// NewTestLogger returns a console logger for tests.
func NewTestLogger() arbor.ILogger {
	return arbor.NewLogger().WithConsoleWriter(arbormodels.WriterConfiguration{
		Type:       arbormodels.LogWriterTypeConsole,
		TimeFormat: "15:04:05",
		TextOutput: true,
	}).WithLevelFromString("warn")
}
