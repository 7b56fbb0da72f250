package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, 2, config.Screener.MinMentionCount)
	assert.Equal(t, 0.6, config.Screener.SentimentThreshold)
	assert.Contains(t, config.Screener.FocusIndustries, "新能源")
	assert.False(t, config.Scheduler.Enabled)
	assert.Equal(t, "0 18 * * 1-5", config.Scheduler.Schedule)
	assert.NotEmpty(t, config.Reports.DailyTemplate)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, 2, config.Screener.MinMentionCount)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finsight.toml")
	content := `
environment = "production"

[screener]
min_mention_count = 3
sentiment_threshold = 0.7
focus_industries = ["医疗健康"]

[logging]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "production", config.Environment)
	assert.True(t, config.IsProduction())
	assert.Equal(t, 3, config.Screener.MinMentionCount)
	assert.Equal(t, 0.7, config.Screener.SentimentThreshold)
	assert.Equal(t, []string{"医疗健康"}, config.Screener.FocusIndustries)
	assert.Equal(t, "debug", config.Logging.Level)

	// untouched sections keep defaults
	assert.Equal(t, "data/input", config.Storage.Input)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("FINSIGHT_ENV", "prod")
	t.Setenv("FINSIGHT_DATA_PATH", "/tmp/finsight-data")
	t.Setenv("FINSIGHT_MIN_MENTIONS", "5")
	t.Setenv("FINSIGHT_SENTIMENT_THRESHOLD", "0.8")
	t.Setenv("FINSIGHT_FOCUS_INDUSTRIES", "金融, 消费")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, config.IsProduction())
	assert.Equal(t, filepath.Join("/tmp/finsight-data", "input"), config.Storage.Input)
	assert.Equal(t, 5, config.Screener.MinMentionCount)
	assert.Equal(t, 0.8, config.Screener.SentimentThreshold)
	assert.Equal(t, []string{"金融", "消费"}, config.Screener.FocusIndustries)
}

func TestLoadConfigRejectsInvalidLogLevel(t *testing.T) {
	t.Setenv("FINSIGHT_LOG_LEVEL", "verbose")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestIsProduction(t *testing.T) {
	config := NewDefaultConfig()
	assert.False(t, config.IsProduction())

	config.Environment = "Production"
	assert.True(t, config.IsProduction())
}
