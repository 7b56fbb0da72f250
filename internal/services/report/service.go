// Package report renders analysis results and recommendations into the
// daily, weekly, and screening report shapes.
package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/bobmcallan/finsight/internal/common"
	"github.com/bobmcallan/finsight/internal/interfaces"
	"github.com/bobmcallan/finsight/internal/models"
)

// Service implements ReportService
type Service struct {
	templates common.ReportsConfig
	logger    arbor.ILogger
}

// NewService creates a new report service
func NewService(templates common.ReportsConfig, logger arbor.ILogger) *Service {
	return &Service{templates: templates, logger: logger}
}

// GenerateDailyAnalysis renders the daily analysis report for one date.
// An empty batch produces a report containing only fallback text.
func (s *Service) GenerateDailyAnalysis(date string, results []models.AnalysisResult) string {
	industries := hotIndustries(results)
	sentiment := overallSentiment(results)

	return renderTemplate(s.templates.DailyTemplate, map[string]string{
		"date":              date,
		"news_summary":      formatNewsSummary(results),
		"overall_sentiment": sentiment,
		"hot_industries":    joinOrFallback(industries, "、", "无明显热点"),
		"stock_highlights":  formatStockHighlights(results),
		"investment_advice": investmentAdvice(sentiment, industries),
	})
}

// GenerateWeeklyReport renders the weekly report for a date range.
func (s *Service) GenerateWeeklyReport(startDate, endDate string, results []models.AnalysisResult, recs []models.StockRecommendation) string {
	year, week := 0, 0
	if t, err := time.Parse(common.DateFormat, startDate); err == nil {
		year, week = t.ISOWeek()
	} else {
		s.logger.Warn().Str("start_date", startDate).Msg("Unparsable start date for weekly report")
	}

	return renderTemplate(s.templates.WeeklyTemplate, map[string]string{
		"year":                 strconv.Itoa(year),
		"week":                 strconv.Itoa(week),
		"start_date":           startDate,
		"end_date":             endDate,
		"weekly_highlights":    formatWeeklyHighlights(results),
		"industry_performance": formatIndustryPerformance(results),
		"recommended_stocks":   formatRecommendations(recs),
		"weekly_summary":       weeklySummary(results),
		"next_week_outlook":    nextWeekOutlook(),
	})
}

// GenerateScreeningReport renders the stock screening report, echoing the
// thresholds the screening ran with.
func (s *Service) GenerateScreeningReport(date string, recs []models.StockRecommendation, cfg interfaces.ScreenConfig) string {
	return renderTemplate(s.templates.ScreeningTemplate, map[string]string{
		"date":                date,
		"min_mentions":        strconv.Itoa(cfg.MinMentionCount),
		"sentiment_threshold": formatFloat(cfg.SentimentThreshold),
		"focus_industries":    strings.Join(cfg.FocusIndustries, "、"),
		"screening_results":   formatScreeningResults(recs),
		"detailed_analysis":   formatDetailedAnalysis(recs),
	})
}

// renderTemplate substitutes {name} placeholders. Unknown placeholders are
// left intact so template mistakes stay visible in the output.
func renderTemplate(template string, vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func joinOrFallback(values []string, sep, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, sep)
}

// Ensure Service implements ReportService
var _ interfaces.ReportService = (*Service)(nil)
