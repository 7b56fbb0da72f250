// Package interfaces defines service contracts for Finsight
package interfaces

import (
	"github.com/bobmcallan/finsight/internal/models"
)

// ParserService turns raw document text into a structured record.
type ParserService interface {
	// Parse extracts structure from raw text. filenameHint may be empty;
	// it is used as a title and date fallback. Parse is total: malformed
	// input degrades to zero values, never an error.
	Parse(raw string, filenameHint string) *models.ParsedDocument
}

// AnalyzerService produces sentiment, classification, key points, and
// importance for one parsed document.
type AnalyzerService interface {
	// Analyze is total over any ParsedDocument, including an empty one.
	Analyze(doc *models.ParsedDocument) *models.AnalysisResult
}

// StockResolver resolves a stock code to a display name and market.
// The built-in resolver is a placeholder; a real data source can be
// substituted without touching analyzer logic.
type StockResolver interface {
	Resolve(code string) models.StockRef
}

// ScreenConfig holds the thresholds for one screening run. It is passed
// per call so concurrent runs with different thresholds cannot interfere.
type ScreenConfig struct {
	MinMentionCount    int      // minimum mentions for a stock to qualify (default 2)
	SentimentThreshold float64  // minimum average sentiment in [0,1] (default 0.6)
	FocusIndustries    []string // industries that boost the composite score
}

// ScreenerService aggregates analysis results into stock recommendations.
type ScreenerService interface {
	// Screen folds results into per-stock aggregates, applies the hard
	// mention/sentiment filters, and returns recommendations sorted by
	// score descending (ties keep aggregation order).
	Screen(results []models.AnalysisResult, cfg ScreenConfig) []models.StockRecommendation

	// FilterByIndustry keeps recommendations whose related industries
	// contain the given substring. The result is a subset of the input.
	FilterByIndustry(recs []models.StockRecommendation, industry string) []models.StockRecommendation

	// TopPicks returns the first n recommendations.
	TopPicks(recs []models.StockRecommendation, n int) []models.StockRecommendation
}

// ReportService renders analysis output into the three fixed report shapes.
type ReportService interface {
	GenerateDailyAnalysis(date string, results []models.AnalysisResult) string
	GenerateWeeklyReport(startDate, endDate string, results []models.AnalysisResult, recs []models.StockRecommendation) string
	GenerateScreeningReport(date string, recs []models.StockRecommendation, cfg ScreenConfig) string

	// ExportHTML renders a generated markdown report as a standalone HTML document.
	ExportHTML(markdown string) (string, error)

	// RenderIndustryChart renders a PNG bar chart of industry mention counts.
	RenderIndustryChart(results []models.AnalysisResult) ([]byte, error)
}
