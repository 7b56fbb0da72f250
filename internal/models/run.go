package models

import "time"

// FileInfo describes one stored document for inventory listings.
type FileInfo struct {
	Name     string    `json:"name"`
	Path     string    `json:"path"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// AnalyzeRun summarizes one analyze-news batch.
type AnalyzeRun struct {
	RunID          string           `json:"run_id"`
	Date           string           `json:"date"`
	FilesProcessed int              `json:"files_processed"`
	Results        []AnalysisResult `json:"results,omitempty"`
	ReportPath     string           `json:"report_path,omitempty"`
}

// ScreenRun summarizes one stock-screening batch.
type ScreenRun struct {
	RunID           string                `json:"run_id"`
	Date            string                `json:"date"`
	Recommendations []StockRecommendation `json:"recommendations,omitempty"`
	ReportPath      string                `json:"report_path,omitempty"`
}

// WeeklyRun summarizes one weekly (or monthly) report batch.
type WeeklyRun struct {
	RunID             string `json:"run_id"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
	FilesAnalyzed     int    `json:"files_analyzed"`
	NewsCount         int    `json:"news_count"`
	StocksRecommended int    `json:"stocks_recommended"`
	ReportPath        string `json:"report_path,omitempty"`
	ChartPath         string `json:"chart_path,omitempty"`
}

// Insight is one extracted note entry for the insights workflow.
type Insight struct {
	Source     string   `json:"source"`
	Summary    string   `json:"summary"`
	KeyPoints  []string `json:"key_points,omitempty"`
	Sentiment  string   `json:"sentiment"`
	Importance string   `json:"importance"`
	Industries []string `json:"industries,omitempty"`
	Stocks     []string `json:"stocks,omitempty"`
}

// InsightRun summarizes one extract-insights batch.
type InsightRun struct {
	RunID     string    `json:"run_id"`
	Extracted int       `json:"extracted"`
	Insights  []Insight `json:"insights,omitempty"`
	NotePath  string    `json:"note_path,omitempty"`
}
