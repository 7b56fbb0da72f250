package app

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bobmcallan/finsight/internal/common"
	"github.com/bobmcallan/finsight/internal/interfaces"
	"github.com/bobmcallan/finsight/internal/models"
)

// AnalyzeNews analyzes documents for one date and writes the daily
// analysis report into the processing area. An empty date means today.
// Documents that fail to read are logged and skipped, never fatal.
func (a *App) AnalyzeNews(date string) (*models.AnalyzeRun, error) {
	runID := uuid.NewString()
	if date == "" {
		date = time.Now().Format(common.DateFormat)
	}

	files, err := a.Store.DocumentsByDate(date, interfaces.AreaInput)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		files, err = a.Store.PendingDocuments()
		if err != nil {
			return nil, err
		}
	}

	run := &models.AnalyzeRun{RunID: runID, Date: date}
	if len(files) == 0 {
		a.Logger.Info().Str("run_id", runID).Str("date", date).Msg("No documents to analyze")
		return run, nil
	}

	results := a.analyzeFiles(files)

	reportContent := a.Reports.GenerateDailyAnalysis(date, results)
	reportPath, err := a.Store.SaveProcessing(reportContent, fmt.Sprintf(common.DailyReportName, date))
	if err != nil {
		return nil, err
	}
	a.exportHTML(reportContent, reportPath)

	run.FilesProcessed = len(files)
	run.Results = results
	run.ReportPath = reportPath

	a.Logger.Info().
		Str("run_id", runID).
		Str("date", date).
		Int("files", len(files)).
		Str("report", reportPath).
		Msg("Daily analysis complete")

	return run, nil
}

// ScreenStocks screens stocks from the current input documents and
// writes the screening report. When no analysis has run for the date
// yet, it runs one first so the screening draws on fresh reports.
func (a *App) ScreenStocks(date string, cfg interfaces.ScreenConfig, industryFilter string) (*models.ScreenRun, error) {
	runID := uuid.NewString()
	if date == "" {
		date = time.Now().Format(common.DateFormat)
	}

	processed, err := a.Store.DocumentsByDate(date, interfaces.AreaProcessing)
	if err != nil {
		return nil, err
	}
	if len(processed) == 0 {
		if _, err := a.AnalyzeNews(date); err != nil {
			return nil, err
		}
	}

	files, err := a.Store.PendingDocuments()
	if err != nil {
		return nil, err
	}

	run := &models.ScreenRun{RunID: runID, Date: date}
	results := a.analyzeFiles(files)
	if len(results) == 0 {
		a.Logger.Info().Str("run_id", runID).Str("date", date).Msg("No content to screen")
		return run, nil
	}

	recs := a.Screener.Screen(results, cfg)
	if industryFilter != "" {
		recs = a.Screener.FilterByIndustry(recs, industryFilter)
	}

	reportContent := a.Reports.GenerateScreeningReport(date, recs, cfg)
	reportPath, err := a.Store.SaveProcessing(reportContent, fmt.Sprintf(common.ScreeningReportName, date))
	if err != nil {
		return nil, err
	}
	a.exportHTML(reportContent, reportPath)

	run.Recommendations = recs
	run.ReportPath = reportPath

	a.Logger.Info().
		Str("run_id", runID).
		Str("date", date).
		Int("recommendations", len(recs)).
		Str("report", reportPath).
		Msg("Stock screening complete")

	return run, nil
}

// GenerateWeeklyReport analyzes the input documents in a date range and
// writes the weekly report. Empty dates default to this week Monday
// through today.
func (a *App) GenerateWeeklyReport(startDate, endDate string) (*models.WeeklyRun, error) {
	runID := uuid.NewString()

	today := time.Now()
	if endDate == "" {
		endDate = today.Format(common.DateFormat)
	}
	if startDate == "" {
		offset := (int(today.Weekday()) + 6) % 7
		startDate = today.AddDate(0, 0, -offset).Format(common.DateFormat)
	}

	files, err := a.Store.DocumentsInRange(startDate, endDate, interfaces.AreaInput)
	if err != nil {
		return nil, err
	}

	results := a.analyzeFiles(files)
	recs := a.Screener.Screen(results, a.ScreenConfig())

	reportContent := a.Reports.GenerateWeeklyReport(startDate, endDate, results, recs)

	year, week := 0, 0
	if t, err := time.Parse(common.DateFormat, startDate); err == nil {
		year, week = t.ISOWeek()
	}
	reportPath, err := a.Store.SaveProcessing(reportContent, fmt.Sprintf(common.WeeklyReportName, year, week))
	if err != nil {
		return nil, err
	}
	a.exportHTML(reportContent, reportPath)

	run := &models.WeeklyRun{
		RunID:             runID,
		StartDate:         startDate,
		EndDate:           endDate,
		FilesAnalyzed:     len(files),
		NewsCount:         len(results),
		StocksRecommended: len(recs),
		ReportPath:        reportPath,
	}

	if a.Config.Reports.ExportChart {
		chart, err := a.Reports.RenderIndustryChart(results)
		if err != nil {
			a.Logger.Warn().Err(err).Msg("Skipping industry chart")
		} else {
			chartName := fmt.Sprintf("%d-W%02d-行业热度.png", year, week)
			chartPath, err := a.Store.SaveRaw(chart, chartName)
			if err != nil {
				return nil, err
			}
			run.ChartPath = chartPath
		}
	}

	a.Logger.Info().
		Str("run_id", runID).
		Str("start", startDate).
		Str("end", endDate).
		Int("news", len(results)).
		Int("recommended", len(recs)).
		Msg("Weekly report generated")

	return run, nil
}

// GenerateMonthlyReport builds the weekly report over a whole calendar
// month and resaves it under the monthly name. Zero year or month means
// the current one.
func (a *App) GenerateMonthlyReport(year, month int) (*models.WeeklyRun, error) {
	today := time.Now()
	if year == 0 {
		year = today.Year()
	}
	if month == 0 {
		month = int(today.Month())
	}

	startDate := fmt.Sprintf("%d-%02d-01", year, month)
	lastDay := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	endDate := lastDay.Format(common.DateFormat)

	run, err := a.GenerateWeeklyReport(startDate, endDate)
	if err != nil {
		return nil, err
	}

	content, err := a.Store.ReadDocument(run.ReportPath)
	if err != nil {
		return nil, err
	}

	monthly := strings.ReplaceAll(content, "周报", "月报")
	reportPath, err := a.Store.SaveProcessing(monthly, fmt.Sprintf(common.MonthlyReportName, year, month))
	if err != nil {
		return nil, err
	}

	run.ReportPath = reportPath
	return run, nil
}

// ExtractInsights re-analyzes the processing area, keeps documents
// matching the importance filter, and writes an insights note into the
// output area. importanceFilter "all" keeps everything; empty means
// "high". subfolder defaults to "notes".
func (a *App) ExtractInsights(importanceFilter, subfolder string) (*models.InsightRun, error) {
	runID := uuid.NewString()
	if importanceFilter == "" {
		importanceFilter = models.ImportanceHigh
	}
	if subfolder == "" {
		subfolder = "notes"
	}

	listing, err := a.Store.ListAll(interfaces.AreaProcessing)
	if err != nil {
		return nil, err
	}

	var insights []models.Insight
	for _, file := range listing[interfaces.AreaProcessing] {
		content, err := a.Store.ReadDocument(file.Path)
		if err != nil {
			a.Logger.Warn().Err(err).Str("path", file.Path).Msg("Skipping unreadable document")
			continue
		}

		parsed := a.Parser.Parse(content, file.Name)
		analysis := a.Analyzer.Analyze(parsed)

		if importanceFilter != "all" && analysis.Importance != importanceFilter {
			continue
		}

		stocks := make([]string, 0, len(analysis.RelatedStocks))
		for _, stock := range analysis.RelatedStocks {
			stocks = append(stocks, stock.Code)
		}

		insights = append(insights, models.Insight{
			Source:     file.Name,
			Summary:    analysis.Summary,
			KeyPoints:  analysis.KeyPoints,
			Sentiment:  analysis.Sentiment,
			Importance: analysis.Importance,
			Industries: analysis.RelatedIndustries,
			Stocks:     stocks,
		})
	}

	run := &models.InsightRun{RunID: runID}
	if len(insights) == 0 {
		a.Logger.Info().Str("run_id", runID).Str("importance", importanceFilter).Msg("No matching insights")
		return run, nil
	}

	note := formatInsightsNote(insights, time.Now())
	date := time.Now().Format(common.DateFormat)
	notePath, err := a.Store.SaveOutput(note, fmt.Sprintf(common.InsightNoteName, date), subfolder)
	if err != nil {
		return nil, err
	}

	run.Extracted = len(insights)
	run.Insights = insights
	run.NotePath = notePath

	a.Logger.Info().
		Str("run_id", runID).
		Int("insights", len(insights)).
		Str("note", notePath).
		Msg("Insights extracted")

	return run, nil
}

// ArchiveProcessed moves every document in the processing area into its
// archive directory. Failures are logged and skipped.
func (a *App) ArchiveProcessed() ([]string, error) {
	listing, err := a.Store.ListAll(interfaces.AreaProcessing)
	if err != nil {
		return nil, err
	}

	var archived []string
	for _, file := range listing[interfaces.AreaProcessing] {
		dest, err := a.Store.Archive(file.Path)
		if err != nil {
			a.Logger.Warn().Err(err).Str("path", file.Path).Msg("Failed to archive document")
			continue
		}
		archived = append(archived, dest)
	}

	a.Logger.Info().Int("archived", len(archived)).Msg("Processing area archived")
	return archived, nil
}

// Status describes the running configuration and document inventory.
type Status struct {
	Version     string                       `json:"version"`
	Environment string                       `json:"environment"`
	Uptime      string                       `json:"uptime"`
	Documents   map[string][]models.FileInfo `json:"documents"`
}

// Status inventories all three storage areas.
func (a *App) Status() (*Status, error) {
	documents, err := a.Store.ListAll("all")
	if err != nil {
		return nil, err
	}

	return &Status{
		Version:     common.GetVersion(),
		Environment: a.Config.Environment,
		Uptime:      time.Since(a.StartupTime).Round(time.Second).String(),
		Documents:   documents,
	}, nil
}

// analyzeFiles parses and analyzes each document, skipping unreadable
// ones.
func (a *App) analyzeFiles(files []string) []models.AnalysisResult {
	var results []models.AnalysisResult
	for _, file := range files {
		content, err := a.Store.ReadDocument(file)
		if err != nil {
			a.Logger.Warn().Err(err).Str("path", file).Msg("Skipping unreadable document")
			continue
		}

		parsed := a.Parser.Parse(content, filepath.Base(file))
		results = append(results, *a.Analyzer.Analyze(parsed))
	}
	return results
}

// exportHTML writes an HTML rendering beside a markdown report when
// enabled. Export failures only log; the markdown report is the source
// of truth.
func (a *App) exportHTML(markdown, reportPath string) {
	if !a.Config.Reports.ExportHTML {
		return
	}

	html, err := a.Reports.ExportHTML(markdown)
	if err != nil {
		a.Logger.Warn().Err(err).Str("report", reportPath).Msg("Failed to export HTML")
		return
	}

	name := strings.TrimSuffix(filepath.Base(reportPath), filepath.Ext(reportPath)) + ".html"
	if _, err := a.Store.SaveProcessing(html, name); err != nil {
		a.Logger.Warn().Err(err).Str("report", reportPath).Msg("Failed to save HTML export")
	}
}
