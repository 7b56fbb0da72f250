package screener

import (
	"math"
	"testing"

	"github.com/bobmcallan/finsight/internal/common"
	"github.com/bobmcallan/finsight/internal/interfaces"
	"github.com/bobmcallan/finsight/internal/models"
)

func newTestService() *Service {
	return NewService(common.NewTestLogger())
}

func defaultConfig() interfaces.ScreenConfig {
	return interfaces.ScreenConfig{
		MinMentionCount:    2,
		SentimentThreshold: 0.6,
	}
}

func result(score float64, stocks []models.StockRef, industries []string, summary string) models.AnalysisResult {
	return models.AnalysisResult{
		Summary:           summary,
		SentimentScore:    score,
		RelatedStocks:     stocks,
		RelatedIndustries: industries,
	}
}

func stock(code string) []models.StockRef {
	return []models.StockRef{{Code: code, Name: "股票" + code, Market: models.MarketShanghai}}
}

func TestScreenAggregatesMentions(t *testing.T) {
	results := []models.AnalysisResult{
		result(0.8, stock("600000"), []string{"金融"}, "新闻一"),
		result(0.9, stock("600000"), []string{"银行"}, "新闻二"),
		result(0.9, stock("000001"), nil, "新闻三"), // single mention, excluded
	}

	recs := newTestService().Screen(results, defaultConfig())
	if len(recs) != 1 {
		t.Fatalf("recommendations = %d, want 1", len(recs))
	}

	rec := recs[0]
	if rec.Code != "600000" {
		t.Errorf("code = %q", rec.Code)
	}
	if rec.MentionCount != 2 {
		t.Errorf("mention count = %d, want 2", rec.MentionCount)
	}
	if math.Abs(rec.AvgSentiment-0.85) > 1e-9 {
		t.Errorf("avg sentiment = %v, want 0.85", rec.AvgSentiment)
	}
	// mentions 20 + sentiment 34, no focus industries
	if rec.Score != 54 {
		t.Errorf("score = %v, want 54", rec.Score)
	}
	if rec.Level != models.LevelModerate {
		t.Errorf("level = %q, want moderate", rec.Level)
	}
	if len(rec.KeyNews) != 2 || rec.KeyNews[0] != "新闻一" {
		t.Errorf("key news = %v", rec.KeyNews)
	}
}

func TestScreenSentimentFilter(t *testing.T) {
	results := []models.AnalysisResult{
		result(0.5, stock("600000"), nil, ""),
		result(0.5, stock("600000"), nil, ""),
	}

	recs := newTestService().Screen(results, defaultConfig())
	if len(recs) != 0 {
		t.Errorf("recommendations = %v, want none below sentiment threshold", recs)
	}
}

func TestScreenBoundaryValuesPass(t *testing.T) {
	// exactly at both thresholds qualifies
	results := []models.AnalysisResult{
		result(0.6, stock("600000"), nil, ""),
		result(0.6, stock("600000"), nil, ""),
	}

	recs := newTestService().Screen(results, defaultConfig())
	if len(recs) != 1 {
		t.Fatalf("recommendations = %d, want 1 at exact thresholds", len(recs))
	}
}

func TestScreenMentionCapAndFocusBonus(t *testing.T) {
	cfg := defaultConfig()
	cfg.FocusIndustries = []string{"新能源", "半导体"}

	var results []models.AnalysisResult
	for i := 0; i < 5; i++ {
		results = append(results, result(1.0, stock("600000"), []string{"新能源", "光伏"}, ""))
	}

	recs := newTestService().Screen(results, cfg)
	if len(recs) != 1 {
		t.Fatalf("recommendations = %d, want 1", len(recs))
	}

	// mentions capped at 30, sentiment 40, one focus match 10
	if recs[0].Score != 80 {
		t.Errorf("score = %v, want 80", recs[0].Score)
	}
	if recs[0].Level != models.LevelStrong {
		t.Errorf("level = %q, want strong", recs[0].Level)
	}
}

func TestScreenSortedByScoreDescending(t *testing.T) {
	results := []models.AnalysisResult{
		result(0.7, stock("600000"), nil, ""),
		result(0.7, stock("600000"), nil, ""),
		result(0.9, stock("000002"), nil, ""),
		result(0.9, stock("000002"), nil, ""),
	}

	recs := newTestService().Screen(results, defaultConfig())
	if len(recs) != 2 {
		t.Fatalf("recommendations = %d, want 2", len(recs))
	}
	if recs[0].Code != "000002" {
		t.Errorf("first = %q, want higher scored 000002", recs[0].Code)
	}
}

func TestScreenTieKeepsAggregationOrder(t *testing.T) {
	results := []models.AnalysisResult{
		result(0.8, stock("600000"), nil, ""),
		result(0.8, stock("000002"), nil, ""),
		result(0.8, stock("600000"), nil, ""),
		result(0.8, stock("000002"), nil, ""),
	}

	recs := newTestService().Screen(results, defaultConfig())
	if len(recs) != 2 {
		t.Fatalf("recommendations = %d, want 2", len(recs))
	}
	if recs[0].Code != "600000" || recs[1].Code != "000002" {
		t.Errorf("order = %s, %s; want first-seen order on tie", recs[0].Code, recs[1].Code)
	}
}

func TestScreenIndustriesFirstSeenDeduped(t *testing.T) {
	results := []models.AnalysisResult{
		result(0.8, stock("600000"), []string{"金融", "银行"}, ""),
		result(0.8, stock("600000"), []string{"银行", "保险"}, ""),
	}

	recs := newTestService().Screen(results, defaultConfig())
	if len(recs) != 1 {
		t.Fatalf("recommendations = %d, want 1", len(recs))
	}

	want := []string{"金融", "银行", "保险"}
	got := recs[0].RelatedIndustries
	if len(got) != len(want) {
		t.Fatalf("industries = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("industries = %v, want %v", got, want)
		}
	}
}

func TestFilterByIndustrySubstring(t *testing.T) {
	recs := []models.StockRecommendation{
		{Code: "600000", RelatedIndustries: []string{"新能源车"}},
		{Code: "000002", RelatedIndustries: []string{"金融"}},
	}

	filtered := newTestService().FilterByIndustry(recs, "新能源")
	if len(filtered) != 1 || filtered[0].Code != "600000" {
		t.Errorf("filtered = %v, want 600000 only", filtered)
	}
}

func TestTopPicks(t *testing.T) {
	recs := []models.StockRecommendation{{Code: "a"}, {Code: "b"}, {Code: "c"}}

	svc := newTestService()
	if got := svc.TopPicks(recs, 2); len(got) != 2 {
		t.Errorf("top 2 = %v", got)
	}
	if got := svc.TopPicks(recs, 10); len(got) != 3 {
		t.Errorf("top 10 of 3 = %v", got)
	}
	if got := svc.TopPicks(recs, 0); len(got) != 0 {
		t.Errorf("top 0 = %v", got)
	}
}

func TestCalculateScoreMonotonicInMentions(t *testing.T) {
	low := calculateScore(1, 0.7, nil, nil)
	high := calculateScore(2, 0.7, nil, nil)
	if high <= low {
		t.Errorf("score(2 mentions)=%v not above score(1 mention)=%v", high, low)
	}
}
