package analyzer

import (
	"strings"
	"testing"

	"github.com/bobmcallan/finsight/internal/common"
	"github.com/bobmcallan/finsight/internal/models"
)

func newTestService() *Service {
	return NewService(nil, common.NewTestLogger())
}

func TestAnalyzeSinglePositiveKeyword(t *testing.T) {
	result := newTestService().Analyze(&models.ParsedDocument{
		Title:   "测试",
		Content: "重大利好",
	})

	if result.Sentiment != models.SentimentPositive {
		t.Errorf("sentiment = %q, want positive", result.Sentiment)
	}
	if result.SentimentScore != 1.0 {
		t.Errorf("score = %v, want 1.0", result.SentimentScore)
	}
}

func TestAnalyzeEmptyDocument(t *testing.T) {
	result := newTestService().Analyze(&models.ParsedDocument{})

	if result.Sentiment != models.SentimentNeutral {
		t.Errorf("sentiment = %q, want neutral", result.Sentiment)
	}
	if result.SentimentScore != 0.5 {
		t.Errorf("score = %v, want 0.5", result.SentimentScore)
	}
	if result.Category != models.CategoryOther {
		t.Errorf("category = %q, want other", result.Category)
	}
	if result.Importance != models.ImportanceLow {
		t.Errorf("importance = %q, want low", result.Importance)
	}
	if len(result.KeyPoints) != 0 {
		t.Errorf("key points = %v, want none", result.KeyPoints)
	}
	if result.Summary != "" {
		t.Errorf("summary = %q, want empty title passthrough", result.Summary)
	}
}

func TestAnalyzeNegativeSentiment(t *testing.T) {
	result := newTestService().Analyze(&models.ParsedDocument{
		Title:   "风险提示",
		Content: "市场暴跌，多只个股存在退市风险。",
	})

	if result.Sentiment != models.SentimentNegative {
		t.Errorf("sentiment = %q, want negative", result.Sentiment)
	}
	if result.SentimentScore != 0.0 {
		t.Errorf("score = %v, want 0.0", result.SentimentScore)
	}
}

func TestAnalyzeMixedSentimentIsNeutral(t *testing.T) {
	// one positive hit, one negative hit: share 0.5 stays neutral
	_, score := analyzeSentiment("利好与利空并存")
	if score != 0.5 {
		t.Errorf("score = %v, want 0.5", score)
	}
}

func TestClassifyTieKeepsEarlierCategory(t *testing.T) {
	// one hit each for industry_trend and company_announcement
	category := classify("某行业发布公告")
	if category != models.CategoryIndustryTrend {
		t.Errorf("category = %q, want industry_trend on tie", category)
	}
}

func TestClassifyNoHitsFallsBackToOther(t *testing.T) {
	if got := classify("完全无关的文字"); got != models.CategoryOther {
		t.Errorf("category = %q, want other", got)
	}
}

func TestExtractKeyPointsLengthBounds(t *testing.T) {
	short := "利好来了"                                  // under 10 runes, dropped
	ok := "新能源板块今日持续上涨，市场情绪明显回暖"                    // in range, has keywords
	long := strings.Repeat("上涨", 51)                // 102 runes, dropped
	content := short + "。" + ok + "。" + long + "。"

	points := extractKeyPoints(content)
	if len(points) != 1 || points[0] != ok {
		t.Errorf("key points = %v, want only %q", points, ok)
	}
}

func TestExtractKeyPointsRankedByKeywordCount(t *testing.T) {
	one := "证券市场总体支持力度仍然不减"         // 1 keyword (支持)
	two := "板块普遍上涨，盈利能力持续增长"        // 3 keywords (上涨/盈利/增长)
	content := one + "。" + two + "。"

	points := extractKeyPoints(content)
	if len(points) != 2 {
		t.Fatalf("key points = %v, want 2", points)
	}
	if points[0] != two {
		t.Errorf("first point = %q, want highest keyword count first", points[0])
	}
}

func TestGenerateSummaryJoinsTopPoints(t *testing.T) {
	got := generateSummary("标题", []string{"一", "二", "三", "四"})
	want := "标题。一；二；三。"
	if got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}

func TestAnalyzeHighImportance(t *testing.T) {
	// extreme sentiment (+2), three stocks (+2)
	result := newTestService().Analyze(&models.ParsedDocument{
		Title:           "重磅",
		Content:         "利好持续，行情上涨，业绩增长。",
		StocksMentioned: []string{"600000", "000001", "300750"},
	})

	if result.Importance != models.ImportanceHigh {
		t.Errorf("importance = %q, want high", result.Importance)
	}
	if len(result.RelatedStocks) != 3 {
		t.Fatalf("related stocks = %d, want 3", len(result.RelatedStocks))
	}
}

func TestPlaceholderResolver(t *testing.T) {
	resolver := NewPlaceholderResolver()

	cases := []struct {
		code   string
		market string
	}{
		{"600000", models.MarketShanghai},
		{"000001", models.MarketShenzhen},
		{"300750", models.MarketShenzhen},
		{"830799", models.MarketBeijing},
	}
	for _, tc := range cases {
		ref := resolver.Resolve(tc.code)
		if ref.Market != tc.market {
			t.Errorf("Resolve(%s).Market = %q, want %q", tc.code, ref.Market, tc.market)
		}
		if ref.Name != "股票"+tc.code {
			t.Errorf("Resolve(%s).Name = %q", tc.code, ref.Name)
		}
	}
}
