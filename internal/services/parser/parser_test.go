package parser

import (
	"reflect"
	"testing"

	"github.com/bobmcallan/finsight/internal/common"
)

func newTestService() *Service {
	return NewService(common.NewTestLogger())
}

func TestParseFullDocument(t *testing.T) {
	raw := `---
date: 2025-03-10
source: 財经快讯
category: news
---
# 新能源板块大涨

宁德时代(SZ.300750)与比亚迪(002594)领涨，半导体板块同步走强。
尾盘300750再度冲高。
`

	doc := newTestService().Parse(raw, "2025-03-10-news.md")

	if doc.Title != "新能源板块大涨" {
		t.Errorf("title = %q", doc.Title)
	}
	if doc.Date != "2025-03-10" {
		t.Errorf("date = %q", doc.Date)
	}
	if doc.Source != "財经快讯" {
		t.Errorf("source = %q", doc.Source)
	}
	if doc.Category != "news" {
		t.Errorf("category = %q", doc.Category)
	}

	// de-duplicated, first-seen order
	wantStocks := []string{"300750", "002594"}
	if !reflect.DeepEqual(doc.StocksMentioned, wantStocks) {
		t.Errorf("stocks = %v, want %v", doc.StocksMentioned, wantStocks)
	}

	// vocabulary order, not appearance order
	wantIndustries := []string{"新能源", "半导体"}
	if !reflect.DeepEqual(doc.IndustriesMentioned, wantIndustries) {
		t.Errorf("industries = %v, want %v", doc.IndustriesMentioned, wantIndustries)
	}
}

func TestParseTitleFallbackToFilename(t *testing.T) {
	doc := newTestService().Parse("没有标题的内容。", "2025-01-02-市场速递.md")

	if doc.Title != "2025-01-02-市场速递.md" {
		t.Errorf("title = %q", doc.Title)
	}
	if doc.Date != "2025-01-02" {
		t.Errorf("date = %q", doc.Date)
	}
}

func TestParseFrontMatterDateWinsOverFilename(t *testing.T) {
	raw := "---\ndate: 2025-05-05\n---\n# 标题\n"
	doc := newTestService().Parse(raw, "2025-01-01-other.md")

	if doc.Date != "2025-05-05" {
		t.Errorf("date = %q, want front matter value", doc.Date)
	}
}

func TestParseMalformedFrontMatterIgnored(t *testing.T) {
	raw := "---\nno closing delimiter\n# 实际标题\n"
	doc := newTestService().Parse(raw, "hint.md")

	if doc.Title != "实际标题" {
		t.Errorf("title = %q", doc.Title)
	}
	if len(doc.Metadata) != 0 {
		t.Errorf("metadata = %v, want empty", doc.Metadata)
	}
}

func TestParseMetadataDuplicateKeyUpdatesInPlace(t *testing.T) {
	raw := "---\nsource: first\ntag: a\nsource: second\n---\nbody\n"
	doc := newTestService().Parse(raw, "")

	if len(doc.Metadata) != 2 {
		t.Fatalf("metadata entries = %d, want 2", len(doc.Metadata))
	}
	if doc.Metadata[0].Key != "source" || doc.Metadata[0].Value != "second" {
		t.Errorf("first entry = %+v, want source=second", doc.Metadata[0])
	}
	if doc.Source != "second" {
		t.Errorf("source = %q", doc.Source)
	}
}

func TestParseMetadataValueWithColon(t *testing.T) {
	raw := "---\nurl: https://example.com/a\n---\nbody\n"
	doc := newTestService().Parse(raw, "")

	if got := doc.MetadataValue("url"); got != "https://example.com/a" {
		t.Errorf("url = %q", got)
	}
}

func TestParseEmptyInput(t *testing.T) {
	doc := newTestService().Parse("", "")

	if doc.Title != "" || doc.Date != "" {
		t.Errorf("expected zero values, got title=%q date=%q", doc.Title, doc.Date)
	}
	if len(doc.StocksMentioned) != 0 || len(doc.IndustriesMentioned) != 0 {
		t.Errorf("expected no extractions, got %v / %v", doc.StocksMentioned, doc.IndustriesMentioned)
	}
}

func TestExtractStockCodesRejectsInvalidPrefix(t *testing.T) {
	// codes must start with 0, 3 or 6
	codes := extractStockCodes("持有100001与600000以及900001。")

	if !reflect.DeepEqual(codes, []string{"600000"}) {
		t.Errorf("codes = %v, want [600000]", codes)
	}
}
