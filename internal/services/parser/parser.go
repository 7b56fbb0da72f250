// Package parser turns raw financial documents into structured records.
package parser

import (
	"regexp"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/bobmcallan/finsight/internal/interfaces"
	"github.com/bobmcallan/finsight/internal/models"
)

var (
	// A-share stock codes: optional exchange prefix and/or bracket, a
	// 6-digit code starting with 0, 3 or 6, optional closing bracket.
	stockCodePattern = regexp.MustCompile(`[(（]?(?:SH|SZ|BJ|sh|sz|bj)?[.:]?([036][0-9]{5})[)）]?`)

	frontMatterPattern = regexp.MustCompile(`(?s)^---\s*\n(.*?)\n---\s*\n`)
	titlePattern       = regexp.MustCompile(`(?m)^#\s+(.+)$`)
	filenameDate       = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
)

// industryVocabulary is the fixed industry term list. Matches are reported
// in vocabulary order so output ordering is stable regardless of where a
// term appears in the document.
var industryVocabulary = []string{
	"新能源", "光伏", "锂电", "储能",
	"半导体", "芯片", "集成电路",
	"人工智能", "AI", "大模型", "机器人",
	"医药", "医疗", "生物", "创新药",
	"消费", "白酒", "食品", "零售",
	"金融", "银行", "保险", "券商",
	"地产", "房地产", "建材",
	"军工", "国防", "航空航天",
	"汽车", "新能源车", "电动车",
	"通信", "5G", "物联网",
}

// Service implements ParserService
type Service struct {
	logger arbor.ILogger
}

// NewService creates a new parser service
func NewService(logger arbor.ILogger) *Service {
	return &Service{logger: logger}
}

// Parse extracts structure from raw document text. It is total: malformed
// front matter is treated as absent and missing fields degrade to zero
// values.
func (s *Service) Parse(raw string, filenameHint string) *models.ParsedDocument {
	metadata := parseFrontMatter(raw)
	body := stripFrontMatter(raw)

	title := extractTitle(body)
	if title == "" {
		title = filenameHint
	}

	date := metadataValue(metadata, "date")
	if date == "" {
		date = extractDateFromFilename(filenameHint)
	}

	doc := &models.ParsedDocument{
		Title:               title,
		Date:                date,
		Source:              metadataValue(metadata, "source"),
		Category:            metadataValue(metadata, "category"),
		Content:             body,
		Metadata:            metadata,
		StocksMentioned:     extractStockCodes(body),
		IndustriesMentioned: extractIndustries(body),
	}

	s.logger.Debug().
		Str("title", doc.Title).
		Str("date", doc.Date).
		Int("stocks", len(doc.StocksMentioned)).
		Int("industries", len(doc.IndustriesMentioned)).
		Msg("Parsed document")

	return doc
}

// IndustryVocabulary returns a copy of the fixed industry term list.
func IndustryVocabulary() []string {
	out := make([]string, len(industryVocabulary))
	copy(out, industryVocabulary)
	return out
}

// parseFrontMatter extracts the leading --- delimited block into ordered
// key/value entries. Lines without a colon are skipped; a duplicate key
// updates the existing entry in place.
func parseFrontMatter(raw string) []models.MetadataEntry {
	m := frontMatterPattern.FindStringSubmatch(raw)
	if m == nil {
		return nil
	}

	var entries []models.MetadataEntry
	for _, line := range strings.Split(m[1], "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		updated := false
		for i := range entries {
			if entries[i].Key == key {
				entries[i].Value = value
				updated = true
				break
			}
		}
		if !updated {
			entries = append(entries, models.MetadataEntry{Key: key, Value: value})
		}
	}
	return entries
}

func stripFrontMatter(raw string) string {
	return frontMatterPattern.ReplaceAllString(raw, "")
}

// extractTitle returns the first level-1 heading, or "".
func extractTitle(body string) string {
	m := titlePattern.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// extractDateFromFilename returns a leading YYYY-MM-DD prefix, or "".
func extractDateFromFilename(filename string) string {
	return filenameDate.FindString(filename)
}

// extractStockCodes collects mentioned codes, de-duplicated in first-seen
// order.
func extractStockCodes(body string) []string {
	matches := stockCodePattern.FindAllStringSubmatch(body, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	var codes []string
	for _, m := range matches {
		code := m[1]
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}
	return codes
}

// extractIndustries reports vocabulary terms present anywhere in the body,
// in vocabulary order.
func extractIndustries(body string) []string {
	var mentioned []string
	for _, term := range industryVocabulary {
		if strings.Contains(body, term) {
			mentioned = append(mentioned, term)
		}
	}
	return mentioned
}

func metadataValue(entries []models.MetadataEntry, key string) string {
	for _, e := range entries {
		if e.Key == key {
			return e.Value
		}
	}
	return ""
}

// Ensure Service implements ParserService
var _ interfaces.ParserService = (*Service)(nil)
