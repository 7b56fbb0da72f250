// Package analyzer scores parsed documents: sentiment, category, key
// points, summary, stock enrichment, and importance.
package analyzer

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ternarybob/arbor"

	"github.com/bobmcallan/finsight/internal/interfaces"
	"github.com/bobmcallan/finsight/internal/models"
)

const maxKeyPoints = 5

// Sentence-terminal punctuation, newlines included.
var sentenceSplit = regexp.MustCompile(`[。！？\n]`)

// Service implements AnalyzerService
type Service struct {
	resolver interfaces.StockResolver
	logger   arbor.ILogger
}

// NewService creates a new analyzer service. resolver may be nil, in which
// case the placeholder resolver is used.
func NewService(resolver interfaces.StockResolver, logger arbor.ILogger) *Service {
	if resolver == nil {
		resolver = NewPlaceholderResolver()
	}
	return &Service{resolver: resolver, logger: logger}
}

// Analyze produces the full analysis for one parsed document. It is total:
// an empty document yields neutral sentiment, category "other", and low
// importance with no key points.
func (s *Service) Analyze(doc *models.ParsedDocument) *models.AnalysisResult {
	content := doc.Content

	sentiment, score := analyzeSentiment(content)
	category := classify(content)
	keyPoints := extractKeyPoints(content)
	summary := generateSummary(doc.Title, keyPoints)
	stocks := s.enrichStocks(doc.StocksMentioned)
	importance := assessImportance(score, len(doc.StocksMentioned), category)

	s.logger.Debug().
		Str("title", doc.Title).
		Str("sentiment", sentiment).
		Str("category", category).
		Str("importance", importance).
		Msg("Analyzed document")

	return &models.AnalysisResult{
		Summary:           summary,
		Sentiment:         sentiment,
		SentimentScore:    score,
		KeyPoints:         keyPoints,
		RelatedStocks:     stocks,
		RelatedIndustries: doc.IndustriesMentioned,
		Category:          category,
		Importance:        importance,
	}
}

// analyzeSentiment counts positive and negative keyword occurrences and
// maps the positive share onto a label. No hits at all is neutral 0.5.
func analyzeSentiment(content string) (string, float64) {
	positive := 0
	for _, kw := range positiveKeywords {
		if strings.Contains(content, kw) {
			positive++
		}
	}
	negative := 0
	for _, kw := range negativeKeywords {
		if strings.Contains(content, kw) {
			negative++
		}
	}

	total := positive + negative
	if total == 0 {
		return models.SentimentNeutral, 0.5
	}

	score := float64(positive) / float64(total)
	switch {
	case score > 0.6:
		return models.SentimentPositive, score
	case score < 0.4:
		return models.SentimentNegative, score
	default:
		return models.SentimentNeutral, score
	}
}

// classify picks the category with the strictly highest keyword count;
// ties keep the earlier category, and zero hits fall back to "other".
func classify(content string) string {
	best := models.CategoryOther
	bestScore := 0

	for _, entry := range categoryKeywords {
		score := 0
		for _, kw := range entry.keywords {
			if strings.Contains(content, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = entry.category
		}
	}
	return best
}

// extractKeyPoints splits the body into sentences, keeps fragments of
// 10-100 characters containing at least one sentiment keyword, and returns
// the top 5 by keyword count (stable on original order).
func extractKeyPoints(content string) []string {
	type scored struct {
		sentence string
		score    int
	}

	var candidates []scored
	for _, fragment := range sentenceSplit.Split(content, -1) {
		sentence := strings.TrimSpace(fragment)
		length := utf8.RuneCountInString(sentence)
		if length < 10 || length > 100 {
			continue
		}

		score := 0
		for _, kw := range positiveKeywords {
			if strings.Contains(sentence, kw) {
				score++
			}
		}
		for _, kw := range negativeKeywords {
			if strings.Contains(sentence, kw) {
				score++
			}
		}
		if score > 0 {
			candidates = append(candidates, scored{sentence, score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	n := len(candidates)
	if n > maxKeyPoints {
		n = maxKeyPoints
	}
	points := make([]string, 0, n)
	for _, c := range candidates[:n] {
		points = append(points, c.sentence)
	}
	return points
}

// generateSummary joins the title with up to three key points.
func generateSummary(title string, keyPoints []string) string {
	if len(keyPoints) == 0 {
		return title
	}
	n := len(keyPoints)
	if n > 3 {
		n = 3
	}
	return title + "。" + strings.Join(keyPoints[:n], "；") + "。"
}

// enrichStocks resolves each mentioned code to a stock reference.
func (s *Service) enrichStocks(codes []string) []models.StockRef {
	if len(codes) == 0 {
		return nil
	}
	stocks := make([]models.StockRef, 0, len(codes))
	for _, code := range codes {
		stocks = append(stocks, s.resolver.Resolve(code))
	}
	return stocks
}

// assessImportance accumulates points for sentiment extremity, stock
// coverage, and high-weight categories: >=4 high, >=2 medium, else low.
func assessImportance(sentimentScore float64, stockCount int, category string) string {
	score := 0

	if sentimentScore > 0.8 || sentimentScore < 0.2 {
		score += 2
	} else if sentimentScore > 0.7 || sentimentScore < 0.3 {
		score++
	}

	if stockCount >= 3 {
		score += 2
	} else if stockCount >= 1 {
		score++
	}

	if highWeightCategories[category] {
		score++
	}

	switch {
	case score >= 4:
		return models.ImportanceHigh
	case score >= 2:
		return models.ImportanceMedium
	default:
		return models.ImportanceLow
	}
}

// Ensure Service implements AnalyzerService
var _ interfaces.AnalyzerService = (*Service)(nil)
