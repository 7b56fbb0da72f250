// Package screener aggregates analysis results across documents and
// scores stocks for recommendation.
package screener

import (
	"math"
	"sort"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/bobmcallan/finsight/internal/interfaces"
	"github.com/bobmcallan/finsight/internal/models"
)

const maxKeyNews = 3

// Score component caps: mentions and industry bonus top out at 30 points
// each, sentiment at 40, keeping the composite inside [0,100].
const (
	mentionPointsPer  = 10
	mentionCap        = 30
	sentimentWeight   = 40
	industryPointsPer = 10
	industryCap       = 30
)

// Tier thresholds on the composite score.
const (
	strongThreshold   = 70
	moderateThreshold = 50
)

// aggregate accumulates per-stock statistics while folding a batch.
type aggregate struct {
	code            string
	name            string
	market          string
	mentionCount    int
	sentimentScores []float64
	industries      []string // first-seen order across the batch
	industrySeen    map[string]bool
	newsSummaries   []string
}

// Service implements ScreenerService
type Service struct {
	logger arbor.ILogger
}

// NewService creates a new screener service
func NewService(logger arbor.ILogger) *Service {
	return &Service{logger: logger}
}

// Screen folds all results into per-code aggregates, applies the hard
// mention-count and sentiment filters, and returns scored recommendations
// sorted descending (ties keep aggregation order). cfg is read only for
// this call; concurrent screens with different thresholds are safe.
func (s *Service) Screen(results []models.AnalysisResult, cfg interfaces.ScreenConfig) []models.StockRecommendation {
	aggregates := s.aggregate(results)

	recommendations := make([]models.StockRecommendation, 0, len(aggregates))
	for _, agg := range aggregates {
		if rec, ok := s.evaluate(agg, cfg); ok {
			recommendations = append(recommendations, rec)
		}
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	s.logger.Debug().
		Int("results", len(results)).
		Int("stocks", len(aggregates)).
		Int("recommendations", len(recommendations)).
		Msg("Screening complete")

	return recommendations
}

// aggregate folds results in order, keying stocks by code. Name and market
// come from the first reference that carries them.
func (s *Service) aggregate(results []models.AnalysisResult) []*aggregate {
	index := make(map[string]*aggregate)
	var ordered []*aggregate

	for _, result := range results {
		for _, stock := range result.RelatedStocks {
			agg, ok := index[stock.Code]
			if !ok {
				agg = &aggregate{code: stock.Code, industrySeen: make(map[string]bool)}
				index[stock.Code] = agg
				ordered = append(ordered, agg)
			}

			if agg.name == "" {
				agg.name = stock.Name
			}
			if agg.market == "" {
				agg.market = stock.Market
			}
			agg.mentionCount++
			agg.sentimentScores = append(agg.sentimentScores, result.SentimentScore)
			for _, ind := range result.RelatedIndustries {
				if !agg.industrySeen[ind] {
					agg.industrySeen[ind] = true
					agg.industries = append(agg.industries, ind)
				}
			}
			agg.newsSummaries = append(agg.newsSummaries, result.Summary)
		}
	}

	return ordered
}

// evaluate applies the hard filters and builds a recommendation. Both
// filters are preconditions: a stock below either threshold is excluded
// outright, not just ranked lower.
func (s *Service) evaluate(agg *aggregate, cfg interfaces.ScreenConfig) (models.StockRecommendation, bool) {
	if agg.mentionCount < cfg.MinMentionCount {
		return models.StockRecommendation{}, false
	}

	sum := 0.0
	for _, v := range agg.sentimentScores {
		sum += v
	}
	avgSentiment := sum / float64(len(agg.sentimentScores))

	if avgSentiment < cfg.SentimentThreshold {
		return models.StockRecommendation{}, false
	}

	score := calculateScore(agg.mentionCount, avgSentiment, agg.industries, cfg.FocusIndustries)

	keyNews := agg.newsSummaries
	if len(keyNews) > maxKeyNews {
		keyNews = keyNews[:maxKeyNews]
	}

	return models.StockRecommendation{
		Code:              agg.code,
		Name:              agg.name,
		Market:            agg.market,
		MentionCount:      agg.mentionCount,
		AvgSentiment:      avgSentiment,
		RelatedIndustries: agg.industries,
		KeyNews:           keyNews,
		Score:             score,
		Level:             recommendationLevel(score),
	}, true
}

// calculateScore sums the capped mention, sentiment, and focus-industry
// components and rounds to 2 decimals. Range is [0,100] by construction.
func calculateScore(mentionCount int, avgSentiment float64, industries, focusIndustries []string) float64 {
	mentionScore := float64(mentionCount * mentionPointsPer)
	if mentionScore > mentionCap {
		mentionScore = mentionCap
	}

	sentimentScore := avgSentiment * sentimentWeight

	focusMatches := 0
	for _, ind := range industries {
		for _, focus := range focusIndustries {
			if strings.Contains(ind, focus) {
				focusMatches++
				break
			}
		}
	}
	industryScore := float64(focusMatches * industryPointsPer)
	if industryScore > industryCap {
		industryScore = industryCap
	}

	total := mentionScore + sentimentScore + industryScore
	return math.Round(total*100) / 100
}

func recommendationLevel(score float64) string {
	switch {
	case score >= strongThreshold:
		return models.LevelStrong
	case score >= moderateThreshold:
		return models.LevelModerate
	default:
		return models.LevelWatch
	}
}

// FilterByIndustry keeps recommendations where any related industry
// contains the given substring.
func (s *Service) FilterByIndustry(recs []models.StockRecommendation, industry string) []models.StockRecommendation {
	var filtered []models.StockRecommendation
	for _, rec := range recs {
		for _, ind := range rec.RelatedIndustries {
			if strings.Contains(ind, industry) {
				filtered = append(filtered, rec)
				break
			}
		}
	}
	return filtered
}

// TopPicks returns the first n recommendations.
func (s *Service) TopPicks(recs []models.StockRecommendation, n int) []models.StockRecommendation {
	if n < 0 {
		n = 0
	}
	if len(recs) < n {
		n = len(recs)
	}
	return recs[:n]
}

// Ensure Service implements ScreenerService
var _ interfaces.ScreenerService = (*Service)(nil)
