package models

// Recommendation tiers derived from the 0-100 composite score.
const (
	LevelStrong   = "strong"
	LevelModerate = "moderate"
	LevelWatch    = "watch"
)

// StockRecommendation is the screener's verdict for one qualifying stock.
// Every recommendation already satisfies the configured minimum mention
// count and sentiment threshold.
type StockRecommendation struct {
	Code              string   `json:"code"`
	Name              string   `json:"name"`
	Market            string   `json:"market"`
	MentionCount      int      `json:"mention_count"`
	AvgSentiment      float64  `json:"avg_sentiment"` // in [0,1]
	RelatedIndustries []string `json:"related_industries,omitempty"`
	KeyNews           []string `json:"key_news,omitempty"` // at most 3 summaries
	Score             float64  `json:"recommendation_score"` // 0-100, 2 decimals
	Level             string   `json:"recommendation_level"`
}
