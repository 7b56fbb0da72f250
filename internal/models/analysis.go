package models

// Sentiment labels for a single document.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Importance tiers for a single document.
const (
	ImportanceHigh   = "high"
	ImportanceMedium = "medium"
	ImportanceLow    = "low"
)

// News categories. Keyword vocabularies live in the analyzer; classification
// falls back to CategoryOther when no category keyword is present.
const (
	CategoryMacroPolicy   = "macro_policy"
	CategoryIndustryTrend = "industry_trend"
	CategoryAnnouncement  = "company_announcement"
	CategoryMarketData    = "market_data"
	CategoryExpertOpinion = "expert_opinion"
	CategoryInternational = "international"
	CategoryOther         = "other"
)

// Markets derived from the leading digit of an A-share stock code.
const (
	MarketShanghai = "SSE"
	MarketShenzhen = "SZSE"
	MarketBeijing  = "BSE"
)

// StockRef is an enriched reference to a mentioned stock. The display name
// is a placeholder until a real resolver is plugged in; consumers must not
// assume it is accurate.
type StockRef struct {
	Code   string `json:"code"`
	Market string `json:"market"`
	Name   string `json:"name"`
}

// AnalysisResult is the per-document output of the analyzer.
// Immutable once produced; consumed by the screener and the report service.
type AnalysisResult struct {
	Summary           string     `json:"summary"`
	Sentiment         string     `json:"sentiment"`
	SentimentScore    float64    `json:"sentiment_score"` // always in [0,1]
	KeyPoints         []string   `json:"key_points,omitempty"`
	RelatedStocks     []StockRef `json:"related_stocks,omitempty"`
	RelatedIndustries []string   `json:"related_industries,omitempty"`
	Category          string     `json:"category"`
	Importance        string     `json:"importance"`
}
