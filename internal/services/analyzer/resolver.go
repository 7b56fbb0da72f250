package analyzer

import (
	"strings"

	"github.com/bobmcallan/finsight/internal/interfaces"
	"github.com/bobmcallan/finsight/internal/models"
)

// PlaceholderResolver derives market from the code's leading digit and
// fabricates a display name. A real data source can replace it behind the
// StockResolver interface; consumers must not assume the name is accurate.
type PlaceholderResolver struct{}

// NewPlaceholderResolver creates the default resolver.
func NewPlaceholderResolver() *PlaceholderResolver {
	return &PlaceholderResolver{}
}

// Resolve maps a stock code to a market and placeholder name.
func (r *PlaceholderResolver) Resolve(code string) models.StockRef {
	return models.StockRef{
		Code:   code,
		Market: marketForCode(code),
		Name:   "股票" + code,
	}
}

// marketForCode applies the A-share convention: 6xxxxx Shanghai, 0xxxxx
// and 3xxxxx Shenzhen, anything else Beijing.
func marketForCode(code string) string {
	switch {
	case strings.HasPrefix(code, "6"):
		return models.MarketShanghai
	case strings.HasPrefix(code, "0"), strings.HasPrefix(code, "3"):
		return models.MarketShenzhen
	default:
		return models.MarketBeijing
	}
}

// Ensure PlaceholderResolver implements StockResolver
var _ interfaces.StockResolver = (*PlaceholderResolver)(nil)
