package report

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/bobmcallan/finsight/internal/models"
)

// RenderIndustryChart renders a bar chart of industry mention counts as PNG.
// Returns an error when the batch has no industry data to plot.
func (s *Service) RenderIndustryChart(results []models.AnalysisResult) ([]byte, error) {
	counts := make(map[string]int)
	for _, result := range results {
		for _, ind := range result.RelatedIndustries {
			counts[ind]++
		}
	}

	industries := hotIndustries(results)
	if len(industries) == 0 {
		return nil, fmt.Errorf("no industry data to chart")
	}

	bars := make([]chart.Value, 0, len(industries))
	for _, ind := range industries {
		bars = append(bars, chart.Value{
			Label: ind,
			Value: float64(counts[ind]),
		})
	}

	graph := chart.BarChart{
		Title:    "行业热度",
		Width:    720,
		Height:   420,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render industry chart: %w", err)
	}

	s.logger.Debug().Int("industries", len(bars)).Msg("Rendered industry chart")
	return buf.Bytes(), nil
}
