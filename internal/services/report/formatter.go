package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bobmcallan/finsight/internal/models"
)

var sentimentEmoji = map[string]string{
	models.SentimentPositive: "📈",
	models.SentimentNegative: "📉",
	models.SentimentNeutral:  "➖",
}

var levelEmoji = map[string]string{
	models.LevelStrong:   "⭐⭐⭐",
	models.LevelModerate: "⭐⭐",
	models.LevelWatch:    "⭐",
}

// formatNewsSummary lists the first five results as a numbered digest.
func formatNewsSummary(results []models.AnalysisResult) string {
	if len(results) == 0 {
		return "今日暂无重要财经新闻。"
	}

	var sb strings.Builder
	for i, result := range results {
		if i >= 5 {
			break
		}
		emoji, ok := sentimentEmoji[result.Sentiment]
		if !ok {
			emoji = "➖"
		}
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%d. %s %s", i+1, emoji, result.Summary)
	}
	return sb.String()
}

// overallSentiment labels the batch by average sentiment score.
func overallSentiment(results []models.AnalysisResult) string {
	if len(results) == 0 {
		return "中性"
	}

	var sum float64
	for _, result := range results {
		sum += result.SentimentScore
	}
	avg := sum / float64(len(results))

	switch {
	case avg > 0.6:
		return "偏乐观 📈"
	case avg < 0.4:
		return "偏悲观 📉"
	default:
		return "中性 ➖"
	}
}

// hotIndustries returns up to five industries ranked by mention count.
// Ties keep first-seen order.
func hotIndustries(results []models.AnalysisResult) []string {
	var order []string
	counts := make(map[string]int)
	for _, result := range results {
		for _, ind := range result.RelatedIndustries {
			if _, seen := counts[ind]; !seen {
				order = append(order, ind)
			}
			counts[ind]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > 5 {
		order = order[:5]
	}
	return order
}

// formatStockHighlights tabulates the most mentioned stocks of the batch
// with how many of those mentions carried positive sentiment.
func formatStockHighlights(results []models.AnalysisResult) string {
	type stockTally struct {
		info     models.StockRef
		count    int
		positive int
	}

	var order []string
	tallies := make(map[string]*stockTally)
	for _, result := range results {
		for _, stock := range result.RelatedStocks {
			tally, seen := tallies[stock.Code]
			if !seen {
				tally = &stockTally{info: stock}
				tallies[stock.Code] = tally
				order = append(order, stock.Code)
			}
			tally.count++
			if result.Sentiment == models.SentimentPositive {
				tally.positive++
			}
		}
	}

	if len(order) == 0 {
		return "今日暂无明显的股票热点。"
	}

	sort.SliceStable(order, func(i, j int) bool {
		return tallies[order[i]].count > tallies[order[j]].count
	})
	if len(order) > 5 {
		order = order[:5]
	}

	var sb strings.Builder
	sb.WriteString("| 代码 | 名称 | 提及次数 | 积极消息 |\n")
	sb.WriteString("|------|------|----------|----------|")
	for _, code := range order {
		tally := tallies[code]
		name := tally.info.Name
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(&sb, "\n| %s | %s | %d | %d |", code, name, tally.count, tally.positive)
	}
	return sb.String()
}

// investmentAdvice derives one-line advice from the overall sentiment label
// plus a pointer at the top three industries.
func investmentAdvice(sentiment string, industries []string) string {
	var advice []string

	switch {
	case strings.Contains(sentiment, "乐观"):
		advice = append(advice, "市场情绪偏暖，可适当关注热点板块机会。")
	case strings.Contains(sentiment, "悲观"):
		advice = append(advice, "市场情绪偏冷，建议保持谨慎，控制仓位。")
	default:
		advice = append(advice, "市场情绪中性，建议保持观望，等待明确信号。")
	}

	if len(industries) > 0 {
		top := industries
		if len(top) > 3 {
			top = top[:3]
		}
		advice = append(advice, fmt.Sprintf("重点关注行业：%s。", strings.Join(top, " / ")))
	}

	return strings.Join(advice, "\n")
}

// formatWeeklyHighlights lists the first five high importance results.
func formatWeeklyHighlights(results []models.AnalysisResult) string {
	var lines []string
	for _, result := range results {
		if result.Importance != models.ImportanceHigh {
			continue
		}
		lines = append(lines, "- "+result.Summary)
		if len(lines) == 5 {
			break
		}
	}

	if len(lines) == 0 {
		return "本周暂无特别重大事件。"
	}
	return strings.Join(lines, "\n")
}

// formatIndustryPerformance tabulates up to eight industries by article
// count with a hot/cold marker from average sentiment.
func formatIndustryPerformance(results []models.AnalysisResult) string {
	type industryTally struct {
		sum   float64
		count int
	}

	var order []string
	tallies := make(map[string]*industryTally)
	for _, result := range results {
		for _, ind := range result.RelatedIndustries {
			tally, seen := tallies[ind]
			if !seen {
				tally = &industryTally{}
				tallies[ind] = tally
				order = append(order, ind)
			}
			tally.sum += result.SentimentScore
			tally.count++
		}
	}

	if len(order) == 0 {
		return "本周行业表现数据不足。"
	}

	sort.SliceStable(order, func(i, j int) bool {
		return tallies[order[i]].count > tallies[order[j]].count
	})
	if len(order) > 8 {
		order = order[:8]
	}

	var sb strings.Builder
	sb.WriteString("| 行业 | 热度 | 平均情感 |\n")
	sb.WriteString("|------|------|----------|")
	for _, ind := range order {
		tally := tallies[ind]
		avg := tally.sum / float64(tally.count)
		marker := "➖"
		if avg > 0.6 {
			marker = "🔥"
		} else if avg < 0.4 {
			marker = "❄️"
		}
		fmt.Fprintf(&sb, "\n| %s | %d篇 | %s |", ind, tally.count, marker)
	}
	return sb.String()
}

// formatRecommendations tabulates up to ten recommendations with star
// ratings per level.
func formatRecommendations(recs []models.StockRecommendation) string {
	if len(recs) == 0 {
		return "本周暂无符合条件的推荐股票。"
	}

	var sb strings.Builder
	sb.WriteString("| 代码 | 名称 | 推荐等级 | 分数 | 相关行业 |\n")
	sb.WriteString("|------|------|----------|------|----------|")
	for i, rec := range recs {
		if i >= 10 {
			break
		}
		stars, ok := levelEmoji[rec.Level]
		if !ok {
			stars = "⭐"
		}
		industries := rec.RelatedIndustries
		if len(industries) > 2 {
			industries = industries[:2]
		}
		fmt.Fprintf(&sb, "\n| %s | %s | %s | %s | %s |",
			rec.Code, rec.Name, stars, formatFloat(rec.Score), strings.Join(industries, "、"))
	}
	return sb.String()
}

// weeklySummary counts the batch by sentiment.
func weeklySummary(results []models.AnalysisResult) string {
	positive, negative := 0, 0
	for _, result := range results {
		switch result.Sentiment {
		case models.SentimentPositive:
			positive++
		case models.SentimentNegative:
			negative++
		}
	}
	return fmt.Sprintf("本周共分析 %d 条财经信息，其中积极消息 %d 条，消极消息 %d 条。",
		len(results), positive, negative)
}

func nextWeekOutlook() string {
	return "持续关注宏观政策动向和行业热点变化，注意控制风险，把握结构性机会。"
}

// formatScreeningResults summarizes recommendation counts per level.
func formatScreeningResults(recs []models.StockRecommendation) string {
	if len(recs) == 0 {
		return "未筛选出符合条件的股票。"
	}

	counts := make(map[string]int)
	for _, rec := range recs {
		counts[rec.Level]++
	}

	return fmt.Sprintf("\n- 强烈推荐：%d 只\n- 适度关注：%d 只\n- 持续观察：%d 只\n",
		counts[models.LevelStrong], counts[models.LevelModerate], counts[models.LevelWatch])
}

// formatDetailedAnalysis expands the top five recommendations into
// per-stock sections with their key news.
func formatDetailedAnalysis(recs []models.StockRecommendation) string {
	if len(recs) == 0 {
		return "无详细分析。"
	}

	var lines []string
	for i, rec := range recs {
		if i >= 5 {
			break
		}
		lines = append(lines, fmt.Sprintf(`
### %s - %s

- **推荐等级**：%s
- **推荐分数**：%s
- **提及次数**：%d
- **平均情感**：%.2f
- **相关行业**：%s

**相关新闻**：
`,
			rec.Code, rec.Name, rec.Level, formatFloat(rec.Score),
			rec.MentionCount, rec.AvgSentiment, strings.Join(rec.RelatedIndustries, ", ")))
		for _, news := range rec.KeyNews {
			lines = append(lines, "- "+news)
		}
	}
	return strings.Join(lines, "\n")
}
