package app

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bobmcallan/finsight/internal/models"
)

var insightSentimentEmoji = map[string]string{
	models.SentimentPositive: "📈",
	models.SentimentNegative: "📉",
	models.SentimentNeutral:  "➖",
}

// formatInsightsNote renders extracted insights as a markdown note.
func formatInsightsNote(insights []models.Insight, now time.Time) string {
	var lines []string

	lines = append(lines,
		fmt.Sprintf("# %s 投资洞察笔记\n", now.Format("2006年01月02日")),
		"## 📊 洞察概览\n",
		fmt.Sprintf("- 共提取 %d 条重要洞察", len(insights)),
	)

	if top := topInsightIndustries(insights); len(top) > 0 {
		lines = append(lines, fmt.Sprintf("- 热门行业：%s", strings.Join(top, ", ")))
	}

	lines = append(lines, "\n---\n", "## 🔍 详细洞察\n")

	for i, insight := range insights {
		emoji, ok := insightSentimentEmoji[insight.Sentiment]
		if !ok {
			emoji = "➖"
		}

		lines = append(lines,
			fmt.Sprintf("### %d. %s %s...\n", i+1, emoji, truncateRunes(insight.Summary, 50)),
			fmt.Sprintf("**来源**：%s", insight.Source),
			fmt.Sprintf("**重要性**：%s", insight.Importance),
		)

		if len(insight.KeyPoints) > 0 {
			lines = append(lines, "\n**关键要点**：")
			points := insight.KeyPoints
			if len(points) > 3 {
				points = points[:3]
			}
			for _, point := range points {
				lines = append(lines, "- "+point)
			}
		}

		if len(insight.Stocks) > 0 {
			lines = append(lines, fmt.Sprintf("\n**相关股票**：%s", strings.Join(insight.Stocks, ", ")))
		}
		if len(insight.Industries) > 0 {
			lines = append(lines, fmt.Sprintf("**相关行业**：%s", strings.Join(insight.Industries, ", ")))
		}

		lines = append(lines, "\n---\n")
	}

	lines = append(lines,
		"\n## 💡 行动建议\n",
		"基于以上洞察，建议：",
		"1. 持续关注热门行业的政策动态",
		"2. 对多次被提及的股票做进一步研究",
		"3. 结合自身风险偏好做出投资决策",
		"\n---\n",
		"*本笔记由系统辅助生成，投资需谨慎*\n",
	)

	return strings.Join(lines, "\n")
}

// topInsightIndustries returns up to five industries by mention count,
// ties keeping first-seen order.
func topInsightIndustries(insights []models.Insight) []string {
	var order []string
	counts := make(map[string]int)
	for _, insight := range insights {
		for _, ind := range insight.Industries {
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

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
