package common

// Default report templates. Placeholders are substituted by the report
// service; custom templates from config may reorder or drop placeholders.

// DefaultDailyTemplate needs {date}, {news_summary}, {overall_sentiment},
// {hot_industries}, {stock_highlights}, {investment_advice}.
const DefaultDailyTemplate = `# {date} 财经新闻分析

## 📰 今日要闻摘要
{news_summary}

## 📈 市场情绪
- 整体情绪：{overall_sentiment}
- 热门行业：{hot_industries}

## 🔍 重点关注股票
{stock_highlights}

## 💡 投资建议
{investment_advice}

---
*本报告由AI自动生成，仅供参考*
`

// DefaultWeeklyTemplate needs {year}, {week}, {start_date}, {end_date},
// {weekly_highlights}, {industry_performance}, {recommended_stocks},
// {weekly_summary}, {next_week_outlook}.
const DefaultWeeklyTemplate = `# {year}年第{week}周 投资周报

## 📅 时间范围
{start_date} 至 {end_date}

## 🔥 本周热点
{weekly_highlights}

## 📊 行业表现
{industry_performance}

## 🏆 推荐股票列表
{recommended_stocks}

## 📝 本周总结
{weekly_summary}

## 🔮 下周展望
{next_week_outlook}

---
*本报告由AI自动生成，仅供参考*
`

// DefaultScreeningTemplate needs {date}, {min_mentions},
// {sentiment_threshold}, {focus_industries}, {screening_results},
// {detailed_analysis}.
const DefaultScreeningTemplate = `# {date} 股票筛选报告

## 筛选条件
- 最小提及次数：{min_mentions}
- 情感阈值：{sentiment_threshold}
- 关注行业：{focus_industries}

## 筛选结果

{screening_results}

## 详细分析

{detailed_analysis}

---
*本报告由AI自动生成，仅供参考*
`

// Report filename patterns.
const (
	DateFormat = "2006-01-02"

	DailyReportName     = "%s-新闻分析.md"   // date
	WeeklyReportName    = "%d-W%02d-周报.md" // year, week
	MonthlyReportName   = "%d-%02d-月报.md"  // year, month
	ScreeningReportName = "%s-股票筛选.md"    // date
	InsightNoteName     = "%s-投资笔记.md"    // date
)
