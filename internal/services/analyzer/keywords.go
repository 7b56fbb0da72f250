package analyzer

import "github.com/bobmcallan/finsight/internal/models"

// Sentiment keyword lists. Matching is substring containment, not
// token-boundary; downstream thresholds were tuned against that behavior.
var positiveKeywords = []string{
	"利好", "上涨", "增长", "突破", "创新高",
	"超预期", "加速", "扩张", "支持", "鼓励",
	"减税", "降息", "降准", "补贴", "激励",
	"盈利", "业绩", "翻倍", "新高", "龙头",
}

var negativeKeywords = []string{
	"利空", "下跌", "下降", "暴跌", "创新低",
	"不及预期", "放缓", "收缩", "限制", "禁止",
	"加税", "加息", "处罚", "亏损", "退市",
	"风险", "违规", "调查", "暴雷", "爆仓",
}

// categoryKeywords pairs each category with its markers. Order matters:
// classification ties are resolved in favor of the earlier entry.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{models.CategoryMacroPolicy, []string{"央行", "政策", "国务院", "发改委", "监管", "法规"}},
	{models.CategoryIndustryTrend, []string{"行业", "产业", "市场", "趋势", "发展"}},
	{models.CategoryAnnouncement, []string{"公告", "业绩", "财报", "分红", "增发", "回购"}},
	{models.CategoryMarketData, []string{"数据", "指数", "成交量", "涨跌", "换手率"}},
	{models.CategoryExpertOpinion, []string{"分析师", "研报", "预测", "观点", "评级"}},
	{models.CategoryInternational, []string{"美股", "港股", "外资", "汇率", "国际"}},
}

// highWeightCategories contribute an extra importance point.
var highWeightCategories = map[string]bool{
	models.CategoryMacroPolicy:  true,
	models.CategoryAnnouncement: true,
}
