// Package i18n holds the UI label tables for the two supported languages.
// The cost engine emits only structured data; mapping status tags and
// numbers to display text happens here, at the rendering boundary.
package i18n

import (
	"fmt"

	"github.com/jlhu/perdiem/internal/cost"
	"github.com/jlhu/perdiem/internal/stats"
)

// Supported language tags. Chinese is the default.
const (
	LangZH = "zh-CN"
	LangEN = "en"

	Default = LangZH
)

// Supported reports whether lang is a known language tag.
func Supported(lang string) bool {
	return lang == LangZH || lang == LangEN
}

// Toggle returns the other language, for the switcher pill.
func Toggle(lang string) string {
	if lang == LangEN {
		return LangZH
	}
	return LangEN
}

// Dict holds every UI string for one language.
type Dict struct {
	// Stat counters.
	TotalValueLabelAll    string
	TotalValueLabelActive string
	TotalValueLabelNet    string
	TotalItemsLabel       string
	AvgDailyCostLabel     string

	// List chrome.
	ItemsListTitle    string
	SearchButton      string
	SearchPlaceholder string
	AssetsCostNote    string
	SystemTimeLabel   string
	AllCategories     string

	// Item card labels.
	PurchaseDate   string
	WarrantyUntil  string
	RetirementDate string
	InUse          string
	CostCalcTitle  string
	DailyCost      string
	DaysUsed       string

	// Empty state.
	EmptyTitle string
	EmptyText  string

	// Status labels.
	StatusRetired  string
	StatusExpired  string
	StatusActive   string
	statusExpiring string // format, one %d verb

	// Date chrome.
	DayNames         [7]string
	DayOrdinalPrefix string
	DayOrdinalSuffix string
	DayWord          string

	// Footer.
	DataUpdatedLabel string
	ItemsCountLabel  string
	FooterTotalValue string
}

// StatusExpiring formats the expiring-soon label for a day count.
func (d Dict) StatusExpiring(days int) string {
	return fmt.Sprintf(d.statusExpiring, days)
}

// StatusLabel resolves a structured status into display text.
func (d Dict) StatusLabel(s cost.Status) string {
	switch s.Kind {
	case cost.StatusRetired:
		return d.StatusRetired
	case cost.StatusExpired:
		return d.StatusExpired
	case cost.StatusExpiring:
		return d.StatusExpiring(s.DaysToWarranty)
	default:
		return d.StatusActive
	}
}

// ModeLabel returns the total-value counter label for a calculation mode.
func (d Dict) ModeLabel(mode string) string {
	switch mode {
	case stats.ModeActive:
		return d.TotalValueLabelActive
	case stats.ModeNet:
		return d.TotalValueLabelNet
	default:
		return d.TotalValueLabelAll
	}
}

// Table returns the dictionary for a language tag, falling back to the
// default language for unknown tags.
func Table(lang string) Dict {
	if lang == LangEN {
		return english
	}
	return chinese
}

var chinese = Dict{
	TotalValueLabelAll:    "总资产 (总值)",
	TotalValueLabelActive: "总资产 (未退役)",
	TotalValueLabelNet:    "总资产 (净值)",
	TotalItemsLabel:       "物品总数",
	AvgDailyCostLabel:     "平均每日成本",

	ItemsListTitle:    "物品资产清单",
	SearchButton:      "搜索",
	SearchPlaceholder: "搜索物品名称、类别或备注...",
	AssetsCostNote:    "所有资产成本均基于当前时间计算",
	SystemTimeLabel:   "系统时间:",
	AllCategories:     "全部",

	PurchaseDate:   "购买日期",
	WarrantyUntil:  "保修至",
	RetirementDate: "退役时间",
	InUse:          "使用中",
	CostCalcTitle:  "成本计算",
	DailyCost:      "日均成本",
	DaysUsed:       "已使用天数",

	EmptyTitle: "未找到任何物品",
	EmptyText:  "请尝试不同的搜索词或清除搜索条件。",

	StatusRetired:  "已退役",
	StatusExpired:  "已过保",
	StatusActive:   "使用中",
	statusExpiring: "保修即将到期 (%d天)",

	DayNames:         [7]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"},
	DayOrdinalPrefix: "第",
	DayOrdinalSuffix: "天",
	DayWord:          "天",

	DataUpdatedLabel: "系统数据更新时间：",
	ItemsCountLabel:  "当前物品总数：",
	FooterTotalValue: "总价值：",
}

var english = Dict{
	TotalValueLabelAll:    "Total Asset Value (All)",
	TotalValueLabelActive: "Total Asset Value (Active)",
	TotalValueLabelNet:    "Total Asset Value (Net)",
	TotalItemsLabel:       "Total Items",
	AvgDailyCostLabel:     "Average Daily Cost",

	ItemsListTitle:    "Asset Items List",
	SearchButton:      "Search",
	SearchPlaceholder: "Search name, category or notes...",
	AssetsCostNote:    "All asset costs are calculated based on current time",
	SystemTimeLabel:   "System Time:",
	AllCategories:     "All",

	PurchaseDate:   "Purchased",
	WarrantyUntil:  "Warranty Until",
	RetirementDate: "Retirement",
	InUse:          "In Use",
	CostCalcTitle:  "Cost Calculation",
	DailyCost:      "Avg Daily Cost",
	DaysUsed:       "Days Used",

	EmptyTitle: "No items found",
	EmptyText:  "Try different keywords or clear search filters.",

	StatusRetired:  "Retired",
	StatusExpired:  "Expired",
	StatusActive:   "Active",
	statusExpiring: "Expiring (%dd)",

	DayNames:         [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	DayOrdinalPrefix: "Day ",
	DayOrdinalSuffix: "",
	DayWord:          "d",

	DataUpdatedLabel: "Data Updated: ",
	ItemsCountLabel:  "Items: ",
	FooterTotalValue: "Total Value: ",
}
