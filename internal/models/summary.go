package models

// AnalysisSummary is the compact, JSON-serializable projection of a
// WrappedAnalysis sent to the narrative insight generator as the entire
// request payload. It carries no raw transactions beyond the formatted
// top-purchase strings.
type AnalysisSummary struct {
	AccountName   string             `json:"account_name"`
	Period        SummaryPeriod      `json:"period"`
	Overview      SummaryTotals      `json:"overview"`
	BiggestDay    SummaryDay         `json:"biggest_day"`
	TopMerchants  []SummaryMerchant  `json:"top_merchants"`
	TopRecipients []SummaryRecipient `json:"top_recipients"`
	Categories    []SummaryCategory  `json:"categories"`
	Rhythm        SummaryRhythm      `json:"rhythm"`
	Journey       SummaryJourney     `json:"journey"`
	Personality   SummaryPersona     `json:"personality"`
}

// SummaryPeriod is the analyzed range as formatted display strings.
type SummaryPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

// SummaryTotals are the headline figures for the whole statement.
type SummaryTotals struct {
	TotalTransactions int     `json:"total_transactions"`
	TotalCredits      float64 `json:"total_credits"`
	TotalDebits       float64 `json:"total_debits"`
	NetFlow           float64 `json:"net_flow"`
}

// SummaryDay describes the biggest spending day.
type SummaryDay struct {
	Date             string   `json:"date"`
	Amount           float64  `json:"amount"`
	TransactionCount int      `json:"transaction_count"`
	TopPurchases     []string `json:"top_purchases"`
}

// SummaryMerchant is a top merchant entry.
type SummaryMerchant struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Visits int     `json:"visits"`
}

// SummaryRecipient is a top recipient entry.
type SummaryRecipient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

// SummaryCategory is one category slice of the breakdown.
type SummaryCategory struct {
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// SummaryRhythm captures when the money moves.
type SummaryRhythm struct {
	PeakTimeOfDay     string  `json:"peak_time_of_day"`
	PeakTimeAmount    float64 `json:"peak_time_amount"`
	WeekendSpend      float64 `json:"weekend_spend"`
	WeekdaySpend      float64 `json:"weekday_spend"`
	WeekendPercentage float64 `json:"weekend_percentage"`
}

// MonthlyTrend classifies how monthly debit spend moved across the period.
type MonthlyTrend string

const (
	TrendIncreasing MonthlyTrend = "increasing"
	TrendDecreasing MonthlyTrend = "decreasing"
	TrendStable     MonthlyTrend = "stable"
	TrendVolatile   MonthlyTrend = "volatile"
)

// SummaryJourney captures the month-over-month arc.
type SummaryJourney struct {
	PeakMonth       string       `json:"peak_month"`
	PeakMonthAmount float64      `json:"peak_month_amount"`
	MonthlyTrend    MonthlyTrend `json:"monthly_trend"`
}

// SummaryPersona is the personality slice of the summary.
type SummaryPersona struct {
	Archetype string   `json:"archetype"`
	Traits    []string `json:"traits"`
}
