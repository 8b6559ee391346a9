package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MerchantStat is the aggregate for one merchant across all debit
// transactions carrying that merchant name.
type MerchantStat struct {
	Name          string          `json:"name"`
	Count         int             `json:"count"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	AverageAmount decimal.Decimal `json:"average_amount"`
	Category      Category        `json:"category"`
}

// RecipientStat is the aggregate for one transfer recipient.
type RecipientStat struct {
	Name        string          `json:"name"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// CategoryStat is the aggregate for one spending category.
// Percentage is the share of total debit spend, 0 when there is no spend.
type CategoryStat struct {
	Category    Category        `json:"category"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Percentage  float64         `json:"percentage"`
}

// DayOfWeekStat buckets debit activity by weekday. Day 0 is Sunday.
type DayOfWeekStat struct {
	Day         int             `json:"day"`
	DayName     string          `json:"day_name"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// HourStat buckets debit activity by hour of day (0-23).
type HourStat struct {
	Hour        int             `json:"hour"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// MonthStat buckets activity by calendar month. Debits and credits are
// tracked separately so monthly trend analysis can use debits alone.
type MonthStat struct {
	Month       time.Month      `json:"month"`
	MonthName   string          `json:"month_name"`
	Year        int             `json:"year"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Credits     decimal.Decimal `json:"credits"`
	Debits      decimal.Decimal `json:"debits"`
}

// BucketStat is a simple count/amount pair used for weekend-vs-weekday
// and time-of-day breakdowns.
type BucketStat struct {
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// TimeOfDayBreakdown splits debit activity into four wall-clock buckets:
// morning 06-12, afternoon 12-18, evening 18-22, night 22-06.
type TimeOfDayBreakdown struct {
	Morning   BucketStat `json:"morning"`
	Afternoon BucketStat `json:"afternoon"`
	Evening   BucketStat `json:"evening"`
	Night     BucketStat `json:"night"`
}

// PeakDay describes the single calendar day with the highest summed
// debit spend, including the transactions that made it up.
type PeakDay struct {
	Date             time.Time       `json:"date"`
	Amount           decimal.Decimal `json:"amount"`
	TransactionCount int             `json:"transaction_count"`
	Transactions     []Transaction   `json:"transactions"`
}

// MerchantAnalysis is the merchant analyzer result.
type MerchantAnalysis struct {
	Top            []MerchantStat `json:"top"`
	TotalMerchants int            `json:"total_merchants"`
	FavoriteStore  *MerchantStat  `json:"favorite_store,omitempty"`
}

// RecipientAnalysis is the recipient analyzer result.
type RecipientAnalysis struct {
	Top               []RecipientStat `json:"top"`
	TotalRecipients   int             `json:"total_recipients"`
	TotalSentToOthers decimal.Decimal `json:"total_sent_to_others"`
}

// CategoryAnalysis is the category analyzer result. Breakdown is sorted
// by amount descending; TopCategory defaults to CategoryOther when there
// is no debit spend at all.
type CategoryAnalysis struct {
	Breakdown   []CategoryStat `json:"breakdown"`
	TopCategory Category       `json:"top_category"`
}

// SubscriptionStat is the aggregate for one recognized subscription
// service (or the "Other Subscription" bucket).
type SubscriptionStat struct {
	Name       string          `json:"name"`
	Frequency  string          `json:"frequency"`
	TotalSpent decimal.Decimal `json:"total_spent"`
	Count      int             `json:"count"`
}

// SubscriptionAnalysis is the subscription analyzer result. MonthlyTotal
// sums the per-service average charge; YearlyProjection is twelve times
// that.
type SubscriptionAnalysis struct {
	List             []SubscriptionStat `json:"list"`
	MonthlyTotal     decimal.Decimal    `json:"monthly_total"`
	YearlyProjection decimal.Decimal    `json:"yearly_projection"`
}

// TemporalAnalysis is the temporal analyzer result.
type TemporalAnalysis struct {
	ByDayOfWeek []DayOfWeekStat    `json:"by_day_of_week"`
	ByHour      []HourStat         `json:"by_hour"`
	ByMonth     []MonthStat        `json:"by_month"`
	Weekend     BucketStat         `json:"weekend"`
	Weekday     BucketStat         `json:"weekday"`
	PeakDay     PeakDay            `json:"peak_day"`
	PeakMonth   *MonthStat         `json:"peak_month,omitempty"`
	BusiestHour *HourStat          `json:"busiest_hour,omitempty"`
	TimeOfDay   TimeOfDayBreakdown `json:"time_of_day"`
}

// NoSpendStreak is a maximal run of consecutive calendar days with zero
// debit transactions.
type NoSpendStreak struct {
	Days      int       `json:"days"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// StreakAnalysis is the streak analyzer result. CurrentNoSpend counts
// days between the last debit and the analysis clock's now.
type StreakAnalysis struct {
	LongestNoSpend    NoSpendStreak   `json:"longest_no_spend"`
	CurrentNoSpend    int             `json:"current_no_spend"`
	TotalNoSpendDays  int             `json:"total_no_spend_days"`
	LongestSpendRun   int             `json:"longest_spend_run"`
	AverageDailySpend decimal.Decimal `json:"average_daily_spend"`
}

// TransactionPointer references a notable transaction without carrying
// the full record.
type TransactionPointer struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Period is the analyzed date range, computed from the actual transaction
// dates (statement metadata is a fallback only when no transactions exist).
type Period struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	TotalDays int       `json:"total_days"`
}

// Overview holds the cross-cutting totals for the whole statement.
type Overview struct {
	TotalTransactions  int             `json:"total_transactions"`
	TotalDebits        decimal.Decimal `json:"total_debits"`
	TotalCredits       decimal.Decimal `json:"total_credits"`
	NetFlow            decimal.Decimal `json:"net_flow"`
	AverageTransaction decimal.Decimal `json:"average_transaction"`
}

// WrappedAnalysis is the full analytics result for one statement. It is
// constructed once by the orchestrator and never mutated afterwards.
type WrappedAnalysis struct {
	Metadata StatementMetadata `json:"metadata"`
	Period   Period            `json:"period"`
	Overview Overview          `json:"overview"`

	Merchants     MerchantAnalysis     `json:"merchants"`
	Recipients    RecipientAnalysis    `json:"recipients"`
	Categories    CategoryAnalysis     `json:"categories"`
	Subscriptions SubscriptionAnalysis `json:"subscriptions"`
	Temporal      TemporalAnalysis     `json:"temporal"`
	Streaks       StreakAnalysis       `json:"streaks"`

	Personality PersonalityResult `json:"personality"`
	FunFacts    []string          `json:"fun_facts"`

	FirstTransaction   *TransactionPointer `json:"first_transaction,omitempty"`
	LastTransaction    *TransactionPointer `json:"last_transaction,omitempty"`
	BiggestTransaction *TransactionPointer `json:"biggest_transaction,omitempty"`
}
