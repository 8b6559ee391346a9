// Package summary reduces a WrappedAnalysis to the compact projection
// sent to the narrative insight generator. The projection is pure and
// deterministic: formatted strings and plain numbers only, never raw
// transaction records.
package summary

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"adeyosola/bank-wrapped/internal/currencyutils"
	"adeyosola/bank-wrapped/internal/dateutils"
	"adeyosola/bank-wrapped/internal/models"
)

const (
	summaryListSize    = 5
	maxDescriptionLen  = 50
	defaultAccountName = "Friend"
)

// Prepare projects a full analysis into the AnalysisSummary payload.
func Prepare(analysis models.WrappedAnalysis) models.AnalysisSummary {
	peakTimeName, peakTimeAmount := peakTimeOfDay(analysis.Temporal.TimeOfDay)

	weekendSpend, _ := analysis.Temporal.Weekend.Amount.Float64()
	weekdaySpend, _ := analysis.Temporal.Weekday.Amount.Float64()
	weekendPercentage := 0.0
	if total := weekendSpend + weekdaySpend; total > 0 {
		weekendPercentage = weekendSpend / total * 100
	}

	accountName := analysis.Metadata.AccountName
	if accountName == "" {
		accountName = defaultAccountName
	}

	totalCredits, _ := analysis.Overview.TotalCredits.Float64()
	totalDebits, _ := analysis.Overview.TotalDebits.Float64()
	peakDayAmount, _ := analysis.Temporal.PeakDay.Amount.Float64()

	peakMonthName := "N/A"
	peakMonthAmount := 0.0
	if peak := analysis.Temporal.PeakMonth; peak != nil {
		peakMonthName = fmt.Sprintf("%s %d", peak.MonthName, peak.Year)
		peakMonthAmount, _ = peak.Debits.Float64()
	}

	return models.AnalysisSummary{
		AccountName: accountName,
		Period: models.SummaryPeriod{
			Start: analysis.Period.Start.Format(dateutils.DateLayoutDisplay),
			End:   analysis.Period.End.Format(dateutils.DateLayoutDisplay),
			Days:  analysis.Period.TotalDays,
		},
		Overview: models.SummaryTotals{
			TotalTransactions: analysis.Overview.TotalTransactions,
			TotalCredits:      totalCredits,
			TotalDebits:       totalDebits,
			NetFlow:           totalCredits - totalDebits,
		},
		BiggestDay: models.SummaryDay{
			Date:             analysis.Temporal.PeakDay.Date.Format(dateutils.DateLayoutDisplay),
			Amount:           peakDayAmount,
			TransactionCount: analysis.Temporal.PeakDay.TransactionCount,
			TopPurchases:     topPurchases(analysis.Temporal.PeakDay.Transactions),
		},
		TopMerchants:  summaryMerchants(analysis.Merchants.Top),
		TopRecipients: summaryRecipients(analysis.Recipients.Top),
		Categories:    summaryCategories(analysis.Categories.Breakdown),
		Rhythm: models.SummaryRhythm{
			PeakTimeOfDay:     peakTimeName,
			PeakTimeAmount:    peakTimeAmount,
			WeekendSpend:      weekendSpend,
			WeekdaySpend:      weekdaySpend,
			WeekendPercentage: weekendPercentage,
		},
		Journey: models.SummaryJourney{
			PeakMonth:       peakMonthName,
			PeakMonthAmount: peakMonthAmount,
			MonthlyTrend:    monthlyTrend(analysis.Temporal.ByMonth),
		},
		Personality: models.SummaryPersona{
			Archetype: string(analysis.Personality.Archetype),
			Traits:    deriveTraits(analysis, peakTimeName, weekendPercentage),
		},
	}
}

// peakTimeOfDay picks the busiest wall-clock bucket by amount. Ties go
// to the earlier bucket in day order.
func peakTimeOfDay(breakdown models.TimeOfDayBreakdown) (string, float64) {
	buckets := []struct {
		name   string
		bucket models.BucketStat
	}{
		{"Morning (6am-12pm)", breakdown.Morning},
		{"Afternoon (12pm-6pm)", breakdown.Afternoon},
		{"Evening (6pm-10pm)", breakdown.Evening},
		{"Night (10pm-6am)", breakdown.Night},
	}

	peak := buckets[0]
	for _, b := range buckets[1:] {
		if b.bucket.Amount.GreaterThan(peak.bucket.Amount) {
			peak = b
		}
	}
	amount, _ := peak.bucket.Amount.Float64()
	return peak.name, amount
}

// topPurchases formats the biggest day's debits as display strings,
// largest first, capped at five.
func topPurchases(transactions []models.Transaction) []string {
	debits := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.IsDebit() {
			debits = append(debits, tx)
		}
	}
	sort.SliceStable(debits, func(i, j int) bool {
		return debits[i].AbsAmount().GreaterThan(debits[j].AbsAmount())
	})
	if len(debits) > summaryListSize {
		debits = debits[:summaryListSize]
	}

	purchases := make([]string, 0, len(debits))
	for _, tx := range debits {
		purchases = append(purchases, fmt.Sprintf("%s (%s)",
			truncateDescription(tx.Description), currencyutils.FormatNaira(tx.AbsAmount())))
	}
	return purchases
}

func truncateDescription(description string) string {
	runes := []rune(description)
	if len(runes) <= maxDescriptionLen {
		return description
	}
	return string(runes[:maxDescriptionLen]) + "..."
}

func summaryMerchants(top []models.MerchantStat) []models.SummaryMerchant {
	if len(top) > summaryListSize {
		top = top[:summaryListSize]
	}
	merchants := make([]models.SummaryMerchant, 0, len(top))
	for _, stat := range top {
		amount, _ := stat.TotalAmount.Float64()
		merchants = append(merchants, models.SummaryMerchant{
			Name:   stat.Name,
			Amount: amount,
			Visits: stat.Count,
		})
	}
	return merchants
}

func summaryRecipients(top []models.RecipientStat) []models.SummaryRecipient {
	if len(top) > summaryListSize {
		top = top[:summaryListSize]
	}
	recipients := make([]models.SummaryRecipient, 0, len(top))
	for _, stat := range top {
		amount, _ := stat.TotalAmount.Float64()
		recipients = append(recipients, models.SummaryRecipient{
			Name:   stat.Name,
			Amount: amount,
			Count:  stat.Count,
		})
	}
	return recipients
}

func summaryCategories(breakdown []models.CategoryStat) []models.SummaryCategory {
	categories := make([]models.SummaryCategory, 0, len(breakdown))
	for _, stat := range breakdown {
		amount, _ := stat.TotalAmount.Float64()
		categories = append(categories, models.SummaryCategory{
			Name:       string(stat.Category),
			Amount:     amount,
			Percentage: stat.Percentage,
		})
	}
	return categories
}

// monthlyTrend compares average monthly debit spend between the first
// and second half of the period. A swing beyond twenty percent either
// way is a trend; otherwise a coefficient of variation above 0.5 across
// all months reads as volatile.
func monthlyTrend(months []models.MonthStat) models.MonthlyTrend {
	if len(months) < 2 {
		return models.TrendStable
	}

	debits := make([]float64, len(months))
	for i, month := range months {
		debits[i], _ = month.Debits.Float64()
	}

	half := len(debits) / 2
	firstAvg := mean(debits[:half])
	secondAvg := mean(debits[half:])

	if firstAvg > 0 {
		change := (secondAvg - firstAvg) / firstAvg
		if change > 0.2 {
			return models.TrendIncreasing
		}
		if change < -0.2 {
			return models.TrendDecreasing
		}
	} else if secondAvg > 0 {
		return models.TrendIncreasing
	}

	avg := mean(debits)
	if avg > 0 {
		variance := 0.0
		for _, v := range debits {
			variance += (v - avg) * (v - avg)
		}
		variance /= float64(len(debits))
		if math.Sqrt(variance)/avg > 0.5 {
			return models.TrendVolatile
		}
	}
	return models.TrendStable
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// deriveTraits builds the short trait-tag list that accompanies the
// archetype in the summary payload.
func deriveTraits(analysis models.WrappedAnalysis, peakTimeName string, weekendPercentage float64) []string {
	traits := make([]string, 0, 5)
	if strings.Contains(string(analysis.Personality.Archetype), "Foodie") {
		traits = append(traits, "Food Lover")
	}
	if weekendPercentage > 60 {
		traits = append(traits, "Weekend Warrior")
	}
	if strings.Contains(peakTimeName, "Night") {
		traits = append(traits, "Night Spender")
	}
	if len(analysis.Merchants.Top) > 0 {
		traits = append(traits, "Loyal Customer")
	}
	traits = append(traits, string(analysis.Personality.Archetype))
	return traits
}
