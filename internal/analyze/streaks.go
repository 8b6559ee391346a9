package analyze

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"adeyosola/bank-wrapped/internal/dateutils"
	"adeyosola/bank-wrapped/internal/models"
)

// AnalyzeStreaks walks every calendar day between the first and last
// debit and tracks runs of days without spending. CurrentNoSpend is the
// number of whole days between the last debit and the clock's now, so a
// statement ending months ago reports a long current streak.
func AnalyzeStreaks(transactions []models.Transaction, clock dateutils.Clock) models.StreakAnalysis {
	debits := sortedDebits(transactions)
	if len(debits) == 0 {
		now := clock.Now()
		return models.StreakAnalysis{
			LongestNoSpend: models.NoSpendStreak{StartDate: now, EndDate: now},
		}
	}

	spendByDay := make(map[time.Time]decimal.Decimal)
	for _, tx := range debits {
		key := dateutils.DayKey(tx.Date)
		spendByDay[key] = spendByDay[key].Add(tx.AbsAmount())
	}

	first := dateutils.DayKey(debits[0].Date)
	last := dateutils.DayKey(debits[len(debits)-1].Date)

	longest := models.NoSpendStreak{StartDate: first, EndDate: first}
	current := models.NoSpendStreak{StartDate: first}
	totalNoSpendDays := 0

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		if _, spent := spendByDay[day]; !spent {
			totalNoSpendDays++
			if current.Days == 0 {
				current.StartDate = day
			}
			current.Days++
			continue
		}
		if current.Days > longest.Days {
			longest = models.NoSpendStreak{
				Days:      current.Days,
				StartDate: current.StartDate,
				EndDate:   day.AddDate(0, 0, -1),
			}
		}
		current = models.NoSpendStreak{StartDate: day}
	}
	if current.Days > longest.Days {
		longest = models.NoSpendStreak{
			Days:      current.Days,
			StartDate: current.StartDate,
			EndDate:   last,
		}
	}

	currentNoSpend := dateutils.DaysBetween(debits[len(debits)-1].Date, clock.Now())
	if currentNoSpend < 0 {
		currentNoSpend = 0
	}

	return models.StreakAnalysis{
		LongestNoSpend:    longest,
		CurrentNoSpend:    currentNoSpend,
		TotalNoSpendDays:  totalNoSpendDays,
		LongestSpendRun:   longestSpendRun(spendByDay),
		AverageDailySpend: averageDailySpend(spendByDay),
	}
}

// longestSpendRun finds the longest run of consecutive calendar days
// that each saw at least one debit.
func longestSpendRun(spendByDay map[time.Time]decimal.Decimal) int {
	if len(spendByDay) == 0 {
		return 0
	}
	days := make([]time.Time, 0, len(spendByDay))
	for day := range spendByDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if dateutils.DaysBetween(days[i-1], days[i]) == 1 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}

// averageDailySpend averages total debit spend over the days that had
// any spending, not over the whole period.
func averageDailySpend(spendByDay map[time.Time]decimal.Decimal) decimal.Decimal {
	if len(spendByDay) == 0 {
		return decimal.Decimal{}
	}
	var total decimal.Decimal
	for _, amount := range spendByDay {
		total = total.Add(amount)
	}
	return total.Div(decimalFromInt(len(spendByDay)))
}

func sortedDebits(transactions []models.Transaction) []models.Transaction {
	debits := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.IsDebit() {
			debits = append(debits, tx)
		}
	}
	sort.SliceStable(debits, func(i, j int) bool {
		return debits[i].Date.Before(debits[j].Date)
	})
	return debits
}
