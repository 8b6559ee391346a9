package analyze

import (
	"sort"
	"time"

	"adeyosola/bank-wrapped/internal/dateutils"
	"adeyosola/bank-wrapped/internal/models"
)

// AnalyzeTemporal builds the time-based breakdowns. All buckets except
// the monthly view consider debits only; the monthly view covers every
// transaction so credits and debits can be compared month by month. The
// clock only matters for the debit-free placeholder peak day.
func AnalyzeTemporal(transactions []models.Transaction, clock dateutils.Clock) models.TemporalAnalysis {
	debits := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.IsDebit() {
			debits = append(debits, tx)
		}
	}

	analysis := models.TemporalAnalysis{
		ByDayOfWeek: analyzeDayOfWeek(debits),
		ByHour:      analyzeHour(debits),
		ByMonth:     analyzeMonth(transactions),
		PeakDay:     findPeakDay(debits, clock),
		TimeOfDay:   analyzeTimeOfDay(debits),
	}
	analysis.Weekend, analysis.Weekday = analyzeWeekendVsWeekday(debits)
	analysis.PeakMonth = findPeakMonth(debits)
	analysis.BusiestHour = findBusiestHour(debits)
	return analysis
}

func analyzeDayOfWeek(debits []models.Transaction) []models.DayOfWeekStat {
	stats := make([]models.DayOfWeekStat, 7)
	for i := range stats {
		stats[i].Day = i
		stats[i].DayName = time.Weekday(i).String()
	}
	for _, tx := range debits {
		day := int(tx.Date.Weekday())
		stats[day].Count++
		stats[day].TotalAmount = stats[day].TotalAmount.Add(tx.AbsAmount())
	}
	return stats
}

func analyzeHour(debits []models.Transaction) []models.HourStat {
	stats := make([]models.HourStat, 24)
	for i := range stats {
		stats[i].Hour = i
	}
	for _, tx := range debits {
		hour := tx.Date.Hour()
		stats[hour].Count++
		stats[hour].TotalAmount = stats[hour].TotalAmount.Add(tx.AbsAmount())
	}
	return stats
}

type monthKey struct {
	year  int
	month time.Month
}

func analyzeMonth(transactions []models.Transaction) []models.MonthStat {
	byMonth := make(map[monthKey]*models.MonthStat)

	for _, tx := range transactions {
		key := monthKey{year: tx.Date.Year(), month: tx.Date.Month()}
		stat, ok := byMonth[key]
		if !ok {
			stat = &models.MonthStat{
				Month:     key.month,
				MonthName: key.month.String(),
				Year:      key.year,
			}
			byMonth[key] = stat
		}
		amount := tx.AbsAmount()
		stat.Count++
		stat.TotalAmount = stat.TotalAmount.Add(amount)
		if tx.IsCredit() {
			stat.Credits = stat.Credits.Add(amount)
		} else {
			stat.Debits = stat.Debits.Add(amount)
		}
	}

	stats := make([]models.MonthStat, 0, len(byMonth))
	for _, stat := range byMonth {
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Year != stats[j].Year {
			return stats[i].Year < stats[j].Year
		}
		return stats[i].Month < stats[j].Month
	})
	return stats
}

func analyzeWeekendVsWeekday(debits []models.Transaction) (weekend, weekday models.BucketStat) {
	for _, tx := range debits {
		amount := tx.AbsAmount()
		if dateutils.IsWeekend(tx.Date) {
			weekend.Count++
			weekend.Amount = weekend.Amount.Add(amount)
		} else {
			weekday.Count++
			weekday.Amount = weekday.Amount.Add(amount)
		}
	}
	return weekend, weekday
}

func findPeakDay(debits []models.Transaction, clock dateutils.Clock) models.PeakDay {
	byDay := make(map[time.Time]*models.PeakDay)

	for _, tx := range debits {
		key := dateutils.DayKey(tx.Date)
		day, ok := byDay[key]
		if !ok {
			day = &models.PeakDay{Date: tx.Date}
			byDay[key] = day
		}
		day.Amount = day.Amount.Add(tx.AbsAmount())
		day.TransactionCount++
		day.Transactions = append(day.Transactions, tx)
	}

	var peak *models.PeakDay
	for _, day := range byDay {
		if peak == nil || day.Amount.GreaterThan(peak.Amount) {
			peak = day
		}
	}
	if peak == nil {
		return models.PeakDay{Date: clock.Now(), Transactions: []models.Transaction{}}
	}
	return *peak
}

func findPeakMonth(debits []models.Transaction) *models.MonthStat {
	stats := analyzeMonth(debits)
	var peak *models.MonthStat
	for i := range stats {
		if peak == nil || stats[i].Debits.GreaterThan(peak.Debits) {
			peak = &stats[i]
		}
	}
	return peak
}

func findBusiestHour(debits []models.Transaction) *models.HourStat {
	stats := analyzeHour(debits)
	busiest := &stats[0]
	for i := range stats {
		if stats[i].Count > busiest.Count {
			busiest = &stats[i]
		}
	}
	if busiest.Count == 0 {
		return nil
	}
	return busiest
}

func analyzeTimeOfDay(debits []models.Transaction) models.TimeOfDayBreakdown {
	var breakdown models.TimeOfDayBreakdown
	for _, tx := range debits {
		amount := tx.AbsAmount()
		var bucket *models.BucketStat
		switch hour := tx.Date.Hour(); {
		case hour >= 6 && hour < 12:
			bucket = &breakdown.Morning
		case hour >= 12 && hour < 18:
			bucket = &breakdown.Afternoon
		case hour >= 18 && hour < 22:
			bucket = &breakdown.Evening
		default:
			bucket = &breakdown.Night
		}
		bucket.Count++
		bucket.Amount = bucket.Amount.Add(amount)
	}
	return breakdown
}
