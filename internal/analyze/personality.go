package analyze

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"adeyosola/bank-wrapped/internal/currencyutils"
	"adeyosola/bank-wrapped/internal/dateutils"
	"adeyosola/bank-wrapped/internal/logging"
	"adeyosola/bank-wrapped/internal/models"
)

// DeterminePersonality scores all ten archetypes against the spending
// behavior and returns the winner. Scores are additive and each signal
// has graduated thresholds; ties go to the archetype declared first in
// models.ArchetypeOrder.
func DeterminePersonality(
	transactions []models.Transaction,
	breakdown []models.CategoryStat,
	totalCredits, totalDebits decimal.Decimal,
	recipientCount int,
) models.PersonalityResult {
	scores := make(map[models.Archetype]int, len(models.ArchetypeOrder))

	debits := make([]models.Transaction, 0, len(transactions))
	var totalSpent decimal.Decimal
	for _, tx := range transactions {
		if tx.IsDebit() {
			debits = append(debits, tx)
			totalSpent = totalSpent.Add(tx.AbsAmount())
		}
	}

	categoryPercent := func(category models.Category) float64 {
		for _, stat := range breakdown {
			if stat.Category == category {
				return stat.Percentage
			}
		}
		return 0
	}

	scores[models.ArchetypeFoodie] = tieredScore(categoryPercent(models.CategoryFood), 25, 15, 8)
	scores[models.ArchetypeDataJunkie] = tieredScore(
		categoryPercent(models.CategoryData)+categoryPercent(models.CategoryAirtime), 15, 10, 5)
	scores[models.ArchetypeSubscriptionAddict] = tieredScore(
		categoryPercent(models.CategorySubscriptions), 10, 5, 2)

	switch {
	case recipientCount > 30:
		scores[models.ArchetypeSocialButterfly] = 4
	case recipientCount > 20:
		scores[models.ArchetypeSocialButterfly] = 3
	case recipientCount > 10:
		scores[models.ArchetypeSocialButterfly] = 2
	}

	if len(debits) > 0 {
		night := countByHour(debits, func(hour int) bool { return hour >= 22 || hour < 6 })
		scores[models.ArchetypeNightOwl] = tieredScore(
			float64(night)/float64(len(debits))*100, 25, 15, 8)

		morning := countByHour(debits, func(hour int) bool { return hour >= 5 && hour < 9 })
		scores[models.ArchetypeEarlyBird] = tieredScore(
			float64(morning)/float64(len(debits))*100, 20, 12, 6)

		var weekendSpend decimal.Decimal
		for _, tx := range debits {
			if dateutils.IsWeekend(tx.Date) {
				weekendSpend = weekendSpend.Add(tx.AbsAmount())
			}
		}
		scores[models.ArchetypeWeekendWarrior] = tieredScore(
			currencyutils.Percentage(weekendSpend, totalSpent), 45, 35, 28)

		avgTransaction, _ := totalSpent.Div(decimalFromInt(len(debits))).Float64()
		scores[models.ArchetypeBigSpender] = tieredScore(avgTransaction, 50000, 25000, 15000)
	}

	if totalCredits.IsPositive() {
		savingsRate := currencyutils.Percentage(totalCredits.Sub(totalDebits), totalCredits)
		scores[models.ArchetypeSaver] = tieredScore(savingsRate, 20, 10, 0)
	}

	scores[models.ArchetypeSteadyEddie] = steadyEddieScore(debits)

	winner := models.ArchetypeOrder[0]
	for _, archetype := range models.ArchetypeOrder {
		if scores[archetype] > scores[winner] {
			winner = archetype
		}
	}

	log.WithFields(logrus.Fields{
		logging.FieldArchetype: string(winner),
		"score":                scores[winner],
	}).Debug("Personality determined")

	info := winner.Info()
	return models.PersonalityResult{
		Archetype:   winner,
		Traits:      info.Traits,
		Description: info.Description,
		Emoji:       info.Emoji,
	}
}

// tieredScore maps a value onto the 4/2/1 scoring ladder. Thresholds
// are exclusive, matching the classifier's graduated signal strength.
func tieredScore(value, high, mid, low float64) int {
	switch {
	case value > high:
		return 4
	case value > mid:
		return 2
	case value > low:
		return 1
	}
	return 0
}

func countByHour(debits []models.Transaction, match func(hour int) bool) int {
	count := 0
	for _, tx := range debits {
		if match(tx.Date.Hour()) {
			count++
		}
	}
	return count
}

// steadyEddieScore rewards a low coefficient of variation across daily
// spend totals. Fewer than six spending days is not enough signal to
// call anyone consistent.
func steadyEddieScore(debits []models.Transaction) int {
	spendByDay := make(map[time.Time]decimal.Decimal)
	for _, tx := range debits {
		key := dateutils.DayKey(tx.Date)
		spendByDay[key] = spendByDay[key].Add(tx.AbsAmount())
	}
	if len(spendByDay) <= 5 {
		return 0
	}

	daily := make([]float64, 0, len(spendByDay))
	sum := 0.0
	for _, amount := range spendByDay {
		value, _ := amount.Float64()
		daily = append(daily, value)
		sum += value
	}
	mean := sum / float64(len(daily))
	if mean == 0 {
		return 0
	}

	variance := 0.0
	for _, value := range daily {
		variance += (value - mean) * (value - mean)
	}
	variance /= float64(len(daily))
	cv := math.Sqrt(variance) / mean

	switch {
	case cv < 0.5:
		return 3
	case cv < 0.8:
		return 2
	case cv < 1.2:
		return 1
	}
	return 0
}
