package analyze

import (
	"regexp"
	"sort"

	"github.com/shopspring/decimal"

	"adeyosola/bank-wrapped/internal/currencyutils"
	"adeyosola/bank-wrapped/internal/models"
)

// subscriptionService maps a recognized service name to the pattern
// that identifies it in a transaction description. Subscriptions whose
// description matches none of these land in the "Other Subscription"
// bucket.
type subscriptionService struct {
	name    string
	pattern *regexp.Regexp
}

var subscriptionServices = []subscriptionService{
	{"Netflix", regexp.MustCompile(`(?i)netflix`)},
	{"Spotify", regexp.MustCompile(`(?i)spotify`)},
	{"Canva", regexp.MustCompile(`(?i)canva`)},
	{"Starlink", regexp.MustCompile(`(?i)starlink`)},
	{"YouTube Premium", regexp.MustCompile(`(?i)youtube.*premium`)},
	{"Amazon Prime", regexp.MustCompile(`(?i)amazon.*prime`)},
	{"Apple Music", regexp.MustCompile(`(?i)apple.*music`)},
	{"DStv", regexp.MustCompile(`(?i)dstv`)},
	{"GOtv", regexp.MustCompile(`(?i)gotv`)},
	{"Showmax", regexp.MustCompile(`(?i)showmax`)},
	{"Udemy", regexp.MustCompile(`(?i)udemy`)},
}

const otherSubscriptionName = "Other Subscription"

// AnalyzeCategories breaks down debit spend by category. Percentage is
// each category's share of the total debit spend; the breakdown is
// sorted by amount descending and TopCategory falls back to
// CategoryOther when there is no spend at all.
func AnalyzeCategories(transactions []models.Transaction) models.CategoryAnalysis {
	byCategory := make(map[models.Category]*models.CategoryStat)
	var totalSpent decimal.Decimal

	for _, tx := range transactions {
		if !tx.IsDebit() {
			continue
		}
		amount := tx.AbsAmount()
		totalSpent = totalSpent.Add(amount)

		stat, ok := byCategory[tx.Category]
		if !ok {
			stat = &models.CategoryStat{Category: tx.Category}
			byCategory[tx.Category] = stat
		}
		stat.Count++
		stat.TotalAmount = stat.TotalAmount.Add(amount)
	}

	breakdown := make([]models.CategoryStat, 0, len(byCategory))
	for _, stat := range byCategory {
		stat.Percentage = currencyutils.Percentage(stat.TotalAmount, totalSpent)
		breakdown = append(breakdown, *stat)
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].TotalAmount.GreaterThan(breakdown[j].TotalAmount)
	})

	topCategory := models.CategoryOther
	if len(breakdown) > 0 {
		topCategory = breakdown[0].Category
	}

	return models.CategoryAnalysis{Breakdown: breakdown, TopCategory: topCategory}
}

// AnalyzeSubscriptions groups subscription-category debits by the
// service they pay for. MonthlyTotal estimates the recurring monthly
// cost as the sum of each service's average charge; YearlyProjection
// is twelve months of that.
func AnalyzeSubscriptions(transactions []models.Transaction) models.SubscriptionAnalysis {
	byService := make(map[string]*models.SubscriptionStat)

	for _, tx := range transactions {
		if !tx.IsDebit() || tx.Category != models.CategorySubscriptions {
			continue
		}
		name := otherSubscriptionName
		for _, svc := range subscriptionServices {
			if svc.pattern.MatchString(tx.Description) {
				name = svc.name
				break
			}
		}

		stat, ok := byService[name]
		if !ok {
			stat = &models.SubscriptionStat{Name: name, Frequency: "monthly"}
			byService[name] = stat
		}
		stat.Count++
		stat.TotalSpent = stat.TotalSpent.Add(tx.AbsAmount())
	}

	list := make([]models.SubscriptionStat, 0, len(byService))
	for _, stat := range byService {
		list = append(list, *stat)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].TotalSpent.GreaterThan(list[j].TotalSpent)
	})

	var monthlyTotal decimal.Decimal
	for _, sub := range list {
		monthlyTotal = monthlyTotal.Add(sub.TotalSpent.Div(decimalFromInt(sub.Count)))
	}

	return models.SubscriptionAnalysis{
		List:             list,
		MonthlyTotal:     monthlyTotal,
		YearlyProjection: monthlyTotal.Mul(decimalFromInt(12)),
	}
}
