// Package analyze turns a parsed statement into the full wrapped
// analytics result: merchant, recipient, category, subscription,
// temporal and streak breakdowns, a personality archetype, and a set
// of shareable fun facts.
package analyze

import (
	"sort"

	"github.com/sirupsen/logrus"

	"adeyosola/bank-wrapped/internal/models"
)

var log = logrus.New()

// SetLogger sets the logger used by this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

const topListSize = 10

// AnalyzeMerchants aggregates debit transactions that carry a merchant
// name. Top is sorted by total spend; FavoriteStore is the merchant
// with the most visits, which is not necessarily the biggest spend.
func AnalyzeMerchants(transactions []models.Transaction) models.MerchantAnalysis {
	byName := make(map[string]*models.MerchantStat)

	for _, tx := range transactions {
		if !tx.IsDebit() || tx.Merchant == "" {
			continue
		}
		amount := tx.AbsAmount()
		stat, ok := byName[tx.Merchant]
		if !ok {
			stat = &models.MerchantStat{Name: tx.Merchant, Category: tx.Category}
			byName[tx.Merchant] = stat
		}
		stat.Count++
		stat.TotalAmount = stat.TotalAmount.Add(amount)
		stat.AverageAmount = stat.TotalAmount.Div(decimalFromInt(stat.Count))
	}

	all := make([]models.MerchantStat, 0, len(byName))
	for _, stat := range byName {
		all = append(all, *stat)
	}

	byAmount := make([]models.MerchantStat, len(all))
	copy(byAmount, all)
	sort.SliceStable(byAmount, func(i, j int) bool {
		return byAmount[i].TotalAmount.GreaterThan(byAmount[j].TotalAmount)
	})

	analysis := models.MerchantAnalysis{
		Top:            truncateMerchants(byAmount, topListSize),
		TotalMerchants: len(all),
	}

	if len(all) > 0 {
		byCount := make([]models.MerchantStat, len(all))
		copy(byCount, all)
		sort.SliceStable(byCount, func(i, j int) bool {
			return byCount[i].Count > byCount[j].Count
		})
		favorite := byCount[0]
		analysis.FavoriteStore = &favorite
	}

	return analysis
}

// TopMerchantsByCategory restricts the merchant analysis to a single
// category and returns its top list.
func TopMerchantsByCategory(transactions []models.Transaction, category models.Category) []models.MerchantStat {
	filtered := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.Category == category {
			filtered = append(filtered, tx)
		}
	}
	return AnalyzeMerchants(filtered).Top
}

func truncateMerchants(stats []models.MerchantStat, n int) []models.MerchantStat {
	if len(stats) > n {
		return stats[:n]
	}
	return stats
}
