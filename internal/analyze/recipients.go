package analyze

import (
	"sort"

	"adeyosola/bank-wrapped/internal/models"
)

// AnalyzeRecipients aggregates outgoing transfers by recipient. Only
// debit transactions in the transfers category with a detected
// recipient name count; TotalSentToOthers sums those same transfers.
func AnalyzeRecipients(transactions []models.Transaction) models.RecipientAnalysis {
	byName := make(map[string]*models.RecipientStat)
	var totalSent = decimalZero()

	for _, tx := range transactions {
		if !tx.IsDebit() || tx.Recipient == "" || tx.Category != models.CategoryTransfers {
			continue
		}
		amount := tx.AbsAmount()
		totalSent = totalSent.Add(amount)

		stat, ok := byName[tx.Recipient]
		if !ok {
			stat = &models.RecipientStat{Name: tx.Recipient}
			byName[tx.Recipient] = stat
		}
		stat.Count++
		stat.TotalAmount = stat.TotalAmount.Add(amount)
	}

	all := make([]models.RecipientStat, 0, len(byName))
	for _, stat := range byName {
		all = append(all, *stat)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].TotalAmount.GreaterThan(all[j].TotalAmount)
	})

	top := all
	if len(top) > topListSize {
		top = top[:topListSize]
	}

	return models.RecipientAnalysis{
		Top:               top,
		TotalRecipients:   len(all),
		TotalSentToOthers: totalSent,
	}
}

// TopRecipientsByFrequency re-ranks the top recipients by transfer
// count instead of amount.
func TopRecipientsByFrequency(transactions []models.Transaction) []models.RecipientStat {
	top := AnalyzeRecipients(transactions).Top
	byCount := make([]models.RecipientStat, len(top))
	copy(byCount, top)
	sort.SliceStable(byCount, func(i, j int) bool {
		return byCount[i].Count > byCount[j].Count
	})
	return byCount
}
