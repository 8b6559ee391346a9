package analyze

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"adeyosola/bank-wrapped/internal/currencyutils"
	"adeyosola/bank-wrapped/internal/dateutils"
	"adeyosola/bank-wrapped/internal/logging"
	"adeyosola/bank-wrapped/internal/models"
)

const maxFunFacts = 5

// Analyzer runs all dimension analyzers over a parsed statement and
// assembles the wrapped result.
type Analyzer struct {
	clock dateutils.Clock
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithClock overrides the clock used for the current no-spend streak.
func WithClock(clock dateutils.Clock) Option {
	return func(a *Analyzer) {
		a.clock = clock
	}
}

// New creates an Analyzer with the system clock.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{clock: dateutils.SystemClock{}}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze produces the complete analytics result for one statement.
// The period is derived from the actual transaction dates; statement
// metadata only fills in when there are no transactions at all.
func (a *Analyzer) Analyze(statement models.ParsedStatement) models.WrappedAnalysis {
	transactions := statement.Transactions

	var totalDebits, totalCredits decimal.Decimal
	debitCount := 0
	for _, tx := range transactions {
		if tx.IsDebit() {
			totalDebits = totalDebits.Add(tx.AbsAmount())
			debitCount++
		} else {
			totalCredits = totalCredits.Add(tx.AbsAmount())
		}
	}

	var averageTransaction decimal.Decimal
	if debitCount > 0 {
		averageTransaction = totalDebits.Div(decimalFromInt(debitCount))
	}

	merchants := AnalyzeMerchants(transactions)
	recipients := AnalyzeRecipients(transactions)
	categories := AnalyzeCategories(transactions)
	subscriptions := AnalyzeSubscriptions(transactions)
	temporal := AnalyzeTemporal(transactions, a.clock)
	streaks := AnalyzeStreaks(transactions, a.clock)

	sorted := make([]models.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	period := models.Period{
		Start: statement.Metadata.PeriodStart,
		End:   statement.Metadata.PeriodEnd,
	}
	if len(sorted) > 0 {
		period.Start = sorted[0].Date
		period.End = sorted[len(sorted)-1].Date
	}
	period.TotalDays = dateutils.DaysBetween(period.Start, period.End) + 1

	personality := DeterminePersonality(
		transactions, categories.Breakdown, totalCredits, totalDebits, recipients.TotalRecipients)

	analysis := models.WrappedAnalysis{
		Metadata: statement.Metadata,
		Period:   period,
		Overview: models.Overview{
			TotalTransactions:  len(transactions),
			TotalDebits:        totalDebits,
			TotalCredits:       totalCredits,
			NetFlow:            totalCredits.Sub(totalDebits),
			AverageTransaction: averageTransaction,
		},
		Merchants:     merchants,
		Recipients:    recipients,
		Categories:    categories,
		Subscriptions: subscriptions,
		Temporal:      temporal,
		Streaks:       streaks,
		Personality:   personality,
	}

	if len(sorted) > 0 {
		analysis.FirstTransaction = transactionPointer(sorted[0])
		analysis.LastTransaction = transactionPointer(sorted[len(sorted)-1])
	}
	if biggest := biggestDebit(transactions); biggest != nil {
		analysis.BiggestTransaction = transactionPointer(*biggest)
	}

	analysis.FunFacts = generateFunFacts(analysis)

	log.WithFields(logrus.Fields{
		logging.FieldTransactions: len(transactions),
		logging.FieldArchetype:    string(personality.Archetype),
	}).Info("Statement analysis complete")

	return analysis
}

func biggestDebit(transactions []models.Transaction) *models.Transaction {
	var biggest *models.Transaction
	for i := range transactions {
		tx := &transactions[i]
		if !tx.IsDebit() {
			continue
		}
		if biggest == nil || tx.AbsAmount().GreaterThan(biggest.AbsAmount()) {
			biggest = tx
		}
	}
	return biggest
}

func transactionPointer(tx models.Transaction) *models.TransactionPointer {
	return &models.TransactionPointer{
		Date:        tx.Date,
		Description: tx.Description,
		Amount:      tx.Amount,
	}
}

// generateFunFacts builds the shareable one-liners in priority order
// and caps the list at five.
func generateFunFacts(analysis models.WrappedAnalysis) []string {
	facts := make([]string, 0, maxFunFacts)

	if favorite := analysis.Merchants.FavoriteStore; favorite != nil {
		facts = append(facts, fmt.Sprintf("You visited %s %d times, spending %s",
			favorite.Name, favorite.Count, currencyutils.FormatNaira(favorite.TotalAmount)))
	}

	totalDebits := analysis.Overview.TotalDebits
	if plates := totalDebits.Div(decimalFromInt(2500)).IntPart(); plates > 10 {
		facts = append(facts, fmt.Sprintf(
			"Your total spending could buy %d plates of jollof rice!", plates))
	}

	if phones := totalDebits.Div(decimalFromInt(800000)).IntPart(); phones >= 1 {
		plural := ""
		if phones > 1 {
			plural = "s"
		}
		facts = append(facts, fmt.Sprintf("You spent enough to buy %d iPhone%s!", phones, plural))
	}

	if analysis.Subscriptions.YearlyProjection.IsPositive() {
		facts = append(facts, fmt.Sprintf("Your subscriptions cost about %s per year",
			currencyutils.FormatNairaCompact(analysis.Subscriptions.YearlyProjection)))
	}

	for _, stat := range analysis.Categories.Breakdown {
		if stat.Category == models.CategoryData && stat.TotalAmount.GreaterThan(decimalFromInt(10000)) {
			gb := stat.TotalAmount.Div(decimalFromInt(1000)).IntPart()
			facts = append(facts, fmt.Sprintf(
				"You probably downloaded %dGB+ of data this period!", gb))
			break
		}
	}

	if perDay := float64(analysis.Overview.TotalTransactions) / 30; perDay > 5 {
		facts = append(facts, fmt.Sprintf(
			"You made about %.0f transactions per day on average", perDay))
	}

	if analysis.Overview.AverageTransaction.IsPositive() {
		facts = append(facts, fmt.Sprintf("Your average transaction was %s",
			currencyutils.FormatNaira(analysis.Overview.AverageTransaction)))
	}

	if len(facts) > maxFunFacts {
		facts = facts[:maxFunFacts]
	}
	return facts
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

func decimalZero() decimal.Decimal {
	return decimal.Decimal{}
}
