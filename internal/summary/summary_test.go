package summary

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adeyosola/bank-wrapped/internal/models"
)

func monthStat(month time.Month, year int, debits int64) models.MonthStat {
	return models.MonthStat{
		Month:     month,
		MonthName: month.String(),
		Year:      year,
		Debits:    decimal.NewFromInt(debits),
	}
}

func sampleAnalysis() models.WrappedAnalysis {
	peakDate := time.Date(2024, time.September, 14, 0, 0, 0, 0, time.UTC)
	return models.WrappedAnalysis{
		Metadata: models.StatementMetadata{AccountName: "ADEYOSOLA A"},
		Period: models.Period{
			Start:     time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
			End:       time.Date(2024, time.September, 30, 0, 0, 0, 0, time.UTC),
			TotalDays: 92,
		},
		Overview: models.Overview{
			TotalTransactions: 120,
			TotalCredits:      decimal.NewFromInt(500000),
			TotalDebits:       decimal.NewFromInt(420000),
		},
		Merchants: models.MerchantAnalysis{
			Top: []models.MerchantStat{
				{Name: "SHOPRITE", Count: 6, TotalAmount: decimal.NewFromInt(90000)},
			},
		},
		Recipients: models.RecipientAnalysis{
			Top: []models.RecipientStat{
				{Name: "John Doe", Count: 4, TotalAmount: decimal.NewFromInt(60000)},
			},
		},
		Categories: models.CategoryAnalysis{
			Breakdown: []models.CategoryStat{
				{Category: models.CategoryShopping, Count: 10, TotalAmount: decimal.NewFromInt(150000), Percentage: 35.7},
			},
			TopCategory: models.CategoryShopping,
		},
		Temporal: models.TemporalAnalysis{
			ByMonth: []models.MonthStat{
				monthStat(time.July, 2024, 100000),
				monthStat(time.August, 2024, 110000),
				monthStat(time.September, 2024, 210000),
			},
			Weekend: models.BucketStat{Count: 20, Amount: decimal.NewFromInt(120000)},
			Weekday: models.BucketStat{Count: 80, Amount: decimal.NewFromInt(300000)},
			PeakDay: models.PeakDay{
				Date:             peakDate,
				Amount:           decimal.NewFromInt(85000),
				TransactionCount: 3,
				Transactions: []models.Transaction{
					{
						Date:        peakDate,
						Description: "POS Card Payment | SHOPRITE LEKKI",
						Amount:      decimal.NewFromInt(-60000),
						Type:        models.TypeDebit,
					},
					{
						Date:        peakDate,
						Description: strings.Repeat("x", 60),
						Amount:      decimal.NewFromInt(-25000),
						Type:        models.TypeDebit,
					},
					{
						Date:        peakDate,
						Description: "Salary",
						Amount:      decimal.NewFromInt(100000),
						Type:        models.TypeCredit,
					},
				},
			},
			PeakMonth: func() *models.MonthStat {
				m := monthStat(time.September, 2024, 210000)
				return &m
			}(),
			TimeOfDay: models.TimeOfDayBreakdown{
				Morning:   models.BucketStat{Count: 10, Amount: decimal.NewFromInt(50000)},
				Afternoon: models.BucketStat{Count: 40, Amount: decimal.NewFromInt(200000)},
				Evening:   models.BucketStat{Count: 30, Amount: decimal.NewFromInt(150000)},
				Night:     models.BucketStat{Count: 5, Amount: decimal.NewFromInt(20000)},
			},
		},
		Personality: models.PersonalityResult{Archetype: models.ArchetypeBigSpender},
	}
}

func TestPrepare(t *testing.T) {
	s := Prepare(sampleAnalysis())

	assert.Equal(t, "ADEYOSOLA A", s.AccountName)
	assert.Equal(t, "1 Jul 2024", s.Period.Start)
	assert.Equal(t, "30 Sep 2024", s.Period.End)
	assert.Equal(t, 92, s.Period.Days)

	assert.Equal(t, 120, s.Overview.TotalTransactions)
	assert.InDelta(t, 80000, s.Overview.NetFlow, 0.001)

	assert.Equal(t, "14 Sep 2024", s.BiggestDay.Date)
	assert.Equal(t, 3, s.BiggestDay.TransactionCount)
	require.Len(t, s.BiggestDay.TopPurchases, 2, "credits are not purchases")
	assert.Equal(t, "POS Card Payment | SHOPRITE LEKKI (₦60,000)", s.BiggestDay.TopPurchases[0])
	assert.Equal(t, strings.Repeat("x", 50)+"... (₦25,000)", s.BiggestDay.TopPurchases[1])

	require.Len(t, s.TopMerchants, 1)
	assert.Equal(t, "SHOPRITE", s.TopMerchants[0].Name)
	assert.Equal(t, 6, s.TopMerchants[0].Visits)

	assert.Equal(t, "Afternoon (12pm-6pm)", s.Rhythm.PeakTimeOfDay)
	assert.InDelta(t, 200000, s.Rhythm.PeakTimeAmount, 0.001)
	assert.InDelta(t, 28.57, s.Rhythm.WeekendPercentage, 0.01)

	assert.Equal(t, "September 2024", s.Journey.PeakMonth)
	assert.InDelta(t, 210000, s.Journey.PeakMonthAmount, 0.001)
	// First half avg 100000, second half avg 160000: +60%.
	assert.Equal(t, models.TrendIncreasing, s.Journey.MonthlyTrend)

	assert.Equal(t, "The Big Spender", s.Personality.Archetype)
	assert.Contains(t, s.Personality.Traits, "The Big Spender")
	assert.Contains(t, s.Personality.Traits, "Loyal Customer")
	assert.NotContains(t, s.Personality.Traits, "Food Lover")
}

func TestPrepareDefaultAccountName(t *testing.T) {
	analysis := sampleAnalysis()
	analysis.Metadata.AccountName = ""

	s := Prepare(analysis)

	assert.Equal(t, "Friend", s.AccountName)
}

func TestMonthlyTrend(t *testing.T) {
	tests := []struct {
		name   string
		debits []int64
		want   models.MonthlyTrend
	}{
		{"single month", []int64{50000}, models.TrendStable},
		{"increasing", []int64{100000, 100000, 150000, 160000}, models.TrendIncreasing},
		{"decreasing", []int64{200000, 200000, 100000, 100000}, models.TrendDecreasing},
		{"stable", []int64{100000, 100000, 105000, 102000}, models.TrendStable},
		{"volatile", []int64{100000, 10000, 10000, 100000}, models.TrendVolatile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			months := make([]models.MonthStat, 0, len(tt.debits))
			for i, d := range tt.debits {
				months = append(months, monthStat(time.Month(i+1), 2024, d))
			}
			assert.Equal(t, tt.want, monthlyTrend(months))
		})
	}
}
