package insights

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adeyosola/bank-wrapped/internal/models"
	"adeyosola/bank-wrapped/internal/parsererror"
)

func fallbackAnalysis() models.WrappedAnalysis {
	return models.WrappedAnalysis{
		Metadata: models.StatementMetadata{AccountName: "ADEYOSOLA A"},
		Overview: models.Overview{
			TotalTransactions:  50,
			TotalCredits:       decimal.NewFromInt(300000),
			TotalDebits:        decimal.NewFromInt(250000),
			NetFlow:            decimal.NewFromInt(50000),
			AverageTransaction: decimal.NewFromInt(5000),
		},
		Merchants: models.MerchantAnalysis{
			Top: []models.MerchantStat{
				{Name: "CHICKEN REPUBLIC", Count: 18, TotalAmount: decimal.NewFromInt(90000), AverageAmount: decimal.NewFromInt(5000)},
			},
			TotalMerchants: 1,
		},
		Recipients: models.RecipientAnalysis{
			Top: []models.RecipientStat{
				{Name: "John Doe", Count: 12, TotalAmount: decimal.NewFromInt(60000)},
				{Name: "Mary Okafor", Count: 2, TotalAmount: decimal.NewFromInt(80000)},
			},
			TotalRecipients:   12,
			TotalSentToOthers: decimal.NewFromInt(140000),
		},
		Categories: models.CategoryAnalysis{
			Breakdown: []models.CategoryStat{
				{Category: models.CategoryFood, Count: 18, TotalAmount: decimal.NewFromInt(90000), Percentage: 36},
			},
			TopCategory: models.CategoryFood,
		},
		Temporal: models.TemporalAnalysis{
			PeakDay: models.PeakDay{
				Date:             time.Date(2024, time.September, 14, 0, 0, 0, 0, time.UTC),
				Amount:           decimal.NewFromInt(120000),
				TransactionCount: 4,
			},
			PeakMonth: &models.MonthStat{
				Month: time.September, MonthName: "September", Year: 2024,
				Debits: decimal.NewFromInt(120000),
			},
			Weekend: models.BucketStat{Count: 10, Amount: decimal.NewFromInt(50000)},
			Weekday: models.BucketStat{Count: 40, Amount: decimal.NewFromInt(200000)},
			TimeOfDay: models.TimeOfDayBreakdown{
				Afternoon: models.BucketStat{Count: 30, Amount: decimal.NewFromInt(150000)},
				Night:     models.BucketStat{Count: 5, Amount: decimal.NewFromInt(20000)},
			},
		},
		Personality: models.PersonalityResult{
			Archetype: models.ArchetypeFoodie,
			Emoji:     "🍕",
		},
	}
}

func TestFallbackFillsEverySection(t *testing.T) {
	insights := Fallback(fallbackAnalysis())

	require.NotNil(t, insights)
	assert.NotNil(t, insights.Intro)
	assert.NotNil(t, insights.Overview)
	assert.NotNil(t, insights.OdogwuDay)
	assert.NotNil(t, insights.YourSpots)
	assert.NotNil(t, insights.MoneyCircle)
	assert.NotNil(t, insights.Categories)
	assert.NotNil(t, insights.Rhythm)
	assert.NotNil(t, insights.Journey)
	assert.NotNil(t, insights.Personality)
	assert.NotNil(t, insights.Summary)

	assert.Equal(t, "Omo, ADEYOSOLA A!", insights.Intro.Greeting)
	assert.Equal(t, "Soft Life, Secured", insights.Overview.Headline)

	// 120K day lands in the balling tier.
	assert.Equal(t, "You were BALLING 💰", insights.OdogwuDay.Title)
	assert.NotEmpty(t, insights.OdogwuDay.Roast)

	require.Len(t, insights.YourSpots.Merchants, 1)
	assert.Equal(t, "Committed 💕", insights.YourSpots.Merchants[0].Relationship)

	require.Len(t, insights.MoneyCircle.Recipients, 2)
	assert.Equal(t, "The Frequent Receiver", insights.MoneyCircle.Recipients[0].Title)
	assert.Equal(t, "Big Ticket Transfer", insights.MoneyCircle.Recipients[1].Title)

	assert.Equal(t, "The Foodie", insights.Personality.Archetype)
	assert.Contains(t, insights.Personality.Roast, "CHICKEN REPUBLIC")
	assert.Len(t, insights.Personality.Traits, 3)

	assert.Contains(t, insights.Journey.PeakMonthRoast, "September")
	assert.Contains(t, insights.Journey.PeakMonthRoast, "Ember months")
}

func TestFallbackEmptyAnalysis(t *testing.T) {
	insights := Fallback(models.WrappedAnalysis{})

	require.NotNil(t, insights)
	assert.Equal(t, "Omo, Friend!", insights.Intro.Greeting)
	assert.Equal(t, "A solid spending day 📊", insights.OdogwuDay.Title)
	assert.Empty(t, insights.YourSpots.Merchants)
	assert.Contains(t, insights.Journey.PeakMonthRoast, "continues")
	// Zero-value archetype falls through to the steady default roast.
	assert.NotEmpty(t, insights.Personality.Roast)
}

func TestMerchantRelationshipTiers(t *testing.T) {
	tests := []struct {
		name       string
		count      int
		average    int64
		wantStatus string
	}{
		{"serious", 25, 3000, "It's Serious 💍"},
		{"committed", 16, 3000, "Committed 💕"},
		{"regular", 11, 3000, "Regular Thing 🤝"},
		{"sugar customer", 2, 70000, "Sugar Customer 💰"},
		{"situationship", 6, 4000, "The Situationship 👀"},
		{"casual", 1, 2000, "Casual 👋"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, roast := merchantRelationship(models.MerchantStat{
				Count:         tt.count,
				AverageAmount: decimal.NewFromInt(tt.average),
			})
			assert.Equal(t, tt.wantStatus, status)
			assert.NotEmpty(t, roast)
		})
	}
}

func TestRhythmInsightNightCrawler(t *testing.T) {
	timeOfDay := models.TimeOfDayBreakdown{
		Afternoon: models.BucketStat{Amount: decimal.NewFromInt(50000)},
		Night:     models.BucketStat{Amount: decimal.NewFromInt(50000)},
	}

	insight := rhythmInsight(timeOfDay, models.BucketStat{}, models.BucketStat{Amount: decimal.NewFromInt(100000)})

	assert.Equal(t, "Night Crawler 🦉", insight.Title)
	assert.Contains(t, insight.Description, "50%")
}

func TestParseInsights(t *testing.T) {
	t.Run("plain json", func(t *testing.T) {
		insights, err := parseInsights(`{"intro": {"greeting": "Omo!"}}`)
		require.NoError(t, err)
		require.NotNil(t, insights.Intro)
		assert.Equal(t, "Omo!", insights.Intro.Greeting)
	})

	t.Run("fenced json", func(t *testing.T) {
		insights, err := parseInsights("```json\n{\"summary\": {\"headline\": \"Done!\"}}\n```")
		require.NoError(t, err)
		require.NotNil(t, insights.Summary)
		assert.Equal(t, "Done!", insights.Summary.Headline)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := parseInsights("sorry, I cannot help with that")
		require.Error(t, err)

		var parseErr *parsererror.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "insights", parseErr.Stage)
		assert.Contains(t, parseErr.Value, "sorry, I cannot help")
	})
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt(models.AnalysisSummary{
		AccountName: "ADEYOSOLA A",
		Period:      models.SummaryPeriod{Start: "1 Jul 2024", End: "30 Sep 2024", Days: 92},
		Overview:    models.SummaryTotals{TotalTransactions: 120, TotalCredits: 500000, TotalDebits: 420000, NetFlow: 80000},
		TopMerchants: []models.SummaryMerchant{
			{Name: "SHOPRITE", Amount: 90000, Visits: 6},
		},
		Journey: models.SummaryJourney{PeakMonth: "September 2024", MonthlyTrend: models.TrendIncreasing},
	})

	assert.Contains(t, prompt, "Name: ADEYOSOLA A")
	assert.Contains(t, prompt, "1. SHOPRITE: ₦90,000 (6 visits)")
	assert.Contains(t, prompt, "Trend: increasing")
	assert.Contains(t, prompt, "Return ONLY valid JSON")
}
