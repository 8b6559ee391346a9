// Package integration holds end-to-end tests across the parse, analyze,
// summary and insights packages.
package integration

import (
	"context"
	"testing"
	"time"

	"adeyosola/bank-wrapped/internal/analyze"
	"adeyosola/bank-wrapped/internal/dateutils"
	"adeyosola/bank-wrapped/internal/insights"
	"adeyosola/bank-wrapped/internal/statement"
	"adeyosola/bank-wrapped/internal/summary"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pipelineClock = dateutils.FixedClock{Time: time.Date(2024, time.October, 1, 12, 0, 0, 0, time.UTC)}

// statementGrid is a realistic month of activity: metadata preamble,
// captioned header, and a mix of POS food spending, transfers, airtime
// and one salary credit.
func statementGrid() [][]string {
	return [][]string{
		{"OPay Digital Services Limited"},
		{"Account Name:", "ADEYOSOLA OGUNLEYE"},
		{"Period:", "01 Sep 2024 - 30 Sep 2024"},
		{"Trans. Date", "Value Date", "Description", "Debit", "Credit", "Balance After", "Channel", "Transaction Reference"},
		{"02 Sep 2024 08:15:00", "02 Sep 2024", "Salary September", "", "250,000", "275,000.00", "Transfer", "REF-001"},
		{"02 Sep 2024 12:30:00", "02 Sep 2024", "OPay Card Payment | CHICKEN REPUBLIC", "8,500", "", "266,500.00", "POS", "REF-002"},
		{"05 Sep 2024 13:10:00", "05 Sep 2024", "OPay Card Payment | CHICKEN REPUBLIC", "6,000", "", "260,500.00", "POS", "REF-003"},
		{"07 Sep 2024 19:45:00", "07 Sep 2024", "Transfer to JOHN DOE | GTBank | 0123456789", "25,000", "", "235,500.00", "App", "REF-004"},
		{"10 Sep 2024 09:05:00", "10 Sep 2024", "Airtime Recharge 0803", "1,000", "", "234,500.00", "App", "REF-005"},
		{"14 Sep 2024 14:20:00", "14 Sep 2024", "OPay Card Payment | SHOPRITE LEKKI", "42,000", "", "192,500.00", "POS", "REF-006"},
		{"21 Sep 2024 11:00:00", "21 Sep 2024", "NETFLIX.COM subscription", "4,400", "", "188,100.00", "Web", "REF-007"},
	}
}

func TestFullPipeline(t *testing.T) {
	parser := statement.NewParser(statement.WithClock(pipelineClock))
	parsed, err := parser.ParseGrid(context.Background(), statementGrid())
	require.NoError(t, err)
	require.Len(t, parsed.Transactions, 7)

	analysis := analyze.New(analyze.WithClock(pipelineClock)).Analyze(*parsed)

	// Overview totals reconcile with the raw rows
	assert.Equal(t, 7, analysis.Overview.TotalTransactions)
	assert.True(t, analysis.Overview.TotalCredits.Equal(decimal.NewFromInt(250000)))
	assert.True(t, analysis.Overview.TotalDebits.Equal(decimal.NewFromInt(86900)))

	// Merchant aggregation picked up the POS names
	require.NotEmpty(t, analysis.Merchants.Top)
	assert.Equal(t, "SHOPRITE LEKKI", analysis.Merchants.Top[0].Name)
	require.NotNil(t, analysis.Merchants.FavoriteStore)
	assert.Equal(t, "CHICKEN REPUBLIC", analysis.Merchants.FavoriteStore.Name)

	// Transfers landed in the money circle
	require.Len(t, analysis.Recipients.Top, 1)
	assert.Equal(t, "John Doe", analysis.Recipients.Top[0].Name)

	// Netflix was recognized as a subscription
	require.NotEmpty(t, analysis.Subscriptions.List)
	assert.Equal(t, "Netflix", analysis.Subscriptions.List[0].Name)

	compact := summary.Prepare(analysis)
	assert.Equal(t, "ADEYOSOLA OGUNLEYE", compact.AccountName)
	assert.Equal(t, analysis.Overview.TotalTransactions, compact.Overview.TotalTransactions)
	assert.InDelta(t, 86900, compact.Overview.TotalDebits, 0.01)
	assert.Equal(t, string(analysis.Personality.Archetype), compact.Personality.Archetype)

	narrative := insights.Fallback(analysis)
	require.NotNil(t, narrative)
	require.NotNil(t, narrative.Intro)
	assert.Contains(t, narrative.Intro.Greeting, "ADEYOSOLA OGUNLEYE")
	require.NotNil(t, narrative.Personality)
	assert.Equal(t, string(analysis.Personality.Archetype), narrative.Personality.Archetype)
}

func TestFullPipelineHeaderNotFound(t *testing.T) {
	grid := [][]string{
		{"some", "random", "cells"},
		{"that", "are", "not"},
		{"a", "statement", "at all"},
	}

	_, err := statement.NewParser(statement.WithClock(pipelineClock)).ParseGrid(context.Background(), grid)
	require.Error(t, err)
}
