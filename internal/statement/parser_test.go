package statement

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adeyosola/bank-wrapped/internal/dateutils"
	"adeyosola/bank-wrapped/internal/models"
	"adeyosola/bank-wrapped/internal/parsererror"
)

var parserClock = dateutils.FixedClock{Time: time.Date(2024, time.October, 15, 12, 0, 0, 0, time.UTC)}

// opayGrid mirrors the shape of a real OPay export: metadata preamble,
// captioned header, data rows, and an embedded summary row.
func opayGrid() [][]string {
	return [][]string{
		{"OPay Digital Services Limited"},
		{"Account Name:", "ADEYOSOLA OGUNLEYE"},
		{"Account Type:", "Wallet", "Account Number:", "8123456789"},
		{"Period:", "01 Sep 2024 - 30 Sep 2024"},
		{"Opening Balance:", "₦25,000.00"},
		{"Closing Balance:", "₦31,500.00"},
		{"Total Debit:", "₦180,500.00"},
		{"Total Credit:", "₦187,000.00"},
		{"Debit Count:", "42"},
		{"Credit Count:", "5"},
		{"Trans. Date", "Value Date", "Description", "Debit", "Credit", "Balance After", "Channel", "Transaction Reference"},
		{"02 Sep 2024 08:15:00", "02 Sep 2024", "Airtime Recharge 0803", "500", "", "24,500.00", "App", "REF-001"},
		{"03 Sep 2024 13:20:00", "03 Sep 2024", "Transfer to JOHN DOE | GTBank | 0123456789", "15,000", "", "9,500.00", "App", "REF-002"},
		{"05 Sep 2024 09:00:00", "05 Sep 2024", "Salary September", "", "187,000", "196,500.00", "Transfer", "REF-003"},
		{"Total", "", "", "15,500", "187,000", "", "", ""},
		{"07 Sep 2024 21:45:00", "07 Sep 2024", "OPay Card Payment | CHICKEN REPUBLIC", "4,500", "", "192,000.00", "POS", "REF-004"},
	}
}

func TestParseGridOpayLayout(t *testing.T) {
	parser := NewParser(WithClock(parserClock))

	parsed, err := parser.ParseGrid(context.Background(), opayGrid())
	require.NoError(t, err)
	require.NotNil(t, parsed)

	// Summary row inside the table is skipped
	require.Len(t, parsed.Transactions, 4)

	meta := parsed.Metadata
	assert.Equal(t, "ADEYOSOLA OGUNLEYE", meta.AccountName)
	assert.Equal(t, "8123456789", meta.AccountNumber)
	assert.Equal(t, time.September, meta.PeriodStart.Month())
	assert.Equal(t, 1, meta.PeriodStart.Day())
	assert.Equal(t, 30, meta.PeriodEnd.Day())
	assert.True(t, meta.OpeningBalance.Equal(decimalFromInt(25000)))
	assert.True(t, meta.ClosingBalance.Equal(decimalFromInt(31500)))
	assert.Equal(t, 42, meta.DebitCount)
	assert.Equal(t, 5, meta.CreditCount)

	airtime := parsed.Transactions[0]
	assert.Equal(t, models.TypeDebit, airtime.Type)
	assert.True(t, airtime.Amount.Equal(decimalFromInt(-500)))
	assert.Equal(t, models.CategoryAirtime, airtime.Category)
	assert.Equal(t, 8, airtime.Date.Hour())
	assert.NotEmpty(t, airtime.ID)

	transfer := parsed.Transactions[1]
	assert.Equal(t, models.CategoryTransfers, transfer.Category)
	assert.Equal(t, "John Doe", transfer.Recipient)
	assert.True(t, transfer.Amount.Equal(decimalFromInt(-15000)))

	salary := parsed.Transactions[2]
	assert.Equal(t, models.TypeCredit, salary.Type)
	assert.True(t, salary.Amount.Equal(decimalFromInt(187000)))

	pos := parsed.Transactions[3]
	assert.Equal(t, "CHICKEN REPUBLIC", pos.Merchant)
	assert.Equal(t, models.CategoryFood, pos.Category)
}

func TestParseGridWithoutHeader(t *testing.T) {
	// No caption row at all: the implicit tier must infer the canonical
	// layout from the first data row (value date in column 1).
	grid := [][]string{
		{"02 Sep 2024 08:15:00", "02 Sep 2024", "Mobile Data 2GB", "1,500", "", "23,000.00", "App", "REF-001"},
		{"03 Sep 2024 10:00:00", "03 Sep 2024", "Transfer to MARY SMITH | Kuda", "2,000", "", "21,000.00", "App", "REF-002"},
	}

	parser := NewParser(WithClock(parserClock))
	parsed, err := parser.ParseGrid(context.Background(), grid)
	require.NoError(t, err)
	require.Len(t, parsed.Transactions, 2)

	assert.Equal(t, models.CategoryData, parsed.Transactions[0].Category)
	assert.Equal(t, "Mobile Data 2GB", parsed.Transactions[0].Description)
	assert.Equal(t, "Mary Smith", parsed.Transactions[1].Recipient)
}

func TestParseGridSerialDates(t *testing.T) {
	// Spreadsheet exports ship dates as raw serial numbers
	grid := [][]string{
		{"Date", "Description", "Debit", "Credit", "Balance", "Channel", "Reference"},
		{"45566", "Netflix subscription", "4,400", "", "20,000.00", "App", "REF-001"},
	}

	parser := NewParser(WithClock(parserClock))
	parsed, err := parser.ParseGrid(context.Background(), grid)
	require.NoError(t, err)
	require.Len(t, parsed.Transactions, 1)

	tx := parsed.Transactions[0]
	assert.Equal(t, 2024, tx.Date.Year())
	assert.Equal(t, time.September, tx.Date.Month())
	assert.Equal(t, 30, tx.Date.Day())
	assert.Equal(t, models.CategorySubscriptions, tx.Category)
}

func TestParseGridHeaderNotFound(t *testing.T) {
	grid := [][]string{
		{"just", "some", "random", "cells"},
		{"no", "dates", "anywhere", "here"},
	}

	parser := NewParser(WithClock(parserClock))
	_, err := parser.ParseGrid(context.Background(), grid)
	require.Error(t, err)

	headerErr, ok := err.(*parsererror.HeaderNotFoundError)
	require.True(t, ok)
	assert.Equal(t, []string{"keyword", "implicit", "positional"}, headerErr.TiersApplied)
}

func TestParseGridSkipRules(t *testing.T) {
	grid := [][]string{
		{"Trans. Date", "Value Date", "Description", "Debit", "Credit", "Balance", "Channel", "Reference"},
		{"02 Sep 2024", "02 Sep 2024", "Airtime Recharge", "500", "", "24,500.00", "App", "REF-001"},
		{""},
		{"", "orphan", "row"},
		{"short", "row"},
		{"Closing Balance", "", "31,500.00", "", "", "", "", ""},
		{"03 Sep 2024", "03 Sep 2024", "Bolt Trip", "1,200", "", "23,300.00", "App", "REF-002"},
	}

	parser := NewParser(WithClock(parserClock))
	parsed, err := parser.ParseGrid(context.Background(), grid)
	require.NoError(t, err)
	assert.Len(t, parsed.Transactions, 2)
}

func TestParseGridRowErrorDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.DebugLevel)
	SetLogger(logger)
	defer SetLogger(logrus.New())

	grid := [][]string{
		{"S/N", "Trans. Date", "Description", "Debit", "Credit", "Balance"},
		{"1", "02 Sep 2024", "Airtime Recharge", "500", "", "24,500.00"},
		{"2", "", "Pending row", "100", "", "24,400.00"},
	}

	parser := NewParser(WithClock(parserClock))
	parsed, err := parser.ParseGrid(context.Background(), grid)
	require.NoError(t, err)
	assert.Len(t, parsed.Transactions, 1)

	// The dropped row is reported as a RowError so the skip is traceable.
	assert.Contains(t, buf.String(), "Skipping statement row")
	assert.Contains(t, buf.String(), "row 2: no usable date cell")
}

func TestParseGridRowCap(t *testing.T) {
	grid := [][]string{
		{"Trans. Date", "Value Date", "Description", "Debit", "Credit", "Balance", "Channel", "Reference"},
	}
	for i := 0; i < 20; i++ {
		grid = append(grid, []string{"02 Sep 2024", "02 Sep 2024", "Airtime Recharge", "100", "", "1,000.00", "App", "REF"})
	}

	parser := NewParser(WithClock(parserClock), WithMaxRows(11))
	parsed, err := parser.ParseGrid(context.Background(), grid)
	require.NoError(t, err)
	assert.Len(t, parsed.Transactions, 10)
}

func TestParseGridCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	grid := opayGrid()
	parser := NewParser(WithClock(parserClock))
	_, err := parser.ParseGrid(ctx, grid)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseFileEmptyStatement(t *testing.T) {
	t.Run("file does not exist", func(t *testing.T) {
		parser := NewParser(WithClock(parserClock))
		_, err := parser.ParseFile(context.Background(), "does-not-exist.csv")
		assert.Error(t, err)
	})
}

func decimalFromInt(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}
