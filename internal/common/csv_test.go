package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adeyosola/bank-wrapped/internal/models"
)

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{
			ID:          "tx-1",
			Date:        time.Date(2024, time.September, 5, 14, 30, 0, 0, time.UTC),
			Description: "Transfer to JOHN DOE | GTBank",
			Amount:      decimal.NewFromInt(-5000),
			Type:        models.TypeDebit,
			Balance:     decimal.NewFromInt(45000),
			Channel:     "App",
			Reference:   "REF001",
			Recipient:   "John Doe",
			Category:    models.CategoryTransfers,
		},
		{
			ID:          "tx-2",
			Date:        time.Date(2024, time.September, 6, 9, 0, 0, 0, time.UTC),
			Description: "Salary September",
			Amount:      decimal.NewFromInt(250000),
			Type:        models.TypeCredit,
			Balance:     decimal.NewFromInt(295000),
			Channel:     "Transfer",
			Reference:   "REF002",
			Category:    models.CategoryOther,
		},
	}
}

func TestWriteTransactionsToCSV(t *testing.T) {
	tmpDir := t.TempDir()
	outFile := filepath.Join(tmpDir, "out", "transactions.csv")

	err := WriteTransactionsToCSV(sampleTransactions(), outFile)
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	content := string(data)

	lines := strings.Split(strings.TrimSpace(content), "\n")
	assert.Len(t, lines, 3) // header + two rows
	assert.Contains(t, lines[0], "Date")
	assert.Contains(t, lines[0], "Category")
	assert.Contains(t, content, "Transfer to JOHN DOE | GTBank")
	assert.Contains(t, content, "-5000.00")
	assert.Contains(t, content, "transfers")
	assert.Contains(t, content, "250000.00")
}

func TestWriteTransactionsToCSV_NilInput(t *testing.T) {
	err := WriteTransactionsToCSV(nil, filepath.Join(t.TempDir(), "out.csv"))
	assert.Error(t, err)
}

func TestSetDelimiter(t *testing.T) {
	original := Delimiter
	defer SetDelimiter(original)

	SetDelimiter(';')
	assert.Equal(t, ';', Delimiter)
}
