// Package models defines the core data structures shared across the
// application: transactions, statement metadata, the analytics result
// types, and the summary sent to the insight generator.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a transaction.
type TransactionType string

const (
	TypeDebit  TransactionType = "debit"
	TypeCredit TransactionType = "credit"
)

// Transaction is a single reconstructed statement entry. It is immutable
// once constructed by the statement parser.
//
// Amount is signed: negative for debits (money leaving the account),
// positive for credits. Type always agrees with the sign of Amount.
// Merchant and Recipient are derived from the free-text description and
// may be empty; Category is always assigned (CategoryOther by default).
type Transaction struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Balance     decimal.Decimal `json:"balance"`
	Channel     string          `json:"channel"`
	Reference   string          `json:"reference"`
	Merchant    string          `json:"merchant,omitempty"`
	Recipient   string          `json:"recipient,omitempty"`
	Category    Category        `json:"category"`
}

// IsDebit reports whether the transaction is money leaving the account.
func (t Transaction) IsDebit() bool {
	return t.Type == TypeDebit
}

// IsCredit reports whether the transaction is money entering the account.
func (t Transaction) IsCredit() bool {
	return t.Type == TypeCredit
}

// AbsAmount returns the unsigned magnitude of the transaction amount.
func (t Transaction) AbsAmount() decimal.Decimal {
	return t.Amount.Abs()
}

// StatementMetadata holds the fields printed in the statement preamble.
// These are declared values as reported by the bank and may diverge from
// figures computed over the parsed transactions; they are informational
// only and never override computed totals.
type StatementMetadata struct {
	AccountName    string          `json:"account_name"`
	AccountNumber  string          `json:"account_number"`
	PeriodStart    time.Time       `json:"period_start"`
	PeriodEnd      time.Time       `json:"period_end"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	TotalDebit     decimal.Decimal `json:"total_debit"`
	TotalCredit    decimal.Decimal `json:"total_credit"`
	DebitCount     int             `json:"debit_count"`
	CreditCount    int             `json:"credit_count"`
}

// ParsedStatement is the output of the statement parser.
type ParsedStatement struct {
	Metadata     StatementMetadata `json:"metadata"`
	Transactions []Transaction     `json:"transactions"`
}

// TransactionCSVRow is the flat string representation of a Transaction
// used for the normalized CSV export.
type TransactionCSVRow struct {
	ID          string `csv:"ID"`
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
	Type        string `csv:"Type"`
	Balance     string `csv:"Balance"`
	Channel     string `csv:"Channel"`
	Reference   string `csv:"Reference"`
	Merchant    string `csv:"Merchant"`
	Recipient   string `csv:"Recipient"`
	Category    string `csv:"Category"`
}

// ToCSVRow converts a Transaction to its CSV export representation.
func (t Transaction) ToCSVRow() TransactionCSVRow {
	return TransactionCSVRow{
		ID:          t.ID,
		Date:        t.Date.Format("2006-01-02 15:04:05"),
		Description: t.Description,
		Amount:      t.Amount.StringFixed(2),
		Type:        string(t.Type),
		Balance:     t.Balance.StringFixed(2),
		Channel:     t.Channel,
		Reference:   t.Reference,
		Merchant:    t.Merchant,
		Recipient:   t.Recipient,
		Category:    string(t.Category),
	}
}
