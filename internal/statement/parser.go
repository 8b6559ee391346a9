// Package statement turns raw statement grids into typed transactions.
//
// Bank exports are not clean tables: a preamble of account metadata sits
// above the transaction table, the header row may be missing or
// unlabeled, and summary rows are mixed into the data. The parser runs a
// detection pipeline to locate the transaction columns, then rebuilds
// each row into a models.Transaction.
package statement

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"adeyosola/bank-wrapped/internal/classify"
	"adeyosola/bank-wrapped/internal/currencyutils"
	"adeyosola/bank-wrapped/internal/dateutils"
	"adeyosola/bank-wrapped/internal/fileutils"
	"adeyosola/bank-wrapped/internal/models"
	"adeyosola/bank-wrapped/internal/parsererror"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// DefaultMaxRows caps how many grid rows a single statement may carry.
const DefaultMaxRows = 100000

// skipMarkers identify summary rows embedded in the transaction table.
var skipMarkers = []string{"total", "summary", "opening", "closing"}

// Parser converts statement files into parsed statements.
type Parser struct {
	classifier *classify.Classifier
	clock      dateutils.Clock
	maxRows    int
	detectors  []columnDetector
}

// Option configures a Parser.
type Option func(*Parser)

// WithClassifier replaces the default classifier.
func WithClassifier(c *classify.Classifier) Option {
	return func(p *Parser) { p.classifier = c }
}

// WithClock replaces the system clock, pinning date fallbacks in tests.
func WithClock(clock dateutils.Clock) Option {
	return func(p *Parser) { p.clock = clock }
}

// WithMaxRows overrides the row cap.
func WithMaxRows(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxRows = n
		}
	}
}

// NewParser returns a ready Parser with the full detection pipeline.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		classifier: classify.New(),
		clock:      dateutils.SystemClock{},
		maxRows:    DefaultMaxRows,
		detectors: []columnDetector{
			headerKeywordDetector{},
			implicitHeaderDetector{},
			positionalDetector{},
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseFile loads a statement file and parses it.
func (p *Parser) ParseFile(ctx context.Context, filePath string) (*models.ParsedStatement, error) {
	grid, err := fileutils.LoadGrid(filePath)
	if err != nil {
		return nil, err
	}

	parsed, err := p.ParseGrid(ctx, grid)
	if err != nil {
		if headerErr, ok := err.(*parsererror.HeaderNotFoundError); ok {
			headerErr.FilePath = filePath
		}
		return nil, err
	}

	if len(parsed.Transactions) == 0 {
		return nil, &parsererror.EmptyStatementError{FilePath: filePath}
	}
	return parsed, nil
}

// ParseGrid parses an in-memory cell grid. The context is checked
// periodically so a slow parse of a huge grid can be cancelled.
func (p *Parser) ParseGrid(ctx context.Context, rows [][]string) (*models.ParsedStatement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(rows) > p.maxRows {
		log.WithFields(logrus.Fields{"rows": len(rows), "max": p.maxRows}).
			Warn("Statement exceeds row cap, truncating")
		rows = rows[:p.maxRows]
	}

	meta := extractMetadata(rows, p.clock)

	det, tierName, err := p.detectColumns(rows)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"detector": tierName, "start_row": det.startRow}).
		Debug("Detected transaction columns")

	transactions := make([]models.Transaction, 0, len(rows)-det.startRow)
	skipped := 0

	for i := det.startRow; i < len(rows); i++ {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		row := rows[i]
		if len(row) < 3 {
			skipped++
			continue
		}

		firstCell := strings.TrimSpace(row[0])
		if firstCell == "" || containsAny(strings.ToLower(firstCell), skipMarkers) {
			skipped++
			continue
		}

		tx, ok := p.parseRow(row, det.mapping)
		if !ok {
			rowErr := &parsererror.RowError{Row: i, Reason: "no usable date cell"}
			log.WithError(rowErr).Debug("Skipping statement row")
			skipped++
			continue
		}
		transactions = append(transactions, tx)
	}

	log.WithFields(logrus.Fields{
		"transactions": len(transactions),
		"skipped":      skipped,
	}).Info("Parsed statement grid")

	return &models.ParsedStatement{Metadata: meta, Transactions: transactions}, nil
}

// detectColumns runs the detection pipeline, returning the first hit.
func (p *Parser) detectColumns(rows [][]string) (detection, string, error) {
	tiers := make([]string, 0, len(p.detectors))
	for _, detector := range p.detectors {
		tiers = append(tiers, detector.Name())
		if det, ok := detector.Detect(rows); ok {
			return det, detector.Name(), nil
		}
	}

	scanned := len(rows)
	if scanned > detectScanLimit {
		scanned = detectScanLimit
	}
	return detection{}, "", &parsererror.HeaderNotFoundError{
		RowsScanned:  scanned,
		TiersApplied: tiers,
	}
}

// parseRow rebuilds one grid row into a Transaction. The signed amount
// is taken from whichever of the credit/debit cells is populated; a
// credit wins when both are.
func (p *Parser) parseRow(row []string, mapping ColumnMapping) (models.Transaction, bool) {
	dateStr := strings.TrimSpace(cellAt(row, mapping.Date))
	if dateStr == "" {
		return models.Transaction{}, false
	}

	description := strings.TrimSpace(cellAt(row, mapping.Description))
	debitAmount := currencyutils.ParseAmount(cellAt(row, mapping.Debit))
	creditAmount := currencyutils.ParseAmount(cellAt(row, mapping.Credit))

	date, _ := dateutils.ParseDate(dateStr, p.clock)
	channel := strings.TrimSpace(cellAt(row, mapping.Channel))

	tx := models.Transaction{
		ID:          uuid.NewString(),
		Date:        date,
		Description: description,
		Balance:     currencyutils.ParseAmount(cellAt(row, mapping.Balance)),
		Channel:     channel,
		Reference:   strings.TrimSpace(cellAt(row, mapping.Reference)),
		Merchant:    classify.ExtractMerchant(description),
		Recipient:   classify.ExtractRecipient(description),
		Category:    p.classifier.Classify(description, channel),
	}

	if creditAmount.IsPositive() {
		tx.Amount = creditAmount
		tx.Type = models.TypeCredit
	} else {
		tx.Amount = debitAmount.Neg()
		tx.Type = models.TypeDebit
	}

	return tx, true
}
