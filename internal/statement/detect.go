package statement

import (
	"strings"

	"adeyosola/bank-wrapped/internal/dateutils"
)

// ColumnMapping records which grid column holds each transaction field.
type ColumnMapping struct {
	Date        int
	Description int
	Debit       int
	Credit      int
	Balance     int
	Channel     int
	Reference   int
}

// detection is the result of a successful detector run: the mapping plus
// the index of the first data row.
type detection struct {
	mapping  ColumnMapping
	startRow int
}

// columnDetector is one tier of the header detection pipeline. Detectors
// run in order against the raw grid; the first to succeed wins.
type columnDetector interface {
	Name() string
	Detect(rows [][]string) (detection, bool)
}

// detectScanLimit bounds how deep into the grid detectors look for a
// header. Statement preambles are short; anything past this is data.
const detectScanLimit = 50

var strongHeaderPatterns = []string{
	"trans. date",
	"transaction date",
	"trans date",
}

var metadataMarkers = []string{
	"account name",
	"account type",
	"opening balance",
	"closing balance",
	"date printed",
}

// headerKeywordDetector finds an explicit header row by its column
// captions. A row qualifies when it carries a strong transaction-date
// caption, or a date caption together with several other transaction
// keywords.
type headerKeywordDetector struct{}

func (headerKeywordDetector) Name() string { return "keyword" }

func (headerKeywordDetector) Detect(rows [][]string) (detection, bool) {
	limit := len(rows)
	if limit > detectScanLimit {
		limit = detectScanLimit
	}

	for i := 0; i < limit; i++ {
		row := rows[i]
		if len(row) < 5 {
			continue
		}

		rowText := strings.ToLower(strings.Join(row, " "))
		if containsAny(rowText, metadataMarkers) {
			continue
		}

		hasStrongHeader := false
		for _, pattern := range strongHeaderPatterns {
			if strings.Contains(rowText, pattern) || rowHasCaption(row, pattern) {
				hasStrongHeader = true
				break
			}
		}

		hasMultipleKeywords := (strings.Contains(rowText, "debit") || strings.Contains(rowText, "credit")) &&
			(strings.Contains(rowText, "description") || strings.Contains(rowText, "narration")) &&
			(strings.Contains(rowText, "balance") || strings.Contains(rowText, "reference"))

		if hasStrongHeader || (hasMultipleKeywords && strings.Contains(rowText, "date")) {
			if mapping, ok := mapHeaderColumns(row); ok {
				return detection{mapping: mapping, startRow: i + 1}, true
			}
		}
	}
	return detection{}, false
}

// rowHasCaption reports whether any cell equals the caption, ignoring
// case and dots ("Trans. Date" vs "Trans Date").
func rowHasCaption(row []string, caption string) bool {
	bare := strings.ReplaceAll(caption, ".", "")
	for _, cell := range row {
		cell = strings.ToLower(strings.TrimSpace(cell))
		if cell == caption || strings.ReplaceAll(cell, ".", "") == bare {
			return true
		}
	}
	return false
}

// implicitHeaderDetector handles grids whose header row carries no
// recognizable captions. It looks for the first row whose leading cell is
// date-like, then tries to map the row directly above it as a header; if
// that fails, the data row's own shape decides the mapping.
type implicitHeaderDetector struct{}

func (implicitHeaderDetector) Name() string { return "implicit" }

func (implicitHeaderDetector) Detect(rows [][]string) (detection, bool) {
	limit := len(rows)
	if limit > detectScanLimit {
		limit = detectScanLimit
	}

	for i := 0; i < limit; i++ {
		row := rows[i]
		if len(row) < 3 {
			continue
		}

		firstCell := strings.TrimSpace(row[0])
		if !dateutils.IsDateLike(firstCell) || len(row) < 5 {
			continue
		}

		if i > 0 {
			if mapping, ok := mapHeaderColumns(rows[i-1]); ok {
				return detection{mapping: mapping, startRow: i}, true
			}
		}

		if mapping, ok := mapDataColumns(row); ok {
			return detection{mapping: mapping, startRow: i}, true
		}
	}
	return detection{}, false
}

// positionalDetector is the last tier: assume the canonical OPay column
// order from the first date-like row, squeezing into narrower grids.
type positionalDetector struct{}

func (positionalDetector) Name() string { return "positional" }

func (positionalDetector) Detect(rows [][]string) (detection, bool) {
	limit := len(rows)
	if limit > detectScanLimit {
		limit = detectScanLimit
	}

	for i := 0; i < limit; i++ {
		row := rows[i]
		if len(row) < 3 {
			continue
		}
		if !dateutils.IsDateLike(strings.TrimSpace(row[0])) {
			continue
		}
		return detection{mapping: defaultMapping(len(row)), startRow: i}, true
	}
	return detection{}, false
}

// mapHeaderColumns builds a ColumnMapping from an explicit header row.
// It fails when no plausible transaction-date column exists.
func mapHeaderColumns(row []string) (ColumnMapping, bool) {
	dateCol, descCol, debitCol, creditCol, balanceCol, channelCol, refCol := -1, -1, -1, -1, -1, -1, -1

	for i, raw := range row {
		cell := strings.ToLower(strings.TrimSpace(raw))
		if cell == "" {
			continue
		}

		if dateCol == -1 && (strings.Contains(cell, "date") || strings.Contains(cell, "time") ||
			strings.Contains(cell, "posted") || cell == "dt" || cell == "d/t") {
			dateCol = i
		}
		if descCol == -1 && (strings.Contains(cell, "description") || strings.Contains(cell, "narration") ||
			strings.Contains(cell, "particulars") || strings.Contains(cell, "details") ||
			strings.Contains(cell, "remark") || strings.Contains(cell, "narrative") ||
			strings.Contains(cell, "memo") || strings.Contains(cell, "note") || cell == "desc") {
			descCol = i
		}
		if debitCol == -1 && (strings.Contains(cell, "debit") || cell == "dr" || cell == "withdrawal") {
			debitCol = i
		}
		if creditCol == -1 && (strings.Contains(cell, "credit") || cell == "cr" || cell == "deposit") {
			creditCol = i
		}
		if balanceCol == -1 && (strings.Contains(cell, "balance") || strings.Contains(cell, "bal")) {
			balanceCol = i
		}
		if channelCol == -1 && (strings.Contains(cell, "channel") || strings.Contains(cell, "source") ||
			strings.Contains(cell, "type") || strings.Contains(cell, "medium") || strings.Contains(cell, "mode")) {
			channelCol = i
		}
		if refCol == -1 && (strings.Contains(cell, "reference") || strings.Contains(cell, "ref") ||
			strings.Contains(cell, "transaction id") || strings.Contains(cell, "transaction no")) {
			refCol = i
		}
	}

	// The date column anchors everything; it must sit near the left edge.
	if dateCol == -1 || dateCol > 5 {
		return ColumnMapping{}, false
	}
	dateCaption := strings.ToLower(strings.TrimSpace(row[dateCol]))
	if strings.Contains(dateCaption, "printed") || strings.Contains(dateCaption, "statement") {
		return ColumnMapping{}, false
	}

	// A single "amount" column doubles as both directions.
	if debitCol == -1 && creditCol == -1 {
		for i, raw := range row {
			if strings.Contains(strings.ToLower(strings.TrimSpace(raw)), "amount") {
				debitCol = i
				creditCol = i
				break
			}
		}
	}

	// Missing description: OPay often puts Value Date between Trans. Date
	// and Description, so skip past it when present.
	if descCol == -1 && dateCol+1 < len(row) {
		nextCell := strings.ToLower(strings.TrimSpace(row[dateCol+1]))
		if strings.Contains(nextCell, "value date") ||
			(strings.Contains(nextCell, "value") && strings.Contains(nextCell, "date")) {
			descCol = dateCol + 2
		} else {
			descCol = dateCol + 1
		}
	} else if descCol == -1 {
		descCol = dateCol + 1
	}

	mapping := ColumnMapping{
		Date:        dateCol,
		Description: fallback(descCol, dateCol+1),
		Debit:       fallback(debitCol, descCol+1),
		Credit:      fallback(creditCol, fallback(debitCol, descCol+1)+1),
		Balance:     fallback(balanceCol, fallback(creditCol, descCol+2)+1),
		Channel:     fallback(channelCol, fallback(balanceCol, descCol+3)+1),
		Reference:   fallback(refCol, fallback(channelCol, descCol+4)+1),
	}
	return mapping, true
}

// mapDataColumns infers a mapping from the shape of a data row. A second
// date-like cell means the canonical OPay layout with a Value Date column.
func mapDataColumns(row []string) (ColumnMapping, bool) {
	if !dateutils.IsDateLike(strings.TrimSpace(row[0])) {
		return ColumnMapping{}, false
	}

	hasValueDate := len(row) > 1 && dateutils.IsDateLike(strings.TrimSpace(row[1]))
	if hasValueDate && len(row) >= 7 {
		return ColumnMapping{
			Date:        0,
			Description: 2,
			Debit:       3,
			Credit:      4,
			Balance:     5,
			Channel:     6,
			Reference:   7,
		}, true
	}

	return ColumnMapping{
		Date:        0,
		Description: clampCol(1, len(row)),
		Debit:       clampCol(2, len(row)),
		Credit:      clampCol(3, len(row)),
		Balance:     clampCol(4, len(row)),
		Channel:     clampCol(5, len(row)),
		Reference:   clampCol(6, len(row)),
	}, true
}

// defaultMapping is the canonical layout squeezed into a grid of the
// given width.
func defaultMapping(width int) ColumnMapping {
	return ColumnMapping{
		Date:        0,
		Description: clampCol(1, width),
		Debit:       clampCol(2, width),
		Credit:      clampCol(3, width),
		Balance:     clampCol(4, width),
		Channel:     clampCol(5, width),
		Reference:   clampCol(6, width),
	}
}

func clampCol(col, width int) int {
	if col > width-1 {
		return width - 1
	}
	return col
}

func fallback(col, alt int) int {
	if col >= 0 {
		return col
	}
	return alt
}

func containsAny(text string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
