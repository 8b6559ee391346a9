package statement

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"adeyosola/bank-wrapped/internal/currencyutils"
	"adeyosola/bank-wrapped/internal/dateutils"
	"adeyosola/bank-wrapped/internal/models"
)

// metadataScanRows is how deep the preamble scan looks. Statement
// headers put all declared figures in the first few rows.
const metadataScanRows = 10

var periodRangePattern = regexp.MustCompile(`(?i)(\d{1,2}\s+\w+\s+\d{4})\s*[-–]\s*(\d{1,2}\s+\w+\s+\d{4})`)

// extractMetadata pulls the declared account figures from the statement
// preamble. Every field is optional; anything the scan cannot find stays
// at its zero value. Declared figures never override computed totals.
func extractMetadata(rows [][]string, clock dateutils.Clock) models.StatementMetadata {
	var meta models.StatementMetadata

	limit := len(rows)
	if limit > metadataScanRows {
		limit = metadataScanRows
	}

	for _, row := range rows[:limit] {
		rowText := strings.ToLower(strings.Join(row, " "))

		if strings.Contains(rowText, "account name") {
			meta.AccountName = strings.TrimSpace(cellAt(row, 1))
		}
		if strings.Contains(rowText, "account number") {
			meta.AccountNumber = strings.TrimSpace(cellAt(row, 3))
		}
		if strings.Contains(rowText, "period") {
			start, end, ok := extractPeriod(row, clock)
			if ok {
				meta.PeriodStart = start
				meta.PeriodEnd = end
			}
		}
		if strings.Contains(rowText, "opening balance") {
			meta.OpeningBalance = currencyutils.ParseAmount(cellAt(row, 1))
		}
		if strings.Contains(rowText, "closing balance") {
			meta.ClosingBalance = currencyutils.ParseAmount(cellAt(row, 1))
		}
		if strings.Contains(rowText, "total debit") {
			meta.TotalDebit = currencyutils.ParseAmount(firstNonEmpty(cellAt(row, 1), cellAt(row, 3)))
		}
		if strings.Contains(rowText, "total credit") {
			meta.TotalCredit = currencyutils.ParseAmount(firstNonEmpty(cellAt(row, 1), cellAt(row, 3)))
		}
		if strings.Contains(rowText, "debit count") {
			meta.DebitCount = parseCount(firstNonEmpty(cellAt(row, 1), cellAt(row, 5)))
		}
		if strings.Contains(rowText, "credit count") {
			meta.CreditCount = parseCount(firstNonEmpty(cellAt(row, 1), cellAt(row, 5)))
		}
	}

	return meta
}

// extractPeriod resolves the statement period either from a single
// "01 Sep 2024 - 30 Sep 2024" cell or from two adjacent date cells, as
// spreadsheet exports split the range.
func extractPeriod(row []string, clock dateutils.Clock) (start, end time.Time, ok bool) {
	periodStr := firstNonEmpty(cellAt(row, 1), cellAt(row, 3))

	if m := periodRangePattern.FindStringSubmatch(periodStr); m != nil {
		parsedStart, okStart := dateutils.ParseDate(m[1], clock)
		parsedEnd, okEnd := dateutils.ParseDate(m[2], clock)
		if okStart && okEnd && !parsedStart.After(parsedEnd) {
			return parsedStart, parsedEnd, true
		}
	}

	for i := 1; i < len(row)-1; i++ {
		cell1 := strings.TrimSpace(row[i])
		cell2 := strings.TrimSpace(row[i+1])
		if cell1 == "" || cell2 == "" {
			continue
		}

		date1, ok1 := dateutils.ParseDate(cell1, clock)
		date2, ok2 := dateutils.ParseDate(cell2, clock)
		if ok1 && ok2 && !date1.After(date2) {
			return date1, date2, true
		}
	}

	return time.Time{}, time.Time{}, false
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func parseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
