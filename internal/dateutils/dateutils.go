// Package dateutils provides the date handling used throughout the
// application: multi-tier statement date parsing (including spreadsheet
// serial dates), calendar helpers, and the injectable clock.
package dateutils

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Common date format constants used throughout the application
const (
	DateLayoutISO       = "2006-01-02"
	DateLayoutFull      = "2006-01-02 15:04:05"
	DateLayoutStatement = "02 Jan 2006 15:04:05"
	DateLayoutDisplay   = "2 Jan 2006"
	DateLayoutMonth     = "January 2006"
)

// statementFormats is the ordered list of layouts tried by the free-form
// parse tier. Statement exports lead; generic formats follow.
var statementFormats = []string{
	DateLayoutStatement,
	"02 Jan 2006",
	"2 Jan 2006",
	"02 January 2006 15:04:05",
	"02 January 2006",
	DateLayoutFull,
	DateLayoutISO,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02/01/2006 15:04:05",
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
}

// Years outside this window are rejected by every parse tier.
const (
	minYear = 1900
	maxYear = 2100
)

// serialEpoch is the spreadsheet epoch: 1899-12-30, which absorbs the
// legacy 1900 leap-year convention.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var monthNumbers = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// ParseDate resolves a statement date cell through three tiers: spreadsheet
// serial number, free-form layout list, then a manual "DD MonthName YYYY"
// split. When every tier fails it returns the clock's current time and
// logs a warning; it never returns an error. The boolean reports whether
// a real parse succeeded.
func ParseDate(dateStr string, clock Clock) (time.Time, bool) {
	cleaned := strings.TrimSpace(dateStr)
	if cleaned == "" {
		return clock.Now(), false
	}

	if t, ok := parseSerial(cleaned); ok {
		return t, true
	}

	for _, format := range statementFormats {
		if t, err := time.Parse(format, cleaned); err == nil && yearInRange(t) {
			return t, true
		}
	}

	if t, ok := parseManual(cleaned); ok {
		return t, true
	}

	log.WithField("value", dateStr).Warn("Could not parse date, using current time as fallback")
	return clock.Now(), false
}

// parseSerial handles spreadsheet serial dates: a pure integer in
// [1, 1000000) with no date punctuation. The resulting year must be in
// range.
func parseSerial(s string) (time.Time, bool) {
	if strings.ContainsAny(s, "/-.: ") {
		return time.Time{}, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n >= 1000000 {
		return time.Time{}, false
	}
	t := SerialToDate(n)
	if !yearInRange(t) {
		return time.Time{}, false
	}
	return t, true
}

// SerialToDate converts a spreadsheet serial number to a date. Serial n
// maps to epoch + (n-1) days, reproducing the legacy off-by-one of the
// source format.
func SerialToDate(serial int) time.Time {
	return serialEpoch.AddDate(0, 0, serial-1)
}

// DateToSerial is the inverse of SerialToDate.
func DateToSerial(t time.Time) int {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(day.Sub(serialEpoch).Hours()/24) + 1
}

// parseManual splits "DD MonthName YYYY [HH:MM:SS]" using the fixed month
// table, and accepts the result only when the round-tripped day and month
// match (rejecting overflow like 31 Feb).
func parseManual(s string) (time.Time, bool) {
	parts := strings.Fields(s)
	if len(parts) < 3 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	month, ok := monthNumbers[strings.ToLower(parts[1])]
	if !ok {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil || year < minYear || year > maxYear {
		return time.Time{}, false
	}

	var hour, minute, sec int
	if len(parts) >= 4 {
		timeParts := strings.Split(parts[3], ":")
		if len(timeParts) > 0 {
			hour, _ = strconv.Atoi(timeParts[0])
		}
		if len(timeParts) > 1 {
			minute, _ = strconv.Atoi(timeParts[1])
		}
		if len(timeParts) > 2 {
			sec, _ = strconv.Atoi(timeParts[2])
		}
	}

	t := time.Date(year, month, day, hour, minute, sec, 0, time.UTC)
	if t.Day() != day || t.Month() != month {
		return time.Time{}, false
	}
	return t, true
}

var dateLikePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}`),
	regexp.MustCompile(`^\d{4}[/\-.]\d{1,2}[/\-.]\d{1,2}`),
	regexp.MustCompile(`(?i)^\d{1,2}\s+[a-z]{3,}\s+\d{4}`),
	regexp.MustCompile(`(?i)^[a-z]{3,}\s+\d{1,2},?\s+\d{4}`),
}

// IsDateLike reports whether a cell plausibly holds a date: one of the
// common textual patterns, or a bare number in the spreadsheet serial
// range for recent decades.
func IsDateLike(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	if n, err := strconv.Atoi(s); err == nil {
		return n >= 20000 && n < 80000
	}

	for _, pattern := range dateLikePatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// IsWeekend reports whether a date falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	day := t.Weekday()
	return day == time.Saturday || day == time.Sunday
}

// DayKey truncates a timestamp to its calendar day, the grouping key for
// daily aggregation.
func DayKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween counts whole calendar days from a to b, ignoring time of day.
func DaysBetween(a, b time.Time) int {
	return int(DayKey(b).Sub(DayKey(a)).Hours() / 24)
}

func yearInRange(t time.Time) bool {
	return t.Year() >= minYear && t.Year() <= maxYear
}
