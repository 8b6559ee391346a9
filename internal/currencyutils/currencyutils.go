// Package currencyutils provides the naira amount handling used throughout
// the application: lenient parsing of statement amount cells and the
// display formats used by the wrapped output.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

var amountJunk = regexp.MustCompile(`[₦NGN\s,]`)

// ParseAmount parses a statement amount cell into a decimal value. It
// strips the naira sign, "NGN", commas and whitespace first. Empty cells
// and the dash placeholders statements use for "no amount" ("-", "--")
// parse as zero, as does anything unparsable; a bad cell is logged but
// never fails a row.
func ParseAmount(amountStr string) decimal.Decimal {
	cleaned := strings.TrimSpace(amountStr)
	if cleaned == "" || cleaned == "-" || cleaned == "--" {
		return decimal.Zero
	}

	standardized := amountJunk.ReplaceAllString(cleaned, "")

	// Accounting-style negatives: (1234.56)
	negative := false
	if strings.HasPrefix(standardized, "(") && strings.HasSuffix(standardized, ")") {
		negative = true
		standardized = standardized[1 : len(standardized)-1]
	}

	if standardized == "" {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		log.WithField("value", amountStr).Debug("Unparsable amount cell, treating as zero")
		return decimal.Zero
	}

	if negative {
		return amount.Neg()
	}
	return amount
}

// FormatNaira formats an amount as whole naira with thousand separators,
// e.g. "₦1,234,568". Fractions round to the nearest naira.
func FormatNaira(amount decimal.Decimal) string {
	rounded := amount.Round(0)

	s := rounded.Abs().String()
	var grouped strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	if rounded.IsNegative() {
		return "-₦" + grouped.String()
	}
	return "₦" + grouped.String()
}

// FormatNairaCompact renders an amount in the short form the wrapped
// cards use: millions as "₦2.5M", thousands as "₦45K", smaller amounts
// as whole naira.
func FormatNairaCompact(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	switch {
	case f >= 1_000_000:
		return fmt.Sprintf("₦%.1fM", f/1_000_000)
	case f >= 1_000:
		return fmt.Sprintf("₦%.0fK", f/1_000)
	default:
		return fmt.Sprintf("₦%.0f", f)
	}
}

// IsNegative checks if an amount is negative
func IsNegative(amount decimal.Decimal) bool {
	return amount.LessThan(decimal.Zero)
}

// IsPositive checks if an amount is positive
func IsPositive(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero)
}

// IsZero checks if an amount is zero
func IsZero(amount decimal.Decimal) bool {
	return amount.Equal(decimal.Zero)
}

// Percentage returns part/total as a percentage, zero when total is zero.
func Percentage(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	f, _ := part.Div(total).Float64()
	return f * 100
}
