// Package classify assigns spending categories to transactions and pulls
// merchant and recipient names out of statement descriptions.
//
// Classification is keyword driven: an ordered rule list is evaluated
// top to bottom and the first match wins, so the more specific
// categories (subscriptions, data) must sit above the catch-alls
// (transfers, pos). Custom keyword rules loaded from a YAML file are
// checked before the built-in list.
package classify

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"adeyosola/bank-wrapped/internal/models"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// rule matches a description against one category. An optional exclude
// pattern vetoes the match (airtime rules must not swallow data bundles).
type rule struct {
	category models.Category
	pattern  *regexp.Regexp
	exclude  *regexp.Regexp
}

// defaultRules is evaluated in order; first match wins.
var defaultRules = []rule{
	{
		category: models.CategorySubscriptions,
		pattern:  regexp.MustCompile(`(?i)netflix|spotify|canva|youtube.*premium|amazon.*prime|udemy|starlink`),
	},
	{
		category: models.CategoryData,
		pattern:  regexp.MustCompile(`(?i)mobile\s*data|datamtn|dataglo|dataair|data9mobile|\d+gb`),
	},
	{
		category: models.CategoryAirtime,
		pattern:  regexp.MustCompile(`(?i)airtime|recharge|vtu`),
		exclude:  regexp.MustCompile(`(?i)data`),
	},
	{
		category: models.CategoryBills,
		pattern:  regexp.MustCompile(`(?i)electricity|power|nepa|phcn|ikedc|ekedc|dstv|gotv|startimes|cable|water\s*bill`),
	},
	{
		category: models.CategoryFood,
		pattern:  regexp.MustCompile(`(?i)chicken\s*republic|kfc|dominos|pizza|mr\s*biggs|tantalizers|food|restaurant|eatery|bukka|shawarma|suya|baguette|ice\s*cream`),
	},
	{
		category: models.CategoryEntertainment,
		pattern:  regexp.MustCompile(`(?i)cinema|silverbird|filmhouse|genesis|bet9ja|sporty|nairabet|1xbet|game|football\s*internet`),
	},
	{
		category: models.CategoryShopping,
		pattern:  regexp.MustCompile(`(?i)jumia|konga|amazon|shoprite|supermarket|mall|market|demerge`),
	},
	{
		category: models.CategoryTransport,
		pattern:  regexp.MustCompile(`(?i)uber|bolt|taxi|transport|fuel|filling|petrol|diesel`),
	},
	{
		category: models.CategoryTransfers,
		pattern:  regexp.MustCompile(`(?i)transfer\s+to`),
	},
	{
		category: models.CategoryPOS,
		pattern:  regexp.MustCompile(`(?i)card\s*payment|pos`),
	},
}

// Classifier assigns categories using custom rules first, then the
// built-in list. The zero-value-like classifier from New is ready to use.
type Classifier struct {
	customRules []rule
}

// New returns a Classifier with only the built-in rules.
func New() *Classifier {
	return &Classifier{}
}

// NewWithRules returns a Classifier that checks the given custom keyword
// rules before the built-in list.
func NewWithRules(ruleSet *RuleSet) *Classifier {
	c := &Classifier{}
	if ruleSet != nil {
		c.customRules = ruleSet.compile()
	}
	return c
}

// Classify resolves a transaction's category from its description and
// channel. The channel only matters for POS: card machines report
// channel "POS" even when the description says nothing useful.
func (c *Classifier) Classify(description, channel string) models.Category {
	for _, r := range c.customRules {
		if r.matches(description) {
			return r.category
		}
	}
	for _, r := range defaultRules {
		if r.matches(description) {
			return r.category
		}
	}
	if strings.EqualFold(strings.TrimSpace(channel), "POS") {
		return models.CategoryPOS
	}
	return models.CategoryOther
}

func (r rule) matches(description string) bool {
	if !r.pattern.MatchString(description) {
		return false
	}
	if r.exclude != nil && r.exclude.MatchString(description) {
		return false
	}
	return true
}

var (
	posMerchantPattern = regexp.MustCompile(`(?i)(?:Card Payment|POS).*?\|\s*([^|]+)`)
	transferToPattern  = regexp.MustCompile(`(?i)Transfer\s+to\s+([^|]+)`)

	longNumbers     = regexp.MustCompile(`\d{6,}`)
	trailingNumbers = regexp.MustCompile(`\s*\d+\s*$`)
	leadingTPrefix  = regexp.MustCompile(`(?i)^T\s+`)
	langSuffix      = regexp.MustCompile(`(?i)LANG$`)
	ngSuffix        = regexp.MustCompile(`(?i)\s*NG$`)
	multiSpace      = regexp.MustCompile(`\s+`)
	recipientTail   = regexp.MustCompile(`\s*[-|]\s*.*$`)
)

// namedMerchants maps description patterns to canonical merchant names.
// Statement descriptions for the same shop vary wildly; these pin the
// common ones to one spelling.
var namedMerchants = []struct {
	pattern *regexp.Regexp
	name    string
}{
	{regexp.MustCompile(`(?i)topnotch\s*supermar`), "Topnotch Supermarket"},
	{regexp.MustCompile(`(?i)just\s*rite`), "Justrite Supermarket"},
	{regexp.MustCompile(`(?i)shoprite`), "Shoprite"},
	{regexp.MustCompile(`(?i)chicken\s*republic`), "Chicken Republic"},
	{regexp.MustCompile(`(?i)kfc`), "KFC"},
	{regexp.MustCompile(`(?i)bukka\s*hut`), "Bukka Hut"},
	{regexp.MustCompile(`(?i)silverbird\s*cinema`), "Silverbird Cinemas"},
	{regexp.MustCompile(`(?i)palmpay`), "PalmPay"},
	{regexp.MustCompile(`(?i)food\s*concepts`), "Food Concepts"},
	{regexp.MustCompile(`(?i)baguette`), "12inch Baguette"},
}

// ExtractMerchant pulls a merchant name out of a description. POS lines
// carry the merchant after a pipe ("OPay Card Payment | MERCHANT");
// otherwise the known-merchant table is consulted. Returns "" when no
// merchant can be identified.
func ExtractMerchant(description string) string {
	desc := strings.ToLower(description)

	if strings.Contains(desc, "pos") || strings.Contains(desc, "card payment") {
		if m := posMerchantPattern.FindStringSubmatch(description); m != nil {
			if name := cleanMerchantName(m[1]); name != "" {
				return name
			}
		}
	}

	for _, known := range namedMerchants {
		if known.pattern.MatchString(description) {
			return known.name
		}
	}

	return ""
}

// ExtractRecipient pulls the receiver's name from a transfer description
// of the form "Transfer to NAME | Bank | Number". Returns "" for
// non-transfer descriptions.
func ExtractRecipient(description string) string {
	m := transferToPattern.FindStringSubmatch(description)
	if m == nil {
		return ""
	}
	return cleanRecipientName(m[1])
}

// cleanMerchantName strips terminal codes, long card numbers, and noise
// suffixes, keeping at most the first three words.
func cleanMerchantName(name string) string {
	name = strings.TrimSpace(name)
	name = longNumbers.ReplaceAllString(name, "")
	name = strings.ReplaceAll(name, "|", "")
	name = multiSpace.ReplaceAllString(name, " ")
	name = leadingTPrefix.ReplaceAllString(name, "")
	name = trailingNumbers.ReplaceAllString(name, "")
	name = langSuffix.ReplaceAllString(name, "")
	name = ngSuffix.ReplaceAllString(name, "")
	name = strings.TrimSpace(name)

	words := strings.Fields(name)
	if len(words) > 3 {
		words = words[:3]
	}
	return strings.Join(words, " ")
}

// cleanRecipientName keeps the name portion before any bank/account
// suffix and title-cases up to three words.
func cleanRecipientName(name string) string {
	name = recipientTail.ReplaceAllString(name, "")
	name = multiSpace.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)

	words := strings.Fields(name)
	if len(words) > 3 {
		words = words[:3]
	}
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
