package models

// Category is the closed set of spending categories a transaction can be
// assigned to. Every parsed transaction carries exactly one category;
// CategoryOther is the default when no classification rule matches.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryData          Category = "data"
	CategoryAirtime       Category = "airtime"
	CategoryBills         Category = "bills"
	CategoryEntertainment Category = "entertainment"
	CategoryShopping      Category = "shopping"
	CategorySubscriptions Category = "subscriptions"
	CategoryTransfers     Category = "transfers"
	CategoryPOS           Category = "pos"
	CategoryOther         Category = "other"
)

// AllCategories lists every category in display order.
var AllCategories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryData,
	CategoryAirtime,
	CategoryBills,
	CategoryEntertainment,
	CategoryShopping,
	CategorySubscriptions,
	CategoryTransfers,
	CategoryPOS,
	CategoryOther,
}

var categoryLabels = map[Category]string{
	CategoryFood:          "Food & Dining",
	CategoryTransport:     "Transport",
	CategoryData:          "Mobile Data",
	CategoryAirtime:       "Airtime",
	CategoryBills:         "Bills & Utilities",
	CategoryEntertainment: "Entertainment",
	CategoryShopping:      "Shopping",
	CategorySubscriptions: "Subscriptions",
	CategoryTransfers:     "Transfers",
	CategoryPOS:           "POS Purchases",
	CategoryOther:         "Other",
}

var categoryEmojis = map[Category]string{
	CategoryFood:          "🍔",
	CategoryTransport:     "🚗",
	CategoryData:          "📱",
	CategoryAirtime:       "📞",
	CategoryBills:         "💡",
	CategoryEntertainment: "🎬",
	CategoryShopping:      "🛍️",
	CategorySubscriptions: "📺",
	CategoryTransfers:     "💸",
	CategoryPOS:           "💳",
	CategoryOther:         "📦",
}

// Label returns the human-readable display name for the category.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return categoryLabels[CategoryOther]
}

// Emoji returns the display emoji for the category.
func (c Category) Emoji() string {
	if emoji, ok := categoryEmojis[c]; ok {
		return emoji
	}
	return categoryEmojis[CategoryOther]
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	_, ok := categoryLabels[c]
	return ok
}
