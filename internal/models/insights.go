package models

// Insights is the structured narrative returned by the external insight
// generator, keyed by slide section. Every nested field is optional: the
// generator may omit any of them, and callers must fall back to locally
// generated text for whatever is absent. A nil section means "use the
// fallback for the whole section".
type Insights struct {
	Intro       *IntroInsight       `json:"intro,omitempty"`
	Overview    *OverviewInsight    `json:"overview,omitempty"`
	OdogwuDay   *OdogwuDayInsight   `json:"odogwu_day,omitempty"`
	YourSpots   *YourSpotsInsight   `json:"your_spots,omitempty"`
	MoneyCircle *MoneyCircleInsight `json:"money_circle,omitempty"`
	Categories  *CategoriesInsight  `json:"categories,omitempty"`
	Rhythm      *RhythmInsight      `json:"rhythm,omitempty"`
	Journey     *JourneyInsight     `json:"journey,omitempty"`
	Personality *PersonalityInsight `json:"personality,omitempty"`
	Summary     *SummaryInsight     `json:"summary,omitempty"`
}

// IntroInsight opens the story.
type IntroInsight struct {
	Greeting string `json:"greeting,omitempty"`
	Tagline  string `json:"tagline,omitempty"`
}

// OverviewInsight comments on the overall flow.
type OverviewInsight struct {
	Headline string `json:"headline,omitempty"`
	Reaction string `json:"reaction,omitempty"`
}

// OdogwuDayInsight covers the biggest spending day.
type OdogwuDayInsight struct {
	Title   string `json:"title,omitempty"`
	Roast   string `json:"roast,omitempty"`
	Verdict string `json:"verdict,omitempty"`
}

// MerchantInsight is per-merchant commentary.
type MerchantInsight struct {
	Name         string `json:"name,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	Roast        string `json:"roast,omitempty"`
}

// YourSpotsInsight covers the top merchants.
type YourSpotsInsight struct {
	Overall   string            `json:"overall,omitempty"`
	Merchants []MerchantInsight `json:"merchants,omitempty"`
}

// RecipientInsight is per-recipient commentary.
type RecipientInsight struct {
	Name    string `json:"name,omitempty"`
	Title   string `json:"title,omitempty"`
	Insight string `json:"insight,omitempty"`
}

// MoneyCircleInsight covers the transfer recipients.
type MoneyCircleInsight struct {
	Overall    string             `json:"overall,omitempty"`
	Recipients []RecipientInsight `json:"recipients,omitempty"`
}

// CategoriesInsight comments on the spending mix.
type CategoriesInsight struct {
	Headline string `json:"headline,omitempty"`
	Roast    string `json:"roast,omitempty"`
}

// RhythmInsight covers the temporal pattern.
type RhythmInsight struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Verdict     string `json:"verdict,omitempty"`
}

// JourneyInsight covers the month-over-month arc.
type JourneyInsight struct {
	PeakMonthRoast string `json:"peak_month_roast,omitempty"`
	Trend          string `json:"trend,omitempty"`
}

// TraitTag is a labelled emoji chip.
type TraitTag struct {
	Emoji string `json:"emoji,omitempty"`
	Label string `json:"label,omitempty"`
}

// PersonalityInsight covers the assigned archetype.
type PersonalityInsight struct {
	Archetype  string     `json:"archetype,omitempty"`
	Emoji      string     `json:"emoji,omitempty"`
	Opener     string     `json:"opener,omitempty"`
	Roast      string     `json:"roast,omitempty"`
	Prediction string     `json:"prediction,omitempty"`
	Traits     []TraitTag `json:"traits,omitempty"`
}

// SummaryInsight closes the story.
type SummaryInsight struct {
	Headline string   `json:"headline,omitempty"`
	Caption  string   `json:"caption,omitempty"`
	Hashtags []string `json:"hashtags,omitempty"`
}
