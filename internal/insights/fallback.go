package insights

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"adeyosola/bank-wrapped/internal/currencyutils"
	"adeyosola/bank-wrapped/internal/models"
)

// Fallback builds a complete narrative locally, without any external
// service. Every section is deterministic for a given analysis, so the
// wrapped story always renders even when the generator is disabled or
// the API call fails.
func Fallback(analysis models.WrappedAnalysis) *models.Insights {
	return &models.Insights{
		Intro:       fallbackIntro(analysis),
		Overview:    fallbackOverview(analysis),
		OdogwuDay:   odogwuDayInsight(analysis.Temporal.PeakDay),
		YourSpots:   yourSpotsInsight(analysis.Merchants),
		MoneyCircle: moneyCircleInsight(analysis.Recipients),
		Categories:  categoriesInsight(analysis.Categories),
		Rhythm:      rhythmInsight(analysis.Temporal.TimeOfDay, analysis.Temporal.Weekend, analysis.Temporal.Weekday),
		Journey:     journeyInsight(analysis.Temporal.PeakMonth),
		Personality: personalityInsight(analysis),
		Summary:     fallbackSummary(analysis),
	}
}

func fallbackIntro(analysis models.WrappedAnalysis) *models.IntroInsight {
	name := analysis.Metadata.AccountName
	if name == "" {
		name = "Friend"
	}
	return &models.IntroInsight{
		Greeting: fmt.Sprintf("Omo, %s!", name),
		Tagline:  "Your money moved mad this period",
	}
}

func fallbackOverview(analysis models.WrappedAnalysis) *models.OverviewInsight {
	overview := analysis.Overview
	if overview.NetFlow.IsNegative() {
		return &models.OverviewInsight{
			Headline: "Big Spender Energy",
			Reaction: fmt.Sprintf("%s came in, %s went out. The streets collected their share!",
				currencyutils.FormatNaira(overview.TotalCredits),
				currencyutils.FormatNaira(overview.TotalDebits)),
		}
	}
	return &models.OverviewInsight{
		Headline: "Soft Life, Secured",
		Reaction: fmt.Sprintf("%s in, %s out. You kept more than you spent - financial discipline is real!",
			currencyutils.FormatNaira(overview.TotalCredits),
			currencyutils.FormatNaira(overview.TotalDebits)),
	}
}

// odogwuDayInsight narrates the biggest spending day. The headline
// scales with the damage; the roast looks at what actually happened
// that day.
func odogwuDayInsight(day models.PeakDay) *models.OdogwuDayInsight {
	insight := &models.OdogwuDayInsight{}

	amount := day.Amount
	switch {
	case amount.GreaterThan(decimal.NewFromInt(150000)):
		insight.Title = "ODOGWU MODE ACTIVATED 🔥"
		insight.Verdict = "Certified Odogwu"
	case amount.GreaterThan(decimal.NewFromInt(100000)):
		insight.Title = "You were BALLING 💰"
		insight.Verdict = "Certified Big Spender"
	case amount.GreaterThan(decimal.NewFromInt(50000)):
		insight.Title = "Soft life was soft-lifing ✨"
		insight.Verdict = "Soft Life Merchant"
	case amount.GreaterThan(decimal.NewFromInt(30000)):
		insight.Title = "Money was moving 💸"
		insight.Verdict = "Active Spender"
	default:
		insight.Title = "A solid spending day 📊"
		insight.Verdict = "Measured Mover"
	}

	topCategory, topMerchant := peakDayHighlights(day.Transactions)
	switch {
	case topMerchant != "" && (topCategory == models.CategoryShopping || topCategory == models.CategoryPOS):
		insight.Roast = fmt.Sprintf("%s saw you coming and alerted the manager 😂. Retail therapy chose you that day.", topMerchant)
	case topCategory == models.CategoryFood:
		roast := "Your stomach made ALL the financial decisions."
		if topMerchant != "" {
			roast += " " + topMerchant + " fed you well!"
		} else {
			roast += " Food vendors were happy!"
		}
		insight.Roast = roast
	case topCategory == models.CategoryTransfers:
		insight.Roast = "Everybody got paid! You were the mobile bank that day. ATM behavior 💳"
	case topMerchant != "":
		insight.Roast = fmt.Sprintf("%s collected the lion's share. No regrets, just vibes.", topMerchant)
	case day.TransactionCount > 8:
		insight.Roast = fmt.Sprintf("%d transactions in one day?! The card was SMOKING. Take it easy! 🔥", day.TransactionCount)
	case amount.GreaterThan(decimal.NewFromInt(100000)):
		insight.Roast = "Over ₦100K gone just like that. We're not judging, we're just... impressed? 👀"
	default:
		insight.Roast = "A proper spending spree. Your account felt that one."
	}

	return insight
}

// peakDayHighlights finds the dominant category by amount and the first
// merchant seen among the day's transactions.
func peakDayHighlights(transactions []models.Transaction) (models.Category, string) {
	totals := make(map[models.Category]decimal.Decimal)
	merchant := ""
	for _, tx := range transactions {
		totals[tx.Category] = totals[tx.Category].Add(tx.AbsAmount())
		if merchant == "" && tx.Merchant != "" {
			merchant = tx.Merchant
		}
	}

	var topCategory models.Category
	var topAmount decimal.Decimal
	for _, category := range models.AllCategories {
		if amount, ok := totals[category]; ok && amount.GreaterThan(topAmount) {
			topCategory = category
			topAmount = amount
		}
	}
	return topCategory, merchant
}

// merchantRelationship assigns a relationship status from visit count
// and average spend.
func merchantRelationship(merchant models.MerchantStat) (status, roast string) {
	switch {
	case merchant.Count >= 20:
		return "It's Serious 💍", "They've seen you in your morning wrapper. It's real."
	case merchant.Count >= 15:
		return "Committed 💕", "They know your face, your order, and probably your car sound."
	case merchant.Count >= 10:
		return "Regular Thing 🤝", "You're a familiar face. Staff meetings mention you."
	case merchant.AverageAmount.GreaterThan(decimal.NewFromInt(50000)):
		return "Sugar Customer 💰", "You don't come often, but when you do... WAHALA for their inventory."
	case merchant.Count >= 5:
		return "The Situationship 👀", "Still figuring things out. Potential is there."
	case merchant.AverageAmount.LessThan(decimal.NewFromInt(5000)) && merchant.Count > 5:
		return "Small Chops Regular 🍿", "₦2K here, ₦3K there... e dey enter!"
	default:
		return "Casual 👋", "Just passing through. No commitment yet."
	}
}

func yourSpotsInsight(merchants models.MerchantAnalysis) *models.YourSpotsInsight {
	insight := &models.YourSpotsInsight{}
	if len(merchants.Top) == 0 {
		insight.Overall = "No regular spots this period. Mysterious spender!"
		return insight
	}

	top := merchants.Top[0]
	jollofPlates := top.TotalAmount.Div(decimal.NewFromInt(2500)).IntPart()
	switch {
	case top.TotalAmount.GreaterThan(decimal.NewFromInt(500000)):
		insight.Overall = fmt.Sprintf("Your %s spending could buy a decent generator. Just saying 🔌", top.Name)
	case top.TotalAmount.GreaterThan(decimal.NewFromInt(200000)):
		percent := top.TotalAmount.Div(decimal.NewFromInt(800000)).Mul(decimal.NewFromInt(100)).IntPart()
		insight.Overall = fmt.Sprintf("That's %d%% of an iPhone spent at %s. Priorities! 📱", percent, top.Name)
	case jollofPlates > 50:
		insight.Overall = fmt.Sprintf("%d plates of jollof rice worth! Your loyalty is unmatched 🍚", jollofPlates)
	case top.Count > 15:
		insight.Overall = fmt.Sprintf("%d visits?! At this point, apply for staff discount 😭", top.Count)
	default:
		shawarmas := top.TotalAmount.Div(decimal.NewFromInt(3500)).IntPart()
		insight.Overall = fmt.Sprintf("%d shawarmas worth of spending. No regrets though! 🌯", shawarmas)
	}

	limit := len(merchants.Top)
	if limit > 5 {
		limit = 5
	}
	for _, merchant := range merchants.Top[:limit] {
		status, roast := merchantRelationship(merchant)
		insight.Merchants = append(insight.Merchants, models.MerchantInsight{
			Name:         merchant.Name,
			Relationship: status,
			Roast:        roast,
		})
	}
	return insight
}

// recipientInsight ranks a transfer relationship. Rank is 1-based.
func recipientInsight(recipient models.RecipientStat, rank int) (title, insight string) {
	if rank == 1 {
		switch {
		case recipient.TotalAmount.GreaterThan(decimal.NewFromInt(200000)):
			return "Your Personal Beneficiary",
				fmt.Sprintf("%s sent! Business partner or best friend? Either way, they're eating good 🍽️",
					currencyutils.FormatNairaCompact(recipient.TotalAmount))
		case recipient.Count > 10:
			return "The Frequent Receiver",
				fmt.Sprintf("%d transfers! Your account knows their account number by heart ❤️", recipient.Count)
		default:
			return "#1 Receiver", "Top of the money chain. They know you've got their back."
		}
	}
	switch {
	case recipient.Count >= 5:
		return "Regular on the List", "Consistent support. You're a real one! 💯"
	case recipient.TotalAmount.GreaterThan(decimal.NewFromInt(50000)):
		return "Big Ticket Transfer", "Fewer transfers, bigger amounts. Quality over quantity."
	default:
		return "In the Circle", "Part of the money flow. You remember them when it matters."
	}
}

func moneyCircleInsight(recipients models.RecipientAnalysis) *models.MoneyCircleInsight {
	insight := &models.MoneyCircleInsight{}

	total := recipients.TotalRecipients
	switch {
	case total > 30:
		insight.Overall = fmt.Sprintf("You sent money to %d different people! Your account is basically a community bank 🏦", total)
	case total > 20:
		insight.Overall = fmt.Sprintf("%d people received from you. Generosity is your middle name! 💝", total)
	case total > 10:
		insight.Overall = fmt.Sprintf("%d people in your money circle. Solid support system! 🤝", total)
	case recipients.TotalSentToOthers.GreaterThan(decimal.NewFromInt(500000)):
		insight.Overall = fmt.Sprintf("%s sent to others. You're everybody's favorite alert! 📱",
			currencyutils.FormatNairaCompact(recipients.TotalSentToOthers))
	default:
		insight.Overall = fmt.Sprintf("You keep your circle tight. %d trusted recipients.", total)
	}

	limit := len(recipients.Top)
	if limit > 5 {
		limit = 5
	}
	for i, recipient := range recipients.Top[:limit] {
		title, text := recipientInsight(recipient, i+1)
		insight.Recipients = append(insight.Recipients, models.RecipientInsight{
			Name:    recipient.Name,
			Title:   title,
			Insight: text,
		})
	}
	return insight
}

func categoriesInsight(categories models.CategoryAnalysis) *models.CategoriesInsight {
	insight := &models.CategoriesInsight{
		Headline: fmt.Sprintf("%s %s on top", categories.TopCategory.Emoji(), categories.TopCategory.Label()),
	}
	if len(categories.Breakdown) == 0 {
		insight.Roast = "No spending to classify. Your account was on holiday!"
		return insight
	}

	top := categories.Breakdown[0]
	insight.Roast = fmt.Sprintf("%.0f%% of your spending went to %s. Your priorities are not hiding at all.",
		top.Percentage, strings.ToLower(top.Category.Label()))
	return insight
}

// rhythmInsight mirrors the time-of-day personality of the spending.
func rhythmInsight(timeOfDay models.TimeOfDayBreakdown, weekend, weekday models.BucketStat) *models.RhythmInsight {
	total := timeOfDay.Morning.Amount.
		Add(timeOfDay.Afternoon.Amount).
		Add(timeOfDay.Evening.Amount).
		Add(timeOfDay.Night.Amount)

	morningPercent := currencyutils.Percentage(timeOfDay.Morning.Amount, total)
	eveningPercent := currencyutils.Percentage(timeOfDay.Evening.Amount, total)
	nightPercent := currencyutils.Percentage(timeOfDay.Night.Amount, total)
	weekendPercent := currencyutils.Percentage(weekend.Amount, weekend.Amount.Add(weekday.Amount))

	switch {
	case nightPercent > 20:
		return &models.RhythmInsight{
			Title:       "Night Crawler 🦉",
			Description: fmt.Sprintf("%.0f%% of your transactions happen when normal people are sleeping. The trenches never rest! 🌙", nightPercent),
			Verdict:     "Certified Night Mover",
		}
	case morningPercent > 40:
		return &models.RhythmInsight{
			Title:       "Early Bird 🌅",
			Description: fmt.Sprintf("You handle business before most people finish breakfast. %.0f%% of spending before noon!", morningPercent),
			Verdict:     "Sunrise Spender",
		}
	case weekendPercent > 45:
		return &models.RhythmInsight{
			Title:       "Weekend Warrior 🎉",
			Description: fmt.Sprintf("%.0f%% of your spending happens on weekends. TGIF hits different for your wallet!", weekendPercent),
			Verdict:     "TGIF Specialist",
		}
	case eveningPercent > 35:
		return &models.RhythmInsight{
			Title:       "Evening Spender 🌆",
			Description: fmt.Sprintf("After work is when the wallet opens. %.0f%% of transactions in the evening.", eveningPercent),
			Verdict:     "After-Hours Baller",
		}
	default:
		return &models.RhythmInsight{
			Title:       "Afternoon Mover ☀️",
			Description: "Peak spending hours: afternoon. You like to handle business during daylight.",
			Verdict:     "Daylight Operator",
		}
	}
}

var monthVibes = map[string]string{
	"January":   "New year, new spending habits... or not 😂",
	"February":  "Valentine's month came with expenses!",
	"March":     "March madness hit your wallet!",
	"April":     "April showers brought spending powers 💸",
	"May":       "May was a whole mood!",
	"June":      "Mid-year, the money was moving!",
	"July":      "July had you in your bag... spending it 💰",
	"August":    "August was ACTIVE!",
	"September": "Ember months started strong!",
	"October":   "October was your ODOGWU month! 🔥",
	"November":  "November came with the vibes!",
	"December":  "Detty December was REAL! 🎄",
}

func journeyInsight(peakMonth *models.MonthStat) *models.JourneyInsight {
	if peakMonth == nil {
		return &models.JourneyInsight{
			PeakMonthRoast: "Your spending journey continues...",
			Trend:          "Not enough months to call a trend yet.",
		}
	}

	vibe, ok := monthVibes[peakMonth.MonthName]
	if !ok {
		vibe = fmt.Sprintf("%s was something else!", peakMonth.MonthName)
	}
	return &models.JourneyInsight{
		PeakMonthRoast: fmt.Sprintf("%s was your peak month with %s spent. %s",
			peakMonth.MonthName, currencyutils.FormatNaira(peakMonth.Debits), vibe),
		Trend: "Month by month, the money kept moving. Consistency!",
	}
}

func fallbackSummary(analysis models.WrappedAnalysis) *models.SummaryInsight {
	return &models.SummaryInsight{
		Headline: "That's a wrap on your money story!",
		Caption: fmt.Sprintf("My bank said I'm %s %s. %s moved this period! #BankWrapped",
			string(analysis.Personality.Archetype), analysis.Personality.Emoji,
			currencyutils.FormatNairaCompact(analysis.Overview.TotalDebits)),
		Hashtags: []string{"BankWrapped", "MoneyMoves", "SoftLife"},
	}
}
