package insights

import (
	"fmt"

	"github.com/shopspring/decimal"

	"adeyosola/bank-wrapped/internal/currencyutils"
	"adeyosola/bank-wrapped/internal/models"
)

// personalityInsight builds the archetype slide from the static roast
// table, filling in the user's actual numbers where the roast calls
// for them.
func personalityInsight(analysis models.WrappedAnalysis) *models.PersonalityInsight {
	archetype := analysis.Personality.Archetype
	roast := archetypeRoast(archetype, analysis)
	return &models.PersonalityInsight{
		Archetype:  string(archetype),
		Emoji:      analysis.Personality.Emoji,
		Opener:     roast.opener,
		Roast:      roast.body,
		Prediction: roast.prediction,
		Traits:     roast.traits,
	}
}

type roastEntry struct {
	opener     string
	body       string
	prediction string
	traits     []models.TraitTag
}

func archetypeRoast(archetype models.Archetype, analysis models.WrappedAnalysis) roastEntry {
	var topMerchant *models.MerchantStat
	if len(analysis.Merchants.Top) > 0 {
		topMerchant = &analysis.Merchants.Top[0]
	}
	var topRecipient *models.RecipientStat
	if len(analysis.Recipients.Top) > 0 {
		topRecipient = &analysis.Recipients.Top[0]
	}

	switch archetype {
	case models.ArchetypeFoodie:
		body := "Restaurants, fast food, street food - you've tried them all. Your kitchen is basically decorative at this point."
		if topMerchant != nil {
			body = fmt.Sprintf(`%s, and every food spot in town... they all have your number saved as "Valued Customer 💰". Home cooking? You don't know her.`, topMerchant.Name)
		}
		return roastEntry{
			opener:     "Your account has a DIRECT hotline to your stomach! 🍔",
			body:       body,
			prediction: "Next year: your kitchen will remain for decoration purposes only. Maybe you'll finally learn to boil egg?",
			traits: []models.TraitTag{
				{Emoji: "🍖", Label: "Belly First"},
				{Emoji: "⭐", Label: "Restaurant VIP"},
				{Emoji: "🙅", Label: "Cooking Who?"},
			},
		}

	case models.ArchetypeSocialButterfly:
		body := fmt.Sprintf(`%d people in your transfer history. Your WhatsApp is probably 90%% "please help me with..." messages.`, analysis.Recipients.TotalRecipients)
		if topRecipient != nil {
			body = fmt.Sprintf("You sent money to %d different people! %s alone collected %s. Western Union is studying your methods.",
				analysis.Recipients.TotalRecipients, topRecipient.Name,
				currencyutils.FormatNaira(topRecipient.TotalAmount))
		}
		return roastEntry{
			opener:     "Omo, you're EVERYBODY'S benefactor! 💝",
			body:       body,
			prediction: "Next year: your phone will still vibrate with transfer requests. You can't help it, you're too kind 🥹",
			traits: []models.TraitTag{
				{Emoji: "💸", Label: "Mobile ATM"},
				{Emoji: "🏠", Label: "Family Pillar"},
				{Emoji: "🫠", Label: "Can't Say No"},
			},
		}

	case models.ArchetypeDataJunkie:
		return roastEntry{
			opener:     "Low data? You don't know her! 📱",
			body:       `Your data and airtime spending is ELITE. While others ration their MB, you're streaming in 4K without fear. "WiFi available" means nothing to you - your data is always ON.`,
			prediction: "Next year: 5G will be your new bestie. Your data bundle will still finish before month end though 😭",
			traits: []models.TraitTag{
				{Emoji: "📶", Label: "Always Online"},
				{Emoji: "📺", Label: "Stream King"},
				{Emoji: "💉", Label: "Data is Life"},
			},
		}

	case models.ArchetypeNightOwl:
		return roastEntry{
			opener: "3AM and you're making PURCHASES? 🦉",
			body: fmt.Sprintf("While others count sheep, you're counting items in cart. %d transactions happened when normal people are sleeping. The streets never sleep and neither does your wallet.",
				analysis.Temporal.TimeOfDay.Night.Count),
			prediction: "Next year: you'll discover that 4AM purchases feel different in the morning. No refunds on night decisions!",
			traits: []models.TraitTag{
				{Emoji: "🌙", Label: "Midnight Shopper"},
				{Emoji: "😵‍💫", Label: "Insomnia Spender"},
				{Emoji: "🛒", Label: "Cart Before Sleep"},
			},
		}

	case models.ArchetypeWeekendWarrior:
		return roastEntry{
			opener: "Weekdays are for SURVIVAL, weekends are for LIVING! 🎉",
			body: fmt.Sprintf("Friday-Sunday is when your wallet truly opens. %d weekend transactions vs %d weekday. TGIF hits different for your account!",
				analysis.Temporal.Weekend.Count, analysis.Temporal.Weekday.Count),
			prediction: "Next year: you'll continue funding the weekend economy. Monday balance notifications will remain scary 😱",
			traits: []models.TraitTag{
				{Emoji: "🎊", Label: "TGIF Energy"},
				{Emoji: "💃", Label: "Weekend Spender"},
				{Emoji: "😰", Label: "Monday Blues"},
			},
		}

	case models.ArchetypeSaver:
		return roastEntry{
			opener:     "Money comes in, money stays in! 🐷",
			body:       "Your credits beat your debits. While others are spending, you're stacking. Financial discipline is your middle name. The savings account is thriving!",
			prediction: "Next year: you'll keep building. Investment apps will start recommending you to others 📈",
			traits: []models.TraitTag{
				{Emoji: "🧱", Label: "Stack Builder"},
				{Emoji: "💪", Label: "Discipline"},
				{Emoji: "🔒", Label: "Future Secure"},
			},
		}

	case models.ArchetypeBigSpender:
		body := "When you spend, you SPEND. No half measures, no small purchases. Go big or go home is your philosophy."
		if analysis.Overview.AverageTransaction.GreaterThan(decimal.NewFromInt(30000)) {
			body = fmt.Sprintf("Your average transaction is %s. You don't do things small. When you enter the market, traders alert each other on WhatsApp.",
				currencyutils.FormatNaira(analysis.Overview.AverageTransaction))
		}
		return roastEntry{
			opener:     "Small money? You don't know her! 💎",
			body:       body,
			prediction: "Next year: your POS machine will need therapy. But you'll look good spending it! ✨",
			traits: []models.TraitTag{
				{Emoji: "👑", Label: "Premium Only"},
				{Emoji: "🎯", Label: "No Small Talk"},
				{Emoji: "⚡", Label: "Big Energy"},
			},
		}

	case models.ArchetypeSubscriptionAddict:
		return roastEntry{
			opener:     "If it has a monthly fee, YOU HAVE IT! 📺",
			body:       "Netflix, Spotify, Canva, Starlink... your subscriptions have subscriptions. Direct debit is your love language. At least you're never bored!",
			prediction: "Next year: you'll add 3 more subscriptions but cancel 0. 'I'll use it eventually' - you, every month 😂",
			traits: []models.TraitTag{
				{Emoji: "🔄", Label: "Auto-Renew King"},
				{Emoji: "🎬", Label: "Never Bored"},
				{Emoji: "🙅", Label: "Cancel? Never"},
			},
		}

	case models.ArchetypeEarlyBird:
		return roastEntry{
			opener:     "Rise and SPEND! 🌅",
			body:       "While others are still snoozing, you're already making transactions. Morning hours are your peak spending time. Productivity king/queen!",
			prediction: "Next year: 6AM will still find you handling business. Your bank app sees more sunrises than most people 🌄",
			traits: []models.TraitTag{
				{Emoji: "☀️", Label: "Morning Person"},
				{Emoji: "🏃", Label: "Early Moves"},
				{Emoji: "✅", Label: "Productive"},
			},
		}

	default:
		return roastEntry{
			opener:     "Balanced. Predictable. Responsible. ⚖️",
			body:       "No extreme highs, no extreme lows. Your spending is consistent and measured. Banks love you. Financial planners want to study you.",
			prediction: "Next year: you'll continue being the example others should follow. Boring? Maybe. Smart? Definitely! 🧠",
			traits: []models.TraitTag{
				{Emoji: "📊", Label: "Consistent"},
				{Emoji: "🎯", Label: "Predictable"},
				{Emoji: "✨", Label: "Responsible"},
			},
		}
	}
}
