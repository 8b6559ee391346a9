package models

// Archetype is one of the ten discrete behavioral labels the personality
// classifier can assign.
type Archetype string

const (
	ArchetypeFoodie             Archetype = "The Foodie"
	ArchetypeSocialButterfly    Archetype = "The Social Butterfly"
	ArchetypeDataJunkie         Archetype = "The Data Junkie"
	ArchetypeNightOwl           Archetype = "The Night Owl"
	ArchetypeWeekendWarrior     Archetype = "The Weekend Warrior"
	ArchetypeSaver              Archetype = "The Saver"
	ArchetypeBigSpender         Archetype = "The Big Spender"
	ArchetypeSubscriptionAddict Archetype = "The Subscription Addict"
	ArchetypeEarlyBird          Archetype = "The Early Bird"
	ArchetypeSteadyEddie        Archetype = "The Steady Eddie"
)

// ArchetypeOrder is the fixed declaration order of archetypes. The
// classifier breaks score ties by this order: the earlier archetype wins.
var ArchetypeOrder = []Archetype{
	ArchetypeFoodie,
	ArchetypeSocialButterfly,
	ArchetypeDataJunkie,
	ArchetypeNightOwl,
	ArchetypeWeekendWarrior,
	ArchetypeSaver,
	ArchetypeBigSpender,
	ArchetypeSubscriptionAddict,
	ArchetypeEarlyBird,
	ArchetypeSteadyEddie,
}

// ArchetypeInfo is the static display data for an archetype.
type ArchetypeInfo struct {
	Emoji       string
	Description string
	Traits      []string
}

var archetypeInfo = map[Archetype]ArchetypeInfo{
	ArchetypeFoodie: {
		Emoji:       "🍕",
		Description: "Your wallet knows every restaurant in town. Food is love, food is life!",
		Traits:      []string{"Loves dining out", "Supports local restaurants", "Appreciates good food"},
	},
	ArchetypeSocialButterfly: {
		Emoji:       "🦋",
		Description: "You're always sending money to friends and family. Generosity is your middle name!",
		Traits:      []string{"Generous with loved ones", "Strong social connections", "Always helping out"},
	},
	ArchetypeDataJunkie: {
		Emoji:       "📶",
		Description: "Always online, always connected. Your data subscription game is strong!",
		Traits:      []string{"Heavy internet user", "Loves staying connected", "Digital native"},
	},
	ArchetypeNightOwl: {
		Emoji:       "🦉",
		Description: "The night is young when you're just getting started. Late-night transactions are your thing!",
		Traits:      []string{"Active at night", "Enjoys nightlife", "Burns the midnight oil"},
	},
	ArchetypeWeekendWarrior: {
		Emoji:       "🎉",
		Description: "Weekends are for spending! You work hard and play harder.",
		Traits:      []string{"Loves weekends", "Work-life balance", "Makes time for fun"},
	},
	ArchetypeSaver: {
		Emoji:       "🐷",
		Description: "Money comes in, but it doesn't rush out. You're building that financial future!",
		Traits:      []string{"Financially disciplined", "Future-focused", "Smart with money"},
	},
	ArchetypeBigSpender: {
		Emoji:       "💎",
		Description: "Life is too short for small transactions. You go big or go home!",
		Traits:      []string{"Enjoys luxury", "Lives in the moment", "Values experiences"},
	},
	ArchetypeSubscriptionAddict: {
		Emoji:       "📺",
		Description: "Netflix, Spotify, Canva... you've got a subscription for everything!",
		Traits:      []string{"Loves digital services", "Values convenience", "Tech-savvy"},
	},
	ArchetypeEarlyBird: {
		Emoji:       "🌅",
		Description: "Rise and grind! Your transactions start with the sunrise.",
		Traits:      []string{"Morning person", "Productive early hours", "Organized lifestyle"},
	},
	ArchetypeSteadyEddie: {
		Emoji:       "⚖️",
		Description: "Balanced and consistent. No extremes here, just steady financial flow.",
		Traits:      []string{"Predictable habits", "Consistent spending", "Stable lifestyle"},
	},
}

// Info returns the static display data for the archetype. Unknown
// archetypes fall back to the Steady Eddie entry.
func (a Archetype) Info() ArchetypeInfo {
	if info, ok := archetypeInfo[a]; ok {
		return info
	}
	return archetypeInfo[ArchetypeSteadyEddie]
}

// PersonalityResult is the classifier output: the winning archetype with
// its static traits, description and emoji.
type PersonalityResult struct {
	Archetype   Archetype `json:"archetype"`
	Traits      []string  `json:"traits"`
	Description string    `json:"description"`
	Emoji       string    `json:"emoji"`
}
