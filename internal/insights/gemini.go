package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"adeyosola/bank-wrapped/internal/config"
	"adeyosola/bank-wrapped/internal/currencyutils"
	"adeyosola/bank-wrapped/internal/logging"
	"adeyosola/bank-wrapped/internal/models"
	"adeyosola/bank-wrapped/internal/parsererror"
)

const systemPrompt = `You are a witty Nigerian financial commentator creating a "Bank Wrapped" experience (like Spotify Wrapped but for bank statements). Your job is to roast, hype, or comment on the user's spending habits in authentic Nigerian style.

TONE & STYLE:
- Use Nigerian slang naturally: "Omo", "Odogwu", "Na wa", "Wahala", "Soft life", "Sapa", "Japa money", "Baller", "Big man tings", "Wetin concern", etc.
- Mix English with occasional Pidgin for flavor
- Be funny but not mean - more like a friend roasting you at a hangout
- Hype them when they deserve it, roast them when it's funny
- Reference Nigerian culture (Owambe, Jollof, Suya, etc.) when relevant
- Keep it relatable to young Nigerians

IMPORTANT:
- Return ONLY valid JSON, no markdown, no code blocks
- Make insights specific to their actual data - don't be generic
- If someone spent a lot at restaurants, roast that. If they send money to one person a lot, comment on that relationship
- Be creative with nicknames and titles
- Keep roasts playful, never actually offensive`

// GeminiGenerator asks a Gemini model for the full narrative as one
// JSON document matching the models.Insights shape.
type GeminiGenerator struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
}

// NewGeminiGenerator creates a generator from the AI section of the
// application config. It fails when no API key is available.
func NewGeminiGenerator(ctx context.Context, cfg *config.Config) (*GeminiGenerator, error) {
	apiKey := cfg.AI.APIKey
	if apiKey == "" {
		apiKey = config.GetGeminiAPIKey()
	}
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.AI.Model)
	model.ResponseMIMEType = "application/json"

	return &GeminiGenerator{
		client:  client,
		model:   model,
		timeout: time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
	}, nil
}

// Close releases the underlying API client.
func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

// Generate sends the summary to the model and parses the JSON reply.
func (g *GeminiGenerator) Generate(ctx context.Context, summary models.AnalysisSummary) (*models.Insights, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	resp, err := g.model.GenerateContent(ctx, genai.Text(buildPrompt(summary)))
	if err != nil {
		return nil, fmt.Errorf("Gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from Gemini API")
	}

	text := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	insights, err := parseInsights(text)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		logging.FieldDuration: time.Since(start).String(),
	}).Info("Narrative insights generated")
	return insights, nil
}

// parseInsights decodes the model reply, tolerating markdown code
// fences around the JSON document.
func parseInsights(text string) (*models.Insights, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}

	var insights models.Insights
	if err := json.Unmarshal([]byte(text), &insights); err != nil {
		return nil, &parsererror.ParseError{
			Stage: "insights",
			Field: "response",
			Value: truncate(text, 80),
			Err:   err,
		}
	}
	return &insights, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// buildPrompt renders the summary as the data block of the request.
func buildPrompt(summary models.AnalysisSummary) string {
	var b strings.Builder

	b.WriteString(systemPrompt)
	b.WriteString("\n\nHere's someone's bank statement analysis. Generate personalized, funny insights for their Bank Wrapped.\n\n")

	fmt.Fprintf(&b, "THEIR DATA:\n- Name: %s\n- Period: %s to %s (%d days)\n\n",
		summary.AccountName, summary.Period.Start, summary.Period.End, summary.Period.Days)

	sign := ""
	if summary.Overview.NetFlow >= 0 {
		sign = "+"
	}
	fmt.Fprintf(&b, "MONEY FLOW:\n- Total Transactions: %d\n- Money In: %s\n- Money Out: %s\n- Net: %s%s\n\n",
		summary.Overview.TotalTransactions,
		naira(summary.Overview.TotalCredits),
		naira(summary.Overview.TotalDebits),
		sign, naira(summary.Overview.NetFlow))

	purchases := strings.Join(summary.BiggestDay.TopPurchases, ", ")
	if purchases == "" {
		purchases = "Various transactions"
	}
	fmt.Fprintf(&b, "BIGGEST SPENDING DAY (Odogwu Day):\n- Date: %s\n- Amount: %s\n- Transactions: %d\n- What they bought: %s\n\n",
		summary.BiggestDay.Date, naira(summary.BiggestDay.Amount),
		summary.BiggestDay.TransactionCount, purchases)

	b.WriteString("TOP MERCHANTS (Where their money goes):\n")
	for i, m := range summary.TopMerchants {
		fmt.Fprintf(&b, "%d. %s: %s (%d visits)\n", i+1, m.Name, naira(m.Amount), m.Visits)
	}

	b.WriteString("\nTOP RECIPIENTS (Who they send money to):\n")
	for i, r := range summary.TopRecipients {
		fmt.Fprintf(&b, "%d. %s: %s (%d transfers)\n", i+1, r.Name, naira(r.Amount), r.Count)
	}

	b.WriteString("\nSPENDING CATEGORIES:\n")
	for _, c := range summary.Categories {
		fmt.Fprintf(&b, "- %s: %s (%.1f%%)\n", c.Name, naira(c.Amount), c.Percentage)
	}

	fmt.Fprintf(&b, "\nSPENDING RHYTHM:\n- Peak Time: %s (%s)\n- Weekend Spend: %s (%.1f%% of total)\n- Weekday Spend: %s\n\n",
		summary.Rhythm.PeakTimeOfDay, naira(summary.Rhythm.PeakTimeAmount),
		naira(summary.Rhythm.WeekendSpend), summary.Rhythm.WeekendPercentage,
		naira(summary.Rhythm.WeekdaySpend))

	fmt.Fprintf(&b, "SPENDING JOURNEY:\n- Peak Month: %s (%s)\n- Trend: %s\n\n",
		summary.Journey.PeakMonth, naira(summary.Journey.PeakMonthAmount),
		summary.Journey.MonthlyTrend)

	fmt.Fprintf(&b, "PERSONALITY: %s\nTraits: %s\n\n",
		summary.Personality.Archetype, strings.Join(summary.Personality.Traits, ", "))

	b.WriteString(`---

Generate a JSON object with these fields (be specific to their data, make it personal and funny):

{
  "intro": {"greeting": "personalized greeting with their name", "tagline": "catchy one-liner about their period"},
  "overview": {"headline": "2-4 word headline about their money moves", "reaction": "1-2 sentence reaction to their overall flow"},
  "odogwu_day": {"title": "dramatic title for their biggest day", "roast": "2-3 sentences roasting/hyping what they did that day", "verdict": "short verdict like 'Certified Big Spender'"},
  "your_spots": {"overall": "1-2 sentences about their spending spots", "merchants": [{"name": "merchant name", "relationship": "funny relationship status", "roast": "one-liner about this merchant"}]},
  "money_circle": {"overall": "1-2 sentences about who they send money to", "recipients": [{"name": "recipient name", "title": "funny title like 'The Landlord' or 'Bank of Mum'", "insight": "one-liner about this relationship"}]},
  "categories": {"headline": "headline about their priorities", "roast": "1-2 sentences about their spending categories"},
  "rhythm": {"title": "their spending rhythm title", "description": "1-2 sentences about when they spend", "verdict": "short verdict"},
  "journey": {"peak_month_roast": "roast about their peak spending month", "trend": "comment on their spending trend over the period"},
  "personality": {"archetype": "their money personality title", "emoji": "one emoji that represents them", "opener": "dramatic opener line", "roast": "2-3 sentence personality roast", "prediction": "funny prediction for next year", "traits": [{"emoji": "emoji", "label": "trait"}]},
  "summary": {"headline": "final headline for their wrapped", "caption": "shareable caption for social media", "hashtags": ["hashtag1", "hashtag2", "hashtag3"]}
}`)

	return b.String()
}

func naira(amount float64) string {
	return currencyutils.FormatNaira(decimal.NewFromFloat(amount))
}
