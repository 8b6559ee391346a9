// Package wrap handles the full statement analysis command
package wrap

import (
	"context"

	"adeyosola/bank-wrapped/cmd/common"
	"adeyosola/bank-wrapped/cmd/root"
	"adeyosola/bank-wrapped/internal/analyze"
	"adeyosola/bank-wrapped/internal/config"
	"adeyosola/bank-wrapped/internal/insights"
	"adeyosola/bank-wrapped/internal/models"
	"adeyosola/bank-wrapped/internal/summary"

	"github.com/spf13/cobra"
)

// Cmd represents the wrap command
var Cmd = &cobra.Command{
	Use:   "wrap",
	Short: "Analyze a statement into the full year-in-review breakdown",
	Long: `Analyze a bank statement export and emit the complete behavioral
analysis as JSON: merchants, recipients, categories, temporal patterns,
no-spend streaks, fun facts and the spending personality. With --insights
the analysis is accompanied by narrative commentary, generated by Gemini
when AI is enabled and filled in locally otherwise.`,
	Run: wrapFunc,
}

var withInsights bool

func init() {
	Cmd.Flags().BoolVar(&withInsights, "insights", false, "Attach narrative insight text to the analysis")
}

// report is the wrap command's JSON envelope.
type report struct {
	Analysis models.WrappedAnalysis `json:"analysis"`
	Insights *models.Insights       `json:"insights,omitempty"`
}

func wrapFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()
	root.Log.Info("Wrap command called")
	root.Log.Infof("Input statement file: %s", root.SharedFlags.Input)

	parsed := common.ParseStatement(root.SharedFlags.Input, root.SharedFlags.Validate, logger)
	analysis := analyze.New().Analyze(*parsed)

	out := report{Analysis: analysis}
	if withInsights {
		out.Insights = generateInsights(analysis)
	}

	if err := common.WriteJSON(out, root.SharedFlags.Output, logger); err != nil {
		root.Log.Fatalf("Error writing analysis: %v", err)
	}
	root.Log.Info("Statement analysis completed successfully!")
}

// generateInsights asks Gemini for commentary when AI is enabled and
// falls back to the local generators on any failure. Insight generation
// never aborts the command.
func generateInsights(analysis models.WrappedAnalysis) *models.Insights {
	cfg := config.GetGlobalConfig()
	if !cfg.AI.Enabled {
		root.Log.Debug("AI disabled, using local insight text")
		return insights.Fallback(analysis)
	}

	ctx := context.Background()
	gen, err := insights.NewGeminiGenerator(ctx, cfg)
	if err != nil {
		root.Log.Warnf("Failed to create Gemini client, using local insight text: %v", err)
		return insights.Fallback(analysis)
	}
	defer func() {
		if err := gen.Close(); err != nil {
			root.Log.Warnf("Failed to close Gemini client: %v", err)
		}
	}()

	generated, err := gen.Generate(ctx, summary.Prepare(analysis))
	if err != nil {
		root.Log.Warnf("Insight generation failed, using local insight text: %v", err)
		return insights.Fallback(analysis)
	}
	return generated
}
