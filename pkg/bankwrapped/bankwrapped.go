// Package bankwrapped exposes the statement analysis pipeline as a
// library. It wraps the internal parser, analyzers and insight
// generators behind a small stable surface for programs that want the
// year-in-review breakdown without going through the CLI.
package bankwrapped

import (
	"context"

	"adeyosola/bank-wrapped/internal/analyze"
	"adeyosola/bank-wrapped/internal/insights"
	"adeyosola/bank-wrapped/internal/models"
	"adeyosola/bank-wrapped/internal/statement"
	"adeyosola/bank-wrapped/internal/summary"
)

// ParseFile parses a bank-statement export (CSV or XLSX) into typed
// transactions plus the metadata found in the preamble rows.
func ParseFile(ctx context.Context, filePath string) (*models.ParsedStatement, error) {
	return statement.NewParser().ParseFile(ctx, filePath)
}

// Analyze computes the full behavioral analysis for a parsed statement.
func Analyze(parsed models.ParsedStatement) models.WrappedAnalysis {
	return analyze.New().Analyze(parsed)
}

// AnalyzeFile parses and analyzes a statement file in one step.
func AnalyzeFile(ctx context.Context, filePath string) (models.WrappedAnalysis, error) {
	parsed, err := ParseFile(ctx, filePath)
	if err != nil {
		return models.WrappedAnalysis{}, err
	}
	return Analyze(*parsed), nil
}

// Summarize projects a full analysis down to the compact summary used
// as the insight-generation payload.
func Summarize(analysis models.WrappedAnalysis) models.AnalysisSummary {
	return summary.Prepare(analysis)
}

// LocalInsights builds the deterministic narrative commentary for an
// analysis without calling any external service.
func LocalInsights(analysis models.WrappedAnalysis) *models.Insights {
	return insights.Fallback(analysis)
}
