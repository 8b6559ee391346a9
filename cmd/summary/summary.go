// Package summary handles the compact analysis summary command
package summary

import (
	"adeyosola/bank-wrapped/cmd/common"
	"adeyosola/bank-wrapped/cmd/root"
	"adeyosola/bank-wrapped/internal/analyze"
	"adeyosola/bank-wrapped/internal/summary"

	"github.com/spf13/cobra"
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Analyze a statement and emit the compact summary JSON",
	Long: `Analyze a bank statement export and project the result down to
the compact summary: headline totals, top merchants and recipients,
category percentages, spending rhythm and personality. This is the
flattened view used as the insight-generation payload.`,
	Run: summaryFunc,
}

func summaryFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()
	root.Log.Info("Summary command called")
	root.Log.Infof("Input statement file: %s", root.SharedFlags.Input)

	parsed := common.ParseStatement(root.SharedFlags.Input, root.SharedFlags.Validate, logger)
	analysis := analyze.New().Analyze(*parsed)

	if err := common.WriteJSON(summary.Prepare(analysis), root.SharedFlags.Output, logger); err != nil {
		root.Log.Fatalf("Error writing summary: %v", err)
	}
	root.Log.Info("Summary generation completed successfully!")
}
