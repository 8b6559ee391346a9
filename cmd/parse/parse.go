// Package parse handles the statement-to-CSV conversion command
package parse

import (
	"adeyosola/bank-wrapped/cmd/common"
	"adeyosola/bank-wrapped/cmd/root"
	internalcommon "adeyosola/bank-wrapped/internal/common"

	"github.com/spf13/cobra"
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a statement into normalized transactions CSV",
	Long: `Parse a bank statement export and write the reconstructed
transactions as a normalized CSV: one row per transaction with the
resolved category, merchant and recipient columns. No analysis is run.`,
	Run: parseFunc,
}

func parseFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()
	root.Log.Info("Parse command called")
	root.Log.Infof("Input statement file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output CSV file: %s", root.SharedFlags.Output)

	if root.SharedFlags.Output == "" {
		root.Log.Fatal("No output file specified, use --output")
	}

	parsed := common.ParseStatement(root.SharedFlags.Input, root.SharedFlags.Validate, logger)

	if err := internalcommon.WriteTransactionsToCSV(parsed.Transactions, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error writing CSV: %v", err)
	}
	root.Log.Info("Statement to CSV conversion completed successfully!")
}
