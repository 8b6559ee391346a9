// Package root contains the root command for the application
package root

import (
	"os"

	"adeyosola/bank-wrapped/internal/analyze"
	"adeyosola/bank-wrapped/internal/classify"
	"adeyosola/bank-wrapped/internal/common"
	"adeyosola/bank-wrapped/internal/config"
	"adeyosola/bank-wrapped/internal/currencyutils"
	"adeyosola/bank-wrapped/internal/dateutils"
	"adeyosola/bank-wrapped/internal/fileutils"
	"adeyosola/bank-wrapped/internal/insights"
	"adeyosola/bank-wrapped/internal/logging"
	"adeyosola/bank-wrapped/internal/statement"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "bank-wrapped",
		Short: "A CLI tool to turn bank-statement exports into a year-in-review spending breakdown.",
		Long: `bank-wrapped reads a consumer bank-statement export (CSV or XLSX),
reconstructs the transactions, and produces a full behavioral analysis:
spending by merchant, recipient, category and time, no-spend streaks,
and a spending personality.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to bank-wrapped!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Set the configured logger for all packages
			statement.SetLogger(Log)
			analyze.SetLogger(Log)
			insights.SetLogger(Log)
			classify.SetLogger(Log)
			common.SetLogger(Log)
			dateutils.SetLogger(Log)
			currencyutils.SetLogger(Log)
			fileutils.SetLogger(Log)

			// Ensure CSV delimiter is updated after env variables are loaded
			if delim := os.Getenv("CSV_DELIMITER"); delim != "" {
				Log.WithField("delimiter", delim).Debug("Setting CSV delimiter from environment")
				commonDelim := []rune(delim)[0]
				common.SetDelimiter(commonDelim)
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// GetLogrusAdapter wraps the shared logrus instance in the logging
// abstraction the command helpers consume.
func GetLogrusAdapter() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// Init initializes the root command and all flags
func Init() {
	// Add persistent flags to root command for common options
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input statement file (CSV or XLSX)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (stdout when omitted)")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate the upload (extension, size) before parsing")
}
