package summary_test

import (
	"testing"

	"adeyosola/bank-wrapped/cmd/root"
	"adeyosola/bank-wrapped/cmd/summary"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestSummaryCommand_Metadata(t *testing.T) {
	assert.Equal(t, "summary", summary.Cmd.Use)
	assert.Contains(t, summary.Cmd.Short, "compact summary JSON")
	assert.Contains(t, summary.Cmd.Long, "insight-generation payload")
	assert.NotNil(t, summary.Cmd.Run)
}

func TestSummaryCommand_Structure(t *testing.T) {
	assert.NotEmpty(t, summary.Cmd.Use)
	assert.NotEmpty(t, summary.Cmd.Short)
	assert.NotEmpty(t, summary.Cmd.Long)
	assert.IsType(t, func(*cobra.Command, []string) {}, summary.Cmd.Run)
}

func TestSummaryCommand_SharedFlagsAccess(t *testing.T) {
	originalFlags := root.SharedFlags
	defer func() { root.SharedFlags = originalFlags }()

	root.SharedFlags.Input = "statement.xlsx"
	root.SharedFlags.Output = "summary.json"

	assert.Equal(t, "statement.xlsx", root.SharedFlags.Input)
	assert.Equal(t, "summary.json", root.SharedFlags.Output)
}
