package parsererror

import "fmt"

// ParseError represents an error during parsing
type ParseError struct {
	Stage string
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Stage, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents a file that was rejected before parsing,
// e.g. wrong extension or over the size cap.
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// UnsupportedFormatError represents a file whose format is recognized but
// not handled, such as PDF statements.
type UnsupportedFormatError struct {
	FilePath string
	Format   string
	Hint     string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("unsupported format '%s' for file '%s': %s", e.Format, e.FilePath, e.Hint)
	}
	return fmt.Sprintf("unsupported format '%s' for file '%s'", e.Format, e.FilePath)
}

// HeaderNotFoundError represents a statement grid in which no detection
// tier could locate the transaction columns.
type HeaderNotFoundError struct {
	FilePath     string
	RowsScanned  int
	TiersApplied []string
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("no transaction header found in '%s' after scanning %d rows (tiers: %v)",
		e.FilePath, e.RowsScanned, e.TiersApplied)
}

// RowError represents a single statement row that could not be converted
// into a transaction. Row parsing collects these instead of aborting.
type RowError struct {
	Row    int
	Reason string
	Err    error
}

func (e *RowError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("row %d: %s: %v", e.Row, e.Reason, e.Err)
	}
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// EmptyStatementError represents a statement that parsed cleanly but
// yielded no transactions to analyze.
type EmptyStatementError struct {
	FilePath string
}

func (e *EmptyStatementError) Error() string {
	return fmt.Sprintf("no transactions found in '%s'", e.FilePath)
}
