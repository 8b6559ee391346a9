package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile         = "file_path"
	FieldStage        = "stage"
	FieldDetector     = "detector"
	FieldRow          = "row"
	FieldRows         = "rows"
	FieldTransactions = "transactions"
	FieldCategory     = "category"
	FieldArchetype    = "archetype"
	FieldMerchant     = "merchant"
	FieldReason       = "reason"
	FieldOperation    = "operation"
	FieldStatus       = "status"
	FieldError        = "error"
	FieldDuration     = "duration_ms"
	FieldCount        = "count"
	FieldModel        = "model"
	FieldOutputFile   = "output_file"
)
