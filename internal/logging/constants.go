package logging

// Standardized field names for structured logging.
// These constants keep log output consistent and easy to filter.
const (
	FieldFile       = "file_path"
	FieldCategory   = "category"
	FieldCount      = "count"
	FieldYear       = "year"
	FieldMonth      = "month"
	FieldAmount     = "amount"
	FieldDate       = "date"
	FieldRow        = "row"
	FieldFormat     = "format"
	FieldOutputFile = "output_file"
	FieldRule       = "rule"
	FieldDelimiter  = "delimiter"
)
