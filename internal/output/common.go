package output

import "strings"

// CSVHeader is the canonical header row for CSV output.
// Keep this as the single source of truth; all writers should use it.
const CSVHeader = "read_id,adapter_count,best_index,best_label,best_score,second_index,second_label,second_score"

// Output formats.
const (
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatXLSX  = "xlsx"
)

// Formats lists every supported --output value.
var Formats = []string{FormatCSV, FormatJSON, FormatJSONL, FormatXLSX}

// Columns returns the header split into column names.
func Columns() []string { return strings.Split(CSVHeader, ",") }
