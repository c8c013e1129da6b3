package output

import "github.com/masmgr/depminer/internal/mining"

// Compile-time interface conformance checks.
var (
	_ ChangeReportWriter = (*CSVChangeWriter)(nil)
	_ ChangeReportWriter = (*JSONChangeWriter)(nil)
	_ ChangeReportWriter = (*ConsoleChangeWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatCSV     OutputFormat = "csv"
	FormatJSON    OutputFormat = "json"
	FormatConsole OutputFormat = "console"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	OutputPath string // empty means stdout
}

// ChangeReportWriter writes dependency change reports.
type ChangeReportWriter interface {
	Write(report *mining.Report, options OutputOptions) error
}

// NewChangeReportWriter creates a report writer for the specified format.
func NewChangeReportWriter(format OutputFormat) ChangeReportWriter {
	switch format {
	case FormatJSON:
		return &JSONChangeWriter{}
	case FormatConsole:
		return &ConsoleChangeWriter{}
	default:
		return &CSVChangeWriter{}
	}
}
