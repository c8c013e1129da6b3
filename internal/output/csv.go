package output

import (
	"github.com/masmgr/depminer/internal/mining"
)

// CSVChangeWriter writes dependency change reports as CSV.
type CSVChangeWriter struct{}

// Write outputs the change report as comma-delimited rows with a fixed
// header. The header is written even when the report has no records.
func (w *CSVChangeWriter) Write(report *mining.Report, options OutputOptions) error {
	writer, file, err := createCSVWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	header := []string{"commit_hash", "commit_date", "commit_author", "dependency", "change_type"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, rec := range report.Records {
		row := []string{
			rec.SHA,
			formatReportDate(rec.When),
			rec.Author,
			rec.Dependency,
			rec.Change.Describe(),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
