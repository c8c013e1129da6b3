package output

import (
	"encoding/json"

	"github.com/masmgr/depminer/internal/mining"
)

// JSONChangeWriter writes dependency change reports as JSON.
type JSONChangeWriter struct{}

// JSONChangeReport is the JSON output structure for a change report.
type JSONChangeReport struct {
	Repository  string             `json:"repository"`
	URL         string             `json:"url,omitempty"`
	GeneratedAt string             `json:"generatedAt"`
	CommitCount int                `json:"commitCount"`
	AuthorCount int                `json:"authorCount"`
	Records     []JSONChangeRecord `json:"records"`
}

// JSONChangeRecord is the JSON output structure for a single record.
type JSONChangeRecord struct {
	CommitHash    string  `json:"commitHash"`
	CommitDate    string  `json:"commitDate"`
	CommitAuthor  string  `json:"commitAuthor"`
	CommitMessage string  `json:"commitMessage,omitempty"`
	Dependency    string  `json:"dependency"`
	ChangeType    string  `json:"changeType"`
	OldVersion    *string `json:"oldVersion,omitempty"`
	NewVersion    *string `json:"newVersion,omitempty"`
}

// Write outputs the change report as JSON.
func (w *JSONChangeWriter) Write(report *mining.Report, options OutputOptions) error {
	jsonRecords := make([]JSONChangeRecord, len(report.Records))
	for i, rec := range report.Records {
		jsonRecords[i] = JSONChangeRecord{
			CommitHash:    rec.SHA,
			CommitDate:    formatReportDate(rec.When),
			CommitAuthor:  rec.Author,
			CommitMessage: rec.Message,
			Dependency:    rec.Dependency,
			ChangeType:    rec.Change.Describe(),
			OldVersion:    rec.Change.OldVersion,
			NewVersion:    rec.Change.NewVersion,
		}
	}

	jsonReport := JSONChangeReport{
		Repository:  report.RepoLabel,
		URL:         report.URL,
		GeneratedAt: formatReportDate(report.GeneratedAt),
		CommitCount: report.CommitCount(),
		AuthorCount: report.AuthorCount(),
		Records:     jsonRecords,
	}

	writer, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(jsonReport)
}
