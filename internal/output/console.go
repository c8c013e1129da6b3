package output

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/masmgr/depminer/internal/mining"
)

// ConsoleChangeWriter writes dependency change reports to the console.
type ConsoleChangeWriter struct{}

// Write outputs the change report as a table on stdout.
func (w *ConsoleChangeWriter) Write(report *mining.Report, options OutputOptions) error {
	color.Green("Dependency Change History")
	fmt.Printf("Repository: %s\n", report.RepoLabel)
	if report.URL != "" {
		fmt.Printf("URL: %s\n", report.URL)
	}
	fmt.Printf("Commits with dependency changes: %d\n", report.CommitCount())
	fmt.Printf("Authors: %d\n\n", report.AuthorCount())

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "Commit\tDate\tAuthor\tDependency\tChange")
	for _, rec := range report.Records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			shortSHA(rec.SHA),
			rec.When.Format(reportDateLayout),
			rec.Author,
			rec.Dependency,
			rec.Change.Describe(),
		)
	}

	return tw.Flush()
}

// shortSHA abbreviates a commit hash for console display.
func shortSHA(sha string) string {
	if len(sha) > 8 {
		return sha[:8]
	}
	return sha
}

// PrintSummary emits the human-readable run summary to stdout.
func PrintSummary(report *mining.Report) {
	color.Green("Results:")
	fmt.Printf("Repository: %s\n", report.RepoLabel)
	fmt.Printf("Number of commits with dependency changes: %d\n", report.CommitCount())
	if report.OutputPath != "" {
		fmt.Printf("Commit list saved to: %s\n", report.OutputPath)
	}
}
