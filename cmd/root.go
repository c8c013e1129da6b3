package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/depminer/config"
	"github.com/masmgr/depminer/internal/output"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:      "depminer",
		Usage:     "Mine dependency declaration changes from Git commit history",
		Version:   "1.0.0",
		ArgsUsage: "<owner> <repo>",
		Commands: []*cli.Command{
			MineCmd(),
			DepsCmd(),
			InitCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		},
		Action: legacyAction,
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to a local Git repository (skips cloning)",
		},
		&cli.StringFlag{
			Name:  "descriptor",
			Usage: "Build descriptor filename to track (default: pom.xml)",
		},
		&cli.StringFlag{
			Name:  "parser",
			Usage: "Extraction strategy (xml, regex)",
		},
		&cli.StringFlag{
			Name:  "since",
			Usage: "Analyze commits since this date (YYYY-MM-DD)",
		},
		&cli.StringFlag{
			Name:  "until",
			Usage: "Analyze commits until this date (YYYY-MM-DD)",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns to include (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns to exclude (can be specified multiple times)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (csv, json, console)",
			Value:   "csv",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: {owner}_{repo}_dependency_commits.csv)",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to configuration file",
		},
	}
}

// parseDateFlag parses a date string flag.
func parseDateFlag(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", s)
	}
	return &t, nil
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.OutputFormat {
	switch s {
	case "json":
		return output.FormatJSON
	case "console":
		return output.FormatConsole
	default:
		return output.FormatCSV
	}
}

// loadConfig loads configuration from file or defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	configPath := c.String("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Apply overrides from CLI
	if descriptor := c.String("descriptor"); descriptor != "" {
		cfg.Descriptor.Filename = descriptor
	}
	if parser := c.String("parser"); parser != "" {
		cfg.Descriptor.Parser = parser
	}
	if includes := c.StringSlice("include"); len(includes) > 0 {
		cfg.Filters.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}

	return cfg, nil
}

// defaultOutputName builds the report filename for a repository label,
// e.g. "pac4j/dropwizard-pac4j" -> "pac4j_dropwizard-pac4j_dependency_commits.csv".
func defaultOutputName(repoLabel string) string {
	return strings.ReplaceAll(repoLabel, "/", "_") + "_dependency_commits.csv"
}

// legacyAction handles the default invocation: two positional arguments
// naming the GitHub repository owner and name.
func legacyAction(c *cli.Context) error {
	if c.NArg() != 2 {
		fmt.Println("Usage: depminer <owner> <repo>")
		fmt.Println("Example: depminer pac4j dropwizard-pac4j")
		return cli.Exit("", 1)
	}
	return runMine(c, c.Args().Get(0), c.Args().Get(1))
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
