package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/depminer/internal/git"
	"github.com/masmgr/depminer/internal/maven"
	"github.com/masmgr/depminer/internal/mining"
	"github.com/masmgr/depminer/internal/output"
)

// MineCmd returns the mine command.
func MineCmd() *cli.Command {
	return &cli.Command{
		Name:      "mine",
		Aliases:   []string{"m"},
		Usage:     "Mine dependency declaration changes from a repository's history",
		ArgsUsage: "[owner] [repo]",
		Flags:     commonFlags(),
		Action:    mineAction,
	}
}

func mineAction(c *cli.Context) error {
	owner, repo := c.Args().Get(0), c.Args().Get(1)
	if c.String("repo") == "" && (owner == "" || repo == "" || c.NArg() != 2) {
		fmt.Println("Usage: depminer mine <owner> <repo>")
		fmt.Println("       depminer mine --repo <path>")
		return cli.Exit("", 1)
	}
	return runMine(c, owner, repo)
}

// runMine executes the full mining pipeline: resolve repository, walk
// history, diff descriptor snapshots, write the report.
func runMine(c *cli.Context, owner, repo string) error {
	ctx, err := NewCommandContext(c, owner, repo)
	if err != nil {
		return err
	}
	defer ctx.Close()

	extractor, err := maven.NewExtractor(maven.ParserStrategy(ctx.Config.Descriptor.Parser))
	if err != nil {
		return err
	}

	reader, err := git.NewHistoryReader(git.ReadOptions{
		RepoPath: ctx.RepoPath,
		Since:    ctx.Since,
		Until:    ctx.Until,
		Include:  ctx.Config.Filters.Include,
		Exclude:  ctx.Config.Filters.Exclude,
	})
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}

	miner := mining.NewMiner(reader, extractor, ctx.Config.Descriptor.Filename)
	report, err := miner.Mine()
	if err != nil {
		return fmt.Errorf("failed to mine history: %w", err)
	}
	report.RepoLabel = ctx.RepoLabel
	report.URL = ctx.RepoURL

	opts := output.OutputOptions{
		Format:     getOutputFormat(c.String("format")),
		OutputPath: c.String("output"),
	}
	if opts.OutputPath == "" && opts.Format != output.FormatConsole {
		opts.OutputPath = filepath.Join(ctx.Config.Output.Directory, defaultOutputName(ctx.RepoLabel))
	}
	report.OutputPath = opts.OutputPath

	writer := output.NewChangeReportWriter(opts.Format)
	if err := writer.Write(report, opts); err != nil {
		return err
	}

	if opts.Format != output.FormatConsole {
		output.PrintSummary(report)
	}

	return nil
}
