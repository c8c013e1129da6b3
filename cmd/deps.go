package cmd

import (
	"fmt"
	"os"
	"path"
	"sort"
	"text/tabwriter"

	"github.com/fatih/color"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/urfave/cli/v2"

	"github.com/masmgr/depminer/internal/maven"
)

// DepsCmd returns the deps command, which lists the dependencies
// declared at HEAD of a local repository.
func DepsCmd() *cli.Command {
	return &cli.Command{
		Name:  "deps",
		Usage: "List dependencies declared at HEAD of a local repository",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "repo",
				Aliases: []string{"r"},
				Usage:   "Path to Git repository",
				Value:   ".",
			},
			&cli.StringFlag{
				Name:  "descriptor",
				Usage: "Build descriptor filename to inspect (default: pom.xml)",
			},
			&cli.StringFlag{
				Name:  "parser",
				Usage: "Extraction strategy (xml, regex)",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to configuration file",
			},
		},
		Action: depsAction,
	}
}

func depsAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	extractor, err := maven.NewExtractor(maven.ParserStrategy(cfg.Descriptor.Parser))
	if err != nil {
		return err
	}

	repo, err := gogit.PlainOpen(c.String("repo"))
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}

	ref, err := repo.Head()
	if err != nil {
		return err
	}
	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return err
	}
	tree, err := commit.Tree()
	if err != nil {
		return err
	}

	type descriptorSnapshot struct {
		path     string
		snapshot maven.Snapshot
	}
	var found []descriptorSnapshot

	err = tree.Files().ForEach(func(f *object.File) error {
		if path.Base(f.Name) != cfg.Descriptor.Filename {
			return nil
		}
		text, err := f.Contents()
		if err != nil {
			return err
		}
		snapshot, err := extractor.Extract(text)
		if err != nil {
			return fmt.Errorf("extract %s: %w", f.Name, err)
		}
		found = append(found, descriptorSnapshot{path: f.Name, snapshot: snapshot})
		return nil
	})
	if err != nil {
		return err
	}

	if len(found) == 0 {
		fmt.Printf("No %s found at HEAD.\n", cfg.Descriptor.Filename)
		return nil
	}

	sort.Slice(found, func(i, j int) bool { return found[i].path < found[j].path })

	color.Green("Declared Dependencies (%s)", ref.Hash().String()[:8])
	for _, d := range found {
		fmt.Printf("\n%s (%d dependencies)\n", d.path, len(d.snapshot))

		keys := make([]string, 0, len(d.snapshot))
		for key := range d.snapshot {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "Dependency\tVersion")
		for _, key := range keys {
			fmt.Fprintf(tw, "%s\t%s\n", key, maven.FormatVersion(d.snapshot[key]))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	return nil
}
