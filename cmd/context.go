package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/depminer/config"
	"github.com/masmgr/depminer/internal/git"
)

// CommandContext holds common state for command execution.
// It encapsulates configuration loading, date parsing, and repository
// resolution (local path or fresh clone).
type CommandContext struct {
	Config    *config.Config
	RepoPath  string
	RepoLabel string
	RepoURL   string // empty for local repositories
	Since     *time.Time
	Until     *time.Time

	cleanup func()
}

// NewCommandContext creates a context from CLI flags. When no local
// --repo path is given, the repository is cloned from GitHub into a
// temporary directory that Close removes.
func NewCommandContext(c *cli.Context, owner, repo string) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	since, err := parseDateFlag(c.String("since"))
	if err != nil {
		return nil, fmt.Errorf("invalid since date: %w", err)
	}
	until, err := parseDateFlag(c.String("until"))
	if err != nil {
		return nil, fmt.Errorf("invalid until date: %w", err)
	}

	ctx := &CommandContext{
		Config: cfg,
		Since:  since,
		Until:  until,
	}

	if localPath := c.String("repo"); localPath != "" {
		ctx.RepoPath = localPath
		ctx.RepoLabel = filepath.Base(filepath.Clean(localPath))
		return ctx, nil
	}

	ctx.RepoURL = fmt.Sprintf("https://github.com/%s/%s", owner, repo)
	ctx.RepoLabel = owner + "/" + repo

	fmt.Printf("Analyzing repository: %s\n", ctx.RepoLabel)
	fmt.Printf("URL: %s\n", ctx.RepoURL)
	fmt.Println("This may take a few minutes...")
	fmt.Println()

	cloneDir, err := git.CloneRepository(c.Context, ctx.RepoURL)
	if err != nil {
		return nil, err
	}
	ctx.RepoPath = cloneDir
	ctx.cleanup = func() { os.RemoveAll(cloneDir) }

	return ctx, nil
}

// Close releases resources held by the context (the clone directory).
func (ctx *CommandContext) Close() {
	if ctx.cleanup != nil {
		ctx.cleanup()
	}
}
