package git

import (
	"context"
	"fmt"
	"os"

	"github.com/go-git/go-git/v5"
)

// CloneRepository clones a remote repository into a fresh temporary
// directory and returns its path. The caller owns the directory and
// should remove it when finished.
func CloneRepository(ctx context.Context, url string) (string, error) {
	dir, err := os.MkdirTemp("", "depminer-*")
	if err != nil {
		return "", err
	}

	_, err = git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL: url,
	})
	if err != nil {
		os.RemoveAll(dir)
		return "", fmt.Errorf("clone %s: %w", url, err)
	}

	return dir, nil
}
