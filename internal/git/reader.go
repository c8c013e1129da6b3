package git

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"
)

// HistoryReader reads commit history from a Git repository.
type HistoryReader struct {
	repo *git.Repository
	opts ReadOptions
}

// NewHistoryReader creates a new history reader for the given repository.
func NewHistoryReader(opts ReadOptions) (*HistoryReader, error) {
	repo, err := git.PlainOpen(opts.RepoPath)
	if err != nil {
		return nil, err
	}
	return &HistoryReader{repo: repo, opts: opts}, nil
}

// ReadChanges reads commit changes from the repository. Commits whose
// filtered change list is empty are omitted from the result.
func (r *HistoryReader) ReadChanges() ([]CommitChangeSet, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return nil, err
	}

	logOpts := &git.LogOptions{From: ref.Hash()}

	if r.opts.Since != nil {
		logOpts.Since = r.opts.Since
	}
	if r.opts.Until != nil {
		logOpts.Until = r.opts.Until
	}

	cIter, err := r.repo.Log(logOpts)
	if err != nil {
		return nil, err
	}

	var results []CommitChangeSet

	err = cIter.ForEach(func(c *object.Commit) error {
		changes, err := r.getCommitChanges(c)
		if err != nil {
			return err
		}

		if len(changes) == 0 {
			return nil
		}

		// Extract first line of commit message
		message := c.Message
		if idx := strings.IndexByte(message, '\n'); idx != -1 {
			message = message[:idx]
		}

		commitInfo := CommitInfo{
			SHA:     c.Hash.String(),
			When:    c.Committer.When,
			Author:  AuthorInfo{Name: c.Author.Name, Email: c.Author.Email},
			Message: message,
		}

		results = append(results, CommitChangeSet{
			Commit:  commitInfo,
			Changes: changes,
		})

		return nil
	})

	if err != nil {
		return nil, err
	}

	return results, nil
}

// getCommitChanges extracts file changes from a commit, diffing against
// the first parent. Root commits are diffed against the empty tree so
// the initial revision of a file surfaces as an addition.
func (r *HistoryReader) getCommitChanges(c *object.Commit) ([]FileChange, error) {
	tree, err := c.Tree()
	if err != nil {
		return nil, err
	}

	var parentTree *object.Tree
	if c.NumParents() > 0 {
		parent, err := c.Parent(0)
		if err != nil {
			return nil, err
		}
		parentTree, err = parent.Tree()
		if err != nil {
			return nil, err
		}
	}

	treeChanges, err := object.DiffTree(parentTree, tree)
	if err != nil {
		return nil, err
	}

	var changes []FileChange

	for _, treeChange := range treeChanges {
		action, err := treeChange.Action()
		if err != nil {
			return nil, err
		}

		var path string
		var kind ChangeKind

		switch action {
		case merkletrie.Insert:
			path = treeChange.To.Name
			kind = ChangeKindAdded
		case merkletrie.Delete:
			path = treeChange.From.Name
			kind = ChangeKindDeleted
		default:
			path = treeChange.To.Name
			kind = ChangeKindModified
		}

		if path == "" {
			continue
		}

		// Apply filters
		if !r.matchesFilters(path) {
			continue
		}

		from, to, err := treeChange.Files()
		if err != nil {
			return nil, err
		}

		var before, after string
		if from != nil {
			before, err = from.Contents()
			if err != nil {
				return nil, err
			}
		}
		if to != nil {
			after, err = to.Contents()
			if err != nil {
				return nil, err
			}
		}

		changes = append(changes, FileChange{
			Path:   path,
			Kind:   kind,
			Before: before,
			After:  after,
		})
	}

	return changes, nil
}

// matchesFilters checks if a path matches the include/exclude filters.
func (r *HistoryReader) matchesFilters(path string) bool {
	// Normalize path separators
	path = strings.ReplaceAll(path, "\\", "/")

	// Check exclude patterns first
	for _, pattern := range r.opts.Exclude {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return false
		}
	}

	// If no include patterns, accept all
	if len(r.opts.Include) == 0 {
		return true
	}

	// Check include patterns
	for _, pattern := range r.opts.Include {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return true
		}
	}

	return false
}
