// Package mining drives the dependency-change traversal: it walks the
// commit history, extracts dependency snapshots from descriptor
// revisions, and accumulates one change record per dependency transition.
package mining

import (
	"path"
	"strings"
	"time"

	"github.com/masmgr/depminer/internal/git"
	"github.com/masmgr/depminer/internal/maven"
)

// ChangeRecord is one row of the change report.
type ChangeRecord struct {
	SHA        string
	When       time.Time
	Author     string
	Message    string // first line of the commit message
	Dependency string
	Change     maven.DependencyChange
}

// Report holds the accumulated change records for one repository.
type Report struct {
	RepoLabel   string
	URL         string
	OutputPath  string
	GeneratedAt time.Time
	Records     []ChangeRecord
	Commits     map[string]struct{}
	Authors     map[string]struct{} // keyed by AuthorInfo.ContributorKey
}

// CommitCount returns the number of distinct commits with at least one
// dependency change.
func (r *Report) CommitCount() int {
	return len(r.Commits)
}

// AuthorCount returns the number of distinct authors behind those commits.
func (r *Report) AuthorCount() int {
	return len(r.Authors)
}

// Miner walks commit history and records dependency changes to the
// target descriptor file.
type Miner struct {
	reader     git.RepositoryReader
	extractor  maven.Extractor
	descriptor string
}

// NewMiner creates a miner for the given history source, extraction
// strategy, and descriptor filename (matched against the base name of
// each changed path).
func NewMiner(reader git.RepositoryReader, extractor maven.Extractor, descriptor string) *Miner {
	return &Miner{
		reader:     reader,
		extractor:  extractor,
		descriptor: descriptor,
	}
}

// Mine traverses the commit history and returns the accumulated report.
// Extraction failures abort the run.
func (m *Miner) Mine() (*Report, error) {
	changeSets, err := m.reader.ReadChanges()
	if err != nil {
		return nil, err
	}

	report := &Report{
		GeneratedAt: time.Now(),
		Commits:     make(map[string]struct{}),
		Authors:     make(map[string]struct{}),
	}

	for _, cs := range changeSets {
		for _, fc := range cs.Changes {
			if !m.matchesDescriptor(fc.Path) {
				continue
			}

			before, err := m.extractor.Extract(fc.Before)
			if err != nil {
				return nil, err
			}
			after, err := m.extractor.Extract(fc.After)
			if err != nil {
				return nil, err
			}

			for _, change := range maven.Compare(before, after) {
				report.Records = append(report.Records, ChangeRecord{
					SHA:        cs.Commit.SHA,
					When:       cs.Commit.When,
					Author:     cs.Commit.Author.Name,
					Message:    cs.Commit.Message,
					Dependency: change.Key,
					Change:     change,
				})
				report.Commits[cs.Commit.SHA] = struct{}{}
				report.Authors[cs.Commit.Author.ContributorKey()] = struct{}{}
			}
		}
	}

	return report, nil
}

// matchesDescriptor reports whether the changed path names the target
// descriptor file. The match is on the exact base name, so nested
// descriptors (e.g. module poms in a monorepo) are picked up too.
func (m *Miner) matchesDescriptor(p string) bool {
	p = strings.ReplaceAll(p, "\\", "/")
	return path.Base(p) == m.descriptor
}
