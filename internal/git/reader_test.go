package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// createTestRepo creates a temporary git repository for reader tests.
func createTestRepo(t *testing.T) (string, *gogit.Repository) {
	t.Helper()

	tmpDir := t.TempDir()
	repo, err := gogit.PlainInit(tmpDir, false)
	if err != nil {
		t.Fatalf("Failed to initialize git repo: %v", err)
	}
	return tmpDir, repo
}

// commitFiles writes the given files and commits them.
func commitFiles(t *testing.T, repo *gogit.Repository, message string, files map[string]string, commitTime time.Time) string {
	t.Helper()

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}

	for name, content := range files {
		fullPath := filepath.Join(w.Filesystem.Root(), name)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}
		if _, err := w.Add(name); err != nil {
			t.Fatalf("Failed to add file: %v", err)
		}
	}

	hash, err := w.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test Author",
			Email: "test@example.com",
			When:  commitTime,
		},
	})
	if err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}
	return hash.String()
}

func TestReadChanges_CapturesContent(t *testing.T) {
	repoDir, repo := createTestRepo(t)

	base := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	v1 := "<project><dependencies></dependencies></project>\n"
	v2 := "<project><dependencies><dependency><groupId>a</groupId><artifactId>b</artifactId><version>1.0</version></dependency></dependencies></project>\n"

	firstSHA := commitFiles(t, repo, "initial pom", map[string]string{"pom.xml": v1}, base)
	secondSHA := commitFiles(t, repo, "add dependency", map[string]string{"pom.xml": v2}, base.Add(time.Hour))

	reader, err := NewHistoryReader(ReadOptions{RepoPath: repoDir})
	if err != nil {
		t.Fatalf("NewHistoryReader() error: %v", err)
	}

	changeSets, err := reader.ReadChanges()
	if err != nil {
		t.Fatalf("ReadChanges() error: %v", err)
	}
	if len(changeSets) != 2 {
		t.Fatalf("got %d change sets, expected 2", len(changeSets))
	}

	byCommit := map[string]CommitChangeSet{}
	for _, cs := range changeSets {
		byCommit[cs.Commit.SHA] = cs
	}

	first, ok := byCommit[firstSHA]
	if !ok {
		t.Fatalf("root commit %s missing from change sets", firstSHA)
	}
	if len(first.Changes) != 1 {
		t.Fatalf("root commit has %d changes, expected 1", len(first.Changes))
	}
	if first.Changes[0].Kind != ChangeKindAdded {
		t.Errorf("root commit change kind = %v, expected added", first.Changes[0].Kind)
	}
	if first.Changes[0].Before != "" {
		t.Errorf("root commit Before = %q, expected empty", first.Changes[0].Before)
	}
	if first.Changes[0].After != v1 {
		t.Errorf("root commit After = %q, expected %q", first.Changes[0].After, v1)
	}

	second, ok := byCommit[secondSHA]
	if !ok {
		t.Fatalf("second commit %s missing from change sets", secondSHA)
	}
	change := second.Changes[0]
	if change.Kind != ChangeKindModified {
		t.Errorf("second commit change kind = %v, expected modified", change.Kind)
	}
	if change.Before != v1 {
		t.Errorf("Before = %q, expected %q", change.Before, v1)
	}
	if change.After != v2 {
		t.Errorf("After = %q, expected %q", change.After, v2)
	}
	if second.Commit.Author.Name != "Test Author" {
		t.Errorf("Author.Name = %q, expected %q", second.Commit.Author.Name, "Test Author")
	}
}

func TestReadChanges_DeletedFile(t *testing.T) {
	repoDir, repo := createTestRepo(t)

	base := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	content := "to be removed\n"

	commitFiles(t, repo, "add file", map[string]string{"old.txt": content}, base)

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}
	if _, err := w.Remove("old.txt"); err != nil {
		t.Fatalf("Failed to remove file: %v", err)
	}
	if _, err := w.Commit("remove file", &gogit.CommitOptions{
		Author: &object.Signature{Name: "Test Author", Email: "test@example.com", When: base.Add(time.Hour)},
	}); err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}

	reader, err := NewHistoryReader(ReadOptions{RepoPath: repoDir})
	if err != nil {
		t.Fatalf("NewHistoryReader() error: %v", err)
	}
	changeSets, err := reader.ReadChanges()
	if err != nil {
		t.Fatalf("ReadChanges() error: %v", err)
	}

	// Newest first: the deletion commit is the first change set.
	deletion := changeSets[0].Changes[0]
	if deletion.Kind != ChangeKindDeleted {
		t.Errorf("kind = %v, expected deleted", deletion.Kind)
	}
	if deletion.Before != content {
		t.Errorf("Before = %q, expected %q", deletion.Before, content)
	}
	if deletion.After != "" {
		t.Errorf("After = %q, expected empty", deletion.After)
	}
}

func TestMatchesFilters(t *testing.T) {
	tests := []struct {
		name     string
		include  []string
		exclude  []string
		path     string
		expected bool
	}{
		{name: "No filters accepts all", path: "pom.xml", expected: true},
		{name: "Include match", include: []string{"**/pom.xml"}, path: "modules/core/pom.xml", expected: true},
		{name: "Include miss", include: []string{"modules/**"}, path: "pom.xml", expected: false},
		{name: "Exclude wins", include: []string{"**/pom.xml"}, exclude: []string{"vendor/**"}, path: "vendor/lib/pom.xml", expected: false},
		{name: "Windows separators normalized", include: []string{"src/**"}, path: "src\\main\\pom.xml", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &HistoryReader{opts: ReadOptions{Include: tt.include, Exclude: tt.exclude}}
			if got := r.matchesFilters(tt.path); got != tt.expected {
				t.Errorf("matchesFilters(%q) = %v, expected %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestReadChanges_IncludeFilter(t *testing.T) {
	repoDir, repo := createTestRepo(t)

	base := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	commitFiles(t, repo, "mixed", map[string]string{
		"pom.xml":   "<project/>\n",
		"README.md": "readme\n",
	}, base)

	reader, err := NewHistoryReader(ReadOptions{RepoPath: repoDir, Include: []string{"**/pom.xml", "pom.xml"}})
	if err != nil {
		t.Fatalf("NewHistoryReader() error: %v", err)
	}
	changeSets, err := reader.ReadChanges()
	if err != nil {
		t.Fatalf("ReadChanges() error: %v", err)
	}
	if len(changeSets) != 1 {
		t.Fatalf("got %d change sets, expected 1", len(changeSets))
	}
	if len(changeSets[0].Changes) != 1 {
		t.Fatalf("got %d changes, expected only the descriptor", len(changeSets[0].Changes))
	}
	if changeSets[0].Changes[0].Path != "pom.xml" {
		t.Errorf("path = %q, expected pom.xml", changeSets[0].Changes[0].Path)
	}
}
