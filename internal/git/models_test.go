package git

import "testing"

func TestChangeKind_String(t *testing.T) {
	tests := []struct {
		kind     ChangeKind
		expected string
	}{
		{ChangeKindAdded, "added"},
		{ChangeKindModified, "modified"},
		{ChangeKindDeleted, "deleted"},
		{ChangeKind(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("String() = %q, expected %q", got, tt.expected)
		}
	}
}

func TestAuthorInfo_ContributorKey(t *testing.T) {
	a := AuthorInfo{Name: "Alice", Email: "Alice@Example.COM"}
	if got := a.ContributorKey(); got != "alice@example.com" {
		t.Errorf("ContributorKey() = %q, expected %q", got, "alice@example.com")
	}
}
