package maven

import "testing"

func findChange(changes []DependencyChange, key string) *DependencyChange {
	for i := range changes {
		if changes[i].Key == key {
			return &changes[i]
		}
	}
	return nil
}

func TestCompare_Classification(t *testing.T) {
	before := Snapshot{
		"org.example:kept":     strPtr("1.0"),
		"org.example:upgraded": strPtr("1.0"),
		"org.example:dropped":  strPtr("3.2"),
		"org.example:pinned":   nil,
	}
	after := Snapshot{
		"org.example:kept":     strPtr("1.0"),
		"org.example:upgraded": strPtr("2.0"),
		"org.example:added":    strPtr("0.1"),
		"org.example:pinned":   strPtr("4.0"),
	}

	changes := Compare(before, after)

	if len(changes) != 4 {
		t.Fatalf("Compare() emitted %d changes, expected 4: %v", len(changes), changes)
	}

	if c := findChange(changes, "org.example:kept"); c != nil {
		t.Errorf("unchanged dependency emitted a record: %+v", c)
	}

	c := findChange(changes, "org.example:upgraded")
	if c == nil || c.Type != ChangeTypeChanged {
		t.Fatalf("upgraded: got %+v, expected changed record", c)
	}
	if c.Describe() != "changed from 1.0 to 2.0" {
		t.Errorf("Describe() = %q, expected %q", c.Describe(), "changed from 1.0 to 2.0")
	}

	c = findChange(changes, "org.example:added")
	if c == nil || c.Type != ChangeTypeAdded {
		t.Fatalf("added: got %+v, expected added record", c)
	}
	if c.Describe() != "added" {
		t.Errorf("Describe() = %q, expected %q", c.Describe(), "added")
	}

	c = findChange(changes, "org.example:dropped")
	if c == nil || c.Type != ChangeTypeRemoved {
		t.Fatalf("dropped: got %+v, expected removed record", c)
	}
	if c.Describe() != "removed" {
		t.Errorf("Describe() = %q, expected %q", c.Describe(), "removed")
	}

	c = findChange(changes, "org.example:pinned")
	if c == nil || c.Type != ChangeTypeChanged {
		t.Fatalf("pinned: got %+v, expected changed record", c)
	}
	if c.Describe() != "changed from none to 4.0" {
		t.Errorf("Describe() = %q, expected %q", c.Describe(), "changed from none to 4.0")
	}
}

func TestCompare_NilToNilIsUnchanged(t *testing.T) {
	before := Snapshot{"org.example:managed": nil}
	after := Snapshot{"org.example:managed": nil}

	if changes := Compare(before, after); len(changes) != 0 {
		t.Errorf("Compare() = %v, expected no changes", changes)
	}
}

func TestCompare_EmptySnapshots(t *testing.T) {
	tests := []struct {
		name     string
		before   Snapshot
		after    Snapshot
		expected ChangeType
		count    int
	}{
		{name: "Both empty", before: Snapshot{}, after: Snapshot{}, count: 0},
		{name: "All added", before: Snapshot{}, after: Snapshot{"a:b": strPtr("1")}, expected: ChangeTypeAdded, count: 1},
		{name: "All removed", before: Snapshot{"a:b": strPtr("1")}, after: Snapshot{}, expected: ChangeTypeRemoved, count: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changes := Compare(tt.before, tt.after)
			if len(changes) != tt.count {
				t.Fatalf("Compare() emitted %d changes, expected %d", len(changes), tt.count)
			}
			if tt.count > 0 && changes[0].Type != tt.expected {
				t.Errorf("change type = %v, expected %v", changes[0].Type, tt.expected)
			}
		})
	}
}

func TestChangeType_String(t *testing.T) {
	tests := []struct {
		kind     ChangeType
		expected string
	}{
		{ChangeTypeAdded, "added"},
		{ChangeTypeRemoved, "removed"},
		{ChangeTypeChanged, "changed"},
		{ChangeType(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("String() = %q, expected %q", got, tt.expected)
		}
	}
}
