package maven

import "fmt"

// ChangeType classifies a dependency's state transition between two
// snapshots of the same descriptor file.
type ChangeType int

const (
	ChangeTypeAdded ChangeType = iota
	ChangeTypeRemoved
	ChangeTypeChanged
)

// String returns a string representation of the change type.
func (t ChangeType) String() string {
	switch t {
	case ChangeTypeAdded:
		return "added"
	case ChangeTypeRemoved:
		return "removed"
	case ChangeTypeChanged:
		return "changed"
	default:
		return "unknown"
	}
}

// DependencyChange describes one dependency's transition between the
// before and after snapshots of a descriptor revision.
type DependencyChange struct {
	Key        string
	Type       ChangeType
	OldVersion *string // set for removed and changed
	NewVersion *string // set for added and changed
}

// Describe renders the change for report output, e.g. "added" or
// "changed from 1.0 to 2.0".
func (c DependencyChange) Describe() string {
	switch c.Type {
	case ChangeTypeChanged:
		return fmt.Sprintf("changed from %s to %s", FormatVersion(c.OldVersion), FormatVersion(c.NewVersion))
	default:
		return c.Type.String()
	}
}

// Compare classifies every key across the two snapshots. Keys present in
// both with equal versions emit nothing. Emission order follows map
// iteration and is not stable.
func Compare(before, after Snapshot) []DependencyChange {
	var changes []DependencyChange

	for key, newVersion := range after {
		oldVersion, existed := before[key]
		if !existed {
			changes = append(changes, DependencyChange{
				Key:        key,
				Type:       ChangeTypeAdded,
				NewVersion: newVersion,
			})
			continue
		}
		if !versionsEqual(oldVersion, newVersion) {
			changes = append(changes, DependencyChange{
				Key:        key,
				Type:       ChangeTypeChanged,
				OldVersion: oldVersion,
				NewVersion: newVersion,
			})
		}
	}

	for key, oldVersion := range before {
		if _, exists := after[key]; !exists {
			changes = append(changes, DependencyChange{
				Key:        key,
				Type:       ChangeTypeRemoved,
				OldVersion: oldVersion,
			})
		}
	}

	return changes
}
