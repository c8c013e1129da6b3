package maven

// Snapshot is the full set of dependency declarations extracted from one
// revision of a descriptor file. Keys are "groupId:artifactId". A nil
// version marks a declaration without a <version> element (inherited from
// a parent pom or managed by a BOM), which is distinct from the dependency
// being absent.
type Snapshot map[string]*string

// Key builds a dependency key from its two identifiers.
func Key(groupID, artifactID string) string {
	return groupID + ":" + artifactID
}

// versionsEqual compares two optional version strings.
func versionsEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// FormatVersion renders an optional version for human-readable output.
func FormatVersion(v *string) string {
	if v == nil {
		return "none"
	}
	return *v
}
