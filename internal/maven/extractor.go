package maven

import (
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Extractor produces a dependency Snapshot from descriptor file text.
// Empty or absent input yields an empty snapshot, never an error.
type Extractor interface {
	Extract(text string) (Snapshot, error)
}

// Compile-time interface conformance checks.
var (
	_ Extractor = (*XMLExtractor)(nil)
	_ Extractor = (*RegexExtractor)(nil)
)

// ParserStrategy selects an extraction strategy by name.
type ParserStrategy string

const (
	ParserXML   ParserStrategy = "xml"
	ParserRegex ParserStrategy = "regex"
)

// NewExtractor returns the extractor for the given strategy name.
func NewExtractor(strategy ParserStrategy) (Extractor, error) {
	switch strategy {
	case ParserXML, "":
		return &XMLExtractor{}, nil
	case ParserRegex:
		return &RegexExtractor{}, nil
	default:
		return nil, fmt.Errorf("unknown parser strategy %q (expected xml or regex)", strategy)
	}
}

// XMLExtractor extracts dependencies with a structural parse of the
// descriptor markup. It visits every <dependency> element regardless of
// depth, so dependencyManagement and plugin dependency blocks are
// included. Element names are matched by local name, which makes the
// parse tolerant of the default namespace most pom files declare.
// Unparseable markup is a fatal error.
type XMLExtractor struct{}

// pomDependency mirrors a single <dependency> element.
type pomDependency struct {
	GroupID    string  `xml:"groupId"`
	ArtifactID string  `xml:"artifactId"`
	Version    *string `xml:"version"`
}

// Extract parses the descriptor text and returns a snapshot of its
// declared dependencies. Entries missing a groupId or artifactId are
// skipped. Entries missing a version are kept with a nil version.
func (e *XMLExtractor) Extract(text string) (Snapshot, error) {
	snapshot := Snapshot{}
	if strings.TrimSpace(text) == "" {
		return snapshot, nil
	}

	decoder := xml.NewDecoder(strings.NewReader(text))

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse descriptor: %w", err)
		}

		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "dependency" {
			continue
		}

		var dep pomDependency
		if err := decoder.DecodeElement(&dep, &start); err != nil {
			return nil, fmt.Errorf("parse descriptor: %w", err)
		}

		groupID := strings.TrimSpace(dep.GroupID)
		artifactID := strings.TrimSpace(dep.ArtifactID)
		if groupID == "" || artifactID == "" {
			// Skip malformed dependencies
			continue
		}

		var version *string
		if dep.Version != nil {
			v := strings.TrimSpace(*dep.Version)
			version = &v
		}

		snapshot[Key(groupID, artifactID)] = version
	}

	return snapshot, nil
}

// RegexExtractor extracts dependencies with a pattern scan over the raw
// descriptor text. It degrades gracefully on malformed markup (fewer or
// no matches) instead of failing. On well-formed input it yields the same
// snapshot as XMLExtractor.
type RegexExtractor struct{}

var (
	dependencyBlockPattern = regexp.MustCompile(`(?s)<dependency>(.*?)</dependency>`)
	groupIDPattern         = regexp.MustCompile(`<groupId>([^<]+)</groupId>`)
	artifactIDPattern      = regexp.MustCompile(`<artifactId>([^<]+)</artifactId>`)
	versionPattern         = regexp.MustCompile(`<version>([^<]+)</version>`)
)

// Extract scans the descriptor text for <dependency> blocks.
func (e *RegexExtractor) Extract(text string) (Snapshot, error) {
	snapshot := Snapshot{}
	if strings.TrimSpace(text) == "" {
		return snapshot, nil
	}

	for _, match := range dependencyBlockPattern.FindAllStringSubmatch(text, -1) {
		block := match[1]

		group := groupIDPattern.FindStringSubmatch(block)
		artifact := artifactIDPattern.FindStringSubmatch(block)
		if group == nil || artifact == nil {
			continue
		}

		groupID := strings.TrimSpace(group[1])
		artifactID := strings.TrimSpace(artifact[1])
		if groupID == "" || artifactID == "" {
			continue
		}

		var version *string
		if v := versionPattern.FindStringSubmatch(block); v != nil {
			value := strings.TrimSpace(v[1])
			version = &value
		}

		snapshot[Key(groupID, artifactID)] = version
	}

	return snapshot, nil
}
