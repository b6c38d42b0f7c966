// Package changelog parses the release notes embedded in the binary.
package changelog

import (
	_ "embed"
	"regexp"
	"strings"

	"golang.org/x/mod/semver"
)

//go:embed CHANGELOG.md
var Content string

// Entry is one release section
type Entry struct {
	Version string
	Date    string
	Changes []string
}

// versionRegex matches headers like "## v0.4.0 (2025-03-10)" or "## 0.4.0"
var versionRegex = regexp.MustCompile(`^##\s+v?(\d+\.\d+\.\d+)(?:\s+\(([^)]+)\))?`)

// Parse extracts entries from markdown, in file order. Bullets before the
// first version header are ignored.
func Parse(content string) []Entry {
	var entries []Entry
	var current *Entry

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		if matches := versionRegex.FindStringSubmatch(line); matches != nil {
			if current != nil {
				entries = append(entries, *current)
			}
			current = &Entry{
				Version: matches[1],
				Date:    matches[2],
				Changes: []string{},
			}
			continue
		}

		if current == nil {
			continue
		}
		if change, ok := strings.CutPrefix(line, "- "); ok {
			current.Changes = append(current.Changes, change)
		}
	}

	if current != nil {
		entries = append(entries, *current)
	}
	return entries
}

// Entries returns the embedded release notes, newest first.
func Entries() []Entry {
	return Parse(Content)
}

// Since returns the entries newer than lastSeen, keeping their order. An
// empty or malformed lastSeen (a "dev" build, for example) returns everything.
func Since(lastSeen string, entries []Entry) []Entry {
	if !semver.IsValid(canonical(lastSeen)) {
		return entries
	}

	var result []Entry
	for _, entry := range entries {
		if Compare(entry.Version, lastSeen) > 0 {
			result = append(result, entry)
		}
	}
	return result
}

// Compare orders two versions with or without the "v" prefix.
// Returns -1 if a < b, 0 if a == b, 1 if a > b. Invalid versions sort first.
func Compare(a, b string) int {
	return semver.Compare(canonical(a), canonical(b))
}

func canonical(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}
