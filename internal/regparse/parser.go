// Package regparse classifies reg.exe QUERY output. The output is an
// undocumented, loosely structured text table that varies across Windows
// versions, so parsing is deliberately tolerant: lines that match neither
// the value pattern nor the subkey pattern are skipped, never surfaced as
// malformed records.
package regparse

import (
	"regexp"
	"strings"

	"github.com/joshuapare/regkit/pkg/types"
)

var (
	valueLineRe  = regexp.MustCompile(valueLinePattern)
	subkeyLineRe = regexp.MustCompile(subkeyLinePattern)
)

// Item is one parsed value line, before key identity is attached.
type Item struct {
	Name string
	Type types.RegType
	Data string
}

// Lines splits decoded output into trimmed, non-empty lines.
func Lines(s string) []string {
	raw := strings.Split(strings.ReplaceAll(s, CRLF, LF), LF)
	lines := make([]string, 0, len(raw))
	for _, ln := range raw {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}
	return lines
}

// SkipHeader drops the leading header line of a value listing. The number
// of header lines reg.exe prints varies across Windows versions, but after
// blank-line removal the first non-empty line is always the echoed query
// path, so exactly one line is dropped.
func SkipHeader(lines []string) []string {
	if len(lines) == 0 {
		return lines
	}
	return lines[1:]
}

// LastLine selects the candidate line of a single-value query. Pre-Vista
// reg.exe prints a header before the result, current versions print the
// path line too; taking the last non-empty line is robust to both.
func LastLine(lines []string) (string, bool) {
	if len(lines) == 0 {
		return "", false
	}
	return lines[len(lines)-1], true
}

// ParseItem matches one value line. The name is trimmed, the data is kept
// verbatim from the first non-space character. Returns false for any line
// that is not a value line.
func ParseItem(line string) (Item, bool) {
	m := valueLineRe.FindStringSubmatch(line)
	if m == nil {
		return Item{}, false
	}
	return Item{
		Name: strings.TrimSpace(m[1]),
		Type: types.RegType(m[2]),
		Data: m[3],
	}, true
}

// Items parses a value listing, skipping anything unparseable.
func Items(lines []string) []Item {
	items := make([]Item, 0, len(lines))
	for _, ln := range lines {
		if it, ok := ParseItem(ln); ok {
			items = append(items, it)
		}
	}
	return items
}

// SubkeyPaths parses a subkey listing into key paths (the part after the
// hive name). reg.exe echoes the queried key itself in the listing; that
// line is filtered out so only strict children remain.
func SubkeyPaths(lines []string, selfKey string) []string {
	keys := make([]string, 0, len(lines))
	for _, ln := range lines {
		m := subkeyLineRe.FindStringSubmatch(ln)
		if m == nil {
			continue
		}
		if key := m[2]; key != selfKey {
			keys = append(keys, key)
		}
	}
	return keys
}
