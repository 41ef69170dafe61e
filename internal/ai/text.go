package ai

import (
	"regexp"
	"strings"
)

var fencedJSONRe = regexp.MustCompile("(?s)```json\n(.*?)\n```")

// ExtractJSONBlock pulls a JSON object out of a model response. It prefers a
// fenced ```json block; otherwise it falls back to the widest span between
// the first '{' and the last '}'. The boolean reports whether anything
// JSON-shaped was found.
func ExtractJSONBlock(s string) (string, bool) {
	if m := fencedJSONRe.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1]), true
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1], true
	}

	return "", false
}

// SplitList parses a comma-separated model response into trimmed, non-empty items
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}
