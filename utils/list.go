package utils

import "strings"

// ParseList decodes a line like ["addSong('A')", "undo()"] into its quoted
// elements. Elements are split on commas, so names containing a comma are
// not representable.
func ParseList(line string) []string {
	body := strings.TrimSpace(line)
	body = strings.TrimPrefix(body, "[")
	body = strings.TrimSuffix(body, "]")
	if strings.TrimSpace(body) == "" {
		return []string{}
	}

	parts := strings.Split(body, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		items = append(items, unquote(part))
	}
	return items
}

// unquote returns the text between the first and last double quote
func unquote(s string) string {
	first := strings.IndexByte(s, '"')
	last := strings.LastIndexByte(s, '"')
	if first < 0 || first == last {
		return strings.TrimSpace(s)
	}
	return s[first+1 : last]
}

// FormatList renders names as ["A", "B"], or [] when empty
func FormatList(names []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, name := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('"')
		b.WriteString(name)
		b.WriteByte('"')
	}
	b.WriteByte(']')
	return b.String()
}
