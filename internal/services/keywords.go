package services

import "strings"

// SplitKeywords splits a model reply on commas and newlines, trims every
// token, drops empty ones and keeps at most max of them.
func SplitKeywords(raw string, max int) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n'
	})

	keywords := make([]string, 0, len(fields))
	for _, f := range fields {
		if kw := strings.TrimSpace(f); kw != "" {
			keywords = append(keywords, kw)
		}
		if max > 0 && len(keywords) == max {
			break
		}
	}
	return keywords
}
