package trainer

import "strings"

// SplitFragments breaks challenge file contents into fragments. Fragments
// are paragraphs separated by one or more blank lines; surrounding
// whitespace is trimmed and empty paragraphs are dropped.
func SplitFragments(data []byte) []string {
	normalized := strings.ReplaceAll(string(data), "\r\n", "\n")

	var fragments []string

	for _, block := range strings.Split(normalized, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		fragments = append(fragments, block)
	}

	return fragments
}
