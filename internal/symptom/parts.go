package symptom

import "strings"

const partSeparator = ","

// JoinParts encodes a set of part tokens as a comma-joined list.
func JoinParts(parts []string) string {
	return strings.Join(uniqueTokens(parts), partSeparator)
}

// SplitParts decodes a comma-joined list produced by JoinParts.
func SplitParts(joined string) []string {
	return uniqueTokens(strings.Split(joined, partSeparator))
}

// uniqueTokens trims tokens and removes blanks and duplicates, keeping the
// first occurrence.
func uniqueTokens(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	result := make([]string, 0, len(tokens))

	for _, t := range tokens {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, exists := seen[t]; exists {
			continue
		}
		seen[t] = struct{}{}
		result = append(result, t)
	}

	return result
}
