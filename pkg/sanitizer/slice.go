package sanitizer

import (
	"regexp"
	"strings"
)

var reTagChars = regexp.MustCompile(`[^0-9\p{L}]+`)

// NormalizeEquipmentTags lowercases tags, strips special characters and
// removes duplicates and empties while preserving first-seen order.
func NormalizeEquipmentTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(tags))
	result := make([]string, 0, len(tags))

	for _, tag := range tags {
		normalized := reTagChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(tag)), "")
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
