package catalog

import (
	"strings"

	"github.com/khendrix/atltech/internal/rules"
)

// maxTags caps how many labels a single entry carries.
const maxTags = 4

// fallbackTags is the tag pair for entries no keyword matches.
var fallbackTags = []string{"Tech Community", "Atlanta"}

// GenerateTags derives display labels for an entry from its name and notes.
// Every tag rule whose keyword appears in the lower-cased name+notes text
// contributes its label, in table order; the result is truncated to the
// first four. Table order is part of the contract since it decides which
// labels survive truncation. Zero matches yield the fallback pair, so the
// result is never empty.
func GenerateTags(name, notes string, set *rules.Set) []string {
	text := strings.ToLower(name + " " + notes)

	tags := make([]string, 0, maxTags)
	for _, rule := range set.Tags {
		if matchesAny(text, rule.Keywords) {
			tags = append(tags, rule.Label)
			if len(tags) == maxTags {
				return tags
			}
		}
	}

	if len(tags) == 0 {
		return append(tags, fallbackTags...)
	}

	return tags
}
