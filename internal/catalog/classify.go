package catalog

import (
	"strings"

	"github.com/khendrix/atltech/internal/rules"
	"github.com/khendrix/atltech/internal/sheet"
)

// Classify assigns a row to exactly one category by walking the rule chain
// top-to-bottom and taking the first match. Order is load-bearing: the
// conference rule runs before the online-resource rule so a "virtual
// conference" lands under conferences. Rows nothing matches default to
// meetup.
func Classify(row sheet.Row, set *rules.Set) Category {
	name := strings.ToLower(row.Name)
	notes := strings.ToLower(row.Notes)

	for _, rule := range set.Categories {
		if matchesAny(name, rule.Name) || matchesAny(notes, rule.Notes) {
			return Category(rule.Category)
		}
	}

	return CategoryMeetup
}

// matchesAny reports whether text contains any of the keywords. Substring
// containment only, no word boundaries.
func matchesAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
