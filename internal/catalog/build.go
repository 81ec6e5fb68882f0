package catalog

import (
	"fmt"
	"net/url"

	"github.com/khendrix/atltech/internal/rules"
	"github.com/khendrix/atltech/internal/sheet"
)

// Per-category id offsets. Offsets keep synthetic ids unique across the
// whole catalog without any shared counter between groups.
const (
	offsetMeetup         = 0
	offsetConference     = 100
	offsetOnlineResource = 200
	offsetTechHub        = 300
)

// Build runs the full pipeline over parsed sheet rows: classify each row
// into its category, then format every group into catalog entries. No row
// that reaches this stage is filtered out.
func Build(rows []sheet.Row, set *rules.Set) *Catalog {
	var meetups, conferences, online, hubs []sheet.Row

	for _, row := range rows {
		switch Classify(row, set) {
		case CategoryConference:
			conferences = append(conferences, row)
		case CategoryOnlineResource:
			online = append(online, row)
		case CategoryTechHub:
			hubs = append(hubs, row)
		default:
			meetups = append(meetups, row)
		}
	}

	return &Catalog{
		Meetups:         formatGroup(meetups, CategoryMeetup, offsetMeetup, set),
		Conferences:     formatGroup(conferences, CategoryConference, offsetConference, set),
		OnlineResources: formatGroup(online, CategoryOnlineResource, offsetOnlineResource, set),
		TechHubs:        formatGroup(hubs, CategoryTechHub, offsetTechHub, set),
	}
}

// formatGroup turns one classified group into entries. Ids derive from the
// category offset plus the zero-based position within the group; they are
// stable within a run but reassigned wholesale when the sheet changes.
func formatGroup(group []sheet.Row, cat Category, offset int, set *rules.Set) []*Entry {
	entries := make([]*Entry, 0, len(group))
	for i, row := range group {
		entries = append(entries, &Entry{
			ID:          fmt.Sprintf("csv-%d", offset+i),
			Type:        cat,
			Name:        row.Name,
			Description: describe(row),
			Tags:        GenerateTags(row.Name, row.Notes, set),
			Link:        row.Link,
			Image:       placeholderImage(row.Name),
		})
	}
	return entries
}

// describe returns the row's notes, or a generated sentence when the
// maintainers left the notes column empty.
func describe(row sheet.Row) string {
	if row.Notes != "" {
		return row.Notes
	}
	return fmt.Sprintf("Join %s for networking and learning opportunities in Atlanta's tech community.", row.Name)
}

// placeholderImage builds the site's placeholder image reference for an
// entry.
func placeholderImage(name string) string {
	return "/placeholder.svg?height=200&width=300&query=" + url.QueryEscape(name+" logo")
}
