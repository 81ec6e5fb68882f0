package catalog

import (
	"crypto/sha1"
	"fmt"
	"sort"
	"strings"
)

// Category is the resource kind. Every entry belongs to exactly one.
type Category string

const (
	CategoryMeetup         Category = "meetup"
	CategoryConference     Category = "conference"
	CategoryOnlineResource Category = "online-resource"
	CategoryTechHub        Category = "tech-hub"
)

// Categories lists the four kinds in catalog order.
var Categories = []Category{
	CategoryMeetup,
	CategoryConference,
	CategoryOnlineResource,
	CategoryTechHub,
}

// ParseCategory maps a user-supplied string to a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryMeetup:
		return CategoryMeetup, nil
	case CategoryConference:
		return CategoryConference, nil
	case CategoryOnlineResource:
		return CategoryOnlineResource, nil
	case CategoryTechHub:
		return CategoryTechHub, nil
	}
	return "", fmt.Errorf("unknown category %q (want meetup, conference, online-resource or tech-hub)", s)
}

// Entry is one catalog record in the shape the site consumes. ConferenceDate
// and CFPDate are free-text strings filled in after generation (by the enrich
// step or by hand); the pipeline itself leaves them empty.
type Entry struct {
	ID             string   `json:"id"`
	Type           Category `json:"type"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Tags           []string `json:"tags"`
	Link           string   `json:"link"`
	Image          string   `json:"image"`
	ConferenceDate string   `json:"conferenceDate,omitempty"`
	CFPDate        string   `json:"cfpDate,omitempty"`
}

// StableKey returns an identifier for an entry that survives regeneration.
// Synthetic ids are reassigned whenever the sheet changes shape, so
// run-over-run comparison keys on the category plus the normalized name
// instead.
func (e *Entry) StableKey() string {
	h := sha1.New()
	h.Write([]byte(string(e.Type) + "|" + strings.ToLower(strings.TrimSpace(e.Name))))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Catalog is the full generated output: four disjoint per-category sequences.
type Catalog struct {
	Meetups         []*Entry `json:"meetups"`
	Conferences     []*Entry `json:"conferences"`
	OnlineResources []*Entry `json:"onlineResources"`
	TechHubs        []*Entry `json:"techHubs"`
}

// Group returns the sequence for one category.
func (c *Catalog) Group(cat Category) []*Entry {
	switch cat {
	case CategoryMeetup:
		return c.Meetups
	case CategoryConference:
		return c.Conferences
	case CategoryOnlineResource:
		return c.OnlineResources
	case CategoryTechHub:
		return c.TechHubs
	}
	return nil
}

// Entries returns all entries across the four categories, in catalog order.
func (c *Catalog) Entries() []*Entry {
	all := make([]*Entry, 0, c.Len())
	for _, cat := range Categories {
		all = append(all, c.Group(cat)...)
	}
	return all
}

// Len returns the total number of entries.
func (c *Catalog) Len() int {
	return len(c.Meetups) + len(c.Conferences) + len(c.OnlineResources) + len(c.TechHubs)
}

// TagVocabulary returns the distinct tag labels across all entries, sorted
// lexicographically. The site derives its filter widget from this list, so
// it must stay small; labels only ever come from the tag rule table plus the
// two fallback labels.
func (c *Catalog) TagVocabulary() []string {
	seen := make(map[string]bool)
	for _, entry := range c.Entries() {
		for _, tag := range entry.Tags {
			seen[tag] = true
		}
	}

	vocab := make([]string, 0, len(seen))
	for tag := range seen {
		vocab = append(vocab, tag)
	}
	sort.Strings(vocab)
	return vocab
}
