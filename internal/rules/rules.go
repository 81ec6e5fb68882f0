// Package rules holds the keyword tables that drive classification and tag
// generation. The built-in defaults reproduce the heuristics the catalog has
// always shipped with; a YAML file can replace either table for
// experimentation without a rebuild.
//
// Order matters in both tables. Category rules are evaluated top-to-bottom
// with first-match-wins semantics, and tag rules contribute labels in table
// order, which decides which labels survive the per-entry truncation.
package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Valid category names, in catalog order.
const (
	CategoryMeetup         = "meetup"
	CategoryConference     = "conference"
	CategoryOnlineResource = "online-resource"
	CategoryTechHub        = "tech-hub"
)

// CategoryRule matches a listing into a category. Name keywords are checked
// against the lower-cased listing name, Notes keywords against the
// lower-cased notes. Matching is plain substring containment; "space" matches
// "spacecraft". That imprecision is a known property of the tables, not a
// parser bug, and the keyword sets were tuned around it.
type CategoryRule struct {
	Category string   `yaml:"category"`
	Name     []string `yaml:"name"`
	Notes    []string `yaml:"notes"`
}

// TagRule maps any of its keywords (searched in name+notes) to a display
// label.
type TagRule struct {
	Keywords []string `yaml:"keywords"`
	Label    string   `yaml:"label"`
}

// Set is a complete rule configuration: the category priority chain and the
// ordered tag table.
type Set struct {
	Categories []CategoryRule `yaml:"categories"`
	Tags       []TagRule      `yaml:"tags"`
}

// Defaults returns the built-in rule set.
func Defaults() *Set {
	return &Set{
		Categories: []CategoryRule{
			{
				Category: CategoryConference,
				Name:     []string{"conference", "summit", "expo"},
				Notes:    []string{"conference", "annual event"},
			},
			{
				Category: CategoryOnlineResource,
				Name:     []string{"online", "virtual", "course"},
				Notes:    []string{"online", "virtual", "course"},
			},
			{
				Category: CategoryTechHub,
				Name:     []string{"hub", "space", "center"},
				Notes:    []string{"coworking", "workspace", "incubator"},
			},
		},
		Tags: []TagRule{
			{Keywords: []string{"javascript", "js"}, Label: "JavaScript"},
			{Keywords: []string{"python"}, Label: "Python"},
			{Keywords: []string{"react"}, Label: "React"},
			{Keywords: []string{"node"}, Label: "Node.js"},
			{Keywords: []string{"data science", "data"}, Label: "Data Science"},
			{Keywords: []string{"ai", "artificial intelligence"}, Label: "AI"},
			{Keywords: []string{"machine learning", "ml"}, Label: "Machine Learning"},
			{Keywords: []string{"devops"}, Label: "DevOps"},
			{Keywords: []string{"cloud"}, Label: "Cloud"},
			{Keywords: []string{"mobile"}, Label: "Mobile"},
			{Keywords: []string{"frontend", "front-end"}, Label: "Frontend"},
			{Keywords: []string{"backend", "back-end"}, Label: "Backend"},
			{Keywords: []string{"fullstack", "full-stack"}, Label: "Full-Stack"},
			{Keywords: []string{"women", "diversity"}, Label: "Diversity"},
			{Keywords: []string{"startup"}, Label: "Startups"},
			{Keywords: []string{"entrepreneur"}, Label: "Entrepreneurship"},
			{Keywords: []string{"networking"}, Label: "Networking"},
			{Keywords: []string{"career"}, Label: "Career Development"},
			{Keywords: []string{"mentorship", "mentor"}, Label: "Mentorship"},
		},
	}
}

// Load reads a rule set from a YAML file. A table omitted from the file falls
// back to the built-in default for that table, so a file can override just
// the tags or just the category chain.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}

	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parsing rules file: %w", err)
	}

	defaults := Defaults()
	if len(set.Categories) == 0 {
		set.Categories = defaults.Categories
	}
	if len(set.Tags) == 0 {
		set.Tags = defaults.Tags
	}

	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules file %s: %w", path, err)
	}

	return &set, nil
}

// Validate checks that every category rule names one of the four known
// categories and that every tag rule has a label and at least one keyword.
func (s *Set) Validate() error {
	valid := map[string]bool{
		CategoryMeetup:         true,
		CategoryConference:     true,
		CategoryOnlineResource: true,
		CategoryTechHub:        true,
	}

	for i, rule := range s.Categories {
		if !valid[rule.Category] {
			return fmt.Errorf("category rule %d: unknown category %q", i, rule.Category)
		}
		if len(rule.Name) == 0 && len(rule.Notes) == 0 {
			return fmt.Errorf("category rule %d (%s): no keywords", i, rule.Category)
		}
	}

	for i, rule := range s.Tags {
		if rule.Label == "" {
			return fmt.Errorf("tag rule %d: empty label", i)
		}
		if len(rule.Keywords) == 0 {
			return fmt.Errorf("tag rule %d (%s): no keywords", i, rule.Label)
		}
	}

	return nil
}
