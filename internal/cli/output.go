package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/khendrix/atltech/internal/catalog"
)

// OutputFormat specifies the output format.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatICS  OutputFormat = "ics"
)

// parseFormat validates --format against the formats a command accepts.
func parseFormat(s string, allowed ...OutputFormat) (OutputFormat, error) {
	format := OutputFormat(s)
	for _, a := range allowed {
		if format == a {
			return format, nil
		}
	}
	return "", fmt.Errorf("invalid format: %s", s)
}

// GenerateResult is what the generate command reports: the run summary and
// the entries not present in the previous snapshot.
type GenerateResult struct {
	GeneratedAt time.Time                             `json:"generated_at"`
	Total       int                                   `json:"total"`
	PerCategory map[catalog.Category]int              `json:"per_category"`
	NewEntries  []*catalog.Entry                      `json:"new_entries"`
	NewCount    int                                   `json:"new_count"`
	ByCategory  map[catalog.Category][]*catalog.Entry `json:"by_category,omitempty"`
}

// writeJSON outputs any result as indented JSON.
func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// writeGenerateText outputs a generate run summary as human-readable text.
func writeGenerateText(w io.Writer, result *GenerateResult) error {
	fmt.Fprintf(w, "Catalog generated: %d entries\n", result.Total)
	for _, cat := range catalog.Categories {
		fmt.Fprintf(w, "  %-16s %d\n", string(cat)+":", result.PerCategory[cat])
	}

	if result.NewCount == 0 {
		fmt.Fprintln(w, "\nNo new listings since last run.")
		return nil
	}

	fmt.Fprintf(w, "\n%d new listing(s):\n", result.NewCount)
	for _, cat := range catalog.Categories {
		entries := result.ByCategory[cat]
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s (%d new):\n", cat, len(entries))
		for _, entry := range entries {
			fmt.Fprintf(w, "  NEW: %s\n", entry.Name)
		}
	}

	return nil
}

// writeEntriesText outputs catalog entries as human-readable text.
func writeEntriesText(w io.Writer, entries []*catalog.Entry, verbose bool) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return nil
	}

	for _, entry := range entries {
		fmt.Fprintf(w, "%s [%s]\n", entry.Name, entry.Type)
		if verbose {
			fmt.Fprintf(w, "     ID: %s\n", entry.ID)
			fmt.Fprintf(w, "     Tags: %v\n", entry.Tags)
			if entry.Link != "" {
				fmt.Fprintf(w, "     Link: %s\n", entry.Link)
			}
			if entry.ConferenceDate != "" {
				fmt.Fprintf(w, "     Date: %s\n", entry.ConferenceDate)
			}
			if entry.CFPDate != "" {
				fmt.Fprintf(w, "     CFP: %s\n", entry.CFPDate)
			}
		}
	}
	fmt.Fprintf(w, "\nTotal: %d\n", len(entries))

	return nil
}
