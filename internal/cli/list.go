package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khendrix/atltech/internal/catalog"
)

var (
	flagListCategory string
	flagListTag      string
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries from the last generated snapshot",
		RunE:  runList,
	}

	cmd.Flags().StringVar(&flagListCategory, "category", "", "Only this category (meetup, conference, online-resource, tech-hub)")
	cmd.Flags().StringVar(&flagListTag, "tag", "", "Only entries carrying this tag label (case-insensitive)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(flagFormat, FormatText, FormatJSON)
	if err != nil {
		return err
	}

	snap, err := loadSnapshot()
	if err != nil {
		return err
	}

	entries := snap.Catalog.Entries()
	if flagListCategory != "" {
		cat, err := catalog.ParseCategory(flagListCategory)
		if err != nil {
			return err
		}
		entries = snap.Catalog.Group(cat)
	}
	if flagListTag != "" {
		entries = filterByTag(entries, flagListTag)
	}

	if format == FormatJSON {
		return writeJSON(os.Stdout, entries)
	}
	return writeEntriesText(os.Stdout, entries, flagVerbose)
}

// filterByTag keeps entries carrying the given tag label, compared
// case-insensitively.
func filterByTag(entries []*catalog.Entry, tag string) []*catalog.Entry {
	filtered := make([]*catalog.Entry, 0, len(entries))
	for _, entry := range entries {
		for _, t := range entry.Tags {
			if strings.EqualFold(t, tag) {
				filtered = append(filtered, entry)
				break
			}
		}
	}
	return filtered
}
