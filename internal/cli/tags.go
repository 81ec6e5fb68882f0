package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "Print the catalog's tag vocabulary",
		Long: `Prints the distinct tag labels across all entries, sorted
lexicographically. This is the list the site's filter widget offers.`,
		RunE: runTags,
	}
}

func runTags(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(flagFormat, FormatText, FormatJSON)
	if err != nil {
		return err
	}

	snap, err := loadSnapshot()
	if err != nil {
		return err
	}

	vocab := snap.Catalog.TagVocabulary()
	if format == FormatJSON {
		return writeJSON(os.Stdout, vocab)
	}

	for _, tag := range vocab {
		fmt.Println(tag)
	}
	return nil
}
