package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khendrix/atltech/internal/enrich"
	"github.com/khendrix/atltech/internal/logger"
)

func newEnrichCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enrich",
		Short: "Scrape conference pages for missing dates",
		Long: `Visits the linked page of every conference entry that has no date yet and
fills ConferenceDate (and CFPDate when found) from the page text. Updates
the snapshot in place; entries that already carry a date are untouched.`,
		RunE: runEnrich,
	}
}

func runEnrich(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshot()
	if err != nil {
		return err
	}

	enricher := enrich.New()
	updated := enricher.EnrichConferences(snap.Catalog.Conferences)

	if updated > 0 {
		store, err := openStorage()
		if err != nil {
			return err
		}
		if err := store.Save(snap.Catalog); err != nil {
			return fmt.Errorf("saving snapshot: %w", err)
		}
	}

	logger.Info("enrichment complete", logger.Fields{
		"conferences": len(snap.Catalog.Conferences),
		"updated":     updated,
	})
	fmt.Printf("Updated %d of %d conference entries.\n", updated, len(snap.Catalog.Conferences))

	if flagVerbose {
		logger.DumpCounters()
	}
	return nil
}
