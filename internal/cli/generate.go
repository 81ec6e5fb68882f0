package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/khendrix/atltech/internal/catalog"
	"github.com/khendrix/atltech/internal/logger"
	"github.com/khendrix/atltech/internal/notifier"
	"github.com/khendrix/atltech/internal/sheet"
	"github.com/khendrix/atltech/internal/storage"
)

var (
	flagSheetURL string
	flagOutput   string
	flagAnnounce bool
	flagDryRun   bool
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Fetch the sheet and regenerate the catalog",
		Long: `Fetches the spreadsheet's CSV export, rebuilds the full catalog, saves it
as the new snapshot, and reports listings that weren't in the previous
snapshot. Exits with code 2 when new listings were found.`,
		RunE: runGenerate,
	}

	cmd.Flags().StringVar(&flagSheetURL, "sheet-url", sheet.DefaultSheetURL, "CSV export URL of the resource sheet")
	cmd.Flags().StringVar(&flagOutput, "output", "", "Also write the catalog JSON to this file")
	cmd.Flags().BoolVar(&flagAnnounce, "announce", false, "Announce new listings on Twitter")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "With --announce, print tweets instead of posting")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(flagFormat, FormatText, FormatJSON)
	if err != nil {
		return err
	}

	ruleSet, err := loadRules()
	if err != nil {
		return err
	}

	store, err := openStorage()
	if err != nil {
		return err
	}

	client := sheet.NewClient(flagSheetURL)
	logger.Debug("fetching sheet", logger.Fields{"url": client.URL()})

	// The fetch is all-or-nothing: on failure nothing is written and the
	// previous snapshot stays in place.
	rows, err := client.FetchRows()
	if err != nil {
		return fmt.Errorf("fetching sheet: %w", err)
	}
	logger.Debug("parsed sheet rows", logger.Fields{"rows": len(rows)})

	cat := catalog.Build(rows, ruleSet)
	for _, c := range catalog.Categories {
		logger.IncrCounter("catalog."+string(c), int64(len(cat.Group(c))))
	}

	previous, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}
	diff := catalog.Diff(previous.Catalog, cat)

	if err := store.Save(cat); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	if flagOutput != "" {
		if err := storage.WriteCatalogFile(flagOutput, cat); err != nil {
			return err
		}
		logger.Info("wrote catalog file", logger.Fields{"path": flagOutput})
	}

	result := &GenerateResult{
		GeneratedAt: time.Now().UTC(),
		Total:       cat.Len(),
		PerCategory: make(map[catalog.Category]int, len(catalog.Categories)),
		NewEntries:  diff.NewEntries,
		NewCount:    len(diff.NewEntries),
		ByCategory:  diff.ByCategory,
	}
	for _, c := range catalog.Categories {
		result.PerCategory[c] = len(cat.Group(c))
	}

	if format == FormatJSON {
		err = writeJSON(os.Stdout, result)
	} else {
		err = writeGenerateText(os.Stdout, result)
	}
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if flagAnnounce && len(diff.NewEntries) > 0 {
		if err := announce(diff.NewEntries); err != nil {
			// The snapshot is already saved; a failed announcement
			// should not look like a failed generation.
			logger.Error("announcing new listings", logger.Fields{"count": len(diff.NewEntries)}, err)
		}
	}

	if flagVerbose {
		logger.DumpCounters()
	}

	if len(diff.NewEntries) > 0 {
		os.Exit(ExitNewEntries)
	}
	return nil
}

// announce posts the new entries through the configured notifier.
func announce(entries []*catalog.Entry) error {
	var n notifier.Notifier
	if flagDryRun {
		n = notifier.NewDryRunNotifier(os.Stdout)
	} else {
		tw, err := notifier.NewTwitterNotifier()
		if err != nil {
			return err
		}
		n = tw
	}
	return n.Notify(entries)
}
