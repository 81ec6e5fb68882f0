package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/khendrix/atltech/internal/calendar"
	"github.com/khendrix/atltech/internal/catalog"
)

func newConferencesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conferences",
		Short: "List conferences in display order",
		Long: `Lists conference entries the way the site displays them: upcoming
conferences first (soonest first), then past conferences (most recent
first). With --format ics, exports dated conferences as an iCalendar feed.`,
		RunE: runConferences,
	}

	return cmd
}

func runConferences(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(flagFormat, FormatText, FormatJSON, FormatICS)
	if err != nil {
		return err
	}

	snap, err := loadSnapshot()
	if err != nil {
		return err
	}

	now := time.Now()
	sorted := catalog.SortConferences(snap.Catalog.Conferences, now)

	switch format {
	case FormatJSON:
		return writeJSON(os.Stdout, sorted)
	case FormatICS:
		_, err := fmt.Fprint(os.Stdout, calendar.GenerateICS(sorted, now))
		return err
	}

	return writeConferencesText(os.Stdout, sorted, now)
}

// writeConferencesText prints ranked conferences, marking which are
// upcoming.
func writeConferencesText(w io.Writer, entries []*catalog.Entry, now time.Time) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No conferences found.")
		return nil
	}

	for _, entry := range entries {
		marker := "PAST"
		if entry.IsUpcoming(now) {
			marker = "UPCOMING"
		}
		date := entry.ConferenceDate
		if date == "" {
			date = "date TBD"
		}
		fmt.Fprintf(w, "%-9s %s (%s)\n", marker, entry.Name, date)
		if flagVerbose && entry.CFPDate != "" {
			fmt.Fprintf(w, "          CFP: %s\n", entry.CFPDate)
		}
	}
	fmt.Fprintf(w, "\nTotal: %d\n", len(entries))

	return nil
}
