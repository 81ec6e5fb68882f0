package catalog

import (
	"testing"

	"github.com/khendrix/atltech/internal/rules"
	"github.com/khendrix/atltech/internal/sheet"
)

func TestDiff_FirstRunReportsEverything(t *testing.T) {
	current := Build(testRows(), rules.Defaults())

	result := Diff(nil, current)

	if len(result.NewEntries) != current.Len() {
		t.Errorf("Diff(nil, current) reported %d new, want %d", len(result.NewEntries), current.Len())
	}
}

func TestDiff_UnchangedSheetReportsNothing(t *testing.T) {
	previous := Build(testRows(), rules.Defaults())
	current := Build(testRows(), rules.Defaults())

	result := Diff(previous, current)

	if len(result.NewEntries) != 0 {
		t.Errorf("Diff of identical catalogs reported %d new entries", len(result.NewEntries))
	}
}

func TestDiff_ReportsOnlyAddedRows(t *testing.T) {
	previous := Build(testRows(), rules.Defaults())

	rows := append(testRows(), sheet.Row{Name: "New AI Meetup", Link: "https://example.com/ai", Notes: "ai and ml talks"})
	current := Build(rows, rules.Defaults())

	result := Diff(previous, current)

	if len(result.NewEntries) != 1 {
		t.Fatalf("Diff reported %d new entries, want 1", len(result.NewEntries))
	}
	if result.NewEntries[0].Name != "New AI Meetup" {
		t.Errorf("new entry = %q", result.NewEntries[0].Name)
	}
	if len(result.ByCategory[CategoryMeetup]) != 1 {
		t.Errorf("ByCategory[meetup] = %d, want 1", len(result.ByCategory[CategoryMeetup]))
	}
}

// Ids are reassigned wholesale when the sheet changes shape; a row that
// merely shifted position must not look new.
func TestDiff_IgnoresIDReassignment(t *testing.T) {
	previous := Build(testRows(), rules.Defaults())

	// Insert a meetup at the front, shifting every other meetup's id.
	rows := append([]sheet.Row{{Name: "Zeroth Meetup", Link: "x"}}, testRows()...)
	current := Build(rows, rules.Defaults())

	result := Diff(previous, current)

	if len(result.NewEntries) != 1 {
		t.Fatalf("Diff reported %d new entries, want 1", len(result.NewEntries))
	}
	if result.NewEntries[0].Name != "Zeroth Meetup" {
		t.Errorf("new entry = %q, want the inserted row only", result.NewEntries[0].Name)
	}
}
