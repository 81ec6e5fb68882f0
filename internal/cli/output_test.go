package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/khendrix/atltech/internal/catalog"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		allowed []OutputFormat
		want    OutputFormat
		wantErr bool
	}{
		{"text", []OutputFormat{FormatText, FormatJSON}, FormatText, false},
		{"json", []OutputFormat{FormatText, FormatJSON}, FormatJSON, false},
		{"ics", []OutputFormat{FormatText, FormatJSON, FormatICS}, FormatICS, false},
		{"ics", []OutputFormat{FormatText, FormatJSON}, "", true},
		{"yaml", []OutputFormat{FormatText, FormatJSON}, "", true},
		{"", []OutputFormat{FormatText, FormatJSON}, "", true},
	}

	for _, tt := range tests {
		got, err := parseFormat(tt.in, tt.allowed...)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func sampleResult() *GenerateResult {
	newEntry := &catalog.Entry{
		ID:   "csv-1",
		Type: catalog.CategoryMeetup,
		Name: "New AI Meetup",
		Tags: []string{"AI"},
	}
	return &GenerateResult{
		GeneratedAt: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		Total:       5,
		PerCategory: map[catalog.Category]int{
			catalog.CategoryMeetup:         2,
			catalog.CategoryConference:     1,
			catalog.CategoryOnlineResource: 1,
			catalog.CategoryTechHub:        1,
		},
		NewEntries: []*catalog.Entry{newEntry},
		NewCount:   1,
		ByCategory: map[catalog.Category][]*catalog.Entry{
			catalog.CategoryMeetup: {newEntry},
		},
	}
}

func TestWriteGenerateText(t *testing.T) {
	var buf bytes.Buffer
	if err := writeGenerateText(&buf, sampleResult()); err != nil {
		t.Fatalf("writeGenerateText() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Catalog generated: 5 entries",
		"meetup:",
		"1 new listing(s):",
		"NEW: New AI Meetup",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteGenerateText_NoNewEntries(t *testing.T) {
	result := sampleResult()
	result.NewEntries = nil
	result.NewCount = 0
	result.ByCategory = nil

	var buf bytes.Buffer
	if err := writeGenerateText(&buf, result); err != nil {
		t.Fatalf("writeGenerateText() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No new listings since last run.") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestWriteJSON_GenerateResult(t *testing.T) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, sampleResult()); err != nil {
		t.Fatalf("writeJSON() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded["new_count"] != float64(1) {
		t.Errorf("new_count = %v", decoded["new_count"])
	}
	if decoded["total"] != float64(5) {
		t.Errorf("total = %v", decoded["total"])
	}
}

func TestWriteEntriesText(t *testing.T) {
	entries := []*catalog.Entry{
		{ID: "csv-0", Type: catalog.CategoryMeetup, Name: "Atlanta Gophers", Tags: []string{"Tech Community", "Atlanta"}},
		{ID: "csv-100", Type: catalog.CategoryConference, Name: "RenderATL", Tags: []string{"Networking"}},
	}

	var buf bytes.Buffer
	if err := writeEntriesText(&buf, entries, false); err != nil {
		t.Fatalf("writeEntriesText() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Atlanta Gophers [meetup]") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "Total: 2") {
		t.Errorf("output missing total: %q", out)
	}
	if strings.Contains(out, "ID: csv-0") {
		t.Error("non-verbose output should not include ids")
	}
}

func TestWriteEntriesText_Verbose(t *testing.T) {
	entries := []*catalog.Entry{
		{ID: "csv-100", Type: catalog.CategoryConference, Name: "RenderATL", Tags: []string{"Networking"}, Link: "https://example.com", ConferenceDate: "June 11, 2025"},
	}

	var buf bytes.Buffer
	if err := writeEntriesText(&buf, entries, true); err != nil {
		t.Fatalf("writeEntriesText() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"ID: csv-100", "Link: https://example.com", "Date: June 11, 2025"} {
		if !strings.Contains(out, want) {
			t.Errorf("verbose output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteEntriesText_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := writeEntriesText(&buf, nil, false); err != nil {
		t.Fatalf("writeEntriesText() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No entries found.") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestWriteConferencesText(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	entries := []*catalog.Entry{
		{Name: "Future Conf", ConferenceDate: "January 1, 2099"},
		{Name: "Past Conf", ConferenceDate: "June 15, 2021"},
		{Name: "Mystery Conf"},
	}

	var buf bytes.Buffer
	if err := writeConferencesText(&buf, entries, now); err != nil {
		t.Fatalf("writeConferencesText() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "UPCOMING  Future Conf (January 1, 2099)") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "PAST      Past Conf (June 15, 2021)") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "Mystery Conf (date TBD)") {
		t.Errorf("output = %q", out)
	}
}

func TestFilterByTag(t *testing.T) {
	entries := []*catalog.Entry{
		{Name: "a", Tags: []string{"AI", "Python"}},
		{Name: "b", Tags: []string{"Cloud"}},
		{Name: "c", Tags: []string{"ai"}},
	}

	got := filterByTag(entries, "AI")
	if len(got) != 2 {
		t.Fatalf("filterByTag() kept %d entries, want 2", len(got))
	}
	if got[0].Name != "a" || got[1].Name != "c" {
		t.Errorf("filterByTag() = %v", got)
	}
}
