package enrich

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/khendrix/atltech/internal/catalog"
)

func TestExtractDates(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "Plain date",
			text: "Join us on March 12, 2025 in Atlanta.",
			want: "March 12, 2025",
		},
		{
			name: "Range date",
			text: "The conference runs June 11-13, 2025 at the convention center.",
			want: "June 11-13, 2025",
		},
		{
			name: "First of several dates wins",
			text: "Main event October 4, 2025. Workshops October 5, 2025.",
			want: "October 4, 2025",
		},
		{
			name: "Case insensitive month",
			text: "SAVE THE DATE: SEPTEMBER 9, 2025",
			want: "SEPTEMBER 9, 2025",
		},
		{
			name: "No date",
			text: "A conference about things. Dates coming soon.",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractDates(tt.text); got != tt.want {
				t.Errorf("extractDates(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractCFPDate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "CFP line with date",
			text: "Conference: June 11, 2025\nCFP closes May 1, 2025\nTickets on sale",
			want: "May 1, 2025",
		},
		{
			name: "Call for papers spelled out",
			text: "Our call for papers ends January 15, 2025.",
			want: "January 15, 2025",
		},
		{
			name: "CFP line without a date",
			text: "CFP is open!\nConference on June 11, 2025",
			want: "",
		},
		{
			name: "No CFP mention",
			text: "Conference on June 11, 2025",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractCFPDate(tt.text); got != tt.want {
				t.Errorf("extractCFPDate(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestEnrichConferences(t *testing.T) {
	page := `<html><body>
	<h1>RenderATL</h1>
	<p>June 11-13, 2025 at AmericasMart</p>
	<p>Call for Proposals closes February 28, 2025</p>
	</body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer server.Close()

	entries := []*catalog.Entry{
		{ID: "csv-100", Name: "RenderATL", Link: server.URL},
		{ID: "csv-101", Name: "Already Dated", Link: server.URL, ConferenceDate: "keep me"},
		{ID: "csv-102", Name: "No Link"},
	}

	updated := New().EnrichConferences(entries)

	if updated != 1 {
		t.Errorf("EnrichConferences() updated %d entries, want 1", updated)
	}
	if got := entries[0].ConferenceDate; got != "June 11-13, 2025" {
		t.Errorf("ConferenceDate = %q", got)
	}
	if got := entries[0].CFPDate; got != "February 28, 2025" {
		t.Errorf("CFPDate = %q", got)
	}

	// Existing dates are never overwritten.
	if got := entries[1].ConferenceDate; got != "keep me" {
		t.Errorf("existing ConferenceDate overwritten: %q", got)
	}
	// Entries without a link are skipped.
	if entries[2].ConferenceDate != "" {
		t.Error("entry without link was enriched")
	}
}

func TestEnrichConferences_FetchFailureIsNotFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	entries := []*catalog.Entry{
		{ID: "csv-100", Name: "Gone Conf", Link: server.URL},
	}

	if updated := New().EnrichConferences(entries); updated != 0 {
		t.Errorf("EnrichConferences() updated %d entries, want 0", updated)
	}
	if entries[0].ConferenceDate != "" {
		t.Error("failed fetch still set a date")
	}
}
