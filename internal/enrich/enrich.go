// Package enrich fills in conference dates the sheet doesn't carry.
//
// The ingestion pipeline never populates ConferenceDate or CFPDate; those
// have historically been edited in by hand after generation. The enricher
// automates part of that editing step: it fetches each conference's own
// page and pulls the first thing that looks like a "Month D, YYYY" date out
// of the rendered text. It is strictly best-effort. A page that can't be
// fetched or doesn't mention a date leaves the entry untouched.
package enrich

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/khendrix/atltech/internal/catalog"
	"github.com/khendrix/atltech/internal/logger"
)

const (
	UserAgent = "atltech-cli/1.0 (github.com/khendrix/atltech)"
	Timeout   = 30 * time.Second
)

// monthDatePattern matches "March 12, 2025" and the range form
// "March 12-14, 2025" that conference sites favor.
var monthDatePattern = regexp.MustCompile(`(?i)(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2}(?:\s*-\s*\d{1,2})?,\s+\d{4}`)

// cfpPattern marks a line as being about a call for papers.
var cfpPattern = regexp.MustCompile(`(?i)\b(cfp|call for (papers|proposals|speakers))\b`)

// Enricher scrapes conference pages for date text.
type Enricher struct {
	client *http.Client
}

// New creates an Enricher with the default HTTP client.
func New() *Enricher {
	return &Enricher{
		client: &http.Client{
			Timeout: Timeout,
		},
	}
}

// EnrichConferences fills empty ConferenceDate (and, when a CFP line is
// found, CFPDate) on the given entries in place. Entries that already carry
// a date are never overwritten. Returns how many entries were updated;
// per-entry failures are logged as warnings and never abort the pass.
func (e *Enricher) EnrichConferences(entries []*catalog.Entry) int {
	updated := 0

	for _, entry := range entries {
		if entry.ConferenceDate != "" || entry.Link == "" {
			continue
		}

		confDate, cfpDate, err := e.scrapeDates(entry.Link)
		if err != nil {
			logger.Warn("could not enrich conference", logger.Fields{
				"id":    entry.ID,
				"name":  entry.Name,
				"link":  entry.Link,
				"error": err.Error(),
			})
			logger.IncrCounter("enrich.failures", 1)
			continue
		}

		if confDate == "" {
			logger.Debug("no date found on conference page", logger.Fields{
				"id":   entry.ID,
				"link": entry.Link,
			})
			continue
		}

		entry.ConferenceDate = confDate
		if cfpDate != "" {
			entry.CFPDate = cfpDate
		}
		updated++
		logger.IncrCounter("enrich.updated", 1)
	}

	return updated
}

// scrapeDates fetches a page and extracts the first conference date and, if
// present, a CFP deadline from its visible text.
func (e *Enricher) scrapeDates(url string) (confDate, cfpDate string, err error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("parsing HTML: %w", err)
	}

	return extractDates(doc.Find("body").Text()), extractCFPDate(doc.Find("body").Text()), nil
}

// extractDates returns the first month-day-year date in the text, or "".
func extractDates(text string) string {
	return monthDatePattern.FindString(text)
}

// extractCFPDate returns the first date found on a line that mentions a call
// for papers, or "".
func extractCFPDate(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if !cfpPattern.MatchString(line) {
			continue
		}
		if match := monthDatePattern.FindString(line); match != "" {
			return match
		}
	}
	return ""
}
