// Package calendar exports conference entries as an iCalendar feed.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/khendrix/atltech/internal/catalog"
)

// GenerateICS renders conference entries as a single RFC 5545 VCALENDAR.
// Conferences are listed as all-day events on their (start) date; entries
// whose date is missing or unparsable are left out of the calendar rather
// than pinned to the 1900 sentinel.
func GenerateICS(entries []*catalog.Entry, now time.Time) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//atltech//atltech-cli//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	stamp := now.UTC().Format("20060102T150405Z")

	for _, entry := range entries {
		if !entry.HasParsedDate() {
			continue
		}
		date := catalog.ParseConferenceDate(entry.ConferenceDate)

		ics.WriteString("BEGIN:VEVENT\r\n")
		ics.WriteString(fmt.Sprintf("UID:%s@atltech\r\n", entry.ID))
		ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", stamp))
		ics.WriteString(fmt.Sprintf("DTSTART;VALUE=DATE:%s\r\n", date.Format("20060102")))
		ics.WriteString(fmt.Sprintf("DTEND;VALUE=DATE:%s\r\n", date.AddDate(0, 0, 1).Format("20060102")))
		ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(entry.Name)))

		description := entry.Description
		if entry.CFPDate != "" {
			description = fmt.Sprintf("%s\nCFP deadline: %s", description, entry.CFPDate)
		}
		ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(description)))

		if entry.Link != "" {
			ics.WriteString(fmt.Sprintf("URL:%s\r\n", entry.Link))
		}
		ics.WriteString("STATUS:CONFIRMED\r\n")
		ics.WriteString("TRANSP:TRANSPARENT\r\n")
		ics.WriteString("END:VEVENT\r\n")
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

// escapeICS escapes special characters according to RFC 5545.
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
