package sheet

import "strings"

// PlaceholderName is the instructional row the sheet maintainers keep at the
// bottom of the document. Rows carrying it are not real listings.
const PlaceholderName = "Add new suggestions below"

// Row is one raw listing from the sheet: a name, a link, and whatever
// free-text notes the maintainers typed into the third column.
type Row struct {
	Name  string
	Link  string
	Notes string
}

// ParseLine splits one raw CSV line into its field values. Commas inside
// double-quoted spans are literal; the quote characters themselves are elided
// from the output. Escaped quotes ("") are not handled. Never fails: a
// malformed line yields a best-effort split.
func ParseLine(line string) []string {
	values := make([]string, 0, 4)
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			values = append(values, current.String())
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}

	values = append(values, current.String())
	return values
}

// ParseRecords turns the full CSV text into listing rows. The first line is
// the header and is skipped; blank lines are skipped; a line must yield at
// least 3 fields to be accepted (extra fields are ignored). Rows with an
// empty name or the placeholder name are silently dropped. Sheet order is
// preserved.
func ParseRecords(text string) []Row {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 {
		return nil
	}

	rows := make([]Row, 0, len(lines))
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		values := ParseLine(line)
		if len(values) < 3 {
			continue
		}

		row := Row{
			Name:  cleanField(values[0]),
			Link:  cleanField(values[1]),
			Notes: cleanField(values[2]),
		}

		if row.Name == "" || row.Name == PlaceholderName {
			continue
		}

		rows = append(rows, row)
	}

	return rows
}

// cleanField trims surrounding whitespace and strips any quote characters
// the line parser left behind.
func cleanField(v string) string {
	return strings.ReplaceAll(strings.TrimSpace(v), "\"", "")
}
