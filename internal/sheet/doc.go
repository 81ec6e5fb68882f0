// Package sheet fetches and parses the community spreadsheet that is the
// system of record for Atlanta tech resource listings.
//
// The sheet is a human-maintained Google Sheets document exported as CSV over
// HTTP. Rows are loosely structured (name, link, free-text notes); the parser
// is deliberately forgiving and never fails on a malformed line, it only
// drops rows that don't carry enough fields to be useful.
package sheet
