// Package cli implements the command-line interface for atltech.
//
// The cli package provides the Cobra-based CLI with subcommands for
// regenerating the catalog from the sheet (generate), listing entries (list),
// ranking conferences (conferences), printing the tag vocabulary (tags), and
// scraping conference dates (enrich). It coordinates the sheet, catalog,
// storage, enrich, and notifier packages.
package cli
