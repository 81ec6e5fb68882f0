// Package catalog turns raw sheet rows into the typed, tagged resource
// catalog the directory site ships as static data.
//
// The pipeline is strictly one-directional: rows are classified into one of
// four categories, tagged from a fixed keyword vocabulary, and formatted into
// entries with synthetic ids. Regeneration replaces the whole catalog; there
// is no update-in-place. The conference ranking in rank.go is independent of
// the pipeline and is invoked at display time.
package catalog
