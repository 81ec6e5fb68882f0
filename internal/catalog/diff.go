package catalog

// DiffResult holds the entries present in the current catalog that the
// previous one did not list.
type DiffResult struct {
	NewEntries []*Entry
	ByCategory map[Category][]*Entry
}

// Diff compares a freshly generated catalog against the previous run's
// snapshot and returns the newly listed entries. Comparison keys on
// Entry.StableKey rather than the synthetic id, since ids shift whenever the
// sheet gains or loses rows. A nil previous catalog (first run) reports
// everything as new.
func Diff(previous, current *Catalog) *DiffResult {
	known := make(map[string]bool)
	if previous != nil {
		for _, entry := range previous.Entries() {
			known[entry.StableKey()] = true
		}
	}

	result := &DiffResult{
		NewEntries: make([]*Entry, 0),
		ByCategory: make(map[Category][]*Entry),
	}

	for _, entry := range current.Entries() {
		if known[entry.StableKey()] {
			continue
		}
		result.NewEntries = append(result.NewEntries, entry)
		result.ByCategory[entry.Type] = append(result.ByCategory[entry.Type], entry)
	}

	return result
}
