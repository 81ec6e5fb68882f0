// Package storage persists the generated catalog between runs.
//
// A single JSON snapshot lives in the data directory. It exists so the CLI
// can report which resources are newly listed since the last sync and so the
// listing commands work offline; the sheet remains the system of record and
// every generate run replaces the snapshot wholesale.
package storage
