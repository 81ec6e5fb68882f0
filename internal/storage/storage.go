package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/khendrix/atltech/internal/catalog"
)

// DefaultDataDir is where snapshots live unless overridden.
const DefaultDataDir = "~/.local/share/atltech"

const snapshotFile = "catalog.json"

// Snapshot wraps the catalog with the time it was generated.
type Snapshot struct {
	Catalog   *catalog.Catalog `json:"catalog"`
	UpdatedAt string           `json:"updated_at"` // RFC3339
}

// Storage reads and writes catalog snapshots in a data directory.
type Storage struct {
	dataDir string
}

// New creates a Storage rooted at dataDir, expanding a leading "~/" and
// creating the directory if needed.
func New(dataDir string) (*Storage, error) {
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{dataDir: dataDir}, nil
}

func (s *Storage) snapshotPath() string {
	return filepath.Join(s.dataDir, snapshotFile)
}

// Load reads the previous snapshot. A missing file is not an error: it
// returns an empty snapshot with a nil catalog, which diffing treats as
// "everything is new".
func (s *Storage) Load() (*Snapshot, error) {
	data, err := os.ReadFile(s.snapshotPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &Snapshot{}, nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	return &snap, nil
}

// Save replaces the snapshot with the given catalog, stamping the current
// time.
func (s *Storage) Save(c *catalog.Catalog) error {
	snap := &Snapshot{
		Catalog:   c,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := os.WriteFile(s.snapshotPath(), data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	return nil
}

// WriteCatalogFile writes just the catalog (no snapshot wrapper) to an
// arbitrary path, in the shape the site embeds as static data.
func WriteCatalogFile(path string, c *catalog.Catalog) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing catalog file: %w", err)
	}

	return nil
}
