package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Store persists the whole catalog as one JSON document, sorted by
// production title.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the current catalog. A missing file is an empty catalog,
// not an error.
func (s *Store) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	return entries, nil
}

// Save rewrites the catalog document. The document lands in a temporary
// file first and is renamed into place, so an interrupted run leaves the
// previous catalog untouched.
func (s *Store) Save(entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}

	coll := collate.New(language.English, collate.IgnoreCase)
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return coll.CompareString(a.ProductionTitle, b.ProductionTitle)
	})

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create catalog directory: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace catalog: %w", err)
	}

	return nil
}
