// Package persist implements the inventory demo's whole-file persistence:
// the complete entity set serialized as a JSON array and written to a single
// path, read back into a fresh store on load. There is no partial-write
// recovery; a failed write is the caller's problem to retry or treat as fatal.
package persist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/davidegreene/storelab/internal/domain"
	"github.com/davidegreene/storelab/internal/store"
)

// ErrResourceAccess is returned when the backing file cannot be read,
// written or parsed. Check the wrapped detail for the specific fault.
// An absent or empty file on load is NOT an error; it yields an empty set.
var ErrResourceAccess = errors.New("resource access failed")

// Save writes the full item set to path as a JSON array, ordered by id so
// repeated saves of the same set produce identical files.
func Save(path string, items []domain.Item) error {
	sorted := make([]domain.Item, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	data, err := json.MarshalIndent(sorted, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding inventory: %v", ErrResourceAccess, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrResourceAccess, path, err)
	}
	return nil
}

// Load reads the item set back from path. An absent or empty file yields an
// empty slice and no error. Malformed content fails the whole read; there is
// no partial result.
func Load(path string) ([]domain.Item, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrResourceAccess, path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var items []domain.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrResourceAccess, path, err)
	}
	return items, nil
}

// SaveStore snapshots the store and writes it to path.
func SaveStore(path string, s *store.KeyedStore[domain.Item]) error {
	return Save(path, s.GetAll())
}

// LoadStore reads path into a fresh store. Duplicate identifiers in the
// file surface as the store's own ErrDuplicate.
func LoadStore(path string) (*store.KeyedStore[domain.Item], error) {
	items, err := Load(path)
	if err != nil {
		return nil, err
	}
	s := store.New[domain.Item]("item")
	for _, item := range items {
		if err := s.Insert(item); err != nil {
			return nil, err
		}
	}
	return s, nil
}
