// Package snapshots persists the last good dataset to disk so a restarted
// server can serve stats before its first successful poll.
package snapshots

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"amongus-stats-service/internal/domain"
)

const datasetFile = "dataset.json"

// ErrNoSnapshot reports that no dataset has been persisted yet.
var ErrNoSnapshot = errors.New("no dataset snapshot on disk")

// FSStore reads and writes dataset snapshots under a base directory.
type FSStore struct {
	basePath string
}

// NewFSStore constructs a store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// WriteDataset atomically replaces the on-disk snapshot.
func (s *FSStore) WriteDataset(dataset domain.Dataset) error {
	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return fmt.Errorf("snapshot dir: %w", err)
	}

	data, err := json.Marshal(dataset)
	if err != nil {
		return fmt.Errorf("snapshot marshal: %w", err)
	}

	tmp := filepath.Join(s.basePath, datasetFile+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("snapshot write: %w", err)
	}
	if err := os.Rename(tmp, filepath.Join(s.basePath, datasetFile)); err != nil {
		return fmt.Errorf("snapshot rename: %w", err)
	}
	return nil
}

// LoadDataset reads the persisted snapshot, if any.
func (s *FSStore) LoadDataset() (domain.Dataset, error) {
	data, err := os.ReadFile(filepath.Join(s.basePath, datasetFile))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Dataset{}, ErrNoSnapshot
		}
		return domain.Dataset{}, fmt.Errorf("snapshot read: %w", err)
	}

	var dataset domain.Dataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		return domain.Dataset{}, fmt.Errorf("snapshot decode: %w", err)
	}
	return dataset, nil
}
