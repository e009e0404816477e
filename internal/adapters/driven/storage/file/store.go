package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/cvmatch/internal/core/domain"
)

const (
	resumesFile = "resumes.json"
	jobsFile    = "jobs.json"
)

// DefaultDataDir resolves the data directory: the given one, or
// ~/.cvmatch/data when empty.
func DefaultDataDir(dataDir string) (string, error) {
	if dataDir != "" {
		return dataDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".cvmatch", "data"), nil
}

// readArray loads one JSON-array collection. A missing file is an empty
// collection; anything else that fails is a storage error.
func readArray[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrStorage, path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", domain.ErrStorage, path, err)
	}
	return items, nil
}

// writeArray rewrites one collection wholesale. The data directory is
// created lazily here, on first write.
func writeArray[T any](path string, items []T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("%w: creating data directory: %v", domain.ErrStorage, err)
	}

	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", domain.ErrStorage, path, err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("%w: writing %s: %v", domain.ErrStorage, path, err)
	}
	return nil
}
