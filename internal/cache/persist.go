package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Persister stores the serialized cache state across process restarts.
type Persister interface {
	// Load returns the previously saved state, or (nil, nil) when none exists.
	Load(ctx context.Context) ([]byte, error)
	// Save replaces the stored state wholesale.
	Save(ctx context.Context, data []byte) error
}

// FilePersister keeps the cache state as a single JSON document on disk.
type FilePersister struct {
	path string
}

// NewFilePersister creates a persister writing to the given path.
func NewFilePersister(path string) *FilePersister {
	return &FilePersister{path: path}
}

// Load reads the cache file. A missing file is not an error.
func (p *FilePersister) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cache file: %w", err)
	}
	return data, nil
}

// Save writes the cache file atomically (write to temp, then rename).
func (p *FilePersister) Save(_ context.Context, data []byte) error {
	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".cache-*")
	if err != nil {
		return fmt.Errorf("create temp cache file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close cache file: %w", err)
	}

	if err := os.Rename(tmp.Name(), p.path); err != nil {
		return fmt.Errorf("replace cache file: %w", err)
	}
	return nil
}
