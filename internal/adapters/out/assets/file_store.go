package assets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"pickup/internal/core/ports"
	"pickup/internal/pkg/errs"
)

// FileAssetStore persists generated assets on the local filesystem under a
// single base directory. Save returns the path of the written file relative
// to that directory so callers can build URLs without knowing the layout.
type FileAssetStore struct {
	baseDir string
}

// NewFileAssetStore creates a store rooted at baseDir, creating the
// directory when it does not exist yet.
func NewFileAssetStore(baseDir string) (*FileAssetStore, error) {
	if baseDir == "" {
		return nil, errs.NewValueIsRequiredError("assets base directory")
	}

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrAssetWrite, err)
	}

	return &FileAssetStore{baseDir: baseDir}, nil
}

// Save writes data under fileName inside the base directory and returns the
// relative path. fileName must be a bare name; anything containing a path
// separator is rejected with ports.ErrAssetWrite.
func (s *FileAssetStore) Save(_ context.Context, fileName string, data []byte) (string, error) {
	if fileName == "" || fileName != filepath.Base(fileName) {
		return "", fmt.Errorf("%w: invalid file name %q", ports.ErrAssetWrite, fileName)
	}

	fullPath := filepath.Join(s.baseDir, fileName)
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: %w", ports.ErrAssetWrite, err)
	}

	return fileName, nil
}
