package ports

import (
	"context"
	"errors"
)

// ErrAssetWrite indicates that a generated asset could not be written
// to the backing store.
var ErrAssetWrite = errors.New("asset could not be stored")

// AssetStore persists generated binary assets, such as QR check-in
// images, and returns a stable relative path for later retrieval.
type AssetStore interface {
	// Save writes the asset under the given file name and returns the
	// relative path of the stored asset.
	Save(ctx context.Context, fileName string, data []byte) (string, error)
}
