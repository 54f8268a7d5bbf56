package service

import (
	"context"
	"io"
)

// MediaStore persists uploaded assets and returns the public path under
// which the asset is served.
type MediaStore interface {
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
}
