// Package media stores uploaded assets on the local filesystem.
package media

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"boutique/config"
	"boutique/internal/domain/service"

	"github.com/pkg/errors"
)

// publicPrefix is the URL path under which stored assets are served.
const publicPrefix = "/uploads"

var whitespace = regexp.MustCompile(`\s+`)

type diskStore struct {
	dir string
}

// New creates the uploads directory if needed and returns the store.
func New(cfg *config.Config) (service.MediaStore, error) {
	if err := os.MkdirAll(cfg.Storage.UploadsDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create uploads dir")
	}

	return &diskStore{dir: cfg.Storage.UploadsDir}, nil
}

// Save writes the content under a timestamped variant of the original
// filename and returns the public path. The timestamp prefix is a
// best-effort collision avoidance scheme, not a uniqueness guarantee.
func (s *diskStore) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	safeName := whitespace.ReplaceAllString(filepath.Base(filename), "-")
	stored := strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + safeName

	dst, err := os.Create(filepath.Join(s.dir, stored))
	if err != nil {
		return "", errors.Wrap(err, "create upload file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		os.Remove(dst.Name())
		return "", errors.Wrap(err, "write upload file")
	}

	return path.Join(publicPrefix, stored), nil
}
