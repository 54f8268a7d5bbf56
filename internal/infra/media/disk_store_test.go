package media

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"boutique/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMediaConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.UploadsDir = filepath.Join(t.TempDir(), "uploads")
	return cfg
}

func TestDiskStore_SaveWritesContent(t *testing.T) {
	cfg := newMediaConfig(t)
	store, err := New(cfg)
	require.NoError(t, err)

	publicPath, err := store.Save(context.Background(), "logo.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(publicPath, "/uploads/"))
	assert.True(t, strings.HasSuffix(publicPath, "-logo.png"))

	stored := filepath.Join(cfg.Storage.UploadsDir, filepath.Base(publicPath))
	content, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))
}

func TestDiskStore_SanitizesWhitespace(t *testing.T) {
	cfg := newMediaConfig(t)
	store, err := New(cfg)
	require.NoError(t, err)

	publicPath, err := store.Save(context.Background(), "my summer  photo.jpg", strings.NewReader("x"))
	require.NoError(t, err)

	assert.NotContains(t, publicPath, " ")
	assert.True(t, strings.HasSuffix(publicPath, "-my-summer-photo.jpg"))
}

func TestDiskStore_StripsDirectoryComponents(t *testing.T) {
	cfg := newMediaConfig(t)
	store, err := New(cfg)
	require.NoError(t, err)

	publicPath, err := store.Save(context.Background(), "../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)

	assert.NotContains(t, publicPath, "..")
	assert.True(t, strings.HasSuffix(publicPath, "-passwd"))
}
