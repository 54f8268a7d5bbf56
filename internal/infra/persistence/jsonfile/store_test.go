package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"boutique/config"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.DataPath = filepath.Join(t.TempDir(), "data", "db.json")
	cfg.Company.DefaultName = "Test Co."
	return cfg
}

func TestStore_SeedsOnFirstStartup(t *testing.T) {
	cfg := newStoreConfig(t)

	s, err := New(cfg)
	require.NoError(t, err)

	doc, err := s.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "admin", doc.Admin.Username)
	assert.Empty(t, doc.Admin.PasswordHash)
	assert.Equal(t, "Test Co.", doc.Company.Name)
	assert.Empty(t, doc.Categories)
	assert.Empty(t, doc.Products)
	assert.Empty(t, doc.Availability)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	cfg := newStoreConfig(t)
	s, err := New(cfg)
	require.NoError(t, err)
	ctx := context.Background()

	doc, err := s.Load(ctx)
	require.NoError(t, err)

	doc.Categories = append(doc.Categories, entity.Category{ID: "cat-1", Name: "Silk", Description: "woven"})
	doc.Products = append(doc.Products, entity.Product{ID: "prod-1", Name: "Saree", CategoryID: "cat-1", Price: 120.5, Photos: []string{"/uploads/a.jpg"}})
	doc.EnsureAvailability("cat-1")
	doc.Availability["cat-1"][5] = false

	require.NoError(t, s.Save(ctx, doc))

	reloaded, err := s.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, doc.Categories, reloaded.Categories)
	assert.Equal(t, doc.Products, reloaded.Products)
	assert.False(t, reloaded.Availability["cat-1"][5])
	assert.True(t, reloaded.Availability["cat-1"][6])
}

func TestStore_CorruptFile(t *testing.T) {
	cfg := newStoreConfig(t)
	s, err := New(cfg)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(cfg.Storage.DataPath, []byte("{not json"), 0o644))

	_, err = s.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStorageCorrupt))
}

func TestStore_MissingTopLevelField(t *testing.T) {
	cfg := newStoreConfig(t)
	s, err := New(cfg)
	require.NoError(t, err)

	// Valid JSON, but no availability field.
	content := `{"admin":{"username":"admin","passwordHash":""},"company":{"name":"x","logoPath":""},"categories":[],"products":[]}`
	require.NoError(t, os.WriteFile(cfg.Storage.DataPath, []byte(content), 0o644))

	_, err = s.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStorageCorrupt))
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	cfg := newStoreConfig(t)
	s, err := New(cfg)
	require.NoError(t, err)
	ctx := context.Background()

	doc, err := s.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, doc))

	files, err := os.ReadDir(filepath.Dir(cfg.Storage.DataPath))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "db.json", files[0].Name())
}
