package impl

import (
	"context"
	"strings"
	"testing"

	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCompanyService(store *memStore) (usecase.CompanyUsecase, *fakeMediaStore) {
	media := &fakeMediaStore{}
	svc := NewCompanyService(CompanyServiceParams{
		Store:  store,
		Media:  media,
		Logger: newDiscardLogger(),
	})

	return svc, media
}

func TestCompanyService_Get(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestCompanyService(store)

	company, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Test Co.", company.Name)
	assert.Empty(t, company.LogoPath)
}

func TestCompanyService_Update(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestCompanyService(store)

	company, err := svc.Update(context.Background(), &usecase.UpdateCompanyInput{Name: "New Name"})
	require.NoError(t, err)
	assert.Equal(t, "New Name", company.Name)
	assert.Equal(t, "New Name", store.doc.Company.Name)
}

func TestCompanyService_Update_MissingName(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestCompanyService(store)

	company, err := svc.Update(context.Background(), &usecase.UpdateCompanyInput{})
	assert.Nil(t, company)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Zero(t, store.saves)
}

func TestCompanyService_SetLogo(t *testing.T) {
	store := newMemStore()
	store.doc.Company.LogoPath = "/uploads/old-logo.png"
	svc, media := newTestCompanyService(store)

	company, err := svc.SetLogo(context.Background(), &usecase.SetLogoInput{
		Filename: "new logo.png",
		Content:  strings.NewReader("png"),
	})
	require.NoError(t, err)

	// Prior reference replaced, not cleaned up.
	assert.Equal(t, "/uploads/new-logo.png", company.LogoPath)
	assert.Equal(t, company.LogoPath, store.doc.Company.LogoPath)
	assert.Len(t, media.saved, 1)
}

func TestCompanyService_SetLogo_MissingFile(t *testing.T) {
	store := newMemStore()
	svc, media := newTestCompanyService(store)

	company, err := svc.SetLogo(context.Background(), &usecase.SetLogoInput{})
	assert.Nil(t, company)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Empty(t, media.saved)
}
