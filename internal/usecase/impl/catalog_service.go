package impl

import (
	"context"
	"log/slog"

	deliverycontext "boutique/internal/delivery/context"
	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	"boutique/internal/domain/service"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Id prefixes namespace category and product ids apart from each other.
const (
	categoryIDPrefix = "cat-"
	productIDPrefix  = "prod-"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	store  repository.DocumentStore
	media  service.MediaStore
	logger *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Store  repository.DocumentStore
	Media  service.MediaStore
	Logger *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		store:  params.Store,
		media:  params.Media,
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCategories returns every category annotated with its availability
// map. Normalization runs first and is persisted when it healed gaps.
func (srv *catalogService) ListCategories(ctx context.Context) ([]usecase.CategoryWithAvailability, error) {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if doc.NormalizeAvailability() {
		if err := srv.store.Save(ctx, doc); err != nil {
			return nil, err
		}
	}

	annotated := make([]usecase.CategoryWithAvailability, 0, len(doc.Categories))
	for _, c := range doc.Categories {
		annotated = append(annotated, usecase.CategoryWithAvailability{
			Category:     c,
			Availability: doc.Availability[c.ID],
		})
	}

	return annotated, nil
}

func (srv *catalogService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	if input == nil || input.Name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "category name is required")
	}

	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	category := entity.Category{
		ID:          categoryIDPrefix + uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
	}
	doc.Categories = append(doc.Categories, category)
	doc.EnsureAvailability(category.ID)

	if err := srv.store.Save(ctx, doc); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Category created", slog.String("id", category.ID), slog.String("name", category.Name))

	return &category, nil
}

func (srv *catalogService) UpdateCategory(ctx context.Context, id string, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	category := doc.FindCategory(id)
	if category == nil {
		return nil, errors.WithStack(domainerrors.ErrCategoryNotFound)
	}

	if input != nil {
		// An empty name keeps the prior value; an explicitly supplied
		// description always replaces, even when empty.
		if input.Name != nil && *input.Name != "" {
			category.Name = *input.Name
		}
		if input.Description != nil {
			category.Description = *input.Description
		}
	}

	if err := srv.store.Save(ctx, doc); err != nil {
		return nil, err
	}

	updated := *category

	return &updated, nil
}

func (srv *catalogService) DeleteCategory(ctx context.Context, id string) error {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return err
	}

	if !doc.RemoveCategory(id) {
		return errors.WithStack(domainerrors.ErrCategoryNotFound)
	}

	if err := srv.store.Save(ctx, doc); err != nil {
		return err
	}

	srv.log(ctx).Info("Category removed", slog.String("id", id))

	return nil
}

func (srv *catalogService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	return doc.Products, nil
}

func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if input == nil || input.Name == "" || input.CategoryID == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "product name and category are required")
	}

	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if !doc.HasCategory(input.CategoryID) {
		return nil, errors.WithStack(domainerrors.ErrInvalidCategoryRef)
	}

	price := 0.0
	if input.Price != nil {
		price = *input.Price
	}

	product := entity.Product{
		ID:          productIDPrefix + uuid.NewString(),
		Name:        input.Name,
		CategoryID:  input.CategoryID,
		Description: input.Description,
		Price:       price,
		Photos:      []string{},
	}
	doc.Products = append(doc.Products, product)

	if err := srv.store.Save(ctx, doc); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product created", slog.String("id", product.ID), slog.String("categoryId", product.CategoryID))

	return &product, nil
}

func (srv *catalogService) UpdateProduct(ctx context.Context, id string, input *usecase.UpdateProductInput) (*entity.Product, error) {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	product := doc.FindProduct(id)
	if product == nil {
		return nil, errors.WithStack(domainerrors.ErrProductNotFound)
	}

	if input != nil {
		if input.CategoryID != nil && *input.CategoryID != "" {
			if !doc.HasCategory(*input.CategoryID) {
				return nil, errors.WithStack(domainerrors.ErrInvalidCategoryRef)
			}
			product.CategoryID = *input.CategoryID
		}
		if input.Name != nil && *input.Name != "" {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		// A numeric price always applies, zero included.
		if input.Price != nil {
			product.Price = *input.Price
		}
	}

	if err := srv.store.Save(ctx, doc); err != nil {
		return nil, err
	}

	updated := *product

	return &updated, nil
}

func (srv *catalogService) DeleteProduct(ctx context.Context, id string) error {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return err
	}

	if !doc.RemoveProduct(id) {
		return errors.WithStack(domainerrors.ErrProductNotFound)
	}

	if err := srv.store.Save(ctx, doc); err != nil {
		return err
	}

	srv.log(ctx).Info("Product removed", slog.String("id", id))

	return nil
}

func (srv *catalogService) AppendProductPhotos(ctx context.Context, id string, photos []usecase.PhotoUpload) (*entity.Product, error) {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	product := doc.FindProduct(id)
	if product == nil {
		return nil, errors.WithStack(domainerrors.ErrProductNotFound)
	}

	for _, photo := range photos {
		path, err := srv.media.Save(ctx, photo.Filename, photo.Content)
		if err != nil {
			return nil, errors.Wrap(err, "failed to store photo")
		}
		product.Photos = append(product.Photos, path)
	}

	if err := srv.store.Save(ctx, doc); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product photos appended",
		slog.String("id", id), slog.Int("count", len(photos)), slog.Int("total", len(product.Photos)))

	updated := *product

	return &updated, nil
}
