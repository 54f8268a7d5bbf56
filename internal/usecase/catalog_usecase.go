package usecase

import (
	"context"
	"io"

	"boutique/internal/domain/entity"
)

// --- Category DTOs ---

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// UpdateCategoryInput is a partial update. Nil means the field was
// absent from the request and keeps its prior value. A non-nil empty
// Name also keeps the prior value; a non-nil empty Description clears
// the description.
type UpdateCategoryInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CategoryWithAvailability is a category annotated with its normalized
// availability map, as returned by the category listing.
type CategoryWithAvailability struct {
	entity.Category
	Availability entity.AvailabilityMap `json:"availability"`
}

// --- Product DTOs ---

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	Name        string   `json:"name" validate:"required"`
	CategoryID  string   `json:"categoryId" validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
}

// UpdateProductInput is a partial update with the same nil-vs-set
// semantics as UpdateCategoryInput. Price applies whenever a number is
// present in the request, including zero.
type UpdateProductInput struct {
	Name        *string  `json:"name"`
	CategoryID  *string  `json:"categoryId"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

// PhotoUpload carries one uploaded product photo.
type PhotoUpload struct {
	Filename string
	Content  io.Reader
}

// CatalogUsecase defines the CRUD operations over categories and
// products, including the referential rules between them.
type CatalogUsecase interface {
	ListCategories(ctx context.Context) ([]CategoryWithAvailability, error)
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id string, input *UpdateCategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ListProducts(ctx context.Context) ([]entity.Product, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id string, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	// AppendProductPhotos stores the uploads and appends their public
	// paths to the product's gallery in upload order.
	AppendProductPhotos(ctx context.Context, id string, photos []PhotoUpload) (*entity.Product, error)
}
