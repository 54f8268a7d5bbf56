package handler

import (
	"net/http"

	"boutique/internal/delivery/http/response"
	"boutique/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// maxPhotosPerRequest caps one photo upload request, mirroring the
// upload boundary limit.
const maxPhotosPerRequest = 5

// ProductHandler holds dependencies for product handlers.
type ProductHandler struct {
	uc usecase.CatalogUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List returns every product. Anonymous.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// Create adds a new product referencing an existing category.
func (h *ProductHandler) Create(c echo.Context) error {
	var input *usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Product name and category are required")
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created")
}

// Update partially updates a product.
func (h *ProductHandler) Update(c echo.Context) error {
	var input *usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid product input")
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated")
}

// Delete removes a single product.
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product removed"}, "Product removed")
}

// AppendPhotos appends up to five uploaded photos to the product gallery.
func (h *ProductHandler) AppendPhotos(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid multipart form")
	}

	fileHeaders := form.File["photos"]
	if len(fileHeaders) > maxPhotosPerRequest {
		return response.BadRequest(c, "VALIDATION_FAILED", "At most 5 photos can be uploaded per request")
	}

	photos := make([]usecase.PhotoUpload, 0, len(fileHeaders))
	for _, fileHeader := range fileHeaders {
		file, err := fileHeader.Open()
		if err != nil {
			return errors.Wrap(err, "failed to open uploaded photo")
		}
		defer file.Close()

		photos = append(photos, usecase.PhotoUpload{
			Filename: fileHeader.Filename,
			Content:  file,
		})
	}

	product, err := h.uc.AppendProductPhotos(c.Request().Context(), c.Param("id"), photos)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Photos added")
}
