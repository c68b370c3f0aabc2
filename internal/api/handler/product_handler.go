package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mernspace/catalog-service/internal/core/domain"
	"github.com/mernspace/catalog-service/internal/core/ports"
)

const productUploadFolder = "products"

// ProductHandler handles HTTP requests for product operations.
type ProductHandler struct {
	service ports.ProductService
	storage ports.FileStorage
}

func NewProductHandler(service ports.ProductService, storage ports.FileStorage) *ProductHandler {
	return &ProductHandler{service: service, storage: storage}
}

// --- Request / Response types ---

type productPriceOptionRequest struct {
	PriceType        string             `json:"priceType"        validate:"required,oneof=base additional"`
	AvailableOptions map[string]float64 `json:"availableOptions" validate:"required"`
}

type productAttributeRequest struct {
	Name  string `json:"name"  validate:"required"`
	Value string `json:"value" validate:"required"`
}

type createProductRequest struct {
	Name               string                               `json:"name"               validate:"required"`
	Description        string                               `json:"description"        validate:"required"`
	Image              string                               `json:"image"              validate:"required"`
	CategoryID         string                               `json:"categoryId"         validate:"required,len=24,hexadecimal"`
	PriceConfiguration map[string]productPriceOptionRequest `json:"priceConfiguration" validate:"required,dive"`
	Attributes         []productAttributeRequest            `json:"attributes"         validate:"required,dive"`
	// TenantID is required for admins, ignored for managers.
	TenantID    string `json:"tenantId"`
	IsPublished bool   `json:"isPublished"`
}

type updateProductRequest struct {
	Name               *string                              `json:"name"               validate:"omitempty,min=1"`
	Description        *string                              `json:"description"        validate:"omitempty,min=1"`
	Image              *string                              `json:"image"              validate:"omitempty,min=1"`
	CategoryID         *string                              `json:"categoryId"         validate:"omitempty,len=24,hexadecimal"`
	PriceConfiguration map[string]productPriceOptionRequest `json:"priceConfiguration" validate:"omitempty,dive"`
	Attributes         []productAttributeRequest            `json:"attributes"         validate:"omitempty,dive"`
	TenantID           *string                              `json:"tenantId"           validate:"omitempty,min=1"`
	IsPublished        *bool                                `json:"isPublished"`
}

type productResponse struct {
	Message string          `json:"message"`
	Product *domain.Product `json:"product"`
}

type productListResponse struct {
	Message    string            `json:"message"`
	Products   []*domain.Product `json:"products"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
}

func toProductPriceConfiguration(in map[string]productPriceOptionRequest) map[string]domain.ProductPriceOption {
	if in == nil {
		return nil
	}
	out := make(map[string]domain.ProductPriceOption, len(in))
	for name, opt := range in {
		out[name] = domain.ProductPriceOption{
			PriceType:        domain.PriceType(opt.PriceType),
			AvailableOptions: opt.AvailableOptions,
		}
	}
	return out
}

func toProductAttributes(in []productAttributeRequest) []domain.ProductAttribute {
	if in == nil {
		return nil
	}
	out := make([]domain.ProductAttribute, 0, len(in))
	for _, a := range in {
		out = append(out, domain.ProductAttribute{Name: a.Name, Value: a.Value})
	}
	return out
}

// List handles GET /products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        q            query  string  false  "Partial, case-insensitive name match"
// @Param        categoryId   query  string  false  "Filter by category"
// @Param        tenantId     query  string  false  "Filter by tenant"
// @Param        isPublished  query  bool    false  "Filter by publish state"
// @Param        page         query  int     false  "Page number (default 1)"
// @Param        limit        query  int     false  "Page size (default 10)"
// @Success      200  {object}  productListResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), parseListFilter(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productListResponse{
		Message:    "Products fetched successfully",
		Products:   page.Data,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	})
}

// GetByID handles GET /products/:id.
func (h *ProductHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	product, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productResponse{
		Message: "Product fetched successfully",
		Product: product,
	})
}

// Create handles POST /products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  productResponse
// @Failure      409   {object}  map[string]string
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), identity, ports.CreateProductInput{
		Name:               req.Name,
		Description:        req.Description,
		Image:              req.Image,
		CategoryID:         req.CategoryID,
		PriceConfiguration: toProductPriceConfiguration(req.PriceConfiguration),
		Attributes:         toProductAttributes(req.Attributes),
		TenantID:           req.TenantID,
		IsPublished:        req.IsPublished,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, productResponse{
		Message: "Product created successfully",
		Product: created,
	})
}

// Update handles PUT /products/:id.
func (h *ProductHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), identity, id, ports.ProductPatch{
		Name:               req.Name,
		Description:        req.Description,
		Image:              req.Image,
		CategoryID:         req.CategoryID,
		PriceConfiguration: toProductPriceConfiguration(req.PriceConfiguration),
		Attributes:         toProductAttributes(req.Attributes),
		TenantID:           req.TenantID,
		IsPublished:        req.IsPublished,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productResponse{
		Message: "Product updated successfully",
		Product: updated,
	})
}

// Delete handles DELETE /products/:id.
func (h *ProductHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	deleted, err := h.service.Delete(c.Request().Context(), identity, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productResponse{
		Message: "Product deleted successfully",
		Product: deleted,
	})
}

// UploadImage handles POST /products/upload-image.
//
// @Summary      Upload a product image
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image  formData  file  true  "Image file (max 5MB)"
// @Success      201    {object}  uploadResponse
// @Failure      413    {object}  map[string]string
// @Router       /products/upload-image [post]
func (h *ProductHandler) UploadImage(c echo.Context) error {
	return uploadImage(c, h.storage, productUploadFolder)
}
