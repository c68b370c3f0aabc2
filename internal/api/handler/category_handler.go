package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mernspace/catalog-service/internal/core/domain"
	"github.com/mernspace/catalog-service/internal/core/ports"
)

// CategoryHandler handles HTTP requests for category operations.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// --- Request / Response types ---

type categoryPriceOptionRequest struct {
	PriceType        string   `json:"priceType"        validate:"required,oneof=base additional"`
	AvailableOptions []string `json:"availableOptions" validate:"required,min=1"`
}

type categoryAttributeRequest struct {
	Name             string   `json:"name"             validate:"required"`
	WidgetType       string   `json:"widgetType"       validate:"required,oneof=switch radio"`
	DefaultValue     string   `json:"defaultValue"     validate:"required"`
	AvailableOptions []string `json:"availableOptions" validate:"required,min=1"`
}

type createCategoryRequest struct {
	Name               string                                `json:"name"               validate:"required"`
	PriceConfiguration map[string]categoryPriceOptionRequest `json:"priceConfiguration" validate:"required,dive"`
	Attributes         []categoryAttributeRequest            `json:"attributes"         validate:"required,dive"`
	// TenantID is required for admins, ignored for managers.
	TenantID string `json:"tenantId"`
}

type updateCategoryRequest struct {
	Name               *string                               `json:"name"               validate:"omitempty,min=1"`
	PriceConfiguration map[string]categoryPriceOptionRequest `json:"priceConfiguration" validate:"omitempty,dive"`
	Attributes         []categoryAttributeRequest            `json:"attributes"         validate:"omitempty,dive"`
	TenantID           *string                               `json:"tenantId"           validate:"omitempty,min=1"`
}

type categoryResponse struct {
	Message  string           `json:"message"`
	Category *domain.Category `json:"category"`
}

type categoryListResponse struct {
	Message    string             `json:"message"`
	Categories []*domain.Category `json:"categories"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"totalPages"`
}

func toCategoryPriceConfiguration(in map[string]categoryPriceOptionRequest) map[string]domain.CategoryPriceOption {
	if in == nil {
		return nil
	}
	out := make(map[string]domain.CategoryPriceOption, len(in))
	for name, opt := range in {
		out[name] = domain.CategoryPriceOption{
			PriceType:        domain.PriceType(opt.PriceType),
			AvailableOptions: opt.AvailableOptions,
		}
	}
	return out
}

func toCategoryAttributes(in []categoryAttributeRequest) []domain.CategoryAttribute {
	if in == nil {
		return nil
	}
	out := make([]domain.CategoryAttribute, 0, len(in))
	for _, a := range in {
		out = append(out, domain.CategoryAttribute{
			Name:             a.Name,
			WidgetType:       domain.WidgetType(a.WidgetType),
			DefaultValue:     a.DefaultValue,
			AvailableOptions: a.AvailableOptions,
		})
	}
	return out
}

// List handles GET /categories.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Param        q          query  string  false  "Partial, case-insensitive name match"
// @Param        tenantId   query  string  false  "Filter by tenant"
// @Param        page       query  int     false  "Page number (default 1)"
// @Param        limit      query  int     false  "Page size (default 10)"
// @Success      200  {object}  categoryListResponse
// @Router       /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), parseListFilter(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, categoryListResponse{
		Message:    "Categories fetched successfully",
		Categories: page.Data,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	})
}

// GetByID handles GET /categories/:id.
func (h *CategoryHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	category, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, categoryResponse{
		Message:  "Category fetched successfully",
		Category: category,
	})
}

// Create handles POST /categories.
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCategoryRequest  true  "Category details"
// @Success      201   {object}  categoryResponse
// @Router       /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), identity, ports.CreateCategoryInput{
		Name:               req.Name,
		PriceConfiguration: toCategoryPriceConfiguration(req.PriceConfiguration),
		Attributes:         toCategoryAttributes(req.Attributes),
		TenantID:           req.TenantID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, categoryResponse{
		Message:  "Category created successfully",
		Category: created,
	})
}

// Update handles PUT /categories/:id.
func (h *CategoryHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), identity, id, ports.CategoryPatch{
		Name:               req.Name,
		PriceConfiguration: toCategoryPriceConfiguration(req.PriceConfiguration),
		Attributes:         toCategoryAttributes(req.Attributes),
		TenantID:           req.TenantID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, categoryResponse{
		Message:  "Category updated successfully",
		Category: updated,
	})
}

// Delete handles DELETE /categories/:id.
func (h *CategoryHandler) Delete(c echo.Context) error {
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

	return c.JSON(http.StatusOK, categoryResponse{
		Message:  "Category deleted successfully",
		Category: deleted,
	})
}
