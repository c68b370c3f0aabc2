package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mernspace/catalog-service/internal/core/domain"
	"github.com/mernspace/catalog-service/internal/core/ports"
)

const toppingUploadFolder = "toppings"

// ToppingHandler handles HTTP requests for topping operations.
type ToppingHandler struct {
	service ports.ToppingService
	storage ports.FileStorage
}

func NewToppingHandler(service ports.ToppingService, storage ports.FileStorage) *ToppingHandler {
	return &ToppingHandler{service: service, storage: storage}
}

// --- Request / Response types ---

type createToppingRequest struct {
	Name  string  `json:"name"  validate:"required"`
	Image string  `json:"image" validate:"required"`
	Price float64 `json:"price" validate:"required,gt=0"`
	// TenantID is required for admins, ignored for managers.
	TenantID    string `json:"tenantId"`
	IsPublished bool   `json:"isPublished"`
}

type updateToppingRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=1"`
	Image       *string  `json:"image"       validate:"omitempty,min=1"`
	Price       *float64 `json:"price"       validate:"omitempty,gt=0"`
	TenantID    *string  `json:"tenantId"    validate:"omitempty,min=1"`
	IsPublished *bool    `json:"isPublished"`
}

type toppingResponse struct {
	Message string          `json:"message"`
	Topping *domain.Topping `json:"topping"`
}

type toppingListResponse struct {
	Message    string            `json:"message"`
	Toppings   []*domain.Topping `json:"toppings"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
}

// List handles GET /toppings.
func (h *ToppingHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), parseListFilter(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toppingListResponse{
		Message:    "Toppings fetched successfully",
		Toppings:   page.Data,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	})
}

// GetByID handles GET /toppings/:id.
func (h *ToppingHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	topping, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toppingResponse{
		Message: "Topping fetched successfully",
		Topping: topping,
	})
}

// Create handles POST /toppings.
func (h *ToppingHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createToppingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), identity, ports.CreateToppingInput{
		Name:        req.Name,
		Image:       req.Image,
		Price:       req.Price,
		TenantID:    req.TenantID,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toppingResponse{
		Message: "Topping created successfully",
		Topping: created,
	})
}

// Update handles PUT /toppings/:id.
func (h *ToppingHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateToppingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), identity, id, ports.ToppingPatch{
		Name:        req.Name,
		Image:       req.Image,
		Price:       req.Price,
		TenantID:    req.TenantID,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toppingResponse{
		Message: "Topping updated successfully",
		Topping: updated,
	})
}

// Delete handles DELETE /toppings/:id.
func (h *ToppingHandler) Delete(c echo.Context) error {
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

	return c.JSON(http.StatusOK, toppingResponse{
		Message: "Topping deleted successfully",
		Topping: deleted,
	})
}

// UploadImage handles POST /toppings/upload-image.
func (h *ToppingHandler) UploadImage(c echo.Context) error {
	return uploadImage(c, h.storage, toppingUploadFolder)
}
