package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mernspace/catalog-service/internal/api/middleware"
	"github.com/mernspace/catalog-service/internal/core/domain"
	"github.com/mernspace/catalog-service/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub service
// ---------------------------------------------------------------------------

type stubCategoryService struct {
	created    *domain.Category
	lastInput  ports.CreateCategoryInput
	lastCaller domain.Identity
	err        error
	page       *ports.CategoryPage
}

func (s *stubCategoryService) Create(_ context.Context, caller domain.Identity, input ports.CreateCategoryInput) (*domain.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastCaller = caller
	s.lastInput = input
	return s.created, nil
}

func (s *stubCategoryService) Update(_ context.Context, _ domain.Identity, _ string, _ ports.CategoryPatch) (*domain.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func (s *stubCategoryService) GetByID(_ context.Context, _ string) (*domain.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func (s *stubCategoryService) Delete(_ context.Context, _ domain.Identity, _ string) (*domain.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func (s *stubCategoryService) List(_ context.Context, _ ports.ListFilter) (*ports.CategoryPage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.page, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

const validCategoryBody = `{
	"name": "Pizza",
	"priceConfiguration": {
		"size": {"priceType": "base", "availableOptions": ["small", "large"]}
	},
	"attributes": [
		{"name": "isHit", "widgetType": "switch", "defaultValue": "No", "availableOptions": ["Yes", "No"]}
	],
	"tenantId": "42"
}`

func categoryContext(t *testing.T, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, "/categories", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestCategoryHandler_Create_Success(t *testing.T) {
	svc := &stubCategoryService{created: &domain.Category{ID: "cat1", Name: "Pizza", TenantID: "42"}}
	h := NewCategoryHandler(svc)

	c, rec := categoryContext(t, http.MethodPost, validCategoryBody)
	c.Set(middleware.IdentityKey, domain.Identity{Subject: "a1", Role: domain.RoleAdmin})

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var body categoryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Category == nil || body.Category.ID != "cat1" {
		t.Errorf("expected created category in envelope, got %+v", body.Category)
	}

	if svc.lastInput.Name != "Pizza" || svc.lastInput.TenantID != "42" {
		t.Errorf("input not mapped: %+v", svc.lastInput)
	}
	if svc.lastCaller.Role != domain.RoleAdmin {
		t.Errorf("caller identity not passed through, got %+v", svc.lastCaller)
	}
	if opt, ok := svc.lastInput.PriceConfiguration["size"]; !ok || opt.PriceType != domain.PriceTypeBase {
		t.Errorf("price configuration not mapped: %+v", svc.lastInput.PriceConfiguration)
	}
}

func TestCategoryHandler_Create_MissingIdentity(t *testing.T) {
	h := NewCategoryHandler(&stubCategoryService{})

	c, _ := categoryContext(t, http.MethodPost, validCategoryBody)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %v", err)
	}
}

func TestCategoryHandler_Create_ValidationFailure(t *testing.T) {
	h := NewCategoryHandler(&stubCategoryService{})

	c, _ := categoryContext(t, http.MethodPost, `{"priceConfiguration": {}, "attributes": []}`)
	c.Set(middleware.IdentityKey, domain.Identity{Subject: "a1", Role: domain.RoleAdmin})

	err := h.Create(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	found := false
	for _, v := range ve.Violations {
		if v.Field == "name" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a violation for name, got %+v", ve.Violations)
	}
}

func TestCategoryHandler_Create_BadPriceType(t *testing.T) {
	h := NewCategoryHandler(&stubCategoryService{})

	body := strings.Replace(validCategoryBody, `"priceType": "base"`, `"priceType": "percent"`, 1)
	c, _ := categoryContext(t, http.MethodPost, body)
	c.Set(middleware.IdentityKey, domain.Identity{Subject: "a1", Role: domain.RoleAdmin})

	err := h.Create(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for bad priceType, got %v", err)
	}
}

func TestCategoryHandler_Create_ServiceErrorPropagates(t *testing.T) {
	h := NewCategoryHandler(&stubCategoryService{err: domain.ErrDuplicateName})

	c, _ := categoryContext(t, http.MethodPost, validCategoryBody)
	c.Set(middleware.IdentityKey, domain.Identity{Subject: "a1", Role: domain.RoleAdmin})

	if err := h.Create(c); !errors.Is(err, domain.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName passthrough, got %v", err)
	}
}

func TestCategoryHandler_List_Envelope(t *testing.T) {
	svc := &stubCategoryService{page: &ports.CategoryPage{
		Data:       []*domain.Category{{ID: "cat1", Name: "Pizza"}},
		Total:      5,
		Page:       1,
		Limit:      2,
		TotalPages: 3,
	}}
	h := NewCategoryHandler(svc)

	c, rec := categoryContext(t, http.MethodGet, "")

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body categoryListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Total != 5 || body.Page != 1 || body.Limit != 2 || body.TotalPages != 3 {
		t.Errorf("pagination envelope wrong: %+v", body)
	}
	if len(body.Categories) != 1 {
		t.Errorf("expected 1 category, got %d", len(body.Categories))
	}
}

func TestCategoryHandler_GetByID_InvalidID(t *testing.T) {
	h := NewCategoryHandler(&stubCategoryService{})

	c, _ := categoryContext(t, http.MethodGet, "")
	c.SetParamNames("id")
	c.SetParamValues("nope")

	err := h.GetByID(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %v", err)
	}
}
