package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mernspace/catalog-service/internal/core/ports"
)

func listContext(t *testing.T, rawQuery string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products?"+rawQuery, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestParseListFilter_Defaults(t *testing.T) {
	f := parseListFilter(listContext(t, ""))

	if f.Page != ports.DefaultPage {
		t.Errorf("page: expected %d, got %d", ports.DefaultPage, f.Page)
	}
	if f.Limit != ports.DefaultLimit {
		t.Errorf("limit: expected %d, got %d", ports.DefaultLimit, f.Limit)
	}
	if f.IsPublished != nil {
		t.Error("absent isPublished must stay nil")
	}
}

func TestParseListFilter_AllParams(t *testing.T) {
	f := parseListFilter(listContext(t, "q=pizza&categoryId=abc&tenantId=42&isPublished=true&page=3&limit=25"))

	if f.Query != "pizza" {
		t.Errorf("query: expected pizza, got %q", f.Query)
	}
	if f.CategoryID != "abc" {
		t.Errorf("categoryId passed through as-is, got %q", f.CategoryID)
	}
	if f.TenantID != "42" {
		t.Errorf("tenantId: expected 42, got %q", f.TenantID)
	}
	if f.IsPublished == nil || !*f.IsPublished {
		t.Error("expected isPublished=true")
	}
	if f.Page != 3 || f.Limit != 25 {
		t.Errorf("expected page=3 limit=25, got page=%d limit=%d", f.Page, f.Limit)
	}
}

func TestParseListFilter_SilentFallbacks(t *testing.T) {
	cases := []struct {
		rawQuery  string
		wantPage  int
		wantLimit int
	}{
		{"page=abc&limit=xyz", ports.DefaultPage, ports.DefaultLimit},
		{"page=0&limit=0", ports.DefaultPage, ports.DefaultLimit},
		{"page=-5&limit=-1", ports.DefaultPage, ports.DefaultLimit},
		{"page=2", 2, ports.DefaultLimit},
	}
	for _, tc := range cases {
		f := parseListFilter(listContext(t, tc.rawQuery))
		if f.Page != tc.wantPage || f.Limit != tc.wantLimit {
			t.Errorf("%q: expected page=%d limit=%d, got page=%d limit=%d",
				tc.rawQuery, tc.wantPage, tc.wantLimit, f.Page, f.Limit)
		}
	}
}

func TestParseListFilter_InvalidIsPublishedDropped(t *testing.T) {
	f := parseListFilter(listContext(t, "isPublished=maybe"))
	if f.IsPublished != nil {
		t.Error("unparseable isPublished must be dropped, not defaulted")
	}
}

func TestParseListFilter_IsPublishedFalse(t *testing.T) {
	f := parseListFilter(listContext(t, "isPublished=false"))
	if f.IsPublished == nil || *f.IsPublished {
		t.Error("isPublished=false must be carried as a false pointer")
	}
}

func TestPathID_Valid(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("65f0c0ffee0000000000c0de")

	id, err := pathID(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "65f0c0ffee0000000000c0de" {
		t.Errorf("expected id passthrough, got %q", id)
	}
}

func TestPathID_Invalid(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("not-hex")

	_, err := pathID(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %v", err)
	}
}
