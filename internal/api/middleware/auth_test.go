package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mernspace/catalog-service/internal/core/domain"
	"github.com/mernspace/catalog-service/internal/infrastructure/auth"
)

const testKid = "test-key-1"

// newJWKSFixture generates an RSA key pair and a httptest server publishing
// the matching JWKS document.
func newJWKSFixture(t *testing.T) (*rsa.PrivateKey, *auth.JWKSProvider, func()) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	n := base64.RawURLEncoding.EncodeToString(key.N.Bytes())
	e := base64.RawURLEncoding.EncodeToString([]byte{0x01, 0x00, 0x01})
	doc := fmt.Sprintf(`{"keys":[{"kty":"RSA","kid":%q,"use":"sig","n":%q,"e":%q}]}`, testKid, n, e)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(doc))
	}))

	provider := auth.NewJWKSProvider(srv.URL, nil, zerolog.Nop())
	return key, provider, srv.Close
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = testKid
	signed, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuthMiddleware_ValidBearerToken(t *testing.T) {
	key, provider, closeSrv := newJWKSFixture(t)
	defer closeSrv()

	e := echo.New()
	signed := signToken(t, key, jwt.MapClaims{
		"sub":    "user-1",
		"role":   "manager",
		"tenant": "7",
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(provider)(func(c echo.Context) error {
		called = true
		identity, ok := c.Get(IdentityKey).(domain.Identity)
		if !ok {
			t.Fatalf("identity not set")
		}
		if identity.Subject != "user-1" {
			t.Errorf("subject: expected user-1, got %q", identity.Subject)
		}
		if identity.Role != domain.RoleManager {
			t.Errorf("role: expected manager, got %q", identity.Role)
		}
		if identity.TenantID != "7" {
			t.Errorf("tenant: expected 7, got %q", identity.TenantID)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_CookieFallback(t *testing.T) {
	key, provider, closeSrv := newJWKSFixture(t)
	defer closeSrv()

	e := echo.New()
	signed := signToken(t, key, jwt.MapClaims{
		"sub":  "user-2",
		"role": "admin",
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: signed})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(provider)(func(c echo.Context) error {
		called = true
		identity := c.Get(IdentityKey).(domain.Identity)
		if identity.Role != domain.RoleAdmin {
			t.Errorf("role: expected admin, got %q", identity.Role)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_NumericTenantClaim(t *testing.T) {
	key, provider, closeSrv := newJWKSFixture(t)
	defer closeSrv()

	e := echo.New()
	signed := signToken(t, key, jwt.MapClaims{
		"sub":    "user-3",
		"role":   "manager",
		"tenant": 42, // numeric upstream
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(provider)(func(c echo.Context) error {
		identity := c.Get(IdentityKey).(domain.Identity)
		if identity.TenantID != "42" {
			t.Errorf("numeric tenant must decode to %q, got %q", "42", identity.TenantID)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestAuthMiddleware_MissingCredential(t *testing.T) {
	_, provider, closeSrv := newJWKSFixture(t)
	defer closeSrv()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(provider)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	_, provider, closeSrv := newJWKSFixture(t)
	defer closeSrv()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(provider)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthMiddleware_WrongSigningKey(t *testing.T) {
	_, provider, closeSrv := newJWKSFixture(t)
	defer closeSrv()

	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	e := echo.New()
	signed := signToken(t, otherKey, jwt.MapClaims{"sub": "user-4", "role": "admin"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(provider)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err = handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong key, got %v", err)
	}
}

func TestAuthMiddleware_HS256Rejected(t *testing.T) {
	_, provider, closeSrv := newJWKSFixture(t)
	defer closeSrv()

	e := echo.New()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user-5", "role": "admin"})
	token.Header["kid"] = testKid
	signed, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(provider)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err = handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for HS256 token, got %v", err)
	}
}
