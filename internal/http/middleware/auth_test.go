// README: Tests for bearer auth middleware and role enforcement.
package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"drivehire/internal/http/middleware"
	"drivehire/internal/modules/auth"
)

// stubVerifier is a test double for middleware.TokenVerifier.
type stubVerifier struct {
	claims *auth.Claims
	err    error
}

func (s *stubVerifier) VerifyToken(_ context.Context, _ string) (*auth.Claims, error) {
	return s.claims, s.err
}

func claimsFor(uid, role string) *auth.Claims {
	return &auth.Claims{
		Role:             role,
		RegisteredClaims: jwt.RegisteredClaims{Subject: uid},
	}
}

func newTestRouter(verifier middleware.TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Auth(verifier))
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"uid":  middleware.CallerUID(c),
			"role": middleware.CallerRole(c),
		})
	})
	r.GET("/driver-only", middleware.RequireRole("driver"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doGet(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_MissingHeader(t *testing.T) {
	r := newTestRouter(&stubVerifier{claims: claimsFor("u1", "customer")})
	if w := doGet(r, "/test", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuth_InvalidBearerPrefix(t *testing.T) {
	r := newTestRouter(&stubVerifier{claims: claimsFor("u1", "customer")})
	if w := doGet(r, "/test", "Token sometoken"); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuth_VerifierError(t *testing.T) {
	r := newTestRouter(&stubVerifier{err: errors.New("bad token")})
	if w := doGet(r, "/test", "Bearer invalidtoken"); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuth_ValidToken_UIDAndRolePopulated(t *testing.T) {
	r := newTestRouter(&stubVerifier{claims: claimsFor("driver123", "driver")})
	w := doGet(r, "/test", "Bearer validtoken")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "driver123") || !strings.Contains(body, "driver") {
		t.Errorf("expected uid and role in body, got %s", body)
	}
}

func TestRequireRole(t *testing.T) {
	r := newTestRouter(&stubVerifier{claims: claimsFor("u1", "customer")})
	if w := doGet(r, "/driver-only", "Bearer sometoken"); w.Code != http.StatusForbidden {
		t.Errorf("customer on driver route: expected 403, got %d", w.Code)
	}

	r2 := newTestRouter(&stubVerifier{claims: claimsFor("d1", "driver")})
	if w := doGet(r2, "/driver-only", "Bearer sometoken"); w.Code != http.StatusOK {
		t.Errorf("driver on driver route: expected 200, got %d", w.Code)
	}
}
