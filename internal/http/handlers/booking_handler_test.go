// README: Handler authorization tests; auth checks run before any service call.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"drivehire/internal/http/handlers"
	httpmiddleware "drivehire/internal/http/middleware"
	"drivehire/internal/modules/auth"
	"drivehire/internal/modules/booking"
	"drivehire/internal/modules/profile"
	"drivehire/internal/types"
)

// stubTokenVerifier is a test double for middleware.TokenVerifier.
type stubTokenVerifier struct {
	claims *auth.Claims
	err    error
}

func (s *stubTokenVerifier) VerifyToken(_ context.Context, _ string) (*auth.Claims, error) {
	return s.claims, s.err
}

type stubDirectory struct{}

func (stubDirectory) Get(context.Context, types.ID) (*profile.Profile, error) {
	return &profile.Profile{Name: "Ravi"}, nil
}

// buildTestRouter wires a minimal gin engine with the auth middleware and the
// booking handlers. booking.NewService(nil, gate) is safe because the checks
// under test fire before any store access.
func buildTestRouter(verifier httpmiddleware.TokenVerifier, gate booking.DriverGate) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := booking.NewService(nil, gate)
	r := gin.New()
	authed := r.Group("/api", httpmiddleware.Auth(verifier))

	bh := handlers.NewBookingHandler(svc, nil)
	authed.POST("/bookings", bh.Create)

	dh := handlers.NewDriverHandler(svc, stubDirectory{})
	drivers := authed.Group("/driver", httpmiddleware.RequireRole("driver"))
	drivers.POST("/bookings/:id/claim", dh.Claim)
	return r
}

func makeVerifier(uid, role string) *stubTokenVerifier {
	return &stubTokenVerifier{claims: &auth.Claims{
		Role:             role,
		RegisteredClaims: jwt.RegisteredClaims{Subject: uid},
	}}
}

func doRequest(r *gin.Engine, method, path string, body interface{}, authHeader string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type allowGate struct{}

func (allowGate) DocumentsVerified(context.Context, types.ID) (bool, error) { return true, nil }

type denyGate struct{}

func (denyGate) DocumentsVerified(context.Context, types.ID) (bool, error) { return false, nil }

// TestCreate_Unauthenticated verifies that requests without a valid token are rejected.
func TestCreate_Unauthenticated(t *testing.T) {
	r := buildTestRouter(&stubTokenVerifier{err: errors.New("no token")}, allowGate{})
	w := doRequest(r, http.MethodPost, "/api/bookings", map[string]any{
		"service_type": "hourly",
	}, "Bearer badtoken")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

// TestCreate_InvalidBody verifies malformed field values map to 400.
func TestCreate_InvalidBody(t *testing.T) {
	r := buildTestRouter(makeVerifier("c1", "customer"), allowGate{})
	w := doRequest(r, http.MethodPost, "/api/bookings", map[string]any{
		"service_type": "yearly",
	}, "Bearer sometoken")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

// TestClaim_RequiresDriverRole checks that a customer cannot claim a booking.
func TestClaim_RequiresDriverRole(t *testing.T) {
	r := buildTestRouter(makeVerifier("c1", "customer"), allowGate{})
	w := doRequest(r, http.MethodPost, "/api/driver/bookings/b1/claim", nil, "Bearer sometoken")
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

// TestClaim_UnverifiedDriver checks the document gate maps to 403.
func TestClaim_UnverifiedDriver(t *testing.T) {
	r := buildTestRouter(makeVerifier("d1", "driver"), denyGate{})
	w := doRequest(r, http.MethodPost, "/api/driver/bookings/b1/claim", nil, "Bearer sometoken")
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}
