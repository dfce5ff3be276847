package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"drivehire/internal/http/handlers"
)

func tariffRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewTariffHandler()
	r.GET("/api/tariffs", h.List)
	r.GET("/api/tariffs/night-surcharge", h.NightSurcharge)
	r.GET("/api/tariffs/:vehicleType", h.Get)
	return r
}

func getJSON(t *testing.T, r *gin.Engine, path string, out any) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if out != nil && w.Code == http.StatusOK {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
	return w.Code
}

func TestTariffList(t *testing.T) {
	r := tariffRouter()
	var resp struct {
		Tariffs []struct {
			VehicleType string `json:"vehicle_type"`
		} `json:"tariffs"`
	}
	if code := getJSON(t, r, "/api/tariffs", &resp); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(resp.Tariffs) != 17 {
		t.Fatalf("expected 17 tariffs, got %d", len(resp.Tariffs))
	}
}

func TestTariffGet(t *testing.T) {
	r := tariffRouter()
	var resp struct {
		DisplayName string `json:"display_name"`
	}
	if code := getJSON(t, r, "/api/tariffs/innova", &resp); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if resp.DisplayName != "Innova" {
		t.Fatalf("display name = %q", resp.DisplayName)
	}

	if code := getJSON(t, r, "/api/tariffs/hovercraft", nil); code != http.StatusNotFound {
		t.Fatalf("unknown type: expected 404, got %d", code)
	}
}

func TestTariffNightSurcharge(t *testing.T) {
	r := tariffRouter()
	var resp struct {
		Amount    int64  `json:"amount"`
		Formatted string `json:"formatted"`
	}
	if code := getJSON(t, r, "/api/tariffs/night-surcharge?time=03:15", &resp); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if resp.Amount != 100 || resp.Formatted != "₹100" {
		t.Fatalf("unexpected surcharge: %+v", resp)
	}

	// No time quotes zero.
	if code := getJSON(t, r, "/api/tariffs/night-surcharge", &resp); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if resp.Amount != 0 {
		t.Fatalf("expected zero surcharge, got %d", resp.Amount)
	}
}
