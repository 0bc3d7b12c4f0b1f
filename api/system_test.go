package api_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fieldsolutions/backend/api"
	"github.com/fieldsolutions/backend/internal/config"
	"github.com/fieldsolutions/backend/internal/db"
)

func TestSystemHandlers(t *testing.T) {
	d, err := db.New(context.Background(), "file:apitest_system?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer d.Close()

	cfg := &config.Config{AppName: "Field Solutions Backend"}
	h := api.NewSystemHandler(cfg, d)

	// HealthHandler
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.HealthHandler(w, req)
	res := w.Result()
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("health: expected 200 got %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Fatalf("health: expected json content-type, got %q", ct)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"status":"healthy"`) || !strings.Contains(string(b), `"app_name":"Field Solutions Backend"`) {
		t.Fatalf("health: unexpected body %s", string(b))
	}

	// ReadinessHandler with a live store
	req2 := httptest.NewRequest(http.MethodGet, "/readiness", nil)
	w2 := httptest.NewRecorder()
	h.ReadinessHandler(w2, req2)
	res2 := w2.Result()
	defer res2.Body.Close()
	if res2.StatusCode != http.StatusOK {
		t.Fatalf("readiness: expected 200 got %d", res2.StatusCode)
	}
	b2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b2), `"status":"ready"`) || !strings.Contains(string(b2), `"database":"connected"`) {
		t.Fatalf("readiness: unexpected body %s", string(b2))
	}

	// VersionHandler
	vh := h.VersionHandler("1.2.3", "2026-08-29T00:00:00Z")
	req3 := httptest.NewRequest(http.MethodGet, "/version", nil)
	w3 := httptest.NewRecorder()
	vh(w3, req3)
	res3 := w3.Result()
	defer res3.Body.Close()
	if res3.StatusCode != http.StatusOK {
		t.Fatalf("version: expected 200 got %d", res3.StatusCode)
	}
	b3, _ := io.ReadAll(res3.Body)
	if !strings.Contains(string(b3), `"version":"1.2.3"`) || !strings.Contains(string(b3), `"buildTime":"2026-08-29T00:00:00Z"`) {
		t.Fatalf("version: unexpected body %s", string(b3))
	}
}

func TestReadinessHandler_StoreDown(t *testing.T) {
	d, err := db.New(context.Background(), "file:apitest_readiness_down?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	d.Close()

	h := api.NewSystemHandler(&config.Config{AppName: "Field Solutions Backend"}, d)
	req := httptest.NewRequest(http.MethodGet, "/readiness", nil)
	w := httptest.NewRecorder()
	h.ReadinessHandler(w, req)
	res := w.Result()
	defer res.Body.Close()

	// a failed probe is reported in the body, never as an error status
	if res.StatusCode != http.StatusOK {
		t.Fatalf("readiness: expected 200 got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"status":"not_ready"`) || !strings.Contains(string(b), `"database":"disconnected"`) {
		t.Fatalf("readiness: unexpected body %s", string(b))
	}
}
