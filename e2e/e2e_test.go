//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"care-app-go/internal/config"
	"care-app-go/internal/db"
	clientdomain "care-app-go/internal/domain/client"
	dashboarddomain "care-app-go/internal/domain/dashboard"
	programdomain "care-app-go/internal/domain/program"
	reviewdomain "care-app-go/internal/domain/review"
	"care-app-go/internal/observability"
	clientrepo "care-app-go/internal/repository/postgres/client"
	dashboardrepo "care-app-go/internal/repository/postgres/dashboard"
	programrepo "care-app-go/internal/repository/postgres/program"
	reviewrepo "care-app-go/internal/repository/postgres/review"
	"care-app-go/internal/transport/httpserver"
	"care-app-go/internal/transport/httpserver/handler"
	"care-app-go/internal/validation"
	"care-app-go/pkg/logger"
	"gorm.io/gorm"
)

type testEnv struct {
	server *httptest.Server
	db     *gorm.DB
}

func setupE2E(t *testing.T) *testEnv {
	t.Helper()

	dsn := os.Getenv("E2E_DB_DSN")
	if dsn == "" {
		t.Skip("E2E_DB_DSN not set; skipping e2e tests")
	}

	log := logger.New(io.Discard, slog.LevelError, "text")

	cfg := config.Config{DB: config.DBConfig{DSN: dsn}}
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}

	if err := db.Migrate(dbConn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if err := cleanDB(dbConn); err != nil {
		t.Fatalf("clean db: %v", err)
	}

	handlers := handler.New(
		programdomain.NewService(programrepo.NewPostgres(dbConn)),
		clientdomain.NewService(clientrepo.NewPostgres(dbConn)),
		reviewdomain.NewService(reviewrepo.NewPostgres(dbConn)),
		dashboarddomain.NewService(dashboardrepo.NewPostgres(dbConn)),
		validation.New(),
		log,
	)

	router := httpserver.NewRouter(cfg, handlers, observability.NewMetrics())
	server := httptest.NewServer(router)

	return &testEnv{server: server, db: dbConn}
}

func (e *testEnv) Close() {
	e.server.Close()
	if sqlDB, err := e.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func cleanDB(dbConn *gorm.DB) error {
	for _, table := range []string{"reviews", "clients", "programs"} {
		if err := dbConn.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var decoded map[string]interface{}
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		var value interface{}
		if err := json.Unmarshal(raw, &value); err == nil {
			if obj, ok := value.(map[string]interface{}); ok {
				decoded = obj
			} else {
				decoded = map[string]interface{}{"items": value}
			}
		}
	}
	return resp.StatusCode, decoded
}

func TestCareJourneyEndToEnd(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	status, metrics := env.do(t, http.MethodGet, "/api/dashboard/metrics", nil)
	if status != http.StatusOK {
		t.Fatalf("dashboard: expected 200, got %d", status)
	}
	if metrics["totalPrograms"].(float64) != 0 {
		t.Fatalf("expected empty store, got %v", metrics)
	}

	status, created := env.do(t, http.MethodPost, "/api/programs", map[string]interface{}{"name": "Diabetes Care"})
	if status != http.StatusCreated {
		t.Fatalf("create program: expected 201, got %d (%v)", status, created)
	}
	programID := created["id"].(string)

	status, client := env.do(t, http.MethodPost, "/api/clients", map[string]interface{}{
		"programId": programID,
		"fullName":  "Jane Doe",
		"email":     "jane@x.com",
	})
	if status != http.StatusCreated {
		t.Fatalf("create client: expected 201, got %d (%v)", status, client)
	}
	clientID := client["id"].(string)

	status, body := env.do(t, http.MethodDelete, "/api/programs/"+programID, nil)
	if status != http.StatusConflict {
		t.Fatalf("delete program with clients: expected 409, got %d (%v)", status, body)
	}

	for _, comment := range []string{"Initial assessment", "Stable condition"} {
		status, review := env.do(t, http.MethodPost, "/api/clients/"+clientID+"/reviews", map[string]interface{}{
			"doctorReview": comment,
		})
		if status != http.StatusCreated {
			t.Fatalf("create review %q: expected 201, got %d (%v)", comment, status, review)
		}
	}

	status, reviews := env.do(t, http.MethodGet, "/api/clients/"+clientID+"/reviews", nil)
	if status != http.StatusOK {
		t.Fatalf("list reviews: expected 200, got %d", status)
	}
	items := reviews["items"].([]interface{})
	if len(items) != 2 {
		t.Fatalf("expected two reviews, got %d", len(items))
	}
	// newest first
	if items[0].(map[string]interface{})["comment"] != "Stable condition" {
		t.Fatalf("unexpected review order %v", items)
	}
	if items[1].(map[string]interface{})["comment"] != "Initial assessment" {
		t.Fatalf("unexpected review order %v", items)
	}

	status, metrics = env.do(t, http.MethodGet, "/api/dashboard/metrics", nil)
	if status != http.StatusOK {
		t.Fatalf("dashboard: expected 200, got %d", status)
	}
	if metrics["totalPrograms"].(float64) != 1 || metrics["totalClients"].(float64) != 1 || metrics["totalReviews"].(float64) != 2 {
		t.Fatalf("unexpected metrics %v", metrics)
	}
	top := metrics["topProgramsByEnrollment"].([]interface{})
	if len(top) != 1 || top[0].(map[string]interface{})["name"] != "Diabetes Care" {
		t.Fatalf("unexpected ranking %v", top)
	}

	// cascade: deleting the client removes its reviews, then the program frees up
	status, _ = env.do(t, http.MethodDelete, "/api/clients/"+clientID, nil)
	if status != http.StatusNoContent {
		t.Fatalf("delete client: expected 204, got %d", status)
	}
	status, _ = env.do(t, http.MethodDelete, "/api/programs/"+programID, nil)
	if status != http.StatusNoContent {
		t.Fatalf("delete program: expected 204, got %d", status)
	}
}

func TestReferenceErrorsEndToEnd(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	status, _ := env.do(t, http.MethodPost, "/api/clients", map[string]interface{}{
		"programId": "00000000-0000-0000-0000-000000000001",
		"fullName":  "Jane Doe",
	})
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for missing program, got %d", status)
	}

	status, listed := env.do(t, http.MethodGet, "/api/clients", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if len(listed["items"].([]interface{})) != 0 {
		t.Fatalf("expected nothing persisted, got %v", listed)
	}

	// ids that do not parse as uuids behave like missing records
	status, _ = env.do(t, http.MethodGet, "/api/programs/not-a-uuid", nil)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 for malformed program id, got %d", status)
	}
	status, _ = env.do(t, http.MethodGet, "/api/clients/not-a-uuid", nil)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 for malformed client id, got %d", status)
	}
}
