package handlers_test

import (
	"Food-Traceability-Backend/entities"
	"Food-Traceability-Backend/internal/api/handlers"
	"Food-Traceability-Backend/internal/api/routes"
	"Food-Traceability-Backend/internal/middleware"
	"Food-Traceability-Backend/internal/utils"
	"Food-Traceability-Backend/pkg/traceability"
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&entities.TraceabilityRecord{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	utils.InitValidator()

	app := fiber.New()
	traceabilityRepository := traceability.NewTraceabilityRepository(db)
	traceabilityService := traceability.NewTraceabilityService(traceabilityRepository)
	traceabilityHandler := handlers.NewTraceabilityHandler(traceabilityService, utils.Validate)

	routesConfig := routes.Config{
		App:                 app,
		TraceabilityHandler: traceabilityHandler,
		Middleware:          middleware.NewMiddleware(),
	}
	routesConfig.Setup()

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	var payload map[string]interface{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			t.Fatalf("response is not valid JSON: %v (%s)", err, raw)
		}
	}
	return resp, payload
}

func TestHealthCheck(t *testing.T) {
	app := setupTestApp(t)

	resp, payload := doJSON(t, app, http.MethodGet, "/health", "")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}
	if payload["status"] != "success" {
		t.Errorf("expected status %q, got %v", "success", payload["status"])
	}
}

func TestCreateFoodRecord(t *testing.T) {
	app := setupTestApp(t)

	body := `{"productId":"PRD-001","metadata":{"productName":"Arabica Beans"},"metadataHashOnChain":"0xabc","transactionHash":"0xdef"}`

	resp, payload := doJSON(t, app, http.MethodPost, "/api/food-records", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.StatusCode)
	}
	if payload["status"] != "success" {
		t.Errorf("expected status %q, got %v", "success", payload["status"])
	}

	t.Run("duplicate product id conflicts", func(t *testing.T) {
		resp, payload := doJSON(t, app, http.MethodPost, "/api/food-records", body)
		if resp.StatusCode != http.StatusConflict {
			t.Errorf("expected status 409, got %d", resp.StatusCode)
		}
		if payload["status"] != "error" {
			t.Errorf("expected status %q, got %v", "error", payload["status"])
		}
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/food-records", `{"productId":"PRD-002"}`)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", resp.StatusCode)
		}
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/food-records", `{{{`)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", resp.StatusCode)
		}
	})
}

func TestGetFoodRecords(t *testing.T) {
	app := setupTestApp(t)

	t.Run("empty store", func(t *testing.T) {
		resp, payload := doJSON(t, app, http.MethodGet, "/api/food-records", "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.StatusCode)
		}
		if payload["total_items"].(float64) != 0 {
			t.Errorf("expected total_items 0, got %v", payload["total_items"])
		}
		if payload["total_pages"].(float64) != 0 {
			t.Errorf("expected total_pages 0, got %v", payload["total_pages"])
		}
		items, ok := payload["items"].([]interface{})
		if !ok || len(items) != 0 {
			t.Errorf("expected empty items array, got %v", payload["items"])
		}
	})

	body := `{"productId":"PRD-100","metadata":{"productName":"Palm Sugar"},"metadataHashOnChain":"0xabc","transactionHash":"0xdef"}`
	if resp, _ := doJSON(t, app, http.MethodPost, "/api/food-records", body); resp.StatusCode != http.StatusCreated {
		t.Fatalf("failed to seed record: status %d", resp.StatusCode)
	}

	t.Run("single record with projected name", func(t *testing.T) {
		resp, payload := doJSON(t, app, http.MethodGet, "/api/food-records?page=1&page_size=10", "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.StatusCode)
		}
		items := payload["items"].([]interface{})
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
		item := items[0].(map[string]interface{})
		if item["product_id"] != "PRD-100" {
			t.Errorf("expected product_id %q, got %v", "PRD-100", item["product_id"])
		}
		if item["product_name"] != "Palm Sugar" {
			t.Errorf("expected product_name %q, got %v", "Palm Sugar", item["product_name"])
		}
		if item["onchain_metadata_hash"] != "0xabc" {
			t.Errorf("expected onchain_metadata_hash %q, got %v", "0xabc", item["onchain_metadata_hash"])
		}
		if _, present := item["metadata_json"]; present {
			t.Error("list items must not carry the full metadata document")
		}
		if payload["page"].(float64) != 1 || payload["page_size"].(float64) != 10 {
			t.Errorf("unexpected pagination echo: page %v size %v", payload["page"], payload["page_size"])
		}
	})
}

func TestGetFoodRecordDetail(t *testing.T) {
	app := setupTestApp(t)

	body := `{"productId":"PRD-200","metadata":{"productName":"Sea Salt","grade":"A"},"metadataHashOnChain":"0xabc","transactionHash":"0xdef"}`
	if resp, _ := doJSON(t, app, http.MethodPost, "/api/food-records", body); resp.StatusCode != http.StatusCreated {
		t.Fatalf("failed to seed record: status %d", resp.StatusCode)
	}

	t.Run("existing record", func(t *testing.T) {
		resp, payload := doJSON(t, app, http.MethodGet, "/api/food-records/PRD-200", "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.StatusCode)
		}
		if payload["product_id"] != "PRD-200" {
			t.Errorf("expected product_id %q, got %v", "PRD-200", payload["product_id"])
		}
		if payload["blockchain_transaction_hash"] != "0xdef" {
			t.Errorf("expected tx hash %q, got %v", "0xdef", payload["blockchain_transaction_hash"])
		}
		metadata, ok := payload["metadata_json"].(map[string]interface{})
		if !ok {
			t.Fatalf("expected decoded metadata object, got %v", payload["metadata_json"])
		}
		if metadata["grade"] != "A" {
			t.Errorf("expected metadata grade %q, got %v", "A", metadata["grade"])
		}
	})

	t.Run("missing record", func(t *testing.T) {
		resp, payload := doJSON(t, app, http.MethodGet, "/api/food-records/PRD-999", "")
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", resp.StatusCode)
		}
		if payload["status"] != "error" {
			t.Errorf("expected status %q, got %v", "error", payload["status"])
		}
	})
}
