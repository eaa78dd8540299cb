package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeremiapane/food-ordering/config"
	"github.com/yeremiapane/food-ordering/database"
	"github.com/yeremiapane/food-ordering/router"
	"github.com/yeremiapane/food-ordering/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.SilenceLoggers()
	os.Exit(m.Run())
}

func testConfig() *config.Config {
	return &config.Config{
		ServiceName:         "node-backend",
		DBDriver:            "sqlite",
		DatabaseURL:         ":memory:",
		JWTSecret:           "integration-test-secret",
		JWTTTL:              168 * time.Hour,
		CORSAllowedOrigins:  []string{"*"},
		RateLimitRPS:        1000,
		RateLimitBurst:      1000,
		AuthRateLimitPerMin: 1000,
	}
}

// setupTestDB migrates and seeds an in-memory SQLite database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(context.Background(), db))
	require.NoError(t, database.Seed(context.Background(), db, false))
	return db
}

func call(t *testing.T, r http.Handler, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var out map[string]interface{}
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec.Code, out
}

// TestEndToEndIntegration drives the main flow through the full router:
// register, login, a failed login, then create, read and update an order.
func TestEndToEndIntegration(t *testing.T) {
	r := router.SetupRouter(router.Deps{Config: testConfig(), DB: setupTestDB(t)})

	code, body := call(t, r, http.MethodPost, "/api/auth/register", map[string]string{
		"username": "alice", "email": "alice@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, code)
	assert.NotEmpty(t, body["token"])

	code, body = call(t, r, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "alice", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, body["token"])

	code, body = call(t, r, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "alice", "password": "secret2",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid username or password", body["error"])

	code, body = call(t, r, http.MethodGet, "/api/menu/1", nil)
	require.Equal(t, http.StatusOK, code)
	margherita := body["menu"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, 12.99, margherita["price"])

	code, body = call(t, r, http.MethodPost, "/api/orders", map[string]interface{}{
		"restaurantId": 1,
		"items": []map[string]interface{}{
			{"id": 1, "name": "Margherita Pizza", "price": 12.99, "quantity": 3, "category": "Pizza"},
		},
		"customerInfo": map[string]string{"name": "Alice", "email": "alice@example.com"},
	})
	require.Equal(t, http.StatusCreated, code)
	order := body["order"].(map[string]interface{})
	orderID := order["orderId"].(string)
	assert.Equal(t, "ORD-1", orderID)
	assert.Equal(t, 38.97, order["totalAmount"])
	assert.Equal(t, "pending", order["status"])

	code, body = call(t, r, http.MethodGet, "/api/orders/"+orderID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, orderID, body["orderId"])
	assert.Equal(t, 38.97, body["totalAmount"])
	assert.Len(t, body["items"], 1)

	code, body = call(t, r, http.MethodPut, "/api/orders/"+orderID+"/status", map[string]string{"status": "delivered"})
	require.Equal(t, http.StatusOK, code)
	order = body["order"].(map[string]interface{})
	assert.Equal(t, "delivered", order["status"])
	assert.NotNil(t, order["updatedAt"])
}

func TestHealthAndMetrics(t *testing.T) {
	r := router.SetupRouter(router.Deps{Config: testConfig(), DB: setupTestDB(t)})

	code, body := call(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "node-backend", body["service"])

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestAuthRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.AuthRateLimitPerMin = 2
	r := router.SetupRouter(router.Deps{Config: cfg, DB: setupTestDB(t)})

	creds := map[string]string{"username": "nobody", "password": "whatever"}
	for i := 0; i < 2; i++ {
		code, _ := call(t, r, http.MethodPost, "/api/auth/login", creds)
		assert.Equal(t, http.StatusUnauthorized, code)
	}
	code, body := call(t, r, http.MethodPost, "/api/auth/login", creds)
	assert.Equal(t, http.StatusTooManyRequests, code)
	assert.NotEmpty(t, body["error"])
}
