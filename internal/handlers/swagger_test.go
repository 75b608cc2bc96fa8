package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	portssvc "github.com/SscSPs/trt_portal/internal/core/ports/services"
	"github.com/SscSPs/trt_portal/internal/handlers"
	"github.com/SscSPs/trt_portal/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pathParam = regexp.MustCompile(`:(\w+)`)

func TestSwaggerDocumentsEveryAPIRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecret: testJWTSecret, LoginRateLimit: "100-M", IsProduction: false}
	services := &portssvc.ServiceContainer{
		User:             new(MockUserService),
		Entity:           new(MockEntityService),
		Device:           new(MockDeviceService),
		Budget:           new(MockBudgetService),
		BudgetStatistics: new(MockBudgetStatisticsService),
		TokenService:     new(MockTokenService),
	}
	r := gin.New()
	handlers.RegisterRoutes(r, cfg, services)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "/api/v1", doc.BasePath)

	checked := 0
	for _, route := range r.Routes() {
		rel, ok := strings.CutPrefix(route.Path, doc.BasePath)
		if !ok {
			continue
		}
		path := pathParam.ReplaceAllString(rel, "{$1}")
		ops, ok := doc.Paths[path]
		if !assert.True(t, ok, "path %s is not documented", path) {
			continue
		}
		assert.Contains(t, ops, strings.ToLower(route.Method), "%s %s is not documented", route.Method, path)
		checked++
	}
	assert.Greater(t, checked, 30)
}
