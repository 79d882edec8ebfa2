package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func ok(c *gin.Context) {
	c.Status(http.StatusOK)
}

func TestRouterMountsGroupsUnderVersion(t *testing.T) {
	engine := gin.New()

	insights := NewDomainGroup("insights", "/insights")
	insights.GET("/restock", ok)
	insights.POST("/classification/recompute", ok)

	NewRouter(engine, WithAPIVersion("v1")).
		Register(insights).
		Setup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/insights/restock", nil)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/insights/classification/recompute", nil)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterDefaultVersion(t *testing.T) {
	engine := gin.New()

	catalog := NewDomainGroup("catalog", "/catalog")
	catalog.GET("/products", ok)

	NewRouter(engine).Register(catalog).Setup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products", nil)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterGroupMiddleware(t *testing.T) {
	engine := gin.New()

	called := false
	group := NewDomainGroup("inventory", "/inventory")
	group.Use(func(c *gin.Context) {
		called = true
		c.Next()
	})
	group.PATCH("/lots/:id", ok)

	NewRouter(engine).Register(group).Setup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/inventory/lots/abc", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestRouterAPIWideMiddleware(t *testing.T) {
	engine := gin.New()

	group := NewDomainGroup("trade", "/trade")
	group.GET("/sales-orders", ok)

	NewRouter(engine).
		Use(func(c *gin.Context) {
			c.Header("X-Test", "applied")
			c.Next()
		}).
		Register(group).
		Setup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/trade/sales-orders", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, "applied", w.Header().Get("X-Test"))
}

func TestDomainGroupAccessors(t *testing.T) {
	group := NewDomainGroup("partner", "/partner")
	assert.Equal(t, "partner", group.Name())
	assert.Equal(t, "/partner", group.Prefix())
}
