package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRouter_Setup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	catalog := NewDomainGroup("catalog", "/products")
	catalog.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	r := NewRouter(engine)
	r.Register(catalog)
	r.Setup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_AppliesMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	group := NewDomainGroup("orders", "/orders")
	group.POST("", func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	var middlewareRan bool
	r := NewRouter(engine)
	r.Use(func(c *gin.Context) {
		middlewareRan = true
		c.Next()
	})
	r.Register(group)
	r.Setup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, middlewareRan)
}

func TestDomainGroup_Metadata(t *testing.T) {
	group := NewDomainGroup("trade", "/cart")
	assert.Equal(t, "trade", group.Name())
	assert.Equal(t, "/cart", group.Prefix())
}
