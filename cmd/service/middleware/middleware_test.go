package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huddle-ai/huddle-ai/app/core"
	"github.com/huddle-ai/huddle-ai/pkg/metrics"
)

func TestApiErrorMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app := core.New(core.CoreConfig{}, nil, nil)

	engine := gin.New()
	engine.Use(ApiErrorMetrics(app))
	engine.GET("/boom", func(c *gin.Context) {
		c.AbortWithStatus(http.StatusBadRequest)
	})
	engine.GET("/fine", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	engine.GET("/metrics", metrics.DefaultExportHandler())

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fine", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `huddle_core_api_error{api="/boom",method="GET",status="400"} 1`)
	assert.NotContains(t, body, `api="/fine"`)
}
