//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"courtbook/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/cockroachdb/errors"
)

func performGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CustomRecovery())
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	rec := performGet(router, "/panic")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Internal server error"}`, rec.Body.String())
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("written responses pass through untouched", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/ok", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		rec := performGet(router, "/ok")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
	})

	t.Run("attached error without a response becomes a 500", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/silent", func(c *gin.Context) {
			_ = c.Error(errors.New("forgot to respond"))
		})

		rec := performGet(router, "/silent")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error": "Internal server error"}`, rec.Body.String())
	})
}
