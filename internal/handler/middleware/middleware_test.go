//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"entry-registry/internal/handler/httperr"
	"entry-registry/internal/handler/middleware"
	"entry-registry/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perform(router *gin.Engine, method, path, contentType, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) httperr.Response {
	t.Helper()
	var resp httperr.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func TestRequireJSONBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", middleware.RequireJSONBody(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	cases := []struct {
		name        string
		contentType string
		wantCode    int
	}{
		{name: "json", contentType: "application/json", wantCode: http.StatusNoContent},
		{name: "json with charset", contentType: "application/json; charset=utf-8", wantCode: http.StatusNoContent},
		{name: "plain text", contentType: "text/plain", wantCode: http.StatusBadRequest},
		{name: "form", contentType: "application/x-www-form-urlencoded", wantCode: http.StatusBadRequest},
		{name: "missing", contentType: "", wantCode: http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := perform(router, http.MethodPost, "/", tc.contentType, `{}`, nil)
			require.Equal(t, tc.wantCode, w.Code)
			if tc.wantCode == http.StatusBadRequest {
				resp := decode(t, w)
				assert.False(t, resp.Success)
				assert.Equal(t, "invalid request body", resp.Message)
			}
		})
	}
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("public error meta is rendered when nothing was written", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/", func(c *gin.Context) {
			_ = c.Error(gin.Error{
				Err:  errors.New("boom"),
				Type: gin.ErrorTypePublic,
				Meta: httperr.NewResponse(http.StatusConflict, "conflict", nil),
			})
		})

		w := perform(router, http.MethodGet, "/", "", "", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "conflict", decode(t, w).Message)
	})

	t.Run("private error becomes 500", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/", func(c *gin.Context) {
			_ = c.Error(errors.New("boom"))
		})

		w := perform(router, http.MethodGet, "/", "", "", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.False(t, decode(t, w).Success)
	})

	t.Run("written response is left alone", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusBadRequest, errors.New("bad"), "bad input", nil)
		})

		w := perform(router, http.MethodGet, "/", "", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "bad input", decode(t, w).Message)
	})

	t.Run("no errors", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

		w := perform(router, http.MethodGet, "/", "", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", w.Body.String())
	})
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CustomRecovery())
	router.GET("/", func(_ *gin.Context) { panic("kaboom") })

	w := perform(router, http.MethodGet, "/", "", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "Internal server error", resp.Message)
}

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig().Log

	newRouter := func(buf *bytes.Buffer) *gin.Engine {
		logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		router := gin.New()
		router.Use(middleware.LoggingMiddleware(logger, cfg))
		router.GET("/ok", func(c *gin.Context) {
			c.String(http.StatusOK, middleware.GetRequestID(c))
		})
		router.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
		router.GET("/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
		return router
	}

	t.Run("generates a request id", func(t *testing.T) {
		var buf bytes.Buffer
		w := perform(newRouter(&buf), http.MethodGet, "/ok", "", "", nil)

		id := w.Header().Get("X-Request-ID")
		require.NotEmpty(t, id)
		assert.Equal(t, id, w.Body.String())
		assert.Contains(t, buf.String(), id)
	})

	t.Run("propagates the caller's request id", func(t *testing.T) {
		var buf bytes.Buffer
		w := perform(newRouter(&buf), http.MethodGet, "/ok", "", "", map[string]string{"X-Request-ID": "abc-123"})

		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
		assert.Equal(t, "abc-123", w.Body.String())
	})

	levels := []struct {
		path  string
		level string
	}{
		{path: "/ok", level: "INFO"},
		{path: "/bad", level: "WARN"},
		{path: "/fail", level: "ERROR"},
	}
	for _, tc := range levels {
		t.Run("completion level for "+tc.path, func(t *testing.T) {
			var buf bytes.Buffer
			perform(newRouter(&buf), http.MethodGet, tc.path, "", "", nil)

			var completed map[string]any
			for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
				var rec map[string]any
				require.NoError(t, json.Unmarshal([]byte(line), &rec))
				if rec["msg"] == "Request completed" {
					completed = rec
				}
			}
			require.NotNil(t, completed)
			assert.Equal(t, tc.level, completed["level"])
			assert.Equal(t, tc.path, completed["path"])
		})
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"Error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, middleware.ParseLevel(in), "level %q", in)
	}
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.NewCORSMiddleware(config.NewTestConfig().CORS))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allowed origin", func(t *testing.T) {
		w := perform(router, http.MethodGet, "/", "", "", map[string]string{"Origin": "http://localhost:3000"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("foreign origin", func(t *testing.T) {
		w := perform(router, http.MethodGet, "/", "", "", map[string]string{"Origin": "http://evil.example"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
