//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/guttosm/carryon-service/internal/metrics"
)

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		route      string
		handler    gin.HandlerFunc
		locale     string
		wantStatus int
		wantBody   string
		wantPanics float64
	}{
		{
			name:       "panic becomes a 500 envelope",
			route:      "/api/compliance/check",
			handler:    func(c *gin.Context) { panic("nil allowance") },
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"error":"internal_error"`,
			wantPanics: 1,
		},
		{
			name:       "message follows Accept-Language",
			route:      "/api/compliance/suggestion",
			handler:    func(c *gin.Context) { panic("boom") },
			locale:     "pt-BR",
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Ocorreu um erro inesperado",
			wantPanics: 1,
		},
		{
			name:  "partial response is left alone",
			route: "/api/airlines",
			handler: func(c *gin.Context) {
				c.String(http.StatusOK, "partial")
				panic("late failure")
			},
			wantStatus: http.StatusOK,
			wantBody:   "partial",
			wantPanics: 1,
		},
		{
			name:       "passes through when no panic",
			route:      "/api/airlines/:id",
			handler:    func(c *gin.Context) { c.String(http.StatusOK, "ok") },
			wantStatus: http.StatusOK,
			wantBody:   "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), Recovery())
			router.GET(tt.route, tt.handler)

			path := tt.route
			if path == "/api/airlines/:id" {
				path = "/api/airlines/ryanair"
			}
			req := httptest.NewRequest(http.MethodGet, path, nil)
			if tt.locale != "" {
				req.Header.Set("Accept-Language", tt.locale)
			}
			w := httptest.NewRecorder()
			before := testutil.ToFloat64(metrics.PanicsRecoveredTotal.WithLabelValues(tt.route))

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			after := testutil.ToFloat64(metrics.PanicsRecoveredTotal.WithLabelValues(tt.route))
			assert.Equal(t, tt.wantPanics, after-before)
		})
	}
}

func TestRecovery_RepanicsAbortHandler(t *testing.T) {
	router := gin.New()
	router.Use(Recovery())
	router.GET("/abort", func(c *gin.Context) { panic(http.ErrAbortHandler) })

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/abort", nil))
	})
}
