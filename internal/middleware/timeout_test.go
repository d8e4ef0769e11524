//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		timeout        time.Duration
		handler        gin.HandlerFunc
		expectedStatus int
		mustContain    string
	}{
		{
			name:    "fast handler completes",
			timeout: time.Second,
			handler: func(c *gin.Context) {
				c.String(http.StatusOK, "ok")
			},
			expectedStatus: http.StatusOK,
			mustContain:    "ok",
		},
		{
			name:    "handler that waits for the deadline gets 504",
			timeout: 20 * time.Millisecond,
			handler: func(c *gin.Context) {
				<-c.Request.Context().Done()
			},
			expectedStatus: http.StatusGatewayTimeout,
			mustContain:    "Request timed out",
		},
		{
			name:    "late response is kept",
			timeout: 10 * time.Millisecond,
			handler: func(c *gin.Context) {
				<-c.Request.Context().Done()
				c.String(http.StatusServiceUnavailable, "gave up")
			},
			expectedStatus: http.StatusServiceUnavailable,
			mustContain:    "gave up",
		},
		{
			name:    "zero timeout uses the default",
			timeout: 0,
			handler: func(c *gin.Context) {
				deadline, ok := c.Request.Context().Deadline()
				if ok && time.Until(deadline) > DefaultRequestTimeout/2 {
					c.String(http.StatusOK, "deadline set")
					return
				}
				c.String(http.StatusInternalServerError, "no deadline")
			},
			expectedStatus: http.StatusOK,
			mustContain:    "deadline set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), Timeout(tt.timeout))
			router.GET("/test", tt.handler)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.mustContain)
		})
	}
}
