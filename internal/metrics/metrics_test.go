package metrics

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.POST("/api/compliance/check", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/api/airlines/:id", func(c *gin.Context) {
		c.String(http.StatusNotFound, "missing")
	})

	tests := []struct {
		name           string
		method         string
		path           string
		route          string
		expectedStatus int
	}{
		{
			name:           "records route template for successful request",
			method:         http.MethodPost,
			path:           "/api/compliance/check",
			route:          "/api/compliance/check",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "collapses path parameters",
			method:         http.MethodGet,
			path:           "/api/airlines/ryanair",
			route:          "/api/airlines/:id",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "unmatched paths share one label",
			method:         http.MethodGet,
			path:           "/nope/123",
			route:          "unmatched",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := strconv.Itoa(tt.expectedStatus)
			before := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(tt.method, tt.route, status))

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			after := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(tt.method, tt.route, status))
			assert.Equal(t, before+1, after)
		})
	}
}

func TestRecordEvaluation(t *testing.T) {
	successBefore := testutil.ToFloat64(ComplianceEvaluationsTotal.WithLabelValues("success"))
	errorBefore := testutil.ToFloat64(ComplianceEvaluationsTotal.WithLabelValues("error"))
	cachedBefore := testutil.ToFloat64(ComplianceEvaluationsTotal.WithLabelValues("cached"))

	RecordEvaluation(2*time.Millisecond, "success", 75)
	RecordEvaluation(time.Millisecond, "error", 0)
	RecordEvaluation(time.Microsecond, "cached", 75)

	assert.Equal(t, successBefore+1, testutil.ToFloat64(ComplianceEvaluationsTotal.WithLabelValues("success")))
	assert.Equal(t, errorBefore+1, testutil.ToFloat64(ComplianceEvaluationsTotal.WithLabelValues("error")))
	assert.Equal(t, cachedBefore+1, testutil.ToFloat64(ComplianceEvaluationsTotal.WithLabelValues("cached")))
}

func TestRecordFillSuggestion(t *testing.T) {
	foundBefore := testutil.ToFloat64(FillSuggestionsTotal.WithLabelValues("found"))
	noneBefore := testutil.ToFloat64(FillSuggestionsTotal.WithLabelValues("none"))

	RecordFillSuggestion(true)
	RecordFillSuggestion(false)
	RecordFillSuggestion(false)

	assert.Equal(t, foundBefore+1, testutil.ToFloat64(FillSuggestionsTotal.WithLabelValues("found")))
	assert.Equal(t, noneBefore+2, testutil.ToFloat64(FillSuggestionsTotal.WithLabelValues("none")))
}

func TestGauges(t *testing.T) {
	SetDatasetSize(25)
	assert.Equal(t, 25.0, testutil.ToFloat64(AirlineDatasetSize))

	UpdateCacheSize(12)
	assert.Equal(t, 12.0, testutil.ToFloat64(CacheSize))

	SetCircuitBreakerState("mongodb-airlines", 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(CircuitBreakerState.WithLabelValues("mongodb-airlines")))
}

func TestRecordCacheOperation(t *testing.T) {
	before := testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("get", "hit"))
	RecordCacheOperation("get", "hit")
	assert.Equal(t, before+1, testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("get", "hit")))
}
