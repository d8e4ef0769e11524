//go:build !integration

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/carryon-service/internal/domain/dto"
)

func newBindContext(body string) *gin.Context {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c
}

func TestBuildRequest(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
		check       func(*testing.T, *dto.ComplianceCheckRequest)
	}{
		{
			name: "valid request",
			body: `{"height": 55, "width": 40, "depth": 23, "fill_percentage": 80, "airline_ids": ["delta"]}`,
			check: func(t *testing.T, req *dto.ComplianceCheckRequest) {
				assert.Equal(t, 55.0, req.Height)
				require.NotNil(t, req.FillPercentage)
				assert.Equal(t, 80.0, *req.FillPercentage)
				assert.Equal(t, []string{"delta"}, req.AirlineIDs)
			},
		},
		{
			name: "rigid bag leaves fill unset",
			body: `{"height": 55, "width": 40, "depth": 23}`,
			check: func(t *testing.T, req *dto.ComplianceCheckRequest) {
				assert.Nil(t, req.FillPercentage)
			},
		},
		{
			name:        "invalid JSON",
			body:        `{"height": invalid}`,
			expectError: true,
		},
		{
			name:        "empty body",
			body:        ``,
			expectError: true,
		},
		{
			name:        "binding rules",
			body:        `{"height": 55, "width": 40, "depth": 23, "fill_percentage": 101}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := BuildRequest[dto.ComplianceCheckRequest](newBindContext(tt.body))

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, req)
				return
			}
			require.NoError(t, err)
			tt.check(t, req)
		})
	}
}

func TestBuildRequestAndValidate(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		expectedField string
	}{
		{
			name: "valid request",
			body: `{"height": 55, "width": 40, "depth": 23, "system": "imperial"}`,
		},
		{
			name:          "Validate runs after binding",
			body:          `{"height": 55, "width": 40, "depth": 23, "system": "furlongs"}`,
			expectedField: "system",
		},
		{
			name:          "too many airline ids",
			body:          `{"height": 55, "width": 40, "depth": 23, "airline_ids": [` + manyIDs(dto.MaxAirlineIDs+1) + `]}`,
			expectedField: "airline_ids",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := BuildRequestAndValidate[dto.ComplianceCheckRequest](newBindContext(tt.body))

			if tt.expectedField == "" {
				require.NoError(t, err)
				assert.NotNil(t, req)
				return
			}
			var validationErr *dto.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.expectedField, validationErr.Field)
		})
	}
}

func TestBuildRequestAndValidate_WithoutValidator(t *testing.T) {
	type plain struct {
		Name string `json:"name"`
	}

	req, err := BuildRequestAndValidate[plain](newBindContext(`{"name": "delta"}`))

	require.NoError(t, err)
	assert.Equal(t, "delta", req.Name)
}

func manyIDs(n int) string {
	var b bytes.Buffer
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`"a"`)
	}
	return b.String()
}
