//go:build !integration

package http

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/carryon-service/internal/circuitbreaker"
	"github.com/guttosm/carryon-service/internal/dataset"
	"github.com/guttosm/carryon-service/internal/domain/dto"
	"github.com/guttosm/carryon-service/internal/domain/model"
	"github.com/guttosm/carryon-service/internal/middleware"
	"github.com/guttosm/carryon-service/internal/repository"
	"github.com/guttosm/carryon-service/internal/service"
)

func TestAirlinesHandler_List(t *testing.T) {
	router := NewRouter(NewHealthHandler(), testRouterConfig())

	tests := []struct {
		name        string
		path        string
		expectedIDs []string
	}{
		{
			name:        "all airlines",
			path:        "/api/airlines",
			expectedIDs: []string{"alpha", "bravo", "charlie", "delta"},
		},
		{
			name:        "one region",
			path:        "/api/airlines?region=EUROPE",
			expectedIDs: []string{"alpha", "bravo"},
		},
		{
			name:        "unknown region",
			path:        "/api/airlines?region=Antarctica",
			expectedIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, http.MethodGet, tt.path, "", nil)

			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			resp := decodeData[dto.AirlineListResponse](t, w)

			ids := make([]string, 0, len(resp.Airlines))
			for _, a := range resp.Airlines {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
			assert.Equal(t, len(tt.expectedIDs), resp.Count)
			assert.Equal(t, []string{"Asia", "Europe", "North America"}, resp.Regions)
			assert.Equal(t, service.SourceBundled, resp.Source)
			assert.Equal(t, dataset.Fingerprint(testAirlines()), resp.DatasetVersion)
		})
	}
}

func TestAirlinesHandler_Get(t *testing.T) {
	router := NewRouter(NewHealthHandler(), testRouterConfig())

	t.Run("known airline", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/airlines/charlie", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		airline := decodeData[model.AirlineAllowanceEntry](t, w)
		assert.Equal(t, "Charlie Lines", airline.Name)
		total, ok := airline.CarryOn.Centimeters.TotalSize()
		assert.True(t, ok)
		assert.Equal(t, 115.0, total)
	})

	t.Run("unknown airline", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/airlines/zulu", "", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, dto.ErrCodeNotFound, decodeError(t, w).Error)
	})
}

func TestAirlinesHandler_WritesWithoutDatabase(t *testing.T) {
	router := NewRouter(NewHealthHandler(), testRouterConfig())

	tests := []struct {
		name   string
		method string
		body   string
	}{
		{
			name:   "put",
			method: http.MethodPut,
			body:   `{"name": "Echo Air", "carry_on": {"cm": [55, 40, 20]}}`,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, tt.method, "/api/airlines/alpha", tt.body, nil)

			assert.Equal(t, http.StatusConflict, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, dto.ErrCodeConflict, resp.Error)
			assert.Equal(t, "The airline dataset is read-only", resp.Message)
		})
	}
}

func storedEcho() *repository.AirlineDocument {
	return &repository.AirlineDocument{
		ID:     "echo",
		Name:   "Echo Air",
		Region: "Europe",
		CarryOn: repository.AllowanceDocument{
			Centimeters: []float64{55, 40, 20},
			Inches:      []float64{21.7, 15.7, 7.9},
		},
		Version:   3,
		UpdatedAt: time.Date(2025, 1, 28, 10, 0, 0, 0, time.UTC),
		UpdatedBy: "anonymous",
	}
}

func TestAirlinesHandler_Put(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mockAirlineService)
		expectedStatus int
		detailField    string
	}{
		{
			name: "stores the airline",
			body: `{"name": "Echo Air", "region": "Europe", "carry_on": {"cm": [20, 55, 40]}}`,
			setupMock: func(m *mockAirlineService) {
				m.On("Upsert", mock.Anything, mock.MatchedBy(func(e model.AirlineAllowanceEntry) bool {
					axes, ok := e.CarryOn.Centimeters.Axes()
					return e.ID == "echo" && e.Name == "Echo Air" && ok && axes.Values() == [3]float64{55, 40, 20}
				}), "anonymous").Return(storedEcho(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "first version is created",
			body: `{"name": "Echo Air", "carry_on": {"cm": 115}}`,
			setupMock: func(m *mockAirlineService) {
				doc := storedEcho()
				doc.Version = 1
				m.On("Upsert", mock.Anything, mock.Anything, "anonymous").Return(doc, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "name is required",
			body:           `{"carry_on": {"cm": 115}}`,
			setupMock:      func(*mockAirlineService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "blank name",
			body:           `{"name": "  ", "carry_on": {"cm": 115}}`,
			setupMock:      func(*mockAirlineService) {},
			expectedStatus: http.StatusBadRequest,
			detailField:    "name",
		},
		{
			name:           "carry on needs a size",
			body:           `{"name": "Echo Air", "carry_on": {"kg": 8}}`,
			setupMock:      func(*mockAirlineService) {},
			expectedStatus: http.StatusBadRequest,
			detailField:    "carry_on",
		},
		{
			name:           "limits must be positive",
			body:           `{"name": "Echo Air", "carry_on": {"in": [22, 14, 0]}}`,
			setupMock:      func(*mockAirlineService) {},
			expectedStatus: http.StatusBadRequest,
			detailField:    "carry_on.in",
		},
		{
			name:           "weight must be positive",
			body:           `{"name": "Echo Air", "carry_on": {"cm": 115}, "personal_item": {"cm": [40, 30, 15], "kg": -1}}`,
			setupMock:      func(*mockAirlineService) {},
			expectedStatus: http.StatusBadRequest,
			detailField:    "personal_item.kg",
		},
		{
			name: "database circuit open",
			body: `{"name": "Echo Air", "carry_on": {"cm": 115}}`,
			setupMock: func(m *mockAirlineService) {
				m.On("Upsert", mock.Anything, mock.Anything, "anonymous").Return(nil, circuitbreaker.ErrCircuitOpen)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockAirlineService{}
			tt.setupMock(svc)
			sink := &recordingSink{}

			cfg := DefaultRouterConfig()
			cfg.AirlineService = svc
			cfg.LogSink = sink
			router := NewRouter(NewHealthHandler(), cfg)

			w := performRequest(router, http.MethodPut, "/api/airlines/echo", tt.body, nil)

			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			svc.AssertExpectations(t)

			if tt.detailField != "" {
				resp := decodeError(t, w)
				assert.Contains(t, resp.Details, tt.detailField)
			}

			if tt.expectedStatus == http.StatusOK {
				resp := decodeData[dto.AirlineWriteResponse](t, w)
				assert.Equal(t, "echo", resp.Airline.ID)
				assert.Equal(t, 3, resp.Version)
				assert.Equal(t, "anonymous", resp.UpdatedBy)
				assert.Equal(t, []string{middleware.ActionAirlineUpsert}, sink.actions())
				assert.Equal(t, "echo", sink.entries[0].AirlineID)
			}
			if tt.expectedStatus == http.StatusServiceUnavailable {
				require.Equal(t, []string{middleware.ActionAirlineUpsert}, sink.actions())
				assert.Equal(t, "error", sink.entries[0].Level)
				assert.Equal(t, circuitbreaker.ErrCircuitOpen.Error(), sink.entries[0].Error)
			}
		})
	}
}

func TestAirlinesHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{name: "deleted", expectedStatus: http.StatusOK},
		{name: "unknown airline", err: repository.ErrAirlineNotFound, expectedStatus: http.StatusNotFound},
		{name: "database down", err: errors.New("connection reset"), expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockAirlineService{}
			svc.On("Delete", mock.Anything, "bravo", "anonymous").Return(tt.err)
			sink := &recordingSink{}

			cfg := DefaultRouterConfig()
			cfg.AirlineService = svc
			cfg.LogSink = sink
			router := NewRouter(NewHealthHandler(), cfg)

			w := performRequest(router, http.MethodDelete, "/api/airlines/bravo", "", nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, []string{middleware.ActionAirlineDelete}, sink.actions())
			svc.AssertExpectations(t)
		})
	}
}

func TestAirlinesHandler_OperatorWrites(t *testing.T) {
	tokens := &mockTokenService{}
	tokens.On("Validate", "editor-token").Return(&dto.Claims{Operator: "ops", Roles: []string{dto.RoleEditor}}, nil)
	tokens.On("Validate", "viewer-token").Return(&dto.Claims{Operator: "intern", Roles: []string{"viewer"}}, nil)
	tokens.On("Validate", "expired").Return(nil, service.ErrInvalidToken)

	svc := &mockAirlineService{}
	svc.On("Delete", mock.Anything, "bravo", "ops").Return(nil)

	cfg := DefaultRouterConfig()
	cfg.EnableAuth = true
	cfg.AirlineService = svc
	cfg.TokenService = tokens
	router := NewRouter(NewHealthHandler(), cfg)

	tests := []struct {
		name           string
		token          string
		expectedStatus int
	}{
		{name: "no token", expectedStatus: http.StatusUnauthorized},
		{name: "invalid token", token: "expired", expectedStatus: http.StatusUnauthorized},
		{name: "operator without editor role", token: "viewer-token", expectedStatus: http.StatusForbidden},
		{name: "editor", token: "editor-token", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.token != "" {
				headers["Authorization"] = "Bearer " + tt.token
			}

			w := performRequest(router, http.MethodDelete, "/api/airlines/bravo", "", headers)

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}

	t.Run("reads stay open", func(t *testing.T) {
		svc.On("Get", mock.Anything, "bravo").Return(&testAirlines()[1], nil).Once()

		w := performRequest(router, http.MethodGet, "/api/airlines/bravo", "", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	svc.AssertExpectations(t)
}

func TestAirlinesHandler_History(t *testing.T) {
	stamp := time.Date(2025, 1, 28, 10, 0, 0, 0, time.UTC)
	entries := []model.LogEntry{
		{Timestamp: stamp, Level: "info", ActionType: middleware.ActionAirlineUpsert, Operator: "ops", AirlineID: "bravo",
			Fields: map[string]interface{}{"version": 3}},
	}

	tests := []struct {
		name           string
		path           string
		setupMock      func(*mockAuditService)
		expectedStatus int
		expectedTotal  int64
	}{
		{
			name: "default limit",
			path: "/api/airlines/bravo/history",
			setupMock: func(m *mockAuditService) {
				m.On("AirlineHistory", mock.Anything, "bravo", 0).Return(entries, int64(7), nil)
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  7,
		},
		{
			name: "explicit limit",
			path: "/api/airlines/bravo/history?limit=1",
			setupMock: func(m *mockAuditService) {
				m.On("AirlineHistory", mock.Anything, "bravo", 1).Return(entries, int64(7), nil)
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  7,
		},
		{name: "limit not a number", path: "/api/airlines/bravo/history?limit=all", expectedStatus: http.StatusBadRequest},
		{name: "limit zero", path: "/api/airlines/bravo/history?limit=0", expectedStatus: http.StatusBadRequest},
		{name: "limit too large", path: "/api/airlines/bravo/history?limit=101", expectedStatus: http.StatusBadRequest},
		{
			name: "audit store down",
			path: "/api/airlines/bravo/history",
			setupMock: func(m *mockAuditService) {
				m.On("AirlineHistory", mock.Anything, "bravo", 0).Return(nil, int64(0), circuitbreaker.ErrCircuitOpen)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			audit := &mockAuditService{}
			if tt.setupMock != nil {
				tt.setupMock(audit)
			}

			cfg := testRouterConfig()
			cfg.AuditService = audit
			router := NewRouter(NewHealthHandler(), cfg)

			w := performRequest(router, http.MethodGet, tt.path, "", nil)

			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus == http.StatusOK {
				history := decodeData[dto.AirlineHistoryResponse](t, w)
				assert.Equal(t, "bravo", history.AirlineID)
				assert.Equal(t, tt.expectedTotal, history.Total)
				require.Len(t, history.Entries, 1)
				assert.Equal(t, middleware.ActionAirlineUpsert, history.Entries[0].Action)
				assert.Equal(t, "ops", history.Entries[0].Operator)
				assert.True(t, stamp.Equal(history.Entries[0].Timestamp))
			}
			audit.AssertExpectations(t)
		})
	}

	t.Run("hidden without an audit store", func(t *testing.T) {
		router := NewRouter(NewHealthHandler(), testRouterConfig())

		w := performRequest(router, http.MethodGet, "/api/airlines/bravo/history", "", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
