package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/carryon-service/internal/domain/dto"
	"github.com/guttosm/carryon-service/internal/domain/model"
	"github.com/guttosm/carryon-service/internal/repository"
	"github.com/guttosm/carryon-service/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func ptr(v float64) *float64 { return &v }

func perAxis(a, b, c float64) *model.DimensionValue {
	v := model.PerAxis(model.DescDimensions(a, b, c))
	return &v
}

func total(v float64) *model.DimensionValue {
	t := model.Total(v)
	return &t
}

// testAirlines is a small dataset where a 55x40x23 cm rigid bag passes only delta.
func testAirlines() []model.AirlineAllowanceEntry {
	return []model.AirlineAllowanceEntry{
		{
			ID: "alpha", Name: "Alpha Air", Region: "Europe",
			CarryOn:      model.Allowance{Centimeters: perAxis(50, 40, 20), Inches: perAxis(20, 16, 8), Kilograms: ptr(8)},
			PersonalItem: &model.Allowance{Centimeters: perAxis(40, 30, 15), Inches: perAxis(16, 12, 6)},
		},
		{
			ID: "bravo", Name: "Bravo Airways", Region: "Europe",
			CarryOn: model.Allowance{Centimeters: perAxis(56, 36, 23), Inches: perAxis(22, 14, 9)},
		},
		{
			ID: "charlie", Name: "Charlie Lines", Region: "Asia",
			CarryOn: model.Allowance{Centimeters: total(115), Inches: total(45)},
		},
		{
			ID: "delta", Name: "Delta Jet", Region: "North America",
			CarryOn: model.Allowance{Centimeters: perAxis(60, 45, 25), Inches: perAxis(24, 18, 10)},
		},
	}
}

// testRouterConfig wires real services over testAirlines without MongoDB.
func testRouterConfig() RouterConfig {
	airlines := service.NewAirlineService(nil, service.WithBundledDataset(testAirlines()))

	cfg := DefaultRouterConfig()
	cfg.AirlineService = airlines
	cfg.ComplianceService = service.NewComplianceService(airlines)
	return cfg
}

func performRequest(router http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeData unwraps the success envelope into T.
func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var envelope struct {
		Data      T      `json:"data"`
		RequestID string `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
	return envelope.Data
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

type mockComplianceService struct {
	mock.Mock
}

func (m *mockComplianceService) Evaluate(ctx context.Context, req service.EvaluationRequest) (*model.ComplianceReport, error) {
	args := m.Called(ctx, req)
	report, _ := args.Get(0).(*model.ComplianceReport)
	return report, args.Error(1)
}

func (m *mockComplianceService) Suggest(ctx context.Context, req service.SuggestionRequest) (*service.SuggestionResult, error) {
	args := m.Called(ctx, req)
	result, _ := args.Get(0).(*service.SuggestionResult)
	return result, args.Error(1)
}

func (m *mockComplianceService) Flexibility(dims model.UserDimensions, fill float64) model.SortedDimensions {
	args := m.Called(dims, fill)
	return args.Get(0).(model.SortedDimensions)
}

func (m *mockComplianceService) InvalidateCache(ctx context.Context) {
	m.Called(ctx)
}

type mockAirlineService struct {
	mock.Mock
}

func (m *mockAirlineService) List(ctx context.Context, filter repository.AirlineFilter) ([]model.AirlineAllowanceEntry, error) {
	args := m.Called(ctx, filter)
	entries, _ := args.Get(0).([]model.AirlineAllowanceEntry)
	return entries, args.Error(1)
}

func (m *mockAirlineService) Get(ctx context.Context, id string) (*model.AirlineAllowanceEntry, error) {
	args := m.Called(ctx, id)
	entry, _ := args.Get(0).(*model.AirlineAllowanceEntry)
	return entry, args.Error(1)
}

func (m *mockAirlineService) Upsert(ctx context.Context, entry model.AirlineAllowanceEntry, updatedBy string) (*repository.AirlineDocument, error) {
	args := m.Called(ctx, entry, updatedBy)
	doc, _ := args.Get(0).(*repository.AirlineDocument)
	return doc, args.Error(1)
}

func (m *mockAirlineService) Delete(ctx context.Context, id, deletedBy string) error {
	args := m.Called(ctx, id, deletedBy)
	return args.Error(0)
}

func (m *mockAirlineService) Snapshot(ctx context.Context) *service.DatasetSnapshot {
	args := m.Called(ctx)
	return args.Get(0).(*service.DatasetSnapshot)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(ctx context.Context, key string) (*dto.TokenResponse, error) {
	args := m.Called(ctx, key)
	resp, _ := args.Get(0).(*dto.TokenResponse)
	return resp, args.Error(1)
}

func (m *mockTokenService) Validate(token string) (*dto.Claims, error) {
	args := m.Called(token)
	claims, _ := args.Get(0).(*dto.Claims)
	return claims, args.Error(1)
}

type mockAuditService struct {
	mock.Mock
}

func (m *mockAuditService) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockAuditService) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	return m.Called(ctx, entries).Error(0)
}

func (m *mockAuditService) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	args := m.Called(ctx, opts)
	entries, _ := args.Get(0).([]model.LogEntry)
	return entries, args.Error(1)
}

func (m *mockAuditService) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAuditService) AirlineHistory(ctx context.Context, airlineID string, limit int) ([]model.LogEntry, int64, error) {
	args := m.Called(ctx, airlineID, limit)
	entries, _ := args.Get(0).([]model.LogEntry)
	return entries, args.Get(1).(int64), args.Error(2)
}

// recordingSink keeps every entry it is handed.
type recordingSink struct {
	entries []*model.LogEntry
}

func (s *recordingSink) Log(entry *model.LogEntry) bool {
	s.entries = append(s.entries, entry)
	return true
}

func (s *recordingSink) actions() []string {
	out := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		if e.ActionType != "" {
			out = append(out, e.ActionType)
		}
	}
	return out
}
