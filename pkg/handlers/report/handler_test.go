package report

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fleet-tools/fleet-atlas/pkg/models/api"
	"github.com/fleet-tools/fleet-atlas/pkg/models/domain"
	reportsvc "github.com/fleet-tools/fleet-atlas/pkg/services/report"
)

type mockService struct{ mock.Mock }

func (m *mockService) Templates(ctx context.Context) []domain.ReportTemplate {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ReportTemplate)
}

func (m *mockService) Generate(ctx context.Context, userID, templateKey string, cfg domain.ReportConfig) (domain.ReportData, error) {
	args := m.Called(ctx, userID, templateKey, cfg)
	return args.Get(0).(domain.ReportData), args.Error(1)
}

func (m *mockService) GenerateCustom(ctx context.Context, userID string, cfg domain.CustomReportConfig) (domain.ReportData, error) {
	args := m.Called(ctx, userID, cfg)
	return args.Get(0).(domain.ReportData), args.Error(1)
}

func generateBody(t *testing.T, template string) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(api.GenerateReportRequest{
		Template: template,
		Config: api.ReportConfig{
			DateRange: api.DateRange{Start: "2025-01-01", End: "2025-03-31"},
		},
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestListTemplates(t *testing.T) {
	svc := new(mockService)
	svc.On("Templates", mock.Anything).Return([]domain.ReportTemplate{
		{ID: "vehicle-list", Name: "Vehicle List", Category: "Vehicles", Template: "vehicle-list"},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/templates", nil)
	rec := httptest.NewRecorder()
	NewHandler(svc).ListTemplates(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var templates []api.ReportTemplate
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&templates))
	require.Len(t, templates, 1)
	assert.Equal(t, "vehicle-list", templates[0].ID)
}

func TestGenerate_OK(t *testing.T) {
	svc := new(mockService)
	svc.On("Generate", mock.Anything, "user-1", "vehicle-list", mock.MatchedBy(func(cfg domain.ReportConfig) bool {
		return cfg.DateRange.Start.Year() == 2025
	})).Return(domain.ReportData{
		Metadata: domain.ReportMetadata{Template: "vehicle-list", TotalRecords: 2},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/generate", generateBody(t, "vehicle-list"))
	req.Header.Set(UserIDHeader, "user-1")
	rec := httptest.NewRecorder()
	NewHandler(svc).Generate(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var data api.ReportData
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&data))
	assert.Equal(t, "vehicle-list", data.Metadata.Template)
	assert.Equal(t, 2, data.Metadata.TotalRecords)
	svc.AssertExpectations(t)
}

func TestGenerate_ValidationErrorMapsTo400(t *testing.T) {
	svc := new(mockService)
	svc.On("Generate", mock.Anything, "", "vehicle-list", mock.Anything).Return(domain.ReportData{},
		&reportsvc.GenerationError{Template: "vehicle-list", Err: &reportsvc.ValidationError{Reason: "user id is required"}})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/generate", generateBody(t, "vehicle-list"))
	rec := httptest.NewRecorder()
	NewHandler(svc).Generate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerate_UnknownTemplateMapsTo404(t *testing.T) {
	svc := new(mockService)
	svc.On("Generate", mock.Anything, "user-1", "bogus", mock.Anything).Return(domain.ReportData{},
		&reportsvc.GenerationError{Template: "bogus", Err: &reportsvc.TemplateNotFoundError{Template: "bogus"}})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/generate", generateBody(t, "bogus"))
	req.Header.Set(UserIDHeader, "user-1")
	rec := httptest.NewRecorder()
	NewHandler(svc).Generate(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Contains(t, body["error"], "bogus")
}

func TestGenerate_StoreErrorMapsTo500(t *testing.T) {
	svc := new(mockService)
	svc.On("Generate", mock.Anything, "user-1", "vehicle-list", mock.Anything).Return(domain.ReportData{},
		&reportsvc.GenerationError{Template: "vehicle-list", Err: assert.AnError})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/generate", generateBody(t, "vehicle-list"))
	req.Header.Set(UserIDHeader, "user-1")
	rec := httptest.NewRecorder()
	NewHandler(svc).Generate(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGenerate_BadBody(t *testing.T) {
	svc := new(mockService)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/generate", bytes.NewBufferString("{not json"))
	req.Header.Set(UserIDHeader, "user-1")
	rec := httptest.NewRecorder()
	NewHandler(svc).Generate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateCustom_OK(t *testing.T) {
	svc := new(mockService)
	svc.On("GenerateCustom", mock.Anything, "user-1", mock.MatchedBy(func(cfg domain.CustomReportConfig) bool {
		return cfg.Name == "overview"
	})).Return(domain.ReportData{
		Summary:  map[string]any{"vehicles": 2},
		Metadata: domain.ReportMetadata{Template: "custom", TotalRecords: 2},
	}, nil)

	body, err := json.Marshal(api.CustomReportRequest{
		Name: "overview",
		Config: api.ReportConfig{
			DateRange: api.DateRange{Start: "2025-01-01", End: "2025-03-31"},
		},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/custom", bytes.NewBuffer(body))
	req.Header.Set(UserIDHeader, "user-1")
	rec := httptest.NewRecorder()
	NewHandler(svc).GenerateCustom(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var data api.ReportData
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&data))
	assert.Equal(t, "custom", data.Metadata.Template)
	svc.AssertExpectations(t)
}
