package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fleet-tools/fleet-atlas/pkg/models/api"
	"github.com/fleet-tools/fleet-atlas/pkg/models/domain"
)

type mockReportService struct{ mock.Mock }

func (m *mockReportService) Templates(ctx context.Context) []domain.ReportTemplate {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ReportTemplate)
}

func (m *mockReportService) Generate(ctx context.Context, userID, templateKey string, cfg domain.ReportConfig) (domain.ReportData, error) {
	args := m.Called(ctx, userID, templateKey, cfg)
	return args.Get(0).(domain.ReportData), args.Error(1)
}

func (m *mockReportService) GenerateCustom(ctx context.Context, userID string, cfg domain.CustomReportConfig) (domain.ReportData, error) {
	args := m.Called(ctx, userID, cfg)
	return args.Get(0).(domain.ReportData), args.Error(1)
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	svc := new(mockReportService)
	webAPI := NewWebAPI(logger, Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies:    Dependencies{Reports: svc},
	})

	testServer := httptest.NewServer(webAPI.Router())
	defer testServer.Close()

	t.Run("list templates", func(t *testing.T) {
		svc.On("Templates", mock.Anything).Return([]domain.ReportTemplate{
			{ID: "vehicle-list", Name: "Vehicle List", Category: "Vehicles", Template: "vehicle-list"},
		}).Once()

		resp, err := http.Get(testServer.URL + "/api/v1/reports/templates")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

		var templates []api.ReportTemplate
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&templates))
		require.Len(t, templates, 1)
		assert.Equal(t, "Vehicle List", templates[0].Name)
	})

	t.Run("generate report", func(t *testing.T) {
		svc.On("Generate", mock.Anything, "user-1", "vehicle-list", mock.Anything).
			Return(domain.ReportData{
				Metadata: domain.ReportMetadata{
					Template:     "vehicle-list",
					TotalRecords: 1,
					DateRange:    "2025-01-01 - 2025-03-31",
				},
			}, nil).Once()

		body, err := json.Marshal(api.GenerateReportRequest{
			Template: "vehicle-list",
			Config: api.ReportConfig{
				DateRange: api.DateRange{Start: "2025-01-01", End: "2025-03-31"},
			},
		})
		require.NoError(t, err)

		req, err := http.NewRequest(http.MethodPost, testServer.URL+"/api/v1/reports/generate", bytes.NewBuffer(body))
		require.NoError(t, err)
		req.Header.Set("X-User-Id", "user-1")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var data api.ReportData
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&data))
		assert.Equal(t, "vehicle-list", data.Metadata.Template)
	})

	svc.AssertExpectations(t)
}
