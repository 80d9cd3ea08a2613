package report

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fleet-tools/fleet-atlas/pkg/models/domain"
)

func customTestConfig(name string) domain.CustomReportConfig {
	return domain.CustomReportConfig{
		ReportConfig: testConfig(),
		Name:         name,
	}
}

func TestGenerateCustom_CombinesCollections(t *testing.T) {
	store := new(mockStore)
	store.On("ListVehicles", mock.Anything, mock.Anything).Return([]domain.Vehicle{{ID: "v1"}, {ID: "v2"}}, nil)
	store.On("ListServiceEntries", mock.Anything, mock.Anything).Return([]domain.ServiceEntry{{ID: "s1"}}, nil)
	store.On("ListFuelEntries", mock.Anything, mock.Anything).Return([]domain.FuelEntry{{ID: "f1"}, {ID: "f2"}, {ID: "f3"}}, nil)
	store.On("ListIssues", mock.Anything, mock.Anything).Return([]domain.Issue{}, nil)

	svc := newTestService(t, store)
	data, err := svc.GenerateCustom(context.Background(), "user-1", customTestConfig("quarterly overview"))
	require.NoError(t, err)

	assert.Equal(t, 2, data.Summary["vehicles"])
	assert.Equal(t, 1, data.Summary["serviceEntries"])
	assert.Equal(t, 3, data.Summary["fuelEntries"])
	// an empty collection still reports a zero count
	assert.Equal(t, 0, data.Summary["issues"])

	// the combined result counts as one record set
	assert.Equal(t, 1, data.Metadata.TotalRecords)
	assert.Equal(t, "custom", data.Metadata.Template)
	assert.Empty(t, data.Charts)
	assert.Empty(t, data.Tables)

	store.AssertExpectations(t)
}

func TestGenerateCustom_FailFast(t *testing.T) {
	store := new(mockStore)
	store.On("ListVehicles", mock.Anything, mock.Anything).Return([]domain.Vehicle{{ID: "v1"}}, nil)
	store.On("ListServiceEntries", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))
	store.On("ListFuelEntries", mock.Anything, mock.Anything).Return([]domain.FuelEntry{}, nil)
	store.On("ListIssues", mock.Anything, mock.Anything).Return([]domain.Issue{}, nil)

	svc := newTestService(t, store)
	data, err := svc.GenerateCustom(context.Background(), "user-1", customTestConfig("broken"))

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "custom", genErr.Template)
	assert.Nil(t, data.Summary)
}

func TestGenerateCustom_InvalidConfig(t *testing.T) {
	store := new(mockStore)
	svc := newTestService(t, store)

	cfg := customTestConfig("no dates")
	cfg.DateRange = domain.DateRange{}
	_, err := svc.GenerateCustom(context.Background(), "user-1", cfg)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	store.AssertNotCalled(t, "ListVehicles", mock.Anything, mock.Anything)
}
