package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fleet-tools/fleet-atlas/pkg/models/domain"
	"github.com/fleet-tools/fleet-atlas/pkg/store/fleet"
)

type mockStore struct{ mock.Mock }

func (m *mockStore) ListVehicles(ctx context.Context, q fleet.Query) ([]domain.Vehicle, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *mockStore) ListVehicleActivity(ctx context.Context, q fleet.Query) ([]domain.VehicleActivity, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VehicleActivity), args.Error(1)
}

func (m *mockStore) ListFuelEntries(ctx context.Context, q fleet.Query) ([]domain.FuelEntry, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FuelEntry), args.Error(1)
}

func (m *mockStore) ListServiceEntries(ctx context.Context, q fleet.Query) ([]domain.ServiceEntry, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceEntry), args.Error(1)
}

func (m *mockStore) ListExpenseEntries(ctx context.Context, q fleet.Query) ([]domain.ExpenseEntry, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseEntry), args.Error(1)
}

func (m *mockStore) ListMeterEntries(ctx context.Context, q fleet.Query) ([]domain.MeterEntry, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MeterEntry), args.Error(1)
}

func (m *mockStore) ListIssues(ctx context.Context, q fleet.Query) ([]domain.Issue, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Issue), args.Error(1)
}

func (m *mockStore) ListInspections(ctx context.Context, q fleet.Query) ([]domain.Inspection, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Inspection), args.Error(1)
}

func (m *mockStore) ListInspectionSchedules(ctx context.Context, q fleet.Query) ([]domain.InspectionSchedule, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InspectionSchedule), args.Error(1)
}

func (m *mockStore) ListServiceReminders(ctx context.Context, q fleet.Query) ([]domain.ServiceReminder, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceReminder), args.Error(1)
}

func (m *mockStore) ListContacts(ctx context.Context, q fleet.Query) ([]domain.Contact, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}

func (m *mockStore) ListContactRenewals(ctx context.Context, q fleet.Query) ([]domain.ContactRenewal, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContactRenewal), args.Error(1)
}

func (m *mockStore) ListVehicleChanges(ctx context.Context, q fleet.Query, kind domain.VehicleChangeKind) ([]domain.VehicleChange, error) {
	args := m.Called(ctx, q, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VehicleChange), args.Error(1)
}

func (m *mockStore) ListPartUsage(ctx context.Context, q fleet.Query) ([]domain.PartUsage, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PartUsage), args.Error(1)
}

func (m *mockStore) ListRevenueEntries(ctx context.Context, q fleet.Query) ([]domain.RevenueEntry, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RevenueEntry), args.Error(1)
}

func testConfig() domain.ReportConfig {
	return domain.ReportConfig{
		DateRange: domain.DateRange{
			Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		IncludeSummary: true,
	}
}

func newTestService(t *testing.T, store fleet.Store) Service {
	t.Helper()
	svc, err := NewService(store)
	require.NoError(t, err)
	return svc
}

func TestGenerate_VehicleList(t *testing.T) {
	ctx := context.Background()
	store := new(mockStore)
	store.On("ListVehicles", mock.Anything, mock.MatchedBy(func(q fleet.Query) bool {
		return q.UserID == "user-1"
	})).Return([]domain.Vehicle{
		{ID: "v1", Name: "Truck 1", Make: "Volvo", Model: "FH16", Year: 2020, VIN: "VIN1", Type: "truck", Status: domain.VehicleStatusActive, MeterReading: 120000},
		{ID: "v2", Name: "Van 2", Make: "Ford", Model: "Transit", Year: 2022, VIN: "VIN2", Type: "van", Status: domain.VehicleStatusMaintenance, MeterReading: 45000},
	}, nil)

	svc := newTestService(t, store)
	data, err := svc.Generate(ctx, "user-1", TemplateVehicleList, testConfig())
	require.NoError(t, err)

	assert.Equal(t, TemplateVehicleList, data.Metadata.Template)
	assert.Equal(t, 2, data.Metadata.TotalRecords)
	assert.Equal(t, "2025-01-01 - 2025-03-31", data.Metadata.DateRange)

	require.Len(t, data.Tables, 1)
	table := data.Tables[0]
	assert.Equal(t, "Vehicle Inventory", table.Title)
	assert.Equal(t, []string{"Vehicle Name", "Make", "Model", "Year", "VIN", "Type", "Status", "Current Meter"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []any{"Truck 1", "Volvo", "FH16", 2020, "VIN1", "truck", domain.VehicleStatusActive, 120000.0}, table.Rows[0])

	require.NotNil(t, data.Summary)
	assert.Equal(t, 2, data.Summary["totalRecords"])
	assert.Equal(t, 165000.0, data.Summary["totalMeterReading"])
	// vehicle-list has no charts configured
	assert.Empty(t, data.Charts)

	store.AssertExpectations(t)
}

func TestGenerate_UnknownTemplate(t *testing.T) {
	svc := newTestService(t, new(mockStore))

	_, err := svc.Generate(context.Background(), "user-1", "no-such-template", testConfig())
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	var notFound *TemplateNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "no-such-template", notFound.Template)
}

func TestGenerate_InvalidConfigSkipsStore(t *testing.T) {
	store := new(mockStore)
	svc := newTestService(t, store)

	_, err := svc.Generate(context.Background(), "", TemplateVehicleList, testConfig())
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	store.AssertNotCalled(t, "ListVehicles", mock.Anything, mock.Anything)
}

func TestGenerate_StoreFailureIsAllOrNothing(t *testing.T) {
	store := new(mockStore)
	store.On("ListVehicles", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	svc := newTestService(t, store)
	data, err := svc.Generate(context.Background(), "user-1", TemplateVehicleList, testConfig())

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, TemplateVehicleList, genErr.Template)
	assert.Empty(t, data.Tables)
}

func TestGenerate_FuelSummaryAggregation(t *testing.T) {
	store := new(mockStore)
	store.On("ListFuelEntries", mock.Anything, mock.Anything).Return([]domain.FuelEntry{
		{VehicleID: "v1", VehicleName: "Truck 1", Volume: 50, Cost: 100, MPG: 26},
		{VehicleID: "v1", VehicleName: "Truck 1", Volume: 50, Cost: 110, MPG: 24},
	}, nil)

	svc := newTestService(t, store)
	cfg := testConfig()
	cfg.IncludeCharts = true
	data, err := svc.Generate(context.Background(), "user-1", TemplateFuelSummary, cfg)
	require.NoError(t, err)

	require.Len(t, data.Tables, 1)
	require.Len(t, data.Tables[0].Rows, 1)
	// vehicleName, totalVolume, totalCost, averageMPG, averagePrice, entryCount
	assert.Equal(t, []any{"Truck 1", 100.0, 210.0, 25.0, 2.1, 2}, data.Tables[0].Rows[0])

	require.Len(t, data.Charts, 1)
	require.Len(t, data.Charts[0].Data, 1)
	assert.Equal(t, domain.ChartPoint{X: "Truck 1", Y: 100.0}, data.Charts[0].Data[0])

	assert.Equal(t, 100.0, data.Summary["totalVolume"])
	assert.Equal(t, 210.0, data.Summary["totalCost"])
	assert.Equal(t, 25.0, data.Summary["averageMPG"])
	assert.Equal(t, 2.1, data.Summary["averagePrice"])
}

func TestGenerate_VehicleSummarySingleAggregateRecord(t *testing.T) {
	store := new(mockStore)
	store.On("ListVehicles", mock.Anything, mock.Anything).Return([]domain.Vehicle{
		{ID: "v1", Status: domain.VehicleStatusActive, Year: 2020, PurchasePrice: 30000},
		{ID: "v2", Status: domain.VehicleStatusInactive, Year: 2018, PurchasePrice: 20000},
	}, nil)

	svc := newTestService(t, store)
	data, err := svc.Generate(context.Background(), "user-1", TemplateVehicleSummary, testConfig())
	require.NoError(t, err)

	assert.Equal(t, 1, data.Metadata.TotalRecords)
	assert.Equal(t, 2, data.Summary["totalVehicles"])
	assert.Equal(t, 1, data.Summary["activeVehicles"])
	assert.Equal(t, 1, data.Summary["inactiveVehicles"])
	assert.Equal(t, 50000.0, data.Summary["totalValue"])
}
