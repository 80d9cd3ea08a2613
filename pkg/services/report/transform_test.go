package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleet-tools/fleet-atlas/pkg/models/domain"
)

func TestBuildTables_ColumnOrderAndTotals(t *testing.T) {
	tmpl := domain.ReportTemplate{
		Tables: []domain.TableConfig{{
			ID:    "costs",
			Title: "Costs",
			Columns: []domain.TableColumn{
				{Key: "vehicleName", Title: "Vehicle", Type: domain.ColumnString},
				{Key: "totalCost", Title: "Total Cost", Type: domain.ColumnCurrency},
				{Key: "count", Title: "Count", Type: domain.ColumnNumber},
			},
		}},
	}
	recs := listRecords([]Row{
		{"vehicleName": "Truck 1", "totalCost": 100.5, "count": 2},
		{"vehicleName": "Truck 2", "totalCost": 49.5, "count": 3},
	})

	tables := buildTables(tmpl, recs)
	require.Len(t, tables, 1)

	table := tables[0]
	assert.Equal(t, []string{"Vehicle", "Total Cost", "Count"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []any{"Truck 1", 100.5, 2}, table.Rows[0])
	assert.Equal(t, []any{"Truck 2", 49.5, 3}, table.Rows[1])
	assert.Equal(t, 150.0, table.Totals["totalCost"])
	assert.Equal(t, 5.0, table.Totals["count"])
}

func TestBuildTables_NoNumericColumnsNoTotals(t *testing.T) {
	tmpl := domain.ReportTemplate{
		Tables: []domain.TableConfig{{
			ID: "list",
			Columns: []domain.TableColumn{
				{Key: "name", Title: "Name", Type: domain.ColumnString},
				{Key: "date", Title: "Date", Type: domain.ColumnDate},
			},
		}},
	}
	tables := buildTables(tmpl, listRecords([]Row{{"name": "a", "date": "2025-01-01"}}))
	require.Len(t, tables, 1)
	assert.Nil(t, tables[0].Totals)
}

func TestBuildCharts_ProjectsRows(t *testing.T) {
	tmpl := domain.ReportTemplate{
		Charts: []domain.ChartConfig{{
			ID:          "trend",
			Type:        domain.ChartLine,
			XField:      "date",
			YField:      "totalCost",
			Aggregation: domain.AggSum,
		}},
	}
	recs := listRecords([]Row{
		{"date": "2025-01", "totalCost": 10.0},
		{"date": "2025-02", "totalCost": 20.0},
	})

	charts := buildCharts(tmpl, recs)
	require.Len(t, charts, 1)
	require.Len(t, charts[0].Data, 2)
	assert.Equal(t, domain.ChartPoint{X: "2025-01", Y: 10.0}, charts[0].Data[0])
	assert.Equal(t, domain.ChartPoint{X: "2025-02", Y: 20.0}, charts[0].Data[1])
}

func TestBuildCharts_CountSeriesTallied(t *testing.T) {
	tmpl := domain.ReportTemplate{
		Charts: []domain.ChartConfig{{
			ID:          "status",
			Type:        domain.ChartPie,
			XField:      "status",
			YField:      "count",
			Aggregation: domain.AggCount,
		}},
	}
	recs := listRecords([]Row{
		{"status": "OPEN"},
		{"status": "CLOSED"},
		{"status": "OPEN"},
	})

	charts := buildCharts(tmpl, recs)
	require.Len(t, charts, 1)
	require.Len(t, charts[0].Data, 2)
	assert.Equal(t, domain.ChartPoint{X: "OPEN", Y: 2}, charts[0].Data[0])
	assert.Equal(t, domain.ChartPoint{X: "CLOSED", Y: 1}, charts[0].Data[1])
}

func TestBuildCharts_AggregateSummaryDistribution(t *testing.T) {
	tmpl := domain.ReportTemplate{
		Template: TemplateVehicleSummary,
		Charts: []domain.ChartConfig{{
			ID:          "vehicle-status",
			Type:        domain.ChartPie,
			XField:      "status",
			YField:      "count",
			Aggregation: domain.AggCount,
		}},
	}
	recs := aggregateRecord(Row{
		"totalVehicles":       5,
		"activeVehicles":      3,
		"maintenanceVehicles": 1,
		"inactiveVehicles":    1,
	})

	charts := buildCharts(tmpl, recs)
	require.Len(t, charts, 1)
	require.Len(t, charts[0].Data, 3)
	assert.Equal(t, domain.ChartPoint{X: domain.VehicleStatusActive, Y: 3}, charts[0].Data[0])
	assert.Equal(t, domain.ChartPoint{X: domain.VehicleStatusMaintenance, Y: 1}, charts[0].Data[1])
	assert.Equal(t, domain.ChartPoint{X: domain.VehicleStatusInactive, Y: 1}, charts[0].Data[2])
}

func TestBuildSummary_SumsNumericFields(t *testing.T) {
	recs := listRecords([]Row{
		{"vehicleName": "a", "totalCost": 10.0, "mpg": 20.0},
		{"vehicleName": "b", "totalCost": 30.0, "mpg": 22.0},
	})

	summary := buildSummary(TemplateVehicleList, recs)
	assert.Equal(t, 2, summary["totalRecords"])
	// every numeric field sums under a capitalized total key
	assert.Equal(t, 42.0, summary["totalMpg"])
	assert.Equal(t, 40.0, summary["totalTotalCost"])
	_, ok := summary["totalVehicleName"]
	assert.False(t, ok)
}

func TestBuildSummary_AggregateRowMergedAsIs(t *testing.T) {
	recs := aggregateRecord(Row{"totalVehicles": 5, "averageAge": 4.2})

	summary := buildSummary(TemplateVehicleSummary, recs)
	assert.Equal(t, 1, summary["totalRecords"])
	assert.Equal(t, 5, summary["totalVehicles"])
	assert.Equal(t, 4.2, summary["averageAge"])
}

func TestBuildSummary_FuelSummaryAverages(t *testing.T) {
	recs := listRecords([]Row{
		{"vehicleName": "a", "totalVolume": 100.0, "totalCost": 210.0, "averageMPG": 25.0},
		{"vehicleName": "b", "totalVolume": 50.0, "totalCost": 90.0, "averageMPG": 0.0},
	})

	summary := buildSummary(TemplateFuelSummary, recs)
	assert.Equal(t, 2, summary["totalRecords"])
	assert.Equal(t, 150.0, summary["totalVolume"])
	assert.Equal(t, 300.0, summary["totalCost"])
	// zero-MPG vehicles are excluded from the fleet average
	assert.Equal(t, 25.0, summary["averageMPG"])
	assert.Equal(t, 2.0, summary["averagePrice"])
}

func TestBuildSummary_ServiceCostSplit(t *testing.T) {
	recs := listRecords([]Row{
		{"period": "2025-01", "totalCost": 300.0, "laborCost": 200.0, "partsCost": 100.0, "serviceCount": 2},
		{"period": "2025-02", "totalCost": 100.0, "laborCost": 60.0, "partsCost": 40.0, "serviceCount": 2},
	})

	summary := buildSummary(TemplateServiceCostSummary, recs)
	assert.Equal(t, 400.0, summary["totalCost"])
	assert.Equal(t, 260.0, summary["totalLaborCost"])
	assert.Equal(t, 140.0, summary["totalPartsCost"])
	assert.Equal(t, 4, summary["totalServices"])
	assert.Equal(t, 100.0, summary["averageCost"])
}
