package adapters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleet-tools/fleet-atlas/pkg/models/api"
	"github.com/fleet-tools/fleet-atlas/pkg/models/domain"
)

func TestMapReportConfigApiToDomain(t *testing.T) {
	cfg := MapReportConfigApiToDomain(api.ReportConfig{
		DateRange:  api.DateRange{Start: "2025-01-01", End: "2025-03-31"},
		GroupBy:    "type",
		VehicleIDs: []string{"v1"},
	})

	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), cfg.DateRange.Start)
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), cfg.DateRange.End)
	assert.Equal(t, "type", cfg.GroupBy)
	assert.Equal(t, []string{"v1"}, cfg.VehicleIDs)
}

func TestMapReportConfigApiToDomain_BadDatesStayZero(t *testing.T) {
	cfg := MapReportConfigApiToDomain(api.ReportConfig{
		DateRange: api.DateRange{Start: "01/02/2025", End: ""},
	})
	assert.True(t, cfg.DateRange.Start.IsZero())
	assert.True(t, cfg.DateRange.End.IsZero())
}

func TestMapTableDataDomainToApi_FormatsDates(t *testing.T) {
	date := time.Date(2025, 2, 14, 15, 0, 0, 0, time.UTC)
	table := MapTableDataDomainToApi(domain.TableData{
		ID:      "t1",
		Headers: []string{"Vehicle", "Date"},
		Rows:    [][]any{{"Truck 1", date}, {"Van 2", (*time.Time)(nil)}},
	})

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "2025-02-14", table.Rows[0][1])
	assert.Equal(t, "", table.Rows[1][1])
}

func TestMapReportTemplateDomainToApi(t *testing.T) {
	tmpl := MapReportTemplateDomainToApi(domain.ReportTemplate{
		ID:       "vehicle-list",
		Name:     "Vehicle List",
		Category: "Vehicles",
		Template: "vehicle-list",
		Tables: []domain.TableConfig{{
			ID: "inventory",
			Columns: []domain.TableColumn{
				{Key: "name", Title: "Vehicle Name", Type: domain.ColumnString},
			},
		}},
	})

	require.Len(t, tmpl.Tables, 1)
	require.Len(t, tmpl.Tables[0].Columns, 1)
	assert.Equal(t, "string", tmpl.Tables[0].Columns[0].Type)
}
