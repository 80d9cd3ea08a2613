package adapters

import (
	"fmt"
	"time"

	"github.com/fleet-tools/fleet-atlas/pkg/models/api"
	"github.com/fleet-tools/fleet-atlas/pkg/models/domain"
)

const dateLayout = "2006-01-02"

// MapReportConfigApiToDomain parses a wire config into the domain
// form. Dates are YYYY-MM-DD; an unparseable or missing bound stays
// zero and is rejected later by config validation.
func MapReportConfigApiToDomain(cfg api.ReportConfig) domain.ReportConfig {
	return domain.ReportConfig{
		DateRange: domain.DateRange{
			Start: parseDate(cfg.DateRange.Start),
			End:   parseDate(cfg.DateRange.End),
		},
		Filters:        cfg.Filters,
		GroupBy:        cfg.GroupBy,
		SortBy:         cfg.SortBy,
		VehicleIDs:     cfg.VehicleIDs,
		VendorIDs:      cfg.VendorIDs,
		Categories:     cfg.Categories,
		IncludeCharts:  cfg.IncludeCharts,
		IncludeSummary: cfg.IncludeSummary,
	}
}

func parseDate(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func MapCustomReportRequestApiToDomain(req api.CustomReportRequest) domain.CustomReportConfig {
	return domain.CustomReportConfig{
		ReportConfig: MapReportConfigApiToDomain(req.Config),
		Name:         req.Name,
		Description:  req.Description,
	}
}

func MapChartConfigDomainToApi(cfg domain.ChartConfig) api.ChartConfig {
	return api.ChartConfig{
		ID:          cfg.ID,
		Type:        string(cfg.Type),
		Title:       cfg.Title,
		XField:      cfg.XField,
		YField:      cfg.YField,
		GroupField:  cfg.GroupField,
		Aggregation: string(cfg.Aggregation),
	}
}

func MapReportTemplateDomainToApi(t domain.ReportTemplate) api.ReportTemplate {
	res := api.ReportTemplate{
		ID:          t.ID,
		Name:        t.Name,
		Category:    t.Category,
		Description: t.Description,
		Template:    t.Template,
		Charts:      make([]api.ChartConfig, 0, len(t.Charts)),
		Tables:      make([]api.TableConfig, 0, len(t.Tables)),
	}
	for _, c := range t.Charts {
		res.Charts = append(res.Charts, MapChartConfigDomainToApi(c))
	}
	for _, tbl := range t.Tables {
		cols := make([]api.TableColumn, 0, len(tbl.Columns))
		for _, col := range tbl.Columns {
			cols = append(cols, api.TableColumn{
				Key:   col.Key,
				Title: col.Title,
				Type:  string(col.Type),
			})
		}
		res.Tables = append(res.Tables, api.TableConfig{
			ID:      tbl.ID,
			Title:   tbl.Title,
			Columns: cols,
		})
	}
	return res
}

func MapChartDataDomainToApi(c domain.ChartData) api.ChartData {
	res := api.ChartData{
		ID:     c.ID,
		Type:   string(c.Type),
		Title:  c.Title,
		Data:   make([]api.ChartPoint, 0, len(c.Data)),
		Config: MapChartConfigDomainToApi(c.Config),
	}
	for _, p := range c.Data {
		res.Data = append(res.Data, api.ChartPoint{X: p.X, Y: p.Y, Group: p.Group})
	}
	return res
}

func MapTableDataDomainToApi(t domain.TableData) api.TableData {
	res := api.TableData{
		ID:      t.ID,
		Title:   t.Title,
		Headers: t.Headers,
		Rows:    make([][]any, 0, len(t.Rows)),
		Totals:  t.Totals,
	}
	for _, row := range t.Rows {
		cells := make([]any, len(row))
		for i, cell := range row {
			cells[i] = mapCellValue(cell)
		}
		res.Rows = append(res.Rows, cells)
	}
	return res
}

// mapCellValue normalizes cell values for the wire: times become
// YYYY-MM-DD strings, everything else passes through.
func mapCellValue(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.Format(dateLayout)
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.Format(dateLayout)
	case fmt.Stringer:
		return t.String()
	default:
		return v
	}
}

func MapReportDataDomainToApi(r domain.ReportData) api.ReportData {
	res := api.ReportData{
		Summary: r.Summary,
		Charts:  make([]api.ChartData, 0, len(r.Charts)),
		Tables:  make([]api.TableData, 0, len(r.Tables)),
		Metadata: api.ReportMetadata{
			GeneratedAt:  r.Metadata.GeneratedAt,
			TotalRecords: r.Metadata.TotalRecords,
			DateRange:    r.Metadata.DateRange,
			Template:     r.Metadata.Template,
		},
	}
	for _, c := range r.Charts {
		res.Charts = append(res.Charts, MapChartDataDomainToApi(c))
	}
	for _, t := range r.Tables {
		res.Tables = append(res.Tables, MapTableDataDomainToApi(t))
	}
	return res
}
