package report

import (
	"strings"

	"github.com/fleet-tools/fleet-atlas/pkg/models/domain"
)

// buildCharts projects records onto a template's chart configs. Count
// series are tallied per distinct x value; every other series takes
// its y values straight from the rows. Summary-style templates carry
// one aggregate row, so their charts are derived from it separately.
func buildCharts(t domain.ReportTemplate, recs Records) []domain.ChartData {
	if len(t.Charts) == 0 {
		return nil
	}
	charts := make([]domain.ChartData, 0, len(t.Charts))
	for _, cfg := range t.Charts {
		var points []domain.ChartPoint
		switch {
		case recs.Aggregate:
			points = aggregateChartPoints(t.Template, recs)
		case cfg.Aggregation == domain.AggCount:
			points = countPoints(recs.Rows, cfg.XField)
		default:
			points = projectPoints(recs.Rows, cfg)
		}
		charts = append(charts, domain.ChartData{
			ID:     cfg.ID,
			Type:   cfg.Type,
			Title:  cfg.Title,
			Data:   points,
			Config: cfg,
		})
	}
	return charts
}

func projectPoints(rows []Row, cfg domain.ChartConfig) []domain.ChartPoint {
	points := make([]domain.ChartPoint, 0, len(rows))
	for _, row := range rows {
		x, ok := row[cfg.XField]
		if !ok {
			continue
		}
		p := domain.ChartPoint{X: x, Y: row[cfg.YField]}
		if cfg.GroupField != "" {
			p.Group = row[cfg.GroupField]
		}
		points = append(points, p)
	}
	return points
}

func countPoints(rows []Row, xField string) []domain.ChartPoint {
	counts := map[any]int{}
	var order []any
	for _, row := range rows {
		x, ok := row[xField]
		if !ok {
			continue
		}
		if _, seen := counts[x]; !seen {
			order = append(order, x)
		}
		counts[x]++
	}
	points := make([]domain.ChartPoint, 0, len(order))
	for _, x := range order {
		points = append(points, domain.ChartPoint{X: x, Y: counts[x]})
	}
	return points
}

// aggregateChartPoints expands a summary row into the distribution its
// chart shows. Only the two summary templates carry charts.
func aggregateChartPoints(templateKey string, recs Records) []domain.ChartPoint {
	if len(recs.Rows) == 0 {
		return nil
	}
	row := recs.Rows[0]
	switch templateKey {
	case TemplateVehicleSummary:
		return []domain.ChartPoint{
			{X: domain.VehicleStatusActive, Y: row["activeVehicles"]},
			{X: domain.VehicleStatusMaintenance, Y: row["maintenanceVehicles"]},
			{X: domain.VehicleStatusInactive, Y: row["inactiveVehicles"]},
		}
	case TemplateInspectionSummary:
		return []domain.ChartPoint{
			{X: domain.ComplianceCompliant, Y: row["passedInspections"]},
			{X: domain.ComplianceNonCompliant, Y: row["failedInspections"]},
		}
	default:
		return nil
	}
}

// buildTables renders records into a template's table configs. Cell
// order follows the configured columns; number and currency columns
// get a totals row.
func buildTables(t domain.ReportTemplate, recs Records) []domain.TableData {
	if len(t.Tables) == 0 {
		return nil
	}
	tables := make([]domain.TableData, 0, len(t.Tables))
	for _, cfg := range t.Tables {
		headers := make([]string, len(cfg.Columns))
		numeric := make([]bool, len(cfg.Columns))
		hasNumeric := false
		for i, col := range cfg.Columns {
			headers[i] = col.Title
			if col.Type == domain.ColumnNumber || col.Type == domain.ColumnCurrency {
				numeric[i] = true
				hasNumeric = true
			}
		}
		rows := make([][]any, 0, len(recs.Rows))
		var totals map[string]float64
		if hasNumeric {
			totals = make(map[string]float64)
		}
		for _, rec := range recs.Rows {
			cells := make([]any, len(cfg.Columns))
			for i, col := range cfg.Columns {
				cells[i] = rec[col.Key]
				if numeric[i] {
					if v, ok := asFloat(rec[col.Key]); ok {
						totals[col.Key] += v
					}
				}
			}
			rows = append(rows, cells)
		}
		tables = append(tables, domain.TableData{
			ID:      cfg.ID,
			Title:   cfg.Title,
			Headers: headers,
			Rows:    rows,
			Totals:  totals,
		})
	}
	return tables
}

// buildSummary derives a report summary from the records: the record
// count, plus a total<Field> sum for every numeric field of the rows.
// A single aggregate row is merged in as-is, and the fuel and service
// cost summaries carry averages a plain field sum cannot express.
func buildSummary(templateKey string, recs Records) map[string]any {
	summary := map[string]any{
		"totalRecords": len(recs.Rows),
	}
	if recs.Aggregate && len(recs.Rows) > 0 {
		summary["totalRecords"] = 1
		for k, v := range recs.Rows[0] {
			summary[k] = v
		}
		return summary
	}
	switch templateKey {
	case TemplateFuelSummary:
		return fuelSummaryFields(recs.Rows, summary)
	case TemplateServiceCostSummary:
		return serviceCostSummaryFields(recs.Rows, summary)
	}
	if len(recs.Rows) == 0 {
		return summary
	}
	for field, v := range recs.Rows[0] {
		if _, ok := asFloat(v); !ok {
			continue
		}
		var sum float64
		for _, row := range recs.Rows {
			if f, ok := asFloat(row[field]); ok {
				sum += f
			}
		}
		summary["total"+strings.ToUpper(field[:1])+field[1:]] = round2(sum)
	}
	return summary
}

func fuelSummaryFields(rows []Row, summary map[string]any) map[string]any {
	var volume, cost, mpgSum float64
	mpgN := 0
	for _, row := range rows {
		if v, ok := asFloat(row["totalVolume"]); ok {
			volume += v
		}
		if v, ok := asFloat(row["totalCost"]); ok {
			cost += v
		}
		if v, ok := asFloat(row["averageMPG"]); ok && v > 0 {
			mpgSum += v
			mpgN++
		}
	}
	summary["totalVolume"] = round2(volume)
	summary["totalCost"] = round2(cost)
	avgMPG := 0.0
	if mpgN > 0 {
		avgMPG = mpgSum / float64(mpgN)
	}
	summary["averageMPG"] = round2(avgMPG)
	avgPrice := 0.0
	if volume > 0 {
		avgPrice = cost / volume
	}
	summary["averagePrice"] = round2(avgPrice)
	return summary
}

func serviceCostSummaryFields(rows []Row, summary map[string]any) map[string]any {
	var total, labor, parts float64
	count := 0
	for _, row := range rows {
		if v, ok := asFloat(row["totalCost"]); ok {
			total += v
		}
		if v, ok := asFloat(row["laborCost"]); ok {
			labor += v
		}
		if v, ok := asFloat(row["partsCost"]); ok {
			parts += v
		}
		if v, ok := asFloat(row["serviceCount"]); ok {
			count += int(v)
		}
	}
	summary["totalCost"] = round2(total)
	summary["totalLaborCost"] = round2(labor)
	summary["totalPartsCost"] = round2(parts)
	summary["totalServices"] = count
	avgCost := 0.0
	if count > 0 {
		avgCost = total / float64(count)
	}
	summary["averageCost"] = round2(avgCost)
	return summary
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
