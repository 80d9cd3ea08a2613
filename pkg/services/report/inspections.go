package report

import (
	"context"

	"github.com/fleet-tools/fleet-atlas/pkg/models/domain"
	"github.com/fleet-tools/fleet-atlas/pkg/store/fleet"
)

// fetchInspectionFailures emits one row per failed checklist item, so
// an inspection with three failed items yields three rows.
func fetchInspectionFailures(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	inspections, err := store.ListInspections(ctx, q)
	if err != nil {
		return Records{}, err
	}
	var rows []Row
	for _, ins := range inspections {
		for _, item := range ins.Items {
			if item.Passed {
				continue
			}
			rows = append(rows, Row{
				"vehicleName":    ins.VehicleName,
				"inspectionDate": fmtDate(ins.Date),
				"itemName":       item.Name,
				"failureReason":  item.FailureReason,
				"inspector":      ins.Inspector,
				"location":       ins.Location,
			})
		}
	}
	return listRecords(rows), nil
}

func fetchInspectionSchedules(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	schedules, err := store.ListInspectionSchedules(ctx, q)
	if err != nil {
		return Records{}, err
	}
	rows := make([]Row, 0, len(schedules))
	for _, s := range schedules {
		rows = append(rows, Row{
			"vehicleName":   s.VehicleName,
			"templateName":  s.TemplateName,
			"scheduledDate": fmtDate(s.ScheduledDate),
			"status":        s.Status,
			"inspector":     s.Inspector,
			"location":      s.Location,
		})
	}
	return listRecords(rows), nil
}

func fetchInspectionSubmissions(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	inspections, err := store.ListInspections(ctx, q)
	if err != nil {
		return Records{}, err
	}
	rows := make([]Row, 0, len(inspections))
	for _, ins := range inspections {
		rows = append(rows, Row{
			"vehicleName":      ins.VehicleName,
			"inspectionDate":   fmtDate(ins.Date),
			"templateName":     ins.TemplateName,
			"inspector":        ins.Inspector,
			"complianceStatus": ins.ComplianceStatus,
			"overallScore":     ins.OverallScore,
		})
	}
	return listRecords(rows), nil
}

func fetchInspectionSummary(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	inspections, err := store.ListInspections(ctx, q)
	if err != nil {
		return Records{}, err
	}
	var passed int
	var scoreSum float64
	for _, ins := range inspections {
		if ins.ComplianceStatus == domain.ComplianceCompliant {
			passed++
		}
		scoreSum += ins.OverallScore
	}
	avgScore := 0.0
	if len(inspections) > 0 {
		avgScore = scoreSum / float64(len(inspections))
	}
	return aggregateRecord(Row{
		"totalInspections":  len(inspections),
		"passedInspections": passed,
		"failedInspections": len(inspections) - passed,
		"complianceRate":    percentOf(float64(passed), float64(len(inspections))),
		"averageScore":      round2(avgScore),
	}), nil
}
