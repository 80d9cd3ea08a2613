package report

import (
	"context"
	"sort"
	"time"

	"github.com/fleet-tools/fleet-atlas/pkg/models/domain"
	"github.com/fleet-tools/fleet-atlas/pkg/store/fleet"
)

// fetchFaultsSummary groups issues carrying a fault code by code and
// vehicle. Issues without a code are left out; they surface through
// the issues list instead.
func fetchFaultsSummary(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	issues, err := store.ListIssues(ctx, q)
	if err != nil {
		return Records{}, err
	}
	type key struct {
		code      string
		vehicleID string
	}
	type agg struct {
		description string
		vehicleName string
		severity    string
		count       int
		last        time.Time
	}
	byFault := map[key]*agg{}
	for _, i := range issues {
		if i.FaultCode == "" {
			continue
		}
		k := key{code: i.FaultCode, vehicleID: i.VehicleID}
		a, ok := byFault[k]
		if !ok {
			a = &agg{description: i.Description, vehicleName: i.VehicleName, severity: i.Severity}
			byFault[k] = a
		}
		a.count++
		if i.ReportedDate.After(a.last) {
			a.last = i.ReportedDate
			a.severity = i.Severity
		}
	}
	rows := make([]Row, 0, len(byFault))
	for k, a := range byFault {
		rows = append(rows, Row{
			"faultCode":      k.code,
			"description":    a.description,
			"vehicleName":    a.vehicleName,
			"count":          a.count,
			"severity":       a.severity,
			"lastOccurrence": fmtDate(a.last),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i]["faultCode"] != rows[j]["faultCode"] {
			return rows[i]["faultCode"].(string) < rows[j]["faultCode"].(string)
		}
		return rows[i]["vehicleName"].(string) < rows[j]["vehicleName"].(string)
	})
	return listRecords(rows), nil
}

func fetchIssuesList(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	issues, err := store.ListIssues(ctx, q)
	if err != nil {
		return Records{}, err
	}
	rows := make([]Row, 0, len(issues))
	for _, i := range issues {
		rows = append(rows, Row{
			"vehicleName":  i.VehicleName,
			"issueTitle":   i.Title,
			"status":       i.Status,
			"priority":     i.Priority,
			"assignedTo":   i.AssignedTo,
			"reportedDate": fmtDate(i.ReportedDate),
		})
	}
	return listRecords(rows), nil
}
