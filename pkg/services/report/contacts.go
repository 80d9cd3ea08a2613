package report

import (
	"context"
	"strings"

	"github.com/fleet-tools/fleet-atlas/pkg/models/domain"
	"github.com/fleet-tools/fleet-atlas/pkg/store/fleet"
)

// renewalPriority classifies a renewal by how close its due date is:
// overdue or due within a week "Urgente", within a month "Haute".
func renewalPriority(daysRemaining int) string {
	switch {
	case daysRemaining <= 7:
		return "Urgente"
	case daysRemaining <= 30:
		return "Haute"
	default:
		return "Normale"
	}
}

// fetchContactRenewals lists renewal reminders. Days remaining are
// counted from the end of the reporting range so the report stays
// reproducible.
func fetchContactRenewals(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	renewals, err := store.ListContactRenewals(ctx, q)
	if err != nil {
		return Records{}, err
	}
	rows := make([]Row, 0, len(renewals))
	for _, r := range renewals {
		remaining := daysBetween(q.End, r.DueDate)
		if r.DueDate.Before(q.End) {
			remaining = -daysBetween(r.DueDate, q.End)
		}
		rows = append(rows, Row{
			"contactName":   r.ContactName,
			"renewalType":   r.RenewalType,
			"dueDate":       fmtDate(r.DueDate),
			"status":        r.Status,
			"daysRemaining": remaining,
			"priority":      renewalPriority(remaining),
		})
	}
	return listRecords(rows), nil
}

func fetchContactsList(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	contacts, err := store.ListContacts(ctx, q)
	if err != nil {
		return Records{}, err
	}
	rows := make([]Row, 0, len(contacts))
	for _, c := range contacts {
		rows = append(rows, Row{
			"name":           strings.TrimSpace(c.FirstName + " " + c.LastName),
			"email":          c.Email,
			"phone":          c.Phone,
			"company":        c.Company,
			"jobTitle":       c.JobTitle,
			"status":         c.Status,
			"classification": c.Classification,
		})
	}
	return listRecords(rows), nil
}

func fetchPartsByVehicle(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	usage, err := store.ListPartUsage(ctx, q)
	if err != nil {
		return Records{}, err
	}
	rows := make([]Row, 0, len(usage))
	for _, u := range usage {
		rows = append(rows, Row{
			"vehicleName": u.VehicleName,
			"partNumber":  u.PartNumber,
			"description": u.Description,
			"quantity":    u.Quantity,
			"unitCost":    u.UnitCost,
			"totalCost":   u.TotalCost,
			"serviceDate": fmtDate(u.ServiceDate),
		})
	}
	return listRecords(rows), nil
}
