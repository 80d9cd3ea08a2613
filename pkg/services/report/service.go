package report

import (
	"context"
	"sort"

	"github.com/fleet-tools/fleet-atlas/pkg/models/domain"
	"github.com/fleet-tools/fleet-atlas/pkg/store/fleet"
)

func partsCost(entry domain.ServiceEntry) float64 {
	var total float64
	for _, p := range entry.Parts {
		total += p.TotalCost
	}
	return total
}

func vendorOrDefault(vendor string) string {
	if vendor == "" {
		return "Non spécifié"
	}
	return vendor
}

func fetchMaintenanceCategorization(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	entries, err := store.ListServiceEntries(ctx, q)
	if err != nil {
		return Records{}, err
	}
	type agg struct {
		total float64
		count int
	}
	byCategory := map[string]*agg{}
	var grandTotal float64
	for _, e := range entries {
		cat := e.Category
		if cat == "" {
			cat = "Non spécifié"
		}
		a, ok := byCategory[cat]
		if !ok {
			a = &agg{}
			byCategory[cat] = a
		}
		a.total += e.TotalCost
		a.count++
		grandTotal += e.TotalCost
	}
	rows := make([]Row, 0, len(byCategory))
	for cat, a := range byCategory {
		rows = append(rows, Row{
			"category":    cat,
			"totalCost":   round2(a.total),
			"count":       a.count,
			"averageCost": round2(a.total / float64(a.count)),
			"percentage":  percentOf(a.total, grandTotal),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i]["category"].(string) < rows[j]["category"].(string) })
	return listRecords(rows), nil
}

func fetchServiceEntriesSummary(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	entries, err := store.ListServiceEntries(ctx, q)
	if err != nil {
		return Records{}, err
	}
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, Row{
			"vehicleName": e.VehicleName,
			"serviceDate": fmtDate(e.Date),
			"serviceType": e.Category,
			"vendor":      vendorOrDefault(e.Vendor),
			"totalCost":   e.TotalCost,
			"status":      e.Status,
		})
	}
	return listRecords(rows), nil
}

func fetchServiceHistory(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	entries, err := store.ListServiceEntries(ctx, q)
	if err != nil {
		return Records{}, err
	}
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, Row{
			"vehicleName": e.VehicleName,
			"serviceDate": fmtDate(e.Date),
			"task":        e.Task,
			"cost":        e.TotalCost,
			"vendor":      vendorOrDefault(e.Vendor),
			"status":      e.Status,
		})
	}
	return listRecords(rows), nil
}

// fetchServiceCompliance classifies completed reminders as on time or
// late. complianceRate is the on-time share of the row's month, so all
// rows of one period carry the same rate.
func fetchServiceCompliance(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	reminders, err := store.ListServiceReminders(ctx, q)
	if err != nil {
		return Records{}, err
	}
	type periodAgg struct {
		onTime int
		total  int
	}
	periods := map[string]*periodAgg{}
	var completed []domain.ServiceReminder
	for _, r := range reminders {
		if r.DueDate == nil || r.CompletionDate == nil {
			continue
		}
		completed = append(completed, r)
		k := monthKey(*r.DueDate)
		p, ok := periods[k]
		if !ok {
			p = &periodAgg{}
			periods[k] = p
		}
		p.total++
		if !r.CompletionDate.After(*r.DueDate) {
			p.onTime++
		}
	}
	rows := make([]Row, 0, len(completed))
	for _, r := range completed {
		k := monthKey(*r.DueDate)
		p := periods[k]
		status := "À temps"
		if r.CompletionDate.After(*r.DueDate) {
			status = "En retard"
		}
		rows = append(rows, Row{
			"vehicleName":    r.VehicleName,
			"task":           r.Task,
			"period":         k,
			"dueDate":        fmtDatePtr(r.DueDate),
			"completionDate": fmtDatePtr(r.CompletionDate),
			"status":         status,
			"complianceRate": percentOf(float64(p.onTime), float64(p.total)),
			"daysLate":       daysLate(r.DueDate, r.CompletionDate),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i]["period"] != rows[j]["period"] {
			return rows[i]["period"].(string) < rows[j]["period"].(string)
		}
		return rows[i]["vehicleName"].(string) < rows[j]["vehicleName"].(string)
	})
	return listRecords(rows), nil
}

func fetchServiceCostSummary(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	entries, err := store.ListServiceEntries(ctx, q)
	if err != nil {
		return Records{}, err
	}
	type agg struct {
		total float64
		parts float64
		count int
	}
	byPeriod := map[string]*agg{}
	for _, e := range entries {
		k := monthKey(e.Date)
		a, ok := byPeriod[k]
		if !ok {
			a = &agg{}
			byPeriod[k] = a
		}
		a.total += e.TotalCost
		a.parts += partsCost(e)
		a.count++
	}
	rows := make([]Row, 0, len(byPeriod))
	for k, a := range byPeriod {
		rows = append(rows, Row{
			"period":       k,
			"totalCost":    round2(a.total),
			"laborCost":    round2(a.total - a.parts),
			"partsCost":    round2(a.parts),
			"serviceCount": a.count,
			"averageCost":  round2(a.total / float64(a.count)),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i]["period"].(string) < rows[j]["period"].(string) })
	return listRecords(rows), nil
}

func fetchServiceProviders(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	entries, err := store.ListServiceEntries(ctx, q)
	if err != nil {
		return Records{}, err
	}
	type agg struct {
		total     float64
		count     int
		ratingSum float64
		ratingN   int
		onTime    int
		dated     int
	}
	byVendor := map[string]*agg{}
	for _, e := range entries {
		vendor := vendorOrDefault(e.Vendor)
		a, ok := byVendor[vendor]
		if !ok {
			a = &agg{}
			byVendor[vendor] = a
		}
		a.total += e.TotalCost
		a.count++
		if e.Rating > 0 {
			a.ratingSum += e.Rating
			a.ratingN++
		}
		if e.ScheduledDate != nil && e.CompletionDate != nil {
			a.dated++
			if !e.CompletionDate.After(*e.ScheduledDate) {
				a.onTime++
			}
		}
	}
	rows := make([]Row, 0, len(byVendor))
	for vendor, a := range byVendor {
		rating := 0.0
		if a.ratingN > 0 {
			rating = a.ratingSum / float64(a.ratingN)
		}
		rows = append(rows, Row{
			"vendorName":       vendor,
			"totalServices":    a.count,
			"totalCost":        round2(a.total),
			"averageCost":      round2(a.total / float64(a.count)),
			"averageRating":    round2(rating),
			"onTimePercentage": percentOf(float64(a.onTime), float64(a.dated)),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i]["vendorName"].(string) < rows[j]["vendorName"].(string) })
	return listRecords(rows), nil
}

func fetchLaborVsParts(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	entries, err := store.ListServiceEntries(ctx, q)
	if err != nil {
		return Records{}, err
	}
	type agg struct {
		total float64
		parts float64
	}
	byPeriod := map[string]*agg{}
	for _, e := range entries {
		k := monthKey(e.Date)
		a, ok := byPeriod[k]
		if !ok {
			a = &agg{}
			byPeriod[k] = a
		}
		a.total += e.TotalCost
		a.parts += partsCost(e)
	}
	rows := make([]Row, 0, len(byPeriod))
	for k, a := range byPeriod {
		labor := a.total - a.parts
		rows = append(rows, Row{
			"period":          k,
			"laborCost":       round2(labor),
			"partsCost":       round2(a.parts),
			"totalCost":       round2(a.total),
			"laborPercentage": percentOf(labor, a.total),
			"partsPercentage": percentOf(a.parts, a.total),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i]["period"].(string) < rows[j]["period"].(string) })
	return listRecords(rows), nil
}

func fetchWorkOrderSummary(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	entries, err := store.ListServiceEntries(ctx, q)
	if err != nil {
		return Records{}, err
	}
	var rows []Row
	for _, e := range entries {
		if !e.IsWorkOrder {
			continue
		}
		rows = append(rows, Row{
			"workOrderNumber": e.WorkOrderNumber,
			"vehicleName":     e.VehicleName,
			"priority":        e.Priority,
			"status":          e.Status,
			"assignedTo":      e.AssignedTo,
			"totalCost":       e.TotalCost,
			"completionDate":  fmtDatePtr(e.CompletionDate),
		})
	}
	return listRecords(rows), nil
}
