package report

import (
	"context"
	"sort"
	"time"

	"github.com/fleet-tools/fleet-atlas/pkg/models/domain"
	"github.com/fleet-tools/fleet-atlas/pkg/store/fleet"
)

// activityCost sums every cost stream of one vehicle's activity window.
func activityCost(a domain.VehicleActivity) float64 {
	var total float64
	for _, f := range a.FuelEntries {
		total += f.Cost
	}
	for _, s := range a.ServiceEntries {
		total += s.TotalCost
	}
	for _, e := range a.Expenses {
		total += e.Amount
	}
	for _, c := range a.ChargingEntries {
		total += c.Cost
	}
	return total
}

// latestMeterReading is the last non-void reading of the window;
// MeterEntries arrive ordered by date ascending.
func latestMeterReading(entries []domain.MeterEntry) float64 {
	var last float64
	for _, m := range entries {
		if !m.Void {
			last = m.Value
		}
	}
	return last
}

// metersInService is the distance accumulated since the vehicle went
// into service, up to the latest reading of the window.
func metersInService(a domain.VehicleActivity) float64 {
	span := latestMeterReading(a.MeterEntries) - a.InServiceOdometer
	if span <= 0 {
		return 0
	}
	return span
}

func fetchVehicleCostComparison(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	activities, err := store.ListVehicleActivity(ctx, q)
	if err != nil {
		return Records{}, err
	}
	rows := make([]Row, 0, len(activities))
	for _, a := range activities {
		totalCost := activityCost(a)
		totalMeters := metersInService(a)
		yearInService := 1
		if a.InServiceDate != nil {
			yearInService = q.End.Year() - a.InServiceDate.Year() + 1
			if yearInService < 1 {
				yearInService = 1
			}
		}
		rows = append(rows, Row{
			"vehicleName":   a.Name,
			"vehicleId":     a.ID,
			"year":          a.Year,
			"yearInService": yearInService,
			"totalCost":     round2(totalCost),
			"totalMeters":   round2(totalMeters),
			"costPerMeter":  round2(costPerMeter(totalCost, totalMeters)),
			"make":          a.Make,
			"model":         a.Model,
			"type":          a.Type,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i]["vehicleName"].(string) < rows[j]["vehicleName"].(string) })
	return listRecords(rows), nil
}

func fetchCostMeterTrend(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	activities, err := store.ListVehicleActivity(ctx, q)
	if err != nil {
		return Records{}, err
	}
	type bucket struct {
		cost   float64
		meters float64
		mpgSum float64
		mpgN   int
	}
	var rows []Row
	for _, a := range activities {
		months := map[string]*bucket{}
		get := func(t time.Time) *bucket {
			k := monthKey(t)
			b, ok := months[k]
			if !ok {
				b = &bucket{}
				months[k] = b
			}
			return b
		}
		for _, f := range a.FuelEntries {
			b := get(f.Date)
			b.cost += f.Cost
			if f.MPG > 0 {
				b.mpgSum += f.MPG
				b.mpgN++
			}
		}
		for _, s := range a.ServiceEntries {
			get(s.Date).cost += s.TotalCost
		}
		for _, e := range a.Expenses {
			get(e.Date).cost += e.Amount
		}
		for _, c := range a.ChargingEntries {
			get(c.Date).cost += c.Cost
		}
		prev := -1.0
		for _, m := range a.MeterEntries {
			if m.Void {
				continue
			}
			if prev >= 0 && m.Value > prev {
				get(m.Date).meters += m.Value - prev
			}
			prev = m.Value
		}
		for k, b := range months {
			mpg := 0.0
			if b.mpgN > 0 {
				mpg = b.mpgSum / float64(b.mpgN)
			}
			rows = append(rows, Row{
				"date":         k,
				"vehicleName":  a.Name,
				"costPerMeter": round2(costPerMeter(b.cost, b.meters)),
				"totalCost":    round2(b.cost),
				"metersDriven": round2(b.meters),
				"mpg":          round2(mpg),
			})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i]["date"] != rows[j]["date"] {
			return rows[i]["date"].(string) < rows[j]["date"].(string)
		}
		return rows[i]["vehicleName"].(string) < rows[j]["vehicleName"].(string)
	})
	return listRecords(rows), nil
}

func fetchExpenseSummary(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	expenses, err := store.ListExpenseEntries(ctx, q)
	if err != nil {
		return Records{}, err
	}
	type agg struct {
		total float64
		count int
	}
	byType := map[string]*agg{}
	for _, e := range expenses {
		t := e.Type
		if t == "" {
			t = "Non spécifié"
		}
		a, ok := byType[t]
		if !ok {
			a = &agg{}
			byType[t] = a
		}
		a.total += e.Amount
		a.count++
	}
	rows := make([]Row, 0, len(byType))
	for t, a := range byType {
		rows = append(rows, Row{
			"expenseType":   t,
			"totalAmount":   round2(a.total),
			"count":         a.count,
			"averageAmount": round2(a.total / float64(a.count)),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i]["expenseType"].(string) < rows[j]["expenseType"].(string) })
	return listRecords(rows), nil
}

func fetchVehicleExpenses(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	expenses, err := store.ListExpenseEntries(ctx, q)
	if err != nil {
		return Records{}, err
	}
	rows := make([]Row, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, Row{
			"vehicleName": e.VehicleName,
			"date":        fmtDate(e.Date),
			"type":        e.Type,
			"vendor":      e.Vendor,
			"amount":      e.Amount,
			"notes":       e.Notes,
		})
	}
	return listRecords(rows), nil
}

func fetchGroupChanges(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	return fetchVehicleChanges(ctx, store, q, domain.ChangeKindGroup, "oldGroup", "newGroup")
}

func fetchStatusChanges(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	return fetchVehicleChanges(ctx, store, q, domain.ChangeKindStatus, "oldStatus", "newStatus")
}

func fetchVehicleChanges(ctx context.Context, store fleet.Store, q fleet.Query, kind domain.VehicleChangeKind, oldKey, newKey string) (Records, error) {
	changes, err := store.ListVehicleChanges(ctx, q, kind)
	if err != nil {
		return Records{}, err
	}
	rows := make([]Row, 0, len(changes))
	for _, c := range changes {
		rows = append(rows, Row{
			"vehicleName": c.VehicleName,
			"changeDate":  fmtDate(c.ChangeDate),
			oldKey:        c.OldValue,
			newKey:        c.NewValue,
			"reason":      c.Reason,
		})
	}
	return listRecords(rows), nil
}

func fetchUtilization(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	activities, err := store.ListVehicleActivity(ctx, q)
	if err != nil {
		return Records{}, err
	}
	totalDays := daysBetween(q.Start, q.End)
	rows := make([]Row, 0, len(activities))
	for _, a := range activities {
		activeDays := 0
		for _, m := range a.MeterEntries {
			if !m.Void {
				activeDays++
			}
		}
		meters := latestMeterReading(a.MeterEntries)
		avgDaily := 0.0
		if totalDays > 0 {
			avgDaily = meters / float64(totalDays)
		}
		rows = append(rows, Row{
			"vehicleName":       a.Name,
			"totalDays":         totalDays,
			"activeDays":        activeDays,
			"utilizationRate":   utilizationRate(activeDays, totalDays),
			"totalMeters":       round2(meters),
			"averageDailyUsage": round2(avgDaily),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i]["vehicleName"].(string) < rows[j]["vehicleName"].(string) })
	return listRecords(rows), nil
}

func fetchMeterHistory(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	entries, err := store.ListMeterEntries(ctx, q)
	if err != nil {
		return Records{}, err
	}
	prev := map[string]float64{}
	var rows []Row
	for _, m := range entries {
		if m.Void {
			continue
		}
		driven := 0.0
		if p, ok := prev[m.VehicleID]; ok && m.Value > p {
			driven = m.Value - p
		}
		prev[m.VehicleID] = m.Value
		rows = append(rows, Row{
			"date":         fmtDate(m.Date),
			"vehicleName":  m.VehicleName,
			"meterReading": m.Value,
			"metersDriven": round2(driven),
			"source":       m.Source,
		})
	}
	return listRecords(rows), nil
}

func fetchVehicleList(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	vehicles, err := store.ListVehicles(ctx, q)
	if err != nil {
		return Records{}, err
	}
	rows := make([]Row, 0, len(vehicles))
	for _, v := range vehicles {
		rows = append(rows, Row{
			"name":         v.Name,
			"make":         v.Make,
			"model":        v.Model,
			"year":         v.Year,
			"vin":          v.VIN,
			"type":         v.Type,
			"status":       v.Status,
			"meterReading": v.MeterReading,
		})
	}
	return listRecords(rows), nil
}

func fetchVehicleProfitability(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	activities, err := store.ListVehicleActivity(ctx, q)
	if err != nil {
		return Records{}, err
	}
	revenues, err := store.ListRevenueEntries(ctx, q)
	if err != nil {
		return Records{}, err
	}
	revenueByVehicle := map[string]float64{}
	for _, r := range revenues {
		revenueByVehicle[r.VehicleID] += r.Amount
	}
	rows := make([]Row, 0, len(activities))
	for _, a := range activities {
		costs := activityCost(a)
		revenue := revenueByVehicle[a.ID]
		profit := revenue - costs
		rows = append(rows, Row{
			"vehicleName":   a.Name,
			"purchasePrice": a.PurchasePrice,
			"totalRevenue":  round2(revenue),
			"totalCosts":    round2(costs),
			"profitability": round2(profit),
			"roi":           percentOf(profit, a.PurchasePrice),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i]["vehicleName"].(string) < rows[j]["vehicleName"].(string) })
	return listRecords(rows), nil
}

func fetchVehicleSummary(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	vehicles, err := store.ListVehicles(ctx, q)
	if err != nil {
		return Records{}, err
	}
	var active, maintenance, inactive int
	var ageSum, totalValue float64
	for _, v := range vehicles {
		switch v.Status {
		case domain.VehicleStatusActive:
			active++
		case domain.VehicleStatusMaintenance:
			maintenance++
		case domain.VehicleStatusInactive:
			inactive++
		}
		if v.Year > 0 {
			ageSum += float64(q.End.Year() - v.Year)
		}
		totalValue += v.PurchasePrice
	}
	avgAge := 0.0
	if len(vehicles) > 0 {
		avgAge = ageSum / float64(len(vehicles))
	}
	return aggregateRecord(Row{
		"totalVehicles":       len(vehicles),
		"activeVehicles":      active,
		"maintenanceVehicles": maintenance,
		"inactiveVehicles":    inactive,
		"averageAge":          round2(avgAge),
		"totalValue":          round2(totalValue),
	}), nil
}

func fetchFuelEconomy(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	entries, err := store.ListFuelEntries(ctx, q)
	if err != nil {
		return Records{}, err
	}
	type agg struct {
		name     string
		mpgSum   float64
		mpgN     int
		volume   float64
		distance float64
	}
	byVehicle := map[string]*agg{}
	for _, f := range entries {
		a, ok := byVehicle[f.VehicleID]
		if !ok {
			a = &agg{name: f.VehicleName}
			byVehicle[f.VehicleID] = a
		}
		if f.MPG > 0 {
			a.mpgSum += f.MPG
			a.mpgN++
		}
		a.volume += f.Volume
		a.distance += f.Usage
	}
	rows := make([]Row, 0, len(byVehicle))
	for _, a := range byVehicle {
		avgMPG := 0.0
		if a.mpgN > 0 {
			avgMPG = a.mpgSum / float64(a.mpgN)
		}
		rows = append(rows, Row{
			"vehicleName":          a.name,
			"averageMPG":           round2(avgMPG),
			"totalFuelConsumed":    round2(a.volume),
			"totalDistance":        round2(a.distance),
			"fuelEfficiencyRating": fuelEfficiencyRating(avgMPG),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i]["vehicleName"].(string) < rows[j]["vehicleName"].(string) })
	return listRecords(rows), nil
}

func fetchReplacementAnalysis(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	vehicles, err := store.ListVehicles(ctx, q)
	if err != nil {
		return Records{}, err
	}
	rows := make([]Row, 0, len(vehicles))
	for _, v := range vehicles {
		inServiceYear := v.Year
		currentAge := 0.0
		if v.InServiceDate != nil {
			inServiceYear = v.InServiceDate.Year()
			currentAge = q.End.Sub(*v.InServiceDate).Hours() / 24 / 365
		} else if v.Year > 0 {
			currentAge = float64(q.End.Year() - v.Year)
		}
		expectedLife := expectedLifeYears(v.EstimatedServiceLifeMonths)
		estimatedCost := v.PurchasePrice
		if estimatedCost <= 0 {
			estimatedCost = defaultListPrice
		}
		rows = append(rows, Row{
			"vehicleName":     v.Name,
			"currentAge":      round2(currentAge),
			"expectedLife":    round2(expectedLife),
			"replacementYear": inServiceYear + int(expectedLife),
			"estimatedCost":   estimatedCost,
			"priority":        replacementPriority(currentAge, expectedLife),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i]["vehicleName"].(string) < rows[j]["vehicleName"].(string) })
	return listRecords(rows), nil
}

func fetchCostsVsBudget(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	activities, err := store.ListVehicleActivity(ctx, q)
	if err != nil {
		return Records{}, err
	}
	days := daysBetween(q.Start, q.End)
	rows := make([]Row, 0, len(activities))
	for _, a := range activities {
		budget := annualBudget(a.PurchasePrice) * float64(days) / 365
		actual := activityCost(a)
		variance := actual - budget
		status := "Sous-budget"
		if variance > 0 {
			status = "Dépassement"
		}
		rows = append(rows, Row{
			"vehicleName":     a.Name,
			"budgetedAmount":  round2(budget),
			"actualAmount":    round2(actual),
			"variance":        round2(variance),
			"variancePercent": round2(variancePercent(variance, budget)),
			"status":          status,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i]["vehicleName"].(string) < rows[j]["vehicleName"].(string) })
	return listRecords(rows), nil
}
