package report

import (
	"context"
	"sort"

	"github.com/fleet-tools/fleet-atlas/pkg/models/domain"
	"github.com/fleet-tools/fleet-atlas/pkg/store/fleet"
)

func fetchFuelEntries(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	entries, err := store.ListFuelEntries(ctx, q)
	if err != nil {
		return Records{}, err
	}
	rows := make([]Row, 0, len(entries))
	for _, f := range entries {
		rows = append(rows, Row{
			"vehicleName": f.VehicleName,
			"date":        fmtDate(f.Date),
			"volume":      f.Volume,
			"cost":        f.Cost,
			"vendor":      vendorOrDefault(f.Vendor),
			"mpg":         f.MPG,
			"location":    f.Location,
		})
	}
	return listRecords(rows), nil
}

func fetchFuelSummary(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	entries, err := store.ListFuelEntries(ctx, q)
	if err != nil {
		return Records{}, err
	}
	type agg struct {
		name   string
		volume float64
		cost   float64
		mpgSum float64
		mpgN   int
		count  int
	}
	byVehicle := map[string]*agg{}
	for _, f := range entries {
		a, ok := byVehicle[f.VehicleID]
		if !ok {
			a = &agg{name: f.VehicleName}
			byVehicle[f.VehicleID] = a
		}
		a.volume += f.Volume
		a.cost += f.Cost
		if f.MPG > 0 {
			a.mpgSum += f.MPG
			a.mpgN++
		}
		a.count++
	}
	rows := make([]Row, 0, len(byVehicle))
	for _, a := range byVehicle {
		avgMPG := 0.0
		if a.mpgN > 0 {
			avgMPG = a.mpgSum / float64(a.mpgN)
		}
		avgPrice := 0.0
		if a.volume > 0 {
			avgPrice = a.cost / a.volume
		}
		rows = append(rows, Row{
			"vehicleName":  a.name,
			"totalVolume":  round2(a.volume),
			"totalCost":    round2(a.cost),
			"averageMPG":   round2(avgMPG),
			"averagePrice": round2(avgPrice),
			"entryCount":   a.count,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i]["vehicleName"].(string) < rows[j]["vehicleName"].(string) })
	return listRecords(rows), nil
}

func fetchFuelByLocation(ctx context.Context, store fleet.Store, q fleet.Query, _ domain.ReportConfig) (Records, error) {
	entries, err := store.ListFuelEntries(ctx, q)
	if err != nil {
		return Records{}, err
	}
	type agg struct {
		volume float64
		cost   float64
		count  int
	}
	byLocation := map[string]*agg{}
	var totalVolume float64
	for _, f := range entries {
		loc := f.Location
		if loc == "" {
			loc = "Non spécifié"
		}
		a, ok := byLocation[loc]
		if !ok {
			a = &agg{}
			byLocation[loc] = a
		}
		a.volume += f.Volume
		a.cost += f.Cost
		a.count++
		totalVolume += f.Volume
	}
	rows := make([]Row, 0, len(byLocation))
	for loc, a := range byLocation {
		avgPrice := 0.0
		if a.volume > 0 {
			avgPrice = a.cost / a.volume
		}
		rows = append(rows, Row{
			"location":     loc,
			"totalVolume":  round2(a.volume),
			"totalCost":    round2(a.cost),
			"averagePrice": round2(avgPrice),
			"entryCount":   a.count,
			"marketShare":  percentOf(a.volume, totalVolume),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i]["location"].(string) < rows[j]["location"].(string) })
	return listRecords(rows), nil
}
