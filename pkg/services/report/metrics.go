package report

import (
	"fmt"
	"math"
	"time"
)

// Heuristics shared by the fetch routines. Every helper tolerates zero
// denominators and missing dates; per-record math never raises.
const (
	defaultServiceLifeYears = 10
	defaultListPrice        = 25000.0
	annualBudgetRate        = 0.10
)

// costPerMeter divides the accumulated cost by the meters covered,
// returning 0 when no distance was recorded.
func costPerMeter(totalCost, totalMeters float64) float64 {
	if totalMeters <= 0 {
		return 0
	}
	return totalCost / totalMeters
}

// utilizationRate renders activeDays/totalDays as a percentage string,
// "0%" when the period is empty.
func utilizationRate(activeDays, totalDays int) string {
	if totalDays <= 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(activeDays)/float64(totalDays)*100)
}

// fuelEfficiencyRating grades an average MPG. The thresholds are
// strict: exactly 25 is "Bon", exactly 20 is "À améliorer".
func fuelEfficiencyRating(avgMPG float64) string {
	switch {
	case avgMPG > 25:
		return "Excellent"
	case avgMPG > 20:
		return "Bon"
	default:
		return "À améliorer"
	}
}

// replacementPriority classifies a vehicle against its expected life
// in years: past it "Urgente", within two years "Haute", otherwise
// "Normale".
func replacementPriority(currentAge, expectedLife float64) string {
	switch {
	case currentAge > expectedLife:
		return "Urgente"
	case currentAge >= expectedLife-2:
		return "Haute"
	default:
		return "Normale"
	}
}

// expectedLifeYears converts a vehicle's declared service life to
// years, falling back to the fleet default.
func expectedLifeYears(serviceLifeMonths int) float64 {
	if serviceLifeMonths <= 0 {
		return defaultServiceLifeYears
	}
	return float64(serviceLifeMonths) / 12
}

// annualBudget estimates a yearly cost budget as a fixed share of the
// purchase price, substituting a default list price when unknown.
func annualBudget(purchasePrice float64) float64 {
	if purchasePrice <= 0 {
		purchasePrice = defaultListPrice
	}
	return purchasePrice * annualBudgetRate
}

// variancePercent relates a budget variance to its budget, 0 when the
// budget itself is 0.
func variancePercent(variance, budget float64) float64 {
	if budget == 0 {
		return 0
	}
	return variance / budget * 100
}

// percentOf renders part/total as a percentage string, "0%" guarded.
func percentOf(part, total float64) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", part/total*100)
}

// daysLate counts the days a completion overshot its due date; 0 when
// on time or when either date is missing.
func daysLate(due, completed *time.Time) int {
	if due == nil || completed == nil {
		return 0
	}
	if !completed.After(*due) {
		return 0
	}
	return int(completed.Sub(*due).Hours() / 24)
}

// daysBetween is the whole number of days in [start, end], rounded up.
func daysBetween(start, end time.Time) int {
	if !end.After(start) {
		return 0
	}
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// monthKey buckets a date as YYYY-MM for trend-style templates.
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

// fmtDate renders a date the way table cells and chart axes carry it.
func fmtDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// fmtDatePtr renders an optional date, empty when absent.
func fmtDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return fmtDate(*t)
}

// round2 trims float noise on monetary and ratio values.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
