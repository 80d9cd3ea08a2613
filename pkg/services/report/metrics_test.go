package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCostPerMeter(t *testing.T) {
	assert.Equal(t, 2.5, costPerMeter(250, 100))
	assert.Equal(t, 0.0, costPerMeter(250, 0))
	assert.Equal(t, 0.0, costPerMeter(250, -10))
}

func TestUtilizationRate(t *testing.T) {
	assert.Equal(t, "50.0%", utilizationRate(15, 30))
	assert.Equal(t, "100.0%", utilizationRate(30, 30))
	assert.Equal(t, "0%", utilizationRate(10, 0))
	assert.Equal(t, "0.0%", utilizationRate(0, 30))
}

func TestFuelEfficiencyRating(t *testing.T) {
	assert.Equal(t, "Excellent", fuelEfficiencyRating(26))
	assert.Equal(t, "Excellent", fuelEfficiencyRating(25.01))
	assert.Equal(t, "Bon", fuelEfficiencyRating(25))
	assert.Equal(t, "Bon", fuelEfficiencyRating(21))
	assert.Equal(t, "À améliorer", fuelEfficiencyRating(20))
	assert.Equal(t, "À améliorer", fuelEfficiencyRating(15))
	assert.Equal(t, "À améliorer", fuelEfficiencyRating(0))
}

func TestReplacementPriority(t *testing.T) {
	assert.Equal(t, "Urgente", replacementPriority(11, 10))
	assert.Equal(t, "Haute", replacementPriority(10, 10))
	assert.Equal(t, "Haute", replacementPriority(8, 10))
	assert.Equal(t, "Normale", replacementPriority(7.9, 10))
	assert.Equal(t, "Normale", replacementPriority(1, 10))
}

func TestExpectedLifeYears(t *testing.T) {
	assert.Equal(t, 10.0, expectedLifeYears(0))
	assert.Equal(t, 10.0, expectedLifeYears(-6))
	assert.Equal(t, 5.0, expectedLifeYears(60))
}

func TestAnnualBudget(t *testing.T) {
	assert.Equal(t, 4000.0, annualBudget(40000))
	// unknown purchase price falls back to the default list price
	assert.Equal(t, 2500.0, annualBudget(0))
}

func TestVariancePercent(t *testing.T) {
	assert.Equal(t, 50.0, variancePercent(500, 1000))
	assert.Equal(t, 0.0, variancePercent(500, 0))
}

func TestPercentOf(t *testing.T) {
	assert.Equal(t, "25.0%", percentOf(25, 100))
	assert.Equal(t, "0%", percentOf(25, 0))
}

func TestDaysLate(t *testing.T) {
	due := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	onTime := due.AddDate(0, 0, -1)
	late := due.AddDate(0, 0, 5)

	assert.Equal(t, 0, daysLate(&due, &onTime))
	assert.Equal(t, 0, daysLate(&due, &due))
	assert.Equal(t, 5, daysLate(&due, &late))
	assert.Equal(t, 0, daysLate(nil, &late))
	assert.Equal(t, 0, daysLate(&due, nil))
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 30, daysBetween(start, start.AddDate(0, 0, 30)))
	assert.Equal(t, 0, daysBetween(start, start))
	assert.Equal(t, 0, daysBetween(start, start.AddDate(0, 0, -1)))
	// partial days round up
	assert.Equal(t, 1, daysBetween(start, start.Add(6*time.Hour)))
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2025-03", monthKey(time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)))
}
