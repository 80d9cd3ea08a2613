package report

import (
	"context"
	"sort"

	"github.com/fleet-tools/fleet-atlas/pkg/models/domain"
	"github.com/fleet-tools/fleet-atlas/pkg/store/fleet"
)

// Row is one intermediate record produced by a retriever. Keys match
// the field names declared by the retriever and referenced by the
// template's chart and table configs.
type Row map[string]any

// Records is the output of one retrieval. Aggregate marks
// summary-style templates that produce a single aggregate row; such a
// result counts as one record in the report metadata.
type Records struct {
	Rows      []Row
	Aggregate bool
}

func listRecords(rows []Row) Records {
	return Records{Rows: rows}
}

func aggregateRecord(row Row) Records {
	return Records{Rows: []Row{row}, Aggregate: true}
}

// FetchFunc retrieves and shapes the data of one template. The query
// is already scoped to the caller and the validated date range.
type FetchFunc func(ctx context.Context, store fleet.Store, q fleet.Query, cfg domain.ReportConfig) (Records, error)

type retriever struct {
	fields    []string
	aggregate bool
	fetch     FetchFunc
}

// Registry maps template keys to their retrieval routines. Adding a
// template is a registration here plus a catalog entry; Catalog.Validate
// keeps the two in sync and checks every configured chart/table field
// against the declared field set.
type Registry struct {
	retrievers map[string]retriever
}

// NewRegistry builds the registry with every supported template key.
func NewRegistry() *Registry {
	r := &Registry{retrievers: make(map[string]retriever)}

	// Vehicles
	r.register(TemplateVehicleCostComparison, fetchVehicleCostComparison,
		"vehicleName", "vehicleId", "year", "yearInService", "totalCost", "totalMeters", "costPerMeter", "make", "model", "type")
	r.register(TemplateVehicleCostMeterTrend, fetchCostMeterTrend,
		"date", "vehicleName", "costPerMeter", "totalCost", "metersDriven", "mpg")
	r.register(TemplateVehicleExpenseSummary, fetchExpenseSummary,
		"expenseType", "totalAmount", "count", "averageAmount")
	r.register(TemplateVehicleExpenses, fetchVehicleExpenses,
		"vehicleName", "date", "type", "vendor", "amount", "notes")
	r.register(TemplateVehicleGroupChanges, fetchGroupChanges,
		"vehicleName", "changeDate", "oldGroup", "newGroup", "reason")
	r.register(TemplateVehicleStatusChanges, fetchStatusChanges,
		"vehicleName", "changeDate", "oldStatus", "newStatus", "reason")
	r.register(TemplateVehicleUtilization, fetchUtilization,
		"vehicleName", "totalDays", "activeDays", "utilizationRate", "totalMeters", "averageDailyUsage")
	r.register(TemplateVehicleMeterHistory, fetchMeterHistory,
		"date", "vehicleName", "meterReading", "metersDriven", "source")
	r.register(TemplateVehicleList, fetchVehicleList,
		"name", "make", "model", "year", "vin", "type", "status", "meterReading")
	r.register(TemplateVehicleProfitability, fetchVehicleProfitability,
		"vehicleName", "purchasePrice", "totalRevenue", "totalCosts", "profitability", "roi")
	r.registerAggregate(TemplateVehicleSummary, fetchVehicleSummary,
		"totalVehicles", "activeVehicles", "maintenanceVehicles", "inactiveVehicles", "averageAge", "totalValue")
	r.register(TemplateVehicleFuelEconomy, fetchFuelEconomy,
		"vehicleName", "averageMPG", "totalFuelConsumed", "totalDistance", "fuelEfficiencyRating")
	r.register(TemplateVehicleReplacement, fetchReplacementAnalysis,
		"vehicleName", "currentAge", "expectedLife", "replacementYear", "estimatedCost", "priority")
	r.register(TemplateVehicleCostsVsBudget, fetchCostsVsBudget,
		"vehicleName", "budgetedAmount", "actualAmount", "variance", "variancePercent", "status")

	// Service
	r.register(TemplateServiceCategorization, fetchMaintenanceCategorization,
		"category", "totalCost", "count", "averageCost", "percentage")
	r.register(TemplateServiceEntriesSummary, fetchServiceEntriesSummary,
		"vehicleName", "serviceDate", "serviceType", "vendor", "totalCost", "status")
	r.register(TemplateServiceHistory, fetchServiceHistory,
		"vehicleName", "serviceDate", "task", "cost", "vendor", "status")
	r.register(TemplateServiceCompliance, fetchServiceCompliance,
		"vehicleName", "task", "period", "dueDate", "completionDate", "status", "complianceRate", "daysLate")
	r.register(TemplateServiceCostSummary, fetchServiceCostSummary,
		"period", "totalCost", "laborCost", "partsCost", "serviceCount", "averageCost")
	r.register(TemplateServiceProviders, fetchServiceProviders,
		"vendorName", "totalServices", "totalCost", "averageCost", "averageRating", "onTimePercentage")
	r.register(TemplateServiceLaborVsParts, fetchLaborVsParts,
		"period", "laborCost", "partsCost", "totalCost", "laborPercentage", "partsPercentage")
	r.register(TemplateServiceWorkOrders, fetchWorkOrderSummary,
		"workOrderNumber", "vehicleName", "priority", "status", "assignedTo", "totalCost", "completionDate")

	// Fuel
	r.register(TemplateFuelEntries, fetchFuelEntries,
		"vehicleName", "date", "volume", "cost", "vendor", "mpg", "location")
	r.register(TemplateFuelSummary, fetchFuelSummary,
		"vehicleName", "totalVolume", "totalCost", "averageMPG", "averagePrice", "entryCount")
	r.register(TemplateFuelByLocation, fetchFuelByLocation,
		"location", "totalVolume", "totalCost", "averagePrice", "entryCount", "marketShare")

	// Issues
	r.register(TemplateIssuesFaults, fetchFaultsSummary,
		"faultCode", "description", "vehicleName", "count", "severity", "lastOccurrence")
	r.register(TemplateIssuesList, fetchIssuesList,
		"vehicleName", "issueTitle", "status", "priority", "assignedTo", "reportedDate")

	// Inspections
	r.register(TemplateInspectionFailures, fetchInspectionFailures,
		"vehicleName", "inspectionDate", "itemName", "failureReason", "inspector", "location")
	r.register(TemplateInspectionSchedules, fetchInspectionSchedules,
		"vehicleName", "templateName", "scheduledDate", "status", "inspector", "location")
	r.register(TemplateInspectionSubmissions, fetchInspectionSubmissions,
		"vehicleName", "inspectionDate", "templateName", "inspector", "complianceStatus", "overallScore")
	r.registerAggregate(TemplateInspectionSummary, fetchInspectionSummary,
		"totalInspections", "passedInspections", "failedInspections", "complianceRate", "averageScore")

	// Contacts
	r.register(TemplateContactRenewals, fetchContactRenewals,
		"contactName", "renewalType", "dueDate", "status", "daysRemaining", "priority")
	r.register(TemplateContactsList, fetchContactsList,
		"name", "email", "phone", "company", "jobTitle", "status", "classification")

	// Parts
	r.register(TemplatePartsByVehicle, fetchPartsByVehicle,
		"vehicleName", "partNumber", "description", "quantity", "unitCost", "totalCost", "serviceDate")

	return r
}

func (r *Registry) register(key string, fn FetchFunc, fields ...string) {
	r.retrievers[key] = retriever{fields: fields, fetch: fn}
}

func (r *Registry) registerAggregate(key string, fn FetchFunc, fields ...string) {
	r.retrievers[key] = retriever{fields: fields, aggregate: true, fetch: fn}
}

// Fetch dispatches to the routine registered for the template key.
func (r *Registry) Fetch(ctx context.Context, store fleet.Store, key string, q fleet.Query, cfg domain.ReportConfig) (Records, error) {
	rt, ok := r.retrievers[key]
	if !ok {
		return Records{}, &TemplateNotFoundError{Template: key}
	}
	return rt.fetch(ctx, store, q, cfg)
}

// Fields returns the field set a template's rows carry, and whether the
// template produces a single aggregate row.
func (r *Registry) Fields(key string) (fields []string, aggregate, ok bool) {
	rt, found := r.retrievers[key]
	if !found {
		return nil, false, false
	}
	return rt.fields, rt.aggregate, true
}

// Keys lists every registered template key, sorted.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.retrievers))
	for k := range r.retrievers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
