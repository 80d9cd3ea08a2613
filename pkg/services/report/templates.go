package report

import "github.com/fleet-tools/fleet-atlas/pkg/models/domain"

// Dispatch keys for every report template shipped with the engine.
const (
	TemplateVehicleCostComparison = "vehicle-cost-comparison"
	TemplateVehicleCostMeterTrend = "vehicle-cost-meter-trend"
	TemplateVehicleExpenseSummary = "vehicle-expense-summary"
	TemplateVehicleExpenses       = "vehicle-expenses-vehicle"
	TemplateVehicleGroupChanges   = "vehicle-group-changes"
	TemplateVehicleStatusChanges  = "vehicle-status-changes"
	TemplateVehicleUtilization    = "vehicle-utilization-summary"
	TemplateVehicleMeterHistory   = "vehicle-meter-history"
	TemplateVehicleList           = "vehicle-list"
	TemplateVehicleProfitability  = "vehicle-profitability"
	TemplateVehicleSummary        = "vehicle-summary"
	TemplateVehicleFuelEconomy    = "vehicle-fuel-economy"
	TemplateVehicleReplacement    = "vehicle-replacement-analysis"
	TemplateVehicleCostsVsBudget  = "vehicle-costs-vs-budget"

	TemplateServiceCategorization = "service-maintenance-categorization"
	TemplateServiceEntriesSummary = "service-entries-summary"
	TemplateServiceHistory        = "service-history-by-vehicle"
	TemplateServiceCompliance     = "service-reminder-compliance"
	TemplateServiceCostSummary    = "service-cost-summary"
	TemplateServiceProviders      = "service-provider-performance"
	TemplateServiceLaborVsParts   = "service-labor-vs-parts"
	TemplateServiceWorkOrders     = "service-work-order-summary"

	TemplateFuelEntries    = "fuel-entries-by-vehicle"
	TemplateFuelSummary    = "fuel-summary"
	TemplateFuelByLocation = "fuel-summary-by-location"

	TemplateIssuesFaults = "issues-faults-summary"
	TemplateIssuesList   = "issues-list"

	TemplateInspectionFailures    = "inspection-failures"
	TemplateInspectionSchedules   = "inspection-schedules"
	TemplateInspectionSubmissions = "inspection-submissions"
	TemplateInspectionSummary     = "inspection-summary"

	TemplateContactRenewals = "contact-renewal-reminders"
	TemplateContactsList    = "contacts-list"

	TemplatePartsByVehicle = "parts-by-vehicle"
)

// Template categories.
const (
	CategoryVehicles    = "Vehicles"
	CategoryService     = "Service"
	CategoryFuel        = "Fuel"
	CategoryIssues      = "Issues"
	CategoryInspections = "Inspections"
	CategoryContacts    = "Contacts"
	CategoryParts       = "Parts"
)

func withCharts() domain.ReportConfig {
	return domain.ReportConfig{IncludeCharts: true, IncludeSummary: true}
}

func tablesOnly() domain.ReportConfig {
	return domain.ReportConfig{IncludeSummary: true}
}

// defaultTemplates returns the built-in catalog. The slice and
// everything in it is created fresh per call so callers can never
// mutate shared state.
func defaultTemplates() []domain.ReportTemplate {
	return []domain.ReportTemplate{
		// Vehicles
		{
			ID:          "cost-comparison",
			Name:        "Cost Comparison by Year in Service",
			Category:    CategoryVehicles,
			Description: "Analysis of total vehicle costs per meter based on when in the vehicle's life costs occurred.",
			Template:    TemplateVehicleCostComparison,
			Config:      withCharts(),
			Charts: []domain.ChartConfig{
				{ID: "cost-trend", Type: domain.ChartLine, Title: "Cost per Meter Trend", XField: "year", YField: "costPerMeter", Aggregation: domain.AggAvg},
			},
			Tables: []domain.TableConfig{
				{ID: "vehicle-costs", Title: "Vehicle Cost Analysis", Columns: []domain.TableColumn{
					{Key: "vehicleName", Title: "Vehicle", Type: domain.ColumnString},
					{Key: "yearInService", Title: "Year in Service", Type: domain.ColumnNumber},
					{Key: "totalCost", Title: "Total Cost", Type: domain.ColumnCurrency},
					{Key: "costPerMeter", Title: "Cost per Meter", Type: domain.ColumnCurrency},
					{Key: "totalMeters", Title: "Total Meters", Type: domain.ColumnNumber},
				}},
			},
		},
		{
			ID:          "cost-meter-trend",
			Name:        "Cost/Meter Trend",
			Category:    CategoryVehicles,
			Description: "Analysis of total vehicle costs per meter over time.",
			Template:    TemplateVehicleCostMeterTrend,
			Config:      withCharts(),
			Charts: []domain.ChartConfig{
				{ID: "cost-trend", Type: domain.ChartLine, Title: "Cost per Meter Over Time", XField: "date", YField: "costPerMeter", Aggregation: domain.AggAvg},
			},
			Tables: []domain.TableConfig{
				{ID: "meter-costs", Title: "Meter Cost Trends", Columns: []domain.TableColumn{
					{Key: "date", Title: "Date", Type: domain.ColumnDate},
					{Key: "vehicleName", Title: "Vehicle", Type: domain.ColumnString},
					{Key: "costPerMeter", Title: "Cost per Meter", Type: domain.ColumnCurrency},
					{Key: "totalCost", Title: "Total Cost", Type: domain.ColumnCurrency},
					{Key: "metersDriven", Title: "Meters Driven", Type: domain.ColumnNumber},
				}},
			},
		},
		{
			ID:          "expense-summary",
			Name:        "Expense Summary",
			Category:    CategoryVehicles,
			Description: "Aggregate expense costs grouped by expense type.",
			Template:    TemplateVehicleExpenseSummary,
			Config:      domain.ReportConfig{GroupBy: "type", IncludeCharts: true, IncludeSummary: true},
			Charts: []domain.ChartConfig{
				{ID: "expense-breakdown", Type: domain.ChartPie, Title: "Expense Breakdown by Type", XField: "expenseType", YField: "totalAmount", Aggregation: domain.AggSum},
			},
			Tables: []domain.TableConfig{
				{ID: "expense-summary", Title: "Expense Summary by Type", Columns: []domain.TableColumn{
					{Key: "expenseType", Title: "Expense Type", Type: domain.ColumnString},
					{Key: "totalAmount", Title: "Total Amount", Type: domain.ColumnCurrency},
					{Key: "count", Title: "Count", Type: domain.ColumnNumber},
					{Key: "averageAmount", Title: "Average Amount", Type: domain.ColumnCurrency},
				}},
			},
		},
		{
			ID:          "expenses-vehicle",
			Name:        "Expenses by Vehicle",
			Category:    CategoryVehicles,
			Description: "Listing of all expense entries by vehicle.",
			Template:    TemplateVehicleExpenses,
			Config:      tablesOnly(),
			Tables: []domain.TableConfig{
				{ID: "vehicle-expenses", Title: "Expenses by Vehicle", Columns: []domain.TableColumn{
					{Key: "vehicleName", Title: "Vehicle", Type: domain.ColumnString},
					{Key: "date", Title: "Date", Type: domain.ColumnDate},
					{Key: "type", Title: "Type", Type: domain.ColumnString},
					{Key: "vendor", Title: "Vendor", Type: domain.ColumnString},
					{Key: "amount", Title: "Amount", Type: domain.ColumnCurrency},
					{Key: "notes", Title: "Notes", Type: domain.ColumnString},
				}},
			},
		},
		{
			ID:          "group-changes",
			Name:        "Group Changes",
			Category:    CategoryVehicles,
			Description: "List updates to every vehicle's group.",
			Template:    TemplateVehicleGroupChanges,
			Config:      domain.ReportConfig{},
			Tables: []domain.TableConfig{
				{ID: "group-changes", Title: "Vehicle Group Changes", Columns: []domain.TableColumn{
					{Key: "vehicleName", Title: "Vehicle", Type: domain.ColumnString},
					{Key: "changeDate", Title: "Change Date", Type: domain.ColumnDate},
					{Key: "oldGroup", Title: "Old Group", Type: domain.ColumnString},
					{Key: "newGroup", Title: "New Group", Type: domain.ColumnString},
					{Key: "reason", Title: "Reason", Type: domain.ColumnString},
				}},
			},
		},
		{
			ID:          "status-changes",
			Name:        "Status Changes",
			Category:    CategoryVehicles,
			Description: "List updates to every vehicle's status.",
			Template:    TemplateVehicleStatusChanges,
			Config:      domain.ReportConfig{},
			Tables: []domain.TableConfig{
				{ID: "status-changes", Title: "Vehicle Status Changes", Columns: []domain.TableColumn{
					{Key: "vehicleName", Title: "Vehicle", Type: domain.ColumnString},
					{Key: "changeDate", Title: "Change Date", Type: domain.ColumnDate},
					{Key: "oldStatus", Title: "Old Status", Type: domain.ColumnString},
					{Key: "newStatus", Title: "New Status", Type: domain.ColumnString},
					{Key: "reason", Title: "Reason", Type: domain.ColumnString},
				}},
			},
		},
		{
			ID:          "utilization-summary",
			Name:        "Utilization Summary",
			Category:    CategoryVehicles,
			Description: "Summary of vehicle utilization metrics.",
			Template:    TemplateVehicleUtilization,
			Config:      withCharts(),
			Charts: []domain.ChartConfig{
				{ID: "utilization-rate", Type: domain.ChartBar, Title: "Vehicle Utilization Rate", XField: "vehicleName", YField: "utilizationRate", Aggregation: domain.AggAvg},
			},
			Tables: []domain.TableConfig{
				{ID: "utilization-metrics", Title: "Vehicle Utilization Metrics", Columns: []domain.TableColumn{
					{Key: "vehicleName", Title: "Vehicle", Type: domain.ColumnString},
					{Key: "totalDays", Title: "Total Days", Type: domain.ColumnNumber},
					{Key: "activeDays", Title: "Active Days", Type: domain.ColumnNumber},
					{Key: "utilizationRate", Title: "Utilization Rate", Type: domain.ColumnString},
					{Key: "totalMeters", Title: "Total Meters", Type: domain.ColumnNumber},
				}},
			},
		},
		{
			ID:          "meter-history",
			Name:        "Meter History Summary",
			Category:    CategoryVehicles,
			Description: "Summary of meter reading history for vehicles.",
			Template:    TemplateVehicleMeterHistory,
			Config:      withCharts(),
			Charts: []domain.ChartConfig{
				{ID: "meter-trend", Type: domain.ChartLine, Title: "Meter Reading Trends", XField: "date", YField: "meterReading", Aggregation: domain.AggMax},
			},
			Tables: []domain.TableConfig{
				{ID: "meter-history", Title: "Meter Reading History", Columns: []domain.TableColumn{
					{Key: "vehicleName", Title: "Vehicle", Type: domain.ColumnString},
					{Key: "date", Title: "Date", Type: domain.ColumnDate},
					{Key: "meterReading", Title: "Meter Reading", Type: domain.ColumnNumber},
					{Key: "metersDriven", Title: "Meters Driven", Type: domain.ColumnNumber},
					{Key: "source", Title: "Source", Type: domain.ColumnString},
				}},
			},
		},
		{
			ID:          "vehicle-list",
			Name:        "Vehicle List",
			Category:    CategoryVehicles,
			Description: "Complete list of all vehicles with key information.",
			Template:    TemplateVehicleList,
			Config:      tablesOnly(),
			Tables: []domain.TableConfig{
				{ID: "vehicle-inventory", Title: "Vehicle Inventory", Columns: []domain.TableColumn{
					{Key: "name", Title: "Vehicle Name", Type: domain.ColumnString},
					{Key: "make", Title: "Make", Type: domain.ColumnString},
					{Key: "model", Title: "Model", Type: domain.ColumnString},
					{Key: "year", Title: "Year", Type: domain.ColumnNumber},
					{Key: "vin", Title: "VIN", Type: domain.ColumnString},
					{Key: "type", Title: "Type", Type: domain.ColumnString},
					{Key: "status", Title: "Status", Type: domain.ColumnString},
					{Key: "meterReading", Title: "Current Meter", Type: domain.ColumnNumber},
				}},
			},
		},
		{
			ID:          "vehicle-profitability",
			Name:        "Vehicle Profitability",
			Category:    CategoryVehicles,
			Description: "Analysis of vehicle profitability and ROI.",
			Template:    TemplateVehicleProfitability,
			Config:      withCharts(),
			Charts: []domain.ChartConfig{
				{ID: "profitability", Type: domain.ChartBar, Title: "Vehicle Profitability", XField: "vehicleName", YField: "profitability", Aggregation: domain.AggSum},
			},
			Tables: []domain.TableConfig{
				{ID: "profitability-analysis", Title: "Vehicle Profitability Analysis", Columns: []domain.TableColumn{
					{Key: "vehicleName", Title: "Vehicle", Type: domain.ColumnString},
					{Key: "purchasePrice", Title: "Purchase Price", Type: domain.ColumnCurrency},
					{Key: "totalRevenue", Title: "Total Revenue", Type: domain.ColumnCurrency},
					{Key: "totalCosts", Title: "Total Costs", Type: domain.ColumnCurrency},
					{Key: "profitability", Title: "Profitability", Type: domain.ColumnCurrency},
					{Key: "roi", Title: "ROI %", Type: domain.ColumnString},
				}},
			},
		},
		{
			ID:          "vehicle-summary",
			Name:        "Vehicle Summary",
			Category:    CategoryVehicles,
			Description: "Overall summary of all vehicles in the fleet.",
			Template:    TemplateVehicleSummary,
			Config:      withCharts(),
			Charts: []domain.ChartConfig{
				{ID: "vehicle-status", Type: domain.ChartPie, Title: "Vehicle Status Distribution", XField: "status", YField: "count", Aggregation: domain.AggCount},
			},
			Tables: []domain.TableConfig{
				{ID: "vehicle-overview", Title: "Vehicle Fleet Overview", Columns: []domain.TableColumn{
					{Key: "totalVehicles", Title: "Total Vehicles", Type: domain.ColumnNumber},
					{Key: "activeVehicles", Title: "Active Vehicles", Type: domain.ColumnNumber},
					{Key: "maintenanceVehicles", Title: "In Maintenance", Type: domain.ColumnNumber},
					{Key: "inactiveVehicles", Title: "Inactive Vehicles", Type: domain.ColumnNumber},
					{Key: "averageAge", Title: "Average Age (Years)", Type: domain.ColumnNumber},
					{Key: "totalValue", Title: "Total Fleet Value", Type: domain.ColumnCurrency},
				}},
			},
		},
		{
			ID:          "fuel-economy",
			Name:        "Fuel Economy Summary",
			Category:    CategoryVehicles,
			Description: "Summary of fuel economy metrics for vehicles.",
			Template:    TemplateVehicleFuelEconomy,
			Config:      withCharts(),
			Charts: []domain.ChartConfig{
				{ID: "fuel-efficiency", Type: domain.ChartBar, Title: "Fuel Efficiency by Vehicle", XField: "vehicleName", YField: "averageMPG", Aggregation: domain.AggAvg},
			},
			Tables: []domain.TableConfig{
				{ID: "fuel-economy", Title: "Fuel Economy Analysis", Columns: []domain.TableColumn{
					{Key: "vehicleName", Title: "Vehicle", Type: domain.ColumnString},
					{Key: "averageMPG", Title: "Average MPG", Type: domain.ColumnNumber},
					{Key: "totalFuelConsumed", Title: "Total Fuel", Type: domain.ColumnNumber},
					{Key: "totalDistance", Title: "Total Distance", Type: domain.ColumnNumber},
					{Key: "fuelEfficiencyRating", Title: "Efficiency Rating", Type: domain.ColumnString},
				}},
			},
		},
		{
			ID:          "replacement-analysis",
			Name:        "Replacement Analysis",
			Category:    CategoryVehicles,
			Description: "Analysis of vehicle replacement needs and timing.",
			Template:    TemplateVehicleReplacement,
			Config:      withCharts(),
			Charts: []domain.ChartConfig{
				{ID: "replacement-timeline", Type: domain.ChartBar, Title: "Vehicles Needing Replacement", XField: "replacementYear", YField: "vehicleCount", Aggregation: domain.AggCount},
			},
			Tables: []domain.TableConfig{
				{ID: "replacement-needs", Title: "Vehicle Replacement Analysis", Columns: []domain.TableColumn{
					{Key: "vehicleName", Title: "Vehicle", Type: domain.ColumnString},
					{Key: "currentAge", Title: "Current Age", Type: domain.ColumnNumber},
					{Key: "expectedLife", Title: "Expected Life", Type: domain.ColumnNumber},
					{Key: "replacementYear", Title: "Replacement Year", Type: domain.ColumnNumber},
					{Key: "estimatedCost", Title: "Estimated Cost", Type: domain.ColumnCurrency},
					{Key: "priority", Title: "Priority", Type: domain.ColumnString},
				}},
			},
		},
		{
			ID:          "vehicle-costs-budget",
			Name:        "Vehicle Costs vs Budget",
			Category:    CategoryVehicles,
			Description: "Comparison of actual vehicle costs against budget.",
			Template:    TemplateVehicleCostsVsBudget,
			Config:      withCharts(),
			Charts: []domain.ChartConfig{
				{ID: "budget-comparison", Type: domain.ChartBar, Title: "Budget Variance by Vehicle", XField: "vehicleName", YField: "variance", Aggregation: domain.AggSum},
			},
			Tables: []domain.TableConfig{
				{ID: "budget-analysis", Title: "Budget vs Actual Analysis", Columns: []domain.TableColumn{
					{Key: "vehicleName", Title: "Vehicle", Type: domain.ColumnString},
					{Key: "budgetedAmount", Title: "Budget", Type: domain.ColumnCurrency},
					{Key: "actualAmount", Title: "Actual", Type: domain.ColumnCurrency},
					{Key: "variance", Title: "Variance", Type: domain.ColumnCurrency},
					{Key: "variancePercent", Title: "Variance %", Type: domain.ColumnNumber},
					{Key: "status", Title: "Status", Type: domain.ColumnString},
				}},
			},
		},

		// Service
		{
			ID:          "maintenance-cat",
			Name:        "Maintenance Categorization Summary",
			Category:    CategoryService,
			Description: "Aggregate service data grouped by maintenance category.",
			Template:    TemplateServiceCategorization,
			Config:      domain.ReportConfig{GroupBy: "category", IncludeCharts: true, IncludeSummary: true},
			Charts: []domain.ChartConfig{
				{ID: "maintenance-breakdown", Type: domain.ChartPie, Title: "Maintenance by Category", XField: "category", YField: "totalCost", Aggregation: domain.AggSum},
			},
			Tables: []domain.TableConfig{
				{ID: "maintenance-categories", Title: "Maintenance Categories", Columns: []domain.TableColumn{
					{Key: "category", Title: "Category", Type: domain.ColumnString},
					{Key: "totalCost", Title: "Total Cost", Type: domain.ColumnCurrency},
					{Key: "count", Title: "Count", Type: domain.ColumnNumber},
					{Key: "averageCost", Title: "Average Cost", Type: domain.ColumnCurrency},
					{Key: "percentage", Title: "Percentage", Type: domain.ColumnString},
				}},
			},
		},
		{
			ID:          "service-entries",
			Name:        "Service Entries Summary",
			Category:    CategoryService,
			Description: "Listing of summarized service history for vehicles.",
			Template:    TemplateServiceEntriesSummary,
			Config:      tablesOnly(),
			Tables: []domain.TableConfig{
				{ID: "service-summary", Title: "Service Entries Summary", Columns: []domain.TableColumn{
					{Key: "vehicleName", Title: "Vehicle", Type: domain.ColumnString},
					{Key: "serviceDate", Title: "Service Date", Type: domain.ColumnDate},
					{Key: "serviceType", Title: "Service Type", Type: domain.ColumnString},
					{Key: "vendor", Title: "Vendor", Type: domain.ColumnString},
					{Key: "totalCost", Title: "Total Cost", Type: domain.ColumnCurrency},
					{Key: "status", Title: "Status", Type: domain.ColumnString},
				}},
			},
		},
		{
			ID:          "service-history",
			Name:        "Service History by Vehicle",
			Category:    CategoryService,
			Description: "Listing of all service by vehicle grouped by entry or task.",
			Template:    TemplateServiceHistory,
			Config:      domain.ReportConfig{},
			Tables: []domain.TableConfig{
				{ID: "vehicle-service-history", Title: "Service History by Vehicle", Columns: []domain.TableColumn{
					{Key: "vehicleName", Title: "Vehicle", Type: domain.ColumnString},
					{Key: "serviceDate", Title: "Service Date", Type: domain.ColumnDate},
					{Key: "task", Title: "Task", Type: domain.ColumnString},
					{Key: "cost", Title: "Cost", Type: domain.ColumnCurrency},
					{Key: "vendor", Title: "Vendor", Type: domain.ColumnString},
					{Key: "status", Title: "Status", Type: domain.ColumnString},
				}},
			},
		},
		{
			ID:          "service-compliance",
			Name:        "Service Reminder Compliance",
			Category:    CategoryService,
			Description: "Shows history of completed service reminders as on time or late.",
			Template:    TemplateServiceCompliance,
			Config:      withCharts(),
			Charts: []domain.ChartConfig{
				{ID: "compliance-rate", Type: domain.ChartBar, Title: "Service Compliance Rate", XField: "period", YField: "complianceRate", Aggregation: domain.AggAvg},
			},
			Tables: []domain.TableConfig{
				{ID: "compliance-analysis", Title: "Service Compliance Analysis", Columns: []domain.TableColumn{
					{Key: "vehicleName", Title: "Vehicle", Type: domain.ColumnString},
					{Key: "task", Title: "Task", Type: domain.ColumnString},
					{Key: "dueDate", Title: "Due Date", Type: domain.ColumnDate},
					{Key: "completionDate", Title: "Completion Date", Type: domain.ColumnDate},
					{Key: "status", Title: "Status", Type: domain.ColumnString},
					{Key: "daysLate", Title: "Days Late", Type: domain.ColumnNumber},
				}},
			},
		},
		{
			ID:          "service-cost-summary",
			Name:        "Service Cost Summary",
			Category:    CategoryService,
			Description: "Summary of service costs by period.",
			Template:    TemplateServiceCostSummary,
			Config:      domain.ReportConfig{GroupBy: "period", IncludeCharts: true, IncludeSummary: true},
			Charts: []domain.ChartConfig{
				{ID: "cost-trend", Type: domain.ChartLine, Title: "Service Cost Trend", XField: "period", YField: "totalCost", Aggregation: domain.AggSum},
			},
			Tables: []domain.TableConfig{
				{ID: "service-costs", Title: "Service Cost Summary", Columns: []domain.TableColumn{
					{Key: "period", Title: "Period", Type: domain.ColumnString},
					{Key: "totalCost", Title: "Total Cost", Type: domain.ColumnCurrency},
					{Key: "laborCost", Title: "Labor Cost", Type: domain.ColumnCurrency},
					{Key: "partsCost", Title: "Parts Cost", Type: domain.ColumnCurrency},
					{Key: "serviceCount", Title: "Service Count", Type: domain.ColumnNumber},
					{Key: "averageCost", Title: "Average Cost", Type: domain.ColumnCurrency},
				}},
			},
		},
		{
			ID:          "service-provider-performance",
			Name:        "Service Provider Performance",
			Category:    CategoryService,
			Description: "Performance metrics for service providers and vendors.",
			Template:    TemplateServiceProviders,
			Config:      withCharts(),
			Charts: []domain.ChartConfig{
				{ID: "provider-rating", Type: domain.ChartBar, Title: "Service Provider Performance", XField: "vendorName", YField: "averageRating", Aggregation: domain.AggAvg},
			},
			Tables: []domain.TableConfig{
				{ID: "provider-metrics", Title: "Service Provider Performance Metrics", Columns: []domain.TableColumn{
					{Key: "vendorName", Title: "Vendor", Type: domain.ColumnString},
					{Key: "totalServices", Title: "Total Services", Type: domain.ColumnNumber},
					{Key: "totalCost", Title: "Total Cost", Type: domain.ColumnCurrency},
					{Key: "averageCost", Title: "Average Cost", Type: domain.ColumnCurrency},
					{Key: "averageRating", Title: "Average Rating", Type: domain.ColumnNumber},
					{Key: "onTimePercentage", Title: "On Time %", Type: domain.ColumnString},
				}},
			},
		},
		{
			ID:          "labor-vs-parts",
			Name:        "Labor vs Parts Summary",
			Category:    CategoryService,
			Description: "Analysis of labor costs versus parts costs in service.",
			Template:    TemplateServiceLaborVsParts,
			Config:      withCharts(),
			Charts: []domain.ChartConfig{
				{ID: "labor-trend", Type: domain.ChartBar, Title: "Labor Cost by Period", XField: "period", YField: "laborCost", Aggregation: domain.AggSum},
				{ID: "parts-trend", Type: domain.ChartBar, Title: "Parts Cost by Period", XField: "period", YField: "partsCost", Aggregation: domain.AggSum},
			},
			Tables: []domain.TableConfig{
				{ID: "labor-parts-analysis", Title: "Labor vs Parts Analysis", Columns: []domain.TableColumn{
					{Key: "period", Title: "Period", Type: domain.ColumnString},
					{Key: "laborCost", Title: "Labor Cost", Type: domain.ColumnCurrency},
					{Key: "partsCost", Title: "Parts Cost", Type: domain.ColumnCurrency},
					{Key: "totalCost", Title: "Total Cost", Type: domain.ColumnCurrency},
					{Key: "laborPercentage", Title: "Labor %", Type: domain.ColumnString},
					{Key: "partsPercentage", Title: "Parts %", Type: domain.ColumnString},
				}},
			},
		},
		{
			ID:          "work-order-summary",
			Name:        "Work Order Summary",
			Category:    CategoryService,
			Description: "Summary of work orders and their completion status.",
			Template:    TemplateServiceWorkOrders,
			Config:      withCharts(),
			Charts: []domain.ChartConfig{
				{ID: "work-order-status", Type: domain.ChartPie, Title: "Work Order Status Distribution", XField: "status", YField: "count", Aggregation: domain.AggCount},
			},
			Tables: []domain.TableConfig{
				{ID: "work-orders", Title: "Work Order Summary", Columns: []domain.TableColumn{
					{Key: "workOrderNumber", Title: "WO Number", Type: domain.ColumnString},
					{Key: "vehicleName", Title: "Vehicle", Type: domain.ColumnString},
					{Key: "priority", Title: "Priority", Type: domain.ColumnString},
					{Key: "status", Title: "Status", Type: domain.ColumnString},
					{Key: "assignedTo", Title: "Assigned To", Type: domain.ColumnString},
					{Key: "totalCost", Title: "Total Cost", Type: domain.ColumnCurrency},
					{Key: "completionDate", Title: "Completion Date", Type: domain.ColumnDate},
				}},
			},
		},

		// Fuel
		{
			ID:          "fuel-entries-vehicle",
			Name:        "Fuel Entries by Vehicle",
			Category:    CategoryFuel,
			Description: "Listing of fuel entries by vehicle.",
			Template:    TemplateFuelEntries,
			Config:      tablesOnly(),
			Tables: []domain.TableConfig{
				{ID: "vehicle-fuel-entries", Title: "Fuel Entries by Vehicle", Columns: []domain.TableColumn{
					{Key: "vehicleName", Title: "Vehicle", Type: domain.ColumnString},
					{Key: "date", Title: "Date", Type: domain.ColumnDate},
					{Key: "volume", Title: "Volume", Type: domain.ColumnNumber},
					{Key: "cost", Title: "Cost", Type: domain.ColumnCurrency},
					{Key: "vendor", Title: "Vendor", Type: domain.ColumnString},
					{Key: "mpg", Title: "MPG", Type: domain.ColumnNumber},
					{Key: "location", Title: "Location", Type: domain.ColumnString},
				}},
			},
		},
		{
			ID:          "fuel-summary",
			Name:        "Fuel Summary",
			Category:    CategoryFuel,
			Description: "Listing of summarized fuel metrics by vehicles.",
			Template:    TemplateFuelSummary,
			Config:      withCharts(),
			Charts: []domain.ChartConfig{
				{ID: "fuel-consumption", Type: domain.ChartBar, Title: "Fuel Consumption by Vehicle", XField: "vehicleName", YField: "totalVolume", Aggregation: domain.AggSum},
			},
			Tables: []domain.TableConfig{
				{ID: "fuel-metrics", Title: "Fuel Summary Metrics", Columns: []domain.TableColumn{
					{Key: "vehicleName", Title: "Vehicle", Type: domain.ColumnString},
					{Key: "totalVolume", Title: "Total Volume", Type: domain.ColumnNumber},
					{Key: "totalCost", Title: "Total Cost", Type: domain.ColumnCurrency},
					{Key: "averageMPG", Title: "Average MPG", Type: domain.ColumnNumber},
					{Key: "averagePrice", Title: "Average Price", Type: domain.ColumnCurrency},
					{Key: "entryCount", Title: "Entry Count", Type: domain.ColumnNumber},
				}},
			},
		},
		{
			ID:          "fuel-summary-location",
			Name:        "Fuel Summary by Location",
			Category:    CategoryFuel,
			Description: "Aggregate fuel volume and price data grouped by location.",
			Template:    TemplateFuelByLocation,
			Config:      domain.ReportConfig{GroupBy: "location", IncludeCharts: true, IncludeSummary: true},
			Charts: []domain.ChartConfig{
				{ID: "fuel-by-location", Type: domain.ChartPie, Title: "Fuel Consumption by Location", XField: "location", YField: "totalVolume", Aggregation: domain.AggSum},
			},
			Tables: []domain.TableConfig{
				{ID: "location-fuel-summary", Title: "Fuel Summary by Location", Columns: []domain.TableColumn{
					{Key: "location", Title: "Location", Type: domain.ColumnString},
					{Key: "totalVolume", Title: "Total Volume", Type: domain.ColumnNumber},
					{Key: "totalCost", Title: "Total Cost", Type: domain.ColumnCurrency},
					{Key: "averagePrice", Title: "Average Price", Type: domain.ColumnCurrency},
					{Key: "entryCount", Title: "Entry Count", Type: domain.ColumnNumber},
					{Key: "marketShare", Title: "Market Share", Type: domain.ColumnString},
				}},
			},
		},

		// Issues
		{
			ID:          "faults-summary",
			Name:        "Faults Summary",
			Category:    CategoryIssues,
			Description: "Listing of summarized fault metrics for particular fault codes and vehicles.",
			Template:    TemplateIssuesFaults,
			Config:      domain.ReportConfig{GroupBy: "faultCode", IncludeCharts: true, IncludeSummary: true},
			Charts: []domain.ChartConfig{
				{ID: "fault-frequency", Type: domain.ChartBar, Title: "Fault Frequency by Code", XField: "faultCode", YField: "count", Aggregation: domain.AggCount},
			},
			Tables: []domain.TableConfig{
				{ID: "faults-analysis", Title: "Faults Summary Analysis", Columns: []domain.TableColumn{
					{Key: "faultCode", Title: "Fault Code", Type: domain.ColumnString},
					{Key: "description", Title: "Description", Type: domain.ColumnString},
					{Key: "vehicleName", Title: "Vehicle", Type: domain.ColumnString},
					{Key: "count", Title: "Occurrences", Type: domain.ColumnNumber},
					{Key: "severity", Title: "Severity", Type: domain.ColumnString},
					{Key: "lastOccurrence", Title: "Last Occurrence", Type: domain.ColumnDate},
				}},
			},
		},
		{
			ID:          "issues-list",
			Name:        "Issues List",
			Category:    CategoryIssues,
			Description: "Lists basic details of all vehicle-related issues.",
			Template:    TemplateIssuesList,
			Config:      tablesOnly(),
			Tables: []domain.TableConfig{
				{ID: "vehicle-issues", Title: "Vehicle Issues List", Columns: []domain.TableColumn{
					{Key: "vehicleName", Title: "Vehicle", Type: domain.ColumnString},
					{Key: "issueTitle", Title: "Issue Title", Type: domain.ColumnString},
					{Key: "status", Title: "Status", Type: domain.ColumnString},
					{Key: "priority", Title: "Priority", Type: domain.ColumnString},
					{Key: "assignedTo", Title: "Assigned To", Type: domain.ColumnString},
					{Key: "reportedDate", Title: "Reported Date", Type: domain.ColumnDate},
				}},
			},
		},

		// Inspections
		{
			ID:          "inspection-failures",
			Name:        "Inspection Failures List",
			Category:    CategoryInspections,
			Description: "Listing of all failed inspection items.",
			Template:    TemplateInspectionFailures,
			Config:      domain.ReportConfig{Filters: map[string]any{"status": "FAILED"}, IncludeSummary: true},
			Tables: []domain.TableConfig{
				{ID: "inspection-failures", Title: "Inspection Failures", Columns: []domain.TableColumn{
					{Key: "vehicleName", Title: "Vehicle", Type: domain.ColumnString},
					{Key: "inspectionDate", Title: "Inspection Date", Type: domain.ColumnDate},
					{Key: "itemName", Title: "Failed Item", Type: domain.ColumnString},
					{Key: "failureReason", Title: "Failure Reason", Type: domain.ColumnString},
					{Key: "inspector", Title: "Inspector", Type: domain.ColumnString},
					{Key: "location", Title: "Location", Type: domain.ColumnString},
				}},
			},
		},
		{
			ID:          "inspection-schedules",
			Name:        "Inspection Schedules",
			Category:    CategoryInspections,
			Description: "Listing of all inspection schedules.",
			Template:    TemplateInspectionSchedules,
			Config:      tablesOnly(),
			Tables: []domain.TableConfig{
				{ID: "inspection-schedule", Title: "Inspection Schedules", Columns: []domain.TableColumn{
					{Key: "vehicleName", Title: "Vehicle", Type: domain.ColumnString},
					{Key: "templateName", Title: "Inspection Template", Type: domain.ColumnString},
					{Key: "scheduledDate", Title: "Scheduled Date", Type: domain.ColumnDate},
					{Key: "status", Title: "Status", Type: domain.ColumnString},
					{Key: "inspector", Title: "Inspector", Type: domain.ColumnString},
					{Key: "location", Title: "Location", Type: domain.ColumnString},
				}},
			},
		},
		{
			ID:          "inspection-submission",
			Name:        "Inspection Submission List",
			Category:    CategoryInspections,
			Description: "Listing of all inspection submissions.",
			Template:    TemplateInspectionSubmissions,
			Config:      tablesOnly(),
			Tables: []domain.TableConfig{
				{ID: "inspection-submissions", Title: "Inspection Submissions", Columns: []domain.TableColumn{
					{Key: "vehicleName", Title: "Vehicle", Type: domain.ColumnString},
					{Key: "inspectionDate", Title: "Inspection Date", Type: domain.ColumnDate},
					{Key: "templateName", Title: "Template", Type: domain.ColumnString},
					{Key: "inspector", Title: "Inspector", Type: domain.ColumnString},
					{Key: "complianceStatus", Title: "Compliance", Type: domain.ColumnString},
					{Key: "overallScore", Title: "Score", Type: domain.ColumnNumber},
				}},
			},
		},
		{
			ID:          "inspection-summary",
			Name:        "Inspection Summary",
			Category:    CategoryInspections,
			Description: "Summary of inspection results and compliance.",
			Template:    TemplateInspectionSummary,
			Config:      withCharts(),
			Charts: []domain.ChartConfig{
				{ID: "compliance-rate", Type: domain.ChartPie, Title: "Compliance Rate", XField: "complianceStatus", YField: "count", Aggregation: domain.AggCount},
			},
			Tables: []domain.TableConfig{
				{ID: "inspection-metrics", Title: "Inspection Summary Metrics", Columns: []domain.TableColumn{
					{Key: "totalInspections", Title: "Total Inspections", Type: domain.ColumnNumber},
					{Key: "passedInspections", Title: "Passed", Type: domain.ColumnNumber},
					{Key: "failedInspections", Title: "Failed", Type: domain.ColumnNumber},
					{Key: "complianceRate", Title: "Compliance Rate", Type: domain.ColumnString},
					{Key: "averageScore", Title: "Average Score", Type: domain.ColumnNumber},
				}},
			},
		},

		// Contacts
		{
			ID:          "contact-renewal",
			Name:        "Contact Renewal Reminders",
			Category:    CategoryContacts,
			Description: "Lists all date based reminders for contacts.",
			Template:    TemplateContactRenewals,
			Config:      tablesOnly(),
			Tables: []domain.TableConfig{
				{ID: "renewal-reminders", Title: "Contact Renewal Reminders", Columns: []domain.TableColumn{
					{Key: "contactName", Title: "Contact", Type: domain.ColumnString},
					{Key: "renewalType", Title: "Renewal Type", Type: domain.ColumnString},
					{Key: "dueDate", Title: "Due Date", Type: domain.ColumnDate},
					{Key: "status", Title: "Status", Type: domain.ColumnString},
					{Key: "daysRemaining", Title: "Days Remaining", Type: domain.ColumnNumber},
					{Key: "priority", Title: "Priority", Type: domain.ColumnString},
				}},
			},
		},
		{
			ID:          "contacts-list",
			Name:        "Contacts List",
			Category:    CategoryContacts,
			Description: "List of all basic contacts information.",
			Template:    TemplateContactsList,
			Config:      tablesOnly(),
			Tables: []domain.TableConfig{
				{ID: "contacts-directory", Title: "Contacts Directory", Columns: []domain.TableColumn{
					{Key: "name", Title: "Name", Type: domain.ColumnString},
					{Key: "email", Title: "Email", Type: domain.ColumnString},
					{Key: "phone", Title: "Phone", Type: domain.ColumnString},
					{Key: "company", Title: "Company", Type: domain.ColumnString},
					{Key: "jobTitle", Title: "Job Title", Type: domain.ColumnString},
					{Key: "status", Title: "Status", Type: domain.ColumnString},
					{Key: "classification", Title: "Classification", Type: domain.ColumnString},
				}},
			},
		},

		// Parts
		{
			ID:          "parts-vehicle",
			Name:        "Parts by Vehicle",
			Category:    CategoryParts,
			Description: "Listing of all parts used on each vehicle.",
			Template:    TemplatePartsByVehicle,
			Config:      tablesOnly(),
			Tables: []domain.TableConfig{
				{ID: "vehicle-parts-usage", Title: "Parts Usage by Vehicle", Columns: []domain.TableColumn{
					{Key: "vehicleName", Title: "Vehicle", Type: domain.ColumnString},
					{Key: "partNumber", Title: "Part Number", Type: domain.ColumnString},
					{Key: "description", Title: "Description", Type: domain.ColumnString},
					{Key: "quantity", Title: "Quantity", Type: domain.ColumnNumber},
					{Key: "unitCost", Title: "Unit Cost", Type: domain.ColumnCurrency},
					{Key: "totalCost", Title: "Total Cost", Type: domain.ColumnCurrency},
					{Key: "serviceDate", Title: "Service Date", Type: domain.ColumnDate},
				}},
			},
		},
	}
}
