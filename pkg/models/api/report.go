package api

import "time"

// DateRange carries report period bounds as YYYY-MM-DD strings.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type ReportConfig struct {
	DateRange      DateRange      `json:"dateRange"`
	Filters        map[string]any `json:"filters,omitempty"`
	GroupBy        string         `json:"groupBy,omitempty"`
	SortBy         string         `json:"sortBy,omitempty"`
	VehicleIDs     []string       `json:"vehicleIds,omitempty"`
	VendorIDs      []string       `json:"vendorIds,omitempty"`
	Categories     []string       `json:"categories,omitempty"`
	IncludeCharts  bool           `json:"includeCharts,omitempty"`
	IncludeSummary bool           `json:"includeSummary,omitempty"`
}

type GenerateReportRequest struct {
	Template string       `json:"template"`
	Config   ReportConfig `json:"config"`
}

type CustomReportRequest struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Config      ReportConfig `json:"config"`
}

type ChartConfig struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	XField      string `json:"xField"`
	YField      string `json:"yField"`
	GroupField  string `json:"groupField,omitempty"`
	Aggregation string `json:"aggregation,omitempty"`
}

type TableColumn struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

type TableConfig struct {
	ID      string        `json:"id"`
	Title   string        `json:"title"`
	Columns []TableColumn `json:"columns"`
}

type ReportTemplate struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	Template    string        `json:"template"`
	Charts      []ChartConfig `json:"charts,omitempty"`
	Tables      []TableConfig `json:"tables,omitempty"`
}

type ChartPoint struct {
	X     any `json:"x"`
	Y     any `json:"y"`
	Group any `json:"group,omitempty"`
}

type ChartData struct {
	ID     string       `json:"id"`
	Type   string       `json:"type"`
	Title  string       `json:"title"`
	Data   []ChartPoint `json:"data"`
	Config ChartConfig  `json:"config"`
}

type TableData struct {
	ID      string             `json:"id"`
	Title   string             `json:"title"`
	Headers []string           `json:"headers"`
	Rows    [][]any            `json:"rows"`
	Totals  map[string]float64 `json:"totals,omitempty"`
}

type ReportMetadata struct {
	GeneratedAt  time.Time `json:"generatedAt"`
	TotalRecords int       `json:"totalRecords"`
	DateRange    string    `json:"dateRange"`
	Template     string    `json:"template"`
}

type ReportData struct {
	Summary  map[string]any `json:"summary,omitempty"`
	Charts   []ChartData    `json:"charts"`
	Tables   []TableData    `json:"tables"`
	Metadata ReportMetadata `json:"metadata"`
}
