package domain

import "time"

// DateRange bounds a report period. Both ends are inclusive.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ReportConfig is the caller-supplied configuration for one report
// generation call. The engine treats it as immutable.
type ReportConfig struct {
	DateRange      DateRange
	Filters        map[string]any
	GroupBy        string
	SortBy         string
	VehicleIDs     []string
	VendorIDs      []string
	Categories     []string
	IncludeCharts  bool
	IncludeSummary bool
}

// CustomReportConfig names an ad-hoc report built without a template.
type CustomReportConfig struct {
	ReportConfig
	Name        string
	Description string
}

type ChartType string

const (
	ChartLine ChartType = "line"
	ChartBar  ChartType = "bar"
	ChartPie  ChartType = "pie"
	ChartArea ChartType = "area"
)

type Aggregation string

const (
	AggSum   Aggregation = "sum"
	AggAvg   Aggregation = "avg"
	AggCount Aggregation = "count"
	AggMax   Aggregation = "max"
	AggMin   Aggregation = "min"
)

// ChartConfig declares one chart of a template. Series values come
// pre-aggregated from retrieval, except count series which the chart
// builder tallies per x value.
type ChartConfig struct {
	ID          string
	Type        ChartType
	Title       string
	XField      string
	YField      string
	GroupField  string
	Aggregation Aggregation
}

type ColumnType string

const (
	ColumnString   ColumnType = "string"
	ColumnNumber   ColumnType = "number"
	ColumnDate     ColumnType = "date"
	ColumnCurrency ColumnType = "currency"
)

type TableColumn struct {
	Key      string
	Title    string
	Type     ColumnType
	Sortable bool
	Format   string
}

type TableConfig struct {
	ID      string
	Title   string
	Columns []TableColumn
	GroupBy string
	SortBy  string
}

// ReportTemplate is one entry of the static template catalog.
// Template is the dispatch key resolved by the retriever registry.
type ReportTemplate struct {
	ID          string
	Name        string
	Category    string
	Description string
	Template    string
	Config      ReportConfig
	Charts      []ChartConfig
	Tables      []TableConfig
}

// ChartPoint is one projected data point of a chart.
type ChartPoint struct {
	X     any
	Y     any
	Group any
}

type ChartData struct {
	ID     string
	Type   ChartType
	Title  string
	Data   []ChartPoint
	Config ChartConfig
}

// TableData holds one rendered table. Totals is nil unless at least one
// column has type number or currency.
type TableData struct {
	ID      string
	Title   string
	Headers []string
	Rows    [][]any
	Totals  map[string]float64
}

type ReportMetadata struct {
	GeneratedAt  time.Time
	TotalRecords int
	DateRange    string
	Template     string
}

// ReportData is the assembled output of one generation call.
type ReportData struct {
	Summary  map[string]any
	Charts   []ChartData
	Tables   []TableData
	Metadata ReportMetadata
}
