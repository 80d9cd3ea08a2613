package domain

import "time"

// Vehicle is a fleet unit. Monetary values share whatever currency the
// owning account uses; the engine never converts.
type Vehicle struct {
	ID                         string
	UserID                     string
	Name                       string
	Make                       string
	Model                      string
	Year                       int
	VIN                        string
	Type                       string
	Status                     string
	Group                      string
	MeterReading               float64
	PurchasePrice              float64
	EstimatedServiceLifeMonths int
	InServiceDate              *time.Time
	InServiceOdometer          float64
}

const (
	VehicleStatusActive      = "ACTIVE"
	VehicleStatusMaintenance = "MAINTENANCE"
	VehicleStatusInactive    = "INACTIVE"
)

type FuelEntry struct {
	ID          string
	VehicleID   string
	VehicleName string
	Date        time.Time
	Volume      float64
	Cost        float64
	Usage       float64 // meters driven since the previous fill-up
	MPG         float64
	Vendor      string
	Location    string
}

type ServicePart struct {
	PartNumber  string
	Description string
	Quantity    float64
	UnitCost    float64
	TotalCost   float64
}

type ServiceEntry struct {
	ID              string
	VehicleID       string
	VehicleName     string
	Date            time.Time
	Task            string
	Category        string
	Status          string
	Vendor          string
	TotalCost       float64
	Parts           []ServicePart
	IsWorkOrder     bool
	WorkOrderNumber string
	Priority        string
	AssignedTo      string
	ScheduledDate   *time.Time
	CompletionDate  *time.Time
	Rating          float64
}

type ExpenseEntry struct {
	ID          string
	VehicleID   string
	VehicleName string
	Date        time.Time
	Type        string
	Vendor      string
	Amount      float64
	Notes       string
}

type ChargingEntry struct {
	ID        string
	VehicleID string
	Date      time.Time
	EnergyKWh float64
	Cost      float64
}

type MeterEntry struct {
	ID          string
	VehicleID   string
	VehicleName string
	Date        time.Time
	Value       float64
	Void        bool
	Source      string
}

type Issue struct {
	ID           string
	VehicleID    string
	VehicleName  string
	Title        string
	FaultCode    string
	Description  string
	Status       string
	Priority     string
	Severity     string
	AssignedTo   string
	ReportedDate time.Time
}

type InspectionItem struct {
	Name          string
	Passed        bool
	FailureReason string
}

// Inspection is one submitted inspection form.
type Inspection struct {
	ID               string
	VehicleID        string
	VehicleName      string
	Date             time.Time
	TemplateName     string
	Inspector        string
	Location         string
	ComplianceStatus string
	OverallScore     float64
	Items            []InspectionItem
}

const (
	ComplianceCompliant    = "COMPLIANT"
	ComplianceNonCompliant = "NON_COMPLIANT"
)

type InspectionSchedule struct {
	ID            string
	VehicleID     string
	VehicleName   string
	TemplateName  string
	ScheduledDate time.Time
	Status        string
	Inspector     string
	Location      string
}

// ServiceReminder tracks a recurring service task. CompletionDate is
// nil while the task is still open.
type ServiceReminder struct {
	ID             string
	VehicleID      string
	VehicleName    string
	Task           string
	DueDate        *time.Time
	CompletionDate *time.Time
}

type Contact struct {
	ID             string
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Company        string
	JobTitle       string
	Status         string
	Classification string
}

type ContactRenewal struct {
	ID          string
	ContactName string
	RenewalType string
	DueDate     time.Time
	Status      string
}

type VehicleChangeKind string

const (
	ChangeKindGroup  VehicleChangeKind = "group"
	ChangeKindStatus VehicleChangeKind = "status"
)

// VehicleChange is one audit-log row recording a group or status
// transition on a vehicle.
type VehicleChange struct {
	ID          string
	VehicleID   string
	VehicleName string
	Kind        VehicleChangeKind
	ChangeDate  time.Time
	OldValue    string
	NewValue    string
	Reason      string
}

// PartUsage is a service-entry part joined with its vehicle.
type PartUsage struct {
	VehicleName string
	PartNumber  string
	Description string
	Quantity    float64
	UnitCost    float64
	TotalCost   float64
	ServiceDate time.Time
}

// RevenueEntry is one billable-usage row of the revenue ledger.
type RevenueEntry struct {
	ID          string
	VehicleID   string
	VehicleName string
	Date        time.Time
	Amount      float64
	Source      string
}

// VehicleActivity is a vehicle with its cost and meter sub-records
// eager-loaded for a date range. MeterEntries are ordered by date
// ascending.
type VehicleActivity struct {
	Vehicle
	FuelEntries     []FuelEntry
	ServiceEntries  []ServiceEntry
	Expenses        []ExpenseEntry
	ChargingEntries []ChargingEntry
	MeterEntries    []MeterEntry
}
