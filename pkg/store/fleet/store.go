package fleet

import (
	"context"
	"time"

	"github.com/fleet-tools/fleet-atlas/pkg/models/domain"
)

// Query scopes a store read. UserID is mandatory; a zero Start/End
// leaves that bound open. ID and category lists narrow the result when
// non-empty. Date bounds are inclusive.
type Query struct {
	UserID     string
	Start      time.Time
	End        time.Time
	VehicleIDs []string
	VendorIDs  []string
	Categories []string
}

// Store is the read-only record store the reporting engine runs
// against. Schema ownership lives with the back-office application;
// this interface only describes the reads the engine needs.
type Store interface {
	ListVehicles(ctx context.Context, q Query) ([]domain.Vehicle, error)
	ListVehicleActivity(ctx context.Context, q Query) ([]domain.VehicleActivity, error)
	ListFuelEntries(ctx context.Context, q Query) ([]domain.FuelEntry, error)
	ListServiceEntries(ctx context.Context, q Query) ([]domain.ServiceEntry, error)
	ListExpenseEntries(ctx context.Context, q Query) ([]domain.ExpenseEntry, error)
	ListMeterEntries(ctx context.Context, q Query) ([]domain.MeterEntry, error)
	ListIssues(ctx context.Context, q Query) ([]domain.Issue, error)
	ListInspections(ctx context.Context, q Query) ([]domain.Inspection, error)
	ListInspectionSchedules(ctx context.Context, q Query) ([]domain.InspectionSchedule, error)
	ListServiceReminders(ctx context.Context, q Query) ([]domain.ServiceReminder, error)
	ListContacts(ctx context.Context, q Query) ([]domain.Contact, error)
	ListContactRenewals(ctx context.Context, q Query) ([]domain.ContactRenewal, error)
	ListVehicleChanges(ctx context.Context, q Query, kind domain.VehicleChangeKind) ([]domain.VehicleChange, error)
	ListPartUsage(ctx context.Context, q Query) ([]domain.PartUsage, error)
	ListRevenueEntries(ctx context.Context, q Query) ([]domain.RevenueEntry, error)
}
