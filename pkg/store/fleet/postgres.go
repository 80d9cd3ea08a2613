package fleet

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fleet-tools/fleet-atlas/pkg/models/domain"
	"github.com/lib/pq"
)

// PostgresStore reads fleet records from the back-office Postgres
// database. All access is read-only.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) (*PostgresStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &PostgresStore{db: db}, nil
}

// filters accumulates WHERE conditions with positional placeholders.
// Each expr must contain a single %d for the placeholder index.
type filters struct {
	conds []string
	args  []any
}

func (f *filters) add(expr string, arg any) {
	f.args = append(f.args, arg)
	f.conds = append(f.conds, fmt.Sprintf(expr, len(f.args)))
}

func (f *filters) where() string {
	if len(f.conds) == 0 {
		return ""
	}
	clause := " WHERE " + f.conds[0]
	for _, c := range f.conds[1:] {
		clause += " AND " + c
	}
	return clause
}

func scopeFilters(q Query, dateCol, vehicleCol string) *filters {
	f := &filters{}
	f.add("user_id = $%d", q.UserID)
	if dateCol != "" && !q.Start.IsZero() {
		f.add(dateCol+" >= $%d", q.Start)
	}
	if dateCol != "" && !q.End.IsZero() {
		f.add(dateCol+" <= $%d", q.End)
	}
	if vehicleCol != "" && len(q.VehicleIDs) > 0 {
		f.add(vehicleCol+" = ANY($%d)", pq.Array(q.VehicleIDs))
	}
	return f
}

func (s *PostgresStore) ListVehicles(ctx context.Context, q Query) ([]domain.Vehicle, error) {
	f := scopeFilters(q, "", "id")
	query := `
		SELECT id, user_id, name, make, model, year, vin, type, status, vehicle_group,
		       meter_reading, purchase_price, estimated_service_life_months,
		       in_service_date, in_service_odometer
		FROM vehicles` + f.where() + ` ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query, f.args...)
	if err != nil {
		return nil, fmt.Errorf("query vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		var inService sql.NullTime
		err := rows.Scan(&v.ID, &v.UserID, &v.Name, &v.Make, &v.Model, &v.Year, &v.VIN,
			&v.Type, &v.Status, &v.Group, &v.MeterReading, &v.PurchasePrice,
			&v.EstimatedServiceLifeMonths, &inService, &v.InServiceOdometer)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		if inService.Valid {
			t := inService.Time
			v.InServiceDate = &t
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

// ListVehicleActivity eager-loads cost and meter sub-records for every
// vehicle in scope. Sub-records are fetched with one composite query
// per entity and grouped in memory.
func (s *PostgresStore) ListVehicleActivity(ctx context.Context, q Query) ([]domain.VehicleActivity, error) {
	vehicles, err := s.ListVehicles(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(vehicles) == 0 {
		return nil, nil
	}

	fuel, err := s.ListFuelEntries(ctx, q)
	if err != nil {
		return nil, err
	}
	services, err := s.ListServiceEntries(ctx, q)
	if err != nil {
		return nil, err
	}
	expenses, err := s.ListExpenseEntries(ctx, q)
	if err != nil {
		return nil, err
	}
	charging, err := s.listChargingEntries(ctx, q)
	if err != nil {
		return nil, err
	}
	meters, err := s.ListMeterEntries(ctx, q)
	if err != nil {
		return nil, err
	}

	byVehicle := make(map[string]*domain.VehicleActivity, len(vehicles))
	activity := make([]domain.VehicleActivity, len(vehicles))
	for i, v := range vehicles {
		activity[i] = domain.VehicleActivity{Vehicle: v}
		byVehicle[v.ID] = &activity[i]
	}
	for _, e := range fuel {
		if a, ok := byVehicle[e.VehicleID]; ok {
			a.FuelEntries = append(a.FuelEntries, e)
		}
	}
	for _, e := range services {
		if a, ok := byVehicle[e.VehicleID]; ok {
			a.ServiceEntries = append(a.ServiceEntries, e)
		}
	}
	for _, e := range expenses {
		if a, ok := byVehicle[e.VehicleID]; ok {
			a.Expenses = append(a.Expenses, e)
		}
	}
	for _, e := range charging {
		if a, ok := byVehicle[e.VehicleID]; ok {
			a.ChargingEntries = append(a.ChargingEntries, e)
		}
	}
	for _, e := range meters {
		if a, ok := byVehicle[e.VehicleID]; ok {
			a.MeterEntries = append(a.MeterEntries, e)
		}
	}
	return activity, nil
}

func (s *PostgresStore) ListFuelEntries(ctx context.Context, q Query) ([]domain.FuelEntry, error) {
	f := scopeFilters(q, "f.date", "f.vehicle_id")
	query := `
		SELECT f.id, f.vehicle_id, v.name, f.date, f.volume, f.cost,
		       COALESCE(f.usage, 0), COALESCE(f.mpg, 0),
		       COALESCE(f.vendor_name, ''), COALESCE(f.location, '')
		FROM fuel_entries f
		JOIN vehicles v ON v.id = f.vehicle_id` + whereAlias(f, "f") + ` ORDER BY f.date ASC`

	rows, err := s.db.QueryContext(ctx, query, f.args...)
	if err != nil {
		return nil, fmt.Errorf("query fuel entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.FuelEntry
	for rows.Next() {
		var e domain.FuelEntry
		err := rows.Scan(&e.ID, &e.VehicleID, &e.VehicleName, &e.Date, &e.Volume,
			&e.Cost, &e.Usage, &e.MPG, &e.Vendor, &e.Location)
		if err != nil {
			return nil, fmt.Errorf("scan fuel entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *PostgresStore) ListServiceEntries(ctx context.Context, q Query) ([]domain.ServiceEntry, error) {
	f := scopeFilters(q, "s.date", "s.vehicle_id")
	if len(q.VendorIDs) > 0 {
		f.add("s.vendor_id = ANY($%d)", pq.Array(q.VendorIDs))
	}
	if len(q.Categories) > 0 {
		f.add("s.category = ANY($%d)", pq.Array(q.Categories))
	}
	query := `
		SELECT s.id, s.vehicle_id, v.name, s.date, COALESCE(s.task, ''),
		       COALESCE(s.category, ''), s.status, COALESCE(s.vendor_name, ''),
		       s.total_cost, s.is_work_order, COALESCE(s.work_order_number, ''),
		       COALESCE(s.priority, ''), COALESCE(s.assigned_to, ''),
		       s.scheduled_date, s.completion_date, COALESCE(s.rating, 0)
		FROM service_entries s
		JOIN vehicles v ON v.id = s.vehicle_id` + whereAlias(f, "s") + ` ORDER BY s.date DESC`

	rows, err := s.db.QueryContext(ctx, query, f.args...)
	if err != nil {
		return nil, fmt.Errorf("query service entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.ServiceEntry
	ids := make([]string, 0)
	for rows.Next() {
		var e domain.ServiceEntry
		var scheduled, completed sql.NullTime
		err := rows.Scan(&e.ID, &e.VehicleID, &e.VehicleName, &e.Date, &e.Task,
			&e.Category, &e.Status, &e.Vendor, &e.TotalCost, &e.IsWorkOrder,
			&e.WorkOrderNumber, &e.Priority, &e.AssignedTo, &scheduled, &completed, &e.Rating)
		if err != nil {
			return nil, fmt.Errorf("scan service entry: %w", err)
		}
		if scheduled.Valid {
			t := scheduled.Time
			e.ScheduledDate = &t
		}
		if completed.Valid {
			t := completed.Time
			e.CompletionDate = &t
		}
		entries = append(entries, e)
		ids = append(ids, e.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return entries, nil
	}

	parts, err := s.listServiceParts(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Parts = parts[entries[i].ID]
	}
	return entries, nil
}

func (s *PostgresStore) listServiceParts(ctx context.Context, entryIDs []string) (map[string][]domain.ServicePart, error) {
	query := `
		SELECT sp.service_entry_id, p.number, COALESCE(p.description, ''),
		       sp.quantity, sp.unit_cost, sp.total_cost
		FROM service_entry_parts sp
		JOIN parts p ON p.id = sp.part_id
		WHERE sp.service_entry_id = ANY($1)`

	rows, err := s.db.QueryContext(ctx, query, pq.Array(entryIDs))
	if err != nil {
		return nil, fmt.Errorf("query service parts: %w", err)
	}
	defer rows.Close()

	parts := make(map[string][]domain.ServicePart)
	for rows.Next() {
		var entryID string
		var p domain.ServicePart
		err := rows.Scan(&entryID, &p.PartNumber, &p.Description, &p.Quantity, &p.UnitCost, &p.TotalCost)
		if err != nil {
			return nil, fmt.Errorf("scan service part: %w", err)
		}
		parts[entryID] = append(parts[entryID], p)
	}
	return parts, rows.Err()
}

func (s *PostgresStore) ListExpenseEntries(ctx context.Context, q Query) ([]domain.ExpenseEntry, error) {
	f := scopeFilters(q, "e.date", "e.vehicle_id")
	if len(q.Categories) > 0 {
		f.add("e.type = ANY($%d)", pq.Array(q.Categories))
	}
	query := `
		SELECT e.id, e.vehicle_id, v.name, e.date, e.type,
		       COALESCE(e.vendor_name, ''), e.amount, COALESCE(e.notes, '')
		FROM expense_entries e
		JOIN vehicles v ON v.id = e.vehicle_id` + whereAlias(f, "e") + ` ORDER BY e.date DESC`

	rows, err := s.db.QueryContext(ctx, query, f.args...)
	if err != nil {
		return nil, fmt.Errorf("query expense entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.ExpenseEntry
	for rows.Next() {
		var e domain.ExpenseEntry
		err := rows.Scan(&e.ID, &e.VehicleID, &e.VehicleName, &e.Date, &e.Type, &e.Vendor, &e.Amount, &e.Notes)
		if err != nil {
			return nil, fmt.Errorf("scan expense entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *PostgresStore) listChargingEntries(ctx context.Context, q Query) ([]domain.ChargingEntry, error) {
	f := scopeFilters(q, "c.date", "c.vehicle_id")
	query := `
		SELECT c.id, c.vehicle_id, c.date, c.energy_kwh, c.cost
		FROM charging_entries c
		JOIN vehicles v ON v.id = c.vehicle_id` + whereAlias(f, "c") + ` ORDER BY c.date ASC`

	rows, err := s.db.QueryContext(ctx, query, f.args...)
	if err != nil {
		return nil, fmt.Errorf("query charging entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.ChargingEntry
	for rows.Next() {
		var e domain.ChargingEntry
		if err := rows.Scan(&e.ID, &e.VehicleID, &e.Date, &e.EnergyKWh, &e.Cost); err != nil {
			return nil, fmt.Errorf("scan charging entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *PostgresStore) ListMeterEntries(ctx context.Context, q Query) ([]domain.MeterEntry, error) {
	f := scopeFilters(q, "m.date", "m.vehicle_id")
	query := `
		SELECT m.id, m.vehicle_id, v.name, m.date, m.value, m.void, COALESCE(m.source, '')
		FROM meter_entries m
		JOIN vehicles v ON v.id = m.vehicle_id` + whereAlias(f, "m") + ` ORDER BY m.date ASC`

	rows, err := s.db.QueryContext(ctx, query, f.args...)
	if err != nil {
		return nil, fmt.Errorf("query meter entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.MeterEntry
	for rows.Next() {
		var e domain.MeterEntry
		err := rows.Scan(&e.ID, &e.VehicleID, &e.VehicleName, &e.Date, &e.Value, &e.Void, &e.Source)
		if err != nil {
			return nil, fmt.Errorf("scan meter entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *PostgresStore) ListIssues(ctx context.Context, q Query) ([]domain.Issue, error) {
	f := scopeFilters(q, "i.reported_date", "i.vehicle_id")
	query := `
		SELECT i.id, COALESCE(i.vehicle_id, ''), COALESCE(v.name, ''), i.title,
		       COALESCE(i.fault_code, ''), COALESCE(i.description, ''), i.status,
		       COALESCE(i.priority, ''), COALESCE(i.severity, ''),
		       COALESCE(i.assigned_to, ''), i.reported_date
		FROM issues i
		LEFT JOIN vehicles v ON v.id = i.vehicle_id` + whereAlias(f, "i") + ` ORDER BY i.reported_date DESC`

	rows, err := s.db.QueryContext(ctx, query, f.args...)
	if err != nil {
		return nil, fmt.Errorf("query issues: %w", err)
	}
	defer rows.Close()

	var issues []domain.Issue
	for rows.Next() {
		var i domain.Issue
		err := rows.Scan(&i.ID, &i.VehicleID, &i.VehicleName, &i.Title, &i.FaultCode,
			&i.Description, &i.Status, &i.Priority, &i.Severity, &i.AssignedTo, &i.ReportedDate)
		if err != nil {
			return nil, fmt.Errorf("scan issue: %w", err)
		}
		issues = append(issues, i)
	}
	return issues, rows.Err()
}

func (s *PostgresStore) ListInspections(ctx context.Context, q Query) ([]domain.Inspection, error) {
	f := scopeFilters(q, "i.date", "i.vehicle_id")
	query := `
		SELECT i.id, i.vehicle_id, v.name, i.date, i.template_name,
		       COALESCE(i.inspector, ''), COALESCE(i.location, ''),
		       i.compliance_status, COALESCE(i.overall_score, 0)
		FROM inspections i
		JOIN vehicles v ON v.id = i.vehicle_id` + whereAlias(f, "i") + ` ORDER BY i.date DESC`

	rows, err := s.db.QueryContext(ctx, query, f.args...)
	if err != nil {
		return nil, fmt.Errorf("query inspections: %w", err)
	}
	defer rows.Close()

	var inspections []domain.Inspection
	ids := make([]string, 0)
	for rows.Next() {
		var i domain.Inspection
		err := rows.Scan(&i.ID, &i.VehicleID, &i.VehicleName, &i.Date, &i.TemplateName,
			&i.Inspector, &i.Location, &i.ComplianceStatus, &i.OverallScore)
		if err != nil {
			return nil, fmt.Errorf("scan inspection: %w", err)
		}
		inspections = append(inspections, i)
		ids = append(ids, i.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(inspections) == 0 {
		return inspections, nil
	}

	items, err := s.listInspectionItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range inspections {
		inspections[i].Items = items[inspections[i].ID]
	}
	return inspections, nil
}

func (s *PostgresStore) listInspectionItems(ctx context.Context, inspectionIDs []string) (map[string][]domain.InspectionItem, error) {
	query := `
		SELECT inspection_id, name, passed, COALESCE(failure_reason, '')
		FROM inspection_items
		WHERE inspection_id = ANY($1)`

	rows, err := s.db.QueryContext(ctx, query, pq.Array(inspectionIDs))
	if err != nil {
		return nil, fmt.Errorf("query inspection items: %w", err)
	}
	defer rows.Close()

	items := make(map[string][]domain.InspectionItem)
	for rows.Next() {
		var inspectionID string
		var item domain.InspectionItem
		if err := rows.Scan(&inspectionID, &item.Name, &item.Passed, &item.FailureReason); err != nil {
			return nil, fmt.Errorf("scan inspection item: %w", err)
		}
		items[inspectionID] = append(items[inspectionID], item)
	}
	return items, rows.Err()
}

func (s *PostgresStore) ListInspectionSchedules(ctx context.Context, q Query) ([]domain.InspectionSchedule, error) {
	f := scopeFilters(q, "s.scheduled_date", "s.vehicle_id")
	query := `
		SELECT s.id, s.vehicle_id, v.name, s.template_name, s.scheduled_date,
		       s.status, COALESCE(s.inspector, ''), COALESCE(s.location, '')
		FROM inspection_schedules s
		JOIN vehicles v ON v.id = s.vehicle_id` + whereAlias(f, "s") + ` ORDER BY s.scheduled_date ASC`

	rows, err := s.db.QueryContext(ctx, query, f.args...)
	if err != nil {
		return nil, fmt.Errorf("query inspection schedules: %w", err)
	}
	defer rows.Close()

	var schedules []domain.InspectionSchedule
	for rows.Next() {
		var sc domain.InspectionSchedule
		err := rows.Scan(&sc.ID, &sc.VehicleID, &sc.VehicleName, &sc.TemplateName,
			&sc.ScheduledDate, &sc.Status, &sc.Inspector, &sc.Location)
		if err != nil {
			return nil, fmt.Errorf("scan inspection schedule: %w", err)
		}
		schedules = append(schedules, sc)
	}
	return schedules, rows.Err()
}

func (s *PostgresStore) ListServiceReminders(ctx context.Context, q Query) ([]domain.ServiceReminder, error) {
	f := scopeFilters(q, "r.due_date", "r.vehicle_id")
	query := `
		SELECT r.id, r.vehicle_id, v.name, r.task, r.due_date, r.completion_date
		FROM service_reminders r
		JOIN vehicles v ON v.id = r.vehicle_id` + whereAlias(f, "r") + ` ORDER BY r.due_date ASC`

	rows, err := s.db.QueryContext(ctx, query, f.args...)
	if err != nil {
		return nil, fmt.Errorf("query service reminders: %w", err)
	}
	defer rows.Close()

	var reminders []domain.ServiceReminder
	for rows.Next() {
		var r domain.ServiceReminder
		var due, completed sql.NullTime
		err := rows.Scan(&r.ID, &r.VehicleID, &r.VehicleName, &r.Task, &due, &completed)
		if err != nil {
			return nil, fmt.Errorf("scan service reminder: %w", err)
		}
		if due.Valid {
			t := due.Time
			r.DueDate = &t
		}
		if completed.Valid {
			t := completed.Time
			r.CompletionDate = &t
		}
		reminders = append(reminders, r)
	}
	return reminders, rows.Err()
}

func (s *PostgresStore) ListContacts(ctx context.Context, q Query) ([]domain.Contact, error) {
	f := scopeFilters(q, "", "")
	query := `
		SELECT id, first_name, last_name, COALESCE(email, ''), COALESCE(phone, ''),
		       COALESCE(company, ''), COALESCE(job_title, ''), status,
		       COALESCE(classification, '')
		FROM contacts` + f.where() + ` ORDER BY first_name ASC`

	rows, err := s.db.QueryContext(ctx, query, f.args...)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}
	defer rows.Close()

	var contacts []domain.Contact
	for rows.Next() {
		var c domain.Contact
		err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
			&c.Company, &c.JobTitle, &c.Status, &c.Classification)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (s *PostgresStore) ListContactRenewals(ctx context.Context, q Query) ([]domain.ContactRenewal, error) {
	f := scopeFilters(q, "r.due_date", "")
	query := `
		SELECT r.id, c.first_name || ' ' || c.last_name, r.renewal_type, r.due_date, r.status
		FROM contact_renewals r
		JOIN contacts c ON c.id = r.contact_id` + whereAlias(f, "r") + ` ORDER BY r.due_date ASC`

	rows, err := s.db.QueryContext(ctx, query, f.args...)
	if err != nil {
		return nil, fmt.Errorf("query contact renewals: %w", err)
	}
	defer rows.Close()

	var renewals []domain.ContactRenewal
	for rows.Next() {
		var r domain.ContactRenewal
		if err := rows.Scan(&r.ID, &r.ContactName, &r.RenewalType, &r.DueDate, &r.Status); err != nil {
			return nil, fmt.Errorf("scan contact renewal: %w", err)
		}
		renewals = append(renewals, r)
	}
	return renewals, rows.Err()
}

func (s *PostgresStore) ListVehicleChanges(ctx context.Context, q Query, kind domain.VehicleChangeKind) ([]domain.VehicleChange, error) {
	f := scopeFilters(q, "c.change_date", "c.vehicle_id")
	f.add("c.kind = $%d", string(kind))
	query := `
		SELECT c.id, c.vehicle_id, v.name, c.kind, c.change_date,
		       c.old_value, c.new_value, COALESCE(c.reason, '')
		FROM vehicle_changes c
		JOIN vehicles v ON v.id = c.vehicle_id` + whereAlias(f, "c") + ` ORDER BY c.change_date DESC`

	rows, err := s.db.QueryContext(ctx, query, f.args...)
	if err != nil {
		return nil, fmt.Errorf("query vehicle changes: %w", err)
	}
	defer rows.Close()

	var changes []domain.VehicleChange
	for rows.Next() {
		var c domain.VehicleChange
		err := rows.Scan(&c.ID, &c.VehicleID, &c.VehicleName, &c.Kind, &c.ChangeDate,
			&c.OldValue, &c.NewValue, &c.Reason)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle change: %w", err)
		}
		changes = append(changes, c)
	}
	return changes, rows.Err()
}

func (s *PostgresStore) ListPartUsage(ctx context.Context, q Query) ([]domain.PartUsage, error) {
	f := scopeFilters(q, "s.date", "s.vehicle_id")
	query := `
		SELECT v.name, p.number, COALESCE(p.description, ''), sp.quantity,
		       sp.unit_cost, sp.total_cost, s.date
		FROM service_entry_parts sp
		JOIN parts p ON p.id = sp.part_id
		JOIN service_entries s ON s.id = sp.service_entry_id
		JOIN vehicles v ON v.id = s.vehicle_id` + whereAlias(f, "s") + ` ORDER BY s.date DESC`

	rows, err := s.db.QueryContext(ctx, query, f.args...)
	if err != nil {
		return nil, fmt.Errorf("query part usage: %w", err)
	}
	defer rows.Close()

	var usage []domain.PartUsage
	for rows.Next() {
		var u domain.PartUsage
		err := rows.Scan(&u.VehicleName, &u.PartNumber, &u.Description, &u.Quantity,
			&u.UnitCost, &u.TotalCost, &u.ServiceDate)
		if err != nil {
			return nil, fmt.Errorf("scan part usage: %w", err)
		}
		usage = append(usage, u)
	}
	return usage, rows.Err()
}

func (s *PostgresStore) ListRevenueEntries(ctx context.Context, q Query) ([]domain.RevenueEntry, error) {
	f := scopeFilters(q, "r.date", "r.vehicle_id")
	query := `
		SELECT r.id, r.vehicle_id, v.name, r.date, r.amount, COALESCE(r.source, '')
		FROM revenue_entries r
		JOIN vehicles v ON v.id = r.vehicle_id` + whereAlias(f, "r") + ` ORDER BY r.date ASC`

	rows, err := s.db.QueryContext(ctx, query, f.args...)
	if err != nil {
		return nil, fmt.Errorf("query revenue entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.RevenueEntry
	for rows.Next() {
		var e domain.RevenueEntry
		if err := rows.Scan(&e.ID, &e.VehicleID, &e.VehicleName, &e.Date, &e.Amount, &e.Source); err != nil {
			return nil, fmt.Errorf("scan revenue entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// whereAlias qualifies the user_id condition with a table alias. The
// scope filter always emits user_id first.
func whereAlias(f *filters, alias string) string {
	if len(f.conds) > 0 {
		f.conds[0] = alias + "." + f.conds[0]
	}
	return f.where()
}
