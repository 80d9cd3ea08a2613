package report

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fleet-tools/fleet-atlas/pkg/models/domain"
	"github.com/fleet-tools/fleet-atlas/pkg/store/fleet"
)

// Service generates reports against the fleet record store.
type Service interface {
	// Templates lists the catalog, sorted by category then name.
	Templates(ctx context.Context) []domain.ReportTemplate
	// Generate runs one templated report end to end. All-or-nothing:
	// any failure surfaces as a GenerationError and no partial report
	// is returned.
	Generate(ctx context.Context, userID, templateKey string, cfg domain.ReportConfig) (domain.ReportData, error)
	// GenerateCustom builds an ad-hoc cross-entity report.
	GenerateCustom(ctx context.Context, userID string, cfg domain.CustomReportConfig) (domain.ReportData, error)
}

type service struct {
	store    fleet.Store
	catalog  *Catalog
	registry *Registry
	now      func() time.Time
}

// NewService wires the catalog and retriever registry and cross-checks
// them, so a template/retriever mismatch fails at startup.
func NewService(store fleet.Store) (Service, error) {
	catalog := NewCatalog()
	registry := NewRegistry()
	if err := catalog.Validate(registry); err != nil {
		return nil, err
	}
	return &service{
		store:    store,
		catalog:  catalog,
		registry: registry,
		now:      time.Now,
	}, nil
}

func (s *service) Templates(_ context.Context) []domain.ReportTemplate {
	return s.catalog.Templates()
}

func (s *service) Generate(ctx context.Context, userID, templateKey string, cfg domain.ReportConfig) (domain.ReportData, error) {
	started := s.now()
	if err := validateConfig(cfg, userID, started); err != nil {
		return domain.ReportData{}, &GenerationError{Template: templateKey, Err: err}
	}
	tmpl, err := s.catalog.Resolve(templateKey)
	if err != nil {
		return domain.ReportData{}, &GenerationError{Template: templateKey, Err: err}
	}
	effective := mergeConfig(tmpl.Config, cfg)
	q := fleet.Query{
		UserID:     userID,
		Start:      cfg.DateRange.Start,
		End:        cfg.DateRange.End,
		VehicleIDs: cfg.VehicleIDs,
		VendorIDs:  cfg.VendorIDs,
		Categories: cfg.Categories,
	}
	recs, err := s.registry.Fetch(ctx, s.store, templateKey, q, effective)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("template", templateKey).Msg("report retrieval failed")
		return domain.ReportData{}, &GenerationError{Template: templateKey, Err: err}
	}
	report := s.assemble(tmpl, effective, cfg.DateRange, recs)
	zerolog.Ctx(ctx).Debug().
		Str("template", templateKey).
		Int("records", report.Metadata.TotalRecords).
		Dur("elapsed", s.now().Sub(started)).
		Msg("report generated")
	return report, nil
}

// mergeConfig layers the caller's config over the template defaults.
// List-valued scopes and the date range always come from the caller;
// grouping and rendering toggles fall back to the template.
func mergeConfig(base, override domain.ReportConfig) domain.ReportConfig {
	merged := override
	if merged.GroupBy == "" {
		merged.GroupBy = base.GroupBy
	}
	if merged.SortBy == "" {
		merged.SortBy = base.SortBy
	}
	if merged.Filters == nil {
		merged.Filters = base.Filters
	}
	merged.IncludeCharts = merged.IncludeCharts || base.IncludeCharts
	merged.IncludeSummary = merged.IncludeSummary || base.IncludeSummary
	return merged
}

func (s *service) assemble(tmpl domain.ReportTemplate, cfg domain.ReportConfig, dr domain.DateRange, recs Records) domain.ReportData {
	report := domain.ReportData{
		Tables: buildTables(tmpl, recs),
		Metadata: domain.ReportMetadata{
			GeneratedAt:  s.now(),
			TotalRecords: len(recs.Rows),
			DateRange:    fmtDate(dr.Start) + " - " + fmtDate(dr.End),
			Template:     tmpl.Template,
		},
	}
	if cfg.IncludeCharts {
		report.Charts = buildCharts(tmpl, recs)
	}
	if cfg.IncludeSummary {
		report.Summary = buildSummary(tmpl.Template, recs)
	}
	return report
}
