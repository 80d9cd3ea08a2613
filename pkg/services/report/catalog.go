package report

import (
	"fmt"
	"sort"

	"github.com/fleet-tools/fleet-atlas/pkg/models/domain"
)

// Catalog is the immutable set of report templates the engine serves.
// Build it once with NewCatalog and share it across requests.
type Catalog struct {
	templates []domain.ReportTemplate
	byKey     map[string]domain.ReportTemplate
}

// NewCatalog loads the built-in templates, indexed by dispatch key.
func NewCatalog() *Catalog {
	templates := defaultTemplates()
	byKey := make(map[string]domain.ReportTemplate, len(templates))
	for _, t := range templates {
		byKey[t.Template] = t
	}
	return &Catalog{templates: templates, byKey: byKey}
}

// Templates returns all catalog entries sorted by category, then name.
func (c *Catalog) Templates() []domain.ReportTemplate {
	out := make([]domain.ReportTemplate, len(c.templates))
	copy(out, c.templates)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Resolve looks up a template by its dispatch key.
func (c *Catalog) Resolve(key string) (domain.ReportTemplate, error) {
	t, ok := c.byKey[key]
	if !ok {
		return domain.ReportTemplate{}, &TemplateNotFoundError{Template: key}
	}
	return t, nil
}

// Validate cross-checks the catalog against the retriever registry:
// every catalog entry must have a registered retriever and vice versa,
// and every field a chart or table references must be one the retriever
// declares. Meant to run at startup so a drifting template fails fast
// instead of producing empty columns at request time.
func (c *Catalog) Validate(reg *Registry) error {
	for _, t := range c.templates {
		fields, aggregate, ok := reg.Fields(t.Template)
		if !ok {
			return fmt.Errorf("template %q (%s) has no registered retriever", t.Template, t.ID)
		}
		declared := make(map[string]struct{}, len(fields))
		for _, f := range fields {
			declared[f] = struct{}{}
		}
		for _, tbl := range t.Tables {
			for _, col := range tbl.Columns {
				if _, ok := declared[col.Key]; !ok {
					return fmt.Errorf("template %q table %q references undeclared field %q", t.Template, tbl.ID, col.Key)
				}
			}
		}
		// Aggregate templates produce a single summary row; their charts
		// are rendered from the raw dataset, not from the row fields.
		if aggregate {
			continue
		}
		for _, ch := range t.Charts {
			if _, ok := declared[ch.XField]; !ok {
				return fmt.Errorf("template %q chart %q references undeclared x field %q", t.Template, ch.ID, ch.XField)
			}
			if ch.Aggregation != domain.AggCount {
				if _, ok := declared[ch.YField]; !ok {
					return fmt.Errorf("template %q chart %q references undeclared y field %q", t.Template, ch.ID, ch.YField)
				}
			}
			if ch.GroupField != "" {
				if _, ok := declared[ch.GroupField]; !ok {
					return fmt.Errorf("template %q chart %q references undeclared group field %q", t.Template, ch.ID, ch.GroupField)
				}
			}
		}
	}
	for _, key := range reg.Keys() {
		if _, ok := c.byKey[key]; !ok {
			return fmt.Errorf("retriever %q has no catalog template", key)
		}
	}
	return nil
}
