package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_MatchesRegistry(t *testing.T) {
	catalog := NewCatalog()
	registry := NewRegistry()

	require.NoError(t, catalog.Validate(registry))
	assert.Equal(t, len(registry.Keys()), len(catalog.Templates()))
}

func TestCatalog_Resolve(t *testing.T) {
	catalog := NewCatalog()

	tmpl, err := catalog.Resolve(TemplateVehicleList)
	require.NoError(t, err)
	assert.Equal(t, "vehicle-list", tmpl.ID)
	assert.Equal(t, CategoryVehicles, tmpl.Category)

	_, err = catalog.Resolve("no-such-template")
	var notFound *TemplateNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "no-such-template", notFound.Template)
}

func TestCatalog_TemplatesSortedByCategoryThenName(t *testing.T) {
	templates := NewCatalog().Templates()
	require.NotEmpty(t, templates)
	for i := 1; i < len(templates); i++ {
		prev, cur := templates[i-1], templates[i]
		if prev.Category == cur.Category {
			assert.LessOrEqual(t, prev.Name, cur.Name)
		} else {
			assert.Less(t, prev.Category, cur.Category)
		}
	}
}

func TestCatalog_EveryTableColumnDeclared(t *testing.T) {
	catalog := NewCatalog()
	registry := NewRegistry()

	for _, tmpl := range catalog.Templates() {
		fields, _, ok := registry.Fields(tmpl.Template)
		require.True(t, ok, "template %s has no retriever", tmpl.Template)

		declared := map[string]bool{}
		for _, f := range fields {
			declared[f] = true
		}
		for _, table := range tmpl.Tables {
			for _, col := range table.Columns {
				assert.True(t, declared[col.Key],
					"template %s table %s column %s not declared", tmpl.Template, table.ID, col.Key)
			}
		}
	}
}

func TestRegistry_FetchUnknownTemplate(t *testing.T) {
	registry := NewRegistry()
	_, _, ok := registry.Fields("bogus")
	assert.False(t, ok)
}
