package export

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fleet-tools/fleet-atlas/pkg/models/domain"
)

type TableConfig struct {
	ColumnWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{ColumnWidth: 22}
}

// Reporter renders an assembled report as plain-text tables.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Writer() io.Writer {
	return c.writer
}

func (c *Reporter) Handle(report *domain.ReportData) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\nReport: %s\n", report.Metadata.Template)
	fmt.Fprintf(&b, "Period: %s\n", report.Metadata.DateRange)
	fmt.Fprintf(&b, "Records: %d\n", report.Metadata.TotalRecords)

	if len(report.Summary) > 0 {
		b.WriteString("\n=== Summary ===\n")
		keys := make([]string, 0, len(report.Summary))
		for k := range report.Summary {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "%s: %v\n", k, report.Summary[k])
		}
	}

	for _, table := range report.Tables {
		fmt.Fprintf(&b, "\n=== %s ===\n", table.Title)
		c.writeRow(&b, toCells(table.Headers))
		c.writeSeparator(&b, len(table.Headers))
		for _, row := range table.Rows {
			c.writeRow(&b, row)
		}
		if len(table.Totals) > 0 {
			totalKeys := make([]string, 0, len(table.Totals))
			for k := range table.Totals {
				totalKeys = append(totalKeys, k)
			}
			sort.Strings(totalKeys)
			b.WriteString("Totals:")
			for _, k := range totalKeys {
				fmt.Fprintf(&b, " %s=%.2f", k, table.Totals[k])
			}
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(c.writer, b.String())
	return err
}

func toCells(headers []string) []any {
	cells := make([]any, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	return cells
}

func (c *Reporter) writeRow(b *strings.Builder, cells []any) {
	for _, cell := range cells {
		fmt.Fprintf(b, "| %-*v ", c.config.ColumnWidth, cell)
	}
	b.WriteString("|\n")
}

func (c *Reporter) writeSeparator(b *strings.Builder, columns int) {
	for i := 0; i < columns; i++ {
		b.WriteString("+")
		b.WriteString(strings.Repeat("-", c.config.ColumnWidth+2))
	}
	b.WriteString("+\n")
}
