package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fleet-tools/fleet-atlas/pkg/services/report"
)

// NewTemplatesCmd lists the report catalog grouped by category.
func NewTemplatesCmd(reports report.Service, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List available report templates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			category := ""
			for _, t := range reports.Templates(cmd.Context()) {
				if t.Category != category {
					category = t.Category
					fmt.Fprintf(out, "\n%s\n", category)
				}
				fmt.Fprintf(out, "  %-36s %s\n", t.Template, t.Name)
			}
			return nil
		},
	}
}
