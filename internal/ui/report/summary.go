// # internal/ui/report/summary.go
package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"lazyimport/internal/engine/lint"
	"lazyimport/internal/shared/util"
)

// RenderSummary writes a per-dependency table: how often each heavy
// specifier was flagged and across how many files.
func RenderSummary(w io.Writer, diagnostics []lint.Diagnostic) {
	if len(diagnostics) == 0 {
		return
	}

	counts := make(map[string]int)
	files := make(map[string]map[string]bool)
	for _, d := range diagnostics {
		counts[d.Specifier]++
		if files[d.Specifier] == nil {
			files[d.Specifier] = make(map[string]bool)
		}
		files[d.Specifier][d.File] = true
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Dependency", "Findings", "Files"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	for _, specifier := range util.SortedStringKeys(counts) {
		table.Append([]string{
			specifier,
			fmt.Sprintf("%d", counts[specifier]),
			fmt.Sprintf("%d", len(files[specifier])),
		})
	}
	table.Render()
}
