// # internal/ui/report/text.go
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"lazyimport/internal/engine/lint"
)

var (
	fileStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	ruleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderText writes diagnostics grouped by file, preserving the order files
// first appear in, followed by a summary line with the total count.
func RenderText(w io.Writer, diagnostics []lint.Diagnostic) {
	if len(diagnostics) == 0 {
		fmt.Fprintln(w, "no heavy top-level imports found")
		return
	}

	byFile := make(map[string][]lint.Diagnostic)
	fileOrder := make([]string, 0)
	for _, d := range diagnostics {
		if _, ok := byFile[d.File]; !ok {
			fileOrder = append(fileOrder, d.File)
		}
		byFile[d.File] = append(byFile[d.File], d)
	}

	for _, file := range fileOrder {
		fmt.Fprintln(w, fileStyle.Render(file))
		for _, d := range byFile[file] {
			fmt.Fprintf(w, "  %d:%d  %s  %s  %s\n",
				d.Location.Line,
				d.Location.Column,
				severityLabel(d.Severity),
				ruleStyle.Render(d.Rule),
				d.Message,
			)
		}
		fmt.Fprintln(w)
	}

	noun := "issues"
	if len(diagnostics) == 1 {
		noun = "issue"
	}
	fmt.Fprintf(w, "%d %s in %d file(s)\n", len(diagnostics), noun, len(fileOrder))
}

func severityLabel(s lint.Severity) string {
	switch s {
	case lint.SeverityError:
		return errorStyle.Render(string(s))
	default:
		return warningStyle.Render(string(s))
	}
}
