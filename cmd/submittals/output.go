package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dgallion1/submittals/internal/pipeline"
)

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	// dimStyle for muted labels
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for clean runs
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// warnStyle for unmapped categories
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	// errorStyle for fatal errors
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	// boxStyle for the summary box
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)
)

// FormatSummary renders the per-stage counts of a conversion.
func FormatSummary(w io.Writer, path string, st pipeline.Stats) {
	line1 := fmt.Sprintf("%s %d  %s %d  %s %d",
		dimStyle.Render("Lines:"), st.RawLines,
		dimStyle.Render("Discarded:"), st.Discarded,
		dimStyle.Render("Structural:"), st.StructuralLines,
	)
	line2 := fmt.Sprintf("%s %d  %s %d  %s %d",
		dimStyle.Render("Leaves:"), st.Leaves,
		dimStyle.Render("Rows:"), st.Rows,
		dimStyle.Render("Duplicates:"), st.RowsExtracted-st.Rows,
	)

	status := successStyle.Render("all categories mapped")
	if len(st.Unmapped) > 0 {
		status = warnStyle.Render(fmt.Sprintf("unmapped: %s", strings.Join(st.Unmapped, ", ")))
	}

	content := titleStyle.Render(path) + "\n" + line1 + "\n" + line2 + "\n" + status
	fmt.Fprintln(w, boxStyle.Render(content))
}
