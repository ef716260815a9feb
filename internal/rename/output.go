package rename

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for renamed entries
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// warnStyle for skipped entries
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	// errorStyle for failed entries
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// headerBoxStyle for the run configuration header
	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)

	// boxStyle for the summary box with rounded border
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
)

// FormatHeader renders the batch configuration before processing starts.
func FormatHeader(w io.Writer, cfg Config, fileCount int) {
	mode := "DRY RUN"
	if cfg.Apply {
		mode = "APPLY CHANGES"
	}

	content := fmt.Sprintf("%s %s  %s %d file(s)\n%s %s\n%s %s\n%s %s",
		dimStyle.Render("Folder:"), cfg.Folder,
		dimStyle.Render("Found:"), fileCount,
		dimStyle.Render("Pattern:"), cfg.Pattern,
		dimStyle.Render("Template:"), cfg.Template,
		dimStyle.Render("Mode:"), titleStyle.Render(mode),
	)
	fmt.Fprintln(w, headerBoxStyle.Render(content))
}

// FormatEntry renders one plan row.
func FormatEntry(w io.Writer, e PlanEntry, apply bool) {
	name := filepath.Base(e.SourcePath)

	switch e.Outcome {
	case OutcomeRenamed:
		glyph := successStyle.Render("✓")
		if !apply {
			glyph = dimStyle.Render("[DRY]")
		}
		fmt.Fprintf(w, "%s %s %s %s\n", glyph, name, dimStyle.Render("->"), e.TargetName)
	case OutcomeNoMatch, OutcomeTargetExists, OutcomeDuplicateTarget:
		fmt.Fprintf(w, "%s %s: %s\n", warnStyle.Render("⚠"), name, e.Reason)
	case OutcomeTemplateError:
		fmt.Fprintf(w, "%s %s: template error - %s\n", errorStyle.Render("✗"), name, e.Reason)
		fmt.Fprintf(w, "    %s %v / %v\n", dimStyle.Render("captured:"), e.Captures.Positional, e.Captures.Named)
	default:
		fmt.Fprintf(w, "%s %s: %s\n", errorStyle.Render("✗"), name, e.Reason)
	}
}

// FormatSummary renders the aggregate counts after the batch completes.
func FormatSummary(w io.Writer, r *Report, apply bool) {
	verb := "would be renamed"
	if apply {
		verb = "renamed"
	}

	line1 := fmt.Sprintf("%s %d/%d files %s",
		titleStyle.Render("Summary:"), r.Renamed, r.Total, verb)
	line2 := fmt.Sprintf("%s %d  %s %d  %s %d",
		dimStyle.Render("No match:"), r.NoMatch,
		dimStyle.Render("Skipped:"), r.Skipped,
		dimStyle.Render("Errors:"), r.Errors,
	)
	fmt.Fprintln(w, boxStyle.Render(line1+"\n"+line2))

	if !apply && r.Renamed > 0 {
		fmt.Fprintln(w, dimStyle.Render("Run with --apply to execute changes"))
	}
}
