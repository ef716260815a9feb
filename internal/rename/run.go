package rename

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/itsmostafa/pdfbatch/internal/pdftext"
)

// Extractor yields the text of the first maxPages pages of a document.
// pdftext.Extract satisfies it; tests substitute fakes.
type Extractor func(path string, maxPages int) (string, error)

// Config holds one rename invocation.
type Config struct {
	Folder   string
	Pattern  string
	Template string
	Pages    int
	Apply    bool
	Output   io.Writer
	Extract  Extractor
}

// Run plans and executes one batch rename. Files are processed sequentially
// in lexicographic order so output is deterministic. It returns an error
// only for invocation-level failures (bad pattern, missing folder, bad page
// count); per-file problems are reported, not returned.
func Run(cfg Config) error {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Extract == nil {
		cfg.Extract = pdftext.Extract
	}
	if cfg.Pages < 1 {
		return fmt.Errorf("pages must be at least 1, got %d", cfg.Pages)
	}

	info, err := os.Stat(cfg.Folder)
	if err != nil {
		return fmt.Errorf("folder not found: %s", cfg.Folder)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", cfg.Folder)
	}

	pattern, err := CompilePattern(cfg.Pattern)
	if err != nil {
		return err
	}
	tmpl := ParseTemplate(cfg.Template)

	files, err := filepath.Glob(filepath.Join(cfg.Folder, "*.pdf"))
	if err != nil {
		return fmt.Errorf("listing %s: %w", cfg.Folder, err)
	}
	sort.Strings(files)

	FormatHeader(cfg.Output, cfg, len(files))
	if len(files) == 0 {
		fmt.Fprintln(cfg.Output, warnStyle.Render("No PDF files found in "+cfg.Folder))
		return nil
	}

	var candidates []Candidate
	var unreadable []PlanEntry
	for _, path := range files {
		text, err := cfg.Extract(path, cfg.Pages)
		if err != nil {
			unreadable = append(unreadable, PlanEntry{
				SourcePath: path,
				Outcome:    OutcomeExtractError,
				Reason:     err.Error(),
			})
			continue
		}
		if text == "" {
			unreadable = append(unreadable, PlanEntry{
				SourcePath: path,
				Outcome:    OutcomeNoMatch,
				Reason:     "no text extracted",
			})
			continue
		}
		candidates = append(candidates, Candidate{Path: path, Captures: pattern.Match(text)})
	}

	batch := Plan(candidates, tmpl, cfg.Folder)
	batch.Entries = append(batch.Entries, unreadable...)
	sort.Slice(batch.Entries, func(i, j int) bool {
		return batch.Entries[i].SourcePath < batch.Entries[j].SourcePath
	})

	report := Execute(batch, cfg.Apply)
	for _, e := range report.Entries {
		FormatEntry(cfg.Output, e, cfg.Apply)
	}
	FormatSummary(cfg.Output, report, cfg.Apply)

	return nil
}
