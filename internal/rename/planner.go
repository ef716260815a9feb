package rename

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Plan resolves every candidate against the template and returns the batch
// plan. Planning only reads the filesystem (existence checks); nothing is
// renamed until Execute runs with apply set.
func Plan(candidates []Candidate, tmpl *Template, dir string) *Batch {
	batch := &Batch{Dir: dir}
	for _, c := range candidates {
		batch.Entries = append(batch.Entries, planOne(c, tmpl, dir))
	}
	downgradeDuplicates(batch)
	return batch
}

func planOne(c Candidate, tmpl *Template, dir string) PlanEntry {
	entry := PlanEntry{SourcePath: c.Path, Captures: c.Captures}

	if !c.Captures.Matched {
		entry.Outcome = OutcomeNoMatch
		entry.Reason = "pattern not found"
		return entry
	}

	name, err := tmpl.Render(c.Captures)
	if err != nil {
		entry.Outcome = OutcomeTemplateError
		entry.Reason = err.Error()
		return entry
	}
	if !strings.HasSuffix(name, ".pdf") {
		name += ".pdf"
	}
	entry.TargetName = name

	// Renaming a file to its own name is a no-op, not a conflict
	if name != filepath.Base(c.Path) {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			entry.Outcome = OutcomeTargetExists
			entry.Reason = fmt.Sprintf("target %q already exists", name)
			return entry
		}
	}

	entry.Outcome = OutcomeRenamed
	return entry
}

// downgradeDuplicates demotes every member of a group of entries that
// rendered the same target name. Nobody wins: letting one through would
// make the result depend on directory order.
func downgradeDuplicates(batch *Batch) {
	counts := make(map[string]int)
	for _, e := range batch.Entries {
		if e.Outcome == OutcomeRenamed {
			counts[e.TargetName]++
		}
	}

	for i := range batch.Entries {
		e := &batch.Entries[i]
		if e.Outcome == OutcomeRenamed && counts[e.TargetName] > 1 {
			e.Outcome = OutcomeDuplicateTarget
			e.Reason = fmt.Sprintf("%d files render to %q", counts[e.TargetName], e.TargetName)
		}
	}
}
