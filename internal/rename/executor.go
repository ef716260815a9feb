package rename

import (
	"fmt"
	"os"
	"path/filepath"
)

// Execute produces the report for a planned batch. With apply false nothing
// on disk changes. With apply true every Renamed entry is renamed; entries
// are non-colliding by construction, so order does not matter. A rename
// that fails at the filesystem layer becomes an IOError entry and the
// remaining renames still run.
func Execute(batch *Batch, apply bool) *Report {
	report := &Report{Total: len(batch.Entries)}

	for _, e := range batch.Entries {
		if apply && e.Outcome == OutcomeRenamed {
			target := filepath.Join(batch.Dir, e.TargetName)
			if err := os.Rename(e.SourcePath, target); err != nil {
				e.Outcome = OutcomeIOError
				e.Reason = fmt.Sprintf("rename failed: %v", err)
			}
		}

		switch e.Outcome {
		case OutcomeRenamed:
			report.Renamed++
		case OutcomeNoMatch:
			report.NoMatch++
		case OutcomeTargetExists, OutcomeDuplicateTarget:
			report.Skipped++
		case OutcomeTemplateError, OutcomeExtractError, OutcomeIOError:
			report.Errors++
		}
		report.Entries = append(report.Entries, e)
	}

	return report
}
