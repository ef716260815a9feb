package rename

// CaptureSet holds the capture groups from applying the shared pattern to
// one document's text. Positional groups are 1-indexed from the caller's
// point of view: group i lives at Positional[i-1]. Named groups occupy a
// positional slot as well, consistent with standard regex semantics.
type CaptureSet struct {
	Matched    bool
	Positional []string
	Named      map[string]string
}

// Outcome classifies what the planner (or, for IO failures, the executor)
// decided for one file.
type Outcome int

const (
	// OutcomeRenamed means the file will be (or was) renamed to TargetName.
	OutcomeRenamed Outcome = iota
	// OutcomeNoMatch means the pattern did not match the file's text.
	OutcomeNoMatch
	// OutcomeTemplateError means the template referenced a group the
	// pattern did not capture for this file.
	OutcomeTemplateError
	// OutcomeTargetExists means a file with the target name already exists
	// on disk.
	OutcomeTargetExists
	// OutcomeDuplicateTarget means two or more files in the batch rendered
	// the same target name; none of them is renamed.
	OutcomeDuplicateTarget
	// OutcomeExtractError means text extraction failed for the file.
	OutcomeExtractError
	// OutcomeIOError means the rename itself failed during apply.
	OutcomeIOError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRenamed:
		return "renamed"
	case OutcomeNoMatch:
		return "no match"
	case OutcomeTemplateError:
		return "template error"
	case OutcomeTargetExists:
		return "target exists"
	case OutcomeDuplicateTarget:
		return "duplicate target"
	case OutcomeExtractError:
		return "extract error"
	case OutcomeIOError:
		return "io error"
	}
	return "unknown"
}

// Candidate pairs a source file with its capture set, ready for planning.
type Candidate struct {
	Path     string
	Captures CaptureSet
}

// PlanEntry is one row of the rename plan.
type PlanEntry struct {
	SourcePath string
	Outcome    Outcome

	// TargetName is set whenever a target was rendered, even for entries
	// later downgraded to TargetExists or DuplicateTarget.
	TargetName string

	// Reason is a human-readable explanation for non-renamed outcomes.
	Reason string

	Captures CaptureSet
}

// Batch is the full plan for one invocation. Invariant after Plan: no two
// entries with OutcomeRenamed share a TargetName.
type Batch struct {
	// Dir is the folder rendered target names resolve against.
	Dir     string
	Entries []PlanEntry
}

// Report summarizes an executed (or dry-run) batch.
type Report struct {
	Entries []PlanEntry
	Total   int
	Renamed int
	NoMatch int
	// Skipped counts safety skips: existing targets and duplicate targets.
	Skipped int
	// Errors counts template, extraction, and apply-time IO failures.
	Errors int
}
