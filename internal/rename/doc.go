// Package rename plans and executes content-driven batch renames of PDF
// files.
//
// A single invocation flows through four stages:
//
//   - matching: one shared pattern, compiled with a fixed case-insensitive
//     multiline flag policy, is applied to each file's extracted text to
//     produce a CaptureSet (matcher.go).
//
//   - rendering: a filename template with {1}/{2} positional and {name}
//     named placeholders is rendered against each CaptureSet (template.go).
//
//   - planning: every file resolves to exactly one outcome (renamed,
//     no-match, template error, target exists, duplicate target) and the
//     whole batch is checked for files that render to the same target name
//     before anything happens on disk (planner.go).
//
//   - execution: dry-run prints the plan; apply performs the renames with
//     per-file failure isolation and prints the same report (executor.go).
//
// Planning is read-only: the filesystem is only stat'd until Execute runs
// with apply set.
package rename
