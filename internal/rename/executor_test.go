package rename

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestExecuteDryRun(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "scan.pdf")
	before := listDir(t, dir)

	batch := Plan([]Candidate{{Path: src, Captures: matchedCaptures("7")}}, ParseTemplate("INV_{1}.pdf"), dir)
	report := Execute(batch, false)

	if report.Renamed != 1 || report.Total != 1 {
		t.Errorf("report = %d/%d renamed, want 1/1", report.Renamed, report.Total)
	}
	if after := listDir(t, dir); !reflect.DeepEqual(before, after) {
		t.Errorf("dry run mutated the filesystem: before %v, after %v", before, after)
	}
}

func TestExecuteApply(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "scan.pdf")

	batch := Plan([]Candidate{{Path: src, Captures: matchedCaptures("7")}}, ParseTemplate("INV_{1}.pdf"), dir)
	report := Execute(batch, true)

	if report.Renamed != 1 {
		t.Fatalf("expected 1 rename, got %d", report.Renamed)
	}
	if _, err := os.Stat(filepath.Join(dir, "INV_7.pdf")); err != nil {
		t.Errorf("renamed file missing: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Errorf("source file still present: %v", err)
	}
}

func TestExecuteApplyFailureIsolation(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.pdf")

	// The first entry's source vanished between planning and apply
	batch := &Batch{
		Dir: dir,
		Entries: []PlanEntry{
			{SourcePath: filepath.Join(dir, "gone.pdf"), Outcome: OutcomeRenamed, TargetName: "a.pdf"},
			{SourcePath: good, Outcome: OutcomeRenamed, TargetName: "b.pdf"},
		},
	}
	report := Execute(batch, true)

	if report.Entries[0].Outcome != OutcomeIOError {
		t.Errorf("entry 0 = %v, want io error", report.Entries[0].Outcome)
	}
	if report.Entries[0].Reason == "" {
		t.Error("io error entry needs a reason")
	}
	if report.Entries[1].Outcome != OutcomeRenamed {
		t.Errorf("entry 1 = %v, want renamed", report.Entries[1].Outcome)
	}
	if _, err := os.Stat(filepath.Join(dir, "b.pdf")); err != nil {
		t.Errorf("remaining rename did not run: %v", err)
	}
	if report.Errors != 1 || report.Renamed != 1 {
		t.Errorf("report counts = %d errors / %d renamed, want 1/1", report.Errors, report.Renamed)
	}
}

func TestExecuteDuplicateTargetsNeverRenamed(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.pdf")
	b := writeFile(t, dir, "b.pdf")

	batch := Plan([]Candidate{
		{Path: a, Captures: matchedCaptures("1")},
		{Path: b, Captures: matchedCaptures("1")},
	}, ParseTemplate("INV_{1}.pdf"), dir)
	report := Execute(batch, true)

	if report.Renamed != 0 {
		t.Errorf("expected zero renames, got %d", report.Renamed)
	}
	if report.Skipped != 2 {
		t.Errorf("expected 2 skips, got %d", report.Skipped)
	}
	if got := listDir(t, dir); !reflect.DeepEqual(got, []string{"a.pdf", "b.pdf"}) {
		t.Errorf("colliding files were touched: %v", got)
	}
}

func TestExecuteReportCounts(t *testing.T) {
	batch := &Batch{Entries: []PlanEntry{
		{Outcome: OutcomeRenamed, TargetName: "x.pdf", SourcePath: "x0.pdf"},
		{Outcome: OutcomeNoMatch},
		{Outcome: OutcomeTargetExists},
		{Outcome: OutcomeDuplicateTarget},
		{Outcome: OutcomeTemplateError},
		{Outcome: OutcomeExtractError},
	}}
	report := Execute(batch, false)

	if report.Total != 6 {
		t.Errorf("total = %d, want 6", report.Total)
	}
	if report.Renamed != 1 || report.NoMatch != 1 || report.Skipped != 2 || report.Errors != 2 {
		t.Errorf("counts = renamed %d, no-match %d, skipped %d, errors %d",
			report.Renamed, report.NoMatch, report.Skipped, report.Errors)
	}
}
