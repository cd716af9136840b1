package validation

import "testing"

func TestNewReportIsValid(t *testing.T) {
	r := NewReport()
	if !r.Valid {
		t.Error("new report should be valid")
	}
	if len(r.Errors) != 0 || len(r.Warnings) != 0 {
		t.Error("new report should have no findings")
	}
}

func TestAddErrorInvalidates(t *testing.T) {
	r := NewReport()
	r.AddError(Result{Level: LevelGeometry, Message: "bad boundary"})
	if r.Valid {
		t.Error("report with an error should be invalid")
	}
	if r.Errors[0].Severity != SeverityError {
		t.Error("AddError should stamp the error severity")
	}
	if r.Summary != "1 errors, 0 warnings, 0 info" {
		t.Errorf("unexpected summary: %q", r.Summary)
	}
}

func TestWarningsKeepValid(t *testing.T) {
	r := NewReport()
	r.AddWarning(Result{Level: LevelPlacement, Message: "amenity skipped"})
	r.AddInfo(Result{Level: LevelZoning, Message: "zones assigned"})
	if !r.Valid {
		t.Error("warnings and info should not invalidate the report")
	}
}

func TestMerge(t *testing.T) {
	a := NewReport()
	a.AddWarning(Result{Level: LevelLedger, Message: "overshoot"})
	b := NewReport()
	b.AddError(Result{Level: LevelGeometry, Message: "degenerate"})
	a.Merge(b)
	if a.Valid {
		t.Error("merging an invalid report should invalidate")
	}
	if len(a.Warnings) != 1 || len(a.Errors) != 1 {
		t.Errorf("merge lost findings: %s", a.Summary)
	}
}
