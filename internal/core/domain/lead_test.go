package domain

import (
	"errors"
	"testing"
	"time"
)

func TestLeadSource_LabelsAreExhaustive(t *testing.T) {
	for _, src := range LeadSources() {
		if _, ok := sourceLabels[src]; !ok {
			t.Errorf("source %q has no label", src)
		}
	}
	if len(sourceLabels) != len(LeadSources()) {
		t.Errorf("label table has %d entries, want %d", len(sourceLabels), len(LeadSources()))
	}
}

func TestLeadSource_UnknownFallsBackToOther(t *testing.T) {
	if got := LeadSource("carrier_pigeon").Label(); got != "Other" {
		t.Errorf("expected Other, got %q", got)
	}
	if got := SourceGoogleAds.Label(); got != "Google Ads" {
		t.Errorf("expected Google Ads, got %q", got)
	}
}

func TestParseLeadSource(t *testing.T) {
	if _, err := ParseLeadSource("referral"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseLeadSource("Referral"); err == nil {
		t.Fatal("expected error for label instead of wire value")
	}
}

func TestLeadStatus_Labels(t *testing.T) {
	for _, st := range LeadStatuses() {
		if _, ok := statusLabels[st]; !ok {
			t.Errorf("status %q has no label", st)
		}
	}
	if got := LeadStatus("archived").Label(); got != "archived" {
		t.Errorf("unknown status should render raw, got %q", got)
	}
	if _, err := ParseLeadStatus("archived"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestLeadPatch_Apply_MergesOnlySuppliedFields(t *testing.T) {
	created := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	lead := Lead{
		ID:        "1",
		FirstName: "John",
		LastName:  "Smith",
		Score:     85,
		Status:    StatusNew,
		CreatedAt: created,
		UpdatedAt: created,
	}

	score := 90
	status := StatusContacted
	now := created.Add(time.Hour)
	LeadPatch{Score: &score, Status: &status}.Apply(&lead, now)

	if lead.Score != 90 || lead.Status != StatusContacted {
		t.Errorf("patch not applied: %+v", lead)
	}
	if lead.FirstName != "John" || lead.LastName != "Smith" {
		t.Errorf("unspecified fields changed: %+v", lead)
	}
	if !lead.UpdatedAt.Equal(now) {
		t.Errorf("expected updated_at %v, got %v", now, lead.UpdatedAt)
	}
}

func TestLeadPatch_Apply_UpdatedNeverBeforeCreated(t *testing.T) {
	created := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	lead := Lead{CreatedAt: created, UpdatedAt: created}

	LeadPatch{}.Apply(&lead, created.Add(-time.Hour))

	if lead.UpdatedAt.Before(lead.CreatedAt) {
		t.Errorf("updated_at %v precedes created_at %v", lead.UpdatedAt, lead.CreatedAt)
	}
}

func TestLead_CloneDetachesLastActivity(t *testing.T) {
	ts := time.Now()
	orig := Lead{LastActivityAt: &ts}
	clone := orig.Clone()
	*clone.LastActivityAt = ts.Add(time.Hour)

	if !orig.LastActivityAt.Equal(ts) {
		t.Error("clone shares last_activity_at with original")
	}
}

func TestValidationError_IsErrValidation(t *testing.T) {
	err := error(&ValidationError{Fields: map[string]string{
		"score": "score must be at most 100",
		"email": "email must be a valid email",
	}})
	if !errors.Is(err, ErrValidation) {
		t.Fatal("expected errors.Is(err, ErrValidation)")
	}
	want := "validation failed: email must be a valid email; score must be at most 100"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}
