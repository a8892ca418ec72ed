package service

import (
	"errors"
	"testing"

	"github.com/leadflow/lead-system/internal/core/domain"
	"github.com/leadflow/lead-system/internal/core/ports"
)

func TestFormValidator_ValidFormPasses(t *testing.T) {
	if err := newFormValidator().check(validForm()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFormValidator_Messages(t *testing.T) {
	fv := newFormValidator()

	tests := []struct {
		name  string
		edit  func(*ports.LeadForm)
		field string
		want  string
	}{
		{"required", func(f *ports.LeadForm) { f.Company = "" }, "company", "company is required"},
		{"email", func(f *ports.LeadForm) { f.Email = "nope" }, "email", "email must be a valid email"},
		{"score max", func(f *ports.LeadForm) { f.Score = 150 }, "score", "score must be at most 100"},
		{"score min", func(f *ports.LeadForm) { f.Score = -1 }, "score", "score must be at least 0"},
		{"status", func(f *ports.LeadForm) { f.Status = "pending" }, "status", "status must be one of: new, contacted, qualified, lost, won"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.edit(&form)

			var ve *domain.ValidationError
			if err := fv.check(form); !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if got := ve.Fields[tc.field]; got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormValidator_PatchOnlyChecksSuppliedFields(t *testing.T) {
	fv := newFormValidator()

	if err := fv.check(ports.LeadFormPatch{}); err != nil {
		t.Fatalf("empty patch must validate: %v", err)
	}
	if err := fv.check(ports.LeadFormPatch{Source: ptr("events")}); err != nil {
		t.Fatalf("valid source rejected: %v", err)
	}

	err := fv.check(ports.LeadFormPatch{Email: ptr("bad"), Value: ptr(-5.0)})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 2 {
		t.Errorf("expected 2 violations, got %v", ve.Fields)
	}
}
