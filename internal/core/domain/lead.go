package domain

import (
	"fmt"
	"time"
)

// LeadSource is the closed set of channels a lead can arrive through.
type LeadSource string

const (
	SourceWebsite     LeadSource = "website"
	SourceFacebookAds LeadSource = "facebook_ads"
	SourceGoogleAds   LeadSource = "google_ads"
	SourceReferral    LeadSource = "referral"
	SourceEvents      LeadSource = "events"
	SourceOther       LeadSource = "other"
)

// sourceLabels must list every LeadSource.
var sourceLabels = map[LeadSource]string{
	SourceWebsite:     "Website",
	SourceFacebookAds: "Facebook Ads",
	SourceGoogleAds:   "Google Ads",
	SourceReferral:    "Referral",
	SourceEvents:      "Events",
	SourceOther:       "Other",
}

// LeadSources returns every valid source in display order.
func LeadSources() []LeadSource {
	return []LeadSource{SourceWebsite, SourceFacebookAds, SourceGoogleAds, SourceReferral, SourceEvents, SourceOther}
}

// ParseLeadSource converts a wire value into a LeadSource.
func ParseLeadSource(s string) (LeadSource, error) {
	src := LeadSource(s)
	if _, ok := sourceLabels[src]; !ok {
		return "", fmt.Errorf("unknown lead source %q", s)
	}
	return src, nil
}

// Label returns the display label. Values outside the closed set render as
// the "Other" label.
func (s LeadSource) Label() string {
	if label, ok := sourceLabels[s]; ok {
		return label
	}
	return sourceLabels[SourceOther]
}

// LeadStatus is the pipeline stage of a lead.
type LeadStatus string

const (
	StatusNew       LeadStatus = "new"
	StatusContacted LeadStatus = "contacted"
	StatusQualified LeadStatus = "qualified"
	StatusLost      LeadStatus = "lost"
	StatusWon       LeadStatus = "won"
)

// statusLabels must list every LeadStatus.
var statusLabels = map[LeadStatus]string{
	StatusNew:       "New",
	StatusContacted: "Contacted",
	StatusQualified: "Qualified",
	StatusLost:      "Lost",
	StatusWon:       "Won",
}

// LeadStatuses returns every valid status in pipeline order.
func LeadStatuses() []LeadStatus {
	return []LeadStatus{StatusNew, StatusContacted, StatusQualified, StatusLost, StatusWon}
}

// ParseLeadStatus converts a wire value into a LeadStatus.
func ParseLeadStatus(s string) (LeadStatus, error) {
	st := LeadStatus(s)
	if _, ok := statusLabels[st]; !ok {
		return "", fmt.Errorf("unknown lead status %q", s)
	}
	return st, nil
}

// Label returns the display label. Values outside the closed set render
// as-is.
func (s LeadStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

const (
	MinScore = 0
	MaxScore = 100
)

// Lead is a prospective customer tracked through the sales pipeline.
type Lead struct {
	ID             string     `json:"id" bson:"_id"`
	FirstName      string     `json:"first_name" bson:"first_name"`
	LastName       string     `json:"last_name" bson:"last_name"`
	Email          string     `json:"email" bson:"email"`
	Phone          string     `json:"phone" bson:"phone"`
	Company        string     `json:"company" bson:"company"`
	City           string     `json:"city" bson:"city"`
	State          string     `json:"state" bson:"state"`
	Source         LeadSource `json:"source" bson:"source"`
	Status         LeadStatus `json:"status" bson:"status"`
	Score          int        `json:"score" bson:"score"`
	Value          float64    `json:"lead_value" bson:"lead_value"`
	IsQualified    bool       `json:"is_qualified" bson:"is_qualified"`
	LastActivityAt *time.Time `json:"last_activity_at" bson:"last_activity_at"`
	CreatedAt      time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" bson:"updated_at"`
}

// FullName is the "First Last" form used in confirmation messages.
func (l Lead) FullName() string {
	return l.FirstName + " " + l.LastName
}

// Clone returns a deep copy so callers can't alias store-owned state.
func (l Lead) Clone() Lead {
	if l.LastActivityAt != nil {
		ts := *l.LastActivityAt
		l.LastActivityAt = &ts
	}
	return l
}

// LeadPatch carries a partial update. Nil fields are left unchanged.
type LeadPatch struct {
	FirstName   *string
	LastName    *string
	Email       *string
	Phone       *string
	Company     *string
	City        *string
	State       *string
	Source      *LeadSource
	Status      *LeadStatus
	Score       *int
	Value       *float64
	IsQualified *bool
}

// Apply merges the non-nil patch fields into l and stamps updatedAt.
func (p LeadPatch) Apply(l *Lead, updatedAt time.Time) {
	if p.FirstName != nil {
		l.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		l.LastName = *p.LastName
	}
	if p.Email != nil {
		l.Email = *p.Email
	}
	if p.Phone != nil {
		l.Phone = *p.Phone
	}
	if p.Company != nil {
		l.Company = *p.Company
	}
	if p.City != nil {
		l.City = *p.City
	}
	if p.State != nil {
		l.State = *p.State
	}
	if p.Source != nil {
		l.Source = *p.Source
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
	if p.Score != nil {
		l.Score = *p.Score
	}
	if p.Value != nil {
		l.Value = *p.Value
	}
	if p.IsQualified != nil {
		l.IsQualified = *p.IsQualified
	}
	if updatedAt.Before(l.CreatedAt) {
		updatedAt = l.CreatedAt
	}
	l.UpdatedAt = updatedAt
}
