// Package seed provides the demo lead dataset loaded at startup.
package seed

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/leadflow/lead-system/internal/core/domain"
)

const generatedLeads = 50

var (
	cities   = []string{"New York", "San Francisco", "Chicago", "Austin", "Seattle"}
	states   = []string{"NY", "CA", "IL", "TX", "WA"}
	sources  = []domain.LeadSource{domain.SourceWebsite, domain.SourceGoogleAds, domain.SourceFacebookAds, domain.SourceReferral, domain.SourceEvents}
	statuses = []domain.LeadStatus{domain.StatusNew, domain.StatusContacted, domain.StatusQualified, domain.StatusWon, domain.StatusLost}
)

// DemoLeads returns five named leads followed by fifty generated ones. The
// generated part is deterministic for a given now.
func DemoLeads(now time.Time) []domain.Lead {
	leads := namedLeads()

	rng := rand.New(rand.NewPCG(uint64(len(leads)), generatedLeads))
	for i := 0; i < generatedLeads; i++ {
		n := i + len(leads) + 1

		var lastActivity *time.Time
		if i%3 == 0 {
			ts := now.Add(-randDuration(rng, 30*24*time.Hour))
			lastActivity = &ts
		}
		created := now.Add(-randDuration(rng, 60*24*time.Hour))
		updated := created.Add(randDuration(rng, now.Sub(created)))

		leads = append(leads, domain.Lead{
			ID:             fmt.Sprintf("%d", n),
			FirstName:      fmt.Sprintf("Lead%d", n),
			LastName:       "User",
			Email:          fmt.Sprintf("lead%d@example.com", n),
			Phone:          fmt.Sprintf("(555) %03d-%04d", rng.IntN(900)+100, rng.IntN(9000)+1000),
			Company:        fmt.Sprintf("Company %d", n),
			City:           cities[i%len(cities)],
			State:          states[i%len(states)],
			Source:         sources[i%len(sources)],
			Status:         statuses[i%len(statuses)],
			Score:          rng.IntN(domain.MaxScore),
			Value:          float64(rng.IntN(100000) + 10000),
			IsQualified:    rng.Float64() > 0.3,
			LastActivityAt: lastActivity,
			CreatedAt:      created,
			UpdatedAt:      updated,
		})
	}
	return leads
}

func randDuration(rng *rand.Rand, limit time.Duration) time.Duration {
	if limit <= 0 {
		return 0
	}
	return time.Duration(rng.Int64N(int64(limit)))
}

func namedLeads() []domain.Lead {
	ts := func(s string) time.Time {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			panic(err)
		}
		return t
	}
	ptr := func(s string) *time.Time {
		t := ts(s)
		return &t
	}

	return []domain.Lead{
		{
			ID: "1", FirstName: "John", LastName: "Smith", Email: "john.smith@techcorp.com", Phone: "(555) 123-4567",
			Company: "TechCorp Solutions", City: "San Francisco", State: "CA",
			Source: domain.SourceWebsite, Status: domain.StatusNew, Score: 85, Value: 50000, IsQualified: true,
			LastActivityAt: ptr("2024-01-15T10:30:00Z"), CreatedAt: ts("2024-01-10T08:00:00Z"), UpdatedAt: ts("2024-01-15T10:30:00Z"),
		},
		{
			ID: "2", FirstName: "Sarah", LastName: "Johnson", Email: "sarah.j@innovate.com", Phone: "(555) 987-6543",
			Company: "Innovate Inc", City: "New York", State: "NY",
			Source: domain.SourceGoogleAds, Status: domain.StatusContacted, Score: 92, Value: 75000, IsQualified: true,
			LastActivityAt: ptr("2024-01-14T15:45:00Z"), CreatedAt: ts("2024-01-08T14:20:00Z"), UpdatedAt: ts("2024-01-14T15:45:00Z"),
		},
		{
			ID: "3", FirstName: "Michael", LastName: "Brown", Email: "m.brown@startup.io", Phone: "(555) 456-7890",
			Company: "Startup Dynamics", City: "Austin", State: "TX",
			Source: domain.SourceReferral, Status: domain.StatusQualified, Score: 78, Value: 35000, IsQualified: true,
			LastActivityAt: ptr("2024-01-13T09:15:00Z"), CreatedAt: ts("2024-01-05T11:10:00Z"), UpdatedAt: ts("2024-01-13T09:15:00Z"),
		},
		{
			ID: "4", FirstName: "Emily", LastName: "Davis", Email: "emily.davis@enterprise.com", Phone: "(555) 321-0987",
			Company: "Enterprise Solutions", City: "Chicago", State: "IL",
			Source: domain.SourceFacebookAds, Status: domain.StatusWon, Score: 95, Value: 120000, IsQualified: true,
			LastActivityAt: ptr("2024-01-12T16:30:00Z"), CreatedAt: ts("2024-01-01T09:00:00Z"), UpdatedAt: ts("2024-01-12T16:30:00Z"),
		},
		{
			ID: "5", FirstName: "Robert", LastName: "Wilson", Email: "r.wilson@consulting.biz", Phone: "(555) 654-3210",
			Company: "Wilson Consulting", City: "Seattle", State: "WA",
			Source: domain.SourceEvents, Status: domain.StatusLost, Score: 45, Value: 25000, IsQualified: false,
			LastActivityAt: ptr("2024-01-11T14:00:00Z"), CreatedAt: ts("2024-01-03T13:45:00Z"), UpdatedAt: ts("2024-01-11T14:00:00Z"),
		},
	}
}
