package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflow/lead-system/internal/core/domain"
)

func TestDemoLeads_ShapeAndInvariants(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	leads := DemoLeads(now)

	require.Len(t, leads, 55)
	assert.Equal(t, "John", leads[0].FirstName)
	assert.Equal(t, "Lead6", leads[5].FirstName)

	seen := make(map[string]struct{}, len(leads))
	for _, l := range leads {
		_, dup := seen[l.ID]
		assert.False(t, dup, "duplicate id %s", l.ID)
		seen[l.ID] = struct{}{}

		assert.GreaterOrEqual(t, l.Score, domain.MinScore)
		assert.LessOrEqual(t, l.Score, domain.MaxScore)
		assert.GreaterOrEqual(t, l.Value, 0.0)
		assert.False(t, l.UpdatedAt.Before(l.CreatedAt), "lead %s updated before created", l.ID)
		_, err := domain.ParseLeadSource(string(l.Source))
		assert.NoError(t, err)
		_, err = domain.ParseLeadStatus(string(l.Status))
		assert.NoError(t, err)
	}
}

func TestDemoLeads_Deterministic(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, DemoLeads(now), DemoLeads(now))
}
