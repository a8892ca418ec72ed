package service

import (
	"testing"

	"github.com/leadflow/lead-system/internal/core/domain"
)

func TestPageStats(t *testing.T) {
	tests := []struct {
		name      string
		leads     []domain.Lead
		count     int
		qualified int
		value     float64
		avg       int
	}{
		{name: "empty page", leads: nil},
		{
			name: "rounds half up",
			leads: []domain.Lead{
				{Score: 85, Value: 15000, IsQualified: true},
				{Score: 92, Value: 35000, IsQualified: true},
			},
			count: 2, qualified: 2, value: 50000, avg: 89,
		},
		{
			name: "rounds down below half",
			leads: []domain.Lead{
				{Score: 10, Value: 1},
				{Score: 10, Value: 2},
				{Score: 11, Value: 3, IsQualified: true},
			},
			count: 3, qualified: 1, value: 6, avg: 10,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := pageStats(tc.leads)
			if got.Count != tc.count || got.Qualified != tc.qualified || got.TotalValue != tc.value || got.AverageScore != tc.avg {
				t.Errorf("got %+v, want count=%d qualified=%d value=%v avg=%d", got, tc.count, tc.qualified, tc.value, tc.avg)
			}
		})
	}
}
