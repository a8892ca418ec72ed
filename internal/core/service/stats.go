package service

import (
	"math"

	"github.com/leadflow/lead-system/internal/core/domain"
	"github.com/leadflow/lead-system/internal/core/ports"
)

// pageStats aggregates the given page only, not the whole filtered set.
// The average score is rounded half up; an empty page averages to 0.
func pageStats(leads []domain.Lead) ports.PageStats {
	stats := ports.PageStats{Count: len(leads)}
	if len(leads) == 0 {
		return stats
	}

	scoreSum := 0
	for _, l := range leads {
		if l.IsQualified {
			stats.Qualified++
		}
		stats.TotalValue += l.Value
		scoreSum += l.Score
	}
	stats.AverageScore = int(math.Floor(float64(scoreSum)/float64(len(leads)) + 0.5))
	return stats
}
