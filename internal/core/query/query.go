// Package query filters and pages the lead collection in memory.
package query

import (
	"strings"

	"github.com/leadflow/lead-system/internal/core/domain"
)

// Filter returns the leads containing needle, case-insensitively, in any of
// first name, last name, email, company, city, state, source or status.
// Source and status match on both the wire value and the display label.
// Input order is preserved. An empty needle returns leads unchanged.
func Filter(leads []domain.Lead, needle string) []domain.Lead {
	if needle == "" {
		return leads
	}

	search := strings.ToLower(needle)
	matched := make([]domain.Lead, 0, len(leads))
	for _, l := range leads {
		if Matches(l, search) {
			matched = append(matched, l)
		}
	}
	return matched
}

// Matches reports whether lead contains the already lower-cased search term.
func Matches(l domain.Lead, search string) bool {
	for _, field := range searchableFields(l) {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func searchableFields(l domain.Lead) []string {
	return []string{
		l.FirstName,
		l.LastName,
		l.Email,
		l.Company,
		l.City,
		l.State,
		string(l.Source), l.Source.Label(),
		string(l.Status), l.Status.Label(),
	}
}

// Paginate returns the leads in [pageIndex*pageSize, pageIndex*pageSize+pageSize),
// clamped to the available length. Out-of-range pages yield an empty slice.
func Paginate(leads []domain.Lead, pageIndex, pageSize int) []domain.Lead {
	if pageSize <= 0 || pageIndex < 0 {
		return []domain.Lead{}
	}

	start := pageIndex * pageSize
	if start >= len(leads) {
		return []domain.Lead{}
	}
	end := start + pageSize
	if end > len(leads) {
		end = len(leads)
	}
	return leads[start:end]
}

// TotalPages is ceil(count/pageSize).
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 || count <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// ClampPageIndex keeps pageIndex within [0, totalPages-1].
func ClampPageIndex(pageIndex, totalPages int) int {
	if pageIndex >= totalPages {
		pageIndex = totalPages - 1
	}
	if pageIndex < 0 {
		pageIndex = 0
	}
	return pageIndex
}
