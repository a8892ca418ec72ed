package handler

import (
	"github.com/leadflow/lead-system/internal/core/domain"
	"github.com/leadflow/lead-system/internal/core/ports"
)

// --- Request → Service input ---

func toLeadForm(req createLeadRequest) ports.LeadForm {
	return ports.LeadForm{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		City:        req.City,
		State:       req.State,
		Source:      req.Source,
		Status:      req.Status,
		Score:       req.Score,
		Value:       req.Value,
		IsQualified: req.IsQualified,
	}
}

func toLeadFormPatch(req updateLeadRequest) ports.LeadFormPatch {
	return ports.LeadFormPatch{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		City:        req.City,
		State:       req.State,
		Source:      req.Source,
		Status:      req.Status,
		Score:       req.Score,
		Value:       req.Value,
		IsQualified: req.IsQualified,
	}
}

func toListQuery(req listLeadsRequest) ports.ListQuery {
	return ports.ListQuery{
		Filter:    req.Filter,
		PageIndex: req.PageIndex,
		PageSize:  req.PageSize,
	}
}

// --- Service result → HTTP response ---

func toLeadResponse(l domain.Lead) leadResponse {
	resp := leadResponse{
		ID:          l.ID,
		FirstName:   l.FirstName,
		LastName:    l.LastName,
		FullName:    l.FullName(),
		Email:       l.Email,
		Phone:       l.Phone,
		Company:     l.Company,
		City:        l.City,
		State:       l.State,
		Source:      string(l.Source),
		SourceLabel: l.Source.Label(),
		Status:      string(l.Status),
		StatusLabel: l.Status.Label(),
		Score:       l.Score,
		Value:       l.Value,
		IsQualified: l.IsQualified,
		CreatedAt:   l.CreatedAt.UTC(),
		UpdatedAt:   l.UpdatedAt.UTC(),
	}
	if l.LastActivityAt != nil {
		at := l.LastActivityAt.UTC()
		resp.LastActivityAt = &at
	}
	return resp
}

func toLeadPageResponse(p ports.LeadPage) leadPageResponse {
	data := make([]leadResponse, len(p.Leads))
	for i, l := range p.Leads {
		data[i] = toLeadResponse(l)
	}
	return leadPageResponse{
		Filter: p.Query.Filter,
		Data:   data,
		Stats: pageStatsResponse{
			Count:        p.Stats.Count,
			Qualified:    p.Stats.Qualified,
			TotalValue:   p.Stats.TotalValue,
			AverageScore: p.Stats.AverageScore,
		},
		Pagination: paginationResponse{
			PageIndex:  p.Query.PageIndex,
			PageSize:   p.Query.PageSize,
			Total:      p.Total,
			TotalPages: p.TotalPages,
		},
	}
}

func toLeadViewResponse(v ports.LeadView) leadViewResponse {
	return leadViewResponse{
		Phase:     string(v.Phase),
		LastError: v.LastError,
		Seq:       v.Seq,
		Page:      toLeadPageResponse(v.Page),
	}
}
