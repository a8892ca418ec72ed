package handler

import "time"

// ErrorResponse is the standard error envelope returned on all 4xx/5xx responses.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// --- Request types ---

type listLeadsRequest struct {
	Filter    string `query:"filter"     validate:"max=200"`
	PageIndex int    `query:"page_index" validate:"min=0"`
	PageSize  int    `query:"page_size"  validate:"min=0,max=100"`
}

// createLeadRequest carries the create form. Field rules are enforced by the
// lead service so every entry point reports the same messages.
type createLeadRequest struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Company     string  `json:"company"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Source      string  `json:"source"`
	Status      string  `json:"status"`
	Score       int     `json:"score"`
	Value       float64 `json:"lead_value"`
	IsQualified bool    `json:"is_qualified"`
}

// updateLeadRequest carries the edit form; absent fields stay unchanged.
type updateLeadRequest struct {
	FirstName   *string  `json:"first_name"`
	LastName    *string  `json:"last_name"`
	Email       *string  `json:"email"`
	Phone       *string  `json:"phone"`
	Company     *string  `json:"company"`
	City        *string  `json:"city"`
	State       *string  `json:"state"`
	Source      *string  `json:"source"`
	Status      *string  `json:"status"`
	Score       *int     `json:"score"`
	Value       *float64 `json:"lead_value"`
	IsQualified *bool    `json:"is_qualified"`
}

// --- Response types ---

type leadResponse struct {
	ID             string     `json:"id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	FullName       string     `json:"full_name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Company        string     `json:"company"`
	City           string     `json:"city"`
	State          string     `json:"state"`
	Source         string     `json:"source"`
	SourceLabel    string     `json:"source_label"`
	Status         string     `json:"status"`
	StatusLabel    string     `json:"status_label"`
	Score          int        `json:"score"`
	Value          float64    `json:"lead_value"`
	IsQualified    bool       `json:"is_qualified"`
	LastActivityAt *time.Time `json:"last_activity_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type pageStatsResponse struct {
	Count        int     `json:"count"`
	Qualified    int     `json:"qualified"`
	TotalValue   float64 `json:"total_value"`
	AverageScore int     `json:"average_score"`
}

type paginationResponse struct {
	PageIndex  int `json:"page_index"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type leadPageResponse struct {
	Filter     string             `json:"filter"`
	Data       []leadResponse     `json:"data"`
	Stats      pageStatsResponse  `json:"stats"`
	Pagination paginationResponse `json:"pagination"`
}

type leadViewResponse struct {
	Phase     string           `json:"phase"`
	LastError string           `json:"last_error,omitempty"`
	Seq       uint64           `json:"seq"`
	Page      leadPageResponse `json:"page"`
}

type leadMutationResponse struct {
	Message string       `json:"message"`
	Lead    leadResponse `json:"lead"`
}

type deleteLeadResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
