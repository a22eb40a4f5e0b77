package dto

// CreateInternshipRequest represents the payload for posting a new internship.
// Dates use the 2006-01-02 form.
type CreateInternshipRequest struct {
	Title          string `json:"title" binding:"required" example:"Backend Engineering Intern"`
	Description    string `json:"description" example:"Work on the placement allocation service"`
	Level          string `json:"level" binding:"required" example:"BASIC"`
	PreferredMajor string `json:"preferredMajor" binding:"required" example:"CSC"`
	OpeningDate    string `json:"openingDate" binding:"required" example:"2026-03-01"`
	ClosingDate    string `json:"closingDate" binding:"required" example:"2026-04-30"`
	TotalSlots     int    `json:"totalSlots" binding:"required" example:"3"`
}

// UpdateInternshipRequest represents Pending-only edits to an internship
type UpdateInternshipRequest struct {
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description"`
	Level          string `json:"level" binding:"required"`
	PreferredMajor string `json:"preferredMajor" binding:"required"`
	OpeningDate    string `json:"openingDate" binding:"required"`
	ClosingDate    string `json:"closingDate" binding:"required"`
	TotalSlots     int    `json:"totalSlots" binding:"required"`
}

// VisibilityRequest toggles an approved internship's visibility
type VisibilityRequest struct {
	Visible *bool `json:"visible" binding:"required"`
}

// InternshipFilterRequest carries the listing filters as query parameters.
// Empty values mean "no filter"; all set filters apply conjunctively.
type InternshipFilterRequest struct {
	Status          string `form:"status" example:"APPROVED"`
	Major           string `form:"major" example:"CSC"`
	Level           string `form:"level" example:"BASIC"`
	ClosingDateFrom string `form:"closingDateFrom" example:"2026-03-01"`
	ClosingDateTo   string `form:"closingDateTo" example:"2026-06-30"`
	MinSlots        string `form:"minSlots" example:"1"`
	AppliedOnly     bool   `form:"appliedOnly"`
}

// InternshipStatisticsResponse summarizes opportunity counts by status
type InternshipStatisticsResponse struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Filled   int `json:"filled"`
}
