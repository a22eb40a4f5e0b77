package dto

// SubmitApplicationRequest represents a student's application submission
type SubmitApplicationRequest struct {
	InternshipID string `json:"internshipId" binding:"required" example:"INT000001"`
}

// WithdrawalRequest carries the student's reason for requesting withdrawal
type WithdrawalRequest struct {
	Reason string `json:"reason" binding:"required" example:"Accepted an offer elsewhere"`
}

// ApplicationStatisticsResponse summarizes application counts by status
type ApplicationStatisticsResponse struct {
	Total              int `json:"total"`
	Pending            int `json:"pending"`
	Successful         int `json:"successful"`
	Unsuccessful       int `json:"unsuccessful"`
	Withdrawn          int `json:"withdrawn"`
	WithdrawalRequests int `json:"withdrawalRequests"`
}
