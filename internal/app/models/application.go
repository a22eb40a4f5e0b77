package models

import "time"

// Application defines a student's application to one internship
type Application struct {
	ID               string            `json:"id"`
	StudentID        string            `json:"studentId"`
	InternshipID     string            `json:"internshipId"`
	Status           ApplicationStatus `json:"status"`
	SubmittedAt      time.Time         `json:"submittedAt"`
	StatusUpdatedAt  time.Time         `json:"statusUpdatedAt"`
	WithdrawalReason string            `json:"withdrawalReason,omitempty"`
	// WithdrawalRequested may be true while the status is still Pending or
	// Successful; the status only moves to Withdrawn on staff approval.
	WithdrawalRequested bool `json:"withdrawalRequested"`
	WithdrawalApproved  bool `json:"withdrawalApproved"`
}

// SetStatus updates the status and bumps the status-update timestamp
func (a *Application) SetStatus(status ApplicationStatus, now time.Time) {
	a.Status = status
	a.StatusUpdatedAt = now
}

// CanBeWithdrawn reports whether a withdrawal may still be requested
func (a *Application) CanBeWithdrawn() bool {
	return a.Status == ApplicationPending || a.Status == ApplicationSuccessful
}

// RequestWithdrawal flags the application for staff review without changing status
func (a *Application) RequestWithdrawal(reason string) {
	a.WithdrawalReason = reason
	a.WithdrawalRequested = true
	a.WithdrawalApproved = false
}

// ApproveWithdrawal marks the withdrawal approved and moves the application to Withdrawn
func (a *Application) ApproveWithdrawal(now time.Time) {
	a.WithdrawalApproved = true
	a.SetStatus(ApplicationWithdrawn, now)
}

// RejectWithdrawal clears the withdrawal request, leaving the status untouched.
// Calling it with no request pending is a no-op.
func (a *Application) RejectWithdrawal() {
	a.WithdrawalRequested = false
	a.WithdrawalReason = ""
}
