package models

import "time"

// Internship defines an internship opportunity posted by a company
// representative. Dates are date-only values in UTC.
type Internship struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Level            InternshipLevel  `json:"level"`
	PreferredMajor   Major            `json:"preferredMajor"` // OTHER acts as a wildcard
	OpeningDate      time.Time        `json:"openingDate"`
	ClosingDate      time.Time        `json:"closingDate"`
	Status           InternshipStatus `json:"status"`
	CompanyName      string           `json:"companyName"`
	RepresentativeID string           `json:"representativeId"`
	TotalSlots       int              `json:"totalSlots"`
	FilledSlots      int              `json:"filledSlots"`
	Visible          bool             `json:"visible"`
	ApplicantIDs     []string         `json:"applicantIds"`
}

// AvailableSlots returns the number of unfilled slots
func (o *Internship) AvailableSlots() int {
	return o.TotalSlots - o.FilledSlots
}

// HasApplicant reports whether the student is in the applicant set
func (o *Internship) HasApplicant(studentID string) bool {
	for _, id := range o.ApplicantIDs {
		if id == studentID {
			return true
		}
	}
	return false
}

// AddApplicant appends a student to the applicant set, rejecting duplicates
func (o *Internship) AddApplicant(studentID string) bool {
	if o.HasApplicant(studentID) {
		return false
	}
	o.ApplicantIDs = append(o.ApplicantIDs, studentID)
	return true
}

// RemoveApplicant drops a student from the applicant set
func (o *Internship) RemoveApplicant(studentID string) bool {
	for i, id := range o.ApplicantIDs {
		if id == studentID {
			o.ApplicantIDs = append(o.ApplicantIDs[:i], o.ApplicantIDs[i+1:]...)
			return true
		}
	}
	return false
}

// ConfirmPlacement consumes one slot for an applicant student. The transition
// to Filled happens here and only here, when the last slot is consumed.
func (o *Internship) ConfirmPlacement(studentID string) bool {
	if !o.HasApplicant(studentID) || o.FilledSlots >= o.TotalSlots {
		return false
	}
	o.FilledSlots++
	if o.FilledSlots == o.TotalSlots {
		o.Status = InternshipFilled
	}
	return true
}

// ReleaseSlot frees one confirmed slot after an approved withdrawal of an
// accepted placement. An internship that was Filled returns to Approved.
func (o *Internship) ReleaseSlot() {
	if o.FilledSlots == 0 {
		return
	}
	o.FilledSlots--
	if o.Status == InternshipFilled {
		o.Status = InternshipApproved
	}
}
