package models

import "time"

// FilterSettings holds the conjunctive filter criteria for internship
// listings. Nil fields mean "no filter"; date bounds are inclusive.
type FilterSettings struct {
	Status            *InternshipStatus
	Major             *Major
	Level             *InternshipLevel
	ClosingDateFrom   *time.Time
	ClosingDateTo     *time.Time
	MinAvailableSlots *int
	ShowOnlyApplied   bool // scoped to the requesting student
}

// Matches reports whether the internship passes every set filter.
// ShowOnlyApplied is evaluated by the caller, which knows the student.
func (f *FilterSettings) Matches(o *Internship) bool {
	if f == nil {
		return true
	}
	if f.Status != nil && o.Status != *f.Status {
		return false
	}
	if f.Major != nil && o.PreferredMajor != *f.Major {
		return false
	}
	if f.Level != nil && o.Level != *f.Level {
		return false
	}
	if f.ClosingDateFrom != nil && o.ClosingDate.Before(*f.ClosingDateFrom) {
		return false
	}
	if f.ClosingDateTo != nil && o.ClosingDate.After(*f.ClosingDateTo) {
		return false
	}
	if f.MinAvailableSlots != nil && o.AvailableSlots() < *f.MinAvailableSlots {
		return false
	}
	return true
}
