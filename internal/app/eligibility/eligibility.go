// Package eligibility implements the pure rules deciding whether a student
// may view or apply to an internship. The functions take a reference date
// instead of reading the clock so callers and tests stay deterministic.
package eligibility

import (
	"time"

	"github.com/kaan/internlink/internal/app/models"
)

// IsEligible reports whether the student may apply to the internship.
// Both rules must hold: the preferred major matches the student's major or is
// the OTHER wildcard, and year 1-2 students are gated to Basic level.
func IsEligible(student *models.StudentProfile, o *models.Internship) bool {
	if o.PreferredMajor != student.Major && o.PreferredMajor != models.MajorOther {
		return false
	}
	if student.YearOfStudy <= 2 && o.Level != models.LevelBasic {
		return false
	}
	return true
}

// IsOpenForApplications reports whether the internship accepts applications
// on the given day: Approved, visible, within the date range (inclusive) and
// with at least one unfilled slot.
func IsOpenForApplications(o *models.Internship, today time.Time) bool {
	day := DateOnly(today)
	return o.Status == models.InternshipApproved &&
		o.Visible &&
		!day.Before(DateOnly(o.OpeningDate)) &&
		!day.After(DateOnly(o.ClosingDate)) &&
		o.FilledSlots < o.TotalSlots
}

// DateOnly truncates a time to its UTC calendar day
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
