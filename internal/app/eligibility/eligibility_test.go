package eligibility

import (
	"testing"
	"time"

	"github.com/kaan/internlink/internal/app/models"
)

func TestIsEligible(t *testing.T) {
	cases := []struct {
		name  string
		year  int
		major models.Major
		level models.InternshipLevel
		oMaj  models.Major
		want  bool
	}{
		{"matching major", 3, models.MajorCSC, models.LevelAdvanced, models.MajorCSC, true},
		{"wildcard major", 3, models.MajorMAE, models.LevelAdvanced, models.MajorOther, true},
		{"major mismatch", 3, models.MajorCSC, models.LevelBasic, models.MajorEEE, false},
		{"second year basic", 2, models.MajorCSC, models.LevelBasic, models.MajorCSC, true},
		{"second year intermediate", 2, models.MajorCSC, models.LevelIntermediate, models.MajorCSC, false},
		{"first year advanced wildcard", 1, models.MajorCBE, models.LevelAdvanced, models.MajorOther, false},
		{"third year advanced", 3, models.MajorCSC, models.LevelAdvanced, models.MajorCSC, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			student := &models.StudentProfile{YearOfStudy: tc.year, Major: tc.major}
			o := &models.Internship{Level: tc.level, PreferredMajor: tc.oMaj}
			if got := IsEligible(student, o); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestIsOpenForApplications(t *testing.T) {
	base := models.Internship{
		Status:      models.InternshipApproved,
		Visible:     true,
		OpeningDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		ClosingDate: time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		TotalSlots:  2,
	}
	during := time.Date(2026, 3, 15, 12, 30, 0, 0, time.UTC)

	if !IsOpenForApplications(&base, during) {
		t.Fatal("expected open within the date range")
	}

	// Both boundary days count, regardless of the time of day
	opening := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)
	if !IsOpenForApplications(&base, opening) {
		t.Error("expected open on the opening date")
	}
	closing := time.Date(2026, 3, 31, 0, 1, 0, 0, time.UTC)
	if !IsOpenForApplications(&base, closing) {
		t.Error("expected open on the closing date")
	}
	after := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	if IsOpenForApplications(&base, after) {
		t.Error("expected closed the day after the closing date")
	}

	hidden := base
	hidden.Visible = false
	if IsOpenForApplications(&hidden, during) {
		t.Error("expected hidden internship to be closed")
	}

	pending := base
	pending.Status = models.InternshipPending
	if IsOpenForApplications(&pending, during) {
		t.Error("expected pending internship to be closed")
	}

	full := base
	full.FilledSlots = full.TotalSlots
	if IsOpenForApplications(&full, during) {
		t.Error("expected full internship to be closed")
	}
}
