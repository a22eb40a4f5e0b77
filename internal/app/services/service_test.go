package services

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/kaan/internlink/internal/app/models"
	"github.com/kaan/internlink/internal/app/store"
)

// fixedClock pins the engine to 2026-06-15, inside every fixture date range
func fixedClock() time.Time {
	return time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
}

func newTestStores(t *testing.T) *store.Stores {
	t.Helper()
	return store.NewMemoryStores()
}

func addStudent(t *testing.T, stores *store.Stores, id string, year int, major models.Major) *models.User {
	t.Helper()
	user := &models.User{
		ID:      id,
		Name:    "Student " + id,
		Role:    models.RoleStudent,
		Student: &models.StudentProfile{YearOfStudy: year, Major: major},
	}
	stores.Users.Put(user)
	return user
}

func addRepresentative(t *testing.T, stores *store.Stores, id string, approved bool) *models.User {
	t.Helper()
	user := &models.User{
		ID:   id,
		Name: "Rep " + id,
		Role: models.RoleRepresentative,
		Representative: &models.RepresentativeProfile{
			CompanyName: "Acme",
			Approved:    approved,
		},
	}
	stores.Users.Put(user)
	return user
}

// addInternship posts an approved, visible internship open across 2026
func addInternship(t *testing.T, stores *store.Stores, repID string, major models.Major, level models.InternshipLevel, slots int) *models.Internship {
	t.Helper()
	internship := &models.Internship{
		ID:               stores.IDs.NextInternshipID(),
		Title:            "Internship " + repID,
		Level:            level,
		PreferredMajor:   major,
		OpeningDate:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		ClosingDate:      time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		Status:           models.InternshipApproved,
		CompanyName:      "Acme",
		RepresentativeID: repID,
		TotalSlots:       slots,
		Visible:          true,
	}
	stores.Internships.Put(internship)
	if user, ok := stores.Users.Get(repID); ok && user.IsRepresentative() {
		user.Representative.AddCreated(internship.ID)
	}
	return internship
}

func newTestApplicationService(stores *store.Stores) ApplicationService {
	return NewApplicationService(stores, fixedClock, zerolog.Nop())
}

func newTestInternshipService(stores *store.Stores) InternshipService {
	return NewInternshipService(stores, fixedClock, zerolog.Nop())
}
