// Package seed populates an empty store with default accounts and sample
// internships so a fresh deployment is immediately usable.
package seed

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kaan/internlink/internal/app/models"
	"github.com/kaan/internlink/internal/app/store"
	"github.com/kaan/internlink/internal/pkg/auth"
	"github.com/kaan/internlink/internal/pkg/helpers"
)

// CreateDefaultData seeds default users and internships. It is a no-op when
// the store already contains users, so a loaded snapshot is never overwritten.
func CreateDefaultData(stores *store.Stores, lgr zerolog.Logger) error {
	stores.Lock()
	defer stores.Unlock()

	if len(stores.Users.All()) > 0 {
		lgr.Info().Msg("Store already populated, skipping seed data")
		return nil
	}

	password, err := auth.HashPassword("password123")
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	users := []*models.User{
		{
			ID:       "staff001",
			Name:     "Career Center",
			Password: password,
			Role:     models.RoleStaff,
		},
		{
			ID:       "student001",
			Name:     "Aylin Demir",
			Password: password,
			Role:     models.RoleStudent,
			Student:  &models.StudentProfile{YearOfStudy: 3, Major: models.MajorCSC},
		},
		{
			ID:       "student002",
			Name:     "Mert Kaya",
			Password: password,
			Role:     models.RoleStudent,
			Student:  &models.StudentProfile{YearOfStudy: 2, Major: models.MajorEEE},
		},
		{
			ID:       "rep001",
			Name:     "Selin Aksoy",
			Password: password,
			Role:     models.RoleRepresentative,
			Representative: &models.RepresentativeProfile{
				CompanyName: "Nordwind Software",
				Department:  "Engineering",
				Position:    "Recruiter",
				Approved:    true,
			},
		},
		{
			ID:       "rep002",
			Name:     "Baran Yildiz",
			Password: password,
			Role:     models.RoleRepresentative,
			Representative: &models.RepresentativeProfile{
				CompanyName: "Helio Robotics",
				Department:  "People Ops",
				Position:    "HR Specialist",
				Approved:    false,
			},
		},
	}

	for _, user := range users {
		stores.Users.Put(user)
	}

	opening, _ := helpers.ParseDate("2026-01-01")
	closing, _ := helpers.ParseDate("2026-12-31")

	internship := &models.Internship{
		ID:               stores.IDs.NextInternshipID(),
		Title:            "Backend Engineering Intern",
		Description:      "Service development on the platform team",
		Level:            models.LevelIntermediate,
		PreferredMajor:   models.MajorCSC,
		OpeningDate:      opening,
		ClosingDate:      closing,
		Status:           models.InternshipApproved,
		CompanyName:      "Nordwind Software",
		RepresentativeID: "rep001",
		TotalSlots:       3,
		Visible:          true,
	}
	stores.Internships.Put(internship)

	rep, _ := stores.Users.Get("rep001")
	rep.Representative.AddCreated(internship.ID)

	lgr.Info().Int("users", len(users)).Msg("Seed data created")
	return nil
}
