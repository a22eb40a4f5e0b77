package services

import (
	"errors"
	"testing"

	"github.com/kaan/internlink/internal/app/models"
	"github.com/kaan/internlink/internal/app/models/dto"
	"github.com/kaan/internlink/internal/pkg/apperrors"
)

func validCreateRequest() *dto.CreateInternshipRequest {
	return &dto.CreateInternshipRequest{
		Title:          "Platform Intern",
		Description:    "Backend work",
		Level:          "INTERMEDIATE",
		PreferredMajor: "CSC",
		OpeningDate:    "2026-01-01",
		ClosingDate:    "2026-12-31",
		TotalSlots:     3,
	}
}

func TestCreateStartsPendingAndInvisible(t *testing.T) {
	stores := newTestStores(t)
	rep := addRepresentative(t, stores, "rep1", true)

	svc := newTestInternshipService(stores)
	internship, err := svc.Create("rep1", validCreateRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if internship.ID != "INT000001" {
		t.Errorf("expected first internship ID INT000001, got %s", internship.ID)
	}
	if internship.Status != models.InternshipPending {
		t.Errorf("expected PENDING, got %s", internship.Status)
	}
	if internship.Visible {
		t.Error("expected new internship to be invisible")
	}
	if internship.CompanyName != rep.Representative.CompanyName {
		t.Errorf("expected company name copied from the representative, got %s", internship.CompanyName)
	}
	if len(rep.Representative.CreatedInternships) != 1 {
		t.Errorf("expected internship in the created set, got %v", rep.Representative.CreatedInternships)
	}
}

func TestCreateRequiresApprovedRepresentative(t *testing.T) {
	stores := newTestStores(t)
	addRepresentative(t, stores, "rep1", false)

	svc := newTestInternshipService(stores)
	if _, err := svc.Create("rep1", validCreateRequest()); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected permission error for unapproved representative, got %v", err)
	}
}

func TestCreateEnforcesPostingCap(t *testing.T) {
	stores := newTestStores(t)
	addRepresentative(t, stores, "rep1", true)

	svc := newTestInternshipService(stores)
	for i := 0; i < models.MaxCreatedInternships; i++ {
		if _, err := svc.Create("rep1", validCreateRequest()); err != nil {
			t.Fatalf("create %d: %v", i+1, err)
		}
	}

	if _, err := svc.Create("rep1", validCreateRequest()); !errors.Is(err, apperrors.ErrCapacityExceeded) {
		t.Fatalf("expected capacity error past the posting cap, got %v", err)
	}
}

func TestCreateValidatesPayload(t *testing.T) {
	stores := newTestStores(t)
	addRepresentative(t, stores, "rep1", true)
	svc := newTestInternshipService(stores)

	cases := []struct {
		name   string
		mutate func(*dto.CreateInternshipRequest)
	}{
		{"unknown level", func(r *dto.CreateInternshipRequest) { r.Level = "EXPERT" }},
		{"bad opening date", func(r *dto.CreateInternshipRequest) { r.OpeningDate = "01/01/2026" }},
		{"closing before opening", func(r *dto.CreateInternshipRequest) { r.ClosingDate = "2025-12-31" }},
		{"zero slots", func(r *dto.CreateInternshipRequest) { r.TotalSlots = 0 }},
		{"too many slots", func(r *dto.CreateInternshipRequest) { r.TotalSlots = 11 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			tc.mutate(req)
			if _, err := svc.Create("rep1", req); !errors.Is(err, apperrors.ErrBadRequest) {
				t.Fatalf("expected bad request error, got %v", err)
			}
		})
	}
}

func TestCreateTreatsUnknownMajorAsWildcard(t *testing.T) {
	stores := newTestStores(t)
	addRepresentative(t, stores, "rep1", true)
	svc := newTestInternshipService(stores)

	req := validCreateRequest()
	req.PreferredMajor = "Underwater Basket Weaving"
	internship, err := svc.Create("rep1", req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if internship.PreferredMajor != models.MajorOther {
		t.Fatalf("expected OTHER for an unknown major, got %s", internship.PreferredMajor)
	}
}

func TestUpdateOnlyPending(t *testing.T) {
	stores := newTestStores(t)
	addRepresentative(t, stores, "rep1", true)
	svc := newTestInternshipService(stores)

	internship, err := svc.Create("rep1", validCreateRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	update := &dto.UpdateInternshipRequest{
		Title:          "Renamed Intern",
		Description:    "Changed",
		Level:          "BASIC",
		PreferredMajor: "EEE",
		OpeningDate:    "2026-02-01",
		ClosingDate:    "2026-11-30",
		TotalSlots:     2,
	}
	if err := svc.Update(internship.ID, "rep1", update); err != nil {
		t.Fatalf("update pending: %v", err)
	}
	got, _ := svc.GetByID(internship.ID)
	if got.Title != "Renamed Intern" || got.Level != models.LevelBasic {
		t.Fatalf("expected updated fields, got %+v", got)
	}

	if err := svc.Approve(internship.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if err := svc.Update(internship.ID, "rep1", update); !errors.Is(err, apperrors.ErrInvalidState) {
		t.Fatalf("expected invalid state error after approval, got %v", err)
	}
}

func TestApproveMakesVisible(t *testing.T) {
	stores := newTestStores(t)
	addRepresentative(t, stores, "rep1", true)
	svc := newTestInternshipService(stores)

	internship, _ := svc.Create("rep1", validCreateRequest())
	if err := svc.Approve(internship.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}

	got, _ := svc.GetByID(internship.ID)
	if got.Status != models.InternshipApproved || !got.Visible {
		t.Fatalf("expected approved and visible, got status=%s visible=%v", got.Status, got.Visible)
	}

	if err := svc.Approve(internship.ID); !errors.Is(err, apperrors.ErrInvalidState) {
		t.Fatalf("expected invalid state error on re-approve, got %v", err)
	}
}

func TestRejectIsTerminal(t *testing.T) {
	stores := newTestStores(t)
	addRepresentative(t, stores, "rep1", true)
	svc := newTestInternshipService(stores)

	internship, _ := svc.Create("rep1", validCreateRequest())
	if err := svc.Reject(internship.ID); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if err := svc.Approve(internship.ID); !errors.Is(err, apperrors.ErrInvalidState) {
		t.Fatalf("expected invalid state error approving a rejected internship, got %v", err)
	}
}

func TestSetVisibilityOnlyApproved(t *testing.T) {
	stores := newTestStores(t)
	addRepresentative(t, stores, "rep1", true)
	addRepresentative(t, stores, "rep2", true)
	svc := newTestInternshipService(stores)

	internship, _ := svc.Create("rep1", validCreateRequest())
	if err := svc.SetVisibility(internship.ID, "rep1", true); !errors.Is(err, apperrors.ErrInvalidState) {
		t.Fatalf("expected invalid state error while pending, got %v", err)
	}

	if err := svc.Approve(internship.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if err := svc.SetVisibility(internship.ID, "rep2", false); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected permission error for non-owner, got %v", err)
	}
	if err := svc.SetVisibility(internship.ID, "rep1", false); err != nil {
		t.Fatalf("hide: %v", err)
	}

	got, _ := svc.GetByID(internship.ID)
	if got.Visible {
		t.Error("expected internship hidden")
	}
}

func TestDeleteRejectsActiveWithApplicants(t *testing.T) {
	stores := newTestStores(t)
	addRepresentative(t, stores, "rep1", true)
	rep, _ := stores.Users.Get("rep1")
	addStudent(t, stores, "stu1", 3, models.MajorCSC)

	internships := newTestInternshipService(stores)
	applications := newTestApplicationService(stores)

	internship, _ := internships.Create("rep1", validCreateRequest())
	if err := internships.Approve(internship.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err := applications.Submit("stu1", internship.ID); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := internships.Delete(internship.ID, "rep1"); !errors.Is(err, apperrors.ErrInvalidState) {
		t.Fatalf("expected invalid state error with applicants, got %v", err)
	}

	// A pending posting is still deletable and leaves the created set
	pending, _ := internships.Create("rep1", validCreateRequest())
	if err := internships.Delete(pending.ID, "rep1"); err != nil {
		t.Fatalf("delete pending: %v", err)
	}
	for _, id := range rep.Representative.CreatedInternships {
		if id == pending.ID {
			t.Fatal("expected deleted internship removed from the created set")
		}
	}
	if _, err := internships.GetByID(pending.ID); !errors.Is(err, apperrors.ErrInternshipNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestVisibleToStudentHonorsEligibilityAndAppliedException(t *testing.T) {
	stores := newTestStores(t)
	addRepresentative(t, stores, "rep1", true)
	addStudent(t, stores, "stu1", 2, models.MajorCSC)

	matching := addInternship(t, stores, "rep1", models.MajorCSC, models.LevelBasic, 2)
	wildcard := addInternship(t, stores, "rep1", models.MajorOther, models.LevelBasic, 2)
	// Excluded by the year gate and by visibility respectively
	addInternship(t, stores, "rep1", models.MajorCSC, models.LevelAdvanced, 2)
	hidden := addInternship(t, stores, "rep1", models.MajorCSC, models.LevelBasic, 2)
	hidden.Visible = false

	internships := newTestInternshipService(stores)
	applications := newTestApplicationService(stores)

	listed, err := internships.VisibleToStudent("stu1", nil)
	if err != nil {
		t.Fatalf("visible listing: %v", err)
	}
	assertInternshipIDs(t, listed, matching.ID, wildcard.ID)

	// Applying then losing visibility keeps the posting in the listing
	if _, err := applications.Submit("stu1", matching.ID); err != nil {
		t.Fatalf("submit: %v", err)
	}
	matching.Visible = false

	listed, err = internships.VisibleToStudent("stu1", nil)
	if err != nil {
		t.Fatalf("visible listing after hide: %v", err)
	}
	assertInternshipIDs(t, listed, matching.ID, wildcard.ID)
}

func TestVisibleToStudentAppliedOnlyFilter(t *testing.T) {
	stores := newTestStores(t)
	addRepresentative(t, stores, "rep1", true)
	addStudent(t, stores, "stu1", 3, models.MajorCSC)

	applied := addInternship(t, stores, "rep1", models.MajorCSC, models.LevelBasic, 2)
	addInternship(t, stores, "rep1", models.MajorCSC, models.LevelBasic, 2)

	internships := newTestInternshipService(stores)
	applications := newTestApplicationService(stores)
	if _, err := applications.Submit("stu1", applied.ID); err != nil {
		t.Fatalf("submit: %v", err)
	}

	listed, err := internships.VisibleToStudent("stu1", &models.FilterSettings{ShowOnlyApplied: true})
	if err != nil {
		t.Fatalf("visible listing: %v", err)
	}
	assertInternshipIDs(t, listed, applied.ID)
}

func TestAllWithFiltersAppliesCriteria(t *testing.T) {
	stores := newTestStores(t)
	addRepresentative(t, stores, "rep1", true)

	basic := addInternship(t, stores, "rep1", models.MajorCSC, models.LevelBasic, 2)
	advanced := addInternship(t, stores, "rep1", models.MajorCSC, models.LevelAdvanced, 4)
	eee := addInternship(t, stores, "rep1", models.MajorEEE, models.LevelBasic, 2)

	svc := newTestInternshipService(stores)

	level := models.LevelBasic
	listed := svc.AllWithFilters(&models.FilterSettings{Level: &level})
	assertInternshipIDs(t, listed, basic.ID, eee.ID)

	minSlots := 3
	listed = svc.AllWithFilters(&models.FilterSettings{MinAvailableSlots: &minSlots})
	assertInternshipIDs(t, listed, advanced.ID)

	major := models.MajorCSC
	listed = svc.AllWithFilters(&models.FilterSettings{Major: &major, Level: &level})
	assertInternshipIDs(t, listed, basic.ID)
}

func TestParseFilterSettingsValidation(t *testing.T) {
	if _, err := ParseFilterSettings(&dto.InternshipFilterRequest{Status: "OPEN"}); !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("unknown status: expected bad request error, got %v", err)
	}
	if _, err := ParseFilterSettings(&dto.InternshipFilterRequest{Level: "EXPERT"}); !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("unknown level: expected bad request error, got %v", err)
	}
	if _, err := ParseFilterSettings(&dto.InternshipFilterRequest{MinSlots: "-1"}); !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("negative minSlots: expected bad request error, got %v", err)
	}

	filter, err := ParseFilterSettings(&dto.InternshipFilterRequest{
		Status:   "approved",
		Major:    "csc",
		Level:    "basic",
		MinSlots: "2",
	})
	if err != nil {
		t.Fatalf("valid request: %v", err)
	}
	if *filter.Status != models.InternshipApproved || *filter.Major != models.MajorCSC ||
		*filter.Level != models.LevelBasic || *filter.MinAvailableSlots != 2 {
		t.Fatalf("unexpected filter: %+v", filter)
	}
}

// assertInternshipIDs checks the listed IDs as a set
func assertInternshipIDs(t *testing.T, got []models.Internship, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d internships, got %d", len(want), len(got))
	}
	seen := make(map[string]bool, len(got))
	for _, o := range got {
		seen[o.ID] = true
	}
	for _, id := range want {
		if !seen[id] {
			t.Fatalf("expected internship %s in listing", id)
		}
	}
}
