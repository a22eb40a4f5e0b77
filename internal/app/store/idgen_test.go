package store

import (
	"testing"

	"github.com/kaan/internlink/internal/app/models"
)

func TestIDSequenceFormat(t *testing.T) {
	g := NewIDGenerator()

	if id := g.NextInternshipID(); id != "INT000001" {
		t.Fatalf("expected INT000001, got %s", id)
	}
	if id := g.NextInternshipID(); id != "INT000002" {
		t.Fatalf("expected INT000002, got %s", id)
	}
	if id := g.NextApplicationID(); id != "APP000001" {
		t.Fatalf("expected APP000001, got %s", id)
	}
}

func TestSeedResumesCounters(t *testing.T) {
	g := NewIDGenerator()
	g.Seed(
		[]*models.Internship{{ID: "INT000004"}, {ID: "INT000009"}, {ID: "legacy-7"}},
		[]*models.Application{{ID: "APP000002"}},
	)

	if id := g.NextInternshipID(); id != "INT000010" {
		t.Fatalf("expected INT000010 after seeding, got %s", id)
	}
	if id := g.NextApplicationID(); id != "APP000003" {
		t.Fatalf("expected APP000003 after seeding, got %s", id)
	}
}

func TestMemoryStoresRoundTrip(t *testing.T) {
	stores := NewMemoryStores()

	user := &models.User{ID: "stu1", Role: models.RoleStudent, Student: &models.StudentProfile{YearOfStudy: 3, Major: models.MajorCSC}}
	stores.Users.Put(user)
	if got, ok := stores.Users.Get("stu1"); !ok || got != user {
		t.Fatal("expected the stored user back by ID")
	}

	internship := &models.Internship{ID: "INT000001"}
	stores.Internships.Put(internship)
	if got := stores.Internships.All(); len(got) != 1 || got[0].ID != "INT000001" {
		t.Fatalf("expected one internship, got %v", got)
	}

	stores.Internships.Delete("INT000001")
	if _, ok := stores.Internships.Get("INT000001"); ok {
		t.Fatal("expected internship gone after delete")
	}
}
