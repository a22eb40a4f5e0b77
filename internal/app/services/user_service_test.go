package services

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kaan/internlink/internal/pkg/apperrors"
)

func TestApproveRepresentative(t *testing.T) {
	stores := newTestStores(t)
	addRepresentative(t, stores, "rep1", false)
	addStudent(t, stores, "stu1", 3, "CSC")

	svc := NewUserService(stores, zerolog.Nop())

	pending := svc.PendingRepresentatives()
	if len(pending) != 1 || pending[0].ID != "rep1" {
		t.Fatalf("expected rep1 pending, got %v", pending)
	}

	if err := svc.ApproveRepresentative("stu1"); !errors.Is(err, apperrors.ErrRepresentativeNotFound) {
		t.Fatalf("expected not found error for a student ID, got %v", err)
	}
	if err := svc.ApproveRepresentative("rep1"); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if err := svc.ApproveRepresentative("rep1"); !errors.Is(err, apperrors.ErrInvalidState) {
		t.Fatalf("expected invalid state error on re-approval, got %v", err)
	}

	if len(svc.PendingRepresentatives()) != 0 {
		t.Error("expected no pending representatives after approval")
	}
}
