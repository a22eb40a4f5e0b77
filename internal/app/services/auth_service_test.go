package services

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/kaan/internlink/internal/app/models/dto"
	"github.com/kaan/internlink/internal/pkg/apperrors"
	"github.com/kaan/internlink/internal/pkg/auth"
)

func TestLogin(t *testing.T) {
	stores := newTestStores(t)
	user := addStudent(t, stores, "stu1", 3, "CSC")

	hash, err := auth.HashPassword("correct horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user.Password = hash

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "internlink-test",
	})
	svc := NewAuthService(stores, jwtService, zerolog.Nop())

	resp, err := svc.Login(&dto.LoginRequest{UserID: "stu1", Password: "correct horse"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.UserID != "stu1" || resp.Token == "" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	claims, err := jwtService.ValidateAndExtractClaims(resp.Token)
	if err != nil {
		t.Fatalf("validate issued token: %v", err)
	}
	if claims.UserID != "stu1" {
		t.Errorf("expected subject stu1, got %s", claims.UserID)
	}

	if _, err := svc.Login(&dto.LoginRequest{UserID: "stu1", Password: "wrong"}); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected credentials error, got %v", err)
	}
	if _, err := svc.Login(&dto.LoginRequest{UserID: "ghost", Password: "correct horse"}); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("unknown user: expected credentials error, got %v", err)
	}
}
