package services

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/kaan/internlink/internal/app/models"
	"github.com/kaan/internlink/internal/app/store"
	"github.com/kaan/internlink/internal/pkg/apperrors"
)

// UserService defines identity lookups and the staff-side account operations
type UserService interface {
	GetByID(userID string) (models.User, error)
	ApproveRepresentative(representativeID string) error
	PendingRepresentatives() []models.User
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	stores *store.Stores
	logger zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(stores *store.Stores, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		stores: stores,
		logger: logger,
	}
}

// GetByID returns a snapshot of a user record
func (s *userServiceImpl) GetByID(userID string) (models.User, error) {
	s.stores.RLock()
	defer s.stores.RUnlock()

	user, ok := s.stores.Users.Get(userID)
	if !ok {
		return models.User{}, apperrors.NewCustomError(apperrors.ErrUserNotFound, "user not found")
	}
	return *user, nil
}

// ApproveRepresentative marks a company representative account approved, a
// precondition for creating internships
func (s *userServiceImpl) ApproveRepresentative(representativeID string) error {
	s.stores.Lock()
	defer s.stores.Unlock()

	user, ok := s.stores.Users.Get(representativeID)
	if !ok || !user.IsRepresentative() {
		return apperrors.NewCustomError(apperrors.ErrRepresentativeNotFound, "company representative not found")
	}
	if user.Representative.Approved {
		return apperrors.NewInvalidStateError("representative is already approved")
	}

	user.Representative.Approved = true

	s.logger.Info().Str("representativeId", representativeID).Msg("Representative approved")
	return nil
}

// PendingRepresentatives lists representative accounts awaiting approval,
// ordered by ID
func (s *userServiceImpl) PendingRepresentatives() []models.User {
	s.stores.RLock()
	defer s.stores.RUnlock()

	var out []models.User
	for _, u := range s.stores.Users.All() {
		if u.IsRepresentative() && !u.Representative.Approved {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
