package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kaan/internlink/internal/app/eligibility"
	"github.com/kaan/internlink/internal/app/models"
	"github.com/kaan/internlink/internal/app/models/dto"
	"github.com/kaan/internlink/internal/app/store"
	"github.com/kaan/internlink/internal/pkg/apperrors"
	"github.com/kaan/internlink/internal/pkg/helpers"
)

// InternshipService defines the opportunity side of the allocation engine:
// posting lifecycle (create, update, approve, reject, delete, visibility)
// and the filtered read-only listings.
type InternshipService interface {
	Create(representativeID string, req *dto.CreateInternshipRequest) (models.Internship, error)
	Update(internshipID, representativeID string, req *dto.UpdateInternshipRequest) error
	Delete(internshipID, representativeID string) error
	Approve(internshipID string) error
	Reject(internshipID string) error
	SetVisibility(internshipID, representativeID string, visible bool) error

	GetByID(internshipID string) (models.Internship, error)
	ByRepresentative(representativeID string, filter *models.FilterSettings) []models.Internship
	VisibleToStudent(studentID string, filter *models.FilterSettings) ([]models.Internship, error)
	AllWithFilters(filter *models.FilterSettings) []models.Internship
	Pending() []models.Internship
	Statistics() dto.InternshipStatisticsResponse
}

// internshipServiceImpl implements InternshipService
type internshipServiceImpl struct {
	stores *store.Stores
	clock  Clock
	logger zerolog.Logger
}

// NewInternshipService creates a new InternshipService
func NewInternshipService(stores *store.Stores, clock Clock, logger zerolog.Logger) InternshipService {
	return &internshipServiceImpl{
		stores: stores,
		clock:  clock,
		logger: logger,
	}
}

// Create posts a new internship for an approved representative. The posting
// starts Pending and invisible until staff approval.
func (s *internshipServiceImpl) Create(representativeID string, req *dto.CreateInternshipRequest) (models.Internship, error) {
	fields, err := parseInternshipFields(req.Level, req.PreferredMajor, req.OpeningDate, req.ClosingDate, req.TotalSlots)
	if err != nil {
		return models.Internship{}, err
	}

	s.stores.Lock()
	defer s.stores.Unlock()

	user, ok := s.stores.Users.Get(representativeID)
	if !ok || !user.IsRepresentative() {
		return models.Internship{}, apperrors.NewCustomError(apperrors.ErrRepresentativeNotFound, "company representative not found")
	}
	rep := user.Representative
	if !rep.Approved {
		return models.Internship{}, apperrors.NewForbiddenError("representative account is awaiting staff approval")
	}
	if !rep.CanCreateMore() {
		return models.Internship{}, apperrors.NewCapacityExceededError("maximum of 5 internships per representative reached")
	}

	internship := &models.Internship{
		ID:               s.stores.IDs.NextInternshipID(),
		Title:            req.Title,
		Description:      req.Description,
		Level:            fields.level,
		PreferredMajor:   fields.major,
		OpeningDate:      fields.opening,
		ClosingDate:      fields.closing,
		Status:           models.InternshipPending,
		CompanyName:      rep.CompanyName,
		RepresentativeID: representativeID,
		TotalSlots:       req.TotalSlots,
		Visible:          false,
	}

	s.stores.Internships.Put(internship)
	rep.AddCreated(internship.ID)

	s.logger.Info().
		Str("internshipId", internship.ID).
		Str("representativeId", representativeID).
		Str("title", internship.Title).
		Msg("Internship created")

	return *internship, nil
}

// Update edits a Pending internship owned by the representative
func (s *internshipServiceImpl) Update(internshipID, representativeID string, req *dto.UpdateInternshipRequest) error {
	fields, err := parseInternshipFields(req.Level, req.PreferredMajor, req.OpeningDate, req.ClosingDate, req.TotalSlots)
	if err != nil {
		return err
	}

	s.stores.Lock()
	defer s.stores.Unlock()

	internship, ok := s.stores.Internships.Get(internshipID)
	if !ok {
		return apperrors.NewCustomError(apperrors.ErrInternshipNotFound, "internship opportunity not found")
	}
	if internship.RepresentativeID != representativeID {
		return apperrors.NewForbiddenError("internship belongs to another representative")
	}
	if internship.Status != models.InternshipPending {
		return apperrors.NewInvalidStateError("only pending internships can be edited")
	}

	internship.Title = req.Title
	internship.Description = req.Description
	internship.Level = fields.level
	internship.PreferredMajor = fields.major
	internship.OpeningDate = fields.opening
	internship.ClosingDate = fields.closing
	internship.TotalSlots = req.TotalSlots

	s.logger.Info().Str("internshipId", internshipID).Msg("Internship updated")
	return nil
}

// Delete removes an internship that is still Pending or has no applicants,
// and drops it from the representative's created set
func (s *internshipServiceImpl) Delete(internshipID, representativeID string) error {
	s.stores.Lock()
	defer s.stores.Unlock()

	internship, ok := s.stores.Internships.Get(internshipID)
	if !ok {
		return apperrors.NewCustomError(apperrors.ErrInternshipNotFound, "internship opportunity not found")
	}
	if internship.RepresentativeID != representativeID {
		return apperrors.NewForbiddenError("internship belongs to another representative")
	}
	if internship.Status != models.InternshipPending && len(internship.ApplicantIDs) > 0 {
		return apperrors.NewInvalidStateError("internship already has applicants")
	}

	if user, ok := s.stores.Users.Get(representativeID); ok && user.IsRepresentative() {
		user.Representative.RemoveCreated(internshipID)
	}
	s.stores.Internships.Delete(internshipID)

	s.logger.Info().Str("internshipId", internshipID).Msg("Internship deleted")
	return nil
}

// Approve moves a Pending internship to Approved and makes it visible
func (s *internshipServiceImpl) Approve(internshipID string) error {
	s.stores.Lock()
	defer s.stores.Unlock()

	internship, ok := s.stores.Internships.Get(internshipID)
	if !ok {
		return apperrors.NewCustomError(apperrors.ErrInternshipNotFound, "internship opportunity not found")
	}
	if internship.Status != models.InternshipPending {
		return apperrors.NewInvalidStateError("internship is not pending approval")
	}

	internship.Status = models.InternshipApproved
	internship.Visible = true

	s.logger.Info().Str("internshipId", internshipID).Msg("Internship approved")
	return nil
}

// Reject moves a Pending internship to Rejected, a terminal state
func (s *internshipServiceImpl) Reject(internshipID string) error {
	s.stores.Lock()
	defer s.stores.Unlock()

	internship, ok := s.stores.Internships.Get(internshipID)
	if !ok {
		return apperrors.NewCustomError(apperrors.ErrInternshipNotFound, "internship opportunity not found")
	}
	if internship.Status != models.InternshipPending {
		return apperrors.NewInvalidStateError("internship is not pending approval")
	}

	internship.Status = models.InternshipRejected

	s.logger.Info().Str("internshipId", internshipID).Msg("Internship rejected")
	return nil
}

// SetVisibility toggles whether students can see an Approved internship
func (s *internshipServiceImpl) SetVisibility(internshipID, representativeID string, visible bool) error {
	s.stores.Lock()
	defer s.stores.Unlock()

	internship, ok := s.stores.Internships.Get(internshipID)
	if !ok {
		return apperrors.NewCustomError(apperrors.ErrInternshipNotFound, "internship opportunity not found")
	}
	if internship.RepresentativeID != representativeID {
		return apperrors.NewForbiddenError("internship belongs to another representative")
	}
	if internship.Status != models.InternshipApproved {
		return apperrors.NewInvalidStateError("only approved internships can change visibility")
	}

	internship.Visible = visible

	s.logger.Info().Str("internshipId", internshipID).Bool("visible", visible).Msg("Internship visibility changed")
	return nil
}

// GetByID returns a snapshot of a single internship
func (s *internshipServiceImpl) GetByID(internshipID string) (models.Internship, error) {
	s.stores.RLock()
	defer s.stores.RUnlock()

	internship, ok := s.stores.Internships.Get(internshipID)
	if !ok {
		return models.Internship{}, apperrors.NewCustomError(apperrors.ErrInternshipNotFound, "internship opportunity not found")
	}
	return *internship, nil
}

// ByRepresentative lists the representative's own postings
func (s *internshipServiceImpl) ByRepresentative(representativeID string, filter *models.FilterSettings) []models.Internship {
	s.stores.RLock()
	defer s.stores.RUnlock()

	var out []models.Internship
	for _, o := range s.stores.Internships.All() {
		if o.RepresentativeID == representativeID && filter.Matches(o) {
			out = append(out, *o)
		}
	}
	sortInternships(out)
	return out
}

// VisibleToStudent lists internships a student may browse: approved,
// eligibility-matched and either visible or already applied to. The applied
// exception lets students keep tracking an application after the
// representative hides the posting.
func (s *internshipServiceImpl) VisibleToStudent(studentID string, filter *models.FilterSettings) ([]models.Internship, error) {
	s.stores.RLock()
	defer s.stores.RUnlock()

	user, ok := s.stores.Users.Get(studentID)
	if !ok || !user.IsStudent() {
		return nil, apperrors.NewCustomError(apperrors.ErrStudentNotFound, "student not found")
	}
	student := user.Student

	var out []models.Internship
	for _, o := range s.stores.Internships.All() {
		applied := student.HasApplied(o.ID)
		if !o.Visible && !applied {
			continue
		}
		if o.Status != models.InternshipApproved && !applied {
			continue
		}
		if !eligibility.IsEligible(student, o) && !applied {
			continue
		}
		if !filter.Matches(o) {
			continue
		}
		if filter != nil && filter.ShowOnlyApplied && !applied {
			continue
		}
		out = append(out, *o)
	}
	sortInternships(out)
	return out, nil
}

// AllWithFilters lists every internship passing the filters, for staff views
func (s *internshipServiceImpl) AllWithFilters(filter *models.FilterSettings) []models.Internship {
	s.stores.RLock()
	defer s.stores.RUnlock()

	var out []models.Internship
	for _, o := range s.stores.Internships.All() {
		if filter.Matches(o) {
			out = append(out, *o)
		}
	}
	sortInternships(out)
	return out
}

// Pending lists internships awaiting staff review
func (s *internshipServiceImpl) Pending() []models.Internship {
	s.stores.RLock()
	defer s.stores.RUnlock()

	var out []models.Internship
	for _, o := range s.stores.Internships.All() {
		if o.Status == models.InternshipPending {
			out = append(out, *o)
		}
	}
	sortInternships(out)
	return out
}

// Statistics returns internship counts by status
func (s *internshipServiceImpl) Statistics() dto.InternshipStatisticsResponse {
	s.stores.RLock()
	defer s.stores.RUnlock()

	var stats dto.InternshipStatisticsResponse
	for _, o := range s.stores.Internships.All() {
		stats.Total++
		switch o.Status {
		case models.InternshipPending:
			stats.Pending++
		case models.InternshipApproved:
			stats.Approved++
		case models.InternshipRejected:
			stats.Rejected++
		case models.InternshipFilled:
			stats.Filled++
		}
	}
	return stats
}

// sortInternships orders by title ascending, ID as the final tiebreak
func sortInternships(internships []models.Internship) {
	sort.Slice(internships, func(i, j int) bool {
		if internships[i].Title != internships[j].Title {
			return internships[i].Title < internships[j].Title
		}
		return internships[i].ID < internships[j].ID
	})
}

// internshipFields holds the parsed enum and date payload fields
type internshipFields struct {
	level   models.InternshipLevel
	major   models.Major
	opening time.Time
	closing time.Time
}

// parseInternshipFields validates the request payload against the posting
// policy: known level, 1-10 slots, closing date not before opening date.
func parseInternshipFields(level, major, openingDate, closingDate string, totalSlots int) (internshipFields, error) {
	var fields internshipFields

	fields.level = models.InternshipLevel(strings.ToUpper(strings.TrimSpace(level)))
	if !fields.level.IsValid() {
		return fields, apperrors.NewBadRequestError(fmt.Sprintf("unknown internship level %q", level))
	}
	fields.major = models.MajorFromString(major)

	var err error
	if fields.opening, err = helpers.ParseDate(openingDate); err != nil {
		return fields, apperrors.NewBadRequestError("opening date must use the 2006-01-02 format")
	}
	if fields.closing, err = helpers.ParseDate(closingDate); err != nil {
		return fields, apperrors.NewBadRequestError("closing date must use the 2006-01-02 format")
	}
	if fields.closing.Before(fields.opening) {
		return fields, apperrors.NewBadRequestError("closing date is before opening date")
	}
	if totalSlots < models.MinTotalSlots || totalSlots > models.MaxTotalSlots {
		return fields, apperrors.NewBadRequestError("total slots must be between 1 and 10")
	}

	return fields, nil
}
