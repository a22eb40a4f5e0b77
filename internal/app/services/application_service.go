package services

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/kaan/internlink/internal/app/eligibility"
	"github.com/kaan/internlink/internal/app/models"
	"github.com/kaan/internlink/internal/app/models/dto"
	"github.com/kaan/internlink/internal/app/store"
	"github.com/kaan/internlink/internal/pkg/apperrors"
)

// Clock supplies the current time; injected so tests run on fixed dates
type Clock func() time.Time

// ApplicationService defines the application side of the allocation engine.
// Every mutation validates all preconditions before touching any store, so a
// failed call leaves the state exactly as it found it.
type ApplicationService interface {
	Submit(studentID, internshipID string) (models.Application, error)
	Approve(applicationID, representativeID string) error
	Reject(applicationID, representativeID string) error
	AcceptPlacement(applicationID, studentID string) error
	RequestWithdrawal(applicationID, studentID, reason string) error
	ApproveWithdrawal(applicationID string) error
	RejectWithdrawal(applicationID string) error

	GetByID(applicationID string) (models.Application, error)
	ByStudent(studentID string) []models.Application
	ByInternship(internshipID string) []models.Application
	ByRepresentative(representativeID string) []models.Application
	WithdrawalRequests() []models.Application
	Statistics() dto.ApplicationStatisticsResponse
}

// applicationServiceImpl implements ApplicationService
type applicationServiceImpl struct {
	stores *store.Stores
	clock  Clock
	logger zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(stores *store.Stores, clock Clock, logger zerolog.Logger) ApplicationService {
	return &applicationServiceImpl{
		stores: stores,
		clock:  clock,
		logger: logger,
	}
}

// Submit creates a Pending application after every eligibility and capacity
// gate passes. The student's applied set and the internship's applicant set
// are updated in the same critical section.
func (s *applicationServiceImpl) Submit(studentID, internshipID string) (models.Application, error) {
	s.stores.Lock()
	defer s.stores.Unlock()

	user, ok := s.stores.Users.Get(studentID)
	if !ok || !user.IsStudent() {
		return models.Application{}, apperrors.NewCustomError(apperrors.ErrStudentNotFound, "student not found")
	}
	student := user.Student

	internship, ok := s.stores.Internships.Get(internshipID)
	if !ok {
		return models.Application{}, apperrors.NewCustomError(apperrors.ErrInternshipNotFound, "internship opportunity not found")
	}

	if !student.CanApplyForMore() {
		return models.Application{}, apperrors.NewCapacityExceededError("maximum of 3 active applications reached")
	}
	if !eligibility.IsOpenForApplications(internship, s.clock()) {
		return models.Application{}, apperrors.NewInvalidStateError("internship is not open for applications")
	}
	if !eligibility.IsEligible(student, internship) {
		return models.Application{}, apperrors.NewCustomError(apperrors.ErrIneligibleStudent, "student does not meet the major or level requirements")
	}
	if student.HasApplied(internshipID) {
		return models.Application{}, apperrors.NewInvalidStateError("student already applied to this internship")
	}

	now := s.clock()
	application := &models.Application{
		ID:              s.stores.IDs.NextApplicationID(),
		StudentID:       studentID,
		InternshipID:    internshipID,
		Status:          models.ApplicationPending,
		SubmittedAt:     now,
		StatusUpdatedAt: now,
	}

	s.stores.Applications.Put(application)
	student.Apply(internshipID)
	internship.AddApplicant(studentID)

	s.logger.Info().
		Str("applicationId", application.ID).
		Str("studentId", studentID).
		Str("internshipId", internshipID).
		Msg("Application submitted")

	return *application, nil
}

// Approve marks a pending application Successful. Approval reserves the right
// to accept, not a slot; slots are only consumed by AcceptPlacement.
func (s *applicationServiceImpl) Approve(applicationID, representativeID string) error {
	s.stores.Lock()
	defer s.stores.Unlock()

	application, internship, err := s.pendingApplicationFor(applicationID, representativeID)
	if err != nil {
		return err
	}
	if internship.AvailableSlots() <= 0 {
		return apperrors.NewCapacityExceededError("internship has no available slots")
	}

	application.SetStatus(models.ApplicationSuccessful, s.clock())

	s.logger.Info().
		Str("applicationId", applicationID).
		Str("representativeId", representativeID).
		Msg("Application approved")
	return nil
}

// Reject marks a pending application Unsuccessful
func (s *applicationServiceImpl) Reject(applicationID, representativeID string) error {
	s.stores.Lock()
	defer s.stores.Unlock()

	application, _, err := s.pendingApplicationFor(applicationID, representativeID)
	if err != nil {
		return err
	}

	application.SetStatus(models.ApplicationUnsuccessful, s.clock())

	s.logger.Info().
		Str("applicationId", applicationID).
		Str("representativeId", representativeID).
		Msg("Application rejected")
	return nil
}

// pendingApplicationFor resolves a Pending application and the internship it
// targets, verifying the representative owns that internship.
// Caller must hold the write lock.
func (s *applicationServiceImpl) pendingApplicationFor(applicationID, representativeID string) (*models.Application, *models.Internship, error) {
	application, ok := s.stores.Applications.Get(applicationID)
	if !ok {
		return nil, nil, apperrors.NewCustomError(apperrors.ErrApplicationNotFound, "application not found")
	}
	if application.Status != models.ApplicationPending {
		return nil, nil, apperrors.NewInvalidStateError("application is not pending")
	}

	internship, ok := s.stores.Internships.Get(application.InternshipID)
	if !ok {
		return nil, nil, apperrors.NewCustomError(apperrors.ErrInternshipNotFound, "internship opportunity not found")
	}
	if internship.RepresentativeID != representativeID {
		return nil, nil, apperrors.NewForbiddenError("internship belongs to another representative")
	}

	return application, internship, nil
}

// AcceptPlacement confirms a Successful application as the student's single
// placement. The student record, the slot count and the cascade withdrawal of
// the student's other active applications commit as one critical section.
func (s *applicationServiceImpl) AcceptPlacement(applicationID, studentID string) error {
	s.stores.Lock()
	defer s.stores.Unlock()

	application, ok := s.stores.Applications.Get(applicationID)
	if !ok {
		return apperrors.NewCustomError(apperrors.ErrApplicationNotFound, "application not found")
	}
	if application.StudentID != studentID {
		return apperrors.NewForbiddenError("application belongs to another student")
	}
	if application.Status != models.ApplicationSuccessful {
		return apperrors.NewInvalidStateError("only successful applications can be accepted")
	}

	user, ok := s.stores.Users.Get(studentID)
	if !ok || !user.IsStudent() {
		return apperrors.NewCustomError(apperrors.ErrStudentNotFound, "student not found")
	}
	student := user.Student

	internship, ok := s.stores.Internships.Get(application.InternshipID)
	if !ok {
		return apperrors.NewCustomError(apperrors.ErrInternshipNotFound, "internship opportunity not found")
	}

	// Validate both halves before mutating either, so a failure cannot leave
	// the student accepted without a confirmed slot.
	if student.AcceptedInternshipID != "" {
		return apperrors.NewInvalidStateError("student already accepted a placement")
	}
	if !student.HasApplied(application.InternshipID) {
		return apperrors.NewInvalidStateError("internship is not in the student's applied set")
	}
	if !internship.HasApplicant(studentID) {
		return apperrors.NewInvalidStateError("student is not an applicant of this internship")
	}
	if internship.AvailableSlots() <= 0 {
		return apperrors.NewCapacityExceededError("internship has no available slots")
	}

	student.Accept(application.InternshipID)
	internship.ConfirmPlacement(studentID)

	s.withdrawOtherApplications(studentID, applicationID)

	s.logger.Info().
		Str("applicationId", applicationID).
		Str("studentId", studentID).
		Str("internshipId", internship.ID).
		Int("filledSlots", internship.FilledSlots).
		Msg("Placement accepted")
	return nil
}

// withdrawOtherApplications is the acceptance cascade: every other Pending or
// Successful application by the student is withdrawn and the student leaves
// the corresponding applicant sets. Caller must hold the write lock.
func (s *applicationServiceImpl) withdrawOtherApplications(studentID, acceptedApplicationID string) {
	now := s.clock()
	for _, app := range s.stores.Applications.All() {
		if app.StudentID != studentID || app.ID == acceptedApplicationID {
			continue
		}
		if app.Status != models.ApplicationPending && app.Status != models.ApplicationSuccessful {
			continue
		}
		app.SetStatus(models.ApplicationWithdrawn, now)
		if internship, ok := s.stores.Internships.Get(app.InternshipID); ok {
			internship.RemoveApplicant(studentID)
		}
	}
}

// RequestWithdrawal flags an active application for staff review
func (s *applicationServiceImpl) RequestWithdrawal(applicationID, studentID, reason string) error {
	s.stores.Lock()
	defer s.stores.Unlock()

	application, ok := s.stores.Applications.Get(applicationID)
	if !ok {
		return apperrors.NewCustomError(apperrors.ErrApplicationNotFound, "application not found")
	}
	if application.StudentID != studentID {
		return apperrors.NewForbiddenError("application belongs to another student")
	}
	if !application.CanBeWithdrawn() {
		return apperrors.NewInvalidStateError("application can no longer be withdrawn")
	}

	application.RequestWithdrawal(reason)

	s.logger.Info().
		Str("applicationId", applicationID).
		Str("studentId", studentID).
		Msg("Withdrawal requested")
	return nil
}

// ApproveWithdrawal finalizes a requested withdrawal: the application moves to
// Withdrawn, the student leaves the applicant set and the internship leaves
// the student's applied set. Withdrawing a confirmed placement releases its
// slot, so a Filled internship reopens.
func (s *applicationServiceImpl) ApproveWithdrawal(applicationID string) error {
	s.stores.Lock()
	defer s.stores.Unlock()

	application, ok := s.stores.Applications.Get(applicationID)
	if !ok {
		return apperrors.NewCustomError(apperrors.ErrApplicationNotFound, "application not found")
	}
	if !application.WithdrawalRequested {
		return apperrors.NewInvalidStateError("no withdrawal has been requested")
	}

	application.ApproveWithdrawal(s.clock())

	user, userOK := s.stores.Users.Get(application.StudentID)
	internship, internshipOK := s.stores.Internships.Get(application.InternshipID)

	if userOK && user.IsStudent() && internshipOK {
		wasAccepted := user.Student.AcceptedInternshipID == application.InternshipID
		user.Student.Withdraw(application.InternshipID)
		internship.RemoveApplicant(application.StudentID)
		if wasAccepted {
			internship.ReleaseSlot()
		}
	}

	s.logger.Info().
		Str("applicationId", applicationID).
		Str("studentId", application.StudentID).
		Msg("Withdrawal approved")
	return nil
}

// RejectWithdrawal clears the withdrawal request and reason without touching
// the status. Repeating the call has no further effect.
func (s *applicationServiceImpl) RejectWithdrawal(applicationID string) error {
	s.stores.Lock()
	defer s.stores.Unlock()

	application, ok := s.stores.Applications.Get(applicationID)
	if !ok {
		return apperrors.NewCustomError(apperrors.ErrApplicationNotFound, "application not found")
	}

	application.RejectWithdrawal()

	s.logger.Info().
		Str("applicationId", applicationID).
		Msg("Withdrawal rejected")
	return nil
}

// GetByID returns a snapshot of a single application
func (s *applicationServiceImpl) GetByID(applicationID string) (models.Application, error) {
	s.stores.RLock()
	defer s.stores.RUnlock()

	application, ok := s.stores.Applications.Get(applicationID)
	if !ok {
		return models.Application{}, apperrors.NewCustomError(apperrors.ErrApplicationNotFound, "application not found")
	}
	return *application, nil
}

// ByStudent returns the student's applications, newest submission first
func (s *applicationServiceImpl) ByStudent(studentID string) []models.Application {
	s.stores.RLock()
	defer s.stores.RUnlock()

	var out []models.Application
	for _, app := range s.stores.Applications.All() {
		if app.StudentID == studentID {
			out = append(out, *app)
		}
	}
	sortApplications(out, true)
	return out
}

// ByInternship returns an internship's applications, oldest submission first
func (s *applicationServiceImpl) ByInternship(internshipID string) []models.Application {
	s.stores.RLock()
	defer s.stores.RUnlock()

	var out []models.Application
	for _, app := range s.stores.Applications.All() {
		if app.InternshipID == internshipID {
			out = append(out, *app)
		}
	}
	sortApplications(out, false)
	return out
}

// ByRepresentative returns applications to any internship the representative
// owns, newest submission first
func (s *applicationServiceImpl) ByRepresentative(representativeID string) []models.Application {
	s.stores.RLock()
	defer s.stores.RUnlock()

	owned := make(map[string]bool)
	for _, o := range s.stores.Internships.All() {
		if o.RepresentativeID == representativeID {
			owned[o.ID] = true
		}
	}

	var out []models.Application
	for _, app := range s.stores.Applications.All() {
		if owned[app.InternshipID] {
			out = append(out, *app)
		}
	}
	sortApplications(out, true)
	return out
}

// WithdrawalRequests returns applications awaiting a staff withdrawal
// decision, oldest status update first
func (s *applicationServiceImpl) WithdrawalRequests() []models.Application {
	s.stores.RLock()
	defer s.stores.RUnlock()

	var out []models.Application
	for _, app := range s.stores.Applications.All() {
		if app.WithdrawalRequested && !app.WithdrawalApproved {
			out = append(out, *app)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StatusUpdatedAt.Equal(out[j].StatusUpdatedAt) {
			return out[i].StatusUpdatedAt.Before(out[j].StatusUpdatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Statistics returns application counts by status
func (s *applicationServiceImpl) Statistics() dto.ApplicationStatisticsResponse {
	s.stores.RLock()
	defer s.stores.RUnlock()

	var stats dto.ApplicationStatisticsResponse
	for _, app := range s.stores.Applications.All() {
		stats.Total++
		switch app.Status {
		case models.ApplicationPending:
			stats.Pending++
		case models.ApplicationSuccessful:
			stats.Successful++
		case models.ApplicationUnsuccessful:
			stats.Unsuccessful++
		case models.ApplicationWithdrawn:
			stats.Withdrawn++
		}
		if app.WithdrawalRequested {
			stats.WithdrawalRequests++
		}
	}
	return stats
}

// sortApplications orders by submission date with ID as the final tiebreak
func sortApplications(apps []models.Application, newestFirst bool) {
	sort.Slice(apps, func(i, j int) bool {
		if !apps[i].SubmittedAt.Equal(apps[j].SubmittedAt) {
			if newestFirst {
				return apps[i].SubmittedAt.After(apps[j].SubmittedAt)
			}
			return apps[i].SubmittedAt.Before(apps[j].SubmittedAt)
		}
		return apps[i].ID < apps[j].ID
	})
}
