package models

// User is the tagged identity record shared by all roles. Role selects which
// profile pointer is populated; Staff users carry neither.
type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Password string   `json:"-"`
	Role     RoleType `json:"role"`

	Student        *StudentProfile        `json:"student,omitempty"`
	Representative *RepresentativeProfile `json:"representative,omitempty"`
}

// IsStudent reports whether the user is a student with a populated profile
func (u *User) IsStudent() bool {
	return u != nil && u.Role == RoleStudent && u.Student != nil
}

// IsRepresentative reports whether the user is a company representative with a populated profile
func (u *User) IsRepresentative() bool {
	return u != nil && u.Role == RoleRepresentative && u.Representative != nil
}

// StudentProfile holds the student-specific state mutated by the allocation engine.
// Cross-references are internship IDs, never pointers.
type StudentProfile struct {
	YearOfStudy          int      `json:"yearOfStudy"` // 1-4
	Major                Major    `json:"major"`
	AppliedInternships   []string `json:"appliedInternships"` // insertion order, max 3
	AcceptedInternshipID string   `json:"acceptedInternshipId,omitempty"`
}

// HasApplied reports whether the student already applied to the internship
func (s *StudentProfile) HasApplied(internshipID string) bool {
	for _, id := range s.AppliedInternships {
		if id == internshipID {
			return true
		}
	}
	return false
}

// CanApplyForMore reports whether another application is allowed: fewer than
// three active applications and no accepted placement.
func (s *StudentProfile) CanApplyForMore() bool {
	return len(s.AppliedInternships) < MaxActiveApplications && s.AcceptedInternshipID == ""
}

// Apply records an application to the internship. Returns false when the cap
// is reached or the internship is already in the applied set.
func (s *StudentProfile) Apply(internshipID string) bool {
	if len(s.AppliedInternships) >= MaxActiveApplications {
		return false
	}
	if s.HasApplied(internshipID) {
		return false
	}
	s.AppliedInternships = append(s.AppliedInternships, internshipID)
	return true
}

// Accept records an accepted placement. Acceptance collapses the applied set
// to the single accepted internship; all other applications are withdrawn by
// the engine's cascade.
func (s *StudentProfile) Accept(internshipID string) bool {
	if s.AcceptedInternshipID != "" || !s.HasApplied(internshipID) {
		return false
	}
	s.AcceptedInternshipID = internshipID
	s.AppliedInternships = []string{internshipID}
	return true
}

// Withdraw removes the internship from the applied set, clearing the accepted
// placement when it matches. Returns false when the internship was not applied to.
func (s *StudentProfile) Withdraw(internshipID string) bool {
	if s.AcceptedInternshipID == internshipID {
		s.AcceptedInternshipID = ""
	}
	for i, id := range s.AppliedInternships {
		if id == internshipID {
			s.AppliedInternships = append(s.AppliedInternships[:i], s.AppliedInternships[i+1:]...)
			return true
		}
	}
	return false
}

// RepresentativeProfile holds the company-representative state. Representatives
// must be approved by career center staff before creating internships.
type RepresentativeProfile struct {
	CompanyName        string   `json:"companyName"`
	Department         string   `json:"department"`
	Position           string   `json:"position"`
	Approved           bool     `json:"approved"`
	CreatedInternships []string `json:"createdInternships"` // max 5
}

// CanCreateMore reports whether the representative is under the creation cap
func (r *RepresentativeProfile) CanCreateMore() bool {
	return len(r.CreatedInternships) < MaxCreatedInternships
}

// AddCreated records a created internship ID, enforcing the cap and uniqueness
func (r *RepresentativeProfile) AddCreated(internshipID string) bool {
	if len(r.CreatedInternships) >= MaxCreatedInternships {
		return false
	}
	for _, id := range r.CreatedInternships {
		if id == internshipID {
			return false
		}
	}
	r.CreatedInternships = append(r.CreatedInternships, internshipID)
	return true
}

// RemoveCreated drops an internship ID from the created set
func (r *RepresentativeProfile) RemoveCreated(internshipID string) bool {
	for i, id := range r.CreatedInternships {
		if id == internshipID {
			r.CreatedInternships = append(r.CreatedInternships[:i], r.CreatedInternships[i+1:]...)
			return true
		}
	}
	return false
}
