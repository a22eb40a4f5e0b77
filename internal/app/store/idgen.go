package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kaan/internlink/internal/app/models"
)

// ID prefixes keep the original record formats readable in listings and files
const (
	internshipIDPrefix  = "INT"
	applicationIDPrefix = "APP"
)

// IDGenerator issues sequential internship and application IDs. Counters
// survive deletes, so an ID is never reissued within a process lifetime.
type IDGenerator struct {
	nextInternship  int
	nextApplication int
}

// NewIDGenerator creates a generator starting at 1 for both sequences
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{nextInternship: 1, nextApplication: 1}
}

// NextInternshipID returns the next internship ID, e.g. INT000007
func (g *IDGenerator) NextInternshipID() string {
	id := fmt.Sprintf("%s%06d", internshipIDPrefix, g.nextInternship)
	g.nextInternship++
	return id
}

// NextApplicationID returns the next application ID, e.g. APP000012
func (g *IDGenerator) NextApplicationID() string {
	id := fmt.Sprintf("%s%06d", applicationIDPrefix, g.nextApplication)
	g.nextApplication++
	return id
}

// Seed advances both counters past every ID already present, so records
// loaded from the persistence collaborator never collide with new ones.
func (g *IDGenerator) Seed(internships []*models.Internship, applications []*models.Application) {
	for _, o := range internships {
		if n, ok := numericSuffix(o.ID, internshipIDPrefix); ok && n >= g.nextInternship {
			g.nextInternship = n + 1
		}
	}
	for _, a := range applications {
		if n, ok := numericSuffix(a.ID, applicationIDPrefix); ok && n >= g.nextApplication {
			g.nextApplication = n + 1
		}
	}
}

func numericSuffix(id, prefix string) (int, bool) {
	if !strings.HasPrefix(id, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
	if err != nil {
		return 0, false
	}
	return n, true
}
