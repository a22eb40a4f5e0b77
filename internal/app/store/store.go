// Package store holds the engine-owned state: identity, internship and
// application records keyed by ID. All cross-entity references are ID lookups.
package store

import (
	"sync"

	"github.com/kaan/internlink/internal/app/models"
)

// UserStore is the identity collaborator surface: lookup and mutation of
// user records. Mutations on returned records must happen under the Stores
// write lock.
type UserStore interface {
	Get(id string) (*models.User, bool)
	Put(user *models.User)
	All() []*models.User
}

// InternshipStore holds internship opportunities keyed by ID
type InternshipStore interface {
	Get(id string) (*models.Internship, bool)
	Put(o *models.Internship)
	Delete(id string)
	All() []*models.Internship
}

// ApplicationStore holds applications keyed by ID
type ApplicationStore interface {
	Get(id string) (*models.Application, bool)
	Put(a *models.Application)
	All() []*models.Application
}

// Stores bundles the three stores behind a single reader/writer lock.
// Every engine operation takes the write lock for its whole critical section,
// so cross-entity mutations are never observed half-applied; queries share
// the read lock.
type Stores struct {
	mu sync.RWMutex

	Users        UserStore
	Internships  InternshipStore
	Applications ApplicationStore
	IDs          *IDGenerator
}

// NewMemoryStores creates a Stores backed by in-memory maps
func NewMemoryStores() *Stores {
	return &Stores{
		Users:        newMemoryUserStore(),
		Internships:  newMemoryInternshipStore(),
		Applications: newMemoryApplicationStore(),
		IDs:          NewIDGenerator(),
	}
}

// Lock acquires the write lock
func (s *Stores) Lock() { s.mu.Lock() }

// Unlock releases the write lock
func (s *Stores) Unlock() { s.mu.Unlock() }

// RLock acquires the read lock
func (s *Stores) RLock() { s.mu.RLock() }

// RUnlock releases the read lock
func (s *Stores) RUnlock() { s.mu.RUnlock() }
