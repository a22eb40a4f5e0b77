package store

import "github.com/kaan/internlink/internal/app/models"

type memoryUserStore struct {
	users map[string]*models.User
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: make(map[string]*models.User)}
}

func (m *memoryUserStore) Get(id string) (*models.User, bool) {
	u, ok := m.users[id]
	return u, ok
}

func (m *memoryUserStore) Put(user *models.User) {
	m.users[user.ID] = user
}

func (m *memoryUserStore) All() []*models.User {
	out := make([]*models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out
}

type memoryInternshipStore struct {
	internships map[string]*models.Internship
}

func newMemoryInternshipStore() *memoryInternshipStore {
	return &memoryInternshipStore{internships: make(map[string]*models.Internship)}
}

func (m *memoryInternshipStore) Get(id string) (*models.Internship, bool) {
	o, ok := m.internships[id]
	return o, ok
}

func (m *memoryInternshipStore) Put(o *models.Internship) {
	m.internships[o.ID] = o
}

func (m *memoryInternshipStore) Delete(id string) {
	delete(m.internships, id)
}

func (m *memoryInternshipStore) All() []*models.Internship {
	out := make([]*models.Internship, 0, len(m.internships))
	for _, o := range m.internships {
		out = append(out, o)
	}
	return out
}

type memoryApplicationStore struct {
	applications map[string]*models.Application
}

func newMemoryApplicationStore() *memoryApplicationStore {
	return &memoryApplicationStore{applications: make(map[string]*models.Application)}
}

func (m *memoryApplicationStore) Get(id string) (*models.Application, bool) {
	a, ok := m.applications[id]
	return a, ok
}

func (m *memoryApplicationStore) Put(a *models.Application) {
	m.applications[a.ID] = a
}

func (m *memoryApplicationStore) All() []*models.Application {
	out := make([]*models.Application, 0, len(m.applications))
	for _, a := range m.applications {
		out = append(out, a)
	}
	return out
}
