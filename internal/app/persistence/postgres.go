// Package persistence snapshots the in-memory state to PostgreSQL. The
// database is only touched at startup and shutdown; all request handling
// runs against the in-memory stores.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kaan/internlink/internal/app/models"
	"github.com/kaan/internlink/internal/app/store"
	"github.com/kaan/internlink/internal/db"
	"github.com/kaan/internlink/internal/pkg/logger"
)

// Snapshot loads and saves the full engine state in one shot
type Snapshot interface {
	LoadAll(ctx context.Context, stores *store.Stores) error
	SaveAll(ctx context.Context, stores *store.Stores) error
}

// PostgresSnapshot persists each record as a JSONB document keyed by ID
type PostgresSnapshot struct {
	db *db.PostgresDB
}

// NewPostgresSnapshot creates the snapshot store and bootstraps its schema
func NewPostgresSnapshot(ctx context.Context, database *db.PostgresDB) (*PostgresSnapshot, error) {
	s := &PostgresSnapshot{db: database}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// userRecord carries the password hash, which the API-facing User model
// deliberately excludes from its JSON form.
type userRecord struct {
	models.User
	PasswordHash string `json:"passwordHash"`
}

func (s *PostgresSnapshot) ensureSchema(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			record JSONB NOT NULL
		);
		CREATE TABLE IF NOT EXISTS internships (
			id TEXT PRIMARY KEY,
			record JSONB NOT NULL
		);
		CREATE TABLE IF NOT EXISTS applications (
			id TEXT PRIMARY KEY,
			record JSONB NOT NULL
		);`

	if _, err := s.db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create snapshot schema: %w", err)
	}
	return nil
}

// LoadAll replaces the store contents with the saved snapshot and reseeds
// the ID generator from the highest loaded IDs.
func (s *PostgresSnapshot) LoadAll(ctx context.Context, stores *store.Stores) error {
	stores.Lock()
	defer stores.Unlock()

	userCount := 0
	if err := loadTable(ctx, s.db, "users", func(r *userRecord) {
		user := r.User
		user.Password = r.PasswordHash
		stores.Users.Put(&user)
		userCount++
	}); err != nil {
		return err
	}

	internships := make([]*models.Internship, 0)
	if err := loadTable(ctx, s.db, "internships", func(o *models.Internship) {
		stores.Internships.Put(o)
		internships = append(internships, o)
	}); err != nil {
		return err
	}

	applications := make([]*models.Application, 0)
	if err := loadTable(ctx, s.db, "applications", func(a *models.Application) {
		stores.Applications.Put(a)
		applications = append(applications, a)
	}); err != nil {
		return err
	}

	stores.IDs.Seed(internships, applications)

	logger.Info().
		Int("users", userCount).
		Int("internships", len(internships)).
		Int("applications", len(applications)).
		Msg("Snapshot loaded")
	return nil
}

// SaveAll writes the full store contents in a single transaction, replacing
// whatever snapshot was there before.
func (s *PostgresSnapshot) SaveAll(ctx context.Context, stores *store.Stores) error {
	stores.RLock()
	users := make([]*userRecord, 0)
	for _, u := range stores.Users.All() {
		users = append(users, &userRecord{User: *u, PasswordHash: u.Password})
	}
	internships := stores.Internships.All()
	applications := stores.Applications.All()
	stores.RUnlock()

	err := s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := saveTable(ctx, tx, "users", users, func(r *userRecord) string { return r.ID }); err != nil {
			return err
		}
		if err := saveTable(ctx, tx, "internships", internships, func(o *models.Internship) string { return o.ID }); err != nil {
			return err
		}
		return saveTable(ctx, tx, "applications", applications, func(a *models.Application) string { return a.ID })
	})
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	logger.Info().
		Int("users", len(users)).
		Int("internships", len(internships)).
		Int("applications", len(applications)).
		Msg("Snapshot saved")
	return nil
}

func loadTable[T any](ctx context.Context, database *db.PostgresDB, table string, put func(*T)) error {
	rows, err := database.Pool.Query(ctx, fmt.Sprintf("SELECT record FROM %s", table))
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		record := new(T)
		if err := json.Unmarshal(raw, record); err != nil {
			return fmt.Errorf("failed to decode %s record: %w", table, err)
		}
		put(record)
	}
	return rows.Err()
}

func saveTable[T any](ctx context.Context, tx pgx.Tx, table string, records []*T, id func(*T) string) error {
	if _, err := tx.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}

	for _, record := range records {
		raw, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to encode %s record: %w", table, err)
		}
		insert := fmt.Sprintf("INSERT INTO %s (id, record) VALUES ($1, $2)", table)
		if _, err := tx.Exec(ctx, insert, id(record), raw); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	}
	return nil
}
