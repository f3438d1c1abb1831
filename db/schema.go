package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/esportivai/backend/models"
)

// ddlStatements create the five tables and their lookup indices. All
// statements are idempotent so EnsureSchema can run on every startup.
var ddlStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sports (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_sports (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users (id),
		sport_id INTEGER NOT NULL REFERENCES sports (id),
		skill_level TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		sport_id INTEGER NOT NULL REFERENCES sports (id),
		event_date TEXT NOT NULL,
		start_time TEXT NOT NULL,
		location TEXT NOT NULL,
		max_participants INTEGER NOT NULL,
		skill_level TEXT NOT NULL,
		organizer_id INTEGER NOT NULL REFERENCES users (id)
	)`,
	`CREATE TABLE IF NOT EXISTS participations (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users (id),
		event_id INTEGER NOT NULL REFERENCES events (id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_users_email ON users (email)`,
	`CREATE INDEX IF NOT EXISTS idx_user_sports_user_id ON user_sports (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_user_sports_sport_id ON user_sports (sport_id)`,
	`CREATE INDEX IF NOT EXISTS idx_events_sport_id ON events (sport_id)`,
	`CREATE INDEX IF NOT EXISTS idx_events_organizer_id ON events (organizer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_events_event_date ON events (event_date)`,
	`CREATE INDEX IF NOT EXISTS idx_participations_user_id ON participations (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_participations_event_id ON participations (event_id)`,
}

// seedSports is the fixed sport catalog, inserted with stable ids on
// first run and skipped afterwards.
var seedSports = []models.Sport{
	{ID: 1, Name: "Futebol"},
	{ID: 2, Name: "Basquete"},
	{ID: 3, Name: "Vôlei"},
	{ID: 4, Name: "Tênis"},
	{ID: 5, Name: "Natação"},
}

// EnsureSchema creates tables and indices and seeds the sport catalog.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range ddlStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}

	for _, sport := range seedSports {
		query := `INSERT INTO sports (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`
		if _, err := db.ExecContext(ctx, query, sport.ID, sport.Name); err != nil {
			return fmt.Errorf("failed to seed sport %q: %w", sport.Name, err)
		}
	}

	// Seeding with explicit ids leaves the sequence behind; advance it so
	// later inserts do not collide.
	setval := `SELECT setval(pg_get_serial_sequence('sports', 'id'), (SELECT MAX(id) FROM sports))`
	if _, err := db.ExecContext(ctx, setval); err != nil {
		return fmt.Errorf("failed to advance sports id sequence: %w", err)
	}

	return nil
}
