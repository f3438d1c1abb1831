package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/esportivai/backend/models"
)

var ErrUserSportNotFound = errors.New("sport registration not found")

type UserSportRepository interface {
	Create(ctx context.Context, registration *models.UserSport) error
	ListByUser(ctx context.Context, userID int) ([]models.UserSportRow, error)
	Exists(ctx context.Context, userID, sportID int) (bool, error)
	UpdateSkillLevel(ctx context.Context, id int, skillLevel string) error
	Delete(ctx context.Context, id int) error
}

type postgresUserSportRepository struct {
	db *sql.DB
}

func NewPostgresUserSportRepository(db *sql.DB) UserSportRepository {
	return &postgresUserSportRepository{db: db}
}

func (r *postgresUserSportRepository) Create(ctx context.Context, registration *models.UserSport) error {
	query := `
		INSERT INTO user_sports (user_id, sport_id, skill_level)
		VALUES ($1, $2, $3)
		RETURNING id`

	return r.db.QueryRowContext(ctx, query,
		registration.UserID,
		registration.SportID,
		registration.SkillLevel,
	).Scan(&registration.ID)
}

func (r *postgresUserSportRepository) ListByUser(ctx context.Context, userID int) ([]models.UserSportRow, error) {
	query := `
		SELECT us.id, s.name, us.skill_level
		FROM user_sports us
		JOIN sports s ON us.sport_id = s.id
		WHERE us.user_id = $1`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	registrations := make([]models.UserSportRow, 0)
	for rows.Next() {
		var row models.UserSportRow
		if scanErr := rows.Scan(&row.ID, &row.SportName, &row.SkillLevel); scanErr != nil {
			return nil, scanErr
		}
		registrations = append(registrations, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return registrations, nil
}

// Exists backs the application-level uniqueness check for (user, sport).
// Check-then-insert is advisory only; concurrent writers can race it.
func (r *postgresUserSportRepository) Exists(ctx context.Context, userID, sportID int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM user_sports WHERE user_id = $1 AND sport_id = $2)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID, sportID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *postgresUserSportRepository) UpdateSkillLevel(ctx context.Context, id int, skillLevel string) error {
	query := `UPDATE user_sports SET skill_level = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, skillLevel, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrUserSportNotFound)
}

func (r *postgresUserSportRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM user_sports WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrUserSportNotFound)
}
