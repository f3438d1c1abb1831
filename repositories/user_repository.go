package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/esportivai/backend/models"
	"github.com/lib/pq"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserEmailConflict = errors.New("user email conflict")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetAll(ctx context.Context) ([]models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetProfileByID(ctx context.Context, id int) (*models.UserProfile, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int) error
}

type postgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

func (r *postgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		user.Name,
		user.Email,
		user.PasswordHash,
	).Scan(&user.ID)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "users_email_key" {
				return ErrUserEmailConflict
			}
		}
		return err
	}
	return nil
}

func (r *postgresUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	query := `SELECT id, name, email FROM users`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if scanErr := rows.Scan(&user.ID, &user.Name, &user.Email); scanErr != nil {
			return nil, scanErr
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *postgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash
		FROM users
		WHERE email = $1`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetProfileByID aggregates the user's sport registrations into the
// profile via a LEFT JOIN, so a user with no sports still resolves.
func (r *postgresUserRepository) GetProfileByID(ctx context.Context, id int) (*models.UserProfile, error) {
	query := `
		SELECT
			u.id, u.name, u.email,
			us.id, s.name, us.skill_level
		FROM users u
		LEFT JOIN user_sports us ON u.id = us.user_id
		LEFT JOIN sports s ON us.sport_id = s.id
		WHERE u.id = $1`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profile *models.UserProfile
	for rows.Next() {
		var (
			userID     int
			name       string
			email      string
			regID      sql.NullInt64
			sportName  sql.NullString
			skillLevel sql.NullString
		)
		if scanErr := rows.Scan(&userID, &name, &email, &regID, &sportName, &skillLevel); scanErr != nil {
			return nil, scanErr
		}
		if profile == nil {
			profile = &models.UserProfile{
				ID:       userID,
				Name:     name,
				Email:    email,
				Esportes: make([]models.SportRegistration, 0),
			}
		}
		if regID.Valid {
			profile.Esportes = append(profile.Esportes, models.SportRegistration{
				EsporteID:  int(regID.Int64),
				Name:       sportName.String,
				SkillLevel: skillLevel.String,
			})
		}
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrUserNotFound
	}
	return profile, nil
}

// Update replaces the password hash only when a new one is provided;
// an empty hash keeps the stored value (COALESCE over NULLIF).
func (r *postgresUserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users SET
			name = $1,
			email = $2,
			password_hash = COALESCE(NULLIF($3, ''), password_hash)
		WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.ID,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "users_email_key" {
				return ErrUserEmailConflict
			}
		}
		return err
	}
	return checkAffectedRows(result, ErrUserNotFound)
}

func (r *postgresUserRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrUserNotFound)
}
