package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/esportivai/backend/models"
)

var ErrParticipationNotFound = errors.New("participation not found")

type ParticipationRepository interface {
	Create(ctx context.Context, participation *models.Participation) error
	Update(ctx context.Context, participation *models.Participation) error
	Delete(ctx context.Context, id int) error
	ListDetailsByUser(ctx context.Context, userID int) ([]models.ParticipationDetail, error)
	ListSummariesByUser(ctx context.Context, userID int) ([]models.UserParticipation, error)
	ListParticipants(ctx context.Context, eventID int) ([]models.User, error)
}

type postgresParticipationRepository struct {
	db *sql.DB
}

func NewPostgresParticipationRepository(db *sql.DB) ParticipationRepository {
	return &postgresParticipationRepository{db: db}
}

func (r *postgresParticipationRepository) Create(ctx context.Context, participation *models.Participation) error {
	query := `
		INSERT INTO participations (user_id, event_id)
		VALUES ($1, $2)
		RETURNING id`

	return r.db.QueryRowContext(ctx, query,
		participation.UserID,
		participation.EventID,
	).Scan(&participation.ID)
}

func (r *postgresParticipationRepository) Update(ctx context.Context, participation *models.Participation) error {
	query := `
		UPDATE participations
		SET user_id = $1, event_id = $2
		WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query,
		participation.UserID,
		participation.EventID,
		participation.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrParticipationNotFound)
}

func (r *postgresParticipationRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM participations WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrParticipationNotFound)
}

// ListDetailsByUser lists the user's participations with user, event and
// count context. Rows where the user is also the event's organizer are
// excluded: the organizer's auto-enrollment is not a participation from
// the user's point of view.
func (r *postgresParticipationRepository) ListDetailsByUser(ctx context.Context, userID int) ([]models.ParticipationDetail, error) {
	query := `
		SELECT
			p.id,
			p.user_id,
			u.name,
			e.id,
			e.name,
			e.location,
			e.event_date,
			e.start_time,
			(SELECT COUNT(*) FROM participations pc WHERE pc.event_id = e.id)
		FROM participations p
		JOIN users u ON p.user_id = u.id
		JOIN events e ON p.event_id = e.id
		WHERE p.user_id = $1
		AND p.user_id != e.organizer_id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make([]models.ParticipationDetail, 0)
	for rows.Next() {
		var detail models.ParticipationDetail
		scanErr := rows.Scan(
			&detail.ID,
			&detail.UserID,
			&detail.UserName,
			&detail.EventID,
			&detail.EventName,
			&detail.Location,
			&detail.Date,
			&detail.Time,
			&detail.ParticipantCount,
		)
		if scanErr != nil {
			return nil, scanErr
		}
		details = append(details, detail)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}

func (r *postgresParticipationRepository) ListSummariesByUser(ctx context.Context, userID int) ([]models.UserParticipation, error) {
	query := `
		SELECT p.id, e.name, e.event_date, e.location
		FROM participations p
		JOIN events e ON p.event_id = e.id
		WHERE p.user_id = $1`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]models.UserParticipation, 0)
	for rows.Next() {
		var summary models.UserParticipation
		scanErr := rows.Scan(
			&summary.ID,
			&summary.EventName,
			&summary.Date,
			&summary.Location,
		)
		if scanErr != nil {
			return nil, scanErr
		}
		summaries = append(summaries, summary)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *postgresParticipationRepository) ListParticipants(ctx context.Context, eventID int) ([]models.User, error) {
	query := `
		SELECT u.id, u.name, u.email
		FROM participations p
		JOIN users u ON p.user_id = u.id
		WHERE p.event_id = $1`

	rows, err := r.db.QueryContext(ctx, query, eventID)
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
