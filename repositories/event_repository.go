package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/esportivai/backend/models"
)

var ErrEventNotFound = errors.New("event not found")

// EventWindow selects which slice of a user's joined events to list,
// relative to the current date.
type EventWindow int

const (
	WindowUpcoming   EventWindow = iota // strictly after today
	WindowSubscribed                    // today or later
	WindowPast                          // strictly before today
)

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id int) error
	GetDetailByID(ctx context.Context, id int) (*models.EventDetail, error)
	CountParticipants(ctx context.Context, eventID int) (int, error)
	ListEligibleForUser(ctx context.Context, userID int) ([]models.EligibleEvent, error)
	ListByOrganizer(ctx context.Context, organizerID int) ([]models.OrganizerEvent, error)
	ListRawByOrganizer(ctx context.Context, organizerID int) ([]models.Event, error)
	ListJoinedByUser(ctx context.Context, userID int, window EventWindow) ([]models.UserEvent, error)
}

type postgresEventRepository struct {
	db *sql.DB
}

func NewPostgresEventRepository(db *sql.DB) EventRepository {
	return &postgresEventRepository{db: db}
}

func (r *postgresEventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (organizer_id, name, sport_id, event_date, start_time, location, max_participants, skill_level)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	return r.db.QueryRowContext(ctx, query,
		event.OrganizerID,
		event.Name,
		event.SportID,
		event.Date,
		event.Time,
		event.Location,
		event.MaxParticipants,
		event.SkillLevel,
	).Scan(&event.ID)
}

func (r *postgresEventRepository) Update(ctx context.Context, event *models.Event) error {
	query := `
		UPDATE events SET
			name = $1,
			sport_id = $2,
			event_date = $3,
			start_time = $4,
			location = $5,
			max_participants = $6,
			skill_level = $7
		WHERE id = $8`

	result, err := r.db.ExecContext(ctx, query,
		event.Name,
		event.SportID,
		event.Date,
		event.Time,
		event.Location,
		event.MaxParticipants,
		event.SkillLevel,
		event.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrEventNotFound)
}

func (r *postgresEventRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM events WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrEventNotFound)
}

// GetDetailByID resolves the event and its organizer name. The participant
// count is fetched separately via CountParticipants.
func (r *postgresEventRepository) GetDetailByID(ctx context.Context, id int) (*models.EventDetail, error) {
	query := `
		SELECT
			e.id, e.name, e.sport_id, e.event_date, e.start_time, e.location,
			e.max_participants, e.skill_level, u.name
		FROM events e
		JOIN users u ON e.organizer_id = u.id
		WHERE e.id = $1`

	detail := &models.EventDetail{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&detail.ID,
		&detail.Name,
		&detail.SportID,
		&detail.Date,
		&detail.Time,
		&detail.Location,
		&detail.MaxParticipants,
		&detail.SkillLevel,
		&detail.Organizer,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return detail, nil
}

func (r *postgresEventRepository) CountParticipants(ctx context.Context, eventID int) (int, error) {
	query := `SELECT COUNT(*) FROM participations WHERE event_id = $1`

	var count int
	if err := r.db.QueryRowContext(ctx, query, eventID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// ListEligibleForUser selects the events a user may newly join. An event
// qualifies only when the user has not joined it, it still has room, and
// the user is registered for its sport at exactly its required skill
// level. Pure read; re-evaluated on every call.
func (r *postgresEventRepository) ListEligibleForUser(ctx context.Context, userID int) ([]models.EligibleEvent, error) {
	query := `
		SELECT
			e.id,
			e.name,
			s.name,
			e.event_date,
			e.start_time,
			e.location,
			e.max_participants,
			e.skill_level,
			u.name
		FROM events e
		JOIN users u ON e.organizer_id = u.id
		JOIN sports s ON e.sport_id = s.id
		WHERE e.id NOT IN (
			SELECT p.event_id
			FROM participations p
			WHERE p.user_id = $1
		)
		AND (
			SELECT COUNT(*)
			FROM participations p
			WHERE p.event_id = e.id
		) < e.max_participants
		AND e.skill_level = (
			SELECT us.skill_level
			FROM user_sports us
			WHERE us.user_id = $1
			AND us.sport_id = e.sport_id
		)
		AND e.sport_id IN (
			SELECT us.sport_id
			FROM user_sports us
			WHERE us.user_id = $1
		)`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]models.EligibleEvent, 0)
	for rows.Next() {
		var event models.EligibleEvent
		scanErr := rows.Scan(
			&event.ID,
			&event.Name,
			&event.Sport,
			&event.Date,
			&event.Time,
			&event.Location,
			&event.MaxParticipants,
			&event.SkillLevel,
			&event.Organizer,
		)
		if scanErr != nil {
			return nil, scanErr
		}
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *postgresEventRepository) ListByOrganizer(ctx context.Context, organizerID int) ([]models.OrganizerEvent, error) {
	query := `
		SELECT
			e.id, e.name, s.id, s.name, e.event_date, e.start_time, e.location,
			e.max_participants, e.skill_level,
			(SELECT COUNT(*) FROM participations p WHERE p.event_id = e.id)
		FROM events e
		JOIN sports s ON e.sport_id = s.id
		WHERE e.organizer_id = $1`

	rows, err := r.db.QueryContext(ctx, query, organizerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]models.OrganizerEvent, 0)
	for rows.Next() {
		var event models.OrganizerEvent
		scanErr := rows.Scan(
			&event.ID,
			&event.Name,
			&event.SportID,
			&event.Sport,
			&event.Date,
			&event.Time,
			&event.Location,
			&event.MaxParticipants,
			&event.SkillLevel,
			&event.ParticipantCount,
		)
		if scanErr != nil {
			return nil, scanErr
		}
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *postgresEventRepository) ListRawByOrganizer(ctx context.Context, organizerID int) ([]models.Event, error) {
	query := `
		SELECT id, name, sport_id, event_date, start_time, location, max_participants, skill_level, organizer_id
		FROM events
		WHERE organizer_id = $1`

	rows, err := r.db.QueryContext(ctx, query, organizerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		var event models.Event
		scanErr := rows.Scan(
			&event.ID,
			&event.Name,
			&event.SportID,
			&event.Date,
			&event.Time,
			&event.Location,
			&event.MaxParticipants,
			&event.SkillLevel,
			&event.OrganizerID,
		)
		if scanErr != nil {
			return nil, scanErr
		}
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

// ListJoinedByUser lists events the user participates in, filtered by date
// window. Dates are stored as "YYYY-MM-DD" text, so comparing against
// CURRENT_DATE rendered the same way is a plain string comparison.
func (r *postgresEventRepository) ListJoinedByUser(ctx context.Context, userID int, window EventWindow) ([]models.UserEvent, error) {
	var op string
	switch window {
	case WindowUpcoming:
		op = ">"
	case WindowSubscribed:
		op = ">="
	case WindowPast:
		op = "<"
	default:
		return nil, fmt.Errorf("unknown event window: %d", window)
	}

	query := fmt.Sprintf(`
		SELECT
			s.name,
			e.id, e.name, e.sport_id, e.event_date, e.start_time, e.location,
			e.max_participants, e.skill_level, e.organizer_id
		FROM events e
		JOIN participations p ON e.id = p.event_id
		JOIN sports s ON e.sport_id = s.id
		WHERE p.user_id = $1 AND e.event_date %s to_char(CURRENT_DATE, 'YYYY-MM-DD')`, op)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]models.UserEvent, 0)
	for rows.Next() {
		var event models.UserEvent
		scanErr := rows.Scan(
			&event.SportName,
			&event.ID,
			&event.Name,
			&event.SportID,
			&event.Date,
			&event.Time,
			&event.Location,
			&event.MaxParticipants,
			&event.SkillLevel,
			&event.OrganizerID,
		)
		if scanErr != nil {
			return nil, scanErr
		}
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}
